package model

import "fmt"

// Enum values travel on the wire as their literal string. The payments API
// owns every state transition; this package only checks membership.

// BookingStatus is the status reported by the travel and merchant integrations.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusRefunded  BookingStatus = "REFUNDED"
)

var bookingStatusValues = []BookingStatus{
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
	BookingStatusRefunded,
}

func BookingStatusValues() []BookingStatus {
	return append([]BookingStatus(nil), bookingStatusValues...)
}

func (e BookingStatus) Valid() bool {
	for _, v := range bookingStatusValues {
		if e == v {
			return true
		}
	}
	return false
}

func (e BookingStatus) String() string { return string(e) }

func ParseBookingStatus(s string) (BookingStatus, error) {
	e := BookingStatus(s)
	if !e.Valid() {
		return "", fmt.Errorf("invalid booking status %q", s)
	}
	return e, nil
}

// CreditCardProduct is the card tier. It determines reward multipliers upstream.
type CreditCardProduct string

const (
	CreditCardProductBasic    CreditCardProduct = "BASIC"
	CreditCardProductSilver   CreditCardProduct = "SILVER"
	CreditCardProductGold     CreditCardProduct = "GOLD"
	CreditCardProductPlatinum CreditCardProduct = "PLATINUM"
)

var creditCardProductValues = []CreditCardProduct{
	CreditCardProductBasic,
	CreditCardProductSilver,
	CreditCardProductGold,
	CreditCardProductPlatinum,
}

func CreditCardProductValues() []CreditCardProduct {
	return append([]CreditCardProduct(nil), creditCardProductValues...)
}

func (e CreditCardProduct) Valid() bool {
	for _, v := range creditCardProductValues {
		if e == v {
			return true
		}
	}
	return false
}

func (e CreditCardProduct) String() string { return string(e) }

func ParseCreditCardProduct(s string) (CreditCardProduct, error) {
	e := CreditCardProduct(s)
	if !e.Valid() {
		return "", fmt.Errorf("invalid credit card product %q", s)
	}
	return e, nil
}

type MerchantCategory string

const (
	MerchantCategoryRestaurant             MerchantCategory = "RESTAURANT"
	MerchantCategoryRetailStore            MerchantCategory = "RETAIL_STORE"
	MerchantCategoryGasStation             MerchantCategory = "GAS_STATION"
	MerchantCategoryAirline                MerchantCategory = "AIRLINE"
	MerchantCategoryHotel                  MerchantCategory = "HOTEL"
	MerchantCategoryECommerce              MerchantCategory = "E_COMMERCE"
	MerchantCategoryGroceryStore           MerchantCategory = "GROCERY_STORE"
	MerchantCategoryPharmacy               MerchantCategory = "PHARMACY"
	MerchantCategoryEntertainmentVenue     MerchantCategory = "ENTERTAINMENT_VENUE"
	MerchantCategoryHealthcareProvider     MerchantCategory = "HEALTHCARE_PROVIDER"
	MerchantCategoryTelecomProvider        MerchantCategory = "TELECOM_PROVIDER"
	MerchantCategoryUtilityCompany         MerchantCategory = "UTILITY_COMPANY"
	MerchantCategoryInsuranceCompany       MerchantCategory = "INSURANCE_COMPANY"
	MerchantCategoryEducationalInstitution MerchantCategory = "EDUCATIONAL_INSTITUTION"
	MerchantCategoryAutomotiveService      MerchantCategory = "AUTOMOTIVE_SERVICE"
	MerchantCategoryHomeImprovement        MerchantCategory = "HOME_IMPROVEMENT"
	MerchantCategoryFashionRetailer        MerchantCategory = "FASHION_RETAILER"
	MerchantCategoryElectronicsStore       MerchantCategory = "ELECTRONICS_STORE"
	MerchantCategorySubscriptionService    MerchantCategory = "SUBSCRIPTION_SERVICE"
	MerchantCategoryFinancialService       MerchantCategory = "FINANCIAL_SERVICE"
	MerchantCategoryFitnessCenter          MerchantCategory = "FITNESS_CENTER"
)

var merchantCategoryValues = []MerchantCategory{
	MerchantCategoryRestaurant,
	MerchantCategoryRetailStore,
	MerchantCategoryGasStation,
	MerchantCategoryAirline,
	MerchantCategoryHotel,
	MerchantCategoryECommerce,
	MerchantCategoryGroceryStore,
	MerchantCategoryPharmacy,
	MerchantCategoryEntertainmentVenue,
	MerchantCategoryHealthcareProvider,
	MerchantCategoryTelecomProvider,
	MerchantCategoryUtilityCompany,
	MerchantCategoryInsuranceCompany,
	MerchantCategoryEducationalInstitution,
	MerchantCategoryAutomotiveService,
	MerchantCategoryHomeImprovement,
	MerchantCategoryFashionRetailer,
	MerchantCategoryElectronicsStore,
	MerchantCategorySubscriptionService,
	MerchantCategoryFinancialService,
	MerchantCategoryFitnessCenter,
}

func MerchantCategoryValues() []MerchantCategory {
	return append([]MerchantCategory(nil), merchantCategoryValues...)
}

func (e MerchantCategory) Valid() bool {
	for _, v := range merchantCategoryValues {
		if e == v {
			return true
		}
	}
	return false
}

func (e MerchantCategory) String() string { return string(e) }

func ParseMerchantCategory(s string) (MerchantCategory, error) {
	e := MerchantCategory(s)
	if !e.Valid() {
		return "", fmt.Errorf("invalid merchant category %q", s)
	}
	return e, nil
}

type OfferCategory string

const (
	OfferCategoryTravel             OfferCategory = "TRAVEL"
	OfferCategoryMerchant           OfferCategory = "MERCHANT"
	OfferCategoryCashback           OfferCategory = "CASHBACK"
	OfferCategoryDining             OfferCategory = "DINING"
	OfferCategoryFuel               OfferCategory = "FUEL"
	OfferCategoryShopping           OfferCategory = "SHOPPING"
	OfferCategoryGrocery            OfferCategory = "GROCERY"
	OfferCategoryEntertainment      OfferCategory = "ENTERTAINMENT"
	OfferCategoryHealthWellness     OfferCategory = "HEALTH_WELLNESS"
	OfferCategoryTelecommunications OfferCategory = "TELECOMMUNICATIONS"
	OfferCategoryUtilities          OfferCategory = "UTILITIES"
	OfferCategoryInsurance          OfferCategory = "INSURANCE"
	OfferCategoryEducation          OfferCategory = "EDUCATION"
	OfferCategoryAutomotive         OfferCategory = "AUTOMOTIVE"
	OfferCategoryHomeGarden         OfferCategory = "HOME_GARDEN"
	OfferCategoryFashion            OfferCategory = "FASHION"
	OfferCategoryElectronics        OfferCategory = "ELECTRONICS"
	OfferCategorySubscription       OfferCategory = "SUBSCRIPTION"
	OfferCategoryFinance            OfferCategory = "FINANCE"
	OfferCategorySportsFitness      OfferCategory = "SPORTS_FITNESS"
)

var offerCategoryValues = []OfferCategory{
	OfferCategoryTravel,
	OfferCategoryMerchant,
	OfferCategoryCashback,
	OfferCategoryDining,
	OfferCategoryFuel,
	OfferCategoryShopping,
	OfferCategoryGrocery,
	OfferCategoryEntertainment,
	OfferCategoryHealthWellness,
	OfferCategoryTelecommunications,
	OfferCategoryUtilities,
	OfferCategoryInsurance,
	OfferCategoryEducation,
	OfferCategoryAutomotive,
	OfferCategoryHomeGarden,
	OfferCategoryFashion,
	OfferCategoryElectronics,
	OfferCategorySubscription,
	OfferCategoryFinance,
	OfferCategorySportsFitness,
}

func OfferCategoryValues() []OfferCategory {
	return append([]OfferCategory(nil), offerCategoryValues...)
}

func (e OfferCategory) Valid() bool {
	for _, v := range offerCategoryValues {
		if e == v {
			return true
		}
	}
	return false
}

func (e OfferCategory) String() string { return string(e) }

func ParseOfferCategory(s string) (OfferCategory, error) {
	e := OfferCategory(s)
	if !e.Valid() {
		return "", fmt.Errorf("invalid offer category %q", s)
	}
	return e, nil
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

var paymentStatusValues = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

func PaymentStatusValues() []PaymentStatus {
	return append([]PaymentStatus(nil), paymentStatusValues...)
}

func (e PaymentStatus) Valid() bool {
	for _, v := range paymentStatusValues {
		if e == v {
			return true
		}
	}
	return false
}

func (e PaymentStatus) String() string { return string(e) }

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	e := PaymentStatus(s)
	if !e.Valid() {
		return "", fmt.Errorf("invalid payment status %q", s)
	}
	return e, nil
}

// RefundStatus is the refund state as reported by the payments API.
type RefundStatus string

const (
	RefundStatusRequested RefundStatus = "REQUESTED"
	RefundStatusApproved  RefundStatus = "APPROVED"
	RefundStatusDenied    RefundStatus = "DENIED"
	RefundStatusProcessed RefundStatus = "PROCESSED"
	RefundStatusCompleted RefundStatus = "COMPLETED"
	RefundStatusCancelled RefundStatus = "CANCELLED"
)

var refundStatusValues = []RefundStatus{
	RefundStatusRequested,
	RefundStatusApproved,
	RefundStatusDenied,
	RefundStatusProcessed,
	RefundStatusCompleted,
	RefundStatusCancelled,
}

func RefundStatusValues() []RefundStatus {
	return append([]RefundStatus(nil), refundStatusValues...)
}

func (e RefundStatus) Valid() bool {
	for _, v := range refundStatusValues {
		if e == v {
			return true
		}
	}
	return false
}

func (e RefundStatus) String() string { return string(e) }

func ParseRefundStatus(s string) (RefundStatus, error) {
	e := RefundStatus(s)
	if !e.Valid() {
		return "", fmt.Errorf("invalid refund status %q", s)
	}
	return e, nil
}

// RefundType values use lower-case wire literals.
type RefundType string

const (
	RefundTypeBookingCancellation RefundType = "booking_cancellation"
	RefundTypeDisputeResolution   RefundType = "dispute_resolution"
	RefundTypeGoodwill            RefundType = "goodwill"
)

var refundTypeValues = []RefundType{
	RefundTypeBookingCancellation,
	RefundTypeDisputeResolution,
	RefundTypeGoodwill,
}

func RefundTypeValues() []RefundType {
	return append([]RefundType(nil), refundTypeValues...)
}

func (e RefundType) Valid() bool {
	for _, v := range refundTypeValues {
		if e == v {
			return true
		}
	}
	return false
}

func (e RefundType) String() string { return string(e) }

func ParseRefundType(s string) (RefundType, error) {
	e := RefundType(s)
	if !e.Valid() {
		return "", fmt.Errorf("invalid refund type %q", s)
	}
	return e, nil
}

type RewardStatus string

const (
	RewardStatusEarned   RewardStatus = "EARNED"
	RewardStatusRedeemed RewardStatus = "REDEEMED"
	RewardStatusExpired  RewardStatus = "EXPIRED"
)

var rewardStatusValues = []RewardStatus{
	RewardStatusEarned,
	RewardStatusRedeemed,
	RewardStatusExpired,
}

func RewardStatusValues() []RewardStatus {
	return append([]RewardStatus(nil), rewardStatusValues...)
}

func (e RewardStatus) Valid() bool {
	for _, v := range rewardStatusValues {
		if e == v {
			return true
		}
	}
	return false
}

func (e RewardStatus) String() string { return string(e) }

func ParseRewardStatus(s string) (RewardStatus, error) {
	e := RewardStatus(s)
	if !e.Valid() {
		return "", fmt.Errorf("invalid reward status %q", s)
	}
	return e, nil
}

type TokenType string

const (
	TokenTypeSingleUse TokenType = "SINGLE_USE"
	TokenTypeMultiUse  TokenType = "MULTI_USE"
	TokenTypeRecurring TokenType = "RECURRING"
)

var tokenTypeValues = []TokenType{
	TokenTypeSingleUse,
	TokenTypeMultiUse,
	TokenTypeRecurring,
}

func TokenTypeValues() []TokenType {
	return append([]TokenType(nil), tokenTypeValues...)
}

func (e TokenType) Valid() bool {
	for _, v := range tokenTypeValues {
		if e == v {
			return true
		}
	}
	return false
}

func (e TokenType) String() string { return string(e) }

func ParseTokenType(s string) (TokenType, error) {
	e := TokenType(s)
	if !e.Valid() {
		return "", fmt.Errorf("invalid token type %q", s)
	}
	return e, nil
}

// ProductType is the name the card endpoints use for CreditCardProduct.
type ProductType = CreditCardProduct
