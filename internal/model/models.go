package model

type Customer struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Address     string `json:"address,omitempty"`
	CreatedAt   *Time  `json:"created_at,omitempty"`
	UpdatedAt   *Time  `json:"updated_at,omitempty"`
}

type CreditCard struct {
	ID              int               `json:"id"`
	CustomerID      int               `json:"customer_id"`
	CardNumber      string            `json:"card_number"`
	CardHolderName  string            `json:"card_holder_name"`
	ExpiryMonth     int               `json:"expiry_month"`
	ExpiryYear      int               `json:"expiry_year"`
	ProductType     CreditCardProduct `json:"product_type"`
	CreditLimit     float64           `json:"credit_limit"`
	AvailableCredit *float64          `json:"available_credit,omitempty"`
	IsActive        *bool             `json:"is_active,omitempty"`
	CreatedAt       *Time             `json:"created_at,omitempty"`
}

type Merchant struct {
	ID           int    `json:"id"`
	MerchantID   string `json:"merchant_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	Website      string `json:"website,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	IsActive     *bool  `json:"is_active,omitempty"`
	CreatedAt    *Time  `json:"created_at,omitempty"`
}

type Offer struct {
	ID                   int      `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description,omitempty"`
	Category             string   `json:"category"`
	MerchantID           *int     `json:"merchant_id,omitempty"`
	MerchantName         string   `json:"merchant_name,omitempty"`
	DiscountPercentage   *float64 `json:"discount_percentage,omitempty"`
	MaxDiscountAmount    *float64 `json:"max_discount_amount,omitempty"`
	MinTransactionAmount *float64 `json:"min_transaction_amount,omitempty"`
	RewardPoints         *int     `json:"reward_points,omitempty"`
	StartDate            *Time    `json:"start_date,omitempty"`
	ExpiryDate           *Time    `json:"expiry_date,omitempty"`
	IsActive             *bool    `json:"is_active,omitempty"`
}

type OfferActivation struct {
	ID          int   `json:"id"`
	OfferID     int   `json:"offer_id"`
	CustomerID  int   `json:"customer_id"`
	ActivatedAt *Time `json:"activated_at,omitempty"`
	IsUsed      *bool `json:"is_used,omitempty"`
}

type Payment struct {
	ID               int           `json:"id"`
	CreditCardID     int           `json:"credit_card_id"`
	Amount           float64       `json:"amount"`
	MerchantName     string        `json:"merchant_name"`
	MerchantCategory string        `json:"merchant_category,omitempty"`
	TransactionDate  *Time         `json:"transaction_date,omitempty"`
	Status           PaymentStatus `json:"status"`
	ReferenceNumber  string        `json:"reference_number,omitempty"`
	Description      string        `json:"description,omitempty"`
}

type Reward struct {
	ID             int          `json:"id"`
	CustomerID     int          `json:"customer_id"`
	PaymentID      *int         `json:"payment_id,omitempty"`
	OfferID        *int         `json:"offer_id,omitempty"`
	PointsEarned   *int         `json:"points_earned,omitempty"`
	PointsRedeemed *int         `json:"points_redeemed,omitempty"`
	DollarValue    *float64     `json:"dollar_value,omitempty"`
	Status         RewardStatus `json:"status"`
	EarnedDate     *Time        `json:"earned_date,omitempty"`
	RedeemedDate   *Time        `json:"redeemed_date,omitempty"`
	ExpiryDate     *Time        `json:"expiry_date,omitempty"`
	Description    string       `json:"description,omitempty"`
}

type Refund struct {
	ID           int          `json:"id"`
	CustomerID   *int         `json:"customer_id,omitempty"`
	RefundType   RefundType   `json:"refund_type"`
	RefundAmount float64      `json:"refund_amount"`
	Reason       string       `json:"reason"`
	Status       RefundStatus `json:"status"`
	BookingID    *int         `json:"booking_id,omitempty"`
	PaymentID    *int         `json:"payment_id,omitempty"`
	RequestedAt  Time         `json:"requested_at"`
	ProcessedAt  *Time        `json:"processed_at,omitempty"`
	AdminNotes   string       `json:"admin_notes,omitempty"`
	DenialReason string       `json:"denial_reason,omitempty"`
}

type BookingStatusResponse struct {
	BookingID     int           `json:"booking_id"`
	Status        BookingStatus `json:"status"`
	StatusDetails string        `json:"status_details,omitempty"`
	LastUpdated   Time          `json:"last_updated"`
}

type CardToken struct {
	ID         string    `json:"id"`
	CardID     int       `json:"card_id"`
	CustomerID int       `json:"customer_id"`
	TokenType  TokenType `json:"token_type"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  Time      `json:"created_at"`
	ExpiresAt  Time      `json:"expires_at"`
	LastUsedAt *Time     `json:"last_used_at,omitempty"`
	UsageCount int       `json:"usage_count"`
}

type TokenValidationResponse struct {
	IsValid bool       `json:"is_valid"`
	Token   *CardToken `json:"token,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type IntegrationStatus struct {
	Service   string         `json:"service"`
	Status    string         `json:"status"`
	LastCheck Time           `json:"last_check"`
	Details   map[string]any `json:"details,omitempty"`
}

type CustomerProfileHistory struct {
	ID                  int      `json:"id"`
	CustomerID          int      `json:"customer_id"`
	CustomerName        string   `json:"customer_name,omitempty"`
	MerchantID          *int     `json:"merchant_id,omitempty"`
	MerchantName        string   `json:"merchant_name,omitempty"`
	OfferID             *int     `json:"offer_id,omitempty"`
	OfferTitle          string   `json:"offer_title,omitempty"`
	PaymentID           *int     `json:"payment_id,omitempty"`
	AmountAvailed       *float64 `json:"amount_availed,omitempty"`
	TransactionAmount   *float64 `json:"transaction_amount,omitempty"`
	SavingsPercentage   *float64 `json:"savings_percentage,omitempty"`
	StatementDescriptor string   `json:"statement_descriptor,omitempty"`
	AvailedDate         *Time    `json:"availed_date,omitempty"`
	OfferCategory       string   `json:"offer_category,omitempty"`
	MerchantCategory    string   `json:"merchant_category,omitempty"`
}
