package model

import "time"

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Pagination is embedded by list responses. The API reports the page under
// either "current_page" or "page" depending on the resource.
type Pagination struct {
	Total       int  `json:"total"`
	CurrentPage *int `json:"current_page,omitempty"`
	Page        *int `json:"page,omitempty"`
	PerPage     *int `json:"per_page,omitempty"`
	Pages       *int `json:"pages,omitempty"`
}

// PageNumber returns whichever page field the API populated.
func (p Pagination) PageNumber() int {
	switch {
	case p.CurrentPage != nil:
		return *p.CurrentPage
	case p.Page != nil:
		return *p.Page
	default:
		return 0
	}
}

type CustomerListResponse struct {
	Customers []Customer `json:"customers"`
	Pagination
}

type CreditCardListResponse struct {
	CreditCards []CreditCard `json:"credit_cards"`
	Pagination
}

type MerchantListResponse struct {
	Merchants []Merchant `json:"merchants"`
	Pagination
}

type OfferListResponse struct {
	Offers []Offer `json:"offers"`
	Pagination
}

type PaymentListResponse struct {
	Payments []Payment `json:"payments"`
	Pagination
}

type RewardListResponse struct {
	Rewards []Reward `json:"rewards"`
	Pagination
}

type RefundListResponse struct {
	Refunds []Refund `json:"refunds"`
	Pagination
}

type PaymentResponse struct {
	Payment       Payment          `json:"payment"`
	RewardsEarned int              `json:"rewards_earned"`
	OffersApplied []map[string]any `json:"offers_applied"`
}

type RewardBalanceResponse struct {
	TotalPoints     int     `json:"total_points"`
	AvailablePoints int     `json:"available_points"`
	DollarValue     float64 `json:"dollar_value"`
}

type MerchantAnalyticsResponse struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalAmount       float64 `json:"total_amount"`
	TotalDiscounts    float64 `json:"total_discounts"`
	ActiveOffers      int     `json:"active_offers"`
}

type CategoryInfo struct {
	Value       string `json:"value"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type MerchantCategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

type OfferCategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

type ProfileHistoryResponse struct {
	History []CustomerProfileHistory `json:"history"`
}

type CustomerProfileHistoryResponse struct {
	History    []CustomerProfileHistory `json:"history"`
	TotalSaved float64                  `json:"total_saved"`
}
