package dto

import (
	"net/url"

	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

type OfferCreate struct {
	Title                string              `json:"title" validate:"required,max=200"`
	Description          Optional[string]    `json:"description,omitzero"`
	Category             model.OfferCategory `json:"category" validate:"required,enum"`
	MerchantID           Optional[int]       `json:"merchant_id,omitzero" validate:"omitempty,min=1"`
	DiscountPercentage   Optional[float64]   `json:"discount_percentage,omitzero" validate:"omitempty,gte=0,lte=100"`
	MaxDiscountAmount    Optional[float64]   `json:"max_discount_amount,omitzero" validate:"omitempty,gte=0"`
	MinTransactionAmount Optional[float64]   `json:"min_transaction_amount,omitzero" validate:"omitempty,gte=0"`
	RewardPoints         Optional[int]       `json:"reward_points,omitzero" validate:"omitempty,gte=0"`
	StartDate            model.Time          `json:"start_date" validate:"required"`
	ExpiryDate           model.Time          `json:"expiry_date" validate:"required"`
	TermsAndConditions   Optional[string]    `json:"terms_and_conditions,omitzero"`
}

type OfferUpdate struct {
	Title                Optional[string]              `json:"title,omitzero" validate:"omitempty,min=1,max=200"`
	Description          Optional[string]              `json:"description,omitzero"`
	Category             Optional[model.OfferCategory] `json:"category,omitzero" validate:"omitempty,enum"`
	MerchantID           Optional[int]                 `json:"merchant_id,omitzero" validate:"omitempty,min=1"`
	DiscountPercentage   Optional[float64]             `json:"discount_percentage,omitzero" validate:"omitempty,gte=0,lte=100"`
	MaxDiscountAmount    Optional[float64]             `json:"max_discount_amount,omitzero" validate:"omitempty,gte=0"`
	MinTransactionAmount Optional[float64]             `json:"min_transaction_amount,omitzero" validate:"omitempty,gte=0"`
	RewardPoints         Optional[int]                 `json:"reward_points,omitzero" validate:"omitempty,gte=0"`
	StartDate            Optional[model.Time]          `json:"start_date,omitzero"`
	ExpiryDate           Optional[model.Time]          `json:"expiry_date,omitzero"`
	TermsAndConditions   Optional[string]              `json:"terms_and_conditions,omitzero"`
	IsActive             Optional[bool]                `json:"is_active,omitzero"`
}

type OfferActivationRequest struct {
	CustomerID int `json:"customer_id" validate:"required,min=1"`
}

type OfferListParams struct {
	PageParams
	Category   Optional[model.OfferCategory] `json:"category,omitzero" validate:"omitempty,enum"`
	MerchantID Optional[int]                 `json:"merchant_id,omitzero" validate:"omitempty,min=1"`
	IsActive   Optional[bool]                `json:"is_active,omitzero"`
}

func (p OfferListParams) Values() url.Values {
	q := p.PageParams.Values()
	setOpt(q, "category", p.Category)
	setOpt(q, "merchant_id", p.MerchantID)
	setOpt(q, "is_active", p.IsActive)
	return q
}
