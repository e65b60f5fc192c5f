package dto

import (
	"net/url"

	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

type PaymentCreate struct {
	CreditCardID     int              `json:"credit_card_id" validate:"required,min=1"`
	Amount           float64          `json:"amount" validate:"gt=0"`
	MerchantName     string           `json:"merchant_name" validate:"required,max=200"`
	MerchantCategory Optional[string] `json:"merchant_category,omitzero"`
	Description      Optional[string] `json:"description,omitzero"`
}

type PaymentRefund struct {
	Amount Optional[float64] `json:"amount,omitzero" validate:"omitempty,gt=0"`
	Reason string            `json:"reason" validate:"required"`
}

type PaymentListParams struct {
	PageParams
	CustomerID Optional[int]                 `json:"customer_id,omitzero" validate:"omitempty,min=1"`
	StartDate  Optional[string]              `json:"start_date,omitzero" validate:"omitempty,datetime=2006-01-02"`
	EndDate    Optional[string]              `json:"end_date,omitzero" validate:"omitempty,datetime=2006-01-02"`
	Status     Optional[model.PaymentStatus] `json:"status,omitzero" validate:"omitempty,enum"`
}

func (p PaymentListParams) Values() url.Values {
	q := p.PageParams.Values()
	setOpt(q, "customer_id", p.CustomerID)
	setOpt(q, "start_date", p.StartDate)
	setOpt(q, "end_date", p.EndDate)
	setOpt(q, "status", p.Status)
	return q
}
