package dto

import "net/url"

type ProfileHistoryParams struct {
	CustomerID Optional[int]    `json:"customer_id,omitzero" validate:"omitempty,min=1"`
	MerchantID Optional[int]    `json:"merchant_id,omitzero" validate:"omitempty,min=1"`
	StartDate  Optional[string] `json:"start_date,omitzero" validate:"omitempty,datetime=2006-01-02"`
	EndDate    Optional[string] `json:"end_date,omitzero" validate:"omitempty,datetime=2006-01-02"`
}

func (p ProfileHistoryParams) Values() url.Values {
	q := url.Values{}
	setOpt(q, "customer_id", p.CustomerID)
	setOpt(q, "merchant_id", p.MerchantID)
	setOpt(q, "start_date", p.StartDate)
	setOpt(q, "end_date", p.EndDate)
	return q
}
