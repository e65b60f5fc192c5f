package dto

import (
	"net/url"

	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

type RefundRequest struct {
	RefundType   model.RefundType `json:"refund_type" validate:"required,enum"`
	RefundAmount float64          `json:"refund_amount" validate:"gt=0"`
	Reason       string           `json:"reason" validate:"required"`
	BookingID    Optional[int]    `json:"booking_id,omitzero" validate:"omitempty,min=1"`
	PaymentID    Optional[int]    `json:"payment_id,omitzero" validate:"omitempty,min=1"`
}

type PointsRefundRequest struct {
	CustomerID     int    `json:"customer_id" validate:"required,min=1"`
	PointsToRefund int    `json:"points_to_refund" validate:"min=1"`
	Reason         string `json:"reason" validate:"required"`
}

type RefundApproval struct {
	Approved   Optional[bool]   `json:"approved,omitzero"`
	AdminNotes Optional[string] `json:"admin_notes,omitzero"`
}

type RefundDenial struct {
	DenialReason Optional[string] `json:"denial_reason,omitzero"`
	AdminNotes   Optional[string] `json:"admin_notes,omitzero"`
}

type RefundListParams struct {
	PageParams
	CustomerID Optional[string]             `json:"customer_id,omitzero"`
	Status     Optional[model.RefundStatus] `json:"status,omitzero" validate:"omitempty,enum"`
	RefundType Optional[model.RefundType]   `json:"refund_type,omitzero" validate:"omitempty,enum"`
}

func (p RefundListParams) Values() url.Values {
	q := p.PageParams.Values()
	setOpt(q, "customer_id", p.CustomerID)
	setOpt(q, "status", p.Status)
	setOpt(q, "refund_type", p.RefundType)
	return q
}
