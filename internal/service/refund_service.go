package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const refundsPath = "/api/refunds"

type RefundService struct {
	client *apiclient.Client
}

func NewRefundService(client *apiclient.Client) *RefundService {
	return &RefundService{client: client}
}

// ListRefunds only sends page and per_page when the caller supplied them.
func (s *RefundService) ListRefunds(ctx context.Context, params dto.RefundListParams) (json.RawMessage, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, refundsPath, params.Values())
}

func (s *RefundService) SubmitRefundRequest(ctx context.Context, req dto.RefundRequest) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, refundsPath+"/request", req)
}

func (s *RefundService) GetRefund(ctx context.Context, refundID int) (json.RawMessage, error) {
	if err := requireID("refund_id", refundID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(refundsPath, refundID), nil)
}

func (s *RefundService) ApproveRefund(ctx context.Context, refundID int, req dto.RefundApproval) (json.RawMessage, error) {
	if err := requireID("refund_id", refundID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, apiclient.Path(refundsPath, refundID, "approve"), req)
}

func (s *RefundService) DenyRefund(ctx context.Context, refundID int, req dto.RefundDenial) (json.RawMessage, error) {
	if err := requireID("refund_id", refundID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, apiclient.Path(refundsPath, refundID, "deny"), req)
}

func (s *RefundService) RequestPointsRefund(ctx context.Context, req dto.PointsRefundRequest) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, refundsPath+"/points/cancel", req)
}
