package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const paymentsPath = "/api/payments"

type PaymentService struct {
	client *apiclient.Client
}

func NewPaymentService(client *apiclient.Client) *PaymentService {
	return &PaymentService{client: client}
}

func (s *PaymentService) ListPayments(ctx context.Context, params dto.PaymentListParams) (json.RawMessage, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, paymentsPath, params.Values())
}

// MakePayment rejects non-positive amounts before contacting the API.
func (s *PaymentService) MakePayment(ctx context.Context, req dto.PaymentCreate) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, paymentsPath, req)
}

func (s *PaymentService) GetPayment(ctx context.Context, paymentID int) (json.RawMessage, error) {
	if err := requireID("payment_id", paymentID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(paymentsPath, paymentID), nil)
}

func (s *PaymentService) RefundPayment(ctx context.Context, paymentID int, req dto.PaymentRefund) (json.RawMessage, error) {
	if err := requireID("payment_id", paymentID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, apiclient.Path(paymentsPath, paymentID, "refund"), req)
}

func (s *PaymentService) GetSpendingAnalytics(ctx context.Context, customerID int) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(paymentsPath, "customer", customerID, "analytics"), nil)
}
