package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const customersPath = "/api/customers"

type CustomerService struct {
	client *apiclient.Client
}

func NewCustomerService(client *apiclient.Client) *CustomerService {
	return &CustomerService{client: client}
}

func (s *CustomerService) ListCustomers(ctx context.Context, params dto.CustomerListParams) (json.RawMessage, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, customersPath, params.Values())
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CustomerCreate) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, customersPath, req)
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID int) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(customersPath, customerID), nil)
}

// UpdateCustomer sends only the fields set on req.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID int, req dto.CustomerUpdate) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Put(ctx, apiclient.Path(customersPath, customerID), req)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID int) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	return s.client.Delete(ctx, apiclient.Path(customersPath, customerID))
}
