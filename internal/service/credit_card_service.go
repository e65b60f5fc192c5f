package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const creditCardsPath = "/api/credit-cards"

type CreditCardService struct {
	client *apiclient.Client
}

func NewCreditCardService(client *apiclient.Client) *CreditCardService {
	return &CreditCardService{client: client}
}

func (s *CreditCardService) AddCreditCard(ctx context.Context, customerID int, req dto.CreditCardCreate) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, apiclient.Path(customersPath, customerID, "credit-cards"), req)
}

func (s *CreditCardService) ListCustomerCreditCards(ctx context.Context, customerID int) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(customersPath, customerID, "credit-cards"), nil)
}

func (s *CreditCardService) GetCreditCard(ctx context.Context, cardID int) (json.RawMessage, error) {
	if err := requireID("card_id", cardID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(creditCardsPath, cardID), nil)
}

func (s *CreditCardService) UpdateCreditCard(ctx context.Context, cardID int, req dto.CreditCardUpdate) (json.RawMessage, error) {
	if err := requireID("card_id", cardID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Put(ctx, apiclient.Path(creditCardsPath, cardID), req)
}

func (s *CreditCardService) DeleteCreditCard(ctx context.Context, cardID int) (json.RawMessage, error) {
	if err := requireID("card_id", cardID); err != nil {
		return nil, err
	}
	return s.client.Delete(ctx, apiclient.Path(creditCardsPath, cardID))
}
