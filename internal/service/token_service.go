package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const tokensPath = "/api/tokens"

type TokenService struct {
	client *apiclient.Client
}

func NewTokenService(client *apiclient.Client) *TokenService {
	return &TokenService{client: client}
}

func (s *TokenService) CreateCardToken(ctx context.Context, req dto.CardTokenRequest) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, tokensPath+"/create", req)
}

func (s *TokenService) ValidateCardToken(ctx context.Context, tokenID string) (json.RawMessage, error) {
	if err := requireKey("token_id", tokenID); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, apiclient.Path(tokensPath, tokenID, "validate"), nil)
}

func (s *TokenService) GetToken(ctx context.Context, tokenID string) (json.RawMessage, error) {
	if err := requireKey("token_id", tokenID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(tokensPath, tokenID), nil)
}

func (s *TokenService) DeactivateCardToken(ctx context.Context, tokenID string) (json.RawMessage, error) {
	if err := requireKey("token_id", tokenID); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, apiclient.Path(tokensPath, tokenID, "deactivate"), nil)
}

func (s *TokenService) GetCardTokens(ctx context.Context, cardID int, params dto.TokenListParams) (json.RawMessage, error) {
	if err := requireID("card_id", cardID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(tokensPath, "card", cardID, "tokens"), params.Values())
}

func (s *TokenService) GetCustomerTokens(ctx context.Context, customerID int, params dto.TokenListParams) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(tokensPath, "customer", customerID), params.Values())
}
