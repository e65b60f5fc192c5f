package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const profileHistoryPath = "/api/profile-history"

type ProfileHistoryService struct {
	client *apiclient.Client
}

func NewProfileHistoryService(client *apiclient.Client) *ProfileHistoryService {
	return &ProfileHistoryService{client: client}
}

func (s *ProfileHistoryService) ListProfileHistory(ctx context.Context, params dto.ProfileHistoryParams) (json.RawMessage, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, profileHistoryPath, params.Values())
}

func (s *ProfileHistoryService) GetCustomerProfileHistory(ctx context.Context, customerID int) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(profileHistoryPath, "customer", customerID), nil)
}
