package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const rewardsPath = "/api/rewards"

type RewardService struct {
	client *apiclient.Client
}

func NewRewardService(client *apiclient.Client) *RewardService {
	return &RewardService{client: client}
}

func customerRewardsPath(customerID int, rest ...any) string {
	return apiclient.Path(rewardsPath, append([]any{"customer", customerID}, rest...)...)
}

func (s *RewardService) GetCustomerRewards(ctx context.Context, customerID int) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, customerRewardsPath(customerID), nil)
}

func (s *RewardService) GetRewardBalance(ctx context.Context, customerID int) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, customerRewardsPath(customerID, "balance"), nil)
}

func (s *RewardService) RedeemPoints(ctx context.Context, customerID int, req dto.RedeemPointsRequest) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, customerRewardsPath(customerID, "redeem"), req)
}

func (s *RewardService) GetRedemptionHistory(ctx context.Context, customerID int) (json.RawMessage, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, customerRewardsPath(customerID, "redemptions"), nil)
}

func (s *RewardService) CreateReward(ctx context.Context, req dto.RewardCreate) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, rewardsPath, req)
}
