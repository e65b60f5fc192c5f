package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const merchantsPath = "/api/merchants"

type MerchantService struct {
	client *apiclient.Client
}

func NewMerchantService(client *apiclient.Client) *MerchantService {
	return &MerchantService{client: client}
}

func (s *MerchantService) ListMerchants(ctx context.Context, params dto.MerchantListParams) (json.RawMessage, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, merchantsPath, params.Values())
}

func (s *MerchantService) CreateMerchant(ctx context.Context, req dto.MerchantCreate) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, merchantsPath, req)
}

func (s *MerchantService) GetMerchant(ctx context.Context, merchantID int) (json.RawMessage, error) {
	if err := requireID("merchant_id", merchantID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(merchantsPath, merchantID), nil)
}

func (s *MerchantService) UpdateMerchant(ctx context.Context, merchantID int, req dto.MerchantUpdate) (json.RawMessage, error) {
	if err := requireID("merchant_id", merchantID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Put(ctx, apiclient.Path(merchantsPath, merchantID), req)
}

func (s *MerchantService) DeleteMerchant(ctx context.Context, merchantID int) (json.RawMessage, error) {
	if err := requireID("merchant_id", merchantID); err != nil {
		return nil, err
	}
	return s.client.Delete(ctx, apiclient.Path(merchantsPath, merchantID))
}

func (s *MerchantService) GetMerchantAnalytics(ctx context.Context, merchantID int) (json.RawMessage, error) {
	if err := requireID("merchant_id", merchantID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(merchantsPath, merchantID, "analytics"), nil)
}

func (s *MerchantService) ListMerchantCategories(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, merchantsPath+"/categories", nil)
}
