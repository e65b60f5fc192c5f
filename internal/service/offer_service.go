package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const offersPath = "/api/offers"

type OfferService struct {
	client *apiclient.Client
}

func NewOfferService(client *apiclient.Client) *OfferService {
	return &OfferService{client: client}
}

func (s *OfferService) ListOffers(ctx context.Context, params dto.OfferListParams) (json.RawMessage, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, offersPath, params.Values())
}

func (s *OfferService) CreateOffer(ctx context.Context, req dto.OfferCreate) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, offersPath, req)
}

func (s *OfferService) GetOffer(ctx context.Context, offerID int) (json.RawMessage, error) {
	if err := requireID("offer_id", offerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(offersPath, offerID), nil)
}

func (s *OfferService) UpdateOffer(ctx context.Context, offerID int, req dto.OfferUpdate) (json.RawMessage, error) {
	if err := requireID("offer_id", offerID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Put(ctx, apiclient.Path(offersPath, offerID), req)
}

func (s *OfferService) DeleteOffer(ctx context.Context, offerID int) (json.RawMessage, error) {
	if err := requireID("offer_id", offerID); err != nil {
		return nil, err
	}
	return s.client.Delete(ctx, apiclient.Path(offersPath, offerID))
}

func (s *OfferService) ActivateOffer(ctx context.Context, offerID int, req dto.OfferActivationRequest) (json.RawMessage, error) {
	if err := requireID("offer_id", offerID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, apiclient.Path(offersPath, offerID, "activate"), req)
}

func (s *OfferService) GetOfferStatistics(ctx context.Context, offerID int) (json.RawMessage, error) {
	if err := requireID("offer_id", offerID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(offersPath, offerID, "statistics"), nil)
}

func (s *OfferService) ListOfferCategories(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, offersPath+"/categories", nil)
}
