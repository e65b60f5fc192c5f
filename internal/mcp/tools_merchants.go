package mcp

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/dto"
	"github.com/anyulbade/card-rewards-gateway/internal/service"
)

type merchantIDArgs struct {
	MerchantID int `json:"merchant_id" validate:"required,min=1" desc:"Merchant ID"`
}

type createMerchantArgs struct {
	Merchant dto.MerchantCreate `json:"merchant" desc:"New merchant"`
}

type updateMerchantArgs struct {
	MerchantID int                `json:"merchant_id" validate:"required,min=1" desc:"Merchant ID"`
	Merchant   dto.MerchantUpdate `json:"merchant" desc:"Fields to change"`
}

func registerMerchantTools(r *Registry, svc *service.MerchantService) {
	addTool(r, "list_merchants",
		"List merchants, optionally filtered by category and active flag.",
		[]string{"merchants", "search"},
		func(ctx context.Context, a dto.MerchantListParams) (json.RawMessage, error) {
			return svc.ListMerchants(ctx, a)
		})

	addTool(r, "create_merchant",
		"Register a merchant.",
		[]string{"merchants", "onboarding"},
		func(ctx context.Context, a createMerchantArgs) (json.RawMessage, error) {
			return svc.CreateMerchant(ctx, a.Merchant)
		})

	addTool(r, "get_merchant_details",
		"Get a merchant by ID.",
		[]string{"merchants"},
		func(ctx context.Context, a merchantIDArgs) (json.RawMessage, error) {
			return svc.GetMerchant(ctx, a.MerchantID)
		})

	addTool(r, "update_merchant",
		"Update selected fields of a merchant.",
		[]string{"merchants"},
		func(ctx context.Context, a updateMerchantArgs) (json.RawMessage, error) {
			return svc.UpdateMerchant(ctx, a.MerchantID, a.Merchant)
		})

	addTool(r, "delete_merchant",
		"Delete a merchant.",
		[]string{"merchants"},
		func(ctx context.Context, a merchantIDArgs) (json.RawMessage, error) {
			return svc.DeleteMerchant(ctx, a.MerchantID)
		})

	addTool(r, "get_merchant_analytics",
		"Get transaction totals, discounts given and active offers for a merchant.",
		[]string{"merchants", "analytics"},
		func(ctx context.Context, a merchantIDArgs) (json.RawMessage, error) {
			return svc.GetMerchantAnalytics(ctx, a.MerchantID)
		})

	addTool(r, "list_merchant_categories",
		"List the merchant categories the API accepts.",
		[]string{"merchants", "reference_data"},
		func(ctx context.Context, _ noArgs) (json.RawMessage, error) {
			return svc.ListMerchantCategories(ctx)
		})
}

type offerIDArgs struct {
	OfferID int `json:"offer_id" validate:"required,min=1" desc:"Offer ID"`
}

type createOfferArgs struct {
	Offer dto.OfferCreate `json:"offer" desc:"New offer"`
}

type updateOfferArgs struct {
	OfferID int             `json:"offer_id" validate:"required,min=1" desc:"Offer ID"`
	Offer   dto.OfferUpdate `json:"offer" desc:"Fields to change"`
}

type activateOfferArgs struct {
	OfferID int                        `json:"offer_id" validate:"required,min=1" desc:"Offer ID"`
	Request dto.OfferActivationRequest `json:"request" desc:"Customer enrolling in the offer"`
}

func registerOfferTools(r *Registry, svc *service.OfferService) {
	addTool(r, "list_offers",
		"List offers, optionally filtered by category, merchant and active flag.",
		[]string{"offers", "search"},
		func(ctx context.Context, a dto.OfferListParams) (json.RawMessage, error) {
			return svc.ListOffers(ctx, a)
		})

	addTool(r, "create_offer",
		"Create a promotional offer.",
		[]string{"offers", "promotions"},
		func(ctx context.Context, a createOfferArgs) (json.RawMessage, error) {
			return svc.CreateOffer(ctx, a.Offer)
		})

	addTool(r, "get_offer_details",
		"Get an offer by ID.",
		[]string{"offers"},
		func(ctx context.Context, a offerIDArgs) (json.RawMessage, error) {
			return svc.GetOffer(ctx, a.OfferID)
		})

	addTool(r, "update_offer",
		"Update selected fields of an offer.",
		[]string{"offers"},
		func(ctx context.Context, a updateOfferArgs) (json.RawMessage, error) {
			return svc.UpdateOffer(ctx, a.OfferID, a.Offer)
		})

	addTool(r, "delete_offer",
		"Delete an offer.",
		[]string{"offers"},
		func(ctx context.Context, a offerIDArgs) (json.RawMessage, error) {
			return svc.DeleteOffer(ctx, a.OfferID)
		})

	addTool(r, "activate_offer",
		"Enroll a customer in an offer.",
		[]string{"offers", "activation", "customers"},
		func(ctx context.Context, a activateOfferArgs) (json.RawMessage, error) {
			return svc.ActivateOffer(ctx, a.OfferID, a.Request)
		})

	addTool(r, "get_offer_statistics",
		"Get activation and redemption statistics for an offer.",
		[]string{"offers", "analytics"},
		func(ctx context.Context, a offerIDArgs) (json.RawMessage, error) {
			return svc.GetOfferStatistics(ctx, a.OfferID)
		})

	addTool(r, "list_offer_categories",
		"List the offer categories the API accepts.",
		[]string{"offers", "reference_data"},
		func(ctx context.Context, _ noArgs) (json.RawMessage, error) {
			return svc.ListOfferCategories(ctx)
		})
}
