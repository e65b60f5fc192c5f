package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const shoppingPath = "/offers/shopping"

type ShoppingService struct {
	client *apiclient.Client
}

func NewShoppingService(client *apiclient.Client) *ShoppingService {
	return &ShoppingService{client: client}
}

func (s *ShoppingService) SearchProducts(ctx context.Context, req dto.ShoppingProductSearch) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, shoppingPath+"/search", req)
}

func (s *ShoppingService) GetProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	if err := requireKey("product_id", productID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(shoppingPath, "product", productID), nil)
}

func (s *ShoppingService) GetCategories(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, shoppingPath+"/categories", nil)
}

func (s *ShoppingService) GetBrands(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, shoppingPath+"/brands", nil)
}

func (s *ShoppingService) AddToCart(ctx context.Context, req dto.ShoppingCartItem) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, shoppingPath+"/add-to-cart", req)
}

func (s *ShoppingService) CreateOrder(ctx context.Context, req dto.ShoppingOrder) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, shoppingPath+"/create-order", req)
}

func (s *ShoppingService) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	if err := requireKey("order_id", orderID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(shoppingPath, "order", orderID), nil)
}
