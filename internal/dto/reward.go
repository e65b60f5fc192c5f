package dto

type RewardCreate struct {
	CustomerID   int              `json:"customer_id" validate:"required,min=1"`
	PointsEarned int              `json:"points_earned" validate:"min=1"`
	PaymentID    Optional[int]    `json:"payment_id,omitzero" validate:"omitempty,min=1"`
	OfferID      Optional[int]    `json:"offer_id,omitzero" validate:"omitempty,min=1"`
	Description  Optional[string] `json:"description,omitzero"`
}

type RedeemPointsRequest struct {
	Points      int              `json:"points" validate:"min=1"`
	Description Optional[string] `json:"description,omitzero"`
}
