package dto

import "github.com/anyulbade/card-rewards-gateway/internal/model"

type CreditCardCreate struct {
	CardNumber     string            `json:"card_number" validate:"required,number,min=13,max=19"`
	CardHolderName string            `json:"card_holder_name" validate:"required,max=200"`
	ExpiryMonth    int               `json:"expiry_month" validate:"min=1,max=12"`
	ExpiryYear     int               `json:"expiry_year" validate:"min=2000,max=2100"`
	ProductType    model.ProductType `json:"product_type" validate:"required,enum"`
	CreditLimit    float64           `json:"credit_limit" validate:"gt=0"`
}

type CreditCardUpdate struct {
	CardHolderName Optional[string]                  `json:"card_holder_name,omitzero" validate:"omitempty,min=1,max=200"`
	ExpiryMonth    Optional[int]                     `json:"expiry_month,omitzero" validate:"omitempty,min=1,max=12"`
	ExpiryYear     Optional[int]                     `json:"expiry_year,omitzero" validate:"omitempty,min=2000,max=2100"`
	ProductType    Optional[model.CreditCardProduct] `json:"product_type,omitzero" validate:"omitempty,enum"`
	CreditLimit    Optional[float64]                 `json:"credit_limit,omitzero" validate:"omitempty,gt=0"`
	IsActive       Optional[bool]                    `json:"is_active,omitzero"`
}
