package dto

import (
	"net/url"

	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

type MerchantCreate struct {
	MerchantID   string                 `json:"merchant_id" validate:"required,max=50"`
	Name         string                 `json:"name" validate:"required,max=200"`
	Description  Optional[string]       `json:"description,omitzero"`
	Category     model.MerchantCategory `json:"category" validate:"required,enum"`
	Website      Optional[string]       `json:"website,omitzero" validate:"omitempty,url"`
	ContactEmail Optional[string]       `json:"contact_email,omitzero" validate:"omitempty,email"`
	Phone        Optional[string]       `json:"phone,omitzero"`
	Address      Optional[string]       `json:"address,omitzero"`
}

type MerchantUpdate struct {
	Name         Optional[string]                 `json:"name,omitzero" validate:"omitempty,min=1,max=200"`
	Description  Optional[string]                 `json:"description,omitzero"`
	Category     Optional[model.MerchantCategory] `json:"category,omitzero" validate:"omitempty,enum"`
	Website      Optional[string]                 `json:"website,omitzero" validate:"omitempty,url"`
	ContactEmail Optional[string]                 `json:"contact_email,omitzero" validate:"omitempty,email"`
	Phone        Optional[string]                 `json:"phone,omitzero"`
	Address      Optional[string]                 `json:"address,omitzero"`
	IsActive     Optional[bool]                   `json:"is_active,omitzero"`
}

type MerchantListParams struct {
	PageParams
	Category Optional[model.MerchantCategory] `json:"category,omitzero" validate:"omitempty,enum"`
	IsActive Optional[bool]                   `json:"is_active,omitzero"`
}

func (p MerchantListParams) Values() url.Values {
	q := p.PageParams.Values()
	setOpt(q, "category", p.Category)
	setOpt(q, "is_active", p.IsActive)
	return q
}
