package dto

import "net/url"

type CustomerCreate struct {
	FirstName   string           `json:"first_name" validate:"required,max=100"`
	LastName    string           `json:"last_name" validate:"required,max=100"`
	Email       string           `json:"email" validate:"required,email"`
	Phone       Optional[string] `json:"phone,omitzero"`
	DateOfBirth Optional[string] `json:"date_of_birth,omitzero"`
	Address     Optional[string] `json:"address,omitzero"`
}

type CustomerUpdate struct {
	FirstName   Optional[string] `json:"first_name,omitzero" validate:"omitempty,min=1,max=100"`
	LastName    Optional[string] `json:"last_name,omitzero" validate:"omitempty,min=1,max=100"`
	Email       Optional[string] `json:"email,omitzero" validate:"omitempty,email"`
	Phone       Optional[string] `json:"phone,omitzero"`
	DateOfBirth Optional[string] `json:"date_of_birth,omitzero"`
	Address     Optional[string] `json:"address,omitzero"`
}

type CustomerListParams struct {
	PageParams
	Email Optional[string] `json:"email,omitzero"`
}

func (p CustomerListParams) Values() url.Values {
	q := p.PageParams.Values()
	setOpt(q, "email", p.Email)
	return q
}
