package dto

import "net/url"

// PageParams are the pagination knobs shared by list endpoints. Only the
// fields a caller supplies reach the query string.
type PageParams struct {
	Page    Optional[int] `json:"page,omitzero" validate:"omitempty,min=1"`
	PerPage Optional[int] `json:"per_page,omitzero" validate:"omitempty,min=1,max=100"`
}

func (p PageParams) addTo(q url.Values) {
	setOpt(q, "page", p.Page)
	setOpt(q, "per_page", p.PerPage)
}

func (p PageParams) Values() url.Values {
	q := url.Values{}
	p.addTo(q)
	return q
}
