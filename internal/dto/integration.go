package dto

import (
	"net/url"

	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

type CardTokenRequest struct {
	CardID         int                       `json:"card_id" validate:"required,min=1"`
	TokenType      Optional[model.TokenType] `json:"token_type,omitzero" validate:"omitempty,enum"`
	ExpiresInHours Optional[int]             `json:"expires_in_hours,omitzero" validate:"omitempty,min=1,max=8760"`
}

type TokenListParams struct {
	IsActive Optional[bool] `json:"is_active,omitzero"`
}

func (p TokenListParams) Values() url.Values {
	q := url.Values{}
	setOpt(q, "is_active", p.IsActive)
	return q
}

type HotelSearchRequest struct {
	City         string        `json:"city" validate:"required"`
	CheckInDate  string        `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string        `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Rooms        Optional[int] `json:"rooms,omitzero" validate:"omitempty,min=1"`
	Guests       Optional[int] `json:"guests,omitzero" validate:"omitempty,min=1"`
}

type HotelBookingRequest struct {
	HotelID         string           `json:"hotel_id" validate:"required"`
	CustomerID      int              `json:"customer_id" validate:"required,min=1"`
	CheckInDate     string           `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string           `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Rooms           Optional[int]    `json:"rooms,omitzero" validate:"omitempty,min=1"`
	Guests          Optional[int]    `json:"guests,omitzero" validate:"omitempty,min=1"`
	GuestName       Optional[string] `json:"guest_name,omitzero"`
	SpecialRequests Optional[string] `json:"special_requests,omitzero"`
	PaymentMethod   Optional[string] `json:"payment_method,omitzero" validate:"omitempty,oneof=credit_card points"`
}

type FlightSearchRequest struct {
	Origin        string           `json:"origin" validate:"required,len=3"`
	Destination   string           `json:"destination" validate:"required,len=3"`
	DepartureDate string           `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    Optional[string] `json:"return_date,omitzero" validate:"omitempty,datetime=2006-01-02"`
	Passengers    Optional[int]    `json:"passengers,omitzero" validate:"omitempty,min=1,max=9"`
	CabinClass    Optional[string] `json:"cabin_class,omitzero"`
}

type Passenger struct {
	FirstName      string           `json:"first_name" validate:"required"`
	LastName       string           `json:"last_name" validate:"required"`
	DateOfBirth    Optional[string] `json:"date_of_birth,omitzero"`
	PassportNumber Optional[string] `json:"passport_number,omitzero"`
}

type FlightBookingRequest struct {
	FlightID      string           `json:"flight_id" validate:"required"`
	CustomerID    int              `json:"customer_id" validate:"required,min=1"`
	Passengers    []Passenger      `json:"passengers" validate:"required,min=1,dive"`
	PaymentMethod Optional[string] `json:"payment_method,omitzero" validate:"omitempty,oneof=credit_card points"`
}

type TravelPackageSearchRequest struct {
	Destination    string            `json:"destination" validate:"required"`
	StartDate      string            `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string            `json:"end_date" validate:"required,datetime=2006-01-02"`
	Travelers      Optional[int]     `json:"travelers,omitzero" validate:"omitempty,min=1"`
	Budget         Optional[float64] `json:"budget,omitzero" validate:"omitempty,gt=0"`
	IncludeFlights Optional[bool]    `json:"include_flights,omitzero"`
	IncludeHotels  Optional[bool]    `json:"include_hotels,omitzero"`
}

type ShoppingProductSearch struct {
	Query    Optional[string]  `json:"query,omitzero"`
	Category Optional[string]  `json:"category,omitzero"`
	Brand    Optional[string]  `json:"brand,omitzero"`
	MinPrice Optional[float64] `json:"min_price,omitzero" validate:"omitempty,gte=0"`
	MaxPrice Optional[float64] `json:"max_price,omitzero" validate:"omitempty,gte=0"`
	Page     Optional[int]     `json:"page,omitzero" validate:"omitempty,min=1"`
	PerPage  Optional[int]     `json:"per_page,omitzero" validate:"omitempty,min=1,max=100"`
}

type ShoppingCartItem struct {
	CustomerID int           `json:"customer_id" validate:"required,min=1"`
	ProductID  string        `json:"product_id" validate:"required"`
	Quantity   Optional[int] `json:"quantity,omitzero" validate:"omitempty,min=1"`
}

type ShoppingOrder struct {
	CustomerID      int            `json:"customer_id" validate:"required,min=1"`
	ShippingAddress map[string]any `json:"shipping_address" validate:"required"`
	PaymentMethod   string         `json:"payment_method" validate:"required,oneof=credit_card points"`
}
