package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const (
	hotelPath  = "/offers/hotel"
	travelPath = "/offers/travel"
)

// TravelService covers the hotel, flight and package integrations.
type TravelService struct {
	client *apiclient.Client
}

func NewTravelService(client *apiclient.Client) *TravelService {
	return &TravelService{client: client}
}

func (s *TravelService) SearchHotels(ctx context.Context, req dto.HotelSearchRequest) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, hotelPath+"/search-hotels", req)
}

func (s *TravelService) BookHotel(ctx context.Context, req dto.HotelBookingRequest) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, hotelPath+"/book-hotel", req)
}

func (s *TravelService) GetHotelBooking(ctx context.Context, bookingReference string) (json.RawMessage, error) {
	if err := requireKey("booking_reference", bookingReference); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(hotelPath, "booking", bookingReference), nil)
}

func (s *TravelService) GetAvailableCities(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, hotelPath+"/cities", nil)
}

func (s *TravelService) SearchFlights(ctx context.Context, req dto.FlightSearchRequest) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, travelPath+"/search-flights", req)
}

func (s *TravelService) BookFlight(ctx context.Context, req dto.FlightBookingRequest) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, travelPath+"/book-flight", req)
}

func (s *TravelService) GetFlightBooking(ctx context.Context, bookingReference string) (json.RawMessage, error) {
	if err := requireKey("booking_reference", bookingReference); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(travelPath, "booking", bookingReference), nil)
}

func (s *TravelService) GetAvailableAirports(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, travelPath+"/airports", nil)
}

func (s *TravelService) SearchTravelPackages(ctx context.Context, req dto.TravelPackageSearchRequest) (json.RawMessage, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Post(ctx, "/offers/search/travel-package", req)
}
