package service

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const bookingsPath = "/api/bookings"

type BookingService struct {
	client *apiclient.Client
}

func NewBookingService(client *apiclient.Client) *BookingService {
	return &BookingService{client: client}
}

func (s *BookingService) ModifyBooking(ctx context.Context, bookingID int, req dto.BookingModification) (json.RawMessage, error) {
	if err := requireID("booking_id", bookingID); err != nil {
		return nil, err
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	return s.client.Put(ctx, apiclient.Path(bookingsPath, bookingID, "modify"), req)
}

func (s *BookingService) GetBookingStatus(ctx context.Context, bookingID int) (json.RawMessage, error) {
	if err := requireID("booking_id", bookingID); err != nil {
		return nil, err
	}
	return s.client.Get(ctx, apiclient.Path(bookingsPath, bookingID, "status"), nil)
}
