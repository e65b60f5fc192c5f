package dto

import "github.com/anyulbade/card-rewards-gateway/internal/model"

type BookingModification struct {
	NewBookingDate     Optional[model.Time] `json:"new_booking_date,omitzero"`
	ModificationReason Optional[string]     `json:"modification_reason,omitzero"`
	AdditionalServices Optional[[]string]   `json:"additional_services,omitzero"`
}
