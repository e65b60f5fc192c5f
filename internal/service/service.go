// Package service maps each payments/rewards operation onto exactly one call
// of the API client, except for ReportService which combines several.
// Requests are validated before anything is sent and remote JSON is returned
// as received.
package service

import (
	"strings"

	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

func requireID(field string, id int) error {
	if id < 1 {
		return &dto.ValidationError{Field: field, Rule: "min", Param: "1", Message: "must be at least 1"}
	}
	return nil
}

func requireKey(field, key string) error {
	if strings.TrimSpace(key) == "" {
		return &dto.ValidationError{Field: field, Rule: "required", Message: "is required"}
	}
	return nil
}
