package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

const simulatorStatusPath = "/simulator/status"

type HealthService struct {
	client *apiclient.Client
	now    func() time.Time
}

func NewHealthService(client *apiclient.Client) *HealthService {
	return &HealthService{client: client, now: time.Now}
}

// Check answers locally; it never contacts the payments API.
func (s *HealthService) Check() model.HealthResponse {
	return model.HealthResponse{Status: "healthy", Timestamp: s.now().UTC()}
}

func (s *HealthService) IntegrationStatus(ctx context.Context) (json.RawMessage, error) {
	return s.client.Get(ctx, simulatorStatusPath, nil)
}
