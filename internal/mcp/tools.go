package mcp

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/service"
)

// Services is everything the tool catalog forwards to.
type Services struct {
	Health         *service.HealthService
	Customers      *service.CustomerService
	CreditCards    *service.CreditCardService
	Merchants      *service.MerchantService
	Offers         *service.OfferService
	Payments       *service.PaymentService
	Rewards        *service.RewardService
	Refunds        *service.RefundService
	Bookings       *service.BookingService
	Tokens         *service.TokenService
	Travel         *service.TravelService
	Shopping       *service.ShoppingService
	ProfileHistory *service.ProfileHistoryService
	Reports        *service.ReportService
}

// NewServices builds every service on top of one shared client.
func NewServices(client *apiclient.Client) Services {
	svc := Services{
		Health:         service.NewHealthService(client),
		Customers:      service.NewCustomerService(client),
		CreditCards:    service.NewCreditCardService(client),
		Merchants:      service.NewMerchantService(client),
		Offers:         service.NewOfferService(client),
		Payments:       service.NewPaymentService(client),
		Rewards:        service.NewRewardService(client),
		Refunds:        service.NewRefundService(client),
		Bookings:       service.NewBookingService(client),
		Tokens:         service.NewTokenService(client),
		Travel:         service.NewTravelService(client),
		Shopping:       service.NewShoppingService(client),
		ProfileHistory: service.NewProfileHistoryService(client),
	}
	svc.Reports = service.NewReportService(svc.Customers, svc.CreditCards, svc.Rewards, svc.ProfileHistory)
	return svc
}

// RegisterTools adds the full catalog to r.
func RegisterTools(r *Registry, svc Services) {
	registerHealthTools(r, svc.Health)
	registerCustomerTools(r, svc.Customers)
	registerCreditCardTools(r, svc.CreditCards)
	registerMerchantTools(r, svc.Merchants)
	registerOfferTools(r, svc.Offers)
	registerPaymentTools(r, svc.Payments)
	registerRewardTools(r, svc.Rewards)
	registerRefundTools(r, svc.Refunds)
	registerBookingTools(r, svc.Bookings)
	registerTokenTools(r, svc.Tokens)
	registerTravelTools(r, svc.Travel)
	registerShoppingTools(r, svc.Shopping)
	registerProfileHistoryTools(r, svc.ProfileHistory)
	registerReportTools(r, svc.Reports)
}

func registerHealthTools(r *Registry, svc *service.HealthService) {
	addTool(r, "health_check",
		"Report that this server is up. Answers locally without contacting the payments API.",
		[]string{"health", "monitoring"},
		func(_ context.Context, _ noArgs) (json.RawMessage, error) {
			return json.Marshal(svc.Check())
		})

	addTool(r, "check_integration_status",
		"Check the status of the payments API simulator and its downstream integrations.",
		[]string{"integrations", "monitoring", "health"},
		func(ctx context.Context, _ noArgs) (json.RawMessage, error) {
			return svc.IntegrationStatus(ctx)
		})
}
