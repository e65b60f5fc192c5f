package mcp

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/dto"
	"github.com/anyulbade/card-rewards-gateway/internal/service"
)

type customerIDArgs struct {
	CustomerID int `json:"customer_id" validate:"required,min=1" desc:"Customer ID"`
}

type createCustomerArgs struct {
	Customer dto.CustomerCreate `json:"customer" desc:"New customer profile"`
}

type updateCustomerArgs struct {
	CustomerID int                `json:"customer_id" validate:"required,min=1" desc:"Customer ID"`
	Customer   dto.CustomerUpdate `json:"customer" desc:"Fields to change; omitted fields are left as they are"`
}

func registerCustomerTools(r *Registry, svc *service.CustomerService) {
	addTool(r, "list_customers",
		"List customers with optional email filter and pagination.",
		[]string{"customers", "search"},
		func(ctx context.Context, a dto.CustomerListParams) (json.RawMessage, error) {
			return svc.ListCustomers(ctx, a)
		})

	addTool(r, "create_customer",
		"Create a customer profile.",
		[]string{"customers", "onboarding"},
		func(ctx context.Context, a createCustomerArgs) (json.RawMessage, error) {
			return svc.CreateCustomer(ctx, a.Customer)
		})

	addTool(r, "get_customer_details",
		"Get a customer profile by ID.",
		[]string{"customers"},
		func(ctx context.Context, a customerIDArgs) (json.RawMessage, error) {
			return svc.GetCustomer(ctx, a.CustomerID)
		})

	addTool(r, "update_customer",
		"Update selected fields of a customer profile.",
		[]string{"customers"},
		func(ctx context.Context, a updateCustomerArgs) (json.RawMessage, error) {
			return svc.UpdateCustomer(ctx, a.CustomerID, a.Customer)
		})

	addTool(r, "delete_customer",
		"Delete a customer profile.",
		[]string{"customers"},
		func(ctx context.Context, a customerIDArgs) (json.RawMessage, error) {
			return svc.DeleteCustomer(ctx, a.CustomerID)
		})
}

type cardIDArgs struct {
	CardID int `json:"card_id" validate:"required,min=1" desc:"Credit card ID"`
}

type addCreditCardArgs struct {
	CustomerID int                  `json:"customer_id" validate:"required,min=1" desc:"Owning customer ID"`
	Card       dto.CreditCardCreate `json:"card" desc:"Card details"`
}

type updateCreditCardArgs struct {
	CardID int                  `json:"card_id" validate:"required,min=1" desc:"Credit card ID"`
	Card   dto.CreditCardUpdate `json:"card" desc:"Fields to change"`
}

func registerCreditCardTools(r *Registry, svc *service.CreditCardService) {
	addTool(r, "add_credit_card",
		"Issue a credit card to a customer.",
		[]string{"credit_cards", "customers"},
		func(ctx context.Context, a addCreditCardArgs) (json.RawMessage, error) {
			return svc.AddCreditCard(ctx, a.CustomerID, a.Card)
		})

	addTool(r, "list_customer_credit_cards",
		"List the credit cards held by a customer.",
		[]string{"credit_cards", "customers"},
		func(ctx context.Context, a customerIDArgs) (json.RawMessage, error) {
			return svc.ListCustomerCreditCards(ctx, a.CustomerID)
		})

	addTool(r, "get_credit_card_details",
		"Get a credit card by ID.",
		[]string{"credit_cards"},
		func(ctx context.Context, a cardIDArgs) (json.RawMessage, error) {
			return svc.GetCreditCard(ctx, a.CardID)
		})

	addTool(r, "update_credit_card",
		"Update selected fields of a credit card, including deactivation.",
		[]string{"credit_cards"},
		func(ctx context.Context, a updateCreditCardArgs) (json.RawMessage, error) {
			return svc.UpdateCreditCard(ctx, a.CardID, a.Card)
		})

	addTool(r, "delete_credit_card",
		"Delete a credit card.",
		[]string{"credit_cards"},
		func(ctx context.Context, a cardIDArgs) (json.RawMessage, error) {
			return svc.DeleteCreditCard(ctx, a.CardID)
		})
}

func registerProfileHistoryTools(r *Registry, svc *service.ProfileHistoryService) {
	addTool(r, "list_profile_history",
		"List offer and savings history, filtered by customer, merchant or date range (YYYY-MM-DD).",
		[]string{"profile_history", "analytics"},
		func(ctx context.Context, a dto.ProfileHistoryParams) (json.RawMessage, error) {
			return svc.ListProfileHistory(ctx, a)
		})

	addTool(r, "get_customer_profile_history",
		"Get a customer's offer history with total savings.",
		[]string{"profile_history", "customers", "analytics"},
		func(ctx context.Context, a customerIDArgs) (json.RawMessage, error) {
			return svc.GetCustomerProfileHistory(ctx, a.CustomerID)
		})
}

func registerReportTools(r *Registry, svc *service.ReportService) {
	addTool(r, "get_customer_report",
		"Get a customer's profile, cards, reward balance and savings history in one call.",
		[]string{"customers", "rewards", "analytics"},
		func(ctx context.Context, a customerIDArgs) (json.RawMessage, error) {
			report, err := svc.GenerateCustomerReport(ctx, a.CustomerID)
			if err != nil {
				return nil, err
			}
			return json.Marshal(report)
		})
}
