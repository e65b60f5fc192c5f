package service

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"
)

// ReportService assembles a customer snapshot from several API calls made
// concurrently. The first failure cancels the rest and is returned as is.
type ReportService struct {
	customers *CustomerService
	cards     *CreditCardService
	rewards   *RewardService
	history   *ProfileHistoryService
	now       func() time.Time
}

func NewReportService(customers *CustomerService, cards *CreditCardService, rewards *RewardService, history *ProfileHistoryService) *ReportService {
	return &ReportService{
		customers: customers,
		cards:     cards,
		rewards:   rewards,
		history:   history,
		now:       time.Now,
	}
}

type CustomerReport struct {
	GeneratedAt    time.Time       `json:"generated_at"`
	Customer       json.RawMessage `json:"customer"`
	CreditCards    json.RawMessage `json:"credit_cards"`
	RewardBalance  json.RawMessage `json:"reward_balance"`
	ProfileHistory json.RawMessage `json:"profile_history"`
}

func (s *ReportService) GenerateCustomerReport(ctx context.Context, customerID int) (*CustomerReport, error) {
	if err := requireID("customer_id", customerID); err != nil {
		return nil, err
	}

	report := &CustomerReport{GeneratedAt: s.now().UTC()}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		report.Customer, err = s.customers.GetCustomer(gctx, customerID)
		return err
	})

	g.Go(func() error {
		var err error
		report.CreditCards, err = s.cards.ListCustomerCreditCards(gctx, customerID)
		return err
	})

	g.Go(func() error {
		var err error
		report.RewardBalance, err = s.rewards.GetRewardBalance(gctx, customerID)
		return err
	})

	g.Go(func() error {
		var err error
		report.ProfileHistory, err = s.history.GetCustomerProfileHistory(gctx, customerID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
