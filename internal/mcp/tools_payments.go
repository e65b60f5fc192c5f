package mcp

import (
	"context"
	"encoding/json"

	"github.com/anyulbade/card-rewards-gateway/internal/dto"
	"github.com/anyulbade/card-rewards-gateway/internal/service"
)

type paymentIDArgs struct {
	PaymentID int `json:"payment_id" validate:"required,min=1" desc:"Payment ID"`
}

type makePaymentArgs struct {
	Payment dto.PaymentCreate `json:"payment" desc:"Card, amount and merchant for the charge"`
}

type refundPaymentArgs struct {
	PaymentID int               `json:"payment_id" validate:"required,min=1" desc:"Payment ID"`
	Refund    dto.PaymentRefund `json:"refund" desc:"Refund amount (full when omitted) and reason"`
}

func registerPaymentTools(r *Registry, svc *service.PaymentService) {
	addTool(r, "list_payments",
		"List payments filtered by customer, date range (YYYY-MM-DD) and status.",
		[]string{"payments", "transactions", "search"},
		func(ctx context.Context, a dto.PaymentListParams) (json.RawMessage, error) {
			return svc.ListPayments(ctx, a)
		})

	addTool(r, "make_payment",
		"Charge a credit card. The response includes rewards earned and offers applied.",
		[]string{"payments", "transactions", "rewards"},
		func(ctx context.Context, a makePaymentArgs) (json.RawMessage, error) {
			return svc.MakePayment(ctx, a.Payment)
		})

	addTool(r, "get_payment_details",
		"Get a payment by ID.",
		[]string{"payments", "transactions"},
		func(ctx context.Context, a paymentIDArgs) (json.RawMessage, error) {
			return svc.GetPayment(ctx, a.PaymentID)
		})

	addTool(r, "refund_payment",
		"Refund a payment in full or in part.",
		[]string{"payments", "refunds"},
		func(ctx context.Context, a refundPaymentArgs) (json.RawMessage, error) {
			return svc.RefundPayment(ctx, a.PaymentID, a.Refund)
		})

	addTool(r, "get_spending_analytics",
		"Get spending broken down by category for a customer.",
		[]string{"payments", "analytics", "customers"},
		func(ctx context.Context, a customerIDArgs) (json.RawMessage, error) {
			return svc.GetSpendingAnalytics(ctx, a.CustomerID)
		})
}

type redeemPointsArgs struct {
	CustomerID int                     `json:"customer_id" validate:"required,min=1" desc:"Customer ID"`
	Request    dto.RedeemPointsRequest `json:"request" desc:"Points to redeem"`
}

type createRewardArgs struct {
	Reward dto.RewardCreate `json:"reward" desc:"Points to credit and their source"`
}

func registerRewardTools(r *Registry, svc *service.RewardService) {
	addTool(r, "get_customer_rewards",
		"List reward entries earned or redeemed by a customer.",
		[]string{"rewards", "customers"},
		func(ctx context.Context, a customerIDArgs) (json.RawMessage, error) {
			return svc.GetCustomerRewards(ctx, a.CustomerID)
		})

	addTool(r, "get_customer_reward_balance",
		"Get total and available points and their dollar value for a customer.",
		[]string{"rewards", "customers", "balance"},
		func(ctx context.Context, a customerIDArgs) (json.RawMessage, error) {
			return svc.GetRewardBalance(ctx, a.CustomerID)
		})

	addTool(r, "redeem_points",
		"Redeem reward points for a customer.",
		[]string{"rewards", "redemption"},
		func(ctx context.Context, a redeemPointsArgs) (json.RawMessage, error) {
			return svc.RedeemPoints(ctx, a.CustomerID, a.Request)
		})

	addTool(r, "get_redemption_history",
		"List past point redemptions for a customer.",
		[]string{"rewards", "redemption", "customers"},
		func(ctx context.Context, a customerIDArgs) (json.RawMessage, error) {
			return svc.GetRedemptionHistory(ctx, a.CustomerID)
		})

	addTool(r, "create_reward",
		"Credit reward points to a customer.",
		[]string{"rewards"},
		func(ctx context.Context, a createRewardArgs) (json.RawMessage, error) {
			return svc.CreateReward(ctx, a.Reward)
		})
}

type refundIDArgs struct {
	RefundID int `json:"refund_id" validate:"required,min=1" desc:"Refund ID"`
}

type submitRefundArgs struct {
	Refund dto.RefundRequest `json:"refund" desc:"Refund type, amount and reason"`
}

type approveRefundArgs struct {
	RefundID int                `json:"refund_id" validate:"required,min=1" desc:"Refund ID"`
	Approval dto.RefundApproval `json:"approval" desc:"Approval decision and notes"`
}

type denyRefundArgs struct {
	RefundID int              `json:"refund_id" validate:"required,min=1" desc:"Refund ID"`
	Denial   dto.RefundDenial `json:"denial" desc:"Denial reason and notes"`
}

type pointsRefundArgs struct {
	PointsRefund dto.PointsRefundRequest `json:"points_refund" desc:"Customer, points and reason"`
}

func registerRefundTools(r *Registry, svc *service.RefundService) {
	addTool(r, "list_refunds",
		"List refund requests filtered by customer, status and type.",
		[]string{"refunds", "search"},
		func(ctx context.Context, a dto.RefundListParams) (json.RawMessage, error) {
			return svc.ListRefunds(ctx, a)
		})

	addTool(r, "submit_refund_request",
		"Submit a refund request for a booking cancellation, dispute or goodwill credit.",
		[]string{"refunds", "disputes"},
		func(ctx context.Context, a submitRefundArgs) (json.RawMessage, error) {
			return svc.SubmitRefundRequest(ctx, a.Refund)
		})

	addTool(r, "get_refund_details",
		"Get a refund request by ID.",
		[]string{"refunds"},
		func(ctx context.Context, a refundIDArgs) (json.RawMessage, error) {
			return svc.GetRefund(ctx, a.RefundID)
		})

	addTool(r, "approve_refund",
		"Approve a pending refund request.",
		[]string{"refunds", "administration"},
		func(ctx context.Context, a approveRefundArgs) (json.RawMessage, error) {
			return svc.ApproveRefund(ctx, a.RefundID, a.Approval)
		})

	addTool(r, "deny_refund",
		"Deny a pending refund request.",
		[]string{"refunds", "administration"},
		func(ctx context.Context, a denyRefundArgs) (json.RawMessage, error) {
			return svc.DenyRefund(ctx, a.RefundID, a.Denial)
		})

	addTool(r, "request_points_refund",
		"Return reward points to a customer after a cancellation.",
		[]string{"refunds", "rewards"},
		func(ctx context.Context, a pointsRefundArgs) (json.RawMessage, error) {
			return svc.RequestPointsRefund(ctx, a.PointsRefund)
		})
}
