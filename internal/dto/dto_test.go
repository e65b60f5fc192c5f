package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

func validationErr(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr
}

func TestOptional_JSON(t *testing.T) {
	t.Run("absent field is omitted", func(t *testing.T) {
		var upd CustomerUpdate
		require.NoError(t, Decode([]byte(`{"email":"new@x.com"}`), &upd))

		assert.False(t, upd.FirstName.Set)
		assert.True(t, upd.Email.Set)

		data, err := json.Marshal(upd)
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"new@x.com"}`, string(data))
	})

	t.Run("explicit null is kept", func(t *testing.T) {
		var upd CustomerUpdate
		require.NoError(t, Decode([]byte(`{"phone":null}`), &upd))

		assert.True(t, upd.Phone.Set)
		assert.True(t, upd.Phone.Null)
		_, ok := upd.Phone.Get()
		assert.False(t, ok)

		data, err := json.Marshal(upd)
		require.NoError(t, err)
		assert.JSONEq(t, `{"phone":null}`, string(data))
	})

	t.Run("constructed values", func(t *testing.T) {
		data, err := json.Marshal(MerchantUpdate{
			Name:     Some("Blue Bottle"),
			IsActive: Some(false),
			Website:  Null[string](),
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Blue Bottle","is_active":false,"website":null}`, string(data))
	})
}

func TestValidate_Required(t *testing.T) {
	t.Run("happy: complete customer", func(t *testing.T) {
		req := CustomerCreate{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
		assert.NoError(t, Validate(req))
	})

	t.Run("bad: missing first_name", func(t *testing.T) {
		err := Decode([]byte(`{"last_name":"Lovelace","email":"ada@example.com"}`), &CustomerCreate{})
		verr := validationErr(t, err)
		assert.Equal(t, "first_name", verr.Field)
		assert.Equal(t, "required", verr.Rule)
		assert.Contains(t, verr.Error(), "first_name")
	})

	t.Run("bad: empty payload names the first field", func(t *testing.T) {
		verr := validationErr(t, Decode(nil, &RefundRequest{}))
		assert.Equal(t, "refund_type", verr.Field)
	})

	t.Run("bad: malformed email", func(t *testing.T) {
		req := CustomerCreate{FirstName: "Ada", LastName: "Lovelace", Email: "not-an-email"}
		verr := validationErr(t, Validate(req))
		assert.Equal(t, "email", verr.Field)
		assert.Equal(t, "email", verr.Rule)
	})
}

func TestValidate_Bounds(t *testing.T) {
	t.Run("bad: payment amount 0", func(t *testing.T) {
		req := PaymentCreate{CreditCardID: 1, Amount: 0, MerchantName: "Cafe"}
		verr := validationErr(t, Validate(req))
		assert.Equal(t, "amount", verr.Field)
		assert.Equal(t, "gt", verr.Rule)
		assert.Equal(t, "0", verr.Param)
	})

	t.Run("happy: payment amount 0.01", func(t *testing.T) {
		req := PaymentCreate{CreditCardID: 1, Amount: 0.01, MerchantName: "Cafe"}
		assert.NoError(t, Validate(req))
	})

	t.Run("per_page bounds", func(t *testing.T) {
		cases := []struct {
			perPage int
			ok      bool
		}{
			{0, false},
			{1, true},
			{100, true},
			{101, false},
		}
		for _, tc := range cases {
			err := Validate(MerchantListParams{PageParams: PageParams{PerPage: Some(tc.perPage)}})
			if tc.ok {
				assert.NoError(t, err, tc.perPage)
				continue
			}
			verr := validationErr(t, err)
			assert.Equal(t, "per_page", verr.Field)
		}
	})

	t.Run("discount_percentage bounds", func(t *testing.T) {
		cases := []struct {
			pct     string
			message string
		}{
			{"-0.1", "must be greater than or equal to 0"},
			{"0", ""},
			{"100", ""},
			{"100.01", "must be less than or equal to 100"},
		}
		for _, tc := range cases {
			body := `{"title":"Spring sale","category":"DINING","start_date":"2025-03-01T00:00:00","expiry_date":"2025-04-01T00:00:00","discount_percentage":` + tc.pct + `}`
			err := Decode([]byte(body), &OfferCreate{})
			if tc.message == "" {
				assert.NoError(t, err, tc.pct)
				continue
			}
			verr := validationErr(t, err)
			assert.Equal(t, "discount_percentage", verr.Field)
			assert.Equal(t, tc.message, verr.Message)
		}
	})

	t.Run("discount_percentage set to zero on update", func(t *testing.T) {
		assert.NoError(t, Validate(OfferUpdate{DiscountPercentage: Some(0.0)}))

		verr := validationErr(t, Validate(OfferUpdate{DiscountPercentage: Some(-0.1)}))
		assert.Equal(t, "discount_percentage", verr.Field)
		assert.Equal(t, "gte", verr.Rule)

		verr = validationErr(t, Validate(OfferUpdate{DiscountPercentage: Some(100.5)}))
		assert.Equal(t, "lte", verr.Rule)
	})

	t.Run("set zero is still checked", func(t *testing.T) {
		verr := validationErr(t, Validate(CreditCardUpdate{CreditLimit: Some(0.0)}))
		assert.Equal(t, "credit_limit", verr.Field)
	})

	t.Run("null skips checks", func(t *testing.T) {
		assert.NoError(t, Validate(CreditCardUpdate{CreditLimit: Null[float64]()}))
	})

	t.Run("bad: nested passenger", func(t *testing.T) {
		req := FlightBookingRequest{
			FlightID:   "FL100",
			CustomerID: 3,
			Passengers: []Passenger{{FirstName: "Ada"}},
		}
		verr := validationErr(t, Validate(req))
		assert.Equal(t, "passengers[0].last_name", verr.Field)
	})
}

func TestValidate_FreeText(t *testing.T) {
	t.Run("happy: date_of_birth with a time part", func(t *testing.T) {
		body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","date_of_birth":"1990-01-15T00:00:00"}`
		var req CustomerCreate
		require.NoError(t, Decode([]byte(body), &req))
		assert.Equal(t, Some("1990-01-15T00:00:00"), req.DateOfBirth)
	})

	t.Run("happy: long notes and descriptions", func(t *testing.T) {
		long := strings.Repeat("n", 5000)
		assert.NoError(t, Validate(CustomerUpdate{Phone: Some(long), Address: Some(long)}))
		assert.NoError(t, Validate(MerchantUpdate{Description: Some(long)}))
		assert.NoError(t, Validate(RefundApproval{Approved: Some(true), AdminNotes: Some(long)}))
		assert.NoError(t, Validate(PointsRefundRequest{CustomerID: 3, PointsToRefund: 10, Reason: long}))
	})

	t.Run("bad: list filter dates keep their layout", func(t *testing.T) {
		verr := validationErr(t, Validate(PaymentListParams{StartDate: Some("15/01/2025")}))
		assert.Equal(t, "start_date", verr.Field)
		assert.Equal(t, "datetime", verr.Rule)
	})
}

func TestValidate_Enums(t *testing.T) {
	t.Run("happy: declared literal", func(t *testing.T) {
		var req MerchantCreate
		err := Decode([]byte(`{"merchant_id":"M1","name":"Noodle Bar","category":"RESTAURANT"}`), &req)
		require.NoError(t, err)
		assert.Equal(t, model.MerchantCategoryRestaurant, req.Category)
	})

	t.Run("bad: undeclared literal", func(t *testing.T) {
		err := Decode([]byte(`{"merchant_id":"M1","name":"Noodle Bar","category":"CASINO"}`), &MerchantCreate{})
		verr := validationErr(t, err)
		assert.Equal(t, "category", verr.Field)
		assert.Equal(t, "enum", verr.Rule)
	})

	t.Run("bad: refund_type is case sensitive", func(t *testing.T) {
		err := Decode([]byte(`{"refund_type":"GOODWILL","refund_amount":5,"reason":"late"}`), &RefundRequest{})
		assert.Equal(t, "refund_type", validationErr(t, err).Field)
	})

	t.Run("optional enum filter", func(t *testing.T) {
		err := Validate(PaymentListParams{Status: Some(model.PaymentStatus("LOST"))})
		assert.Equal(t, "status", validationErr(t, err).Field)
	})
}

func TestDecode_TypeErrors(t *testing.T) {
	t.Run("bad: wrong type", func(t *testing.T) {
		verr := validationErr(t, Decode([]byte(`{"credit_card_id":"one"}`), &PaymentCreate{}))
		assert.Equal(t, "credit_card_id", verr.Field)
		assert.Equal(t, "type", verr.Rule)
	})

	t.Run("bad: wrong type on an embedded field", func(t *testing.T) {
		verr := validationErr(t, Decode([]byte(`{"page":"x"}`), &MerchantListParams{}))
		assert.Equal(t, "page", verr.Field)
		assert.Equal(t, "type", verr.Rule)
	})

	t.Run("bad: wrong type inside a nested list", func(t *testing.T) {
		err := Decode([]byte(`{"flight_id":"FL1","customer_id":3,"passengers":[{"first_name":1}]}`), &FlightBookingRequest{})
		assert.Equal(t, "passengers.first_name", validationErr(t, err).Field)
	})

	t.Run("bad: not json", func(t *testing.T) {
		verr := validationErr(t, Decode([]byte(`{`), &PaymentCreate{}))
		assert.Equal(t, "body", verr.Field)
	})
}

func TestParams_Values(t *testing.T) {
	t.Run("only supplied filters", func(t *testing.T) {
		p := MerchantListParams{
			PageParams: PageParams{Page: Some(2), PerPage: Some(5)},
			Category:   Some(model.MerchantCategoryRestaurant),
		}
		assert.Equal(t, "category=RESTAURANT&page=2&per_page=5", p.Values().Encode())
	})

	t.Run("nothing supplied", func(t *testing.T) {
		assert.Empty(t, RefundListParams{}.Values())
	})

	t.Run("enum already a string is unchanged", func(t *testing.T) {
		assert.Equal(t, "RESTAURANT", WireString(model.MerchantCategoryRestaurant))
		assert.Equal(t, "RESTAURANT", WireString("RESTAURANT"))
		assert.Equal(t, WireString(model.RefundTypeGoodwill), WireString(WireString(model.RefundTypeGoodwill)))
	})

	t.Run("scalars", func(t *testing.T) {
		assert.Equal(t, "true", WireString(true))
		assert.Equal(t, "12.5", WireString(12.5))
		assert.Equal(t, "7", WireString(7))
	})
}
