package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

func newReportService(t *testing.T, mux *http.ServeMux) *ReportService {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	s := newServices(apiclient.New(srv.URL, time.Second))
	report := NewReportService(s.customers, s.cards, s.rewards, s.history)
	report.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return report
}

func reply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestReportService_GenerateCustomerReport(t *testing.T) {
	t.Run("happy: sections assembled verbatim", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/customers/7", reply(`{"id":7,"first_name":"Ada"}`))
		mux.HandleFunc("GET /api/customers/7/credit-cards", reply(`{"credit_cards":[],"total":0}`))
		mux.HandleFunc("GET /api/rewards/customer/7/balance", reply(`{"total_points":1200,"available_points":900,"dollar_value":9}`))
		mux.HandleFunc("GET /api/profile-history/customer/7", reply(`{"history":[],"total_saved":0}`))

		report, err := newReportService(t, mux).GenerateCustomerReport(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), report.GeneratedAt)
		assert.JSONEq(t, `{"id":7,"first_name":"Ada"}`, string(report.Customer))
		assert.JSONEq(t, `{"credit_cards":[],"total":0}`, string(report.CreditCards))
		assert.JSONEq(t, `{"total_points":1200,"available_points":900,"dollar_value":9}`, string(report.RewardBalance))
		assert.JSONEq(t, `{"history":[],"total_saved":0}`, string(report.ProfileHistory))
	})

	t.Run("bad: one failing section fails the report", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /api/customers/7", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Customer not found"}`))
		})
		mux.HandleFunc("/", reply(`{}`))

		_, err := newReportService(t, mux).GenerateCustomerReport(context.Background(), 7)

		var herr *apiclient.HTTPError
		require.ErrorAs(t, err, &herr)
		assert.Equal(t, http.StatusNotFound, herr.StatusCode)
		assert.Equal(t, "Customer not found", herr.Error())
	})

	t.Run("bad: invalid id makes no calls", func(t *testing.T) {
		var hits atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) { hits.Add(1) })

		_, err := newReportService(t, mux).GenerateCustomerReport(context.Background(), 0)

		var verr *dto.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "customer_id", verr.Field)
		assert.Zero(t, hits.Load())
	})
}
