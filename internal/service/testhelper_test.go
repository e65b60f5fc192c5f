package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
)

type recorded struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
}

type upstream struct {
	mu     sync.Mutex
	calls  []recorded
	status int
	reply  string
	srv    *httptest.Server
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{status: http.StatusOK, reply: `{"ok":true}`}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		u.mu.Lock()
		u.calls = append(u.calls, recorded{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Body:     string(data),
		})
		status, reply := u.status, u.reply
		u.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func (u *upstream) client() *apiclient.Client {
	return apiclient.New(u.srv.URL, time.Second)
}

func (u *upstream) respond(status int, reply string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status, u.reply = status, reply
}

func (u *upstream) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

func (u *upstream) last() recorded {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.calls) == 0 {
		return recorded{}
	}
	return u.calls[len(u.calls)-1]
}

type services struct {
	customers *CustomerService
	cards     *CreditCardService
	merchants *MerchantService
	offers    *OfferService
	payments  *PaymentService
	rewards   *RewardService
	refunds   *RefundService
	bookings  *BookingService
	tokens    *TokenService
	travel    *TravelService
	shopping  *ShoppingService
	history   *ProfileHistoryService
	health    *HealthService
}

func newServices(c *apiclient.Client) services {
	return services{
		customers: NewCustomerService(c),
		cards:     NewCreditCardService(c),
		merchants: NewMerchantService(c),
		offers:    NewOfferService(c),
		payments:  NewPaymentService(c),
		rewards:   NewRewardService(c),
		refunds:   NewRefundService(c),
		bookings:  NewBookingService(c),
		tokens:    NewTokenService(c),
		travel:    NewTravelService(c),
		shopping:  NewShoppingService(c),
		history:   NewProfileHistoryService(c),
		health:    NewHealthService(c),
	}
}
