// Package apperr classifies errors from validation and the payments API so
// every transport reports them the same way.
package apperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/anyulbade/card-rewards-gateway/internal/apiclient"
	"github.com/anyulbade/card-rewards-gateway/internal/dto"
)

const (
	KindValidation          = "validation"
	KindUpstreamHTTP        = "upstream_http"
	KindUpstreamUnreachable = "upstream_unreachable"
	KindTimeout             = "timeout"
	KindCanceled            = "canceled"
	KindInternal            = "internal"
)

// StatusClientClosedRequest is the non-standard 499 used when the caller
// went away before the upstream answered.
const StatusClientClosedRequest = 499

func Kind(err error) string {
	var (
		verr *dto.ValidationError
		herr *apiclient.HTTPError
		cerr *apiclient.ConnectionError
	)

	switch {
	case err == nil:
		return ""

	case errors.As(err, &verr):
		return KindValidation

	case errors.As(err, &herr):
		return KindUpstreamHTTP

	case errors.Is(err, context.Canceled):
		return KindCanceled

	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout

	case errors.As(err, &cerr):
		if cerr.Timeout() {
			return KindTimeout
		}
		return KindUpstreamUnreachable

	default:
		return KindInternal
	}
}

// HTTPStatus passes upstream 4xx through unchanged; upstream 5xx becomes 502.
func HTTPStatus(err error) int {
	var herr *apiclient.HTTPError

	switch Kind(err) {
	case "":
		return http.StatusOK

	case KindValidation:
		return http.StatusBadRequest

	case KindUpstreamHTTP:
		errors.As(err, &herr)
		if herr.StatusCode >= 400 && herr.StatusCode < 500 {
			return herr.StatusCode
		}
		return http.StatusBadGateway

	case KindUpstreamUnreachable:
		return http.StatusServiceUnavailable

	case KindTimeout:
		return http.StatusGatewayTimeout

	case KindCanceled:
		return StatusClientClosedRequest

	default:
		return http.StatusInternalServerError
	}
}

// Response builds the error body shared by the gin error handler and MCP
// tool results.
func Response(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Error: err.Error(), Kind: Kind(err)}

	var (
		verr *dto.ValidationError
		herr *apiclient.HTTPError
	)
	if errors.As(err, &verr) {
		resp.Field = verr.Field
	}
	if errors.As(err, &herr) {
		resp.StatusCode = herr.StatusCode
	}
	if resp.Kind == KindInternal {
		resp.Error = "internal server error"
	}
	return resp
}
