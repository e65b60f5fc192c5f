package dto

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

// WireString renders a scalar as the payments API expects it in a query
// string. Enums render as their literal; plain strings pass through, so an
// enum that was already converted is left unchanged.
func WireString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case model.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// setOpt adds key to q only when o carries a non-null value.
func setOpt[T any](q url.Values, key string, o Optional[T]) {
	if v, ok := o.Get(); ok {
		q.Set(key, WireString(v))
	}
}
