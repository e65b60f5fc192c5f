package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

// ValidationError reports the first constraint a request shape violated.
// Field is the JSON path of the offending field.
type ValidationError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field '%s': %s", e.Field, e.Message)
}

type enumValue interface {
	Valid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumValue)
		return ok && e.Valid()
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(model.Time).Time
	}, model.Time{})

	registerOptional[string](v)
	registerOptional[int](v)
	registerOptional[float64](v)
	registerOptional[bool](v)
	registerOptional[[]string](v)
	registerOptional[map[string]any](v)
	registerOptional[model.Time](v)
	registerOptional[model.CreditCardProduct](v)
	registerOptional[model.MerchantCategory](v)
	registerOptional[model.OfferCategory](v)
	registerOptional[model.PaymentStatus](v)
	registerOptional[model.RefundStatus](v)
	registerOptional[model.RefundType](v)
	registerOptional[model.TokenType](v)

	return v
}

// registerOptional lets tags on an Optional[T] field apply to its value.
// Unset and null fields surface as nil so "omitempty" skips them; set fields
// surface as a pointer so zero values are still checked.
func registerOptional[T any](v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		o := field.Interface().(Optional[T])
		val, ok := o.Get()
		if !ok {
			return nil
		}
		return &val
	}, Optional[T]{})
}

// Validate checks every declared constraint on a request shape.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return newValidationError(verrs[0])
	}
	return err
}

// Decode unmarshals a JSON object into dst and validates it. An empty payload
// is treated as {} so missing required fields are reported by name.
func Decode(data []byte, dst any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return decodeError(err)
	}
	return Validate(dst)
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := stripEmbedded(typeErr.Field)
		if field == "" {
			field = "body"
		}
		return &ValidationError{
			Field:   field,
			Rule:    "type",
			Param:   typeErr.Value,
			Message: fmt.Sprintf("must be %s, got %s", typeErr.Type.String(), typeErr.Value),
		}
	}
	return &ValidationError{Field: "body", Rule: "json", Message: err.Error()}
}

func newValidationError(fe validator.FieldError) *ValidationError {
	return &ValidationError{
		Field:   fieldPath(fe.Namespace()),
		Rule:    fe.Tag(),
		Param:   fe.Param(),
		Message: describe(fe),
	}
}

// fieldPath turns a validator namespace into a JSON path. The root struct
// and embedded structs (the only segments without a json name) are dropped.
func fieldPath(ns string) string {
	_, rest, _ := strings.Cut(ns, ".")
	return stripEmbedded(rest)
}

// stripEmbedded drops Go struct names from a dotted path, as left by
// encoding/json for fields promoted from an embedded struct.
func stripEmbedded(path string) string {
	parts := strings.Split(path, ".")
	kept := parts[:0]
	for _, p := range parts {
		if p == "" || unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func describe(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "min":
		if isString || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return "must contain at least " + fe.Param() + " item(s)/character(s)"
		}
		return "must be at least " + fe.Param()
	case "max":
		if isString || fe.Kind() == reflect.Slice {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "enum":
		return fmt.Sprintf("%v is not an allowed value", fe.Value())
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "number":
		return "must contain digits only"
	case "datetime":
		return "must match date layout " + fe.Param()
	case "gtefield":
		return "must not be before " + fe.Param()
	default:
		return "failed '" + fe.Tag() + "' check"
	}
}
