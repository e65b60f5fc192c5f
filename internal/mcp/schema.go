package mcp

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/anyulbade/card-rewards-gateway/internal/model"
)

type optionalType interface {
	Elem() reflect.Type
}

var (
	optionalIface = reflect.TypeFor[optionalType]()
	timeType      = reflect.TypeFor[model.Time]()
)

var enumValues = map[reflect.Type][]string{
	reflect.TypeFor[model.BookingStatus]():     literals(model.BookingStatusValues()),
	reflect.TypeFor[model.CreditCardProduct](): literals(model.CreditCardProductValues()),
	reflect.TypeFor[model.MerchantCategory]():  literals(model.MerchantCategoryValues()),
	reflect.TypeFor[model.OfferCategory]():     literals(model.OfferCategoryValues()),
	reflect.TypeFor[model.PaymentStatus]():     literals(model.PaymentStatusValues()),
	reflect.TypeFor[model.RefundStatus]():      literals(model.RefundStatusValues()),
	reflect.TypeFor[model.RefundType]():        literals(model.RefundTypeValues()),
	reflect.TypeFor[model.RewardStatus]():      literals(model.RewardStatusValues()),
	reflect.TypeFor[model.TokenType]():         literals(model.TokenTypeValues()),
}

func literals[E ~string](vals []E) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

// SchemaOf derives a JSON Schema from a request type. Property names come
// from json tags, constraints from validate tags and descriptions from desc
// tags. Non-optional fields without omitempty are required.
func SchemaOf(t reflect.Type) map[string]any {
	if t.Implements(optionalIface) {
		return SchemaOf(reflect.Zero(t).Interface().(optionalType).Elem())
	}
	if vals, ok := enumValues[t]; ok {
		return map[string]any{"type": "string", "enum": vals}
	}
	if t == timeType {
		return map[string]any{"type": "string", "format": "date-time"}
	}

	switch t.Kind() {
	case reflect.Pointer:
		return SchemaOf(t.Elem())
	case reflect.String:
		return map[string]any{"type": "string"}
	case reflect.Bool:
		return map[string]any{"type": "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}
	case reflect.Slice, reflect.Array:
		return map[string]any{"type": "array", "items": SchemaOf(t.Elem())}
	case reflect.Map:
		return map[string]any{"type": "object", "additionalProperties": true}
	case reflect.Struct:
		return objectSchema(t)
	default:
		return map[string]any{}
	}
}

func objectSchema(t reflect.Type) map[string]any {
	props := map[string]any{}
	required := []string{}
	addFields(t, props, &required)

	s := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func addFields(t reflect.Type, props map[string]any, required *[]string) {
	for i := range t.NumField() {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")

		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			addFields(f.Type, props, required)
			continue
		}
		if !f.IsExported() || name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}

		p := SchemaOf(f.Type)
		applyRules(p, f.Tag.Get("validate"))
		if desc := f.Tag.Get("desc"); desc != "" {
			p["description"] = desc
		}
		props[name] = p

		optional := f.Type.Implements(optionalIface) ||
			strings.Contains(opts, "omitempty") || strings.Contains(opts, "omitzero")
		if !optional {
			*required = append(*required, name)
		}
	}
}

func applyRules(p map[string]any, tag string) {
	if tag == "" {
		return
	}
	typ, _ := p["type"].(string)

	for _, rule := range strings.Split(tag, ",") {
		if rule == "dive" {
			return
		}
		key, param, _ := strings.Cut(rule, "=")
		switch key {
		case "min", "max":
			n, err := strconv.ParseFloat(param, 64)
			if err != nil {
				continue
			}
			p[boundKey(typ, key)] = n
		case "gt":
			if n, err := strconv.ParseFloat(param, 64); err == nil {
				p["exclusiveMinimum"] = n
			}
		case "gte":
			if n, err := strconv.ParseFloat(param, 64); err == nil {
				p["minimum"] = n
			}
		case "lt":
			if n, err := strconv.ParseFloat(param, 64); err == nil {
				p["exclusiveMaximum"] = n
			}
		case "lte":
			if n, err := strconv.ParseFloat(param, 64); err == nil {
				p["maximum"] = n
			}
		case "len":
			if n, err := strconv.Atoi(param); err == nil {
				p["minLength"] = n
				p["maxLength"] = n
			}
		case "email":
			p["format"] = "email"
		case "url":
			p["format"] = "uri"
		case "datetime":
			p["format"] = "date"
		case "number":
			p["pattern"] = "^[0-9]+$"
		case "oneof":
			p["enum"] = strings.Fields(param)
		}
	}
}

func boundKey(typ, rule string) string {
	var prefix string
	switch typ {
	case "string":
		prefix = "Length"
	case "array":
		prefix = "Items"
	case "object":
		prefix = "Properties"
	default:
		if rule == "min" {
			return "minimum"
		}
		return "maximum"
	}
	return rule + prefix
}
