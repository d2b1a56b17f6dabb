package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Records validates raw customer, product, and order records before they
// may become domain entities. Each check first demands the exact key set
// for its record type, then runs the per-field rules, short-circuiting on
// the first failure.
type Records struct {
	v           *validatorv10.Validate
	minAgeTag   string
	categoryTag string
}

// NewRecords builds a Records validator. categoryNames are the declared
// tags of the category enumeration; membership is checked against them
// rather than a hard-coded list.
func NewRecords(minCustomerAge int, categoryNames []string) *Records {
	return &Records{
		v:           New(),
		minAgeTag:   fmt.Sprintf("min=%d", minCustomerAge),
		categoryTag: "oneof=" + strings.Join(categoryNames, " "),
	}
}

// CustomerOK reports whether rec is a structurally valid customer record:
// exact keys {name, surname, age, email}, uppercase-token name and surname,
// age at or above the configured minimum, well-formed email.
func (r *Records) CustomerOK(rec map[string]any) bool {
	if !exactKeys(rec, "name", "surname", "age", "email") {
		return false
	}
	name, okName := stringValue(rec["name"])
	surname, okSurname := stringValue(rec["surname"])
	age, okAge := intValue(rec["age"])
	email, okEmail := stringValue(rec["email"])
	if !okName || !okSurname || !okAge || !okEmail {
		return false
	}
	return r.v.Var(name, "uppertokens") == nil &&
		r.v.Var(surname, "uppertokens") == nil &&
		r.v.Var(age, r.minAgeTag) == nil &&
		r.v.Var(email, "emailfmt") == nil
}

// ProductOK reports whether rec is a structurally valid product record:
// exact keys {name, price, category}, uppercase-token name, non-negative
// decimal-string price, declared category tag.
func (r *Records) ProductOK(rec map[string]any) bool {
	if !exactKeys(rec, "name", "price", "category") {
		return false
	}
	name, okName := stringValue(rec["name"])
	price, okPrice := stringValue(rec["price"])
	category, okCategory := stringValue(rec["category"])
	if !okName || !okPrice || !okCategory {
		return false
	}
	return r.v.Var(name, "uppertokens") == nil &&
		r.v.Var(price, "udecimalstr") == nil &&
		r.v.Var(category, r.categoryTag) == nil
}

// OrderOK reports whether rec is a structurally valid order record: exact
// keys {customer, product, quantity, order_date}, with the customer and
// product sub-records validated recursively.
func (r *Records) OrderOK(rec map[string]any) bool {
	if !exactKeys(rec, "customer", "product", "quantity", "order_date") {
		return false
	}
	customer, okCustomer := rec["customer"].(map[string]any)
	product, okProduct := rec["product"].(map[string]any)
	quantity, okQuantity := intValue(rec["quantity"])
	placedAt, okPlacedAt := stringValue(rec["order_date"])
	if !okCustomer || !okProduct || !okQuantity || !okPlacedAt {
		return false
	}
	return r.CustomerOK(customer) &&
		r.ProductOK(product) &&
		r.v.Var(quantity, "min=0") == nil &&
		r.v.Var(placedAt, "offsetdatetime") == nil
}

// exactKeys requires the record's key set to match keys exactly; extras
// and omissions both fail.
func exactKeys(rec map[string]any, keys ...string) bool {
	if len(rec) != len(keys) {
		return false
	}
	for _, k := range keys {
		if _, ok := rec[k]; !ok {
			return false
		}
	}
	return true
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// intValue accepts the integer shapes a UseNumber JSON decode or literal
// test data can produce. Fractional numbers are rejected outright.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
