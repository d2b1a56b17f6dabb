package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// The FromRecord constructors turn raw records into entities. Records are
// expected to have passed validation first; a field that still fails to
// convert is a contract violation and surfaces as an error.

// CustomerFromRecord builds a Customer from a validated raw record.
func CustomerFromRecord(rec map[string]any) (Customer, error) {
	name, okName := asString(rec["name"])
	surname, okSurname := asString(rec["surname"])
	age, okAge := asInt(rec["age"])
	email, okEmail := asString(rec["email"])
	if !okName || !okSurname || !okAge || !okEmail {
		return Customer{}, errors.New("customer record has malformed fields")
	}
	return Customer{Name: name, Surname: surname, Age: int(age), Email: email}, nil
}

// ProductFromRecord builds a Product from a validated raw record. The
// price string becomes an exact decimal, the category string its enum tag.
func ProductFromRecord(rec map[string]any) (Product, error) {
	name, okName := asString(rec["name"])
	priceStr, okPrice := asString(rec["price"])
	categoryStr, okCategory := asString(rec["category"])
	if !okName || !okPrice || !okCategory {
		return Product{}, errors.New("product record has malformed fields")
	}
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return Product{}, fmt.Errorf("product price: %w", err)
	}
	category, err := ParseCategory(categoryStr)
	if err != nil {
		return Product{}, err
	}
	return Product{Name: name, Price: price, Category: category}, nil
}

// OrderFromRecord builds an Order from a validated raw record, recursing
// into the customer and product sub-records.
func OrderFromRecord(rec map[string]any) (Order, error) {
	customerRec, ok := rec["customer"].(map[string]any)
	if !ok {
		return Order{}, errors.New("order record: customer is not a mapping")
	}
	productRec, ok := rec["product"].(map[string]any)
	if !ok {
		return Order{}, errors.New("order record: product is not a mapping")
	}
	customer, err := CustomerFromRecord(customerRec)
	if err != nil {
		return Order{}, err
	}
	product, err := ProductFromRecord(productRec)
	if err != nil {
		return Order{}, err
	}
	quantity, ok := asInt(rec["quantity"])
	if !ok {
		return Order{}, errors.New("order record: quantity is not an integer")
	}
	dateStr, ok := asString(rec["order_date"])
	if !ok {
		return Order{}, errors.New("order record: order_date is not a string")
	}
	placedAt, err := time.Parse(OrderDateLayout, dateStr)
	if err != nil {
		return Order{}, fmt.Errorf("order record: order_date: %w", err)
	}
	return NewOrder(customer, product, int(quantity), placedAt)
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int64, bool) {
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
