// Package orders holds the domain entities and the in-memory aggregation
// service of the order analytics application. Entities are built once from
// validated records and never mutated afterward; equality is structural.
package orders

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderDateLayout is the strict timestamp layout for order dates: local
// time with a mandatory numeric UTC offset.
const OrderDateLayout = "2006-01-02T15:04:05-07:00"

// discountWindow is how long after "now" an order still earns the
// date-proximity discount.
const discountWindow = 48 * time.Hour

// Customer identifies a buyer. All fields are comparable, so customers
// with identical details collapse to a single map key during aggregation.
type Customer struct {
	Name    string
	Surname string
	Age     int
	Email   string
}

// IsOlderThan reports whether the customer's age exceeds n.
func (c Customer) IsOlderThan(n int) bool { return c.Age > n }

// Product is a catalog item with an exact decimal price.
type Product struct {
	Name     string
	Price    decimal.Decimal
	Category Category
}

// Order is one purchase: a customer buying some quantity of a product at a
// point in time. It owns its customer and product by value.
type Order struct {
	Customer Customer
	Product  Product
	Quantity int
	PlacedAt time.Time
}

// NewOrder builds an Order, rejecting zero-value customers and products:
// an Order only ever wraps entities that came out of validated records.
func NewOrder(customer Customer, product Product, quantity int, placedAt time.Time) (Order, error) {
	if customer == (Customer{}) {
		return Order{}, errors.New("customer is not a valid Customer value")
	}
	// a parsed product always carries a declared category
	if product.Category < CategoryA || product.Category > CategoryC {
		return Order{}, errors.New("product is not a valid Product value")
	}
	return Order{Customer: customer, Product: product, Quantity: quantity, PlacedAt: placedAt}, nil
}

// TotalPrice is quantity times unit price, in exact decimal arithmetic.
func (o Order) TotalPrice() decimal.Decimal {
	return o.Product.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// InDateRange reports whether the order was placed within [start, end],
// inclusive on both ends.
func (o Order) InDateRange(start, end time.Time) bool {
	return !o.PlacedAt.Before(start) && !o.PlacedAt.After(end)
}

// QuantityEquals reports whether the order quantity is exactly n.
func (o Order) QuantityEquals(n int) bool { return o.Quantity == n }

// DiscountRules carries the discount tunables, resolved once at process
// start and injected wherever discounts are computed.
type DiscountRules struct {
	AgeCap   int
	AgeRate  decimal.Decimal
	DateRate decimal.Decimal
}

// ValueAfterDiscount applies at most one discount to the order total: the
// age rate when the customer is at or under the cap, otherwise the date
// rate when the order lands inside [now, now+48h]. The two rates never
// combine; the age check always wins.
func (o Order) ValueAfterDiscount(rules DiscountRules, now time.Time) decimal.Decimal {
	total := o.TotalPrice()
	switch {
	case !o.Customer.IsOlderThan(rules.AgeCap):
		return total.Sub(total.Mul(rules.AgeRate))
	case o.InDateRange(now, now.Add(discountWindow)):
		return total.Sub(total.Mul(rules.DateRate))
	default:
		return total
	}
}
