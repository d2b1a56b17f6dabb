package orders

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-order-analytics/internal/ranking"
	"github.com/imrishuroy/go-order-analytics/internal/validation"
)

// ErrInvalidOrderRecord is returned by Add when a raw record fails
// validation and therefore may not enter the collection.
var ErrInvalidOrderRecord = errors.New("order record failed validation")

// ErrNoOrdersInRange is returned when an average is requested over a date
// range that sold nothing. "No sales" is an explicit failure, never a
// silent zero.
var ErrNoOrdersInRange = errors.New("no orders in range: quantity sum is zero")

// Service owns the in-memory order collection and answers the aggregate
// reporting queries over it. It assumes a single writer; concurrent
// appends need external synchronization.
type Service struct {
	rules   DiscountRules
	records *validation.Records
	log     *zap.Logger
	nowFunc func() time.Time

	orders []Order
}

// NewService builds an empty Service with its collaborators injected.
func NewService(rules DiscountRules, records *validation.Records, log *zap.Logger) *Service {
	s := &Service{rules: rules, records: records, log: log, nowFunc: time.Now}
	s.log.Info("orders service initialized")
	return s
}

// Add validates a raw record and appends the resulting order. An invalid
// record is an error here, unlike in batch loading where it is filtered.
func (s *Service) Add(rec map[string]any) error {
	if !s.records.OrderOK(rec) {
		return ErrInvalidOrderRecord
	}
	o, err := OrderFromRecord(rec)
	if err != nil {
		return err
	}
	s.Append(o)
	return nil
}

// Append adds already-constructed orders to the collection.
func (s *Service) Append(orders ...Order) {
	s.orders = append(s.orders, orders...)
}

// Len reports how many orders the service holds.
func (s *Service) Len() int { return len(s.orders) }

// AveragePriceInRange averages the unit price over orders placed within
// [start, end]: total order value divided by total quantity, in exact
// decimal arithmetic.
func (s *Service) AveragePriceInRange(start, end time.Time) (decimal.Decimal, error) {
	var totalQuantity int64
	totalValue := decimal.Zero
	for _, o := range s.orders {
		if !o.InDateRange(start, end) {
			continue
		}
		totalQuantity += int64(o.Quantity)
		totalValue = totalValue.Add(o.TotalPrice())
	}
	if totalQuantity == 0 {
		return decimal.Decimal{}, ErrNoOrdersInRange
	}
	return totalValue.Div(decimal.NewFromInt(totalQuantity)), nil
}

// MostExpensiveProductsPerCategory groups the ordered products by category
// and keeps, per category, the run of top-priced items. Ties are exact
// price equality; sorting brings equal prices together so the run catches
// every one of them.
func (s *Service) MostExpensiveProductsPerCategory() map[Category][]Product {
	byCategory := map[Category][]Product{}
	for _, o := range s.orders {
		byCategory[o.Product.Category] = append(byCategory[o.Product.Category], o.Product)
	}
	for category, products := range byCategory {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
		top := 1
		for top < len(products) && products[top].Price.Equal(products[top-1].Price) {
			top++
		}
		byCategory[category] = products[:top]
	}
	return byCategory
}

// OrderLine is one product/quantity pair inside a customer summary.
type OrderLine struct {
	Product  Product
	Quantity int
}

// CustomerSummary lists everything a single customer ordered.
type CustomerSummary struct {
	Customer Customer
	Lines    []OrderLine
}

// CustomersOrderSummary groups ordered lines by customer. Customers appear
// in first-seen order and their lines in insertion order.
func (s *Service) CustomersOrderSummary() []CustomerSummary {
	index := map[Customer]int{}
	var out []CustomerSummary
	for _, o := range s.orders {
		i, ok := index[o.Customer]
		if !ok {
			i = len(out)
			index[o.Customer] = i
			out = append(out, CustomerSummary{Customer: o.Customer})
		}
		out[i].Lines = append(out[i].Lines, OrderLine{Product: o.Product, Quantity: o.Quantity})
	}
	return out
}

// DatesWithMostOrders returns every date tied for the highest order count.
// Dates compare as instants, normalized to UTC.
func (s *Service) DatesWithMostOrders() ([]time.Time, error) {
	c := s.countDates()
	return ranking.Leaders(c.MostCommon(), ranking.SameCount[int])
}

// DatesWithLeastOrders returns every date tied for the lowest order count.
func (s *Service) DatesWithLeastOrders() ([]time.Time, error) {
	c := s.countDates()
	return ranking.Leaders(c.LeastCommon(), ranking.SameCount[int])
}

func (s *Service) countDates() *ranking.Counter[time.Time] {
	c := ranking.NewCounter[time.Time]()
	for _, o := range s.orders {
		c.Add(o.PlacedAt.UTC())
	}
	return c
}

// ClientsWithMostValuableCart sums quantity times price per customer and
// returns every customer tied for the top total.
func (s *Service) ClientsWithMostValuableCart() ([]Customer, error) {
	totals := map[Customer]decimal.Decimal{}
	var seen []Customer
	for _, o := range s.orders {
		total, ok := totals[o.Customer]
		if !ok {
			seen = append(seen, o.Customer)
			total = decimal.Zero
		}
		totals[o.Customer] = total.Add(o.TotalPrice())
	}
	entries := make([]ranking.Entry[Customer, decimal.Decimal], 0, len(seen))
	for _, customer := range seen {
		entries = append(entries, ranking.Entry[Customer, decimal.Decimal]{Item: customer, Count: totals[customer]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count.GreaterThan(entries[j].Count)
	})
	return ranking.Leaders(entries, decimal.Decimal.Equal)
}

// OrdersValueAfterDiscounts sums every order's discounted value. Discount
// eligibility for the date rule is evaluated against the wall clock at
// call time.
func (s *Service) OrdersValueAfterDiscounts() decimal.Decimal {
	now := s.nowFunc()
	total := decimal.Zero
	for _, o := range s.orders {
		total = total.Add(o.ValueAfterDiscount(s.rules, now))
	}
	return total
}

// ClientCountWithExactQuantityEveryOrder counts customers for whom every
// single order has quantity exactly n.
func (s *Service) ClientCountWithExactQuantityEveryOrder(n int) int {
	matched := map[Customer]bool{}
	for _, o := range s.orders {
		ok, seen := matched[o.Customer]
		if !seen {
			ok = true
		}
		matched[o.Customer] = ok && o.QuantityEquals(n)
	}
	count := 0
	for _, ok := range matched {
		if ok {
			count++
		}
	}
	return count
}

// MostPopularCategory returns every category tied for the highest order
// count.
func (s *Service) MostPopularCategory() ([]Category, error) {
	c := ranking.NewCounter[Category]()
	for _, o := range s.orders {
		c.Add(o.Product.Category)
	}
	return ranking.Leaders(c.MostCommon(), ranking.SameCount[int])
}

// MonthQuantity is one row of the month ranking.
type MonthQuantity struct {
	Month    time.Month
	Quantity int
}

// MonthlyOrderedQuantities sums ordered quantity per calendar month and
// returns the months ranked descending by total. It is a ranking, not a
// calendar-ordered table.
func (s *Service) MonthlyOrderedQuantities() []MonthQuantity {
	totals := map[time.Month]int{}
	var seen []time.Month
	for _, o := range s.orders {
		m := o.PlacedAt.Month()
		if _, ok := totals[m]; !ok {
			seen = append(seen, m)
		}
		totals[m] += o.Quantity
	}
	out := make([]MonthQuantity, 0, len(seen))
	for _, m := range seen {
		out = append(out, MonthQuantity{Month: m, Quantity: totals[m]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	return out
}

// MostPopularCategoryPerMonth returns, for each month that has at least
// one order, every category tied for that month's highest order count.
func (s *Service) MostPopularCategoryPerMonth() (map[time.Month][]Category, error) {
	counters := map[time.Month]*ranking.Counter[Category]{}
	for _, o := range s.orders {
		m := o.PlacedAt.Month()
		c, ok := counters[m]
		if !ok {
			c = ranking.NewCounter[Category]()
			counters[m] = c
		}
		c.Add(o.Product.Category)
	}
	out := make(map[time.Month][]Category, len(counters))
	for m, c := range counters {
		leaders, err := ranking.Leaders(c.MostCommon(), ranking.SameCount[int])
		if err != nil {
			return nil, err
		}
		out[m] = leaders
	}
	return out, nil
}
