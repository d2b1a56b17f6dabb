package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/imrishuroy/go-order-analytics/internal/ingest"
	"github.com/imrishuroy/go-order-analytics/internal/orders"
	"github.com/imrishuroy/go-order-analytics/internal/validation"
)

func testService(t *testing.T) *orders.Service {
	t.Helper()
	rules := orders.DiscountRules{
		AgeCap:   25,
		AgeRate:  decimal.RequireFromString("0.03"),
		DateRate: decimal.RequireFromString("0.02"),
	}
	records := validation.NewRecords(18, orders.CategoryNames())
	return orders.NewService(rules, records, zaptest.NewLogger(t))
}

func TestPrintReport(t *testing.T) {
	svc := testService(t)

	placedAt, err := time.Parse(orders.OrderDateLayout, "2022-11-11T10:00:00+00:00")
	require.NoError(t, err)
	svc.Append(orders.Order{
		Customer: orders.Customer{Name: "ADAM", Surname: "SMITH", Age: 33, Email: "adam@smith.com"},
		Product:  orders.Product{Name: "TV", Price: decimal.NewFromInt(3000), Category: orders.CategoryA},
		Quantity: 1,
		PlacedAt: placedAt,
	})

	var buf bytes.Buffer
	printReport(&buf, svc)
	out := buf.String()

	assert.Contains(t, out, "orders loaded: 1")
	assert.Contains(t, out, "orders value after discounts: 3000")
	assert.Contains(t, out, "most valuable carts: ADAM SMITH")
	assert.Contains(t, out, "most popular categories: A")
	assert.Contains(t, out, "top priced in A: TV (3000)")
	assert.Contains(t, out, "month November: 1 items")
	assert.Contains(t, out, "ADAM SMITH ordered:")
}

func TestPrintReport_EmptyCollection(t *testing.T) {
	svc := testService(t)

	var buf bytes.Buffer
	printReport(&buf, svc)
	out := buf.String()

	// ranking queries have nothing to rank; the report stays minimal
	assert.Contains(t, out, "orders loaded: 0")
	assert.NotContains(t, out, "busiest dates")
}

func TestReportPipeline_LoadsFromRawDocument(t *testing.T) {
	svc := testService(t)
	records := validation.NewRecords(18, orders.CategoryNames())
	loader := ingest.NewLoader(records, zaptest.NewLogger(t))

	doc := []any{
		map[string]any{
			"customer": map[string]any{
				"name": "ELENA", "surname": "NOVAK", "age": 25, "email": "elena@novak.com",
			},
			"product": map[string]any{
				"name": "FRIDGE", "price": "1500", "category": "B",
			},
			"quantity":   2,
			"order_date": "2022-12-11T10:00:00+00:00",
		},
	}

	loaded, err := loader.LoadOrders(doc)
	require.NoError(t, err)
	svc.Append(loaded...)

	var buf bytes.Buffer
	printReport(&buf, svc)
	assert.Contains(t, buf.String(), "orders value after discounts: 2910")
}
