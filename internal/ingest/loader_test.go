package ingest

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/imrishuroy/go-order-analytics/internal/orders"
	"github.com/imrishuroy/go-order-analytics/internal/validation"
)

func newLoader(t *testing.T) (*Loader, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	records := validation.NewRecords(18, orders.CategoryNames())
	return NewLoader(records, zap.New(core)), logs
}

func rawOrder(quantity any) map[string]any {
	return map[string]any{
		"customer": map[string]any{
			"name": "ADAM", "surname": "SMITH", "age": 33, "email": "adam@smith.com",
		},
		"product": map[string]any{
			"name": "TV", "price": "3000", "category": "A",
		},
		"quantity":   quantity,
		"order_date": "2022-11-11T10:00:00+00:00",
	}
}

func TestLoadOrders_AllValid(t *testing.T) {
	l, logs := newLoader(t)

	got, err := l.LoadOrders([]any{rawOrder(1), rawOrder(2)})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(got))
	}

	entries := logs.FilterMessage("all order records loaded").All()
	if len(entries) != 1 {
		t.Fatalf("expected one load log entry, got %d", len(entries))
	}
	if loaded := entries[0].ContextMap()["loaded"]; loaded != int64(2) {
		t.Fatalf("expected loaded=2 in log context, got %v", loaded)
	}
}

func TestLoadOrders_FiltersInvalidSilentlyAndLogsCount(t *testing.T) {
	l, logs := newLoader(t)

	invalid := rawOrder(1)
	delete(invalid, "order_date")

	got, err := l.LoadOrders([]any{rawOrder(1), invalid, rawOrder(-3)})
	if err != nil {
		t.Fatalf("per-record failures must not error the batch: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving order, got %d", len(got))
	}

	entries := logs.FilterMessage("order records rejected during load").All()
	if len(entries) != 1 {
		t.Fatalf("expected one rejection log entry, got %d", len(entries))
	}
	if rejected := entries[0].ContextMap()["rejected"]; rejected != int64(2) {
		t.Fatalf("expected rejected=2 in log context, got %v", rejected)
	}
}

func TestLoadOrders_TopLevelShapeErrors(t *testing.T) {
	l, _ := newLoader(t)

	if _, err := l.LoadOrders("not a list"); err == nil {
		t.Fatal("expected shape error for a string input")
	}
	if _, err := l.LoadOrders([]any{"not a mapping"}); err == nil {
		t.Fatal("expected shape error for a non-mapping element")
	}
}

func TestLoadOrders_EmptyList(t *testing.T) {
	l, _ := newLoader(t)

	got, err := l.LoadOrders([]any{})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no orders, got %d", len(got))
	}
}
