package ingest

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/imrishuroy/go-order-analytics/internal/orders"
	"github.com/imrishuroy/go-order-analytics/internal/validation"
)

// Loader turns raw decoded JSON into validated domain orders.
type Loader struct {
	records *validation.Records
	log     *zap.Logger
}

// NewLoader creates a Loader with its validator and logger injected.
func NewLoader(records *validation.Records, log *zap.Logger) *Loader {
	return &Loader{records: records, log: log}
}

// LoadOrders filters the raw list through record validation and constructs
// an Order per surviving record. Individual rejects are silent aside from
// the logged count; only a top-level shape problem is an error.
func (l *Loader) LoadOrders(data any) ([]orders.Order, error) {
	list, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("orders input must be a JSON array of objects, got %T", data)
	}
	loaded := make([]orders.Order, 0, len(list))
	for _, item := range list {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("orders input must be a JSON array of objects, got element %T", item)
		}
		if !l.records.OrderOK(rec) {
			continue
		}
		o, err := orders.OrderFromRecord(rec)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, o)
	}

	if rejected := len(list) - len(loaded); rejected > 0 {
		l.log.Warn("order records rejected during load", zap.Int("rejected", rejected))
	} else {
		l.log.Info("all order records loaded", zap.Int("loaded", len(loaded)))
	}
	return loaded, nil
}
