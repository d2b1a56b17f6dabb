package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/imrishuroy/go-order-analytics/internal/config"
	"github.com/imrishuroy/go-order-analytics/internal/ingest"
	"github.com/imrishuroy/go-order-analytics/internal/logging"
	"github.com/imrishuroy/go-order-analytics/internal/orders"
	"github.com/imrishuroy/go-order-analytics/internal/validation"
)

var reportOrdersFile string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Load an orders file and print the aggregate report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOrdersFile, "file", "f", "",
		"orders JSON file (overrides ORDER_ORDERS_FILE)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogMode, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log = log.With(zap.String("run_id", uuid.NewString()))

	path := cfg.OrdersFile
	if reportOrdersFile != "" {
		path = reportOrdersFile
	}

	doc, err := ingest.ReadJSONFile(path)
	if err != nil {
		return err
	}
	log.Info("orders file read", zap.String("path", path))

	records := validation.NewRecords(cfg.MinCustomerAge, orders.CategoryNames())
	loaded, err := ingest.NewLoader(records, log).LoadOrders(doc)
	if err != nil {
		return err
	}

	rules := orders.DiscountRules{
		AgeCap:   cfg.DiscountAgeCap,
		AgeRate:  cfg.DiscountRateForAge,
		DateRate: cfg.DiscountRateForDate,
	}
	svc := orders.NewService(rules, records, log)
	svc.Append(loaded...)

	printReport(cmd.OutOrStdout(), svc)
	return nil
}

func printReport(w io.Writer, svc *orders.Service) {
	fmt.Fprintf(w, "orders loaded: %d\n", svc.Len())
	fmt.Fprintf(w, "orders value after discounts: %s\n", svc.OrdersValueAfterDiscounts())

	if dates, err := svc.DatesWithMostOrders(); err == nil {
		fmt.Fprintf(w, "busiest dates: %s\n", formatDates(dates))
	}
	if dates, err := svc.DatesWithLeastOrders(); err == nil {
		fmt.Fprintf(w, "quietest dates: %s\n", formatDates(dates))
	}
	if clients, err := svc.ClientsWithMostValuableCart(); err == nil {
		names := make([]string, 0, len(clients))
		for _, c := range clients {
			names = append(names, c.Name+" "+c.Surname)
		}
		fmt.Fprintf(w, "most valuable carts: %s\n", strings.Join(names, ", "))
	}
	if categories, err := svc.MostPopularCategory(); err == nil {
		fmt.Fprintf(w, "most popular categories: %s\n", joinCategories(categories))
	}

	for category, products := range svc.MostExpensiveProductsPerCategory() {
		names := make([]string, 0, len(products))
		for _, p := range products {
			names = append(names, fmt.Sprintf("%s (%s)", p.Name, p.Price))
		}
		fmt.Fprintf(w, "top priced in %s: %s\n", category, strings.Join(names, ", "))
	}

	for _, row := range svc.MonthlyOrderedQuantities() {
		fmt.Fprintf(w, "month %s: %d items\n", row.Month, row.Quantity)
	}
	if perMonth, err := svc.MostPopularCategoryPerMonth(); err == nil {
		for month, categories := range perMonth {
			fmt.Fprintf(w, "top categories in %s: %s\n", month, joinCategories(categories))
		}
	}

	for _, summary := range svc.CustomersOrderSummary() {
		fmt.Fprintf(w, "%s %s ordered:\n", summary.Customer.Name, summary.Customer.Surname)
		for _, line := range summary.Lines {
			fmt.Fprintf(w, "  %d x %s\n", line.Quantity, line.Product.Name)
		}
	}
}

func formatDates(dates []time.Time) string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(orders.OrderDateLayout))
	}
	return strings.Join(out, ", ")
}

func joinCategories(categories []orders.Category) string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.String())
	}
	return strings.Join(out, ", ")
}
