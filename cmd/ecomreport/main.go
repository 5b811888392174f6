package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"ecommerce-api/internal/db"
	"ecommerce-api/internal/report"

	"github.com/olekukonko/tablewriter"
	"gorm.io/gorm"
)

var errReportsFailed = errors.New("one or more reports failed")

func main() {
	err := run()
	if errors.Is(err, errReportsFailed) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		lowStock    = flag.Int("low-stock", 5, "quantity at or below which a product counts as low stock")
		only        = flag.String("only", "", "comma-separated report names to run (default: all)")
		showExplain = flag.Bool("explain", false, "print EXPLAIN output for each report")
	)
	flag.Parse()

	gdb, err := db.Open(db.FromEnv())
	if err != nil {
		return fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer db.Close(gdb)

	var names []string
	if *only != "" {
		names = strings.Split(*only, ",")
	}
	reports, err := report.Select(report.Builtin(report.Options{LowStockThreshold: *lowStock}), names...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := logDatasetStats(ctx, gdb); err != nil {
		log.Printf("failed to collect dataset stats: %v", err)
	}

	results := report.Run(ctx, gdb, reports, *showExplain)

	failed := false
	for _, res := range results {
		fmt.Printf("\n== %s: %s (%s)\n", res.Name, res.Description, res.Duration)
		if res.Err != nil {
			failed = true
			fmt.Printf("ERR: %v\n", res.Err)
			continue
		}
		if err := printTable(res); err != nil {
			log.Printf("[report: %s] render failed: %v", res.Name, err)
		}
		for _, line := range res.Explain {
			log.Printf("  %s", line)
		}
	}
	if failed {
		return errReportsFailed
	}
	return nil
}

func logDatasetStats(ctx context.Context, gdb *gorm.DB) error {
	counts := make(map[string]int64, 3)
	for _, table := range []string{"customers", "products", "orders"} {
		var n int64
		if err := gdb.WithContext(ctx).Table(table).Count(&n).Error; err != nil {
			return err
		}
		counts[table] = n
	}
	log.Printf("dataset: customers=%d products=%d orders=%d", counts["customers"], counts["products"], counts["orders"])
	return nil
}

func printTable(res report.Result) error {
	if len(res.Rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	header := make([]any, len(res.Columns))
	for i, c := range res.Columns {
		header[i] = c
	}
	table.Header(header...)
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = truncateText(v, 40)
		}
		if err := table.Append(cells); err != nil {
			return err
		}
	}
	return table.Render()
}

func truncateText(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "…"
}
