// Package report runs named read-only SQL reports over the shop database and
// times each one.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ecommerce-api/internal/model"

	"gorm.io/gorm"
)

// Report is one named query.
type Report struct {
	Name        string
	Description string
	Query       string
	Args        []interface{}
}

// Result holds the rows and timing of one report run.
type Result struct {
	Name        string
	Description string
	Columns     []string
	Rows        [][]string
	Duration    time.Duration
	Explain     []string
	Err         error
}

// Options tunes the built-in reports.
type Options struct {
	LowStockThreshold int
	Explain           bool
}

// Builtin returns the reports shipped with the binary.
func Builtin(opts Options) []Report {
	settled := []string{
		model.OrderConfirmed.String(),
		model.OrderProcessing.String(),
		model.OrderDelivered.String(),
	}
	return []Report{
		{
			Name:        "orders_by_status",
			Description: "Order count and value per status.",
			Query: "SELECT status, COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS value " +
				"FROM orders GROUP BY status ORDER BY status",
		},
		{
			Name:        "revenue_by_day",
			Description: "Confirmed, processing and delivered order value per day, last 30 days with sales.",
			Query: "SELECT DATE(order_date) AS day, COUNT(*) AS orders, SUM(total_amount) AS revenue " +
				"FROM orders WHERE status IN ? GROUP BY DATE(order_date) ORDER BY day DESC LIMIT 30",
			Args: []interface{}{settled},
		},
		{
			Name:        "low_stock",
			Description: fmt.Sprintf("Live products with %d units or fewer.", opts.LowStockThreshold),
			Query: "SELECT id, name, quantity FROM products " +
				"WHERE is_deleted = ? AND quantity <= ? ORDER BY quantity ASC, id ASC",
			Args: []interface{}{false, opts.LowStockThreshold},
		},
		{
			Name:        "payments_by_type",
			Description: "Payment count and amount per type and status.",
			Query: "SELECT payment_type, status, COUNT(*) AS payments, SUM(amount) AS amount " +
				"FROM payments GROUP BY payment_type, status ORDER BY payment_type, status",
		},
	}
}

// Select keeps the reports named in names, or all of them when names is empty.
func Select(reports []Report, names ...string) ([]Report, error) {
	if len(names) == 0 {
		return reports, nil
	}
	byName := make(map[string]Report, len(reports))
	for _, r := range reports {
		byName[r.Name] = r
	}
	out := make([]Report, 0, len(names))
	for _, n := range names {
		r, ok := byName[strings.TrimSpace(n)]
		if !ok {
			return nil, fmt.Errorf("unknown report %q", n)
		}
		out = append(out, r)
	}
	return out, nil
}

// Run executes each report in order. A failing report records its error in
// its Result and does not stop the others.
func Run(ctx context.Context, db *gorm.DB, reports []Report, explain bool) []Result {
	results := make([]Result, 0, len(reports))
	for _, rp := range reports {
		res := Result{Name: rp.Name, Description: rp.Description}

		start := time.Now()
		cols, rows, err := fetch(ctx, db, rp.Query, rp.Args...)
		res.Duration = time.Since(start)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		res.Columns = cols
		res.Rows = rows

		if explain {
			lines, err := explainQuery(ctx, db, rp.Query, rp.Args...)
			if err != nil {
				lines = []string{fmt.Sprintf("failed to collect EXPLAIN: %v", err)}
			}
			res.Explain = lines
		}
		results = append(results, res)
	}
	return results
}

func fetch(ctx context.Context, db *gorm.DB, query string, args ...interface{}) ([]string, [][]string, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		vals := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		line := make([]string, len(cols))
		for i, v := range vals {
			line[i] = formatValue(v)
		}
		out = append(out, line)
	}
	return cols, out, rows.Err()
}

func formatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprint(x)
	}
}

func explainQuery(ctx context.Context, db *gorm.DB, query string, args ...interface{}) ([]string, error) {
	var rows []map[string]interface{}
	if err := db.WithContext(ctx).Raw("EXPLAIN "+query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		parts := make([]string, 0, len(row))
		for k, v := range row {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines, nil
}
