// Package seed fills an empty database with a deterministic demo catalog.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"ecommerce-api/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Config controls how many rows exist after seeding.
type Config struct {
	Customers int
	Products  int
	BatchSize int
}

// Summary reports how many rows each table gained.
type Summary struct {
	Customers int
	Products  int
}

// Catalog tops customers and products up to the configured counts. Tables
// that already hold enough rows are left alone, so running it twice is safe.
func Catalog(ctx context.Context, db *gorm.DB, cfg Config) (Summary, error) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}

	var sum Summary
	rnd := rand.New(rand.NewSource(42))

	n, err := seedCustomers(ctx, db, cfg, rnd)
	if err != nil {
		return sum, fmt.Errorf("seed customers: %w", err)
	}
	sum.Customers = n

	n, err = seedProducts(ctx, db, cfg, rnd)
	if err != nil {
		return sum, fmt.Errorf("seed products: %w", err)
	}
	sum.Products = n
	return sum, nil
}

func seedCustomers(ctx context.Context, db *gorm.DB, cfg Config, rnd *rand.Rand) (int, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&model.Customer{}).Count(&existing).Error; err != nil {
		return 0, err
	}
	if int(existing) >= cfg.Customers {
		return 0, nil
	}

	toCreate := cfg.Customers - int(existing)
	batch := make([]model.Customer, 0, cfg.BatchSize)
	start := int(existing)

	for i := 0; i < toCreate; i++ {
		batch = append(batch, buildCustomer(start+i, rnd))
		if len(batch) == cfg.BatchSize || i == toCreate-1 {
			if err := db.WithContext(ctx).Create(&batch).Error; err != nil {
				return 0, err
			}
			batch = batch[:0]
		}
	}
	return toCreate, nil
}

func seedProducts(ctx context.Context, db *gorm.DB, cfg Config, rnd *rand.Rand) (int, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&model.Product{}).Count(&existing).Error; err != nil {
		return 0, err
	}
	if int(existing) >= cfg.Products {
		return 0, nil
	}

	toCreate := cfg.Products - int(existing)
	batch := make([]model.Product, 0, cfg.BatchSize)

	for i := 0; i < toCreate; i++ {
		batch = append(batch, buildProduct(rnd))
		if len(batch) == cfg.BatchSize || i == toCreate-1 {
			if err := db.WithContext(ctx).Create(&batch).Error; err != nil {
				return 0, err
			}
			batch = batch[:0]
		}
	}
	return toCreate, nil
}

func buildCustomer(idx int, rnd *rand.Rand) model.Customer {
	first := randomChoice(firstNames, rnd)
	last := randomChoice(lastNames, rnd)
	return model.Customer{
		FirstName: first,
		LastName:  last,
		Email:     fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), idx),
		Phone:     randomPhone(rnd),
		Address:   fmt.Sprintf("%d %s", rnd.Intn(900)+100, randomChoice(streets, rnd)),
	}
}

func buildProduct(rnd *rand.Rand) model.Product {
	adj := randomChoice(adjectives, rnd)
	noun := randomChoice(nouns, rnd)
	return model.Product{
		Name:        adj + " " + noun,
		Description: fmt.Sprintf("A %s %s for everyday use.", strings.ToLower(adj), strings.ToLower(noun)),
		Price:       decimal.New(int64(rnd.Intn(49900)+100), -2),
		Quantity:    rnd.Intn(200),
	}
}

var (
	firstNames = []string{"Ada", "Alan", "Grace", "Edsger", "Barbara", "Ken", "Margaret", "Dennis", "Frances", "Niklaus"}
	lastNames  = []string{"Lovelace", "Turing", "Hopper", "Dijkstra", "Liskov", "Thompson", "Hamilton", "Ritchie", "Allen", "Wirth"}
	streets    = []string{"Market Street", "Elm Avenue", "Harbor Road", "Station Lane", "Mill Way"}
	adjectives = []string{"Classic", "Compact", "Deluxe", "Rugged", "Smart", "Vintage"}
	nouns      = []string{"Backpack", "Desk Lamp", "Kettle", "Notebook", "Headphones", "Water Bottle", "Mug"}
)

func randomChoice(items []string, rnd *rand.Rand) string {
	return items[rnd.Intn(len(items))]
}

func randomPhone(rnd *rand.Rand) string {
	prefixes := []string{"201", "312", "415", "617", "718"}
	prefix := prefixes[rnd.Intn(len(prefixes))]
	return fmt.Sprintf("%s-%03d-%04d", prefix, rnd.Intn(1000), rnd.Intn(10000))
}
