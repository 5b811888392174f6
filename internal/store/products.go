package store

import (
	"context"

	"ecommerce-api/internal/model"

	"gorm.io/gorm"
)

// ListProducts returns every product that has not been soft-deleted.
func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.conn(ctx).
		Where("is_deleted = ?", false).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, wrap(err, "list", tableProducts)
	}
	return products, nil
}

// FindProduct loads a live product by id.
func (s *Store) FindProduct(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := s.conn(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		Take(&p).Error
	if err != nil {
		return nil, wrap(err, "find", tableProducts)
	}
	return &p, nil
}

// CreateProduct inserts p and fills in its generated id.
func (s *Store) CreateProduct(ctx context.Context, p *model.Product) error {
	p.ID = 0
	p.IsDeleted = false
	return wrap(s.conn(ctx).Create(p).Error, "insert", tableProducts)
}

// UpdateProduct loads the live product id, lets apply mutate it and saves the
// result in one transaction.
func (s *Store) UpdateProduct(ctx context.Context, id uint, apply func(*model.Product)) (*model.Product, error) {
	var p model.Product
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND is_deleted = ?", id, false).Take(&p).Error; err != nil {
			return err
		}
		apply(&p)
		p.ID = id
		p.IsDeleted = false
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, wrap(err, "update", tableProducts)
	}
	return &p, nil
}

// DeleteProduct sets the soft-delete flag. Orders that reference the product
// keep their items.
func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	res := s.conn(ctx).
		Model(&model.Product{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return wrap(res.Error, "delete", tableProducts)
	}
	if res.RowsAffected == 0 {
		return wrap(ErrNotFound, "delete", tableProducts)
	}
	return nil
}
