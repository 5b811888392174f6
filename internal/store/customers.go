package store

import (
	"context"

	"ecommerce-api/internal/model"

	"gorm.io/gorm"
)

// ListCustomers returns every customer that has not been soft-deleted.
func (s *Store) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := s.conn(ctx).
		Where("is_deleted = ?", false).
		Order("id ASC").
		Find(&customers).Error
	if err != nil {
		return nil, wrap(err, "list", tableCustomers)
	}
	return customers, nil
}

// FindCustomer loads a live customer by id.
func (s *Store) FindCustomer(ctx context.Context, id uint) (*model.Customer, error) {
	var c model.Customer
	err := s.conn(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		Take(&c).Error
	if err != nil {
		return nil, wrap(err, "find", tableCustomers)
	}
	return &c, nil
}

// CreateCustomer inserts c and fills in its generated id.
func (s *Store) CreateCustomer(ctx context.Context, c *model.Customer) error {
	c.ID = 0
	c.IsDeleted = false
	return wrap(s.conn(ctx).Create(c).Error, "insert", tableCustomers)
}

// UpdateCustomer loads the live customer id, lets apply mutate it and saves
// the result in one transaction.
func (s *Store) UpdateCustomer(ctx context.Context, id uint, apply func(*model.Customer)) (*model.Customer, error) {
	var c model.Customer
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND is_deleted = ?", id, false).Take(&c).Error; err != nil {
			return err
		}
		apply(&c)
		c.ID = id
		c.IsDeleted = false
		return tx.Save(&c).Error
	})
	if err != nil {
		return nil, wrap(err, "update", tableCustomers)
	}
	return &c, nil
}

// DeleteCustomer sets the soft-delete flag. Deleting an absent or already
// deleted customer returns ErrNotFound.
func (s *Store) DeleteCustomer(ctx context.Context, id uint) error {
	res := s.conn(ctx).
		Model(&model.Customer{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return wrap(res.Error, "delete", tableCustomers)
	}
	if res.RowsAffected == 0 {
		return wrap(ErrNotFound, "delete", tableCustomers)
	}
	return nil
}
