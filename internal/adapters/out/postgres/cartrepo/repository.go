// Package cartrepo persists cart entries. A cart has no row of its own; it is
// the set of entry rows keyed by customer.
package cartrepo

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryDTO represents one product line in a customer's cart.
type EntryDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
}

// TableName specifies the database table name for cart entries.
func (EntryDTO) TableName() string {
	return "cart_entries"
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetByCustomer retrieves the customer's cart. A customer with no entry rows
// gets an empty cart, not an error.
func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Order("product_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]cart.Entry, 0, len(dtos))
	for _, dto := range dtos {
		productID, idErr := kernel.UUIDFromBytes(dto.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		entries = append(entries, cart.RestoreEntry(productID, dto.Quantity))
	}

	return cart.RestoreCart(customerID, entries)
}

// Save persists the cart, replacing its stored entries.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	customerID := aggregate.CustomerID().Bytes()

	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&EntryDTO{}).Error
	if err != nil {
		return err
	}

	if aggregate.IsEmpty() {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(aggregate.Entries()))
	for _, entry := range aggregate.Entries() {
		dtos = append(dtos, EntryDTO{
			CustomerID: customerID,
			ProductID:  entry.ProductID().Bytes(),
			Quantity:   entry.Quantity(),
		})
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dtos).Error
}

// DeleteEntries removes the given products from the customer's cart. Checkout
// uses this to clear exactly the entries of a succeeded partition.
func (r *GormCartRepository) DeleteEntries(ctx context.Context, customerID kernel.UUID, productIDs []kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(productIDs))
	for _, id := range productIDs {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id IN ?", customerID.Bytes(), raw).
		Delete(&EntryDTO{}).Error
}
