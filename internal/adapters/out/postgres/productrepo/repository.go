package productrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing product to the database. Reservation rows are
// upserted, never deleted; released and committed holds stay for auditing.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("SellerID", "CategoryID", "PriceCents", "StockQuantity", "Status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Reservations) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto.Reservations).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a product with its reservations under a row lock. Concurrent
// reservations of the same product serialize here.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Reservations").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBatch retrieves several products without locking. Missing IDs are
// skipped.
func (r *GormProductRepository) GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Preload("Reservations").
		Where("id IN ?", rawIDs(ids)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return batchToDomain(dtos)
}

// GetBatchForUpdate retrieves several products under row locks, taken in ID
// order so two checkouts touching the same partition cannot deadlock.
func (r *GormProductRepository) GetBatchForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Reservations").
		Where("id IN ?", rawIDs(ids)).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return batchToDomain(dtos)
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}

func batchToDomain(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
