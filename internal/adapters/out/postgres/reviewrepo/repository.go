// Package reviewrepo persists product reviews. The unique index on
// (user, product, order item) backs the once-per-item review gate.
package reviewrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewDTO represents a review row.
type ReviewDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_user_product_item"`
	ProductID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_user_product_item"`
	OrderItemID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_user_product_item"`
	Rating      int
	Comment     string
	Status      int `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for reviews.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Add persists a new review.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := ReviewDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		ProductID:   aggregate.ProductID().Bytes(),
		OrderItemID: aggregate.OrderItemID().Bytes(),
		Rating:      aggregate.Rating(),
		Comment:     aggregate.Comment(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// ExistsFor reports whether the (user, product, order item) triple was
// already reviewed.
func (r *GormReviewRepository) ExistsFor(ctx context.Context, userID, productID, orderItemID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("user_id = ? AND product_id = ? AND order_item_id = ?",
			userID.Bytes(), productID.Bytes(), orderItemID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
