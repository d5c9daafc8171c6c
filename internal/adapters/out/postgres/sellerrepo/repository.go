// Package sellerrepo persists seller applications.
package sellerrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationDTO represents a seller application row.
type ApplicationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicantID  uuid.UUID `gorm:"type:uuid;index"`
	BusinessName string
	Status       int `gorm:"index"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt   *time.Time
	CreatedAt    time.Time
}

// TableName specifies the database table name for seller applications.
func (ApplicationDTO) TableName() string {
	return "seller_applications"
}

// GormSellerApplicationRepository implements SellerApplicationRepository
// using GORM.
type GormSellerApplicationRepository struct {
	db *gorm.DB
}

// NewGormSellerApplicationRepository creates a new GORM seller application
// repository.
func NewGormSellerApplicationRepository(db *gorm.DB) *GormSellerApplicationRepository {
	return &GormSellerApplicationRepository{db: db}
}

// Add persists a new application.
func (r *GormSellerApplicationRepository) Add(ctx context.Context, aggregate *seller.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists changes to an existing application.
func (r *GormSellerApplicationRepository) Update(ctx context.Context, aggregate *seller.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ApplicationDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "ReviewedBy", "ReviewedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves an application under a row lock so two admins cannot settle
// it concurrently.
func (r *GormSellerApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sellerApplication", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func fromDomain(aggregate *seller.Application) ApplicationDTO {
	var reviewedBy *uuid.UUID
	if id := aggregate.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	return ApplicationDTO{
		ID:           aggregate.ID().Bytes(),
		ApplicantID:  aggregate.ApplicantID().Bytes(),
		BusinessName: aggregate.BusinessName(),
		Status:       int(aggregate.Status()),
		ReviewedBy:   reviewedBy,
		ReviewedAt:   aggregate.ReviewedAt(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto ApplicationDTO) (*seller.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	applicantID, err := kernel.UUIDFromBytes(dto.ApplicantID[:])
	if err != nil {
		return nil, err
	}

	var reviewedBy *kernel.UUID
	if dto.ReviewedBy != nil {
		rID, revErr := kernel.UUIDFromBytes((*dto.ReviewedBy)[:])
		if revErr != nil {
			return nil, revErr
		}
		reviewedBy = &rID
	}

	return seller.RestoreApplication(
		id, applicantID, dto.BusinessName,
		seller.ApplicationStatus(dto.Status),
		reviewedBy, dto.ReviewedAt, dto.CreatedAt,
	)
}
