package deliveryrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery attempt to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
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

// Update saves an existing delivery attempt to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("SubStatus", "PickedUpAt", "InTransitAt", "DeliveredAt", "FailedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery attempt by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the order's non-terminal delivery attempt, or
// nil when the order is re-assignable.
func (r *GormDeliveryRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND sub_status NOT IN ?",
			orderID.Bytes(),
			[]int{int(delivery.SubStatusDelivered), int(delivery.SubStatusFailed)},
		).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the full assignment history of an order, oldest first.
func (r *GormDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("assigned_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	attempts := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		attempt, domErr := toDomain(dto)
		if domErr != nil {
			return nil, domErr
		}
		attempts = append(attempts, attempt)
	}

	return attempts, nil
}

// AddEarning persists a rider earning.
func (r *GormDeliveryRepository) AddEarning(ctx context.Context, earning *delivery.RiderEarning) error {
	if err := earning.Validate(); err != nil {
		return err
	}

	dto := earningFromDomain(earning)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateEarning persists changes to an existing earning.
func (r *GormDeliveryRepository) UpdateEarning(ctx context.Context, earning *delivery.RiderEarning) error {
	if err := earning.Validate(); err != nil {
		return err
	}

	dto := earningFromDomain(earning)
	result := r.db.WithContext(ctx).
		Model(&EarningDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "PaidAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetEarningByOrderAndRider retrieves the earning recorded for an order and
// rider pair, or nil when none was recorded yet.
func (r *GormDeliveryRepository) GetEarningByOrderAndRider(
	ctx context.Context,
	orderID, riderID kernel.UUID,
) (*delivery.RiderEarning, error) {
	var dto EarningDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND rider_id = ?", orderID.Bytes(), riderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return earningToDomain(dto)
}

// GetPendingEarnings retrieves all earnings awaiting payout, oldest first.
func (r *GormDeliveryRepository) GetPendingEarnings(ctx context.Context) ([]*delivery.RiderEarning, error) {
	var dtos []EarningDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(delivery.EarningPending)).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	earnings := make([]*delivery.RiderEarning, 0, len(dtos))
	for _, dto := range dtos {
		earning, domErr := earningToDomain(dto)
		if domErr != nil {
			return nil, domErr
		}
		earnings = append(earnings, earning)
	}

	return earnings, nil
}

// AddRating persists a rider rating. The unique index on (order, rider)
// rejects a duplicate at the database even under a race.
func (r *GormDeliveryRepository) AddRating(ctx context.Context, rating *delivery.RiderRating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	dto := ratingFromDomain(rating)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// RatingExists reports whether the order's rider was already rated.
func (r *GormDeliveryRepository) RatingExists(ctx context.Context, orderID, riderID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RatingDTO{}).
		Where("order_id = ? AND rider_id = ?", orderID.Bytes(), riderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
