// Package deliveryrepo persists delivery attempts, rider earnings and rider
// ratings. Attempts are append-only history; earnings and ratings are keyed
// uniquely per order and rider.
package deliveryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents a delivery attempt row.
type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	RiderID     uuid.UUID `gorm:"type:uuid;index"`
	SubStatus   int
	AssignedAt  time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	FailedAt    *time.Time
}

// TableName specifies the database table name for delivery attempts.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// EarningDTO represents a rider earning row.
type EarningDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	RiderID           uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_earnings_order_rider"`
	OrderID           uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_earnings_order_rider"`
	BaseFeeCents      int64
	DistanceFeeCents  int64
	TipAmountCents    int64
	TotalEarningCents int64
	Status            int `gorm:"index"`
	CreatedAt         time.Time
	PaidAt            *time.Time
}

// TableName specifies the database table name for rider earnings.
func (EarningDTO) TableName() string {
	return "rider_earnings"
}

// RatingDTO represents a rider rating row. The unique index makes a second
// rating for the same order and rider fail at the database.
type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_rider"`
	RiderID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_rider"`
	SellerID  uuid.UUID `gorm:"type:uuid;index"`
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// TableName specifies the database table name for rider ratings.
func (RatingDTO) TableName() string {
	return "rider_ratings"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		RiderID:     aggregate.RiderID().Bytes(),
		SubStatus:   int(aggregate.SubStatus()),
		AssignedAt:  aggregate.AssignedAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		InTransitAt: aggregate.InTransitAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		FailedAt:    aggregate.FailedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID, riderID,
		delivery.SubStatus(dto.SubStatus),
		dto.AssignedAt, dto.PickedUpAt, dto.InTransitAt, dto.DeliveredAt, dto.FailedAt,
	)
}

func earningFromDomain(earning *delivery.RiderEarning) EarningDTO {
	return EarningDTO{
		ID:                earning.ID().Bytes(),
		RiderID:           earning.RiderID().Bytes(),
		OrderID:           earning.OrderID().Bytes(),
		BaseFeeCents:      earning.BaseFee().Cents(),
		DistanceFeeCents:  earning.DistanceFee().Cents(),
		TipAmountCents:    earning.TipAmount().Cents(),
		TotalEarningCents: earning.TotalEarning().Cents(),
		Status:            int(earning.Status()),
		CreatedAt:         earning.CreatedAt(),
		PaidAt:            earning.PaidAt(),
	}
}

func earningToDomain(dto EarningDTO) (*delivery.RiderEarning, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	baseFee, err := kernel.MoneyFromCents(dto.BaseFeeCents)
	if err != nil {
		return nil, err
	}
	distanceFee, err := kernel.MoneyFromCents(dto.DistanceFeeCents)
	if err != nil {
		return nil, err
	}
	tipAmount, err := kernel.MoneyFromCents(dto.TipAmountCents)
	if err != nil {
		return nil, err
	}
	totalEarning, err := kernel.MoneyFromCents(dto.TotalEarningCents)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreRiderEarning(
		id, riderID, orderID,
		baseFee, distanceFee, tipAmount, totalEarning,
		delivery.EarningStatus(dto.Status),
		dto.CreatedAt, dto.PaidAt,
	)
}

func ratingFromDomain(rating *delivery.RiderRating) RatingDTO {
	return RatingDTO{
		ID:        rating.ID().Bytes(),
		OrderID:   rating.OrderID().Bytes(),
		RiderID:   rating.RiderID().Bytes(),
		SellerID:  rating.SellerID().Bytes(),
		Rating:    rating.Rating(),
		Comment:   rating.Comment(),
		CreatedAt: rating.CreatedAt(),
	}
}
