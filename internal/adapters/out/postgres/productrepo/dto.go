// Package productrepo provides data transfer objects and mapping functions
// for product persistence. The product aggregate owns its reservations, so
// the repository reads and writes both tables together.
package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Stock is the committed on-hand count; held reservations live
// in their own table and are subtracted at read time by the aggregate.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID      uuid.UUID `gorm:"type:uuid;index"`
	CategoryID    uuid.UUID `gorm:"type:uuid;index"`
	PriceCents    int64
	StockQuantity int
	Status        int
	Reservations  []ReservationDTO `gorm:"foreignKey:ProductID"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// ReservationDTO represents a stock hold row. Rows are never deleted; a
// terminal status keeps the hold visible for auditing.
type ReservationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID  `gorm:"type:uuid;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
	Status    int
}

// TableName specifies the database table name for reservation rows.
func (ReservationDTO) TableName() string {
	return "product_reservations"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	reservations := make([]ReservationDTO, 0, len(aggregate.Reservations()))
	for _, r := range aggregate.Reservations() {
		var orderID *uuid.UUID
		if id := r.OrderID(); id != nil {
			raw := id.Bytes()
			orderID = &raw
		}

		reservations = append(reservations, ReservationDTO{
			ID:        r.ID().Bytes(),
			ProductID: aggregate.ID().Bytes(),
			OrderID:   orderID,
			Quantity:  r.Quantity(),
			Status:    int(r.Status()),
		})
	}

	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		SellerID:      aggregate.SellerID().Bytes(),
		CategoryID:    aggregate.CategoryID().Bytes(),
		PriceCents:    aggregate.Price().Cents(),
		StockQuantity: aggregate.StockQuantity(),
		Status:        int(aggregate.Status()),
		Reservations:  reservations,
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.MoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	reservations := make([]*product.Reservation, 0, len(dto.Reservations))
	for _, r := range dto.Reservations {
		reservation, resErr := reservationToDomain(r)
		if resErr != nil {
			return nil, resErr
		}
		reservations = append(reservations, reservation)
	}

	return product.RestoreProduct(
		id, sellerID, categoryID, price,
		dto.StockQuantity, product.Status(dto.Status), reservations,
	)
}

func reservationToDomain(dto ReservationDTO) (*product.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return product.RestoreReservation(id, orderID, dto.Quantity, product.ReservationStatus(dto.Status))
}
