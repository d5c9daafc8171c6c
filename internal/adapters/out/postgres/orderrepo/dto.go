// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order and its items are written together; items are
// immutable after the order is assembled.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;index"`
	SellerID         uuid.UUID  `gorm:"type:uuid;index"`
	RiderID          *uuid.UUID `gorm:"type:uuid;index"`
	ShippingAddress  string
	PaymentMethod    int
	PaymentStatus    int
	Status           int `gorm:"index"`
	TotalAmountCents int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeliveredAt      *time.Time
	Items            []ItemDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents an order line with its price snapshot.
type ItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;index"`
	Quantity        int
	PriceAtTimeCents int64
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:               item.ID().Bytes(),
			OrderID:          aggregate.ID().Bytes(),
			ProductID:        item.ProductID().Bytes(),
			Quantity:         item.Quantity(),
			PriceAtTimeCents: item.PriceAtTime().Cents(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		SellerID:         aggregate.SellerID().Bytes(),
		RiderID:          riderID,
		ShippingAddress:  aggregate.ShippingAddress(),
		PaymentMethod:    int(aggregate.PaymentMethod()),
		PaymentStatus:    int(aggregate.PaymentStatus()),
		Status:           int(aggregate.Status()),
		TotalAmountCents: aggregate.TotalAmount().Cents(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		Items:            items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	totalAmount, err := kernel.MoneyFromCents(dto.TotalAmountCents)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, sellerID, riderID,
		dto.ShippingAddress,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		order.Status(dto.Status),
		items, totalAmount,
		dto.CreatedAt, dto.UpdatedAt, dto.DeliveredAt,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.MoneyFromCents(dto.PriceAtTimeCents)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, productID, dto.Quantity, price)
}
