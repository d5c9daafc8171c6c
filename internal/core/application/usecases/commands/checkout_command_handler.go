package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/services"
)

// CheckoutResult reports the mixed outcome of a multi-seller checkout.
// Partitions succeed or fail independently: a sold-out product of one seller
// never blocks the orders of the others.
type CheckoutResult struct {
	CreatedOrderIDs  []kernel.UUID
	FailedPartitions []FailedPartition
}

// FailedPartition names a seller whose partition was rolled back and why.
type FailedPartition struct {
	SellerID kernel.UUID
	Cause    error
}

// CheckoutCommandHandler turns a cart into per-seller orders. Each seller
// partition runs in its own transaction: products are locked and reserved,
// the order is created with price snapshots, the reservations are committed,
// and the partition's cart entries are cleared. Any failure rolls back only
// that partition.
type CheckoutCommandHandler struct {
	uowFactory  CheckoutUoWFactory
	partitioner services.CartPartitioner
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// The factory is invoked once per seller partition.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:  uowFactory,
		partitioner: services.NewCartPartitioner(),
	}
}

// Handle processes the checkout. The returned result lists created orders
// and failed partitions; the error is non-nil only for failures outside the
// partitions themselves, such as an empty cart or a broken connection.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	partitions, err := h.loadPartitions(ctx, cmd.CustomerID())
	if err != nil {
		return CheckoutResult{}, err
	}

	var result CheckoutResult
	for _, partition := range partitions {
		orderID, err := h.checkoutPartition(ctx, cmd, partition)
		if err != nil {
			result.FailedPartitions = append(result.FailedPartitions, FailedPartition{
				SellerID: partition.SellerID,
				Cause:    err,
			})
			continue
		}
		result.CreatedOrderIDs = append(result.CreatedOrderIDs, orderID)
	}

	return result, nil
}

// loadPartitions reads the cart and splits it by seller in a short read-only
// transaction. Stock is not checked here; the per-partition transaction
// re-reads each product under a row lock.
func (h CheckoutCommandHandler) loadPartitions(
	ctx context.Context,
	customerID kernel.UUID,
) ([]services.Partition, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cart, err := uow.CartRepository().GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	productIDs := make([]kernel.UUID, 0, len(cart.Entries()))
	for _, entry := range cart.Entries() {
		productIDs = append(productIDs, entry.ProductID())
	}

	products, err := uow.ProductRepository().GetBatch(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	return h.partitioner.Partition(cart, products)
}

// checkoutPartition runs one seller partition to completion inside its own
// transaction and returns the created order's ID.
func (h CheckoutCommandHandler) checkoutPartition(
	ctx context.Context,
	cmd CheckoutCommand,
	partition services.Partition,
) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	productIDs := make([]kernel.UUID, 0, len(partition.Lines))
	quantities := make(map[kernel.UUID]int, len(partition.Lines))
	for _, line := range partition.Lines {
		productIDs = append(productIDs, line.Product.ID())
		quantities[line.Product.ID()] = line.Quantity
	}

	// Fresh state under row locks; the partitioning snapshot may be stale.
	locked, err := productRepo.GetBatchForUpdate(ctx, productIDs)
	if err != nil {
		return kernel.UUID{}, err
	}

	type reserved struct {
		prod *product.Product
		res  *product.Reservation
	}
	reservations := make([]reserved, 0, len(locked))
	items := make([]order.Item, 0, len(locked))

	for _, prod := range locked {
		if !prod.IsPurchasable() {
			return kernel.UUID{}, product.NewProductUnavailableError(prod.ID(), prod.Status())
		}

		quantity := quantities[prod.ID()]
		res, err := prod.Reserve(quantity)
		if err != nil {
			return kernel.UUID{}, err
		}
		reservations = append(reservations, reserved{prod: prod, res: res})

		item, err := order.NewItem(kernel.NewUUID(), prod.ID(), quantity, prod.Price())
		if err != nil {
			return kernel.UUID{}, err
		}
		items = append(items, item)
	}

	ord, err := order.NewOrder(
		kernel.NewUUID(), cmd.CustomerID(), partition.SellerID,
		cmd.ShippingAddress(), cmd.PaymentMethod(), items, time.Now(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	for _, r := range reservations {
		if err = r.res.AttachOrder(ord.ID()); err != nil {
			return kernel.UUID{}, err
		}
		if err = r.prod.CommitReservation(r.res.ID()); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return kernel.UUID{}, err
	}
	for _, r := range reservations {
		if err = productRepo.Update(ctx, r.prod); err != nil {
			return kernel.UUID{}, err
		}
	}
	if err = uow.CartRepository().DeleteEntries(ctx, cmd.CustomerID(), productIDs); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return ord.ID(), nil
}
