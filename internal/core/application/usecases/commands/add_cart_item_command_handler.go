package commands

import (
	"context"

	"marketplace/internal/core/domain/model/product"
)

// AddCartItemCommandHandler handles the business logic for putting products
// into carts. Only purchasable products may enter a cart; the stock itself is
// not reserved until checkout.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition. Returns ErrProductUnavailable when the
// product is not active; quantities of repeated additions merge additively.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	cartRepo := uow.CartRepository()

	prod, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !prod.IsPurchasable() {
		return product.NewProductUnavailableError(prod.ID(), prod.Status())
	}

	cart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = cart.Add(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, cart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
