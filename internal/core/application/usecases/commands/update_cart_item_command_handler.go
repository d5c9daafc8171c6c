package commands

import (
	"context"
)

// UpdateCartItemCommandHandler handles quantity changes of cart entries.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for cart entry updates.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change. Setting quantity to zero removes the
// entry; changing a product not in the cart fails with ErrEntryNotFound.
func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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

	cartRepo := uow.CartRepository()

	cart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = cart.SetQuantity(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, cart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
