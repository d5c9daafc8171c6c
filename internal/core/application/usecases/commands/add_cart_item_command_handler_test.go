package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 3)
		require.NoError(t, err)
		assert.Equal(t, 3, cmd.Quantity())
		require.NoError(t, cmd.Validate())
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AddCartItemCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAddCartItemCommandIsNotConstructed)
	})
}

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	prod := activeProduct(t, kernel.NewUUID(), 10)
	customerCart, err := cart.NewCart(customerID)
	require.NoError(t, err)

	cmd, err := commands.NewAddCartItemCommand(customerID, prod.ID(), 2)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		productRepo.On("Get", ctx, prod.ID()).Return(prod, nil).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, customerCart.Entries(), 1)
	assert.Equal(t, 2, customerCart.Entries()[0].Quantity())
	uow.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ProductUnavailable(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	prod := activeProduct(t, kernel.NewUUID(), 10)
	prod.Deactivate()

	cmd, err := commands.NewAddCartItemCommand(customerID, prod.ID(), 1)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		productRepo.On("Get", ctx, prod.ID()).Return(prod, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, product.ErrProductUnavailable)
	cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockCartUoWFactory)
	handler := commands.NewAddCartItemCommandHandler(factory)

	err := handler.Handle(ctx, commands.AddCartItemCommand{})

	require.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateCartItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	customerCart, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, customerCart.Add(productID, 5))

	t.Run("sets quantity", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemCommand(customerID, productID, 2)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CartRepository").Return(cartRepo).Once(),
			cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
			cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewUpdateCartItemCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))
		assert.Equal(t, 2, customerCart.Entries()[0].Quantity())
	})

	t.Run("zero removes the entry", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemCommand(customerID, productID, 0)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CartRepository").Return(cartRepo).Once(),
			cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
			cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewUpdateCartItemCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))
		assert.True(t, customerCart.IsEmpty())
	})

	t.Run("missing entry fails", func(t *testing.T) {
		cmd, err := commands.NewUpdateCartItemCommand(customerID, kernel.NewUUID(), 1)
		require.NoError(t, err)

		cartRepo := new(MockCartRepository)
		uow := new(MockUoW)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("CartRepository").Return(cartRepo).Once(),
			cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockCartUoWFactory)
		factory.On("Create").Return(uow).Once()

		handler := commands.NewUpdateCartItemCommandHandler(factory)
		err = handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, cart.ErrEntryNotFound)
	})
}
