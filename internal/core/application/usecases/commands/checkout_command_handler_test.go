package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), "9 Pier Street", order.PaymentCreditCard)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("missing address rejected", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), "", order.PaymentCreditCard)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CheckoutCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	})
}

func TestCheckoutCommandHandler_Handle_SingleSeller(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	prod := activeProduct(t, sellerID, 10)

	customerCart, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, customerCart.Add(prod.ID(), 2))

	cmd, err := commands.NewCheckoutCommand(customerID, "9 Pier Street", order.PaymentCashOnDelivery)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	loadUow := new(MockUoW)
	partitionUow := new(MockUoW)

	mock.InOrder(
		loadUow.On("Begin", ctx).Return(nil).Once(),
		loadUow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		loadUow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBatch", ctx, mock.Anything).Return([]*product.Product{prod}, nil).Once(),
		loadUow.On("Rollback", ctx).Return(nil).Once(),

		partitionUow.On("Begin", ctx).Return(nil).Once(),
		partitionUow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBatchForUpdate", ctx, mock.Anything).Return([]*product.Product{prod}, nil).Once(),
		partitionUow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		productRepo.On("Update", ctx, prod).Return(nil).Once(),
		partitionUow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("DeleteEntries", ctx, customerID, mock.Anything).Return(nil).Once(),
		partitionUow.On("Commit", ctx).Return(nil).Once(),
		partitionUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(loadUow).Once()
	factory.On("Create").Return(partitionUow).Once()

	handler := commands.NewCheckoutCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.CreatedOrderIDs, 1)
	assert.Empty(t, result.FailedPartitions)

	// Reservation was committed: stock left the ledger.
	assert.Equal(t, 8, prod.StockQuantity())
	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_InsufficientStockFailsPartition(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	prod := activeProduct(t, sellerID, 1)

	customerCart, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, customerCart.Add(prod.ID(), 5))

	cmd, err := commands.NewCheckoutCommand(customerID, "9 Pier Street", order.PaymentCashOnDelivery)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	loadUow := new(MockUoW)
	partitionUow := new(MockUoW)

	mock.InOrder(
		loadUow.On("Begin", ctx).Return(nil).Once(),
		loadUow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		loadUow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBatch", ctx, mock.Anything).Return([]*product.Product{prod}, nil).Once(),
		loadUow.On("Rollback", ctx).Return(nil).Once(),

		partitionUow.On("Begin", ctx).Return(nil).Once(),
		partitionUow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBatchForUpdate", ctx, mock.Anything).Return([]*product.Product{prod}, nil).Once(),
		partitionUow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(loadUow).Once()
	factory.On("Create").Return(partitionUow).Once()

	handler := commands.NewCheckoutCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.CreatedOrderIDs)
	require.Len(t, result.FailedPartitions, 1)
	assert.True(t, result.FailedPartitions[0].SellerID.IsEqual(sellerID))
	require.ErrorIs(t, result.FailedPartitions[0].Cause, product.ErrInsufficientStock)

	// The partition rolled back: nothing was committed.
	assert.Equal(t, 1, prod.StockQuantity())
	partitionUow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	emptyCart, err := cart.NewCart(customerID)
	require.NoError(t, err)

	cmd, err := commands.NewCheckoutCommand(customerID, "9 Pier Street", order.PaymentCashOnDelivery)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(emptyCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
}

func TestCheckoutCommandHandler_Handle_MultiSeller_MixedResult(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	// Partitions are processed in seller ID order; fix which seller goes first.
	sellerA, sellerB := kernel.NewUUID(), kernel.NewUUID()
	if sellerB.String() < sellerA.String() {
		sellerA, sellerB = sellerB, sellerA
	}

	prodA1 := activeProduct(t, sellerA, 1)
	prodA2 := activeProduct(t, sellerA, 4)
	prodB := activeProduct(t, sellerB, 3)

	customerCart, err := cart.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, customerCart.Add(prodA1.ID(), 1))
	require.NoError(t, customerCart.Add(prodA2.ID(), 1))
	require.NoError(t, customerCart.Add(prodB.ID(), 5))

	cmd, err := commands.NewCheckoutCommand(customerID, "9 Pier Street", order.PaymentCashOnDelivery)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	loadUow := new(MockUoW)
	uowA := new(MockUoW)
	uowB := new(MockUoW)

	mock.InOrder(
		loadUow.On("Begin", ctx).Return(nil).Once(),
		loadUow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once(),
		loadUow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBatch", ctx, mock.Anything).
			Return([]*product.Product{prodA1, prodA2, prodB}, nil).Once(),
		loadUow.On("Rollback", ctx).Return(nil).Once(),

		uowA.On("Begin", ctx).Return(nil).Once(),
		uowA.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBatchForUpdate", ctx, mock.Anything).
			Return([]*product.Product{prodA1, prodA2}, nil).Once(),
		uowA.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		productRepo.On("Update", ctx, prodA1).Return(nil).Once(),
		productRepo.On("Update", ctx, prodA2).Return(nil).Once(),
		uowA.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("DeleteEntries", ctx, customerID, mock.MatchedBy(func(ids []kernel.UUID) bool {
			return len(ids) == 2
		})).Return(nil).Once(),
		uowA.On("Commit", ctx).Return(nil).Once(),
		uowA.On("Rollback", ctx).Return(nil).Once(),

		uowB.On("Begin", ctx).Return(nil).Once(),
		uowB.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetBatchForUpdate", ctx, mock.Anything).
			Return([]*product.Product{prodB}, nil).Once(),
		uowB.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(loadUow).Once()
	factory.On("Create").Return(uowA).Once()
	factory.On("Create").Return(uowB).Once()

	handler := commands.NewCheckoutCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.CreatedOrderIDs, 1)
	require.Len(t, result.FailedPartitions, 1)
	assert.True(t, result.FailedPartitions[0].SellerID.IsEqual(sellerB))
	require.ErrorIs(t, result.FailedPartitions[0].Cause, product.ErrInsufficientStock)

	// Seller A's inventory committed; seller B's untouched.
	assert.Equal(t, 0, prodA1.StockQuantity())
	assert.Equal(t, 3, prodA2.StockQuantity())
	assert.Equal(t, 3, prodB.StockQuantity())
	uowB.AssertNotCalled(t, "Commit", mock.Anything)
	productRepo.AssertExpectations(t)
}
