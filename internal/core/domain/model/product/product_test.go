package product_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int) *product.Product {
	t.Helper()

	price, err := kernel.MoneyFromCents(2500)
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), price, stock)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("with stock starts active", func(t *testing.T) {
		p := newTestProduct(t, 5)
		assert.Equal(t, product.StatusActive, p.Status())
		assert.Equal(t, 5, p.StockQuantity())
		assert.Equal(t, 5, p.Available())
	})

	t.Run("zero stock starts out_of_stock", func(t *testing.T) {
		p := newTestProduct(t, 0)
		assert.Equal(t, product.StatusOutOfStock, p.Status())
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		price, _ := kernel.MoneyFromCents(100)
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), price, -1)
		require.Error(t, err)
	})

	t.Run("unconstructed product fails validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("reduces available stock without touching quantity", func(t *testing.T) {
		p := newTestProduct(t, 5)

		res, err := p.Reserve(3)
		require.NoError(t, err)
		assert.True(t, res.IsHeld())
		assert.Equal(t, 3, res.Quantity())
		assert.Equal(t, 2, p.Available())
		assert.Equal(t, 5, p.StockQuantity())
	})

	t.Run("fails when request exceeds available", func(t *testing.T) {
		p := newTestProduct(t, 3)

		_, err := p.Reserve(5)
		require.ErrorIs(t, err, product.ErrInsufficientStock)

		var stockErr *product.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.True(t, stockErr.ProductID.IsEqual(p.ID()))
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 3, stockErr.Available)
	})

	t.Run("holds stack against available stock", func(t *testing.T) {
		p := newTestProduct(t, 4)

		_, err := p.Reserve(3)
		require.NoError(t, err)

		_, err = p.Reserve(2)
		require.ErrorIs(t, err, product.ErrInsufficientStock)

		_, err = p.Reserve(1)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Available())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 4)
		_, err := p.Reserve(0)
		require.Error(t, err)
	})
}

func TestProduct_CommitReservation(t *testing.T) {
	t.Run("finalizes the decrement", func(t *testing.T) {
		p := newTestProduct(t, 5)
		res, _ := p.Reserve(2)

		require.NoError(t, p.CommitReservation(res.ID()))
		assert.Equal(t, 3, p.StockQuantity())
		assert.Equal(t, 3, p.Available())
		assert.Equal(t, product.StatusActive, p.Status())
	})

	t.Run("idempotent on repeat calls", func(t *testing.T) {
		p := newTestProduct(t, 5)
		res, _ := p.Reserve(2)

		require.NoError(t, p.CommitReservation(res.ID()))
		require.NoError(t, p.CommitReservation(res.ID()))
		assert.Equal(t, 3, p.StockQuantity())
	})

	t.Run("flips status to out_of_stock at zero", func(t *testing.T) {
		p := newTestProduct(t, 2)
		res, _ := p.Reserve(2)

		require.NoError(t, p.CommitReservation(res.ID()))
		assert.Equal(t, 0, p.StockQuantity())
		assert.Equal(t, product.StatusOutOfStock, p.Status())
	})

	t.Run("unknown handle fails", func(t *testing.T) {
		p := newTestProduct(t, 2)
		err := p.CommitReservation(kernel.NewUUID())
		require.ErrorIs(t, err, product.ErrUnknownReservation)
	})

	t.Run("released handle fails", func(t *testing.T) {
		p := newTestProduct(t, 2)
		res, _ := p.Reserve(1)
		require.NoError(t, p.ReleaseReservation(res.ID()))

		err := p.CommitReservation(res.ID())
		require.ErrorIs(t, err, product.ErrUnknownReservation)
	})
}

func TestProduct_ReleaseReservation(t *testing.T) {
	t.Run("returns quantity to available stock", func(t *testing.T) {
		p := newTestProduct(t, 5)
		res, _ := p.Reserve(3)
		assert.Equal(t, 2, p.Available())

		require.NoError(t, p.ReleaseReservation(res.ID()))
		assert.Equal(t, 5, p.Available())
		assert.Equal(t, 5, p.StockQuantity())
	})

	t.Run("committed handle fails", func(t *testing.T) {
		p := newTestProduct(t, 5)
		res, _ := p.Reserve(3)
		require.NoError(t, p.CommitReservation(res.ID()))

		err := p.ReleaseReservation(res.ID())
		require.ErrorIs(t, err, product.ErrUnknownReservation)
	})

	t.Run("repeat release fails", func(t *testing.T) {
		p := newTestProduct(t, 5)
		res, _ := p.Reserve(3)
		require.NoError(t, p.ReleaseReservation(res.ID()))

		err := p.ReleaseReservation(res.ID())
		require.ErrorIs(t, err, product.ErrUnknownReservation)
	})
}

func TestProduct_Restock(t *testing.T) {
	t.Run("restores active from out_of_stock", func(t *testing.T) {
		p := newTestProduct(t, 1)
		res, _ := p.Reserve(1)
		require.NoError(t, p.CommitReservation(res.ID()))
		require.Equal(t, product.StatusOutOfStock, p.Status())

		require.NoError(t, p.Restock(1))
		assert.Equal(t, 1, p.StockQuantity())
		assert.Equal(t, product.StatusActive, p.Status())
	})

	t.Run("does not override manual deactivation", func(t *testing.T) {
		p := newTestProduct(t, 1)
		p.Deactivate()

		require.NoError(t, p.Restock(5))
		assert.Equal(t, product.StatusInactive, p.Status())
		assert.Equal(t, 6, p.StockQuantity())
	})
}

func TestProduct_ActivateDeactivate(t *testing.T) {
	p := newTestProduct(t, 3)

	p.Deactivate()
	assert.False(t, p.IsPurchasable())

	p.Activate()
	assert.True(t, p.IsPurchasable())

	// With no stock left, activation lands on out_of_stock.
	res, _ := p.Reserve(3)
	require.NoError(t, p.CommitReservation(res.ID()))
	p.Deactivate()
	p.Activate()
	assert.Equal(t, product.StatusOutOfStock, p.Status())
}

func TestProduct_HeldReservationForOrder(t *testing.T) {
	p := newTestProduct(t, 5)
	orderID := kernel.NewUUID()

	res, _ := p.Reserve(2)
	require.NoError(t, res.AttachOrder(orderID))

	found := p.HeldReservationForOrder(orderID)
	require.NotNil(t, found)
	assert.True(t, found.ID().IsEqual(res.ID()))

	require.NoError(t, p.CommitReservation(res.ID()))
	assert.Nil(t, p.HeldReservationForOrder(orderID))
}

func TestReservation_AttachOrder(t *testing.T) {
	p := newTestProduct(t, 5)
	res, _ := p.Reserve(2)

	require.NoError(t, p.CommitReservation(res.ID()))
	err := res.AttachOrder(kernel.NewUUID())
	require.ErrorIs(t, err, product.ErrUnknownReservation)
}

func TestRestoreProduct(t *testing.T) {
	price, _ := kernel.MoneyFromCents(999)
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()

	held, err := product.RestoreReservation(kernel.NewUUID(), &orderID, 2, product.ReservationHeld)
	require.NoError(t, err)
	committed, err := product.RestoreReservation(kernel.NewUUID(), nil, 1, product.ReservationCommitted)
	require.NoError(t, err)

	p, err := product.RestoreProduct(
		id, kernel.NewUUID(), kernel.NewUUID(), price, 10, product.StatusActive,
		[]*product.Reservation{held, committed},
	)
	require.NoError(t, err)

	assert.Equal(t, 8, p.Available())
	assert.Len(t, p.Reservations(), 2)
	require.NotNil(t, p.HeldReservationForOrder(orderID))
}

func TestRestoreProduct_HeldAboveStockRejected(t *testing.T) {
	price, _ := kernel.MoneyFromCents(999)

	first, err := product.RestoreReservation(kernel.NewUUID(), nil, 3, product.ReservationHeld)
	require.NoError(t, err)
	second, err := product.RestoreReservation(kernel.NewUUID(), nil, 2, product.ReservationHeld)
	require.NoError(t, err)

	_, err = product.RestoreProduct(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), price, 4, product.StatusActive,
		[]*product.Reservation{first, second},
	)
	require.ErrorIs(t, err, product.ErrHeldExceedsStock)

	// Released and committed holds no longer claim stock, so the same sum is
	// fine once one of them is retired.
	released, err := product.RestoreReservation(kernel.NewUUID(), nil, 2, product.ReservationReleased)
	require.NoError(t, err)

	p, err := product.RestoreProduct(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), price, 4, product.StatusActive,
		[]*product.Reservation{first, released},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Available())
}
