package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func activeActor(t *testing.T, role user.Role) user.Actor {
	t.Helper()

	actor, err := user.NewActor(kernel.NewUUID(), role, user.StatusActive)
	require.NoError(t, err)
	return actor
}

func activeProduct(t *testing.T, sellerID kernel.UUID, stock int) *product.Product {
	t.Helper()

	price, err := kernel.MoneyFromCents(1500)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), sellerID, kernel.NewUUID(), price, stock)
	require.NoError(t, err)
	return p
}

// pendingOrder builds an order owned by the given customer and seller.
func pendingOrder(t *testing.T, customerID, sellerID kernel.UUID) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromCents(1500)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, price)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, sellerID,
		"9 Pier Street", order.PaymentCashOnDelivery,
		[]order.Item{item}, time.Now(),
	)
	require.NoError(t, err)
	return o
}

// preparingOrder advances a pending order to preparing on behalf of its seller.
func preparingOrder(t *testing.T, customerID kernel.UUID, sellerActor user.Actor) *order.Order {
	t.Helper()

	o := pendingOrder(t, customerID, sellerActor.ID())
	now := time.Now()
	require.NoError(t, o.TransitionTo(order.StatusConfirmed, sellerActor, now))
	require.NoError(t, o.TransitionTo(order.StatusPreparing, sellerActor, now))
	return o
}

// deliveredOrder walks an order through the full successful lifecycle.
func deliveredOrder(t *testing.T, customerID kernel.UUID, sellerActor, riderActor user.Actor) *order.Order {
	t.Helper()

	o := preparingOrder(t, customerID, sellerActor)
	now := time.Now()
	require.NoError(t, o.AssignRider(riderActor.ID(), sellerActor, now))
	require.NoError(t, o.TransitionTo(order.StatusPickedUp, riderActor, now))
	require.NoError(t, o.TransitionTo(order.StatusOnTheWay, riderActor, now))
	require.NoError(t, o.TransitionTo(order.StatusDelivered, riderActor, now))
	return o
}
