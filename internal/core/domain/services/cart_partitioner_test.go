package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, sellerID kernel.UUID, stock int) *product.Product {
	t.Helper()

	price, err := kernel.MoneyFromCents(999)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), sellerID, kernel.NewUUID(), price, stock)
	require.NoError(t, err)
	return p
}

func TestCartPartitioner_Partition(t *testing.T) {
	partitioner := services.NewCartPartitioner()

	t.Run("groups entries by seller", func(t *testing.T) {
		sellerA := kernel.NewUUID()
		sellerB := kernel.NewUUID()
		productA1 := newProduct(t, sellerA, 10)
		productA2 := newProduct(t, sellerA, 10)
		productB1 := newProduct(t, sellerB, 10)

		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, c.Add(productA1.ID(), 1))
		require.NoError(t, c.Add(productA2.ID(), 2))
		require.NoError(t, c.Add(productB1.ID(), 3))

		partitions, err := partitioner.Partition(c, []*product.Product{productA1, productA2, productB1})
		require.NoError(t, err)
		require.Len(t, partitions, 2)

		bySeller := map[kernel.UUID]services.Partition{}
		for _, p := range partitions {
			bySeller[p.SellerID] = p
		}
		assert.Len(t, bySeller[sellerA].Lines, 2)
		assert.Len(t, bySeller[sellerB].Lines, 1)
		assert.Equal(t, 3, bySeller[sellerB].Lines[0].Quantity)
	})

	t.Run("single seller yields one partition", func(t *testing.T) {
		seller := kernel.NewUUID()
		p := newProduct(t, seller, 5)

		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, c.Add(p.ID(), 1))

		partitions, err := partitioner.Partition(c, []*product.Product{p})
		require.NoError(t, err)
		require.Len(t, partitions, 1)
		assert.True(t, partitions[0].SellerID.IsEqual(seller))
	})

	t.Run("skips entries whose product was not loaded", func(t *testing.T) {
		seller := kernel.NewUUID()
		known := newProduct(t, seller, 5)

		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, c.Add(known.ID(), 1))
		require.NoError(t, c.Add(kernel.NewUUID(), 4))

		partitions, err := partitioner.Partition(c, []*product.Product{known})
		require.NoError(t, err)
		require.Len(t, partitions, 1)
		assert.Len(t, partitions[0].Lines, 1)
	})

	t.Run("empty cart yields no partitions", func(t *testing.T) {
		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)

		partitions, err := partitioner.Partition(c, nil)
		require.NoError(t, err)
		assert.Empty(t, partitions)
	})

	t.Run("ordering is deterministic", func(t *testing.T) {
		sellerA := kernel.NewUUID()
		sellerB := kernel.NewUUID()
		productA := newProduct(t, sellerA, 5)
		productB := newProduct(t, sellerB, 5)

		c, err := cart.NewCart(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, c.Add(productB.ID(), 1))
		require.NoError(t, c.Add(productA.ID(), 1))

		first, err := partitioner.Partition(c, []*product.Product{productA, productB})
		require.NoError(t, err)
		second, err := partitioner.Partition(c, []*product.Product{productB, productA})
		require.NoError(t, err)

		require.Len(t, first, 2)
		require.Len(t, second, 2)
		assert.True(t, first[0].SellerID.IsEqual(second[0].SellerID))
		assert.True(t, first[1].SellerID.IsEqual(second[1].SellerID))
	})
}
