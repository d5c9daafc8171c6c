package services

import (
	"sort"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// Partition is the slice of one seller's cart entries, paired with the loaded
// products backing them. Each partition becomes one order candidate and is
// processed in its own transaction.
type Partition struct {
	SellerID kernel.UUID
	Lines    []PartitionLine
}

// PartitionLine is one cart entry resolved against its product.
type PartitionLine struct {
	Product  *product.Product
	Quantity int
}

// CartPartitioner splits a cart across the sellers of its products. A cart
// holding products of three sellers yields three partitions; the failure of
// one partition during checkout must not touch the others.
type CartPartitioner struct{}

// NewCartPartitioner creates a new CartPartitioner instance.
func NewCartPartitioner() CartPartitioner {
	return CartPartitioner{}
}

// Partition groups the cart's entries by the seller of each product. Entries
// whose product is missing from the products argument are skipped; the caller
// decides how to report them. Partitions are ordered by seller ID so the
// checkout processes them deterministically.
func (CartPartitioner) Partition(c *cart.Cart, products []*product.Product) ([]Partition, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		byID[p.ID()] = p
	}

	bySeller := make(map[kernel.UUID]*Partition)
	for _, entry := range c.Entries() {
		p, ok := byID[entry.ProductID()]
		if !ok {
			continue
		}

		sellerID := p.SellerID()
		partition, ok := bySeller[sellerID]
		if !ok {
			partition = &Partition{SellerID: sellerID}
			bySeller[sellerID] = partition
		}
		partition.Lines = append(partition.Lines, PartitionLine{
			Product:  p,
			Quantity: entry.Quantity(),
		})
	}

	partitions := make([]Partition, 0, len(bySeller))
	for _, partition := range bySeller {
		partitions = append(partitions, *partition)
	}
	sort.Slice(partitions, func(i, j int) bool {
		return partitions[i].SellerID.String() < partitions[j].SellerID.String()
	})
	return partitions, nil
}
