// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// SellerApplicationRepoFactory provides access to the seller application
	// repository within a transaction.
	SellerApplicationRepoFactory interface {
		SellerApplicationRepository() ports.SellerApplicationRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CartUoW manages transactions for cart mutations, which also read the
	// product catalog to check availability.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the transaction of one seller partition: locking
	// products, creating the order, and clearing the cart entries.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates a fresh unit of work per seller partition,
	// keeping partition transactions independent.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order transitions. Cancellation also
	// writes to the product ledger to give stock back.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignmentUoW manages transactions for rider assignment, spanning the
	// order, the delivery record, and the rider's account.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		UserRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// DeliveryUoW manages transactions for delivery progress updates, which
	// mirror into the order and may record an earning.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ReviewUoW manages transactions for review creation, which checks the
	// referenced order before writing.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// RatingUoW manages transactions for rider ratings.
	RatingUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}

	// ApplicationUoW manages transactions for seller application review,
	// which may promote the applicant's account.
	ApplicationUoW interface {
		TxManager
		SellerApplicationRepoFactory
		UserRepoFactory
	}

	// ApplicationUoWFactory creates new application unit of work instances.
	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// PayoutUoW manages transactions for earnings payout.
	PayoutUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// PayoutUoWFactory creates new payout unit of work instances.
	PayoutUoWFactory interface {
		Create() PayoutUoW
	}
)
