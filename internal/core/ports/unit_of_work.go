package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command. This ensures proper isolation between concurrent operations;
// checkout creates one unit of work per seller partition.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the current
// transaction. Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ProductRepository returns a ProductRepository bound to the current
	// transaction.
	ProductRepository() ProductRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// CartRepository returns a CartRepository bound to the current
	// transaction.
	CartRepository() CartRepository

	// DeliveryRepository returns a DeliveryRepository bound to the current
	// transaction.
	DeliveryRepository() DeliveryRepository

	// ReviewRepository returns a ReviewRepository bound to the current
	// transaction.
	ReviewRepository() ReviewRepository

	// SellerApplicationRepository returns a SellerApplicationRepository
	// bound to the current transaction.
	SellerApplicationRepository() SellerApplicationRepository

	// UserRepository returns a UserRepository bound to the current
	// transaction.
	UserRepository() UserRepository
}
