package commands_test

import (
	"context"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetBatchForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteEntries(ctx context.Context, customerID kernel.UUID, productIDs []kernel.UUID) error {
	args := m.Called(ctx, customerID, productIDs)
	return args.Error(0)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) AddEarning(ctx context.Context, e *delivery.RiderEarning) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateEarning(ctx context.Context, e *delivery.RiderEarning) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockDeliveryRepository) GetEarningByOrderAndRider(
	ctx context.Context,
	orderID, riderID kernel.UUID,
) (*delivery.RiderEarning, error) {
	args := m.Called(ctx, orderID, riderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.RiderEarning), args.Error(1)
}

func (m *MockDeliveryRepository) GetPendingEarnings(ctx context.Context) ([]*delivery.RiderEarning, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.RiderEarning), args.Error(1)
}

func (m *MockDeliveryRepository) AddRating(ctx context.Context, r *delivery.RiderRating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRepository) RatingExists(ctx context.Context, orderID, riderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, riderID)
	return args.Bool(0), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsFor(
	ctx context.Context,
	userID, productID, orderItemID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, userID, productID, orderItemID)
	return args.Bool(0), args.Error(1)
}

type MockSellerApplicationRepository struct{ mock.Mock }

func (m *MockSellerApplicationRepository) Add(ctx context.Context, a *seller.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockSellerApplicationRepository) Update(ctx context.Context, a *seller.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockSellerApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seller.Application), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (user.Actor, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.Actor), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id kernel.UUID, role user.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

// MockUoW satisfies every per-handler unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

func (m *MockUoW) SellerApplicationRepository() ports.SellerApplicationRepository {
	args := m.Called()
	return args.Get(0).(ports.SellerApplicationRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}

type MockApplicationUoWFactory struct{ mock.Mock }

func (m *MockApplicationUoWFactory) Create() commands.ApplicationUoW {
	args := m.Called()
	return args.Get(0).(commands.ApplicationUoW)
}

type MockPayoutUoWFactory struct{ mock.Mock }

func (m *MockPayoutUoWFactory) Create() commands.PayoutUoW {
	args := m.Called()
	return args.Get(0).(commands.PayoutUoW)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Record(ctx context.Context, r ports.AuditRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
