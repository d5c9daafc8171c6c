package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/adapters/out/postgres/sellerrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL instance, including the row-lock serialization that the
// inventory ledger depends on.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.ReservationDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&cartrepo.EntryDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.EarningDTO{},
		&deliveryrepo.RatingDTO{},
		&reviewrepo.ReviewDTO{},
		&sellerrepo.ApplicationDTO{},
		&userrepo.UserDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		cart_entries, order_items, orders,
		product_reservations, products,
		deliveries, rider_earnings, rider_ratings,
		reviews, seller_applications, users CASCADE`).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newProduct(stock int) *product.Product {
	price, err := kernel.MoneyFromCents(1200)
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), price, stock)
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) addProduct(p *product.Product) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	p := suite.newProduct(10)

	reservation, err := p.Reserve(2)
	suite.Require().NoError(err)

	price, err := kernel.MoneyFromCents(1200)
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), p.ID(), 2, price)
	suite.Require().NoError(err)
	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), p.SellerID(),
		"14 Harbour Road", order.PaymentCashOnDelivery,
		[]order.Item{item}, time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(reservation.AttachOrder(ord.ID()))
	suite.Require().NoError(p.CommitReservation(reservation.ID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	suite.Require().NoError(verify.Begin(ctx))
	defer func() { _ = verify.Rollback(ctx) }()

	storedProduct, err := verify.ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(8, storedProduct.StockQuantity())

	storedOrder, err := verify.OrderRepository().Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPending, storedOrder.Status())
	suite.Len(storedOrder.Items(), 1)
	suite.True(storedOrder.TotalAmount().IsEqual(ord.TotalAmount()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	p := suite.newProduct(5)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	suite.Require().NoError(verify.Begin(ctx))
	defer func() { _ = verify.Rollback(ctx) }()

	_, err := verify.ProductRepository().Get(ctx, p.ID())
	suite.Require().Error(err)
}

// Two checkouts race for the last unit in stock. The row lock taken by
// ProductRepository.Get serializes them, so exactly one reservation succeeds.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentReservation_LastUnitWinsOnce() {
	ctx := context.Background()
	p := suite.newProduct(1)
	suite.addProduct(p)

	var wg sync.WaitGroup
	results := make([]error, 2)

	for i := range 2 {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				results[slot] = err
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			repo := uow.ProductRepository()
			locked, err := repo.Get(ctx, p.ID())
			if err != nil {
				results[slot] = err
				return
			}

			reservation, err := locked.Reserve(1)
			if err != nil {
				results[slot] = err
				return
			}
			if err = locked.CommitReservation(reservation.ID()); err != nil {
				results[slot] = err
				return
			}
			if err = repo.Update(ctx, locked); err != nil {
				results[slot] = err
				return
			}

			results[slot] = uow.Commit(ctx)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	failed := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			suite.Require().ErrorIs(err, product.ErrInsufficientStock)
			failed++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, failed)

	verify := suite.factory.Create()
	suite.Require().NoError(verify.Begin(ctx))
	defer func() { _ = verify.Rollback(ctx) }()

	stored, err := verify.ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(0, stored.StockQuantity())
	suite.Equal(product.StatusOutOfStock, stored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReservationRoundTrip_SurvivesRestore() {
	ctx := context.Background()
	p := suite.newProduct(10)

	reservation, err := p.Reserve(3)
	suite.Require().NoError(err)
	suite.addProduct(p)

	verify := suite.factory.Create()
	suite.Require().NoError(verify.Begin(ctx))
	defer func() { _ = verify.Rollback(ctx) }()

	stored, err := verify.ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(10, stored.StockQuantity())
	suite.Equal(7, stored.Available())
	suite.Require().Len(stored.Reservations(), 1)
	suite.Equal(reservation.ID(), stored.Reservations()[0].ID())
	suite.True(stored.Reservations()[0].IsHeld())
}

// An order item carries the unit price captured at checkout. Repricing the
// product afterwards must not leak into already persisted orders.
func (suite *UnitOfWorkIntegrationTestSuite) TestRepriceProduct_LeavesOrderSnapshotUntouched() {
	ctx := context.Background()
	p := suite.newProduct(10)

	reservation, err := p.Reserve(2)
	suite.Require().NoError(err)

	checkoutPrice := p.Price()
	item, err := order.NewItem(kernel.NewUUID(), p.ID(), 2, checkoutPrice)
	suite.Require().NoError(err)
	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), p.SellerID(),
		"3 Quay Street", order.PaymentCashOnDelivery,
		[]order.Item{item}, time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(reservation.AttachOrder(ord.ID()))
	suite.Require().NoError(p.CommitReservation(reservation.ID()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))
	suite.Require().NoError(uow.Commit(ctx))

	newPrice, err := kernel.MoneyFromCents(9900)
	suite.Require().NoError(err)

	reprice := suite.factory.Create()
	suite.Require().NoError(reprice.Begin(ctx))
	locked, err := reprice.ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	repriced, err := product.RestoreProduct(
		locked.ID(), locked.SellerID(), locked.CategoryID(),
		newPrice, locked.StockQuantity(), locked.Status(), locked.Reservations(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(reprice.ProductRepository().Update(ctx, repriced))
	suite.Require().NoError(reprice.Commit(ctx))

	verify := suite.factory.Create()
	suite.Require().NoError(verify.Begin(ctx))
	defer func() { _ = verify.Rollback(ctx) }()

	storedProduct, err := verify.ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(storedProduct.Price().IsEqual(newPrice))

	storedOrder, err := verify.OrderRepository().Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Require().Len(storedOrder.Items(), 1)
	suite.True(storedOrder.Items()[0].PriceAtTime().IsEqual(checkoutPrice))
	suite.True(storedOrder.TotalAmount().IsEqual(ord.TotalAmount()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
