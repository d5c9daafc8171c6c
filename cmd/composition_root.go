package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/out/auditlog"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	publisher      *kafka.NotificationPublisher
	auditLog       *auditlog.SlogAuditLog
	earningsPolicy services.EarningsPolicy
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	earningsPolicy services.EarningsPolicy,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:      kafka.NewNotificationPublisher(configs.KafkaBrokers, configs.KafkaNotificationsTopic),
		auditLog:       auditlog.NewSlogAuditLog(logger),
		earningsPolicy: earningsPolicy,
	}
}

// Close releases resources held by the outbound adapters.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.auditLog, c.publisher)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f, c.auditLog, c.publisher)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryCommandHandler(f, c.earningsPolicy, c.auditLog, c.publisher)
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateRateRiderCommandHandler() commands.RateRiderCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewSellerApplicationCommandHandler() commands.ReviewSellerApplicationCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewSellerApplicationCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateProcessPayoutsCommandHandler() commands.ProcessPayoutsCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPayoutsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerOrdersQueryHandler() queries.GetSellerOrdersQueryHandler {
	return queries.NewGetSellerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderEarningsQueryHandler() queries.GetRiderEarningsQueryHandler {
	return queries.NewGetRiderEarningsQueryHandler(c.gormDB)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncPayoutUoWFactory func() commands.PayoutUoW

func (f FuncPayoutUoWFactory) Create() commands.PayoutUoW {
	return f()
}
