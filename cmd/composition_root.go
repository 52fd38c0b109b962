package cmd

import (
	"log/slog"

	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/credentials"
	"orderdesk/internal/adapters/out/kafka"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/userrepo"
	"orderdesk/internal/core/application/auth"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/authtoken"
	"orderdesk/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tokens     *authtoken.Service
	hasher     *credentials.BcryptHasher
	policy     services.AccessPolicy
	metrics    *metrics.Registry
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := authtoken.NewService(config.TokenSecret)
	if err != nil {
		return CompositionRoot{}, err
	}
	hasher, err := credentials.NewBcryptHasher(config.BcryptCost)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, ports.SystemClock{}),
		tokens:     tokens,
		hasher:     hasher,
		policy:     services.NewAccessPolicy(),
		metrics:    metrics.NewRegistry(),
		logger:     auth.ResolveLogger(logger),
	}, nil
}

func (c *CompositionRoot) tokenTTLs() commands.TokenTTLs {
	return commands.TokenTTLs{Access: c.config.AccessTokenTTL, Refresh: c.config.RefreshTokenTTL}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	return commands.NewFinalizeOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() (commands.LoginCommandHandler, error) {
	return commands.NewLoginCommandHandler(userrepo.NewGormUserRepository(c.gormDB), c.hasher, c.tokens, c.tokenTTLs())
}

func (c *CompositionRoot) CreateRefreshTokenCommandHandler() commands.RefreshTokenCommandHandler {
	return commands.NewRefreshTokenCommandHandler(c.tokens, c.tokenTTLs())
}

func (c *CompositionRoot) CreatePublishOrderEventsCommandHandler(publisher ports.EventPublisher) commands.PublishOrderEventsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOrderEventsCommandHandler(f, publisher, ports.SystemClock{}, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil), c.policy)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil), c.policy)
}

func (c *CompositionRoot) CreateListAllOrdersQueryHandler() queries.ListAllOrdersQueryHandler {
	return queries.NewListAllOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil), c.policy)
}

func (c *CompositionRoot) CreateAccessGuard() (*auth.AccessGuard, error) {
	return auth.NewAccessGuard(c.tokens, userrepo.NewGormUserRepository(c.gormDB), c.metrics, c.logger)
}

// CreateRouter wires every handler into the echo instance.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	guard, err := c.CreateAccessGuard()
	if err != nil {
		return nil, err
	}

	createOrder := c.CreateCreateOrderCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	finalizeOrder := c.CreateFinalizeOrderCommandHandler()
	addOrderItem := c.CreateAddOrderItemCommandHandler()
	removeOrderItem := c.CreateRemoveOrderItemCommandHandler()
	registerUser := c.CreateRegisterUserCommandHandler()
	login, err := c.CreateLoginCommandHandler()
	if err != nil {
		return nil, err
	}
	refreshToken := c.CreateRefreshTokenCommandHandler()

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:     &createOrder,
		CancelOrder:     &cancelOrder,
		FinalizeOrder:   &finalizeOrder,
		AddOrderItem:    &addOrderItem,
		RemoveOrderItem: &removeOrderItem,
		RegisterUser:    &registerUser,
		Login:           &login,
		RefreshToken:    &refreshToken,
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListUserOrders:  c.CreateListUserOrdersQueryHandler(),
		ListAllOrders:   c.CreateListAllOrdersQueryHandler(),
	}, c.metrics, c.logger)

	return httpin.NewRouter(server, guard, c.metrics, c.logger), nil
}

// CreateOutboxRelay returns the relay job and the publisher it writes to.
// The caller closes the publisher after stopping the job.
func (c *CompositionRoot) CreateOutboxRelay() (*jobs.OutboxRelayJob, *kafka.Publisher) {
	publisher := kafka.NewPublisher(c.config.KafkaHost, c.config.KafkaOrderChangedTopic)
	handler := c.CreatePublishOrderEventsCommandHandler(publisher)
	return jobs.NewOutboxRelayJob(&handler, c.config.OutboxRelaySchedule, c.config.OutboxBatchSize, c.logger), publisher
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
