package cmd

import (
	"context"
	"fmt"
	"time"

	httpin "gestion/internal/adapters/in/http"
	"gestion/internal/adapters/out/mail"
	"gestion/internal/adapters/out/minio"
	"gestion/internal/adapters/out/postgres"
	"gestion/internal/adapters/out/postgres/outboxrepo"
	"gestion/internal/adapters/out/postgres/rolerepo"
	"gestion/internal/adapters/out/redis"
	"gestion/internal/adapters/out/webpush"
	"gestion/internal/core/application/authz"
	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/services"
	"gestion/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	redis      *goredis.Client
	blobs      *minio.BlobStorage
	mailer     *mail.Mailer
	pusher     *webpush.Pusher
	calculator services.FreightCalculator
	composer   services.NotificationComposer
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	blobs, err := minio.NewBlobStorage(cfg.Minio())
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
		redis:      redis.NewClient(cfg.Redis()),
		blobs:      blobs,
		mailer:     mail.NewMailer(cfg.Mail()),
		pusher:     webpush.NewPusher(cfg.WebPush()),
		calculator: services.NewFreightCalculator(),
		composer:   services.NewNotificationComposer(cfg.AppBaseURL),
	}, nil
}

// Prepare checks the external stores the server depends on.
func (c *CompositionRoot) Prepare(ctx context.Context) error {
	if err := c.redis.Ping(ctx).Err(); err != nil {
		// The permission cache is optional; the resolver falls back to the database.
		c.logger.Warn("redis is unreachable", zap.String("addr", c.cfg.RedisAddr), zap.Error(err))
	}
	if err := c.blobs.EnsureBucket(ctx); err != nil {
		return err
	}
	c.logger.Info("notification channels",
		zap.Bool("email", c.mailer.Enabled()),
		zap.Bool("push", c.pusher.Enabled()),
	)
	return nil
}

func (c *CompositionRoot) Close() {
	if err := c.redis.Close(); err != nil {
		c.logger.Warn("failed to close redis client", zap.Error(err))
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.composer, c.logger)
}

func (c *CompositionRoot) CreateAddOrderLineItemCommandHandler() commands.AddOrderLineItemCommandHandler {
	return commands.NewAddOrderLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderLineItemCommandHandler() commands.RemoveOrderLineItemCommandHandler {
	return commands.NewRemoveOrderLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCommitFreightCommandHandler() commands.CommitFreightCommandHandler {
	return commands.NewCommitFreightCommandHandler(c.orderUoWFactory(), c.calculator)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.blobs, c.logger)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.orderUoWFactory(), c.composer)
}

func (c *CompositionRoot) CreateDeletePaymentCommandHandler() commands.DeletePaymentCommandHandler {
	return commands.NewDeletePaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAttachmentCommandHandler() commands.AttachmentCommandHandler {
	return commands.NewAttachmentCommandHandler(c.orderUoWFactory(), c.blobs, c.logger)
}

func (c *CompositionRoot) CreateCreatePartyCommandHandler() commands.CreatePartyCommandHandler {
	var f commands.PartyUoWFactory = FuncPartyUoWFactory(func() commands.PartyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartyCommandHandler(f)
}

func (c *CompositionRoot) CreatePartyLifecycleCommandHandler() commands.PartyLifecycleCommandHandler {
	var f commands.PartyUoWFactory = FuncPartyUoWFactory(func() commands.PartyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPartyLifecycleCommandHandler(f)
}

func (c *CompositionRoot) CreateProductCommandHandler() commands.ProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProductCommandHandler(f, c.composer)
}

func (c *CompositionRoot) CreateNotificationCommandHandler() commands.NotificationCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotificationCommandHandler(f, c.mailer, c.pusher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderViewQueryHandler() queries.GetOrderViewQueryHandler {
	return queries.NewGetOrderViewQueryHandler(c.gormDB, c.blobs)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFreightQueryHandler() queries.GetFreightQueryHandler {
	return queries.NewGetFreightQueryHandler(c.gormDB, c.calculator)
}

func (c *CompositionRoot) CreateListOrderPaymentsQueryHandler() queries.ListOrderPaymentsQueryHandler {
	return queries.NewListOrderPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPartiesQueryHandler() queries.ListPartiesQueryHandler {
	return queries.NewListPartiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAttachmentsQueryHandler() queries.ListAttachmentsQueryHandler {
	return queries.NewListAttachmentsQueryHandler(c.gormDB, c.blobs)
}

func (c *CompositionRoot) CreateResolver() *authz.Resolver {
	return authz.NewResolver(
		rolerepo.NewGormRoleRepository(c.gormDB),
		redis.NewPermissionCache(c.redis),
		c.cfg.Collaborators(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		ChangeStatus:   c.CreateChangeOrderStatusCommandHandler(),
		AddLineItem:    c.CreateAddOrderLineItemCommandHandler(),
		RemoveLineItem: c.CreateRemoveOrderLineItemCommandHandler(),
		CommitFreight:  c.CreateCommitFreightCommandHandler(),
		DeleteOrder:    c.CreateDeleteOrderCommandHandler(),
		RecordPayment:  c.CreateRecordPaymentCommandHandler(),
		DeletePayment:  c.CreateDeletePaymentCommandHandler(),
		CreateParty:    c.CreateCreatePartyCommandHandler(),
		PartyLifecycle: c.CreatePartyLifecycleCommandHandler(),
		Products:       c.CreateProductCommandHandler(),
		Attachments:    c.CreateAttachmentCommandHandler(),
		Notifications:  c.CreateNotificationCommandHandler(),

		GetOrderView:      c.CreateGetOrderViewQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		ExportOrders:      c.CreateExportOrdersQueryHandler(),
		GetFreight:        c.CreateGetFreightQueryHandler(),
		ListOrderPayments: c.CreateListOrderPaymentsQueryHandler(),
		ListParties:       c.CreateListPartiesQueryHandler(),
		ListProducts:      c.CreateListProductsQueryHandler(),
		ListAttachments:   c.CreateListAttachmentsQueryHandler(),
	}, c.blobs)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateServer(), httpin.RouterConfig{
		JWTSecret: []byte(c.cfg.JWTSecret),
		Resolver:  c.CreateResolver(),
		LogLevel:  c.cfg.LogLevel,
	}, c.logger)
}

// CreateJobManager wires the background jobs. The outbox listener uses its own
// lib/pq connection, separate from the gorm pool.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	logger := c.logger.With(zap.String("component", "outbox_listener"))
	listener := pq.NewListener(c.cfg.Database().DSN(), 10*time.Second, time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				logger.Warn("listener event", zap.Int("event", int(ev)), zap.Error(err))
			}
		})
	if err := listener.Listen(outboxrepo.Channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("listen %s: %w", outboxrepo.Channel, err)
	}

	notifications := c.CreateNotificationCommandHandler()
	products := c.CreateProductCommandHandler()
	return jobs.NewJobManager(&notifications, listener, &products, c.logger), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPartyUoWFactory func() commands.PartyUoW

func (f FuncPartyUoWFactory) Create() commands.PartyUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
