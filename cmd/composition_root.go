package cmd

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"freightflow/internal/adapters/out/gateway"
	"freightflow/internal/adapters/out/postgres"
	"freightflow/internal/adapters/out/redisseq"
	"freightflow/internal/core/application/notifier"
	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/services"
	"freightflow/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	sequences     ports.SequenceProvider
	dispatcher    *notifier.Dispatcher
	channelPolicy notification.ChannelPolicy

	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	var sequences ports.SequenceProvider = postgres.NewGormSequenceProvider(gormDB)
	if config.RedisAddr != "" {
		sequences = redisseq.NewProvider(redis.NewClient(&redis.Options{Addr: config.RedisAddr}))
	}

	messageGateway := gateway.NewHTTPMessageGateway(
		config.MessageGatewayURL, config.MessageGatewayAPIKey, http.DefaultClient)

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    uowFactory,
		sequences:     sequences,
		dispatcher:    notifier.NewDispatcher(uowFactory, messageGateway, logger),
		channelPolicy: notification.DefaultChannelPolicy(),
		logger:        logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateGenerateLoadIdentifiersCommandHandler() commands.GenerateLoadIdentifiersCommandHandler {
	return commands.NewGenerateLoadIdentifiersCommandHandler(c.sequences)
}

func (c *CompositionRoot) CreateSubmitBOLCommandHandler() commands.SubmitBOLCommandHandler {
	return commands.NewSubmitBOLCommandHandler(c.createUoWFactory(), c.dispatcher, c.channelPolicy)
}

func (c *CompositionRoot) CreateApproveBOLCommandHandler() commands.ApproveBOLCommandHandler {
	return commands.NewApproveBOLCommandHandler(
		c.createUoWFactory(), c.dispatcher, services.NewInvoiceCalculator(), c.channelPolicy)
}

func (c *CompositionRoot) CreateRetryFailedNotificationsCommandHandler() commands.RetryFailedNotificationsCommandHandler {
	return commands.NewRetryFailedNotificationsCommandHandler(c.createUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateGetBrokerSubmissionsQueryHandler() queries.GetBrokerSubmissionsQueryHandler {
	return queries.NewGetBrokerSubmissionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSubmissionQueryHandler() queries.GetSubmissionQueryHandler {
	return queries.NewGetSubmissionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
