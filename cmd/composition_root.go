package cmd

import (
	"brokerage/internal/adapters/out/notify"
	"brokerage/internal/adapters/out/postgres"
	redisstore "brokerage/internal/adapters/out/redis"
	"brokerage/internal/adapters/out/render"
	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/application/usecases/queries"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/auth"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use case handlers. All construction
// decisions live here so the rest of the application stays free of them.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	codes      ports.VerificationCodes
	notifier   ports.Notifier
	transport  ports.Transport
	renderer   ports.DocumentRenderer
	issuer     *auth.Issuer
	log        *logrus.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, log *logrus.Logger) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: uowFactory,
		codes:      redisstore.NewVerificationStore(redisClient),
		notifier:   notify.NewEmailNotifier(uowFactory, log),
		transport:  notify.NewLogTransport(log),
		renderer:   render.NewHTMLRenderer(),
		issuer:     auth.NewIssuer(config.JWTSecret, config.AccessTokenTTL, config.RefreshTokenTTL),
		log:        log,
	}
}

func (c *CompositionRoot) Issuer() *auth.Issuer   { return c.issuer }
func (c *CompositionRoot) Logger() *logrus.Logger { return c.log }

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) declarationUoWFactory() commands.DeclarationUoWFactory {
	return FuncDeclarationUoWFactory(func() commands.DeclarationUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) ticketUoWFactory() commands.TicketUoWFactory {
	return FuncTicketUoWFactory(func() commands.TicketUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) contentUoWFactory() commands.ContentUoWFactory {
	return FuncContentUoWFactory(func() commands.ContentUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory(), c.codes, c.notifier)
}

func (c *CompositionRoot) CreateVerifyEmailCommandHandler() commands.VerifyEmailCommandHandler {
	return commands.NewVerifyEmailCommandHandler(c.accountUoWFactory(), c.codes)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeclarationCommandHandler() commands.CreateDeclarationCommandHandler {
	return commands.NewCreateDeclarationCommandHandler(c.declarationUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeclarationCommandHandler() commands.UpdateDeclarationCommandHandler {
	return commands.NewUpdateDeclarationCommandHandler(c.declarationUoWFactory())
}

func (c *CompositionRoot) CreateSubmitDeclarationCommandHandler() commands.SubmitDeclarationCommandHandler {
	return commands.NewSubmitDeclarationCommandHandler(c.declarationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReviewDeclarationCommandHandler() commands.ReviewDeclarationCommandHandler {
	return commands.NewReviewDeclarationCommandHandler(c.declarationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteDeclarationCommandHandler() commands.CompleteDeclarationCommandHandler {
	return commands.NewCompleteDeclarationCommandHandler(c.declarationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDeleteDeclarationCommandHandler() commands.DeleteDeclarationCommandHandler {
	return commands.NewDeleteDeclarationCommandHandler(c.declarationUoWFactory())
}

func (c *CompositionRoot) CreateOpenTicketCommandHandler() commands.OpenTicketCommandHandler {
	return commands.NewOpenTicketCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTicketCommandHandler() commands.UpdateTicketCommandHandler {
	return commands.NewUpdateTicketCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateAddTicketMessageCommandHandler() commands.AddTicketMessageCommandHandler {
	return commands.NewAddTicketMessageCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateFinishTicketCommandHandler() commands.FinishTicketCommandHandler {
	return commands.NewFinishTicketCommandHandler(c.ticketUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateArticleCommandHandler() commands.CreateArticleCommandHandler {
	return commands.NewCreateArticleCommandHandler(c.contentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateArticleCommandHandler() commands.UpdateArticleCommandHandler {
	return commands.NewUpdateArticleCommandHandler(c.contentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteArticleCommandHandler() commands.DeleteArticleCommandHandler {
	return commands.NewDeleteArticleCommandHandler(c.contentUoWFactory())
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	return commands.NewDispatchNotificationsCommandHandler(c.notificationUoWFactory(), c.transport)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountByEmailQueryHandler() queries.GetAccountByEmailQueryHandler {
	return queries.NewGetAccountByEmailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusUpdatesQueryHandler() queries.GetOrderStatusUpdatesQueryHandler {
	return queries.NewGetOrderStatusUpdatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeclarationsQueryHandler() queries.GetDeclarationsQueryHandler {
	return queries.NewGetDeclarationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeclarationQueryHandler() queries.GetDeclarationQueryHandler {
	return queries.NewGetDeclarationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeclarationStatusUpdatesQueryHandler() queries.GetDeclarationStatusUpdatesQueryHandler {
	return queries.NewGetDeclarationStatusUpdatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeclarationStatisticsQueryHandler() queries.GetDeclarationStatisticsQueryHandler {
	return queries.NewGetDeclarationStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeclarationDocumentQueryHandler() queries.GetDeclarationDocumentQueryHandler {
	return queries.NewGetDeclarationDocumentQueryHandler(c.uowFactory, c.renderer)
}

func (c *CompositionRoot) CreateGetTicketsQueryHandler() queries.GetTicketsQueryHandler {
	return queries.NewGetTicketsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTicketQueryHandler() queries.GetTicketQueryHandler {
	return queries.NewGetTicketQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTicketMessagesQueryHandler() queries.GetTicketMessagesQueryHandler {
	return queries.NewGetTicketMessagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSupportStatisticsQueryHandler() queries.GetSupportStatisticsQueryHandler {
	return queries.NewGetSupportStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetArticlesQueryHandler() queries.GetArticlesQueryHandler {
	return queries.NewGetArticlesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetArticleQueryHandler() queries.GetArticleQueryHandler {
	return queries.NewGetArticleQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeclarationUoWFactory func() commands.DeclarationUoW

func (f FuncDeclarationUoWFactory) Create() commands.DeclarationUoW {
	return f()
}

type FuncTicketUoWFactory func() commands.TicketUoW

func (f FuncTicketUoWFactory) Create() commands.TicketUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncContentUoWFactory func() commands.ContentUoW

func (f FuncContentUoWFactory) Create() commands.ContentUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
