package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"brokerage/cmd"
	httpadapter "brokerage/internal/adapters/in/http"
	"brokerage/internal/adapters/out/postgres/accountrepo"
	"brokerage/internal/adapters/out/postgres/contentrepo"
	"brokerage/internal/adapters/out/postgres/declarationrepo"
	"brokerage/internal/adapters/out/postgres/notificationrepo"
	"brokerage/internal/adapters/out/postgres/orderrepo"
	"brokerage/internal/adapters/out/postgres/ticketrepo"
	"brokerage/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfigs()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	gormDB := mustConnectDB(config)
	mustMigrateDB(gormDB)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	root := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)

	jobManager := jobs.NewJobManager(
		root.CreateDispatchNotificationsCommandHandler(),
		config.DispatchCronSchedule,
		config.DispatchBatchSize,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     mustEnv("DB_HOST"),
		DBPort:     mustEnv("DB_PORT"),
		DBUser:     mustEnv("DB_USER"),
		DBPassword: mustEnv("DB_PASSWORD"),
		DBName:     mustEnv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		RedisAddr:     envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:       mustEnv("JWT_SECRET"),
		AccessTokenTTL:  durationEnv("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: durationEnv("REFRESH_TOKEN_TTL", 720*time.Hour),

		DispatchCronSchedule: envOrDefault("DISPATCH_CRON_SCHEDULE", "*/10 * * * * *"),
		DispatchBatchSize:    intEnv("DISPATCH_BATCH_SIZE", 50),
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return value
}

func mustConnectDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.StatusUpdateDTO{},
		&declarationrepo.DeclarationDTO{},
		&declarationrepo.StatusUpdateDTO{},
		&ticketrepo.TicketDTO{},
		&ticketrepo.MessageDTO{},
		&contentrepo.ArticleDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		httpadapter.Commands{
			RegisterAccount: root.CreateRegisterAccountCommandHandler(),
			VerifyEmail:     root.CreateVerifyEmailCommandHandler(),
			UpdateProfile:   root.CreateUpdateProfileCommandHandler(),

			CreateOrder:       root.CreateCreateOrderCommandHandler(),
			UpdateOrder:       root.CreateUpdateOrderCommandHandler(),
			UpdateOrderStatus: root.CreateUpdateOrderStatusCommandHandler(),
			CancelOrder:       root.CreateCancelOrderCommandHandler(),
			DeleteOrder:       root.CreateDeleteOrderCommandHandler(),

			CreateDeclaration:   root.CreateCreateDeclarationCommandHandler(),
			UpdateDeclaration:   root.CreateUpdateDeclarationCommandHandler(),
			SubmitDeclaration:   root.CreateSubmitDeclarationCommandHandler(),
			ReviewDeclaration:   root.CreateReviewDeclarationCommandHandler(),
			CompleteDeclaration: root.CreateCompleteDeclarationCommandHandler(),
			DeleteDeclaration:   root.CreateDeleteDeclarationCommandHandler(),

			OpenTicket:       root.CreateOpenTicketCommandHandler(),
			UpdateTicket:     root.CreateUpdateTicketCommandHandler(),
			AddTicketMessage: root.CreateAddTicketMessageCommandHandler(),
			FinishTicket:     root.CreateFinishTicketCommandHandler(),

			CreateArticle: root.CreateCreateArticleCommandHandler(),
			UpdateArticle: root.CreateUpdateArticleCommandHandler(),
			DeleteArticle: root.CreateDeleteArticleCommandHandler(),
		},
		httpadapter.Queries{
			GetAccount:        root.CreateGetAccountQueryHandler(),
			GetAccountByEmail: root.CreateGetAccountByEmailQueryHandler(),

			GetOrders:             root.CreateGetOrdersQueryHandler(),
			GetOrder:              root.CreateGetOrderQueryHandler(),
			GetOrderStatusUpdates: root.CreateGetOrderStatusUpdatesQueryHandler(),
			GetOrderStatistics:    root.CreateGetOrderStatisticsQueryHandler(),
			TrackOrder:            root.CreateTrackOrderQueryHandler(),

			GetDeclarations:             root.CreateGetDeclarationsQueryHandler(),
			GetDeclaration:              root.CreateGetDeclarationQueryHandler(),
			GetDeclarationStatusUpdates: root.CreateGetDeclarationStatusUpdatesQueryHandler(),
			GetDeclarationStatistics:    root.CreateGetDeclarationStatisticsQueryHandler(),
			GetDeclarationDocument:      root.CreateGetDeclarationDocumentQueryHandler(),

			GetTickets:           root.CreateGetTicketsQueryHandler(),
			GetTicket:            root.CreateGetTicketQueryHandler(),
			GetTicketMessages:    root.CreateGetTicketMessagesQueryHandler(),
			GetSupportStatistics: root.CreateGetSupportStatisticsQueryHandler(),

			GetArticles: root.CreateGetArticlesQueryHandler(),
			GetArticle:  root.CreateGetArticleQueryHandler(),
		},
		root.Issuer(),
		root.Logger(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
