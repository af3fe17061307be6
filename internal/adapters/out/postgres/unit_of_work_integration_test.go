package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "brokerage/internal/adapters/out/postgres"
	"brokerage/internal/adapters/out/postgres/accountrepo"
	"brokerage/internal/adapters/out/postgres/contentrepo"
	"brokerage/internal/adapters/out/postgres/declarationrepo"
	"brokerage/internal/adapters/out/postgres/notificationrepo"
	"brokerage/internal/adapters/out/postgres/orderrepo"
	"brokerage/internal/adapters/out/postgres/ticketrepo"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/order"
	"brokerage/internal/core/domain/model/ticket"
	"brokerage/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL instance.
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
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.StatusUpdateDTO{},
		&declarationrepo.DeclarationDTO{}, &declarationrepo.StatusUpdateDTO{},
		&ticketrepo.TicketDTO{}, &ticketrepo.MessageDTO{},
		&accountrepo.AccountDTO{},
		&contentrepo.ArticleDTO{},
		&notificationrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		orders, order_status_updates,
		declarations, declaration_status_updates,
		tickets, ticket_messages,
		accounts, articles, notifications CASCADE`).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DeclarationRepository())
	suite.NotNil(uow1.TicketRepository())
	suite.NotNil(uow1.AccountRepository())
	suite.NotNil(uow1.ContentRepository())
	suite.NotNil(uow1.NotificationRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "repeated begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrieved.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTicketNumbering_SharesTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	first, err := ticket.NewTicket(
		kernel.NewUUID(), kernel.NewUUID(),
		"Where is my parcel", "It has been a week",
		ticket.TypeOrder, ticket.PriorityNormal, nil, nil,
	)
	suite.Require().NoError(err)

	second, err := ticket.NewTicket(
		kernel.NewUUID(), kernel.NewUUID(),
		"Wrong address", "Please update the street",
		ticket.TypeOrder, ticket.PriorityNormal, nil, nil,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TicketRepository().Add(ctx, first))
	suite.Require().NoError(uow.TicketRepository().Add(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NotNil(first.Number())
	suite.Require().NotNil(second.Number())
	suite.False(first.Number().IsEqual(*second.Number()))

	retrieved, err := suite.factory.Create().TicketRepository().Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Number())
	suite.True(first.Number().IsEqual(*retrieved.Number()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutTransaction_ExecuteImmediately() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Wireless headphones",
		2,
		decimal.NewFromInt(50),
		"1 Main St",
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
