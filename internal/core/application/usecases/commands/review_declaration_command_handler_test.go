package commands_test

import (
	"testing"
	"time"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func submittedDeclaration(t *testing.T, customerID kernel.UUID) *declaration.Declaration {
	t.Helper()

	passport, err := kernel.NewPassport("AB", "1234567",
		time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		"Migration Service")
	require.NoError(t, err)

	d, err := declaration.NewDeclaration(declaration.NewDeclarationParams{
		ID:              kernel.NewUUID(),
		CustomerID:      customerID,
		DeclarationType: declaration.TypeImport,
		Passport:        passport,
		ContactName:     "Jane Doe",
		ContactPhone:    "+15551234567",
		ContactEmail:    "jane@example.com",
		DeliveryAddress: "1 Main St",
		DeliveryCountry: "US",
		DeliveryCity:    "Springfield",
		ProductName:     "Wireless headphones",
		ProductQuantity: 2,
		ProductUnit:     "pcs",
		ProductValue:    decimal.NewFromInt(100),
		Currency:        "USD",
	})
	require.NoError(t, err)
	require.NoError(t, d.Submit(customerActor(t, customerID)))
	return d
}

func TestReviewDeclarationCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := submittedDeclaration(t, customerID)
	cmd, err := commands.NewReviewDeclarationCommand(aggregate.ID(), staffActor(t), commands.DecisionApprove, "")
	require.NoError(t, err)

	repo := new(MockDeclarationRepository)
	accounts := new(MockAccountRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeclarationRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AccountRepository").Return(accounts).Once(),
		accounts.On("Get", mock.Anything, customerID).Return(testAccount(t, customerID), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyStatusChange", ctx, mock.AnythingOfType("ports.StatusChangeNotice")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeclarationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewDeclarationCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, declaration.StatusApproved, aggregate.Status())
	require.NotNil(t, aggregate.ReviewedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestReviewDeclarationCommandHandler_Handle_ForeignCustomerNotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := submittedDeclaration(t, kernel.NewUUID())
	cmd, err := commands.NewReviewDeclarationCommand(aggregate.ID(), customerActor(t, kernel.NewUUID()),
		commands.DecisionApprove, "")
	require.NoError(t, err)

	repo := new(MockDeclarationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeclarationRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeclarationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewDeclarationCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Equal(t, declaration.StatusSubmitted, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReviewDeclarationCommandHandler_Handle_OwnerForbidden(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := submittedDeclaration(t, customerID)
	cmd, err := commands.NewReviewDeclarationCommand(aggregate.ID(), customerActor(t, customerID),
		commands.DecisionApprove, "")
	require.NoError(t, err)

	repo := new(MockDeclarationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeclarationRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeclarationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewDeclarationCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.Equal(t, declaration.StatusSubmitted, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteDeclarationCommandHandler_Handle_OwnerForbidden(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := submittedDeclaration(t, customerID)
	cmd, err := commands.NewCompleteDeclarationCommand(aggregate.ID(), customerActor(t, customerID))
	require.NoError(t, err)

	repo := new(MockDeclarationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeclarationRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeclarationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeclarationCommandHandler(factory, new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.Equal(t, declaration.StatusSubmitted, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReviewDeclarationCommand_RejectRequiresReason(t *testing.T) {
	_, err := commands.NewReviewDeclarationCommand(kernel.NewUUID(), staffActor(t), commands.DecisionReject, "")
	require.Error(t, err)
}
