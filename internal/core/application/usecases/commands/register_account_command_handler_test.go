package commands_test

import (
	"errors"
	"testing"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(accountID, "jane@example.com", "jane",
		"+15551234567", "Jane", "Doe", "correct horse battery")
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	uow := new(MockUoW)
	codes := new(MockVerificationCodes)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accounts).Once(),
		accounts.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		codes.On("Store", ctx, accountID, mock.MatchedBy(func(code string) bool {
			return len(code) == 6
		})).Return(nil).Once(),
		notifier.On("NotifyVerificationCode", ctx, "jane@example.com", "Jane Doe",
			mock.AnythingOfType("string")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory, codes, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	accounts.AssertExpectations(t)
	uow.AssertExpectations(t)
	codes.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRegisterAccountCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "jane@example.com", "jane",
		"", "", "", "correct horse battery")
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accounts).Once(),
		accounts.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).
			Return(errors.New("duplicate email")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterAccountCommandHandler(factory, new(MockVerificationCodes), new(MockNotifier))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	accounts.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterAccountCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "jane@example.com", "jane",
		"", "", "", "short")
	require.Error(t, err)
}
