package commands_test

import (
	"context"

	"brokerage/internal/core/application/usecases/commands"
	"brokerage/internal/core/domain/model/account"
	"brokerage/internal/core/domain/model/content"
	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/domain/model/order"
	"brokerage/internal/core/domain/model/ticket"
	"brokerage/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeclarationRepository struct{ mock.Mock }

func (m *MockDeclarationRepository) Add(ctx context.Context, d *declaration.Declaration) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeclarationRepository) Update(ctx context.Context, d *declaration.Declaration) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeclarationRepository) Get(ctx context.Context, id kernel.UUID) (*declaration.Declaration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*declaration.Declaration), args.Error(1)
}
func (m *MockDeclarationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*declaration.Declaration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*declaration.Declaration), args.Error(1)
}
func (m *MockDeclarationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTicketRepository struct{ mock.Mock }

func (m *MockTicketRepository) Add(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTicketRepository) Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}
func (m *MockTicketRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}
func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockContentRepository struct{ mock.Mock }

func (m *MockContentRepository) Add(ctx context.Context, a *content.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockContentRepository) Update(ctx context.Context, a *content.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockContentRepository) Get(ctx context.Context, id kernel.UUID) (*content.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Article), args.Error(1)
}
func (m *MockContentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) GetPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

// MockUoW satisfies every scoped unit of work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DeclarationRepository() ports.DeclarationRepository {
	args := m.Called()
	return args.Get(0).(ports.DeclarationRepository)
}
func (m *MockUoW) TicketRepository() ports.TicketRepository {
	args := m.Called()
	return args.Get(0).(ports.TicketRepository)
}
func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}
func (m *MockUoW) ContentRepository() ports.ContentRepository {
	args := m.Called()
	return args.Get(0).(ports.ContentRepository)
}
func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeclarationUoWFactory struct{ mock.Mock }

func (m *MockDeclarationUoWFactory) Create() commands.DeclarationUoW {
	args := m.Called()
	return args.Get(0).(commands.DeclarationUoW)
}

type MockTicketUoWFactory struct{ mock.Mock }

func (m *MockTicketUoWFactory) Create() commands.TicketUoW {
	args := m.Called()
	return args.Get(0).(commands.TicketUoW)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockContentUoWFactory struct{ mock.Mock }

func (m *MockContentUoWFactory) Create() commands.ContentUoW {
	args := m.Called()
	return args.Get(0).(commands.ContentUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChange(ctx context.Context, notice ports.StatusChangeNotice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}
func (m *MockNotifier) NotifyVerificationCode(ctx context.Context, recipient, customerName, code string) error {
	args := m.Called(ctx, recipient, customerName, code)
	return args.Error(0)
}

type MockTransport struct{ mock.Mock }

func (m *MockTransport) Send(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockVerificationCodes struct{ mock.Mock }

func (m *MockVerificationCodes) Store(ctx context.Context, accountID kernel.UUID, code string) error {
	args := m.Called(ctx, accountID, code)
	return args.Error(0)
}
func (m *MockVerificationCodes) Verify(ctx context.Context, accountID kernel.UUID, code string) (bool, error) {
	args := m.Called(ctx, accountID, code)
	return args.Bool(0), args.Error(1)
}
