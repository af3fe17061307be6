package notify_test

import (
	"context"
	"io"
	"testing"

	"brokerage/internal/adapters/out/notify"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/notification"
	"brokerage/internal/core/ports"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockUoW struct {
	mock.Mock
}

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
	return nil
}

func (m *MockUoW) DeclarationRepository() ports.DeclarationRepository {
	return nil
}

func (m *MockUoW) TicketRepository() ports.TicketRepository {
	return nil
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	return nil
}

func (m *MockUoW) ContentRepository() ports.ContentRepository {
	return nil
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestEmailNotifier_NotifyStatusChange_EnqueuesOutboxRow(t *testing.T) {
	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	orderID := kernel.NewUUID()

	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Recipient() == "jane@example.com" &&
				n.Channel() == notification.ChannelEmail &&
				n.Status() == notification.StatusPending &&
				n.RelatedKind() == notification.RelatedOrder &&
				n.RelatedID() != nil && n.RelatedID().IsEqual(orderID)
		})).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	notifier := notify.NewEmailNotifier(factory, silentLogger())
	err := notifier.NotifyStatusChange(t.Context(), ports.StatusChangeNotice{
		Recipient:    "jane@example.com",
		CustomerName: "Jane Doe",
		EntityKind:   notification.RelatedOrder,
		EntityID:     orderID,
		EntityNumber: "ORD-20250115-9F2C41AB",
		NewStatus:    "shipped",
	})
	require.NoError(t, err)

	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestEmailNotifier_NotifyStatusChange_RendersSubjectAndBody(t *testing.T) {
	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	var captured *notification.Notification
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("NotificationRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*notification.Notification)
	}).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	notifier := notify.NewEmailNotifier(factory, silentLogger())
	err := notifier.NotifyStatusChange(t.Context(), ports.StatusChangeNotice{
		Recipient:    "jane@example.com",
		CustomerName: "Jane Doe",
		EntityKind:   notification.RelatedDeclaration,
		EntityID:     kernel.NewUUID(),
		EntityNumber: "DEC-20250115-00AB12CD",
		NewStatus:    "approved",
		Note:         "Duty assessed at 12.50 USD",
	})
	require.NoError(t, err)

	require.NotNil(t, captured)
	require.Equal(t, "Your declaration DEC-20250115-00AB12CD is now approved", captured.Subject())
	require.Contains(t, captured.Body(), "Jane Doe")
	require.Contains(t, captured.Body(), "DEC-20250115-00AB12CD")
	require.Contains(t, captured.Body(), "approved")
	require.Contains(t, captured.Body(), "Duty assessed at 12.50 USD")
}

func TestEmailNotifier_NotifyVerificationCode_EnqueuesCodeEmail(t *testing.T) {
	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	var captured *notification.Notification
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("NotificationRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*notification.Notification)
	}).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	notifier := notify.NewEmailNotifier(factory, silentLogger())
	err := notifier.NotifyVerificationCode(t.Context(), "jane@example.com", "Jane Doe", "123456")
	require.NoError(t, err)

	require.NotNil(t, captured)
	require.Equal(t, notification.RelatedAccount, captured.RelatedKind())
	require.Nil(t, captured.RelatedID())
	require.Contains(t, captured.Body(), "123456")
}

func TestEmailNotifier_AddFailure_RollsBackAndReturnsError(t *testing.T) {
	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("NotificationRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(context.DeadlineExceeded).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	notifier := notify.NewEmailNotifier(factory, silentLogger())
	err := notifier.NotifyVerificationCode(t.Context(), "jane@example.com", "Jane Doe", "123456")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestLogTransport_Send_ReportsSuccess(t *testing.T) {
	aggregate, err := notification.NewNotification(
		kernel.NewUUID(),
		notification.ChannelEmail,
		"jane@example.com",
		"Subject",
		"<p>Body</p>",
		notification.RelatedOrder,
		nil,
	)
	require.NoError(t, err)

	transport := notify.NewLogTransport(silentLogger())
	require.NoError(t, transport.Send(t.Context(), aggregate))
}
