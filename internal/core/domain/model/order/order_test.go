package order_test

import (
	"testing"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/order"
	"brokerage/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staffActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), "Back Office", true)
	require.NoError(t, err)
	return actor
}

func customerActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, "Jane Customer", false)
	require.NoError(t, err)
	return actor
}

func validOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, "Wireless headphones", 3,
		decimal.NewFromFloat(49.90), "12 Main St, Springfield")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("should create pending order and compute the total", func(t *testing.T) {
		o := validOrder(t, customerID)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
		assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{8}$`, o.Number().String())
		assert.True(t, o.TotalPrice().Equal(decimal.NewFromFloat(149.70)))
		assert.Empty(t, o.StatusUpdates())
		assert.Nil(t, o.ActualDelivery())
		require.NoError(t, o.Validate())
	})

	t.Run("should reject invalid inputs", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, "Thing", 1,
			decimal.NewFromInt(10), "addr")
		assert.Error(t, err, "zero customer id")

		_, err = order.NewOrder(kernel.NewUUID(), customerID, "", 1,
			decimal.NewFromInt(10), "addr")
		assert.Error(t, err, "empty product name")

		_, err = order.NewOrder(kernel.NewUUID(), customerID, "Thing", 0,
			decimal.NewFromInt(10), "addr")
		assert.Error(t, err, "zero quantity")

		_, err = order.NewOrder(kernel.NewUUID(), customerID, "Thing", 1,
			decimal.Zero, "addr")
		assert.Error(t, err, "zero unit price")

		_, err = order.NewOrder(kernel.NewUUID(), customerID, "Thing", 1,
			decimal.NewFromInt(10), "")
		assert.Error(t, err, "empty address")
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("staff moves order along the machine and history grows", func(t *testing.T) {
		o := validOrder(t, customerID)
		staff := staffActor(t)

		require.NoError(t, o.ChangeStatus(staff, order.StatusProcessing, "accepted"))
		require.NoError(t, o.ChangeStatus(staff, order.StatusShipped, ""))

		assert.Equal(t, order.StatusShipped, o.Status())
		require.Len(t, o.StatusUpdates(), 2)
		assert.Equal(t, order.StatusProcessing, o.StatusUpdates()[0].Status())
		assert.Equal(t, "accepted", o.StatusUpdates()[0].Note())
		assert.Equal(t, order.StatusShipped, o.StatusUpdates()[1].Status())
		assert.Contains(t, o.StatusUpdates()[1].Note(), "shipped")
		assert.True(t, staff.ID().IsEqual(o.StatusUpdates()[1].UpdatedBy()))
	})

	t.Run("non-staff cannot drive the processing machine", func(t *testing.T) {
		o := validOrder(t, customerID)

		err := o.ChangeStatus(customerActor(t, customerID), order.StatusProcessing, "")
		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Empty(t, o.StatusUpdates())
	})

	t.Run("illegal transition leaves order and history untouched", func(t *testing.T) {
		o := validOrder(t, customerID)

		err := o.ChangeStatus(staffActor(t), order.StatusDelivered, "")
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Empty(t, o.StatusUpdates())
	})
}

func TestOrder_Cancel(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("owner cancels a pending order", func(t *testing.T) {
		o := validOrder(t, customerID)

		require.NoError(t, o.Cancel(customerActor(t, customerID), "changed my mind"))
		assert.Equal(t, order.StatusCancelled, o.Status())
		require.Len(t, o.StatusUpdates(), 1)
		assert.Equal(t, "changed my mind", o.StatusUpdates()[0].Note())
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		o := validOrder(t, customerID)

		err := o.Cancel(customerActor(t, kernel.NewUUID()), "")
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("cannot cancel a shipped order", func(t *testing.T) {
		o := validOrder(t, customerID)
		staff := staffActor(t)
		require.NoError(t, o.ChangeStatus(staff, order.StatusProcessing, ""))
		require.NoError(t, o.ChangeStatus(staff, order.StatusShipped, ""))

		err := o.Cancel(staff, "")
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusShipped, o.Status())
	})
}

func TestOrder_ChangeDeliveryStatus(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("first arrival into delivered stamps actual delivery once", func(t *testing.T) {
		o := validOrder(t, customerID)
		staff := staffActor(t)

		require.NoError(t, o.ChangeDeliveryStatus(staff, order.DeliveryInTransit, ""))
		assert.Nil(t, o.ActualDelivery())

		require.NoError(t, o.ChangeDeliveryStatus(staff, order.DeliveryOutForDelivery, ""))
		require.NoError(t, o.ChangeDeliveryStatus(staff, order.DeliveryDelivered, ""))

		require.NotNil(t, o.ActualDelivery())
		assert.WithinDuration(t, time.Now().UTC(), *o.ActualDelivery(), time.Minute)
		assert.Len(t, o.StatusUpdates(), 3)
	})

	t.Run("non-staff cannot change delivery status", func(t *testing.T) {
		o := validOrder(t, customerID)

		err := o.ChangeDeliveryStatus(customerActor(t, customerID), order.DeliveryInTransit, "")
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("default note templates the delivery status that moved", func(t *testing.T) {
		o := validOrder(t, customerID)

		require.NoError(t, o.ChangeDeliveryStatus(staffActor(t), order.DeliveryInTransit, ""))

		updates := o.StatusUpdates()
		require.Len(t, updates, 1)
		assert.Contains(t, updates[0].Note(), "in_transit")
		assert.NotContains(t, updates[0].Note(), "pending")
	})
}

func TestOrder_SetTracking(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("staff sets tracking", func(t *testing.T) {
		o := validOrder(t, customerID)

		require.NoError(t, o.SetTracking(staffActor(t), "RR123456789US", "https://track.example.com/RR123456789US"))
		assert.Equal(t, "RR123456789US", o.TrackingNumber())
	})

	t.Run("tracking number is required", func(t *testing.T) {
		o := validOrder(t, customerID)

		err := o.SetTracking(staffActor(t), "", "https://track.example.com")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-staff cannot set tracking", func(t *testing.T) {
		o := validOrder(t, customerID)

		err := o.SetTracking(customerActor(t, customerID), "RR123456789US", "")
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestOrder_UpdateDeliveryDetails(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("allowed while pending", func(t *testing.T) {
		o := validOrder(t, customerID)

		require.NoError(t, o.UpdateDeliveryDetails("5 Oak Ave", "+12025550123", "leave at door"))
		assert.Equal(t, "5 Oak Ave", o.DeliveryAddress())
		assert.Equal(t, "+12025550123", o.DeliveryPhone())
	})

	t.Run("frozen once processing", func(t *testing.T) {
		o := validOrder(t, customerID)
		require.NoError(t, o.ChangeStatus(staffActor(t), order.StatusProcessing, ""))

		err := o.UpdateDeliveryDetails("5 Oak Ave", "", "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_RegenerateNumber(t *testing.T) {
	o := validOrder(t, kernel.NewUUID())
	before := o.Number()

	require.NoError(t, o.RegenerateNumber())
	assert.False(t, o.Number().IsEqual(before))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		number, err := kernel.BusinessNumberFromString("ORD-20250301-AB12CD34")
		require.NoError(t, err)
		delivered := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:              id,
			Number:          number,
			CustomerID:      customerID,
			ProductName:     "Wireless headphones",
			Quantity:        3,
			UnitPrice:       decimal.NewFromFloat(49.90),
			TotalPrice:      decimal.NewFromFloat(149.70),
			Status:          order.StatusDelivered,
			DeliveryStatus:  order.DeliveryDelivered,
			DeliveryAddress: "12 Main St",
			OrderDate:       time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			ActualDelivery:  &delivered,
		})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, &delivered, o.ActualDelivery())
	})

	t.Run("should reject unknown persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:         kernel.NewUUID(),
			CustomerID: kernel.NewUUID(),
			Status:     order.Status("misplaced"),
		})
		assert.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
}
