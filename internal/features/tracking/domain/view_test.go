package domain

import (
	"testing"
	"time"

	orders "order-tracker/internal/features/orders/domain"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *orders.Order {
	return &orders.Order{
		OrderID:         "ORD-2024-001234",
		CustomerName:    "Sarah Johnson",
		DeliveryAddress: "123 Maple Street, Apt 4B, San Francisco, CA 94102",
		DeliveryWindow: orders.DeliveryWindow{
			Start: orders.MustParseTimeOfDay("17:00"),
			End:   orders.MustParseTimeOfDay("20:00"),
		},
		EstimatedDelivery: orders.MustParseTimeOfDay("18:30"),
		CurrentStatus:     orders.StatusOutForDelivery,
		StatusHistory: []orders.StatusEvent{
			{ID: "1", Status: orders.StatusPreparing, Timestamp: at(14, 0, 0, 0), Description: "Order received and meal prep started"},
			{ID: "2", Status: orders.StatusReady, Timestamp: at(16, 15, 0, 0), Description: "Meals prepared and packaged"},
			{ID: "3", Status: orders.StatusOutForDelivery, Timestamp: at(16, 45, 0, 0), Description: "Driver picked up your order"},
		},
		Items: []orders.OrderItem{
			{ID: "1", Name: "Mediterranean Chicken Bowl", Quantity: 2, Price: decimal.MustParse("24.99")},
			{ID: "2", Name: "Quinoa Power Salad", Quantity: 1, Price: decimal.MustParse("12.99")},
		},
		TotalAmount:         decimal.MustParse("62.97"),
		Driver:              &orders.DriverInfo{Name: "Mike Rodriguez", Rating: 4.8},
		SpecialInstructions: "Please ring doorbell twice.",
		TrackingNumber:      "TRK789456123",
	}
}

func TestBuildView(t *testing.T) {
	order := sampleOrder()
	now := at(17, 0, 0, 0)

	view, err := BuildView(order, now)
	require.NoError(t, err)

	assert.Equal(t, "ORD-2024-001234", view.OrderID)
	assert.Equal(t, "1h 30m", view.TimeUntilDelivery)
	assert.Equal(t, "5:00 PM - 8:00 PM", view.DeliveryWindow)
	assert.Equal(t, "6:30 PM", view.ExpectedAt)
	assert.Equal(t, orders.StatusOutForDelivery, view.Status)
	assert.Equal(t, "out for delivery", view.StatusLabel)
	assert.Equal(t, "Driver picked up your order", view.StatusDescription)
	assert.Equal(t, 75, view.ProgressPercent)
	assert.Equal(t, "$62.97", view.Total)
	assert.Equal(t, "TRK789456123", view.TrackingNumber)
	assert.Equal(t, now, view.GeneratedAt)
	assert.Nil(t, view.Notice)

	require.Len(t, view.Timeline, 3)
	assert.Equal(t, "2:00 PM", view.Timeline[0].Time)
	assert.Equal(t, "4:45 PM", view.Timeline[2].Time)
	assert.Equal(t, "out for delivery", view.Timeline[2].Label)
	assert.True(t, view.Timeline[0].Completed)
	assert.True(t, view.Timeline[1].Completed)
	assert.False(t, view.Timeline[2].Completed)
	assert.True(t, view.Timeline[2].Current)
	assert.False(t, view.Timeline[0].Current)

	require.Len(t, view.Items, 2)
	assert.Equal(t, ItemLine{Name: "Mediterranean Chicken Bowl", Quantity: 2, UnitPrice: "$24.99", LineTotal: "$49.98"}, view.Items[0])

	require.NotNil(t, view.Driver)
	assert.NotSame(t, order.Driver, view.Driver)
	assert.Equal(t, "Mike Rodriguez", view.Driver.Name)
}

func TestBuildView_TimelineInViewLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	view, err := BuildView(sampleOrder(), time.Date(2024, 1, 15, 9, 0, 0, 0, loc))
	require.NoError(t, err)

	// 14:00 UTC is 06:00 in Los Angeles in January.
	assert.Equal(t, "6:00 AM", view.Timeline[0].Time)
}

func TestBuildView_NoDriverSingleEvent(t *testing.T) {
	order := sampleOrder()
	order.Driver = nil
	order.CurrentStatus = orders.StatusPreparing
	order.StatusHistory = order.StatusHistory[:1]

	view, err := BuildView(order, at(19, 0, 0, 0))
	require.NoError(t, err)

	assert.Nil(t, view.Driver)
	assert.Equal(t, 25, view.ProgressPercent)
	assert.Equal(t, ArrivingSoon, view.TimeUntilDelivery)
	require.Len(t, view.Timeline, 1)
	assert.True(t, view.Timeline[0].Current)
	assert.False(t, view.Timeline[0].Completed)
}
