package domain

import (
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() *Order {
	return &Order{
		OrderID:         "ORD-TEST-1",
		CustomerName:    "Test Customer",
		DeliveryAddress: "1 Test Street",
		DeliveryWindow: DeliveryWindow{
			Start: MustParseTimeOfDay("17:00"),
			End:   MustParseTimeOfDay("20:00"),
		},
		EstimatedDelivery: MustParseTimeOfDay("18:30"),
		CurrentStatus:     StatusReady,
		StatusHistory: []StatusEvent{
			{ID: "1", Status: StatusPreparing, Timestamp: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)},
			{ID: "2", Status: StatusReady, Timestamp: time.Date(2024, 1, 15, 16, 15, 0, 0, time.UTC)},
		},
		Items: []OrderItem{
			{ID: "1", Name: "Bowl", Quantity: 2, Price: decimal.MustParse("24.99")},
			{ID: "2", Name: "Salad", Quantity: 1, Price: decimal.MustParse("12.99")},
		},
		TotalAmount:    decimal.MustParse("62.97"),
		TrackingNumber: "TRK-TEST",
	}
}

func TestOrder_LatestEvent(t *testing.T) {
	o := validOrder()
	latest, ok := o.LatestEvent()
	require.True(t, ok)
	assert.Equal(t, "2", latest.ID)

	o.StatusHistory = nil
	_, ok = o.LatestEvent()
	assert.False(t, ok)
}

func TestOrder_ComputeTotal(t *testing.T) {
	total, err := validOrder().ComputeTotal()
	require.NoError(t, err)
	assert.Equal(t, 0, total.Cmp(decimal.MustParse("62.97")))
	assert.Equal(t, "$62.97", FormatMoney(total))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$8.00", FormatMoney(decimal.MustParse("8")))
	assert.Equal(t, "$12.50", FormatMoney(decimal.MustParse("12.5")))
	assert.Equal(t, "$0.00", FormatMoney(decimal.MustNew(0, 0)))
}

func TestOrder_Clone(t *testing.T) {
	o := validOrder()
	o.Driver = &DriverInfo{Name: "Driver", Rating: 4.8}

	clone := o.Clone()
	clone.Items[0].Name = "changed"
	clone.StatusHistory[0].Description = "changed"
	clone.Driver.Name = "changed"

	assert.Equal(t, "Bowl", o.Items[0].Name)
	assert.Empty(t, o.StatusHistory[0].Description)
	assert.Equal(t, "Driver", o.Driver.Name)
}

func TestOrder_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr string
	}{
		{
			name:   "Valid",
			mutate: func(o *Order) {},
		},
		{
			name:    "EmptyID",
			mutate:  func(o *Order) { o.OrderID = "" },
			wantErr: "order id is empty",
		},
		{
			name: "WindowReversed",
			mutate: func(o *Order) {
				o.DeliveryWindow.Start, o.DeliveryWindow.End = o.DeliveryWindow.End, o.DeliveryWindow.Start
			},
			wantErr: "ends before it starts",
		},
		{
			name:    "EstimateOutsideWindow",
			mutate:  func(o *Order) { o.EstimatedDelivery = MustParseTimeOfDay("21:00") },
			wantErr: "outside the delivery window",
		},
		{
			name:    "UnknownCurrentStatus",
			mutate:  func(o *Order) { o.CurrentStatus = "cancelled" },
			wantErr: "unknown current status",
		},
		{
			name:    "EmptyHistory",
			mutate:  func(o *Order) { o.StatusHistory = nil },
			wantErr: "status history is empty",
		},
		{
			name:    "UnknownEventStatus",
			mutate:  func(o *Order) { o.StatusHistory[0].Status = "queued" },
			wantErr: "unknown status",
		},
		{
			name:    "DuplicateEventID",
			mutate:  func(o *Order) { o.StatusHistory[1].ID = "1" },
			wantErr: "duplicate status event id",
		},
		{
			name: "TimestampsNotIncreasing",
			mutate: func(o *Order) {
				o.StatusHistory[1].Timestamp = o.StatusHistory[0].Timestamp
			},
			wantErr: "is not later than",
		},
		{
			name: "StatusGoesBackward",
			mutate: func(o *Order) {
				o.StatusHistory[0].Status = StatusReady
				o.StatusHistory[1].Status = StatusPreparing
				o.CurrentStatus = StatusPreparing
			},
			wantErr: "cannot follow",
		},
		{
			name: "StatusRepeated",
			mutate: func(o *Order) {
				o.StatusHistory[1].Status = StatusPreparing
				o.CurrentStatus = StatusPreparing
			},
			wantErr: "cannot follow",
		},
		{
			name:    "CurrentStatusMismatch",
			mutate:  func(o *Order) { o.CurrentStatus = StatusDelivered },
			wantErr: "does not match latest event status",
		},
		{
			name:    "NoItems",
			mutate:  func(o *Order) { o.Items = nil },
			wantErr: "order has no items",
		},
		{
			name:    "ZeroQuantity",
			mutate:  func(o *Order) { o.Items[0].Quantity = 0 },
			wantErr: "non-positive quantity",
		},
		{
			name:    "NegativePrice",
			mutate:  func(o *Order) { o.Items[1].Price = decimal.MustParse("-1.00") },
			wantErr: "negative price",
		},
		{
			name:    "TotalIgnoresQuantity",
			mutate:  func(o *Order) { o.TotalAmount = decimal.MustParse("37.98") },
			wantErr: "does not match item sum",
		},
		{
			name:    "DriverRatingTooHigh",
			mutate:  func(o *Order) { o.Driver = &DriverInfo{Name: "D", Rating: 5.1} },
			wantErr: "driver rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(o)

			err := o.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidOrder)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOrder_Validate_SkippingForwardIsAllowed(t *testing.T) {
	o := validOrder()
	o.StatusHistory[1].Status = StatusOutForDelivery
	o.CurrentStatus = StatusOutForDelivery

	assert.NoError(t, o.Validate())
}
