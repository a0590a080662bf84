package domain

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"
)

// DeliveryWindow is the customer-facing promised arrival interval.
type DeliveryWindow struct {
	// Start is the earliest promised arrival.
	Start TimeOfDay `json:"start"`
	// End is the latest promised arrival.
	End TimeOfDay `json:"end"`
}

// Contains reports whether t falls inside the window, bounds included.
func (w DeliveryWindow) Contains(t TimeOfDay) bool {
	return !t.Before(w.Start) && !w.End.Before(t)
}

// String renders the window in 12-hour form, e.g. "5:00 PM - 8:00 PM".
func (w DeliveryWindow) String() string {
	return w.Start.Format12h() + " - " + w.End.Format12h()
}

// StatusEvent is one timestamped milestone in an order's fulfillment.
type StatusEvent struct {
	// ID is unique within the order.
	ID string `json:"id"`
	// Status is the stage reached.
	Status Status `json:"status"`
	// Timestamp is when the stage was reached.
	Timestamp time.Time `json:"timestamp"`
	// Description is free text shown to the customer.
	Description string `json:"description"`
}

// OrderItem is a single line of the order.
type OrderItem struct {
	// ID is unique within the order.
	ID string `json:"id"`
	// Name is the product name.
	Name string `json:"name"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
	// Price is the unit price.
	Price decimal.Decimal `json:"price"`
}

// LineTotal returns Price multiplied by Quantity.
func (i OrderItem) LineTotal() (decimal.Decimal, error) {
	qty, err := decimal.New(int64(i.Quantity), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return i.Price.Mul(qty)
}

// DriverInfo describes the driver assigned to the order.
type DriverInfo struct {
	// Name is the driver's display name.
	Name string `json:"name"`
	// Phone is the contact number.
	Phone string `json:"phone"`
	// Vehicle is a free-text vehicle description.
	Vehicle string `json:"vehicle"`
	// Rating is the driver's average rating between 0 and 5.
	Rating float64 `json:"rating"`
	// Photo is a URL to the driver's picture.
	Photo string `json:"photo"`
}

// Order is one customer order with its items, status history and delivery metadata.
type Order struct {
	// OrderID is the stable lookup key, e.g. ORD-2024-001234.
	OrderID string `json:"order_id"`
	// CustomerName is the name of the recipient.
	CustomerName string `json:"customer_name"`
	// DeliveryAddress is the full street address.
	DeliveryAddress string `json:"delivery_address"`
	// DeliveryWindow is the promised arrival interval.
	DeliveryWindow DeliveryWindow `json:"delivery_window"`
	// EstimatedDelivery is the single-point ETA within the window.
	EstimatedDelivery TimeOfDay `json:"estimated_delivery"`
	// CurrentStatus mirrors the status of the last history entry.
	CurrentStatus Status `json:"current_status"`
	// StatusHistory is ordered by ascending timestamp.
	StatusHistory []StatusEvent `json:"status_history"`
	// Items are the ordered products.
	Items []OrderItem `json:"items"`
	// TotalAmount is the sum of every item's line total.
	TotalAmount decimal.Decimal `json:"total_amount"`
	// Driver is set once a driver is assigned.
	Driver *DriverInfo `json:"driver,omitempty"`
	// SpecialInstructions are optional delivery notes.
	SpecialInstructions string `json:"special_instructions,omitempty"`
	// TrackingNumber is the carrier-facing reference.
	TrackingNumber string `json:"tracking_number"`
}

// LatestEvent returns the most recent status event, or false when the history is empty.
func (o *Order) LatestEvent() (StatusEvent, bool) {
	if len(o.StatusHistory) == 0 {
		return StatusEvent{}, false
	}
	return o.StatusHistory[len(o.StatusHistory)-1], true
}

// ComputeTotal sums the line totals of all items.
func (o *Order) ComputeTotal() (decimal.Decimal, error) {
	total := decimal.MustNew(0, 2)
	for _, item := range o.Items {
		line, err := item.LineTotal()
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("item %s: %w", item.ID, err)
		}
		total, err = total.Add(line)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("item %s: %w", item.ID, err)
		}
	}
	return total, nil
}

// Clone returns a deep copy so callers cannot mutate repository state.
func (o *Order) Clone() *Order {
	clone := *o
	clone.StatusHistory = append([]StatusEvent(nil), o.StatusHistory...)
	clone.Items = append([]OrderItem(nil), o.Items...)
	if o.Driver != nil {
		driver := *o.Driver
		clone.Driver = &driver
	}
	return &clone
}

// FormatMoney renders an amount as dollars with two decimals, e.g. "$24.99".
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.Round(2).Pad(2).String()
}
