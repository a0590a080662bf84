package domain

import (
	"fmt"
	"time"

	notices "order-tracker/internal/features/notices/domain"
	orders "order-tracker/internal/features/orders/domain"
)

// TrackingView is the presentation-ready projection of an order at a point in time.
type TrackingView struct {
	OrderID             string             `json:"order_id"`
	CustomerName        string             `json:"customer_name"`
	TimeUntilDelivery   string             `json:"time_until_delivery"`
	DeliveryWindow      string             `json:"delivery_window"`
	ExpectedAt          string             `json:"expected_at"`
	Status              orders.Status      `json:"status"`
	StatusLabel         string             `json:"status_label"`
	StatusDescription   string             `json:"status_description"`
	ProgressPercent     int                `json:"progress_percent"`
	Timeline            []TimelineEntry    `json:"timeline"`
	Driver              *orders.DriverInfo `json:"driver,omitempty"`
	Items               []ItemLine         `json:"items"`
	Total               string             `json:"total"`
	DeliveryAddress     string             `json:"delivery_address"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
	TrackingNumber      string             `json:"tracking_number"`
	Notice              *notices.Notice    `json:"notice,omitempty"`
	GeneratedAt         time.Time          `json:"generated_at"`
}

// TimelineEntry is one row of the status timeline.
type TimelineEntry struct {
	Status      orders.Status `json:"status"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Time        string        `json:"time"`
	// Completed marks every entry before the latest one.
	Completed bool `json:"completed"`
	// Current marks the latest entry.
	Current bool `json:"current"`
}

// ItemLine is one row of the itemized order.
type ItemLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// BuildView projects order at now. Event times are shown in now's location.
func BuildView(order *orders.Order, now time.Time) (*TrackingView, error) {
	view := &TrackingView{
		OrderID:             order.OrderID,
		CustomerName:        order.CustomerName,
		TimeUntilDelivery:   TimeUntilDelivery(order.EstimatedDelivery, now),
		DeliveryWindow:      order.DeliveryWindow.String(),
		ExpectedAt:          order.EstimatedDelivery.Format12h(),
		Status:              order.CurrentStatus,
		StatusLabel:         order.CurrentStatus.Label(),
		ProgressPercent:     orders.ProgressPercent(order.CurrentStatus),
		Timeline:            make([]TimelineEntry, 0, len(order.StatusHistory)),
		Items:               make([]ItemLine, 0, len(order.Items)),
		Total:               orders.FormatMoney(order.TotalAmount),
		DeliveryAddress:     order.DeliveryAddress,
		SpecialInstructions: order.SpecialInstructions,
		TrackingNumber:      order.TrackingNumber,
		GeneratedAt:         now,
	}

	if latest, ok := order.LatestEvent(); ok {
		view.StatusDescription = latest.Description
	}

	last := len(order.StatusHistory) - 1
	for i, event := range order.StatusHistory {
		local := event.Timestamp.In(now.Location())
		view.Timeline = append(view.Timeline, TimelineEntry{
			Status:      event.Status,
			Label:       event.Status.Label(),
			Description: event.Description,
			Time:        orders.TimeOfDay{Hour: local.Hour(), Minute: local.Minute()}.Format12h(),
			Completed:   i < last,
			Current:     i == last,
		})
	}

	if order.Driver != nil {
		driver := *order.Driver
		view.Driver = &driver
	}

	for _, item := range order.Items {
		lineTotal, err := item.LineTotal()
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", item.ID, err)
		}
		view.Items = append(view.Items, ItemLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: orders.FormatMoney(item.Price),
			LineTotal: orders.FormatMoney(lineTotal),
		})
	}

	return view, nil
}
