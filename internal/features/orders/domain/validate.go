package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidOrder wraps every violation reported by Validate.
var ErrInvalidOrder = errors.New("invalid order")

// Validate enforces the record invariants and returns the first violation found.
func (o *Order) Validate() error {
	if err := o.validate(); err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidOrder, o.OrderID, err)
	}
	return nil
}

func (o *Order) validate() error {
	if o.OrderID == "" {
		return errors.New("order id is empty")
	}

	if o.DeliveryWindow.End.Before(o.DeliveryWindow.Start) {
		return fmt.Errorf("delivery window %s ends before it starts", o.DeliveryWindow.String())
	}
	if !o.DeliveryWindow.Contains(o.EstimatedDelivery) {
		return fmt.Errorf("estimated delivery %s is outside the delivery window", o.EstimatedDelivery)
	}

	if !o.CurrentStatus.Valid() {
		return fmt.Errorf("unknown current status %q", o.CurrentStatus)
	}

	if err := o.validateHistory(); err != nil {
		return err
	}

	if err := o.validateItems(); err != nil {
		return err
	}

	if o.Driver != nil && (o.Driver.Rating < 0 || o.Driver.Rating > 5) {
		return fmt.Errorf("driver rating %.1f is outside [0, 5]", o.Driver.Rating)
	}

	return nil
}

// validateHistory checks that events follow preparing → ready → out_for_delivery → delivered
// with strictly increasing timestamps and end at CurrentStatus.
func (o *Order) validateHistory() error {
	if len(o.StatusHistory) == 0 {
		return errors.New("status history is empty")
	}

	seen := make(map[string]struct{}, len(o.StatusHistory))
	for i, event := range o.StatusHistory {
		if !event.Status.Valid() {
			return fmt.Errorf("status event %s has unknown status %q", event.ID, event.Status)
		}
		if _, dup := seen[event.ID]; dup {
			return fmt.Errorf("duplicate status event id %s", event.ID)
		}
		seen[event.ID] = struct{}{}

		if i == 0 {
			continue
		}
		prev := o.StatusHistory[i-1]
		if !event.Timestamp.After(prev.Timestamp) {
			return fmt.Errorf("status event %s is not later than event %s", event.ID, prev.ID)
		}
		if event.Status.Rank() <= prev.Status.Rank() {
			return fmt.Errorf("status %s cannot follow %s", event.Status, prev.Status)
		}
	}

	latest, _ := o.LatestEvent()
	if latest.Status != o.CurrentStatus {
		return fmt.Errorf("current status %s does not match latest event status %s", o.CurrentStatus, latest.Status)
	}
	return nil
}

func (o *Order) validateItems() error {
	if len(o.Items) == 0 {
		return errors.New("order has no items")
	}

	for _, item := range o.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("item %s has non-positive quantity %d", item.ID, item.Quantity)
		}
		if item.Price.IsNeg() {
			return fmt.Errorf("item %s has negative price %s", item.ID, item.Price)
		}
	}

	total, err := o.ComputeTotal()
	if err != nil {
		return err
	}
	if total.Cmp(o.TotalAmount) != 0 {
		return fmt.Errorf("total amount %s does not match item sum %s", o.TotalAmount, total)
	}
	return nil
}
