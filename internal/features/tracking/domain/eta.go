package domain

import (
	"fmt"
	"time"

	orders "order-tracker/internal/features/orders/domain"
)

// ArrivingSoon is shown once the estimated delivery time has passed.
const ArrivingSoon = "Arriving soon!"

const (
	msPerHour   = int64(time.Hour / time.Millisecond)
	msPerMinute = int64(time.Minute / time.Millisecond)
)

// TimeUntilDelivery renders the time left until estimated on the same calendar day as now.
//
// The estimate is anchored to now's date and location; an estimate earlier than now
// reports ArrivingSoon and never rolls over to the next day. Otherwise the remaining
// milliseconds are floored to whole hours and minutes: "1h 30m", "45m", "0m".
func TimeUntilDelivery(estimated orders.TimeOfDay, now time.Time) string {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), estimated.Hour, estimated.Minute, 0, 0, now.Location())

	if candidate.Before(now) {
		return ArrivingSoon
	}

	diff := candidate.Sub(now).Milliseconds()
	hoursLeft := diff / msPerHour
	minutesLeft := (diff % msPerHour) / msPerMinute

	if hoursLeft > 0 {
		return fmt.Sprintf("%dh %dm", hoursLeft, minutesLeft)
	}
	return fmt.Sprintf("%dm", minutesLeft)
}

// ETAUpdate is one re-evaluation of the ETA published to live subscribers.
type ETAUpdate struct {
	// OrderID identifies the order the update belongs to.
	OrderID string `json:"order_id"`
	// TimeUntilDelivery is the rendered remaining time.
	TimeUntilDelivery string `json:"time_until_delivery"`
	// At is the time sample the value was computed from.
	At time.Time `json:"at"`
}
