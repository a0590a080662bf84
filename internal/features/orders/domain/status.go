package domain

import "strings"

// Status is the fulfillment stage of an order.
type Status string

const (
	// StatusPreparing indicates the kitchen has started on the order.
	StatusPreparing Status = "preparing"
	// StatusReady indicates the order is packaged and waiting for a driver.
	StatusReady Status = "ready"
	// StatusOutForDelivery indicates a driver has picked the order up.
	StatusOutForDelivery Status = "out_for_delivery"
	// StatusDelivered indicates the order reached the customer.
	StatusDelivered Status = "delivered"
)

// statusProgression lists every status in fulfillment order; the index is the rank.
var statusProgression = [...]Status{
	StatusPreparing, StatusReady, StatusOutForDelivery, StatusDelivered,
}

// Rank returns the position of s in the fulfillment progression, or -1 if s is unknown.
func (s Status) Rank() int {
	for i, v := range statusProgression {
		if s == v {
			return i
		}
	}
	return -1
}

// Valid checks if the Status is one of the known values.
func (s Status) Valid() bool {
	return s.Rank() >= 0
}

// Label is the human readable form, e.g. "out for delivery".
func (s Status) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// ProgressPercent maps a status to the completion shown on the progress bar.
// Unknown statuses render as complete.
func ProgressPercent(s Status) int {
	switch s {
	case StatusPreparing:
		return 25
	case StatusReady:
		return 50
	case StatusOutForDelivery:
		return 75
	default:
		return 100
	}
}
