package adapters

import (
	"time"

	"order-tracker/internal/features/orders/domain"

	"github.com/govalues/decimal"
)

// DefaultOrders returns the sample dataset served when no other store is configured.
// Each call returns fresh values.
func DefaultOrders() []*domain.Order {
	return []*domain.Order{
		{
			OrderID:         "ORD-2024-001234",
			CustomerName:    "Sarah Johnson",
			DeliveryAddress: "123 Maple Street, Apt 4B, San Francisco, CA 94102",
			DeliveryWindow: domain.DeliveryWindow{
				Start: domain.MustParseTimeOfDay("17:00"),
				End:   domain.MustParseTimeOfDay("20:00"),
			},
			EstimatedDelivery: domain.MustParseTimeOfDay("18:30"),
			CurrentStatus:     domain.StatusOutForDelivery,
			StatusHistory: []domain.StatusEvent{
				{ID: "1", Status: domain.StatusPreparing, Timestamp: utc(2024, 1, 15, 14, 0), Description: "Order received and meal prep started"},
				{ID: "2", Status: domain.StatusReady, Timestamp: utc(2024, 1, 15, 16, 15), Description: "Meals prepared and packaged"},
				{ID: "3", Status: domain.StatusOutForDelivery, Timestamp: utc(2024, 1, 15, 16, 45), Description: "Driver picked up your order"},
			},
			Items: []domain.OrderItem{
				{ID: "1", Name: "Mediterranean Chicken Bowl", Quantity: 2, Price: decimal.MustParse("24.99")},
				{ID: "2", Name: "Quinoa Power Salad", Quantity: 1, Price: decimal.MustParse("12.99")},
				{ID: "3", Name: "Protein Smoothie Pack", Quantity: 1, Price: decimal.MustParse("8.99")},
			},
			TotalAmount: decimal.MustParse("71.96"),
			Driver: &domain.DriverInfo{
				Name:    "Mike Rodriguez",
				Phone:   "+1 (555) 123-4567",
				Vehicle: "White Toyota Prius",
				Rating:  4.8,
				Photo:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			},
			SpecialInstructions: "Please ring doorbell twice. Leave at front door if no answer.",
			TrackingNumber:      "TRK789456123",
		},
		{
			OrderID:         "ORD-2024-001235",
			CustomerName:    "John Smith",
			DeliveryAddress: "456 Oak Avenue, Unit 12, Los Angeles, CA 90210",
			DeliveryWindow: domain.DeliveryWindow{
				Start: domain.MustParseTimeOfDay("19:00"),
				End:   domain.MustParseTimeOfDay("22:00"),
			},
			EstimatedDelivery: domain.MustParseTimeOfDay("20:15"),
			CurrentStatus:     domain.StatusPreparing,
			StatusHistory: []domain.StatusEvent{
				{ID: "1", Status: domain.StatusPreparing, Timestamp: utc(2024, 1, 15, 18, 0), Description: "Order received and meal prep started"},
			},
			Items: []domain.OrderItem{
				{ID: "1", Name: "Grilled Salmon with Vegetables", Quantity: 1, Price: decimal.MustParse("18.99")},
				{ID: "2", Name: "Caesar Salad", Quantity: 1, Price: decimal.MustParse("9.99")},
				{ID: "3", Name: "Fresh Fruit Bowl", Quantity: 1, Price: decimal.MustParse("6.99")},
			},
			TotalAmount:         decimal.MustParse("35.97"),
			SpecialInstructions: "Please call when arriving. Apartment building requires buzzer code: 1234",
			TrackingNumber:      "TRK789456124",
		},
		{
			OrderID:         "ORD-2024-001236",
			CustomerName:    "Emily Davis",
			DeliveryAddress: "789 Pine Street, Floor 3, Seattle, WA 98101",
			DeliveryWindow: domain.DeliveryWindow{
				Start: domain.MustParseTimeOfDay("12:00"),
				End:   domain.MustParseTimeOfDay("15:00"),
			},
			EstimatedDelivery: domain.MustParseTimeOfDay("13:30"),
			CurrentStatus:     domain.StatusDelivered,
			StatusHistory: []domain.StatusEvent{
				{ID: "1", Status: domain.StatusPreparing, Timestamp: utc(2024, 1, 15, 10, 0), Description: "Order received and meal prep started"},
				{ID: "2", Status: domain.StatusReady, Timestamp: utc(2024, 1, 15, 11, 30), Description: "Meals prepared and packaged"},
				{ID: "3", Status: domain.StatusOutForDelivery, Timestamp: utc(2024, 1, 15, 12, 0), Description: "Driver picked up your order"},
				{ID: "4", Status: domain.StatusDelivered, Timestamp: utc(2024, 1, 15, 13, 25), Description: "Order delivered successfully"},
			},
			Items: []domain.OrderItem{
				{ID: "1", Name: "Veggie Buddha Bowl", Quantity: 1, Price: decimal.MustParse("14.99")},
				{ID: "2", Name: "Green Smoothie", Quantity: 2, Price: decimal.MustParse("11.98")},
			},
			TotalAmount: decimal.MustParse("38.95"),
			Driver: &domain.DriverInfo{
				Name:    "Lisa Chen",
				Phone:   "+1 (555) 987-6543",
				Vehicle: "Blue Honda Civic",
				Rating:  4.9,
				Photo:   "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			},
			SpecialInstructions: "Leave at reception desk if no answer.",
			TrackingNumber:      "TRK789456125",
		},
	}
}

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
