package model

import (
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusApproved       OrderStatus = "approved"
	OrderStatusRejected       OrderStatus = "rejected"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusProcessing     OrderStatus = "Food Processing"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

type OrderType string

const (
	OrderTypeDelivery OrderType = "Delivery"
	OrderTypeTakeaway OrderType = "Takeaway"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type OrderItem struct {
	FoodID   int64  `json:"food_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID                 int64           `json:"id"`
	Number             int64           `json:"order_number"`
	UserID             int64           `json:"-"`
	Items              []OrderItem     `json:"items"`
	Amount             float64         `json:"amount"`
	Address            json.RawMessage `json:"address,omitempty"`
	CafeteriaID        string          `json:"cafeteria_id"`
	Status             OrderStatus     `json:"status"`
	OrderType          OrderType       `json:"order_type"`
	PickupTime         *time.Time      `json:"pickup_time,omitempty"`
	Payment            bool            `json:"payment"`
	PaymentStatus      PaymentStatus   `json:"payment_status"`
	SessionURL         string          `json:"session_url,omitempty"`
	ProcessorOrderID   string          `json:"processor_order_id,omitempty"`
	ProcessorPaymentID string          `json:"-"`
	ProcessorSignature string          `json:"-"`
	RedeemedSuperCoins int64           `json:"redeemed_super_coins"`
	DeliveryPersonID   *int64          `json:"delivery_person,omitempty"`
	Date               time.Time       `json:"date"`
	DeliveredAt        *time.Time      `json:"delivered_at,omitempty"`
}

type PlaceOrderDTO struct {
	Items              []OrderItem     `json:"items"`
	Amount             float64         `json:"amount"`
	Address            json.RawMessage `json:"address"`
	CafeteriaID        string          `json:"cafeteria_id"`
	RedeemedSuperCoins int64           `json:"redeemed_super_coins"`
	OrderType          OrderType       `json:"order_type"`
}

type PlaceOrderResponse struct {
	OrderID         int64   `json:"order_id"`
	OrderNumber     int64   `json:"order_number"`
	DiscountApplied int64   `json:"discount_applied"`
	FinalAmount     float64 `json:"final_amount"`
}

type ApproveOrderResponse struct {
	Status           OrderStatus `json:"status"`
	ProcessorOrderID string      `json:"processor_order_id"`
	SessionURL       string      `json:"session_url"`
	Amount           float64     `json:"amount"`
	Currency         string      `json:"currency"`
}

// VerifyPaymentDTO is the asynchronous callback body from the payment processor.
type VerifyPaymentDTO struct {
	OrderID            int64  `json:"order_id"`
	ProcessorOrderID   string `json:"processor_order_id"`
	ProcessorPaymentID string `json:"processor_payment_id"`
	Signature          string `json:"signature"`
}

type UpdateStatusDTO struct {
	OrderID int64       `json:"order_id"`
	Status  OrderStatus `json:"status"`
}

type AssignDeliveryDTO struct {
	OrderID int64 `json:"order_id"`
}

type ConfirmDeliveryDTO struct {
	SecurityCode string `json:"security_code"`
	UserID       int64  `json:"user_id"`
}

type GetOrdersResponse = []Order
