package model

type DeliveryStatus string

const (
	DeliveryStatusAvailable DeliveryStatus = "Available"
	DeliveryStatusBusy      DeliveryStatus = "Busy"
	DeliveryStatusOffline   DeliveryStatus = "Offline"
)

// Blocks currently served. Enforced only when onboarding delivery staff,
// orders may carry any normalized cafeteria id.
var KnownBlocks = []string{"mblock", "ubblock"}

type DeliveryPerson struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	Username       string         `json:"username"`
	Password       string         `json:"-"`
	Status         DeliveryStatus `json:"status"`
	Block          string         `json:"block"`
	AssignedOrders []int64        `json:"assigned_orders"`
}

type AddDeliveryPersonDTO struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Username string `json:"username"`
	Password string `json:"password"`
	Block    string `json:"block"`
}

type DeliveryLoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}
