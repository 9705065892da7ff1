package model

import "time"

type Role string

const (
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	SecurityCode string    `json:"security_code"`
	SuperCoins   int64     `json:"super_coins"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenInfo is the claim payload carried by every bearer token. Block is
// set only for delivery sessions.
type TokenInfo struct {
	ID    int64  `json:"id"`
	Role  Role   `json:"role"`
	Block string `json:"block,omitempty"`
}

type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Block        string `json:"block,omitempty"`
	CafeteriaID  string `json:"cafeteria_id,omitempty"`
	User         *User  `json:"user,omitempty"`
}

type Balance struct {
	SuperCoins int64 `json:"super_coins"`
}

type AddCoinsDTO struct {
	OrderAmount float64 `json:"order_amount"`
}

type RedeemCoinsDTO struct {
	RedeemAmount int64 `json:"redeem_amount"`
}
