package service

import (
	"math"
	"regexp"

	"github.com/Sahill13/backendhost/internal/model"
)

const (
	minPassLen = 8
	maxPassLen = 64

	// redemption never exceeds 10% of the pre-discount amount
	maxDiscountShare = 0.1
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validatePassword(password string) bool {
	return len(password) >= minPassLen && len(password) <= maxPassLen
}

func validatePlaceOrder(input model.PlaceOrderDTO) string {
	if input.CafeteriaID == "" {
		return model.ErrMissingFieldsMessage
	}
	if input.OrderType != model.OrderTypeTakeaway && len(input.Address) == 0 {
		return model.ErrMissingFieldsMessage
	}
	if len(input.Items) == 0 {
		return model.ErrInvalidItemsMessage
	}
	if input.Amount <= 0 || math.IsNaN(input.Amount) {
		return model.ErrInvalidAmountMessage
	}

	return ""
}

// discountFor caps the requested redemption at 10% of the pre-discount
// amount and at the available balance, never below zero.
func discountFor(requested int64, amount float64, balance int64) int64 {
	if requested <= 0 {
		return 0
	}

	discount := requested
	if limit := int64(math.Floor(amount * maxDiscountShare)); discount > limit {
		discount = limit
	}
	if discount > balance {
		discount = balance
	}
	if discount < 0 {
		discount = 0
	}

	return discount
}
