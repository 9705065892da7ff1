package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage     = "internal server error"
	ErrInvalidCredentialsMessage = "invalid credentials"
	ErrMissingFieldsMessage      = "missing required fields"
	ErrInvalidItemsMessage       = "invalid items list"
	ErrInvalidAmountMessage      = "invalid order amount"
	ErrOrderNotFoundMessage      = "order not found"
	ErrUserNotFoundMessage       = "user not found"
	ErrCafeteriaRequiredMessage  = "cafeteria id is required"
	ErrBlockRequiredMessage      = "block is required"
	ErrInvalidBlockMessage       = "invalid block assigned"
	ErrNoDeliveryPersonMessage   = "no delivery person available"
	ErrAlreadyAssignedMessage    = "order is already assigned or delivered"
	ErrNotOutForDeliveryMessage  = "order is not out for delivery"
	ErrIncorrectCodeMessage      = "incorrect security code"
	ErrInvalidSignatureMessage   = "invalid payment signature"
	ErrNotEnoughCoinsMessage     = "not enough supercoins"
	ErrTokenExpiredMessage       = "token expired, please refresh"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrStateConflict     = errors.New("operation invalid for current order status")
	ErrAuth              = errors.New("not authorized")
	ErrTokenExpired      = errors.New("token expired")
	ErrSignatureMismatch = errors.New("payment signature mismatch")
	ErrNoCapacity        = errors.New(ErrNoDeliveryPersonMessage)
	ErrAlreadyAssigned   = errors.New(ErrAlreadyAssignedMessage)
	ErrIncorrectCode     = errors.New(ErrIncorrectCodeMessage)
	ErrInsufficientFunds = errors.New(ErrNotEnoughCoinsMessage)
	ErrInvalidAmount     = errors.New(ErrInvalidAmountMessage)
	ErrProcessor         = errors.New("payment processor request failed")
	ErrConfiguration     = errors.New("payment gateway credentials missing")
	ErrDuplicateIdentity = errors.New("username or phone already exists")
)
