package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Sahill13/backendhost/internal/model"
	"github.com/Sahill13/backendhost/internal/payment"
)

const (
	currency = "INR"

	takeawayWait = 15 * time.Minute
)

func (s *Service) PlaceOrder(ctx context.Context, userID int64, input model.PlaceOrderDTO) (*model.PlaceOrderResponse, *model.APIError) {
	if msg := validatePlaceOrder(input); msg != "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: msg}
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrUserNotFoundMessage}
		}
		return nil, internalError()
	}

	discount := discountFor(input.RedeemedSuperCoins, input.Amount, user.SuperCoins)
	discountedAmount := input.Amount - float64(discount)

	orderType := input.OrderType
	if orderType == "" {
		orderType = model.OrderTypeDelivery
	}

	var pickupTime *time.Time
	if orderType == model.OrderTypeTakeaway {
		t := time.Now().Add(takeawayWait)
		pickupTime = &t
	}

	order := model.Order{
		UserID:             userID,
		Items:              input.Items,
		Amount:             discountedAmount,
		Address:            input.Address,
		CafeteriaID:        model.NormalizeBlock(input.CafeteriaID),
		OrderType:          orderType,
		PickupTime:         pickupTime,
		RedeemedSuperCoins: discount,
	}

	created, err := s.storage.CreateOrder(ctx, order, discount)
	if err != nil {
		if errors.Is(err, model.ErrInsufficientFunds) {
			return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrNotEnoughCoinsMessage}
		}
		return nil, internalError()
	}

	return &model.PlaceOrderResponse{
		OrderID:         created.ID,
		OrderNumber:     created.Number,
		DiscountApplied: discount,
		FinalAmount:     discountedAmount,
	}, nil
}

// ApproveOrder opens a checkout session with the payment processor for the
// final payable amount and moves the order to approved. Note the payable
// amount subtracts redeemedSuperCoins from the already-discounted stored
// amount; this mirrors the long-standing billing behavior and is covered by
// tests, see DESIGN.md before changing it.
func (s *Service) ApproveOrder(ctx context.Context, orderID int64) (*model.ApproveOrderResponse, *model.APIError) {
	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		}
		return nil, internalError()
	}

	if order.Amount <= 0 {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidAmountMessage}
	}

	if !CanTransition(order.Status, model.OrderStatusApproved) {
		return nil, &model.APIError{Code: http.StatusConflict, Message: model.ErrStateConflict.Error()}
	}

	finalAmount := math.Max(order.Amount-float64(order.RedeemedSuperCoins), 0)
	if finalAmount <= 0 {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidAmountMessage}
	}

	receipt := fmt.Sprintf("rec_%d_%s", order.Number, uuid.NewString()[:8])

	session, err := s.processor.CreateSession(ctx, finalAmount, currency, receipt)
	if err != nil {
		if errors.Is(err, model.ErrConfiguration) {
			return nil, &model.APIError{Code: http.StatusInternalServerError, Message: model.ErrConfiguration.Error()}
		}
		return nil, &model.APIError{Code: http.StatusBadGateway, Message: model.ErrProcessor.Error()}
	}

	sessionURL := "/payment?order_id=" + session.ID

	if err := s.storage.ApproveOrder(ctx, orderID, session.ID, sessionURL); err != nil {
		if errors.Is(err, model.ErrStateConflict) {
			return nil, &model.APIError{Code: http.StatusConflict, Message: model.ErrStateConflict.Error()}
		}
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		}
		return nil, internalError()
	}

	return &model.ApproveOrderResponse{
		Status:           model.OrderStatusApproved,
		ProcessorOrderID: session.ID,
		SessionURL:       sessionURL,
		Amount:           finalAmount,
		Currency:         currency,
	}, nil
}

func (s *Service) RejectOrder(ctx context.Context, orderID int64) *model.APIError {
	if err := s.storage.RejectOrder(ctx, orderID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		}
		if errors.Is(err, model.ErrStateConflict) {
			return &model.APIError{Code: http.StatusConflict, Message: model.ErrStateConflict.Error()}
		}
		return internalError()
	}

	return nil
}

// CompleteOrder is the kitchen-side "complete" action, orthogonal to payment.
func (s *Service) CompleteOrder(ctx context.Context, orderID int64) *model.APIError {
	return s.UpdateStatus(ctx, model.UpdateStatusDTO{
		OrderID: orderID,
		Status:  model.OrderStatusProcessing,
	})
}

func (s *Service) UpdateStatus(ctx context.Context, input model.UpdateStatusDTO) *model.APIError {
	order, err := s.storage.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		}
		return internalError()
	}

	if !CanTransition(order.Status, input.Status) {
		return &model.APIError{Code: http.StatusConflict, Message: model.ErrStateConflict.Error()}
	}

	if err := s.storage.UpdateOrderStatus(ctx, input.OrderID, input.Status); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		}
		return internalError()
	}

	return nil
}

// VerifyPayment consumes the processor callback. The signature check is
// fatal on mismatch and never retried; on success the paid flags and the
// supercoins accrual land atomically. The storage write only fires for an
// approved, unpaid order, so replays and callbacks for rejected orders
// come back as conflicts.
func (s *Service) VerifyPayment(ctx context.Context, input model.VerifyPaymentDTO) *model.APIError {
	err := payment.VerifySignature(input.ProcessorOrderID, input.ProcessorPaymentID, input.Signature, s.paymentSecret)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrMissingFieldsMessage}
		}
		if errors.Is(err, model.ErrSignatureMismatch) {
			return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidSignatureMessage}
		}
		return internalError()
	}

	if _, err := s.storage.MarkOrderPaid(ctx, input.OrderID, input.ProcessorPaymentID, input.Signature); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		}
		if errors.Is(err, model.ErrStateConflict) {
			return &model.APIError{Code: http.StatusConflict, Message: model.ErrStateConflict.Error()}
		}
		return internalError()
	}

	return nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*model.Order, *model.APIError) {
	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		}
		return nil, internalError()
	}

	// the checkout link is only meaningful while the order awaits payment
	if order.Status != model.OrderStatusApproved {
		order.SessionURL = ""
	}

	return order, nil
}

func (s *Service) ListOrdersByCafeteria(ctx context.Context, cafeteriaID string) ([]model.Order, *model.APIError) {
	if cafeteriaID == "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrCafeteriaRequiredMessage}
	}

	orders, err := s.storage.ListPaidOrdersByCafeteria(ctx, model.NormalizeBlock(cafeteriaID))
	if err != nil {
		return nil, internalError()
	}

	return orders, nil
}

func (s *Service) ListPendingOrders(ctx context.Context, cafeteriaID string) ([]model.Order, *model.APIError) {
	if cafeteriaID == "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrCafeteriaRequiredMessage}
	}

	orders, err := s.storage.ListPendingOrdersByCafeteria(ctx, model.NormalizeBlock(cafeteriaID))
	if err != nil {
		return nil, internalError()
	}

	return orders, nil
}

func (s *Service) ListDeliveryReadyOrders(ctx context.Context, block string) ([]model.Order, *model.APIError) {
	if block == "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrBlockRequiredMessage}
	}

	orders, err := s.storage.ListDeliveryReadyOrders(ctx, model.NormalizeBlock(block))
	if err != nil {
		return nil, internalError()
	}

	return orders, nil
}

func (s *Service) ListUserOrders(ctx context.Context, userID int64) ([]model.Order, *model.APIError) {
	orders, err := s.storage.ListUserPaidOrders(ctx, userID)
	if err != nil {
		return nil, internalError()
	}

	return orders, nil
}
