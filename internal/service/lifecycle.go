package service

import "github.com/Sahill13/backendhost/internal/model"

// CanTransition encodes the order state machine:
//
//	pending -> approved -> completed -> Out for Delivery -> Delivered
//
// with rejected reachable from pending/approved and "Food Processing" a
// kitchen-side marker reachable from any non-terminal state, independent of
// payment. Delivered and rejected are terminal.
func CanTransition(from, to model.OrderStatus) bool {
	if isTerminal(from) {
		return false
	}

	if to == model.OrderStatusProcessing {
		return true
	}

	switch from {
	case model.OrderStatusPending:
		return to == model.OrderStatusApproved || to == model.OrderStatusRejected
	case model.OrderStatusApproved:
		return to == model.OrderStatusCompleted || to == model.OrderStatusRejected
	case model.OrderStatusCompleted, model.OrderStatusProcessing:
		return to == model.OrderStatusOutForDelivery
	case model.OrderStatusOutForDelivery:
		return to == model.OrderStatusDelivered
	}

	return false
}

func isTerminal(status model.OrderStatus) bool {
	return status == model.OrderStatusDelivered || status == model.OrderStatusRejected
}
