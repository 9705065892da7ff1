package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sahill13/backendhost/internal/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from model.OrderStatus
		to   model.OrderStatus
		want bool
	}{
		{model.OrderStatusPending, model.OrderStatusApproved, true},
		{model.OrderStatusPending, model.OrderStatusRejected, true},
		{model.OrderStatusPending, model.OrderStatusCompleted, false},
		{model.OrderStatusPending, model.OrderStatusOutForDelivery, false},
		{model.OrderStatusPending, model.OrderStatusDelivered, false},

		{model.OrderStatusApproved, model.OrderStatusCompleted, true},
		{model.OrderStatusApproved, model.OrderStatusRejected, true},
		{model.OrderStatusApproved, model.OrderStatusApproved, false},
		{model.OrderStatusApproved, model.OrderStatusOutForDelivery, false},

		{model.OrderStatusCompleted, model.OrderStatusOutForDelivery, true},
		{model.OrderStatusCompleted, model.OrderStatusRejected, false},
		{model.OrderStatusCompleted, model.OrderStatusDelivered, false},

		{model.OrderStatusProcessing, model.OrderStatusOutForDelivery, true},

		{model.OrderStatusOutForDelivery, model.OrderStatusDelivered, true},
		{model.OrderStatusOutForDelivery, model.OrderStatusRejected, false},

		// terminal states never move
		{model.OrderStatusDelivered, model.OrderStatusPending, false},
		{model.OrderStatusDelivered, model.OrderStatusProcessing, false},
		{model.OrderStatusRejected, model.OrderStatusApproved, false},
		{model.OrderStatusRejected, model.OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s->%s", tt.from, tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanTransition_ProcessingFromAnyNonTerminal(t *testing.T) {
	nonTerminal := []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusApproved,
		model.OrderStatusCompleted,
		model.OrderStatusOutForDelivery,
	}

	for _, from := range nonTerminal {
		t.Run(string(from), func(t *testing.T) {
			assert.True(t, CanTransition(from, model.OrderStatusProcessing))
		})
	}
}
