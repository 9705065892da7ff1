package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Sahill13/backendhost/internal/model"
	"github.com/Sahill13/backendhost/internal/repository/pg"
	"github.com/Sahill13/backendhost/pgk/auth"
	"github.com/Sahill13/backendhost/pgk/password"
)

func (s *Service) AddDeliveryPerson(ctx context.Context, input model.AddDeliveryPersonDTO) (*model.DeliveryPerson, *model.APIError) {
	if input.Name == "" || input.Phone == "" || input.Username == "" || input.Password == "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrMissingFieldsMessage}
	}
	if !model.IsKnownBlock(input.Block) {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidBlockMessage}
	}

	hash, err := password.HashPassword(input.Password, s.passCost)
	if err != nil {
		return nil, internalError()
	}

	person := model.DeliveryPerson{
		Name:     input.Name,
		Phone:    input.Phone,
		Username: strings.ToLower(input.Username),
		Password: hash,
		Status:   model.DeliveryStatusAvailable,
		Block:    input.Block,
	}

	id, err := s.storage.CreateDeliveryPerson(ctx, person)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrDuplicateIdentity.Error()}
		}
		return nil, internalError()
	}

	person.ID = id
	person.Password = ""
	person.AssignedOrders = []int64{}

	return &person, nil
}

// DeliveryLogin issues a short-lived access token plus a long-lived refresh
// token, both carrying the courier's block claim.
func (s *Service) DeliveryLogin(ctx context.Context, input model.DeliveryLoginDTO) (*model.AuthResponse, *model.APIError) {
	person, err := s.storage.GetDeliveryPersonByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidCredentialsMessage}
		}
		return nil, internalError()
	}

	if !password.CheckPasswordHash(input.Password, person.Password) {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidCredentialsMessage}
	}

	info := model.TokenInfo{ID: person.ID, Role: model.RoleDelivery, Block: person.Block}

	token, err := auth.GenerateBearerToken(info, s.deliveryAccessExp, s.tokenSecret)
	if err != nil {
		return nil, internalError()
	}

	refreshToken, err := auth.GenerateBearerToken(info, s.deliveryRefreshExp, s.tokenSecret)
	if err != nil {
		return nil, internalError()
	}

	return &model.AuthResponse{
		Token:        token,
		RefreshToken: refreshToken,
		Block:        person.Block,
	}, nil
}

// RefreshDeliveryToken exchanges a valid refresh token for a fresh
// short-lived access token.
func (s *Service) RefreshDeliveryToken(input model.RefreshTokenDTO) (*model.AuthResponse, *model.APIError) {
	if input.RefreshToken == "" {
		return nil, &model.APIError{Code: http.StatusUnauthorized, Message: "refresh token required"}
	}

	info, err := auth.VerifyJWTBearerToken[model.TokenInfo](input.RefreshToken, s.tokenSecret)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrTokenExpiredMessage}
		}
		return nil, &model.APIError{Code: http.StatusUnauthorized, Message: "invalid refresh token"}
	}
	if info.Role != model.RoleDelivery {
		return nil, &model.APIError{Code: http.StatusUnauthorized, Message: "invalid refresh token"}
	}

	token, err := auth.GenerateBearerToken(*info, s.deliveryAccessExp, s.tokenSecret)
	if err != nil {
		return nil, internalError()
	}

	return &model.AuthResponse{Token: token, Block: info.Block}, nil
}

func (s *Service) AssignDelivery(ctx context.Context, input model.AssignDeliveryDTO) (*model.Order, *model.APIError) {
	order, _, err := s.storage.AssignDeliveryPerson(ctx, input.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		case errors.Is(err, model.ErrNoCapacity):
			return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrNoDeliveryPersonMessage}
		case errors.Is(err, model.ErrAlreadyAssigned):
			return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrAlreadyAssignedMessage}
		}
		return nil, internalError()
	}

	return order, nil
}

// ConfirmDelivery finishes the lifecycle: the courier submits the code known
// to the receiving user, and a match flips the order to Delivered and frees
// the courier.
func (s *Service) ConfirmDelivery(ctx context.Context, orderID, confirmingPersonID int64, input model.ConfirmDeliveryDTO) *model.APIError {
	if input.SecurityCode == "" || input.UserID == 0 {
		return &model.APIError{Code: http.StatusBadRequest, Message: "security code and user id are required"}
	}

	order, err := s.storage.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		}
		return internalError()
	}

	if !strings.EqualFold(string(order.Status), string(model.OrderStatusOutForDelivery)) {
		return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrNotOutForDeliveryMessage}
	}

	user, err := s.storage.GetUserByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.APIError{Code: http.StatusNotFound, Message: model.ErrUserNotFoundMessage}
		}
		return internalError()
	}

	if user.SecurityCode != input.SecurityCode {
		return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrIncorrectCodeMessage}
	}

	if _, err := s.storage.ConfirmDelivery(ctx, orderID, confirmingPersonID); err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
		case errors.Is(err, model.ErrStateConflict):
			return &model.APIError{Code: http.StatusBadRequest, Message: model.ErrNotOutForDeliveryMessage}
		}
		return internalError()
	}

	return nil
}
