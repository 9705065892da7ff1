package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"

	"github.com/Sahill13/backendhost/internal/model"
	"github.com/Sahill13/backendhost/internal/repository/pg"
	"github.com/Sahill13/backendhost/pgk/auth"
	"github.com/Sahill13/backendhost/pgk/password"
)

// 1 supercoin per 50 currency units of paid amount
const accrualRate = 50

func generateSecurityCode() string {
	return fmt.Sprintf("%04d", 1000+rand.Intn(9000))
}

func (s *Service) Register(ctx context.Context, input model.RegisterDTO) (*model.AuthResponse, *model.APIError) {
	if input.Name == "" || input.Email == "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrMissingFieldsMessage}
	}
	if !validateEmail(input.Email) {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: "please enter a valid email"}
	}
	if !validatePassword(input.Password) {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: "password should be at least 8 characters long"}
	}

	hash, err := password.HashPassword(input.Password, s.passCost)
	if err != nil {
		return nil, internalError()
	}

	user := model.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     hash,
		SecurityCode: generateSecurityCode(),
	}

	id, err := s.storage.CreateUser(ctx, user)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, &model.APIError{Code: http.StatusConflict, Message: "user already exists"}
		}
		return nil, internalError()
	}

	user.ID = id
	user.Password = ""

	token, err := auth.GenerateBearerToken(model.TokenInfo{ID: id, Role: model.RoleUser}, s.userTokenExp, s.tokenSecret)
	if err != nil {
		return nil, internalError()
	}

	return &model.AuthResponse{Token: token, User: &user}, nil
}

func (s *Service) Login(ctx context.Context, input model.LoginDTO) (*model.AuthResponse, *model.APIError) {
	user, err := s.storage.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrInvalidCredentialsMessage}
		}
		return nil, internalError()
	}

	if !password.CheckPasswordHash(input.Password, user.Password) {
		return nil, &model.APIError{Code: http.StatusUnauthorized, Message: model.ErrInvalidCredentialsMessage}
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{ID: user.ID, Role: model.RoleUser}, s.userTokenExp, s.tokenSecret)
	if err != nil {
		return nil, internalError()
	}

	user.Password = ""

	return &model.AuthResponse{Token: token, User: user}, nil
}

func (s *Service) FetchBalance(ctx context.Context, userID int64) (*model.Balance, *model.APIError) {
	coins, err := s.storage.GetSuperCoins(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrUserNotFoundMessage}
		}
		return nil, internalError()
	}

	return &model.Balance{SuperCoins: coins}, nil
}

// AddBalance credits coins for a paid amount outside the order flow
// (administrative adjustment), at the same accrual rate.
func (s *Service) AddBalance(ctx context.Context, userID int64, input model.AddCoinsDTO) (*model.Balance, *model.APIError) {
	if input.OrderAmount < 0 || math.IsNaN(input.OrderAmount) {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidAmountMessage}
	}

	earned := int64(math.Floor(input.OrderAmount / accrualRate))

	total, err := s.storage.AddSuperCoins(ctx, userID, earned)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrUserNotFoundMessage}
		}
		return nil, internalError()
	}

	return &model.Balance{SuperCoins: total}, nil
}

func (s *Service) RedeemBalance(ctx context.Context, userID int64, input model.RedeemCoinsDTO) (*model.Balance, *model.APIError) {
	if input.RedeemAmount <= 0 {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: "invalid supercoin amount"}
	}

	total, err := s.storage.RedeemSuperCoins(ctx, userID, input.RedeemAmount)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrUserNotFoundMessage}
		case errors.Is(err, model.ErrInsufficientFunds):
			return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrNotEnoughCoinsMessage}
		}
		return nil, internalError()
	}

	return &model.Balance{SuperCoins: total}, nil
}
