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

func (s *Service) AdminLogin(ctx context.Context, input model.LoginDTO) (*model.AuthResponse, *model.APIError) {
	if input.Email == "" || input.Password == "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: "email and password are required"}
	}

	admin, err := s.storage.GetAdminByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidCredentialsMessage}
		}
		return nil, internalError()
	}

	if !password.CheckPasswordHash(input.Password, admin.Password) {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidCredentialsMessage}
	}

	if strings.TrimSpace(admin.CafeteriaID) == "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: "admin is not assigned to a cafeteria"}
	}

	cafeteriaID := model.NormalizeBlock(admin.CafeteriaID)

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:    admin.ID,
		Role:  model.RoleAdmin,
		Block: cafeteriaID,
	}, s.adminTokenExp, s.tokenSecret)
	if err != nil {
		return nil, internalError()
	}

	return &model.AuthResponse{Token: token, CafeteriaID: cafeteriaID}, nil
}

func (s *Service) AddAdmin(ctx context.Context, input model.AddAdminDTO) *model.APIError {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.CafeteriaID == "" {
		return &model.APIError{Code: http.StatusBadRequest, Message: "all fields are required"}
	}

	hash, err := password.HashPassword(input.Password, s.passCost)
	if err != nil {
		return internalError()
	}

	_, err = s.storage.CreateAdmin(ctx, model.Admin{
		Name:        input.Name,
		Email:       input.Email,
		Password:    hash,
		CafeteriaID: model.NormalizeBlock(input.CafeteriaID),
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return &model.APIError{Code: http.StatusBadRequest, Message: "admin already exists"}
		}
		return internalError()
	}

	return nil
}

// Cafeterias returns the static list of blocks currently served.
func (s *Service) Cafeterias() []model.Cafeteria {
	cafeterias := make([]model.Cafeteria, 0, len(model.KnownBlocks))
	for _, block := range model.KnownBlocks {
		cafeterias = append(cafeterias, model.Cafeteria{ID: block, Name: block})
	}

	return cafeterias
}

func (s *Service) AddFood(ctx context.Context, input model.AddFoodDTO) (*model.Food, *model.APIError) {
	if input.Name == "" || input.CafeteriaID == "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrMissingFieldsMessage}
	}
	if input.Price <= 0 {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: "invalid food price"}
	}

	food := model.Food{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		CafeteriaID: model.NormalizeBlock(input.CafeteriaID),
	}

	id, err := s.storage.CreateFood(ctx, food)
	if err != nil {
		return nil, internalError()
	}

	food.ID = id
	return &food, nil
}

func (s *Service) ListFoods(ctx context.Context, cafeteriaID string) ([]model.Food, *model.APIError) {
	if cafeteriaID == "" {
		return nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrCafeteriaRequiredMessage}
	}

	foods, err := s.storage.ListFoods(ctx, model.NormalizeBlock(cafeteriaID))
	if err != nil {
		return nil, internalError()
	}

	return foods, nil
}
