package http

import (
	"context"

	"github.com/Sahill13/backendhost/internal/model"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input model.RegisterDTO) (*model.AuthResponse, *model.APIError)
	Login(ctx context.Context, input model.LoginDTO) (*model.AuthResponse, *model.APIError)
	FetchBalance(ctx context.Context, userID int64) (*model.Balance, *model.APIError)
	AddBalance(ctx context.Context, userID int64, input model.AddCoinsDTO) (*model.Balance, *model.APIError)
	RedeemBalance(ctx context.Context, userID int64, input model.RedeemCoinsDTO) (*model.Balance, *model.APIError)

	AdminLogin(ctx context.Context, input model.LoginDTO) (*model.AuthResponse, *model.APIError)
	AddAdmin(ctx context.Context, input model.AddAdminDTO) *model.APIError
	Cafeterias() []model.Cafeteria
	AddFood(ctx context.Context, input model.AddFoodDTO) (*model.Food, *model.APIError)
	ListFoods(ctx context.Context, cafeteriaID string) ([]model.Food, *model.APIError)

	PlaceOrder(ctx context.Context, userID int64, input model.PlaceOrderDTO) (*model.PlaceOrderResponse, *model.APIError)
	ApproveOrder(ctx context.Context, orderID int64) (*model.ApproveOrderResponse, *model.APIError)
	RejectOrder(ctx context.Context, orderID int64) *model.APIError
	CompleteOrder(ctx context.Context, orderID int64) *model.APIError
	UpdateStatus(ctx context.Context, input model.UpdateStatusDTO) *model.APIError
	VerifyPayment(ctx context.Context, input model.VerifyPaymentDTO) *model.APIError
	GetOrder(ctx context.Context, orderID int64) (*model.Order, *model.APIError)
	ListOrdersByCafeteria(ctx context.Context, cafeteriaID string) ([]model.Order, *model.APIError)
	ListPendingOrders(ctx context.Context, cafeteriaID string) ([]model.Order, *model.APIError)
	ListDeliveryReadyOrders(ctx context.Context, block string) ([]model.Order, *model.APIError)
	ListUserOrders(ctx context.Context, userID int64) ([]model.Order, *model.APIError)

	AddDeliveryPerson(ctx context.Context, input model.AddDeliveryPersonDTO) (*model.DeliveryPerson, *model.APIError)
	DeliveryLogin(ctx context.Context, input model.DeliveryLoginDTO) (*model.AuthResponse, *model.APIError)
	RefreshDeliveryToken(input model.RefreshTokenDTO) (*model.AuthResponse, *model.APIError)
	AssignDelivery(ctx context.Context, input model.AssignDeliveryDTO) (*model.Order, *model.APIError)
	ConfirmDelivery(ctx context.Context, orderID, confirmingPersonID int64, input model.ConfirmDeliveryDTO) *model.APIError
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}
