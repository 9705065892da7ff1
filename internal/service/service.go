package service

import (
	"context"
	"net/http"
	"time"

	"github.com/Sahill13/backendhost/internal/model"
	"github.com/Sahill13/backendhost/internal/payment"
)

type StorageRepo interface {
	CreateUser(ctx context.Context, user model.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetSuperCoins(ctx context.Context, userID int64) (int64, error)
	AddSuperCoins(ctx context.Context, userID, coins int64) (int64, error)
	RedeemSuperCoins(ctx context.Context, userID, amount int64) (int64, error)

	CreateAdmin(ctx context.Context, admin model.Admin) (int64, error)
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)

	CreateDeliveryPerson(ctx context.Context, person model.DeliveryPerson) (int64, error)
	GetDeliveryPersonByUsername(ctx context.Context, username string) (*model.DeliveryPerson, error)
	AssignDeliveryPerson(ctx context.Context, orderID int64) (*model.Order, *model.DeliveryPerson, error)
	ConfirmDelivery(ctx context.Context, orderID, confirmingPersonID int64) (*model.Order, error)

	CreateOrder(ctx context.Context, order model.Order, discount int64) (*model.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	ApproveOrder(ctx context.Context, orderID int64, processorOrderID, sessionURL string) error
	RejectOrder(ctx context.Context, orderID int64) error
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	MarkOrderPaid(ctx context.Context, orderID int64, processorPaymentID, signature string) (int64, error)
	ListPaidOrdersByCafeteria(ctx context.Context, cafeteriaID string) ([]model.Order, error)
	ListPendingOrdersByCafeteria(ctx context.Context, cafeteriaID string) ([]model.Order, error)
	ListDeliveryReadyOrders(ctx context.Context, block string) ([]model.Order, error)
	ListUserPaidOrders(ctx context.Context, userID int64) ([]model.Order, error)

	CreateFood(ctx context.Context, food model.Food) (int64, error)
	ListFoods(ctx context.Context, cafeteriaID string) ([]model.Food, error)
}

type PaymentProcessor interface {
	CreateSession(ctx context.Context, amount float64, currency, receipt string) (*payment.Session, error)
}

type Service struct {
	storage   StorageRepo
	processor PaymentProcessor

	passCost      int
	tokenSecret   string
	paymentSecret string

	userTokenExp       time.Duration
	adminTokenExp      time.Duration
	deliveryAccessExp  time.Duration
	deliveryRefreshExp time.Duration
}

func New(
	storage StorageRepo,
	processor PaymentProcessor,
	passCost int,
	tokenSecret string,
	paymentSecret string,
	userTokenExp time.Duration,
	adminTokenExp time.Duration,
	deliveryAccessExp time.Duration,
	deliveryRefreshExp time.Duration,
) *Service {
	return &Service{
		storage:   storage,
		processor: processor,

		passCost:      passCost,
		tokenSecret:   tokenSecret,
		paymentSecret: paymentSecret,

		userTokenExp:       userTokenExp,
		adminTokenExp:      adminTokenExp,
		deliveryAccessExp:  deliveryAccessExp,
		deliveryRefreshExp: deliveryRefreshExp,
	}
}

func internalError() *model.APIError {
	return &model.APIError{
		Code:    http.StatusInternalServerError,
		Message: model.ErrInternalServerMessage,
	}
}
