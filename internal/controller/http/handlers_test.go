package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sahill13/backendhost/internal/model"
	"github.com/Sahill13/backendhost/pgk/auth"

	service "github.com/Sahill13/backendhost/internal/service/mocks"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// withOrderID injects a chi route param the way the router would.
func withOrderID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestController_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	input := model.RegisterDTO{
		Name:     "Asha",
		Email:    "asha@campus.edu",
		Password: "testpass123",
	}

	mockSvc.EXPECT().
		Register(gomock.Any(), input).
		Return(&model.AuthResponse{Token: "Bearer token123", User: &model.User{ID: 123}}, nil).
		Times(1)

	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.Register(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer token123", resp.Token)
	assert.Equal(t, int64(123), resp.User.ID)
}

func TestController_Register_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	input := model.RegisterDTO{Name: "Asha", Email: "asha@campus.edu", Password: "testpass123"}

	mockSvc.EXPECT().
		Register(gomock.Any(), input).
		Return(nil, &model.APIError{Code: http.StatusConflict, Message: "user already exists"})

	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "user already exists")
}

func TestController_Register_BadBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	controller.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_FetchBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	mockSvc.EXPECT().
		FetchBalance(gomock.Any(), int64(7)).
		Return(&model.Balance{SuperCoins: 42}, nil)

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/user/supercoins",
		&model.TokenInfo{ID: 7, Role: model.RoleUser}, nil)
	w := httptest.NewRecorder()

	controller.FetchBalance(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"super_coins":42`)
}

func TestController_FetchBalance_NoPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/user/supercoins", nil)
	w := httptest.NewRecorder()

	controller.FetchBalance(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestController_PlaceOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	input := model.PlaceOrderDTO{
		Items:       []model.OrderItem{{FoodID: 1, Name: "dosa", Quantity: 1}},
		Amount:      500,
		Address:     json.RawMessage(`{"hostel":"A"}`),
		CafeteriaID: "mblock",
	}

	mockSvc.EXPECT().
		PlaceOrder(gomock.Any(), int64(7), gomock.Any()).
		Return(&model.PlaceOrderResponse{OrderID: 55, OrderNumber: 1001, FinalAmount: 500}, nil)

	body, _ := json.Marshal(input)
	req := auth.NewAuthenticatedRequest(http.MethodPost, "/api/order/place",
		&model.TokenInfo{ID: 7, Role: model.RoleUser}, bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.PlaceOrder(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order_number":1001`)
}

func TestController_ApproveOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	mockSvc.EXPECT().
		ApproveOrder(gomock.Any(), int64(55)).
		Return(&model.ApproveOrderResponse{
			Status:           model.OrderStatusApproved,
			ProcessorOrderID: "order_proc_1",
			SessionURL:       "/payment?order_id=order_proc_1",
		}, nil)

	req := withOrderID(httptest.NewRequest(http.MethodPatch, "/api/order/55/approve", nil), "55")
	w := httptest.NewRecorder()

	controller.ApproveOrder(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order_proc_1")
}

func TestController_ApproveOrder_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	req := withOrderID(httptest.NewRequest(http.MethodPatch, "/api/order/abc/approve", nil), "abc")
	w := httptest.NewRecorder()

	controller.ApproveOrder(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestController_ApproveOrder_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	mockSvc.EXPECT().
		ApproveOrder(gomock.Any(), int64(55)).
		Return(nil, &model.APIError{Code: http.StatusConflict, Message: model.ErrStateConflict.Error()})

	req := withOrderID(httptest.NewRequest(http.MethodPatch, "/api/order/55/approve", nil), "55")
	w := httptest.NewRecorder()

	controller.ApproveOrder(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestController_VerifyPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	input := model.VerifyPaymentDTO{
		OrderID:            55,
		ProcessorOrderID:   "order_proc_1",
		ProcessorPaymentID: "pay_1",
		Signature:          "deadbeef",
	}

	mockSvc.EXPECT().VerifyPayment(gomock.Any(), input).Return(nil)

	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/api/order/verify", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.VerifyPayment(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_VerifyPayment_BadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	mockSvc.EXPECT().
		VerifyPayment(gomock.Any(), gomock.Any()).
		Return(&model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidSignatureMessage})

	body, _ := json.Marshal(model.VerifyPaymentDTO{OrderID: 55, Signature: "forged"})
	req := httptest.NewRequest(http.MethodPost, "/api/order/verify", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.VerifyPayment(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrInvalidSignatureMessage)
}

func TestController_ListDeliveryReadyOrders_BlockFromToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	mockSvc.EXPECT().
		ListDeliveryReadyOrders(gomock.Any(), "mblock").
		Return([]model.Order{{ID: 1}}, nil)

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/order/delivery/orders",
		&model.TokenInfo{ID: 9, Role: model.RoleDelivery, Block: "mblock"}, nil)
	w := httptest.NewRecorder()

	controller.ListDeliveryReadyOrders(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_ListDeliveryReadyOrders_QueryOverridesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	mockSvc.EXPECT().
		ListDeliveryReadyOrders(gomock.Any(), "ubblock").
		Return([]model.Order{}, nil)

	req := auth.NewAuthenticatedRequest(http.MethodGet, "/api/order/delivery/orders?block=ubblock",
		&model.TokenInfo{ID: 9, Role: model.RoleDelivery, Block: "mblock"}, nil)
	w := httptest.NewRecorder()

	controller.ListDeliveryReadyOrders(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_AssignDelivery_NoCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	input := model.AssignDeliveryDTO{OrderID: 55}

	mockSvc.EXPECT().
		AssignDelivery(gomock.Any(), input).
		Return(nil, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrNoDeliveryPersonMessage})

	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/api/delivery/assign", bytes.NewReader(body))
	w := httptest.NewRecorder()

	controller.AssignDelivery(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrNoDeliveryPersonMessage)
}

func TestController_ConfirmDelivery_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	input := model.ConfirmDeliveryDTO{SecurityCode: "4321", UserID: 7}

	// the confirming courier comes from the token, not the body
	mockSvc.EXPECT().
		ConfirmDelivery(gomock.Any(), int64(55), int64(9), input).
		Return(nil)

	body, _ := json.Marshal(input)
	req := auth.NewAuthenticatedRequest(http.MethodPost, "/api/delivery/deliver/55",
		&model.TokenInfo{ID: 9, Role: model.RoleDelivery, Block: "mblock"}, bytes.NewReader(body))
	req = withOrderID(req, "55")
	w := httptest.NewRecorder()

	controller.ConfirmDelivery(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestController_ConfirmDelivery_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	input := model.ConfirmDeliveryDTO{SecurityCode: "0000", UserID: 7}

	mockSvc.EXPECT().
		ConfirmDelivery(gomock.Any(), int64(55), int64(9), input).
		Return(&model.APIError{Code: http.StatusBadRequest, Message: model.ErrIncorrectCodeMessage})

	body, _ := json.Marshal(input)
	req := auth.NewAuthenticatedRequest(http.MethodPost, "/api/delivery/deliver/55",
		&model.TokenInfo{ID: 9, Role: model.RoleDelivery, Block: "mblock"}, bytes.NewReader(body))
	req = withOrderID(req, "55")
	w := httptest.NewRecorder()

	controller.ConfirmDelivery(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), model.ErrIncorrectCodeMessage)
}

func TestController_Cafeterias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	mockSvc.EXPECT().
		Cafeterias().
		Return([]model.Cafeteria{{ID: "mblock", Name: "mblock"}})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/cafeterias", nil)
	w := httptest.NewRecorder()

	controller.Cafeterias(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mblock")
}

func TestController_GetOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := service.NewMockService(ctrl)
	controller := New(mockSvc, testLogger())

	mockSvc.EXPECT().
		GetOrder(gomock.Any(), int64(404)).
		Return(nil, &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage})

	req := withOrderID(httptest.NewRequest(http.MethodGet, "/api/order/order/404", nil), "404")
	w := httptest.NewRecorder()

	controller.GetOrder(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestController_Ping(t *testing.T) {
	controller := New(nil, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	controller.Ping(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
