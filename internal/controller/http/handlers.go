package http

import (
	"net/http"

	"github.com/Sahill13/backendhost/internal/model"
	"github.com/Sahill13/backendhost/pgk/auth"
)

func (c *Controller) principal(w http.ResponseWriter, r *http.Request) *model.TokenInfo {
	info := auth.GetTokenInfo[model.TokenInfo](r)
	if info == nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return nil
	}

	return info
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RegisterDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	resp, apiErr := c.service.Register(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, resp, http.StatusOK)
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	resp, apiErr := c.service.Login(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, resp, http.StatusOK)
}

func (c *Controller) FetchBalance(w http.ResponseWriter, r *http.Request) {
	info := c.principal(w, r)
	if info == nil {
		return
	}

	balance, apiErr := c.service.FetchBalance(r.Context(), info.ID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, balance, http.StatusOK)
}

func (c *Controller) AddBalance(w http.ResponseWriter, r *http.Request) {
	info := c.principal(w, r)
	if info == nil {
		return
	}

	body, err := readBody[model.AddCoinsDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	balance, apiErr := c.service.AddBalance(r.Context(), info.ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, balance, http.StatusOK)
}

func (c *Controller) RedeemBalance(w http.ResponseWriter, r *http.Request) {
	info := c.principal(w, r)
	if info == nil {
		return
	}

	body, err := readBody[model.RedeemCoinsDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	balance, apiErr := c.service.RedeemBalance(r.Context(), info.ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, balance, http.StatusOK)
}

func (c *Controller) AdminLogin(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	resp, apiErr := c.service.AdminLogin(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, resp, http.StatusOK)
}

func (c *Controller) AddAdmin(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.AddAdminDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.AddAdmin(r.Context(), body); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) Cafeterias(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.lg, c.service.Cafeterias(), http.StatusOK)
}

func (c *Controller) AddFood(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.AddFoodDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	food, apiErr := c.service.AddFood(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, food, http.StatusCreated)
}

func (c *Controller) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, apiErr := c.service.ListFoods(r.Context(), r.URL.Query().Get("cafeteriaId"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, foods, http.StatusOK)
}

func (c *Controller) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	info := c.principal(w, r)
	if info == nil {
		return
	}

	body, err := readBody[model.PlaceOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	resp, apiErr := c.service.PlaceOrder(r.Context(), info.ID, body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, resp, http.StatusOK)
}

func (c *Controller) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, model.ErrOrderNotFoundMessage, http.StatusNotFound)
		return
	}

	resp, apiErr := c.service.ApproveOrder(r.Context(), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, resp, http.StatusOK)
}

func (c *Controller) RejectOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, model.ErrOrderNotFoundMessage, http.StatusNotFound)
		return
	}

	if apiErr := c.service.RejectOrder(r.Context(), orderID); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, model.ErrOrderNotFoundMessage, http.StatusNotFound)
		return
	}

	if apiErr := c.service.CompleteOrder(r.Context(), orderID); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.UpdateStatusDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.UpdateStatus(r.Context(), body); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.VerifyPaymentDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.VerifyPayment(r.Context(), body); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, model.ErrOrderNotFoundMessage, http.StatusNotFound)
		return
	}

	order, apiErr := c.service.GetOrder(r.Context(), orderID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, order, http.StatusOK)
}

func (c *Controller) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.ListOrdersByCafeteria(r.Context(), r.URL.Query().Get("cafeteriaId"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, orders, http.StatusOK)
}

func (c *Controller) ListPendingOrders(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.ListPendingOrders(r.Context(), r.URL.Query().Get("cafeteriaId"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, orders, http.StatusOK)
}

func (c *Controller) ListDeliveryReadyOrders(w http.ResponseWriter, r *http.Request) {
	info := c.principal(w, r)
	if info == nil {
		return
	}

	block := r.URL.Query().Get("block")
	if block == "" {
		block = info.Block
	}

	orders, apiErr := c.service.ListDeliveryReadyOrders(r.Context(), block)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, orders, http.StatusOK)
}

func (c *Controller) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	info := c.principal(w, r)
	if info == nil {
		return
	}

	orders, apiErr := c.service.ListUserOrders(r.Context(), info.ID)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, orders, http.StatusOK)
}

func (c *Controller) AddDeliveryPerson(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.AddDeliveryPersonDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	person, apiErr := c.service.AddDeliveryPerson(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, person, http.StatusOK)
}

func (c *Controller) DeliveryLogin(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.DeliveryLoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	resp, apiErr := c.service.DeliveryLogin(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, resp, http.StatusOK)
}

func (c *Controller) RefreshDeliveryToken(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.RefreshTokenDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	resp, apiErr := c.service.RefreshDeliveryToken(body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, resp, http.StatusOK)
}

func (c *Controller) AssignDelivery(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.AssignDeliveryDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, apiErr := c.service.AssignDelivery(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, order, http.StatusOK)
}

func (c *Controller) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	info := c.principal(w, r)
	if info == nil {
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		http.Error(w, model.ErrOrderNotFoundMessage, http.StatusNotFound)
		return
	}

	body, err := readBody[model.ConfirmDeliveryDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.ConfirmDelivery(r.Context(), orderID, info.ID, body); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}
