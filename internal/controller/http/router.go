package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/Sahill13/backendhost/internal/model"
	"github.com/Sahill13/backendhost/pgk/auth"
)

func requireRole(role model.Role) func(*model.TokenInfo) bool {
	return func(info *model.TokenInfo) bool {
		return info.Role == role
	}
}

func InitRoutes(r *chi.Mux, c *Controller, tokenSecret string) *chi.Mux {
	userAuth := auth.AuthBearerMiddlewareInit(tokenSecret, requireRole(model.RoleUser))
	adminAuth := auth.AuthBearerMiddlewareInit(tokenSecret, requireRole(model.RoleAdmin))
	deliveryAuth := auth.AuthBearerMiddlewareInit(tokenSecret, requireRole(model.RoleDelivery))

	r.Get("/ping", c.Ping)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", c.Register)
		r.Post("/login", c.Login)

		r.Group(func(r chi.Router) {
			r.Use(userAuth)
			r.Get("/supercoins", c.FetchBalance)
			r.Post("/addsupercoins", c.AddBalance)
			r.Post("/redeemsupercoins", c.RedeemBalance)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", c.AdminLogin)
		r.Post("/add", c.AddAdmin)
		r.Get("/cafeterias", c.Cafeterias)
	})

	r.Route("/api/food", func(r chi.Router) {
		r.Get("/list", c.ListFoods)
		r.With(adminAuth).Post("/add", c.AddFood)
	})

	r.Route("/api/order", func(r chi.Router) {
		// processor callback, authenticated by its signature
		r.Post("/verify", c.VerifyPayment)

		r.Get("/order/{orderID}", c.GetOrder)

		r.Group(func(r chi.Router) {
			r.Use(userAuth)
			r.Post("/place", c.PlaceOrder)
			r.Get("/userorders", c.ListUserOrders)
		})

		r.Group(func(r chi.Router) {
			r.Use(adminAuth)
			r.Get("/list", c.ListOrders)
			r.Get("/admin/pending", c.ListPendingOrders)
			r.Post("/status", c.UpdateStatus)
			r.Patch("/{orderID}/approve", c.ApproveOrder)
			r.Patch("/{orderID}/reject", c.RejectOrder)
			r.Patch("/{orderID}/complete", c.CompleteOrder)
		})

		r.Group(func(r chi.Router) {
			r.Use(deliveryAuth)
			r.Get("/delivery/orders", c.ListDeliveryReadyOrders)
			r.Post("/{orderID}/verify-security-code", c.ConfirmDelivery)
		})
	})

	r.Route("/api/delivery", func(r chi.Router) {
		r.Post("/login", c.DeliveryLogin)
		r.Post("/add", c.AddDeliveryPerson)
		r.Post("/refresh-token", c.RefreshDeliveryToken)

		r.Group(func(r chi.Router) {
			r.Use(deliveryAuth)
			r.Post("/assign", c.AssignDelivery)
			r.Post("/deliver/{orderID}", c.ConfirmDelivery)
		})
	})

	return r
}
