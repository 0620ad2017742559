package handler

import (
	"net/http"

	"github.com/AswiniParameswaran/GreenCart-System/internal/address"
	"github.com/AswiniParameswaran/GreenCart-System/internal/category"
	"github.com/AswiniParameswaran/GreenCart-System/internal/logger"
	appmw "github.com/AswiniParameswaran/GreenCart-System/internal/middleware"
	"github.com/AswiniParameswaran/GreenCart-System/internal/order"
	"github.com/AswiniParameswaran/GreenCart-System/internal/product"
	"github.com/AswiniParameswaran/GreenCart-System/internal/user"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Services bundles the domain services the router exposes.
type Services struct {
	User     user.Service
	Category category.Service
	Product  product.Service
	Address  address.Service
	Order    order.Service
}

func NewRouter(svcs Services) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(appmw.RateLimitMiddleware)
	r.Use(appmw.AuthMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	authH := NewAuthHandler(svcs.User)
	userH := NewUserHandler(svcs.User, svcs.Address, svcs.Order)
	categoryH := NewCategoryHandler(svcs.Category)
	productH := NewProductHandler(svcs.Product)
	addressH := NewAddressHandler(svcs.Address)
	orderH := NewOrderHandler(svcs.Order)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
	})

	r.Route("/user", func(r chi.Router) {
		r.Get("/all", userH.GetAllUsers)
		r.Get("/my-info", userH.GetMyInfo)
	})

	r.Route("/category", func(r chi.Router) {
		r.Post("/create", categoryH.Create)
		r.Put("/update/{id}", categoryH.Update)
		r.Delete("/delete/{id}", categoryH.Delete)
		r.Get("/all", categoryH.GetAll)
		r.Get("/{id}", categoryH.GetByID)
	})

	r.Route("/product", func(r chi.Router) {
		r.Post("/create", productH.Create)
		r.Put("/update/{id}", productH.Update)
		r.Delete("/delete/{id}", productH.Delete)
		r.Get("/all", productH.GetAll)
		r.Get("/category/{id}", productH.GetByCategory)
		r.Get("/search", productH.Search)
		r.Get("/{id}", productH.GetByID)
	})

	r.Post("/address/save", addressH.Save)

	r.Post("/order/place", orderH.Place)

	r.Route("/order-item", func(r chi.Router) {
		r.Put("/{id}/status", orderH.UpdateItemStatus)
		r.Get("/filter", orderH.Filter)
	})

	return r
}
