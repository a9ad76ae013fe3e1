package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/babitas-kitchen/storefront/internal/config"
	"github.com/babitas-kitchen/storefront/internal/intro"
	"github.com/babitas-kitchen/storefront/internal/middleware"
	"github.com/babitas-kitchen/storefront/internal/service"
	"github.com/babitas-kitchen/storefront/internal/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDeps are the collaborators the HTTP surface is built from
type RouterDeps struct {
	Config         *config.Config
	Logger         *slog.Logger
	Sessions       *session.Store
	ProductService *service.ProductService
	CartService    *service.CartService
	Promo          promoValidator
	IntroSteps     []intro.Step
}

// NewRouter wires middleware and routes
func NewRouter(d RouterDeps) http.Handler {
	log := d.Logger

	healthHandler := NewHealthHandler(log, d.Sessions)
	productHandler := NewProductHandler(d.ProductService, log)
	cartHandler := NewCartHandler(d.CartService, log)
	storefrontHandler := NewStorefrontHandler(d.CartService, log)
	checkoutHandler := NewCheckoutHandler(log)
	introHandler := NewIntroHandler(d.IntroSteps, log)
	promoHandler := NewPromoHandler(d.Promo)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.HeaderAPIKey, session.HeaderSessionID},
		ExposedHeaders:   []string{session.HeaderSessionID},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints are session-free
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/category", productHandler.ListCategories)
		r.Get("/intro", introHandler.Stream)

		r.Get("/promo/{promoCode}", promoHandler.ValidatePromo)
		r.With(middleware.APIKeyAuth(d.Config.Auth)).Get("/promo/stats", promoHandler.GetStats)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(d.Sessions))

			r.Get("/storefront", storefrontHandler.GetStorefront)
			r.Put("/session/category", storefrontHandler.SelectCategory)
			r.Get("/notifications", storefrontHandler.ListNotifications)

			r.Get("/cart", cartHandler.GetCart)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{productId}", cartHandler.UpdateItem)
			r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)

			r.Get("/checkout", checkoutHandler.GetCheckout)
			r.Put("/checkout", checkoutHandler.SaveDraft)
			r.Post("/checkout", checkoutHandler.Submit)
		})
	})

	return r
}
