package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/maison-aurelle/storefront/docs" // Импорт сгенерированных файлов
	"github.com/maison-aurelle/storefront/internal/usecase"
	"github.com/maison-aurelle/storefront/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases — набор юзкейсов, обслуживаемых маршрутами v1.
type UseCases struct {
	Catalog   usecase.CatalogUC
	Cart      usecase.CartUC
	Checkout  usecase.CheckoutUC
	Favorites usecase.FavoritesUC
	Profile   usecase.ProfileUC
	Session   usecase.SessionUC
}

func (r *Router) Init(ucs UseCases) {
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", sessionHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(ucs.Catalog, r.logger)
		sessionHandler := NewSessionHandler(ucs.Session, r.logger)
		cartHandler := NewCartHandler(ucs.Cart, r.logger)
		checkoutHandler := NewCheckoutHandler(ucs.Checkout, r.logger)
		favoritesHandler := NewFavoritesHandler(ucs.Favorites, r.logger)
		profileHandler := NewProfileHandler(ucs.Profile, r.logger)
		dashboardHandler := NewDashboardHandler(ucs.Catalog, ucs.Checkout, r.logger)

		registerPublicRoutes(v1, catalogHandler, sessionHandler)
		registerSessionRoutes(v1, ucs.Session, r.logger, cartHandler, checkoutHandler, favoritesHandler, profileHandler, catalogHandler)
		registerDashboardRoutes(v1, ucs.Session, r.logger, dashboardHandler)
	})
}

func registerPublicRoutes(router chi.Router, catalogHandler *CatalogHandler, sessionHandler *SessionHandler) {
	router.Get("/products", catalogHandler.listProducts)
	router.Get("/products/{id}", catalogHandler.getProduct)

	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/login", sessionHandler.login)
		auth.Post("/register", sessionHandler.register)
		auth.Post("/logout", sessionHandler.logout)
	})
}

func registerSessionRoutes(router chi.Router, sessionUC usecase.SessionUC, logger logger.Logger,
	cartHandler *CartHandler, checkoutHandler *CheckoutHandler,
	favoritesHandler *FavoritesHandler, profileHandler *ProfileHandler,
	catalogHandler *CatalogHandler) {
	router.Group(func(private chi.Router) {
		private.Use(SessionMiddleware(sessionUC, logger))

		private.Route("/cart", func(cart chi.Router) {
			cart.Get("/", cartHandler.getCart)
			cart.Post("/", cartHandler.addLine)
			cart.Patch("/items/{index}", cartHandler.updateQuantity)
			cart.Delete("/items/{index}", cartHandler.removeLine)
			cart.Post("/coupon", cartHandler.applyCoupon)
		})

		private.Get("/favorites", favoritesHandler.list)
		private.Post("/favorites/{productID}", favoritesHandler.toggle)

		private.Get("/profile", profileHandler.getProfile)
		private.Put("/profile", profileHandler.updateProfile)

		private.Post("/checkout", checkoutHandler.placeOrder)
		private.Get("/checkout/preview", checkoutHandler.preview)
		private.Get("/orders", checkoutHandler.listOrders)
		private.Post("/orders/{id}/reorder", checkoutHandler.reorder)

		private.Post("/products/{id}/reviews", catalogHandler.createReview)
	})
}

func registerDashboardRoutes(router chi.Router, sessionUC usecase.SessionUC, logger logger.Logger,
	dashboardHandler *DashboardHandler) {
	router.Route("/dashboard", func(dashboard chi.Router) {
		dashboard.Use(SessionMiddleware(sessionUC, logger))
		dashboard.Use(RequireAgent)

		dashboard.Get("/orders", dashboardHandler.listOrders)
		dashboard.Get("/products", dashboardHandler.listProducts)
		dashboard.Post("/products", dashboardHandler.createProduct)
		dashboard.Put("/products/{id}", dashboardHandler.updateProduct)
		dashboard.Delete("/products/{id}", dashboardHandler.archiveProduct)
	})
}
