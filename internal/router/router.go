package router

import (
	"net/http"

	"scan-kart/internal/handler"
	"scan-kart/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
	Auth     *handler.AuthHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, session middleware.LoginChecker, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/signup", h.Auth.Signup)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/scan/{barcode}", h.Product.Scan)

	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("DELETE /api/cart", h.Cart.Clear)
	mux.HandleFunc("POST /api/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{productId}", h.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{productId}", h.Cart.RemoveItem)

	mux.HandleFunc("POST /api/checkout", h.Checkout.Start)
	mux.HandleFunc("GET /api/checkout", h.Checkout.Status)
	mux.HandleFunc("POST /api/checkout/cancel", h.Checkout.Cancel)
	mux.HandleFunc("POST /api/checkout/ack", h.Checkout.Acknowledge)

	mux.HandleFunc("GET /api/orders", h.Order.List)

	// Apply middleware in order: CorrelationID -> Recovery -> Logging -> CORS -> RequireLogin
	var handler http.Handler = mux
	handler = middleware.RequireLogin(session, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.CorrelationID(handler)

	return handler
}
