package routes

import (
	"net/http"

	"github.com/medilinkx/benefits-backend/internal/api/handlers"
	"github.com/medilinkx/benefits-backend/internal/api/middleware"
	"github.com/medilinkx/benefits-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	hospitalHandler    *handlers.HospitalHandler
	schemeHandler      *handlers.SchemeHandler
	healthIDHandler    *handlers.HealthIDHandler
	voucherHandler     *handlers.VoucherHandler
	transactionHandler *handlers.TransactionHandler
	walletHandler      *handlers.WalletHandler
	locationHandler    *handlers.PreferredLocationHandler
	geolocationHandler *handlers.GeolocationHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	hospitalHandler *handlers.HospitalHandler,
	schemeHandler *handlers.SchemeHandler,
	healthIDHandler *handlers.HealthIDHandler,
	voucherHandler *handlers.VoucherHandler,
	transactionHandler *handlers.TransactionHandler,
	walletHandler *handlers.WalletHandler,
	locationHandler *handlers.PreferredLocationHandler,
	geolocationHandler *handlers.GeolocationHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		hospitalHandler:    hospitalHandler,
		schemeHandler:      schemeHandler,
		healthIDHandler:    healthIDHandler,
		voucherHandler:     voucherHandler,
		transactionHandler: transactionHandler,
		walletHandler:      walletHandler,
		locationHandler:    locationHandler,
		geolocationHandler: geolocationHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Hospital endpoints
	r.mux.HandleFunc("GET /api/hospitals", r.hospitalHandler.ListHospitals)
	r.mux.HandleFunc("POST /api/hospitals", r.hospitalHandler.CreateHospital)
	r.mux.HandleFunc("GET /api/hospitals/search", r.hospitalHandler.SearchHospitals)
	r.mux.HandleFunc("GET /api/hospitals/{id}", r.hospitalHandler.GetHospital)
	r.mux.HandleFunc("POST /api/hospitals/rank", r.hospitalHandler.RankHospitals)

	// Scheme and scoring endpoints
	r.mux.HandleFunc("GET /api/schemes", r.schemeHandler.ListSchemes)
	r.mux.HandleFunc("GET /api/schemes/{id}", r.schemeHandler.GetScheme)
	r.mux.HandleFunc("POST /api/schemes/score", r.schemeHandler.ScoreSchemes)
	r.mux.HandleFunc("POST /api/recommendations", r.schemeHandler.Recommend)
	r.mux.HandleFunc("GET /api/recommendations", r.schemeHandler.LatestRecommendation)

	// Health identity endpoints
	r.mux.HandleFunc("POST /api/health-ids", r.healthIDHandler.CreateHealthID)
	r.mux.HandleFunc("GET /api/health-ids", r.healthIDHandler.LookupHealthID)
	r.mux.HandleFunc("GET /api/health-ids/{id}", r.healthIDHandler.GetHealthID)

	// Voucher endpoints
	r.mux.HandleFunc("POST /api/vouchers", r.voucherHandler.CreateVoucher)
	r.mux.HandleFunc("GET /api/vouchers", r.voucherHandler.ListVouchers)
	r.mux.HandleFunc("GET /api/vouchers/{id}", r.voucherHandler.GetVoucher)

	// Transaction endpoints
	r.mux.HandleFunc("POST /api/transactions", r.transactionHandler.Redeem)
	r.mux.HandleFunc("GET /api/transactions", r.transactionHandler.ListTransactions)
	r.mux.HandleFunc("GET /api/transactions/count", r.transactionHandler.CountTransactions)
	r.mux.HandleFunc("GET /api/transactions/{id}/receipt", r.transactionHandler.GetReceipt)

	// Wallet endpoints
	r.mux.HandleFunc("GET /api/wallet", r.walletHandler.GetWallet)
	r.mux.HandleFunc("GET /api/wallet/balance", r.walletHandler.GetBalance)

	// Preferred location endpoints
	r.mux.HandleFunc("GET /api/preferred-locations", r.locationHandler.ListLocations)
	r.mux.HandleFunc("POST /api/preferred-locations", r.locationHandler.AddLocation)
	r.mux.HandleFunc("DELETE /api/preferred-locations", r.locationHandler.RemoveLocation)

	// Geolocation endpoints
	r.mux.HandleFunc("GET /api/geocode", r.geolocationHandler.Geocode)
	r.mux.HandleFunc("GET /api/reverse-geocode", r.geolocationHandler.ReverseGeocode)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
