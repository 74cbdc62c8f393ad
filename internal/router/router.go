package router

import (
	"log"
	"net/http"

	"github.com/barkada-pos/api/internal/authz"
	"github.com/barkada-pos/api/internal/config"
	"github.com/barkada-pos/api/internal/gateway"
	"github.com/barkada-pos/api/internal/handler"
	"github.com/barkada-pos/api/internal/inventory"
	mw "github.com/barkada-pos/api/internal/middleware"
	"github.com/barkada-pos/api/internal/notify"
	"github.com/barkada-pos/api/internal/pos"
	"github.com/barkada-pos/api/internal/queue"
	"github.com/barkada-pos/api/internal/reservation"
	"github.com/barkada-pos/api/internal/staff"
	"github.com/barkada-pos/api/internal/voucher"
	"github.com/barkada-pos/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/barkada-pos/api/internal/catalog"
)

// Deps carries the stores and gateways the routes are wired over.
type Deps struct {
	Catalog       catalog.Provider
	Sessions      *pos.Manager
	Queue         *queue.Store
	Verifier      gateway.CredentialVerifier
	Inventory     *inventory.Store
	Reservations  *reservation.Store
	Vouchers      *voucher.Store
	Staff         *staff.Store
	Notifications *notify.Store
	Hub           *ws.Hub
}

// New creates a Chi router with all application routes wired up.
// Authentication and capability gates are applied per route group.
func New(cfg *config.Config, d Deps) chi.Router {
	r := chi.NewRouter()

	// Standard middleware. NotifyPanics sits inside Recoverer so panics
	// land in the developer feed before the 500 is written.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(mw.NotifyPanics(d.Notifications))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(d.Verifier, d.Sessions, d.Notifications, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/stations/{station}/tickets", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(d.Hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		// Any authenticated role
		r.Post("/auth/logout", authHandler.Logout)
		notificationHandler := handler.NewNotificationHandler(d.Notifications)
		notificationHandler.RegisterRoutes(r)

		// Menu and floor plan
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapMenuView, authz.CapPOSOperate))
			menuHandler := handler.NewMenuHandler(d.Catalog)
			menuHandler.RegisterRoutes(r)
		})

		// POS order screen
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapPOSOperate))
			posHandler := handler.NewPOSHandler(d.Sessions, d.Queue, d.Hub)
			posHandler.RegisterRoutes(r)
		})

		// Station queue
		queueHandler := handler.NewQueueHandler(d.Queue, d.Hub, d.Notifications)
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapQueueView))
			r.Get("/kitchen/orders", queueHandler.ListTickets)
		})
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapQueueAdvance))
			r.Patch("/kitchen/orders/{id}/advance", queueHandler.AdvanceTicket)
		})

		// Inventory
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapInventoryView))
			inventoryHandler := handler.NewInventoryHandler(d.Inventory, d.Notifications)
			inventoryHandler.RegisterRoutes(r)
		})

		// Reservations
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapReservationsManage))
			reservationHandler := handler.NewReservationHandler(d.Reservations, d.Notifications)
			reservationHandler.RegisterRoutes(r)
		})

		// Sales reports
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapReportsView))
			reportsHandler := handler.NewReportsHandler(d.Queue)
			reportsHandler.RegisterRoutes(r)
		})

		// Vouchers: issuing and redeeming are separate capabilities
		voucherHandler := handler.NewVoucherHandler(d.Vouchers, d.Notifications)
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapVouchersManage))
			voucherHandler.RegisterManageRoutes(r)
		})
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapVouchersRedeem))
			voucherHandler.RegisterRedeemRoutes(r)
		})

		// Staff performance
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireCapability(authz.CapStaffEvaluate))
			staffHandler := handler.NewStaffHandler(d.Staff)
			staffHandler.RegisterRoutes(r)
		})
	})

	log.Println("Router initialized with all handlers")
	return r
}
