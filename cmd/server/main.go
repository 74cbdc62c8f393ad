package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/barkada-pos/api/internal/catalog"
	"github.com/barkada-pos/api/internal/config"
	"github.com/barkada-pos/api/internal/enum"
	"github.com/barkada-pos/api/internal/gateway"
	"github.com/barkada-pos/api/internal/inventory"
	"github.com/barkada-pos/api/internal/notify"
	"github.com/barkada-pos/api/internal/pos"
	"github.com/barkada-pos/api/internal/queue"
	"github.com/barkada-pos/api/internal/reservation"
	"github.com/barkada-pos/api/internal/router"
	"github.com/barkada-pos/api/internal/staff"
	"github.com/barkada-pos/api/internal/voucher"
	"github.com/barkada-pos/api/internal/ws"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	verifier, err := gateway.NewStaticVerifier(gateway.DemoAccounts())
	if err != nil {
		log.Fatalf("failed to build staff directory: %v", err)
	}

	cat := catalog.New(catalog.DemoMenu(), catalog.DemoTables())
	tickets := queue.NewStore()
	sessions := pos.NewManager(cat, gateway.NewQueueGateway(tickets))
	notifications := notify.NewStore()
	performance := staff.NewStore()
	seedPerformance(performance, verifier.Staff())

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, router.Deps{
		Catalog:       cat,
		Sessions:      sessions,
		Queue:         tickets,
		Verifier:      verifier,
		Inventory:     inventory.NewStore(inventory.DemoItems(time.Now())),
		Reservations:  reservation.NewStore(),
		Vouchers:      voucher.NewStore(),
		Staff:         performance,
		Notifications: notifications,
		Hub:           hub,
	})

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}

// seedPerformance gives each demo staff member a week of shift history so
// the manager dashboard has something to show on a fresh start.
func seedPerformance(s *staff.Store, members []gateway.Staff) {
	shifts := map[string][]staff.Metrics{
		enum.RoleWaiter: {
			{AverageServiceTime: 5.5, OrdersProcessed: 18},
			{AverageServiceTime: 6.2, OrdersProcessed: 14},
			{AverageServiceTime: 4.8, OrdersProcessed: 22},
			{AverageServiceTime: 4.1, OrdersProcessed: 26},
			{AverageServiceTime: 3.9, OrdersProcessed: 28},
			{AverageServiceTime: 3.7, OrdersProcessed: 31},
		},
		enum.RoleBartender: {
			{OrdersProcessed: 35, TotalSales: decimal.NewFromInt(12400)},
			{OrdersProcessed: 41, TotalSales: decimal.NewFromInt(15800)},
			{OrdersProcessed: 38, TotalSales: decimal.NewFromInt(14100)},
			{OrdersProcessed: 44, TotalSales: decimal.NewFromInt(16900)},
			{OrdersProcessed: 39, TotalSales: decimal.NewFromInt(14700)},
			{OrdersProcessed: 46, TotalSales: decimal.NewFromInt(17500)},
		},
		enum.RoleKitchen: {
			{AverageServiceTime: 11.5, OrdersProcessed: 24},
			{AverageServiceTime: 12.8, OrdersProcessed: 21},
			{AverageServiceTime: 10.9, OrdersProcessed: 27},
			{AverageServiceTime: 9.4, OrdersProcessed: 29},
			{AverageServiceTime: 8.8, OrdersProcessed: 32},
			{AverageServiceTime: 7.9, OrdersProcessed: 34},
		},
		enum.RoleSecurity: {
			{TicketsScanned: 38, IncidentsLogged: 2},
			{TicketsScanned: 45, IncidentsLogged: 1},
			{TicketsScanned: 52, IncidentsLogged: 0},
			{TicketsScanned: 48, IncidentsLogged: 3},
			{TicketsScanned: 55, IncidentsLogged: 1},
			{TicketsScanned: 61, IncidentsLogged: 0},
		},
	}

	for _, m := range members {
		for _, metrics := range shifts[m.Role] {
			s.Add(m.ID.String(), m.Role, metrics)
		}
	}
}
