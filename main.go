package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/routes"
	"hotel-booking/services"
	"hotel-booking/utils"
)

// writeTimeoutFor keeps the response timeout above the configured payment
// processing delay, so a long CHECKOUT_PROCESSING_DELAY cannot cut off every
// checkout response mid-flight.
func writeTimeoutFor(delay time.Duration) time.Duration {
	const floor = 20 * time.Second
	if t := delay + 10*time.Second; t > floor {
		return t
	}
	return floor
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and booking ledger migrated.")

	// Simulated payment processing delay
	delay := 2 * time.Second
	if raw := utils.EnvOrDefault("CHECKOUT_PROCESSING_DELAY", ""); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("❌ Invalid CHECKOUT_PROCESSING_DELAY %q: %v", raw, err)
		}
		delay = parsed
	}

	// Initialize services
	roomService := services.NewRoomService()
	pricingService := services.NewPricingService(roomService)
	bookingStore := services.NewLedgerStore(db)
	checkoutService := services.NewCheckoutService(pricingService, bookingStore, delay)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	bookingController := controllers.NewBookingController(bookingStore)

	// Build router
	router := routes.SetupRouter(roomController, checkoutController, bookingController)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts; WriteTimeout must cover the simulated payment delay
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeoutFor(delay),
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
