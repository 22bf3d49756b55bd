package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/netandpro/booking-api/internal/cleanup"
	"github.com/netandpro/booking-api/internal/config"
	"github.com/netandpro/booking-api/internal/database"
	"github.com/netandpro/booking-api/internal/handler"
	"github.com/netandpro/booking-api/internal/middleware"
	"github.com/netandpro/booking-api/internal/queue"
	"github.com/netandpro/booking-api/internal/repository"
	"github.com/netandpro/booking-api/internal/router"
)

func main() {
	// A missing .env is fine in production where the environment is real.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the rate limiters and the public
	// response cache silently disable themselves.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and caching disabled")
	}
	cache := middleware.PublicCache(config.LoadCacheConfig(), rdb)

	events := repository.NewEventRepo(db)
	locations := repository.NewLocationRepo(db)
	testimonials := repository.NewTestimonialRepo(db)
	stats := repository.NewStatsRepo(db)
	users := repository.NewUserRepo(db)
	contacts := repository.NewContactRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	router.RegisterRoutes(e)
	router.RegisterEvents(e, handler.NewEventHandler(events), cfg.JWTSecret, cache)
	router.RegisterLocations(e, handler.NewLocationHandler(locations), cache)
	router.RegisterTestimonials(e, handler.NewTestimonialHandler(testimonials), cache)
	router.RegisterStats(e, handler.NewStatsHandler(stats), cfg.JWTSecret)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), cfg.JWTSecret,
		middleware.FixedWindow(config.LoginRateLimit(), rdb))
	router.RegisterContact(e, handler.NewContactHandler(contacts),
		middleware.FixedWindow(config.ContactRateLimit(), rdb))

	// Recurring testimonial purge with an explicit lifecycle: started here,
	// stopped on shutdown, never as an import side effect.
	sched, err := cleanup.NewScheduler(cfg.PurgeSpec, testimonials)
	if err != nil {
		log.Fatalf("invalid purge schedule %q: %v", cfg.PurgeSpec, err)
	}
	sched.Start()

	// Drain the notification queues into the local log until the real
	// mailer takes over.
	go func() {
		if err := queue.StartNotificationConsumer(); err != nil {
			log.Printf("notification consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	// Block until SIGINT/SIGTERM, then shut pieces down in order.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("signal %s received, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	sched.Stop()
}
