package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Maetry/website/config"
	_ "github.com/Maetry/website/docs" // Swagger docs
	"github.com/Maetry/website/handler"
	appLogger "github.com/Maetry/website/logger"
	"github.com/Maetry/website/middleware"
	redisClient "github.com/Maetry/website/redis"
	"github.com/Maetry/website/shortlink"
)

// @title Maetry Website Edge API
// @version 1.0
// @description Edge service for the Maetry marketing site: attribution cookies, locale routing, short link resolution and booking API proxy.

// @contact.name Maetry
// @contact.url https://maetry.com

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Booking
// @tag.description Proxied booking operations against the Maetry platform API

// @tag.name Links
// @tag.description Short link resolution and click registration

// @tag.name Tracking
// @tag.description Visitor attribution

// @tag.name System
// @tag.description Health checks and system metrics

func main() {
	// Load configuration
	cfg := config.MustLoadConfig()

	// Initialize logger
	appLogger.Initialize(cfg.WebServer.Production)
	log.Info().Msg("Configuration loaded successfully")

	// Initialize Redis client; the service degrades to local-only caching
	// and in-memory bot counters when Redis is down.
	rdb := redisClient.NewClient(cfg.Redis, false)

	// Initialize the two-tier link cache
	linkCache, err := shortlink.NewCache(cfg.Cache, rdb)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize link cache")
	}

	// Short link backend client and resolver
	linkClient := shortlink.NewClient(cfg.Backend.APIURL, time.Duration(cfg.Backend.RequestTimeout)*time.Second)
	resolver := shortlink.NewResolver(linkClient, linkCache)

	// Handlers
	proxy := handler.NewProxy(cfg)
	linkPage := handler.NewLinkPage(resolver)
	qr := handler.NewQR(linkClient, linkCache, cfg.Shortlink.Host)
	system := handler.NewSystem(rdb, linkCache)
	site := handler.NewSite()

	// Middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	botProtection := middleware.NewBotProtection(cfg.Security.BotMaxRequestsPerMinute, cfg.Security.BotDetectionEnabled, rdb)
	adminAuth := middleware.NewAdminAuth(cfg.Admin.APIKey, cfg.Admin.AuthEnabled)
	edge := middleware.NewEdgeRouter(cfg.Shortlink.Host, cfg.Cookies.LocaleMaxAge, cfg.Cookies.TrackingMaxAge, cfg.WebServer.Production)

	// Set up router
	r := mux.NewRouter()

	// System routes
	r.HandleFunc("/health", system.HealthCheck).Methods("GET")
	r.Handle("/cache/metrics", adminAuth.Protect(http.HandlerFunc(system.CacheMetrics))).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	r.HandleFunc("/.well-known/apple-app-site-association", site.AppleAppSiteAssociation).Methods("GET")

	// API routes proxied to the platform backend
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/booking/appointment/{appointmentId}", proxy.GetAppointment).Methods("GET")
	api.HandleFunc("/booking/salon/{salonId}/appointment/{appointmentId}", proxy.GetSalonAppointment).Methods("GET")
	api.HandleFunc("/booking/salon/{salonId}/appointment", proxy.CreateAppointment).Methods("POST")
	api.HandleFunc("/booking/salon/{salonId}/procedures", proxy.GetProcedures).Methods("GET")
	api.HandleFunc("/booking/salon/{salonId}/search-slots", proxy.SearchSlots).Methods("POST")
	api.Handle("/clicks/{linkId}", botProtection.Protect(http.HandlerFunc(proxy.RegisterClick))).Methods("POST")
	api.HandleFunc("/fingerprint/{linkId}", proxy.ForwardFingerprint).Methods("POST")
	api.HandleFunc("/links/{linkId}", proxy.GetLink).Methods("GET")
	api.HandleFunc("/marketing/campaigns/by-link/{linkId}", proxy.GetCampaignByLink).Methods("GET")
	api.HandleFunc("/wallet/apple", proxy.WalletApple).Methods("GET")
	api.HandleFunc("/wallet/google", proxy.WalletGoogle).Methods("GET")
	api.HandleFunc("/qr/{linkId}", qr.Generate).Methods("GET")
	api.HandleFunc("/tracking", handler.GetTracking).Methods("GET")

	// Localized pages. The edge router has already normalized every page
	// request onto a locale-prefixed path by the time it reaches the mux.
	r.Handle("/{locale:en|ru|es}/link/{nanoId}", botProtection.Protect(http.HandlerFunc(linkPage.Resolve))).Methods("GET")
	r.HandleFunc("/{locale:en|ru|es}", site.Shell).Methods("GET")
	r.HandleFunc("/{locale:en|ru|es}/{page:.*}", site.Shell).Methods("GET")

	// The edge router rewrites short-link-host requests and redirects bare
	// paths, so it must wrap the mux rather than run as mux middleware.
	chain := middleware.CORS(
		middleware.RequestID(
			middleware.RequestLogger(
				rateLimiter.Limit(
					edge.Handle(r)))))

	// Configure HTTP server
	serverAddress := fmt.Sprintf("%s:%s", cfg.WebServer.IP, cfg.WebServer.Port)
	server := &http.Server{
		Addr:         serverAddress,
		Handler:      chain,
		ReadTimeout:  time.Duration(cfg.WebServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WebServer.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("address", serverAddress).
			Str("shortlink_host", cfg.Shortlink.Host).
			Msg("Starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.WebServer.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	linkCache.Close()

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}

	log.Info().Msg("Server stopped gracefully")
}
