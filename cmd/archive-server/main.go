package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"archivehub/internal/api"
	"archivehub/internal/auth"
	"archivehub/internal/loader"
	"archivehub/internal/sponsor"
	"archivehub/internal/store"
	synchub "archivehub/internal/sync"
	"archivehub/pkg/database"
	"archivehub/pkg/utils"
)

func main() {
	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}
	repo := store.NewRepo(db)

	feeds := utils.LoadFeedConfig()
	fetcher := loader.NewFetcher()

	app := &api.App{
		PrimaryChain: &loader.Chain{
			Label: "primary",
			Sources: []loader.Source{
				loader.JSONFeed{URL: feeds.VideosJSONURL, Fetcher: fetcher},
				loader.CSVFeed{URL: feeds.VideosCSVURL, Fetcher: fetcher},
				loader.Snapshot{Repo: repo},
				loader.Static{},
			},
		},
		SponsorChain: &loader.SponsorChain{
			Label: "sponsors",
			Sources: []loader.SponsorSource{
				loader.JSONSponsorFeed{URL: feeds.SponsorsJSONURL, Fetcher: fetcher},
				loader.CSVSponsorFeed{URL: feeds.SponsorsCSVURL, Fetcher: fetcher},
				loader.SponsorSnapshot{Repo: repo},
				loader.StaticSponsors{},
			},
		},
		Repo: repo,
		Hub:  synchub.NewHub(),
	}
	if feeds.SecondaryCSVURL != "" {
		app.SecondaryChain = &loader.Chain{
			Label: "secondary",
			Sources: []loader.Source{
				loader.CSVFeed{URL: feeds.SecondaryCSVURL, Fetcher: fetcher},
			},
		}
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	summary := app.Reload(loadCtx)
	cancelLoad()
	log.Printf("startup load: %d videos from %s, %d sponsors", summary.Videos, summary.Source, summary.Sponsors)

	router := gin.Default()

	// Optional: avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/ws", synchub.WSHandler(app.Hub))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := app.Hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": stats.Clients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"videos":     len(app.Videos()),
			"ws_clients": stats.Clients,
		})
	})

	links := utils.LoadSupportLinks()
	handler := api.NewHandler(app, links)
	handler.RegisterRoutes(router.Group(""))

	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authHandler := auth.NewHandler(tokenSvc, authCfg.AdminPassword)
	authHandler.RegisterRoutes(router.Group("/auth"))

	admin := router.Group("/admin")
	admin.Use(auth.AuthMiddleware(tokenSvc))
	handler.RegisterAdminRoutes(admin)

	pulser := &sponsor.Pulser{
		Interval: 15 * time.Second,
		Fire: func() {
			live := sponsor.Active(app.Sponsors(), sponsor.Today())
			if len(live) == 0 {
				return
			}
			pick := live[rand.Intn(len(live))]
			app.Hub.BroadcastJSON(synchub.PulseEvent{
				Type:  "sponsor.pulse",
				Brand: pick.Brand,
				At:    time.Now().UTC(),
			})
		},
	}
	pulser.Start()
	defer pulser.Stop()

	httpSrv := &http.Server{
		Addr:    listenAddr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}

func listenAddr() string {
	if a := os.Getenv("ARCHIVEHUB_ADDR"); a != "" {
		return a
	}
	return ":8080"
}
