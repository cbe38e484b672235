// Command leggo runs the application state engine headless: it recovers any
// persisted session, seeds the demo catalog, and drives a scripted
// discover-and-plan session in place of the mobile UI.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/leggo/internal/auth"
	"example.com/leggo/internal/config"
	"example.com/leggo/internal/engine"
	"example.com/leggo/internal/persistence/sqlite"
	"example.com/leggo/internal/seed"
	httptransport "example.com/leggo/internal/transport/http"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := sqlite.Open(cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("failed to open session store: %v", err)
	}
	defer store.Close()

	authSvc := auth.NewService(auth.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
	}, cfg.MockAuthDelay)

	app := engine.New(store, authSvc, engine.WithCreateLatency(cfg.CreateLatency))

	unsubscribe := app.Subscribe(func(s engine.State) {
		log.Printf("state: authenticated=%v loading=%v catalog=%d interested=%d cursor=%d",
			s.IsAuthenticated, s.IsLoadingAuth, len(s.Activities), len(s.InterestedIDs), s.Cursor)
	})
	defer unsubscribe()

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := httptransport.NewServer(httptransport.ServerConfig{
			Address:      cfg.MetricsAddress,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}, mux)
		go func() {
			log.Printf("metrics listening on %s", cfg.MetricsAddress)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("metrics server error: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	app.RecoverSession(ctx)
	app.LoadInitial(seed.Activities(time.Now()))

	if !app.Snapshot().IsAuthenticated {
		ok, err := app.Authenticate(ctx, auth.KindLogin, auth.DemoEmail, auth.DemoPassword)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
		if !ok {
			log.Fatal("demo credentials rejected")
		}
	}

	// Swipe through the deck, liking every other card.
	like := true
	for !app.Exhausted() {
		card := app.Deck()[0]
		if like {
			log.Printf("like: %s", card.Title)
			app.RecordSwipe(engine.SwipeRight, card)
		} else {
			log.Printf("pass: %s", card.Title)
			app.RecordSwipe(engine.SwipeLeft, card)
		}
		like = !like
	}

	for _, act := range app.Planned() {
		log.Printf("planned: %s (%s, %s)", act.Title, act.Category, act.Location)
	}

	if err := app.Logout(ctx); err != nil {
		log.Printf("logout warning: %v", err)
	}
}
