// README: Entry point; loads config and data documents, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roadside/internal/ai"
	"roadside/internal/assist"
	"roadside/internal/config"
	httptransport "roadside/internal/http"
	"roadside/internal/infra"
	"roadside/internal/maps"
	"roadside/internal/modules/cases"
	"roadside/internal/modules/dispatch"
	"roadside/internal/modules/policy"
	"roadside/internal/modules/quota"
	"roadside/internal/modules/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Registry and policy documents are startup-fatal: the engine must
	// never run against a partially loaded configuration.
	registry, err := dispatch.LoadRegistry(cfg.GaragesFile())
	if err != nil {
		log.Fatal(err)
	}
	policyStore, err := policy.Load(cfg.PolicyFile(), cfg.CustomersFile())
	if err != nil {
		log.Fatal(err)
	}

	var geocoder dispatch.Geocoder = dispatch.KeywordGeocoder{}
	if cfg.AI.MapsKey != "" {
		geo, err := maps.NewGeocodingService(cfg.AI.MapsKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = geo
	}

	agent, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, policyStore.PolicyJSON(), policyStore.CustomersJSON())
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer agent.Close()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	dispatchSvc := dispatch.NewService(registry, geocoder)

	caseStore := cases.NewStore(dbPool)
	caseSvc := cases.NewService(caseStore)

	quotaStore := quota.NewStore(dbPool)
	quotaSvc := quota.NewService(quotaStore)

	sessionStore := session.NewStore(redisClient, time.Duration(cfg.Session.TTLHours)*time.Hour)

	assistSvc := assist.NewService(agent, dispatchSvc, sessionStore, caseSvc)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Assist:   assistSvc,
		Dispatch: dispatchSvc,
		Registry: registry,
		Cases:    caseSvc,
		Quota:    quotaSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("roadside assistance API listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
