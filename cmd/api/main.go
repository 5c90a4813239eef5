package main

import (
	"context"
	"log"
	"net/http"

	"janseva/application"
	"janseva/auth"
	"janseva/config"
	"janseva/db"
	"janseva/document"
	"janseva/grievance"
	"janseva/profile"
	"janseva/scheme"
	"janseva/submission"
)

func main() {
	cfg := config.Load()

	pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	docStore := document.NewPGStore(pool)

	authSvc := auth.NewService(auth.NewRepository(pool), cfg.JWTSecret)
	profileSvc := profile.NewService(profile.NewRepository(pool))
	schemeSvc := scheme.NewService(scheme.NewRepository(pool))

	appRepo := application.NewRepository(pool)
	appSvc := application.NewService(
		submission.NewPipeline(docStore, cfg.ApplicationBkt, appRepo),
		appRepo,
	)

	grvRepo := grievance.NewRepository(pool)
	grvSvc := grievance.NewService(
		submission.NewPipeline(docStore, cfg.GrievanceBkt, grvRepo),
		grvRepo,
	)

	srv := newServer(authSvc, profileSvc, schemeSvc, appSvc, grvSvc, docStore, cfg.CacheLimit)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, srv.routes()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
