package main

import (
	"net/http"
	"os"
	"time"

	"peptide-protocol-tracker/internal/platform/logger"
	"peptide-protocol-tracker/internal/router"
)

// @title Peptide Protocol Tracker API
// @version 1.0
// @description Dashboard personal de protocolo de dosificación: checklist diario, recordatorios, calculadora de mezclas y tendencias de KPIs.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Log: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
