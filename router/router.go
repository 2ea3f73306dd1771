// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/solarmatch/cliparse"
	"github.com/danielhkuo/solarmatch/handlers"
	"github.com/danielhkuo/solarmatch/middleware"
	"github.com/danielhkuo/solarmatch/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db)

	// Initialize handlers
	requestHandler := handlers.NewRequestHandler(st, cfg)
	responseHandler := handlers.NewResponseHandler(st, cfg)
	lifecycleHandler := handlers.NewLifecycleHandler(st, cfg)
	vendorHandler := handlers.NewVendorHandler(st, cfg)
	planHandler := handlers.NewPlanHandler()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Customer operations
	mux.HandleFunc("POST /requests", middleware.WithLogging(requestHandler.Submit))
	mux.HandleFunc("GET /requests/mine", middleware.WithLogging(requestHandler.GetMine))
	mux.HandleFunc("POST /requests/{id}/cancel", middleware.WithLogging(requestHandler.Cancel))
	mux.HandleFunc("POST /requests/{id}/responses/{rid}/accept", middleware.WithLogging(lifecycleHandler.Accept))
	mux.HandleFunc("POST /requests/{id}/responses/{rid}/reject", middleware.WithLogging(lifecycleHandler.Reject))

	// Vendor operations
	mux.HandleFunc("GET /requests/available", middleware.WithLogging(requestHandler.GetAvailable))
	mux.HandleFunc("POST /requests/{id}/responses", middleware.WithLogging(responseHandler.Attach))
	mux.HandleFunc("POST /vendors/register", middleware.WithLogging(vendorHandler.Register))
	mux.HandleFunc("GET /vendors/me", middleware.WithLogging(vendorHandler.GetMe))
	mux.HandleFunc("GET /vendors/me/responses", middleware.WithLogging(vendorHandler.MyResponses))

	// Shared reads
	mux.HandleFunc("GET /requests/{id}", middleware.WithLogging(requestHandler.GetByID))
	mux.HandleFunc("GET /requests/{id}/responses", middleware.WithLogging(responseHandler.ListForRequest))

	// Installment plan preview (pure computation)
	mux.HandleFunc("POST /plans/preview", middleware.WithLogging(planHandler.Preview))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("solarmatch API v1"))
	})

	return mux
}
