package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/rtavil/salespipe/pkg/domain"
)

// serveCmd starts the HTTP surface: pipeline runs, session listing, metrics.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Exposes the pipeline over HTTP: POST /run executes a workflow, GET /sessions lists session state, GET /metrics serves Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp(cmd)
		if err != nil {
			fmt.Printf("[Error] %v\n", err)
			os.Exit(1)
		}

		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = a.cfg.Port
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: newRouter(a),
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Printf("Starting salespipe server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("salespipe server stopped gracefully")
		}
	},
}

type runRequest struct {
	Company string `json:"company"`
	Contact string `json:"contact"`
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/run", func(w http.ResponseWriter, req *http.Request) {
		var body runRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if body.Company == "" || body.Contact == "" {
			writeError(w, http.StatusBadRequest, "company and contact are required")
			return
		}

		result, err := a.pipeline.Run(req.Context(), body.Company, body.Contact)
		if err != nil {
			a.logger.Error("workflow failed", "err", err)
			switch {
			case errors.Is(err, domain.ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, domain.ErrMissingResearch):
				writeError(w, http.StatusConflict, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "workflow failed")
			}
			return
		}
		writeJSON(w, http.StatusOK, result)
	})

	r.Get("/sessions", func(w http.ResponseWriter, req *http.Request) {
		sessions, err := a.store.List(req.Context())
		if err != nil {
			a.logger.Error("failed to list sessions", "err", err)
			writeError(w, http.StatusInternalServerError, "failed to list sessions")
			return
		}
		writeJSON(w, http.StatusOK, sessions)
	})

	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default: PORT env or 8080)")
}
