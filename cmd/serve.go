package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheetlens/parse-cli/internal/ingest"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP parse server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p, err := newPipeline()
		if err != nil {
			return err
		}

		r := chi.NewRouter()
		r.Use(requestID)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         3600,
		}))

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/v1/parse/statement", func(w http.ResponseWriter, r *http.Request) {
			buf, mimeType, ok := readDocument(w, r)
			if !ok {
				return
			}
			stmt, err := p.ParseStatement(r.Context(), buf, mimeType)
			if err != nil {
				writeParseError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, stmt)
		})

		r.Post("/v1/parse/products", func(w http.ResponseWriter, r *http.Request) {
			buf, mimeType, ok := readDocument(w, r)
			if !ok {
				return
			}
			list, err := p.ParseProducts(r.Context(), buf, mimeType)
			if err != nil {
				writeParseError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, list)
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// requestID tags every request with a correlation ID, echoed in the
// response header and attached to log lines.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// readDocument pulls the raw document body and its MIME type from the
// request. On failure it writes the error response and reports !ok.
func readDocument(w http.ResponseWriter, r *http.Request) (buf []byte, mimeType string, ok bool) {
	body := http.MaxBytesReader(w, r.Body, cfg.Parse.MaxUploadBytes)
	buf, err := io.ReadAll(body)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
		return nil, "", false
	}
	if len(buf) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "empty request body"})
		return nil, "", false
	}
	return buf, r.Header.Get("Content-Type"), true
}

func writeParseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		writeJSON(w, http.StatusUnsupportedMediaType, map[string]string{"error": "unsupported document format"})
	case errors.Is(err, ingest.ErrDecodeFailure):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "document could not be decoded"})
	default:
		zap.L().Error("parse request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", w.Header().Get("X-Request-ID")),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
