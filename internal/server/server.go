package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nyxa-games/emberdeep/internal/activity"
	"github.com/nyxa-games/emberdeep/internal/battle"
	"github.com/nyxa-games/emberdeep/internal/database"
	"github.com/nyxa-games/emberdeep/internal/handler"
	"github.com/nyxa-games/emberdeep/internal/logger"
	"github.com/nyxa-games/emberdeep/internal/metrics"
	"github.com/nyxa-games/emberdeep/internal/profile"
	"github.com/nyxa-games/emberdeep/internal/quest"
	"github.com/nyxa-games/emberdeep/internal/sse"
)

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// Services bundles the domain services the router exposes
type Services struct {
	Profile  profile.Service
	Activity activity.Service
	Battle   battle.Service
	Quest    quest.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svcs Services, sseHub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz)
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Live game event stream
	r.Get("/events", sse.Handler(sseHub))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", handler.HandleCreateProfile(svcs.Profile))
			r.Get("/by-username", handler.HandleGetProfileByUsername(svcs.Profile))
			r.Get("/{profileID}", handler.HandleGetProfile(svcs.Profile))
			r.Get("/{profileID}/inventory", handler.HandleGetInventory(svcs.Profile))
			r.Get("/{profileID}/activity", handler.HandleGetActivity(svcs.Activity))
			r.Post("/{profileID}/inventory/{inventoryItemID}/equip", handler.HandleEquipItem(svcs.Profile))
			r.Post("/{profileID}/inventory/{inventoryItemID}/unequip", handler.HandleUnequipItem(svcs.Profile))
		})

		r.Route("/dungeons", func(r chi.Router) {
			r.Get("/", handler.HandleListDungeons(svcs.Battle))
			r.Get("/{dungeonID}/progress", handler.HandleGetDungeonProgress(svcs.Battle))
		})

		r.Route("/battles", func(r chi.Router) {
			r.Post("/", handler.HandleEnterDungeon(svcs.Battle))
			r.Get("/active", handler.HandleGetActiveBattle(svcs.Battle))
			r.Get("/{battleID}", handler.HandleGetBattle(svcs.Battle))
			r.Post("/{battleID}/turn", handler.HandleResolveTurn(svcs.Battle))
		})

		r.Route("/quests", func(r chi.Router) {
			r.Get("/board", handler.HandleGetQuestBoard(svcs.Quest))
			r.Post("/accept", handler.HandleAcceptQuest(svcs.Quest))
			r.Get("/mine", handler.HandleListPlayerQuests(svcs.Quest))
			r.Get("/{playerQuestID}", handler.HandleGetPlayerQuest(svcs.Quest))
			r.Post("/{playerQuestID}/working", handler.HandleSetQuestWorking(svcs.Quest))
			r.Post("/{playerQuestID}/complete", handler.HandleCompleteQuest(svcs.Quest))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush passes through so SSE responses stream instead of buffering
func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
