// ABOUTME: In-memory fixture backend implementing the admin REST contracts
// ABOUTME: Serves seeded data for local development against a real HTTP surface

package stub

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/atriumhq/atrium-console/internal/api"
)

// Fixture login credential for the stub. Mirrors the dev authenticator.
const (
	fixtureUsername = "admin"
	fixturePassword = "admin123"
)

// Server holds the fixture state behind one mutex. Every mutation operates
// on the live slices so re-fetches observe the change, the same way a real
// backend would.
type Server struct {
	secret []byte
	logger *slog.Logger

	mu            sync.Mutex
	users         []api.User
	creators      []api.CreatorApplication
	reports       []api.Report
	announcements []api.Announcement
	plans         []api.SubscriptionPlan
	subscriptions []api.UserSubscription
	blocks        map[string]map[string]bool // blocker -> blocked -> true
}

// New creates a stub server with seeded fixture data, signing login tokens
// with the given secret.
func New(secret []byte) *Server {
	s := &Server{
		secret: secret,
		logger: slog.Default().With("component", "stub"),
		blocks: make(map[string]map[string]bool),
	}
	s.seed()
	return s
}

// Handler returns the chi router implementing every REST contract.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/admin/users", s.handleListUsers)
			r.Get("/user/{id}", s.handleGetUser)
			r.Put("/user/{id}", s.handleUpdateUser)
			r.Delete("/admin/users/{id}", s.handleDeleteUser)
			r.Post("/admin/users/{id}/ban", s.handleSetBanned(true))
			r.Post("/admin/users/{id}/unban", s.handleSetBanned(false))
			r.Get("/user/{id}/blocked", s.handleBlockedUsers)
			r.Get("/user/{id}/reports", s.handleUserReports)

			r.Get("/admin/creators/pending", s.handlePendingCreators)
			r.Post("/admin/creators/{id}/approve", s.handleApproveCreator)

			r.Get("/reports", s.handleListReports)
			r.Get("/report/{id}", s.handleGetReport)
			r.Put("/report/{id}", s.handleUpdateReport)
			r.Delete("/report/{id}", s.handleDeleteReport)

			r.Get("/admin/announcements", s.handleListAnnouncements)
			r.Post("/admin/announcements", s.handleCreateAnnouncement)
			r.Put("/admin/announcements/{id}", s.handleUpdateAnnouncement)
			r.Delete("/admin/announcements/{id}", s.handleDeleteAnnouncement)

			r.Get("/analytics/dashboard", s.handleDashboardStats)
			r.Get("/analytics/users", s.handleUserStats)
			r.Get("/analytics/reports", s.handleReportStats)

			r.Get("/admin/subscription-plans", s.handleListPlans)
			r.Post("/admin/subscription-plans", s.handleCreatePlan)
			r.Put("/admin/subscription-plans/{id}", s.handleUpdatePlan)
			r.Delete("/admin/subscription-plans/{id}", s.handleDeletePlan)
			r.Get("/admin/subscriptions", s.handleListSubscriptions)
			r.Put("/admin/subscriptions/{id}/cancel", s.handleCancelSubscription)

			r.Post("/block", s.handleBlock(true))
			r.Post("/unblock", s.handleBlock(false))
			r.Get("/block-status", s.handleBlockStatus)
		})
	})

	return r
}

// handleLogin checks the fixture credential and mints an HS256 token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username != fixtureUsername || req.Password != fixturePassword {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "1",
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "signing token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":       1,
			"username": fixtureUsername,
			"role":     "admin",
			"email":    "admin@example.com",
		},
	})
}

// requireAuth verifies the bearer token against the stub's signing secret.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		_, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		})
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError sends the error body shape the client's extractor understands.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeStatus sends the minimal success acknowledgment used by commands
// that return no entity.
func writeStatus(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// notFound is shorthand for the common missing-entity reply.
func notFound(w http.ResponseWriter, kind, id string) {
	writeError(w, http.StatusNotFound, fmt.Sprintf("%s %s not found", kind, id))
}
