// Package panel provides HTTP handlers for the control panel API.
package panel

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Aurora-NEW/gcli2api/adapters/metrics"
	"github.com/Aurora-NEW/gcli2api/app"
	"github.com/Aurora-NEW/gcli2api/config"
	"github.com/Aurora-NEW/gcli2api/pkg/panelapi"
	"github.com/Aurora-NEW/gcli2api/ports"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler provides the panel API endpoints.
type Handler struct {
	service  *app.UsageService
	config   *config.Holder
	logger   zerolog.Logger
	hasher   ports.Hasher
	metrics  *metrics.Collector
	sessions *SessionStore
}

// Deps contains dependencies for the panel handler.
type Deps struct {
	Service *app.UsageService
	Config  *config.Holder
	Logger  zerolog.Logger
	Hasher  ports.Hasher
	IDs     ports.IDGenerator
	Clock   ports.Clock
	Metrics *metrics.Collector
}

// NewHandler creates a new panel API handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		service:  deps.Service,
		config:   deps.Config,
		logger:   deps.Logger,
		hasher:   deps.Hasher,
		metrics:  deps.Metrics,
		sessions: NewSessionStore(deps.IDs, deps.Clock),
	}
}

// RegisterRoutes mounts the panel routes on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	// Public endpoints (no auth required)
	r.Post("/auth/login", h.Login)

	// Protected endpoints (require auth)
	r.Group(func(r chi.Router) {
		r.Use(h.AuthMiddleware)

		r.Post("/auth/logout", h.Logout)

		// Usage views and mutations
		r.Route("/usage", func(r chi.Router) {
			r.Get("/stats", h.GetStats)
			r.Get("/aggregated", h.GetAggregated)
			r.Get("/snapshot", h.GetSnapshot)
			r.Post("/reset", h.ResetUsage)
			r.Post("/events", h.IngestEvents)
		})

		// Management dashboard compatibility
		r.Route("/v0/management", func(r chi.Router) {
			r.Get("/usage", h.ManagementUsage)
			r.Get("/openai-compatibility", h.GetOpenAICompatibility)
			r.Patch("/openai-compatibility", h.PatchOpenAICompatibility)
		})
	})
}

// -----------------------------------------------------------------------------
// Authentication
// -----------------------------------------------------------------------------

// Session represents a panel session.
type Session struct {
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore manages panel sessions.
type SessionStore struct {
	mu       sync.RWMutex
	ids      ports.IDGenerator
	clock    ports.Clock
	sessions map[string]*Session
}

// NewSessionStore creates a new session store.
func NewSessionStore(ids ports.IDGenerator, clk ports.Clock) *SessionStore {
	return &SessionStore{
		ids:      ids,
		clock:    clk,
		sessions: make(map[string]*Session),
	}
}

// Create creates a new session and prunes expired ones.
func (s *SessionStore) Create(ttl time.Duration) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for token, session := range s.sessions {
		if session.ExpiresAt.Before(now) {
			delete(s.sessions, token)
		}
	}

	session := &Session{
		Token:     s.ids.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	s.sessions[session.Token] = session
	return session
}

// Get retrieves a live session by token. Expired sessions return nil.
func (s *SessionStore) Get(token string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok || session.ExpiresAt.Before(s.clock.Now()) {
		return nil
	}
	return session
}

// Delete removes a session.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse represents a login response.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Login authenticates a panel operator.
//
//	@Summary		Panel login
//	@Description	Exchange the panel password for a session token
//	@Tags			Panel
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest		true	"Panel credentials"
//	@Success		200		{object}	panelapi.Envelope	"Session token"
//	@Failure		400		{object}	panelapi.Envelope	"Invalid request"
//	@Failure		401		{object}	panelapi.Envelope	"Invalid password"
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		panelapi.WriteError(w, panelapi.NewError(http.StatusBadRequest, "invalid_request", "Invalid JSON body"))
		return
	}

	if req.Password == "" {
		panelapi.WriteError(w, panelapi.NewError(http.StatusBadRequest, "missing_password", "Password is required"))
		return
	}

	if !h.verifyPassword(req.Password) {
		h.authFailure("bad_password")
		h.logger.Warn().Str("remote", r.RemoteAddr).Msg("panel login rejected")
		panelapi.WriteError(w, panelapi.NewError(http.StatusUnauthorized, "invalid_credentials", "Invalid panel password"))
		return
	}

	ttl := h.config.Get().Panel.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	session := h.sessions.Create(ttl)
	h.logger.Info().Str("remote", r.RemoteAddr).Time("expires_at", session.ExpiresAt).Msg("panel login")

	panelapi.WriteData(w, http.StatusOK, LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
	})
}

// Logout ends a panel session.
//
//	@Summary		Panel logout
//	@Description	End the current session
//	@Tags			Panel
//	@Produce		json
//	@Success		200	{object}	panelapi.Envelope	"Logged out"
//	@Security		PanelAuth
//	@Router			/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := r.Context().Value(ctxSessionKey).(string); ok {
		h.sessions.Delete(token)
	}
	panelapi.Write(w, http.StatusOK, panelapi.Envelope{Success: true, Message: "Logged out"})
}

// AuthMiddleware validates panel authentication. A credential may be a live
// session token or the configured panel password itself.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			h.authFailure("missing_token")
			panelapi.WriteError(w, panelapi.NewError(http.StatusUnauthorized, "unauthorized", "Panel token required"))
			return
		}

		// Check if it's a session token
		if session := h.sessions.Get(token); session != nil {
			ctx := context.WithValue(r.Context(), ctxSessionKey, session.Token)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		// Check if it's the panel password presented directly
		if h.verifyPassword(token) {
			next.ServeHTTP(w, r)
			return
		}

		h.authFailure("invalid_token")
		panelapi.WriteError(w, panelapi.NewError(http.StatusUnauthorized, "unauthorized", "Invalid panel token"))
	})
}

// extractToken pulls the credential from the request. Authorization bearer
// wins, then the X-Panel-Token header, then the token query parameter.
func extractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if token := r.Header.Get("X-Panel-Token"); token != "" {
		return token
	}
	return r.URL.Query().Get("token")
}

// verifyPassword checks a candidate against the configured credentials.
// The bcrypt hash takes precedence over the plain password when both are set.
func (h *Handler) verifyPassword(candidate string) bool {
	if candidate == "" {
		return false
	}

	cfg := h.config.Get()
	if hash := cfg.Panel.PasswordHash; hash != "" {
		return h.hasher.Compare([]byte(hash), candidate)
	}
	if password := cfg.Panel.Password; password != "" {
		return subtle.ConstantTimeCompare([]byte(password), []byte(candidate)) == 1
	}
	return false
}

func (h *Handler) authFailure(reason string) {
	if h.metrics != nil {
		h.metrics.AuthFailures.WithLabelValues(reason).Inc()
	}
}

// Context keys
type ctxKey string

const ctxSessionKey ctxKey = "panel_session"
