package realtime

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

// Handler upgrades authenticated requests to realtime connections.
type Handler struct {
	hub      *Hub
	signKey  string
	issuer   string
	upgrader websocket.Upgrader
	connIDs  *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(hub *Hub, signKey, issuer string, log *logger.Logger) *Handler {
	return &Handler{
		hub:     hub,
		signKey: signKey,
		issuer:  issuer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		connIDs: utils.NewUUIDGenerator(),
		logger:  log,
	}
}

// Routes mounts the websocket endpoint at /ws and a liveness probe at
// /healthz.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/ws", h.ServeWS)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, map[string]string{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)}, http.StatusOK)
	})
	return r
}

// ServeWS authenticates with a bearer token from the Authorization header
// or the token query parameter and hands the connection to the hub.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	log := h.logger.With().Str("func", "Handler.ServeWS").Logger()

	raw := r.URL.Query().Get("token")
	if raw == "" {
		var err error
		if raw, err = utils.ParseBearerToken(r.Header.Get("Authorization")); err != nil {
			log.Debug().Err(err).Msg("missing realtime token")
			http.Error(w, ErrUnauthorized.Error(), http.StatusUnauthorized)
			return
		}
	}

	token, err := utils.ValidateAndParseJWTToken(raw, h.signKey, h.issuer)
	if err != nil {
		log.Debug().Err(err).Msg("invalid realtime token")
		http.Error(w, ErrUnauthorized.Error(), http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := NewClient(h.connIDs.Generate(), token.UserID, conn, h.hub)
	if err = h.hub.Register(client); err != nil {
		_ = conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
