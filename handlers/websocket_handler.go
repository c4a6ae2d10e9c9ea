package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/furk4ng99/fenerbahce-squad-builder/duel"
	"github.com/furk4ng99/fenerbahce-squad-builder/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is enforced on the HTTP API; the socket accepts
		// the same browsers.
		return true
	},
}

type WebsocketHandler struct {
	hub         *duel.Hub
	tournaments services.TournamentService
}

func NewWebsocketHandler(hub *duel.Hub, tournaments services.TournamentService) *WebsocketHandler {
	return &WebsocketHandler{hub: hub, tournaments: tournaments}
}

func (h *WebsocketHandler) serve(w http.ResponseWriter, r *http.Request, room string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed",
			slog.String("room", room),
			slog.Any("error", err))
		return
	}

	client := &duel.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: room,
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

// DuelStats handles GET /ws/duels and subscribes the socket to the daily
// pick tally broadcasts.
func (h *WebsocketHandler) DuelStats(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, duel.StatsRoom)
}

// Tournament handles GET /ws/tournaments/{id} and subscribes the socket
// to one tournament's progress broadcasts.
func (h *WebsocketHandler) Tournament(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.tournaments.Get(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.serve(w, r, services.TournamentRoom(id))
}
