package manager

import (
	"errors"
	"net/http"

	"PokerLens/internal/game/engine"
	"PokerLens/internal/websocket"

	"github.com/gin-gonic/gin"
)

// StartRequest body of POST /runouts
type StartRequest struct {
	Players []string `json:"players" binding:"required,len=2"`
	Seed    *int64   `json:"seed"`
}

type Handler struct {
	m   *Manager
	hub *websocket.Hub
}

// NewHandler serves the runout routes. hub may be nil, in which case the
// websocket route is not registered; otherwise it should also be one of
// the manager's listeners.
func NewHandler(m *Manager, hub *websocket.Hub) *Handler {
	return &Handler{m: m, hub: hub}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/runouts", h.Start)
	r.GET("/runouts/:id", h.Get)
	r.POST("/runouts/:id/next", h.Next)
	r.DELETE("/runouts/:id", h.Close)
	if h.hub != nil {
		r.GET("/runouts/:id/ws", h.Watch)
	}
}

// POST /runouts  body: {players: [a, b], seed}
func (h *Handler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.m.Start(req.Players, req.Seed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GET /runouts/:id
func (h *Handler) Get(c *gin.Context) {
	s, err := h.m.Get(c.Param("id"))
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

// POST /runouts/:id/next
func (h *Handler) Next(c *gin.Context) {
	s, err := h.m.Next(c.Param("id"))
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /runouts/:id
func (h *Handler) Close(c *gin.Context) {
	id := c.Param("id")
	if err := h.m.Close(id); err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	if h.hub != nil {
		h.hub.Drop(id)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /runouts/:id/ws  streams the runout's remaining events
func (h *Handler) Watch(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.m.Get(id); err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	// the upgrader answers its own failures; keep the error for the access log
	if err := h.hub.Subscribe(c, id); err != nil {
		_ = c.Error(err)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, engine.ErrFinished):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
