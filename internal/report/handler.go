package report

import (
	"errors"
	"net/http"

	"PokerLens/internal/game/cards"
	"PokerLens/internal/game/hand"

	"github.com/gin-gonic/gin"
)

// EmptyBoard stands in for a pre-flop board in URL paths.
const EmptyBoard = "-"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the report routes on r.
func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/classify", h.Classify)
	r.GET("/boards/:board", h.Board)
	r.DELETE("/boards/:board", h.Invalidate)
}

// POST /classify  body: {hole, board}
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := h.svc.Classify(req.Hole, req.Board)
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

// GET /boards/:board   ("-" for pre-flop)
func (h *Handler) Board(c *gin.Context) {
	rep, err := h.svc.Board(c.Request.Context(), boardParam(c))
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rep)
}

// DELETE /boards/:board
func (h *Handler) Invalidate(c *gin.Context) {
	if err := h.svc.Invalidate(c.Request.Context(), boardParam(c)); err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func boardParam(c *gin.Context) string {
	b := c.Param("board")
	if b == EmptyBoard {
		return ""
	}
	return b
}

func statusOf(err error) int {
	var ihe *hand.InvalidHandError
	var ice *cards.InvalidCardError
	if errors.As(err, &ihe) || errors.As(err, &ice) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
