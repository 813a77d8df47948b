package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"halalfull-support/internal/modes"
)

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type queryRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

type productSearchResponse struct {
	Result string `json:"result"`
}

type orderTrackingRequest struct {
	OrderNumber string `json:"order_number"`
}

type orderTrackingResponse struct {
	Status            string `json:"status"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleModes(c *gin.Context) {
	c.JSON(http.StatusOK, modes.AvailableModes)
}

func (s *Server) handleChat(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		badRequest(c, "query is required")
		return
	}

	reply := s.svc.GenerateResponse(c.Request.Context(), query)
	if reply.Failed() {
		log.Warn().
			Str("request_id", requestID(c)).
			Str("diagnostic", reply.Diagnostic).
			Msg("serving fallback reply")
	}

	c.JSON(http.StatusOK, chatResponse{Reply: reply.Text, Error: reply.Diagnostic})
}

func (s *Server) handleProductSearch(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		badRequest(c, "query is required")
		return
	}

	c.JSON(http.StatusOK, productSearchResponse{Result: s.svc.SearchProducts(query)})
}

func (s *Server) handleOrderTracking(c *gin.Context) {
	var req orderTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	orderNumber := strings.TrimSpace(req.OrderNumber)
	if orderNumber == "" {
		badRequest(c, "order_number is required")
		return
	}

	rec := s.svc.TrackOrder(orderNumber)
	c.JSON(http.StatusOK, orderTrackingResponse{
		Status:            rec.Status,
		EstimatedDelivery: rec.EstimatedDelivery,
	})
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: msg})
}
