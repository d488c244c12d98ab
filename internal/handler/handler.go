package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves the operational endpoints: liveness, store diagnostic
// and metrics.
type Handler struct {
	db *sqlx.DB
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Aayaan Hospital API is running",
	})
}

// Test reports store connectivity and the visible collection names.
// Operational endpoint, not a domain one.
func (h *Handler) Test(c *gin.Context) {
	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.db == nil {
		c.JSON(http.StatusOK, response)
		return
	}

	if err := h.db.PingContext(c.Request.Context()); err != nil {
		response["database"] = "error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["connection_status"] = "connected"

	var tables []string
	query := `
		SELECT tablename FROM pg_catalog.pg_tables
		WHERE schemaname = 'public'
		ORDER BY tablename
		LIMIT 10
	`
	if err := h.db.SelectContext(c.Request.Context(), &tables, query); err == nil {
		response["collections"] = tables
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) Metrics(c *gin.Context) {
	promhttp.Handler().ServeHTTP(c.Writer, c.Request)
}
