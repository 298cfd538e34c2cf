package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/liquiditylab/lcrsim/internal/application/report"
)

// maxDiagnosticErrLen bounds error text on the diagnostics response.
const maxDiagnosticErrLen = 50

// maxDiagnosticCollections bounds the collection listing on the
// diagnostics response.
const maxDiagnosticCollections = 10

// MessageResponse represents a plain greeting response
type MessageResponse struct {
	Message string `json:"message"`
}

// RunResponse represents the rows returned by a report run
type RunResponse struct {
	Rows []report.Row `json:"rows"`
}

// DiagnosticsResponse represents backend and database connectivity state
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// handleRoot handles the root greeting
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello from the LCR sandbox backend!"})
}

// handleHello handles the API greeting the dashboard checks on load
func (s *Server) handleHello(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello from the backend API!"})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "lcrsim",
	})
}

// handleDiagnostics reports backend and database connectivity state
func (s *Server) handleDiagnostics(c *gin.Context) {
	res := s.probe.Check(c.Request.Context())

	resp := DiagnosticsResponse{
		Backend:          "running",
		Database:         "not configured",
		DatabaseURL:      presence(s.dbURLSet),
		DatabaseName:     presence(s.dbNameSet),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	switch {
	case !res.Configured:
		s.metrics.RecordDatabaseCheck("not_configured")
	case res.Err != nil:
		resp.Database = "error: " + truncateErr(res.Err)
		s.metrics.RecordDatabaseCheck("error")
	case res.ListErr != nil:
		resp.Database = "connected, list error: " + truncateErr(res.ListErr)
		resp.ConnectionStatus = "connected"
		s.metrics.RecordDatabaseCheck("connected")
	default:
		resp.Database = "connected"
		resp.ConnectionStatus = "connected"
		resp.Collections = capCollections(res.Collections)
		s.metrics.RecordDatabaseCheck("connected")
	}

	c.JSON(http.StatusOK, resp)
}

// handleRun validates report parameters and returns simulated rows
func (s *Server) handleRun(c *gin.Context) {
	var req report.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Error("invalid request", zap.Error(err))
		s.metrics.RecordRun("invalid_request", 0)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, err := req.Parse()
	if err != nil {
		s.logger.Warn("run request rejected", zap.Error(err))
		s.metrics.RecordRun("validation_failed", 0)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{
				Code:    "VALIDATION_FAILED",
				Message: err.Error(),
			},
		})
		return
	}

	rows := s.generator.Generate(params)
	s.metrics.RecordRun("ok", len(rows))

	s.logger.Info("report run completed",
		zap.String("country", params.Country),
		zap.Ints("lines", params.Lines),
		zap.Int("rows", len(rows)))

	c.JSON(http.StatusOK, RunResponse{Rows: rows})
}

// presence renders a set/not-set flag for an environment value
func presence(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

// truncateErr bounds error text for the diagnostics response
func truncateErr(err error) string {
	msg := err.Error()
	if len(msg) > maxDiagnosticErrLen {
		msg = msg[:maxDiagnosticErrLen]
	}
	return msg
}

// capCollections bounds the collection listing and never returns nil
func capCollections(names []string) []string {
	if len(names) > maxDiagnosticCollections {
		return names[:maxDiagnosticCollections]
	}
	if names == nil {
		return []string{}
	}
	return names
}
