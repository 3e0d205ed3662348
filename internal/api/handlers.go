package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ppiankov/claimsort/internal/logging"
	"github.com/ppiankov/claimsort/internal/model"
	"github.com/ppiankov/claimsort/internal/pipeline"
)

// maxUploadBytes bounds a single attachment read
const maxUploadBytes = 10 << 20 // 10 MiB

// Handler handles HTTP requests for the claims API
type Handler struct {
	pipeline *pipeline.Pipeline
	log      logging.Logger
}

// NewHandler creates a new API handler
func NewHandler(p *pipeline.Pipeline, log logging.Logger) *Handler {
	return &Handler{pipeline: p, log: log}
}

// SubmitClaim handles POST /api/v1/claims. The submission is multipart:
// claim fields plus one or more files under "documents". The pipeline runs
// synchronously and the routed claim is returned.
func (h *Handler) SubmitClaim(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.PostForm("claim_amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "claim_amount must be a number"})
		return
	}

	sub := model.Submission{
		Type:   model.ClaimType(c.PostForm("claim_type")),
		Amount: amount,
		Claimant: model.Claimant{
			Name:         c.PostForm("claimant_name"),
			Email:        c.PostForm("claimant_email"),
			Phone:        c.PostForm("claimant_phone"),
			PolicyNumber: c.PostForm("policy_number"),
		},
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "multipart form required"})
		return
	}

	var uploads []model.FileUpload
	for _, fh := range form.File["documents"] {
		upload := model.FileUpload{Name: fh.Filename, Size: fh.Size}
		if f, err := fh.Open(); err == nil {
			upload.Content, _ = io.ReadAll(io.LimitReader(f, maxUploadBytes))
			f.Close()
		}
		uploads = append(uploads, upload)
	}

	claim, err := h.pipeline.SubmitClaim(c.Request.Context(), sub, uploads)
	if err != nil {
		if pipeline.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		h.log.Error("claim submission failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "claim submission failed"})
		return
	}

	c.JSON(http.StatusCreated, claim)
}

// ListClaims handles GET /api/v1/claims with optional status / priority
// filters. Unfiltered results are sorted newest first.
func (h *Handler) ListClaims(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		s := model.Status(status)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown status: " + status})
			return
		}
		c.JSON(http.StatusOK, h.pipeline.ClaimsByStatus(s))
		return
	}

	if priority := c.Query("priority"); priority != "" {
		p := model.Priority(priority)
		if !p.Valid() {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown priority: " + priority})
			return
		}
		c.JSON(http.StatusOK, h.pipeline.ClaimsByPriority(p))
		return
	}

	c.JSON(http.StatusOK, h.pipeline.AllClaims())
}

// GetClaim handles GET /api/v1/claims/:id
func (h *Handler) GetClaim(c *gin.Context) {
	claim, err := h.pipeline.GetClaim(c.Param("id"))
	if err != nil {
		if errors.Is(err, pipeline.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "claim not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, claim)
}

// UpdateStatus handles PATCH /api/v1/claims/:id/status. Only claims in
// manual-review may transition; illegal transitions answer 409.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "status is required"})
		return
	}

	status := model.Status(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown status: " + req.Status})
		return
	}

	id := c.Param("id")
	if _, err := h.pipeline.GetClaim(id); err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "claim not found"})
		return
	}

	if !h.pipeline.UpdateClaimStatus(id, status, req.Note) {
		c.JSON(http.StatusConflict, errorResponse{Error: "transition not allowed"})
		return
	}

	c.JSON(http.StatusOK, updateStatusResponse{ID: id, Status: req.Status})
}

// GetStats handles GET /api/v1/stats
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.pipeline.ProcessingStats())
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
