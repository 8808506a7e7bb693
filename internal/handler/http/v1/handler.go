package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/coastal_verification_system/internal/config"
	"github.com/shenikar/coastal_verification_system/internal/service"
	"github.com/shenikar/coastal_verification_system/internal/verifier"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	verificationService service.VerificationService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(verificationService service.VerificationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		verificationService: verificationService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// respondServiceError отображает таксономию ошибок движка на HTTP-коды
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, verifier.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
	case errors.Is(err, verifier.ErrNoVerification):
		c.JSON(http.StatusNotFound, gin.H{"error": "no verification result for report"})
	case errors.Is(err, verifier.ErrEvaluationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "evaluation already in flight"})
	case errors.Is(err, verifier.ErrAlreadyClaimed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, verifier.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, verifier.ErrInsufficientEvidence):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "insufficient evidence: all layers skipped, report stays pending"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Submit a hazard report
// @Description Submit a coastal hazard report and trigger its first verification run. Requires API key.
// @Tags Verification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body SubmitReportRequest true "Hazard report submission"
// @Success 201 {object} VerificationResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Insufficient evidence"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/report [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := DTOToReportModel(input)
	result, err := h.verificationService.SubmitReport(c.Request.Context(), report)
	if err != nil {
		log.WithError(err).Error("Failed to submit report in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToVerificationResponse(result, report.Status))
}

// @Summary Get verification result for a report
// @Description Get the latest verification attempt with full layer results and applied weights. Requires API key.
// @Tags Verification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} VerificationResultResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report or verification not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/report/{id} [get]
func (h *Handler) getVerification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getVerification").WithField("id", id)

	report, err := h.verificationService.GetReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from service")
		respondServiceError(c, err)
		return
	}

	result, err := h.verificationService.GetVerification(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get verification from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVerificationResponse(result, report.Status))
}

// @Summary List the manual review queue
// @Description List reports pending analyst attention, lowest composite score first. Requires API key.
// @Tags Queue
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum entries" default(20)
// @Param min_score query number false "Minimum composite score"
// @Param max_score query number false "Maximum composite score"
// @Success 200 {array} QueueEntryResponse
// @Failure 400 {object} map[string]string "Malformed score filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/queue [get]
func (h *Handler) listQueue(c *gin.Context) {
	log := h.logger.WithField("method", "listQueue")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var minScore, maxScore *float64
	if raw := c.Query("min_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_score"})
			return
		}
		minScore = &v
	}
	if raw := c.Query("max_score"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_score"})
			return
		}
		maxScore = &v
	}

	entries, err := h.verificationService.ListQueue(c.Request.Context(), limit, minScore, maxScore)
	if err != nil {
		log.WithError(err).Error("Failed to list queue from service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToQueueEntryResponses(entries))
}

// @Summary Approve a report
// @Description Analyst approval: transitions the report to verified and creates a ticket. Idempotent for already verified reports. Requires API key.
// @Tags Verification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param decision body AnalystActionRequest true "Analyst decision"
// @Success 200 {object} ApproveResponse
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Invalid transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/report/{id}/approve [post]
func (h *Handler) approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "approve").WithField("id", id)

	var input AnalystActionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticketID, err := h.verificationService.Approve(c.Request.Context(), id, input.AnalystID, input.Reason)
	if err != nil {
		log.WithError(err).Error("Failed to approve report in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ApproveResponse{
		ReportID: id,
		Status:   "verified",
		TicketID: ticketID,
	})
}

// @Summary Reject a report
// @Description Analyst rejection: transitions the report to rejected and notifies the reporter. Requires API key.
// @Tags Verification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param decision body AnalystActionRequest true "Analyst decision"
// @Success 200 {object} RejectResponse
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Invalid transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/report/{id}/reject [post]
func (h *Handler) reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "reject").WithField("id", id)

	var input AnalystActionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.verificationService.Reject(c.Request.Context(), id, input.AnalystID, input.Reason); err != nil {
		log.WithError(err).Error("Failed to reject report in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, RejectResponse{
		ReportID: id,
		Status:   "rejected",
		Notified: true,
	})
}

// @Summary Claim a queue entry
// @Description Claim a review queue entry for an analyst. Fails with 409 when claimed by someone else. Requires API key.
// @Tags Queue
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param claim body ClaimRequest true "Claim request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not in queue"
// @Failure 409 {object} map[string]string "Already claimed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/report/{id}/claim [post]
func (h *Handler) claimEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "claimEntry").WithField("id", id)

	var input ClaimRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.verificationService.ClaimEntry(c.Request.Context(), id, input.AnalystID); err != nil {
		log.WithError(err).Warn("Failed to claim queue entry in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Release a queue entry claim
// @Description Explicitly release an analyst's claim on a queue entry. Requires API key.
// @Tags Queue
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/report/{id}/release [post]
func (h *Handler) releaseEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "releaseEntry").WithField("id", id)

	if err := h.verificationService.ReleaseEntry(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to release queue entry in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark a report as under investigation
// @Description Transition a report from needs_manual_review to investigating. Requires API key.
// @Tags Verification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Param claim body ClaimRequest true "Analyst"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Invalid transition"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/report/{id}/investigate [post]
func (h *Handler) investigate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "investigate").WithField("id", id)

	var input ClaimRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.verificationService.MarkInvestigating(c.Request.Context(), id, input.AnalystID); err != nil {
		log.WithError(err).Error("Failed to mark report as investigating in service")
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Rerun verification
// @Description Trigger a fresh evaluation attempt. Fails with 409 when an evaluation is already in flight. Requires API key.
// @Tags Verification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} VerificationResultResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Evaluation in flight"
// @Failure 422 {object} map[string]string "Insufficient evidence"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /verification/report/{id}/rerun [post]
func (h *Handler) rerun(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "rerun").WithField("id", id)

	result, err := h.verificationService.Rerun(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to rerun verification in service")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToVerificationResponse(result, stateForResponse(result)))
}

// @Summary Get layer health
// @Description Aggregate readiness of each layer evaluator with recent error rates
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /verification/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthToResponse(h.verificationService.LayerHealth()))
}
