package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pitcherapp/pitcher/internal/dto"
	apierrors "github.com/pitcherapp/pitcher/internal/errors"
	"github.com/pitcherapp/pitcher/internal/services"
)

// PitchHandler coordinates pitch-related HTTP handlers.
type PitchHandler struct {
	pitchService *services.PitchService
}

// NewPitchHandler creates a new PitchHandler.
func NewPitchHandler(pitchService *services.PitchService) *PitchHandler {
	return &PitchHandler{
		pitchService: pitchService,
	}
}

// Submit accepts the pitch form. Success redirects back to the pitch page;
// validation and persistence failures re-render it with an error message
// instead of silently redirecting.
func (h *PitchHandler) Submit(c *gin.Context) {
	type SubmitRequest struct {
		Name    string `form:"name" binding:"required"`
		Phone   string `form:"phone" binding:"required"`
		Idea    string `form:"idea" binding:"required"`
		Funding string `form:"funding" binding:"required"`
	}

	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "pitcher.html", gin.H{
			"errorMessage": "All fields are required.",
		})
		return
	}

	_, err := h.pitchService.Submit(services.SubmitInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Idea:    req.Idea,
		Funding: req.Funding,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFunding):
			c.HTML(http.StatusBadRequest, "pitcher.html", gin.H{
				"errorMessage": "Funding must be a positive whole number.",
			})
		case errors.Is(err, services.ErrNameRequired):
			c.HTML(http.StatusBadRequest, "pitcher.html", gin.H{
				"errorMessage": "All fields are required.",
			})
		default:
			log.Error().Err(err).Msg("failed to save pitch data")
			c.HTML(http.StatusInternalServerError, "pitcher.html", gin.H{
				"errorMessage": "Failed to save pitcher data.",
			})
		}
		return
	}

	c.Redirect(http.StatusFound, "/pitcher")
}

// Investor renders the investor page with every pitch, or with an error
// message when the listing cannot be fetched.
func (h *PitchHandler) Investor(c *gin.Context) {
	pitches, err := h.pitchService.List()
	if err != nil {
		c.HTML(http.StatusOK, "investor.html", gin.H{
			"errorMessage": "Failed to fetch pitcher data.",
		})
		return
	}

	c.HTML(http.StatusOK, "investor.html", gin.H{
		"pitches": dto.ToPitchDTOs(pitches),
	})
}

// Remove deletes a pitch by ID. Deleting an ID that no longer exists still
// reports success; removal is idempotent.
func (h *PitchHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid pitch ID")
		return
	}

	if err := h.pitchService.Remove(id); err != nil {
		apierrors.InternalError(c, "Failed to remove pitcher data.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pitcher data successfully removed.",
	})
}

// VerifyPayment checks a submitted payment amount against the 50%-of-funding
// threshold for the pitch in the URL.
func (h *PitchHandler) VerifyPayment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid pitch ID")
		return
	}

	type VerifyRequest struct {
		PayAmount string `json:"payAmount" binding:"required"`
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.pitchService.VerifyPayment(id, req.PayAmount); err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentTooLow):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Payment is less than 50% of the funding.",
			})
		case errors.Is(err, services.ErrInvalidPayAmount):
			apierrors.BadRequest(c, "Payment amount must be a positive whole number.")
		case errors.Is(err, services.ErrPitchNotFound):
			apierrors.NotFound(c, "Pitch not found.")
		default:
			apierrors.InternalError(c, "Failed to verify payment.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified. Pitcher marked as paid.",
	})
}
