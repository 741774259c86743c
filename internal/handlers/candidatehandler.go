package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-portal/internal/services"
)

type CandidateHandler struct {
	CandidateService *services.CandidateService
}

func NewCandidateHandler(s *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{CandidateService: s}
}

// GetCandidate is the GET /candidates/:id endpoint
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "Invalid candidate id")
		return
	}

	profile, err := h.CandidateService.GetCandidateProfile(c.Request.Context(), uint(id))
	if errors.Is(err, services.ErrCandidateNotFound) {
		respondError(c, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to fetch candidate", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
