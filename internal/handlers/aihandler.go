package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-portal/internal/dtos"
	"github.com/justsurfingit/job-portal/internal/services"
)

// AIHandler exposes the prompt flows. A nil LLMService means no API key was
// configured and every route answers 503.
type AIHandler struct {
	LLMService *services.LLMService
}

func NewAIHandler(llm *services.LLMService) *AIHandler {
	return &AIHandler{LLMService: llm}
}

func (h *AIHandler) available(c *gin.Context) bool {
	if h.LLMService == nil {
		respondError(c, http.StatusServiceUnavailable, "AI features are not configured")
		return false
	}
	return true
}

// GenerateJobDescription is the POST /ai/job-description endpoint
func (h *AIHandler) GenerateJobDescription(c *gin.Context) {
	if !h.available(c) {
		return
	}
	var req dtos.JobDescriptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	out, err := h.LLMService.GenerateJobDescription(c.Request.Context(), req)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// SuggestSkills is the POST /ai/suggest-skills endpoint
func (h *AIHandler) SuggestSkills(c *gin.Context) {
	if !h.available(c) {
		return
	}
	var req dtos.SkillSuggestionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	out, err := h.LLMService.SuggestSkills(c.Request.Context(), req)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// MatchJobs is the POST /ai/match-jobs endpoint
func (h *AIHandler) MatchJobs(c *gin.Context) {
	if !h.available(c) {
		return
	}
	var req dtos.JobMatchInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	out, err := h.LLMService.MatchJobs(c.Request.Context(), req)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ExtractJob is the POST /ai/extract-job endpoint
func (h *AIHandler) ExtractJob(c *gin.Context) {
	if !h.available(c) {
		return
	}
	var req dtos.JobExtractionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	out, err := h.LLMService.ExtractJobPosting(c.Request.Context(), req)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    out,
	})
}
