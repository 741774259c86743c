package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-portal/internal/dtos"
	"github.com/justsurfingit/job-portal/internal/services"
)

type SavedSearchHandler struct {
	SavedSearchService *services.SavedSearchService
}

func NewSavedSearchHandler(s *services.SavedSearchService) *SavedSearchHandler {
	return &SavedSearchHandler{SavedSearchService: s}
}

func (h *SavedSearchHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		respondError(c, http.StatusBadRequest, "userId is required")
		return
	}

	searches, err := h.SavedSearchService.List(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, "Failed to fetch saved searches", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedSearches": searches})
}

func (h *SavedSearchHandler) Create(c *gin.Context) {
	var req dtos.SavedSearchCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "userId, name and filters are required")
		return
	}

	saved, err := h.SavedSearchService.Create(c.Request.Context(), &req)
	if errors.Is(err, services.ErrInvalidFilters) {
		respondError(c, http.StatusBadRequest, "filters must be a JSON object")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to save search", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"savedSearch": saved})
}

func (h *SavedSearchHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	userID := c.Query("userId")
	if id == "" || userID == "" {
		respondError(c, http.StatusBadRequest, "id and userId are required")
		return
	}

	err := h.SavedSearchService.Delete(c.Request.Context(), id, userID)
	if errors.Is(err, services.ErrSavedSearchNotFound) {
		respondError(c, http.StatusNotFound, "Saved search not found")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to delete saved search", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
