package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-portal/internal/logger"
	"github.com/justsurfingit/job-portal/internal/services"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondInternal logs err and answers with a generic message.
func respondInternal(c *gin.Context, message string, err error) {
	logger.FromContext(c.Request.Context()).Error(message,
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()),
	)
	respondError(c, http.StatusInternalServerError, message)
}

// respondFlowError maps a flow failure to 400 (bad input) or 502 (bad or
// missing model output). Only the flow's fixed message reaches the client.
func respondFlowError(c *gin.Context, err error) {
	var fe *services.FlowError
	if !errors.As(err, &fe) {
		respondInternal(c, "AI request failed", err)
		return
	}

	log := logger.FromContext(c.Request.Context()).With(
		slog.String("flow", fe.Flow),
		slog.String("error", fe.Err.Error()),
	)
	if errors.Is(err, services.ErrInvalidFlowInput) {
		log.Warn("flow input rejected")
		respondError(c, http.StatusBadRequest, fe.Message)
		return
	}
	log.Error("flow failed")
	respondError(c, http.StatusBadGateway, fe.Message)
}
