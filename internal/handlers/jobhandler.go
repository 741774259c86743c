package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-portal/internal/dtos"
	"github.com/justsurfingit/job-portal/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// GetPostedJobs is the GET /employer/posted-jobs endpoint
func (h *JobHandler) GetPostedJobs(c *gin.Context) {
	raw := c.Query("employerUserId")
	if raw == "" {
		respondError(c, http.StatusBadRequest, "employerUserId is required")
		return
	}
	employerID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || employerID == 0 {
		respondError(c, http.StatusBadRequest, "Invalid employerUserId")
		return
	}

	jobs, err := h.JobService.ListPostedJobs(c.Request.Context(), uint(employerID))
	if err != nil {
		respondInternal(c, "Failed to fetch posted jobs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// CreateJob is the POST /employer/jobs endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if req.MaxExperience > 0 && req.MinExperience > req.MaxExperience {
		respondError(c, http.StatusBadRequest, "minExperience cannot exceed maxExperience")
		return
	}
	if req.MaxSalary > 0 && req.MinSalary > req.MaxSalary {
		respondError(c, http.StatusBadRequest, "minSalary cannot exceed maxSalary")
		return
	}

	job, err := h.JobService.CreateJob(c.Request.Context(), &req)
	if errors.Is(err, services.ErrEmployerNotFound) {
		respondError(c, http.StatusNotFound, "Employer not found")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to create job", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}
