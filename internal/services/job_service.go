package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-portal/internal/dtos"
	"github.com/justsurfingit/job-portal/internal/models"
	"github.com/justsurfingit/job-portal/internal/normalize"
	"gorm.io/gorm"
)

const (
	PostedJobsLimit = 20
	maxKeywords     = 5
)

var ErrEmployerNotFound = errors.New("employer not found")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*dtos.PostedJob, error) {
	db := s.DB.WithContext(ctx)

	var employer models.User
	err := db.Where("id = ? AND role = ?", req.EmployerUserID, models.RoleEmployer).First(&employer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load employer %d: %w", req.EmployerUserID, err)
	}

	status := req.Status
	if status == "" {
		status = models.JobStatusActive
	}
	openings := req.Openings
	if openings == 0 {
		openings = 1
	}

	job := &models.Job{
		EmployerID:     employer.ID,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		SkillsRequired: normalize.JoinDelimited(req.SkillsRequired),
		JobLocation:    normalize.JoinDelimited(req.JobLocations),
		Qualification:  normalize.JoinDelimited(req.Qualifications),
		Industry:       req.Industry,
		Department:     req.Department,
		EmploymentType: req.EmploymentType,
		WorkMode:       req.WorkMode,
		MinExperience:  req.MinExperience,
		MaxExperience:  req.MaxExperience,
		MinSalary:      req.MinSalary,
		MaxSalary:      req.MaxSalary,
		Openings:       openings,
		Status:         status,
	}
	if err := db.Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	posted := FormatPostedJob(job)
	return &posted, nil
}

// ListPostedJobs returns the employer's newest active or draft jobs,
// capped at PostedJobsLimit.
func (s *JobService) ListPostedJobs(ctx context.Context, employerID uint) ([]dtos.PostedJob, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).
		Where("employer_id = ? AND status IN ?", employerID, []string{models.JobStatusActive, models.JobStatusDraft}).
		Order("created_at DESC").
		Order("id DESC").
		Limit(PostedJobsLimit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("list jobs for employer %d: %w", employerID, err)
	}

	out := make([]dtos.PostedJob, 0, len(jobs))
	for i := range jobs {
		out = append(out, FormatPostedJob(&jobs[i]))
	}
	return out, nil
}

// FormatPostedJob splits the stored delimited columns into the filter
// object used by job search.
func FormatPostedJob(job *models.Job) dtos.PostedJob {
	return dtos.PostedJob{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Status:      job.Status,
		Openings:    job.Openings,
		PostedAt:    job.CreatedAt,
		Filters: dtos.JobFilters{
			Keywords:        normalize.Truncate(normalize.SplitDelimited(job.SkillsRequired), maxKeywords),
			Locations:       normalize.SplitDelimited(job.JobLocation),
			Qualifications:  normalize.SplitDelimited(job.Qualification),
			Industries:      normalize.SplitDelimited(job.Industry),
			Departments:     normalize.SplitDelimited(job.Department),
			EmploymentTypes: normalize.SplitDelimited(job.EmploymentType),
			WorkModes:       normalize.SplitDelimited(job.WorkMode),
			Experience: dtos.NumericRange{
				Min: job.MinExperience,
				Max: job.MaxExperience,
			},
			Salary: dtos.NumericRangeF{
				Min: job.MinSalary,
				Max: job.MaxSalary,
			},
		},
	}
}
