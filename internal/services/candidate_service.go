package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/justsurfingit/job-portal/internal/dtos"
	"github.com/justsurfingit/job-portal/internal/models"
	"github.com/justsurfingit/job-portal/internal/normalize"
	"gorm.io/gorm"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewCandidateService(db *gorm.DB) *CandidateService {
	return &CandidateService{
		DB:  db,
		Now: time.Now,
	}
}

// GetCandidateProfile joins the user with their job-seeker profile, loads
// education and experience, and flattens everything into one response.
func (s *CandidateService) GetCandidateProfile(ctx context.Context, id uint) (*dtos.CandidateProfile, error) {
	db := s.DB.WithContext(ctx)

	var profile models.JobSeekerProfile
	err := db.InnerJoins("User").
		Where("job_seeker_profiles.user_id = ?", id).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load candidate %d: %w", id, err)
	}
	if profile.User.Role != models.RoleJobSeeker {
		return nil, ErrCandidateNotFound
	}

	var education []models.EducationDetail
	if err := db.Where("profile_id = ?", profile.ID).Order("end_date DESC").Find(&education).Error; err != nil {
		return nil, fmt.Errorf("load education for candidate %d: %w", id, err)
	}

	var experience []models.ExperienceDetail
	if err := db.Where("profile_id = ?", profile.ID).Order("start_date DESC").Find(&experience).Error; err != nil {
		return nil, fmt.Errorf("load experience for candidate %d: %w", id, err)
	}

	return s.toCandidateProfile(&profile, education, experience), nil
}

func (s *CandidateService) toCandidateProfile(p *models.JobSeekerProfile, education []models.EducationDetail, experience []models.ExperienceDetail) *dtos.CandidateProfile {
	age, dob := normalize.AgeOrDefault(p.DateOfBirth, s.Now())

	out := &dtos.CandidateProfile{
		ID:                 p.User.ID,
		Name:               p.User.Name,
		Email:              p.User.Email,
		Phone:              p.User.Phone,
		Headline:           p.Headline,
		Summary:            p.Summary,
		Age:                age,
		DateOfBirth:        dob,
		Gender:             p.Gender,
		Location:           p.CurrentLocation,
		PreferredLocations: normalize.SplitDelimited(p.PreferredLocations),
		Skills:             normalize.SplitDelimited(p.Skills),
		Languages:          normalize.SplitDelimited(p.Languages),
		CurrentSalary:      normalize.ParseSalary(p.CurrentSalary),
		ExpectedSalary:     normalize.ParseSalary(p.ExpectedSalary),
		CurrentSalaryText:  p.CurrentSalary,
		ExpectedSalaryText: p.ExpectedSalary,
		TotalExperience:    p.TotalExperience,
		NoticePeriod:       p.NoticePeriod,
		ResumeURL:          p.ResumeURL,
		Education:          make([]dtos.EducationEntry, 0, len(education)),
		Experience:         make([]dtos.ExperienceEntry, 0, len(experience)),
		LastUpdated:        p.UpdatedAt,
	}

	for _, e := range education {
		out.Education = append(out.Education, dtos.EducationEntry{
			ID:             e.ID,
			Qualification:  e.Qualification,
			Course:         e.Course,
			Specialization: e.Specialization,
			Institute:      e.Institute,
			StartDate:      e.StartDate,
			EndDate:        e.EndDate,
			Grade:          e.Grade,
		})
	}
	for _, e := range experience {
		out.Experience = append(out.Experience, dtos.ExperienceEntry{
			ID:          e.ID,
			Company:     e.Company,
			Designation: e.Designation,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			IsCurrent:   e.IsCurrent,
			Description: e.Description,
		})
	}
	return out
}
