package models

import (
	"time"
)

const (
	RoleJobSeeker = "jobSeeker"
	RoleEmployer  = "employer"
)

const (
	JobStatusActive = "active"
	JobStatusDraft  = "draft"
	JobStatusClosed = "closed"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `gorm:"not null;index" json:"role"`
}

// JobSeekerProfile keeps list-valued fields (skills, locations, languages)
// as comma-joined text.
type JobSeekerProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"user"`

	Headline           string `json:"headline"`
	Summary            string `gorm:"type:text" json:"summary"`
	DateOfBirth        string `json:"date_of_birth"`
	Gender             string `json:"gender"`
	CurrentLocation    string `json:"current_location"`
	PreferredLocations string `gorm:"type:text" json:"preferred_locations"`
	Skills             string `gorm:"type:text" json:"skills"`
	Languages          string `gorm:"type:text" json:"languages"`
	CurrentSalary      string `json:"current_salary"`
	ExpectedSalary     string `json:"expected_salary"`
	TotalExperience    string `json:"total_experience"`
	NoticePeriod       string `json:"notice_period"`
	ResumeURL          string `json:"resume_url"`

	Education  []EducationDetail  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education,omitempty"`
	Experience []ExperienceDetail `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience,omitempty"`
}

type EducationDetail struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ProfileID      uint   `gorm:"index;not null" json:"profile_id"`
	Qualification  string `json:"qualification"`
	Course         string `json:"course"`
	Specialization string `json:"specialization"`
	Institute      string `json:"institute"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Grade          string `json:"grade"`
}

type ExperienceDetail struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ProfileID   uint   `gorm:"index;not null" json:"profile_id"`
	Company     string `json:"company"`
	Designation string `json:"designation"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCurrent   bool   `json:"is_current"`
	Description string `gorm:"type:text" json:"description"`
}

// Job is an employer's posting. SkillsRequired, JobLocation and
// Qualification are comma-joined lists.
type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EmployerID uint `gorm:"index;not null" json:"employer_id"`
	Employer   User `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`

	Title          string  `gorm:"not null" json:"title"`
	Description    string  `gorm:"type:text" json:"description"`
	SkillsRequired string  `gorm:"type:text" json:"skills_required"`
	JobLocation    string  `gorm:"type:text" json:"job_location"`
	Qualification  string  `gorm:"type:text" json:"qualification"`
	Industry       string  `json:"industry"`
	Department     string  `json:"department"`
	EmploymentType string  `json:"employment_type"`
	WorkMode       string  `json:"work_mode"`
	MinExperience  int     `json:"min_experience"`
	MaxExperience  int     `json:"max_experience"`
	MinSalary      float64 `json:"min_salary"`
	MaxSalary      float64 `json:"max_salary"`
	Openings       int     `gorm:"default:1" json:"openings"`
	Status         string  `gorm:"default:'active';index" json:"status"`
}

// SavedSearch is not part of the startup migration; the saved-search
// service creates its table on demand.
type SavedSearch struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Filters   string    `gorm:"type:text;not null" json:"filters"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// CoreModels are migrated at startup.
func CoreModels() []any {
	return []any{&User{}, &JobSeekerProfile{}, &EducationDetail{}, &ExperienceDetail{}, &Job{}}
}
