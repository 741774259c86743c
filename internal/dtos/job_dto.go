package dtos

import "time"

type JobCreationRequest struct {
	EmployerUserID uint   `json:"employerUserId" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description" binding:"required"`

	// Optional Fields
	SkillsRequired []string `json:"skillsRequired"`
	JobLocations   []string `json:"jobLocations"`
	Qualifications []string `json:"qualifications"`
	Industry       string   `json:"industry"`
	Department     string   `json:"department"`
	EmploymentType string   `json:"employmentType"`
	WorkMode       string   `json:"workMode"`
	MinExperience  int      `json:"minExperience" binding:"gte=0"`
	MaxExperience  int      `json:"maxExperience" binding:"gte=0"`
	MinSalary      float64  `json:"minSalary" binding:"gte=0"`
	MaxSalary      float64  `json:"maxSalary" binding:"gte=0"`
	Openings       int      `json:"openings" binding:"gte=0"`
	Status         string   `json:"status" binding:"omitempty,oneof=active draft closed"` // Defaults to "active" if empty
}

// PostedJob is a stored job reshaped for the job-search UI.
type PostedJob struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Openings    int        `json:"openings"`
	PostedAt    time.Time  `json:"postedAt"`
	Filters     JobFilters `json:"filters"`
}

// JobFilters mirrors the search form's filter object.
type JobFilters struct {
	Keywords        []string      `json:"keywords"`
	Locations       []string      `json:"locations"`
	Qualifications  []string      `json:"qualifications"`
	Industries      []string      `json:"industries"`
	Departments     []string      `json:"departments"`
	EmploymentTypes []string      `json:"employmentTypes"`
	WorkModes       []string      `json:"workModes"`
	Experience      NumericRange  `json:"experience"`
	Salary          NumericRangeF `json:"salary"`
}

type NumericRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type NumericRangeF struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
