package dtos

import "time"

// CandidateProfile is the flattened view returned by GET /api/candidates/:id.
type CandidateProfile struct {
	ID                 uint              `json:"id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	Headline           string            `json:"headline"`
	Summary            string            `json:"summary"`
	Age                int               `json:"age"`
	DateOfBirth        string            `json:"dob"`
	Gender             string            `json:"gender"`
	Location           string            `json:"location"`
	PreferredLocations []string          `json:"preferredLocations"`
	Skills             []string          `json:"skills"`
	Languages          []string          `json:"languages"`
	CurrentSalary      float64           `json:"currentSalary"`
	ExpectedSalary     float64           `json:"expectedSalary"`
	CurrentSalaryText  string            `json:"currentSalaryText"`
	ExpectedSalaryText string            `json:"expectedSalaryText"`
	TotalExperience    string            `json:"totalExperience"`
	NoticePeriod       string            `json:"noticePeriod"`
	ResumeURL          string            `json:"resumeUrl"`
	Education          []EducationEntry  `json:"education"`
	Experience         []ExperienceEntry `json:"experience"`
	LastUpdated        time.Time         `json:"lastUpdated"`
}

type EducationEntry struct {
	ID             uint   `json:"id"`
	Qualification  string `json:"qualification"`
	Course         string `json:"course"`
	Specialization string `json:"specialization"`
	Institute      string `json:"institute"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Grade          string `json:"grade"`
}

type ExperienceEntry struct {
	ID          uint   `json:"id"`
	Company     string `json:"company"`
	Designation string `json:"designation"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsCurrent   bool   `json:"isCurrent"`
	Description string `json:"description"`
}
