package dtos

type JobDescriptionInput struct {
	JobTitle          string   `json:"jobTitle"`
	CompanyName       string   `json:"companyName,omitempty"`
	Location          string   `json:"location,omitempty"`
	ExperienceLevel   string   `json:"experienceLevel,omitempty"`
	EmploymentType    string   `json:"employmentType,omitempty"`
	Skills            []string `json:"skills,omitempty"`
	AdditionalDetails string   `json:"additionalDetails,omitempty"`
}

type JobDescriptionOutput struct {
	JobDescription string `json:"jobDescription"`
}

type SkillSuggestionInput struct {
	JobTitle       string   `json:"jobTitle"`
	JobDescription string   `json:"jobDescription,omitempty"`
	ExistingSkills []string `json:"existingSkills,omitempty"`
	Limit          int      `json:"limit,omitempty"`
}

type SkillSuggestionOutput struct {
	Skills []string `json:"skills"`
}

type JobMatchInput struct {
	ResumeText      string   `json:"resumeText"`
	JobDescriptions []string `json:"jobDescriptions"`
}

type JobMatchOutput struct {
	RankedJobDescriptions []string `json:"rankedJobDescriptions"`
}

type JobExtractionInput struct {
	RawText string `json:"rawText"`
}

type JobExtractionOutput struct {
	Title          string   `json:"title"`
	CompanyName    string   `json:"companyName"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	Skills         []string `json:"skills"`
	Qualifications []string `json:"qualifications"`
	EmploymentType string   `json:"employmentType"`
	SalaryRange    string   `json:"salaryRange"`
}
