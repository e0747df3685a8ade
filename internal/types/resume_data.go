//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeData is the structured form state produced by the resume builder.
type ResumeData struct {
	Template       string               `json:"template,omitempty" validate:"max=64"`
	Personal       PersonalInfo         `json:"personal"`
	Summary        string               `json:"summary,omitempty" validate:"max=5000"`
	Experience     []ExperienceEntry    `json:"experience,omitempty" validate:"max=50,dive"`
	Education      []EducationEntry     `json:"education,omitempty" validate:"max=20,dive"`
	Skills         []string             `json:"skills,omitempty" validate:"max=100,dive,max=100"`
	Certifications []CertificationEntry `json:"certifications,omitempty" validate:"max=50,dive"`
	Projects       []ProjectEntry       `json:"projects,omitempty" validate:"max=50,dive"`
}

// PersonalInfo holds the contact block of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName,omitempty" validate:"max=200"`
	JobTitle string `json:"jobTitle,omitempty" validate:"max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" validate:"max=50"`
	Location string `json:"location,omitempty" validate:"max=200"`
	LinkedIn string `json:"linkedin,omitempty" validate:"max=300"`
	Website  string `json:"website,omitempty" validate:"max=300"`
}

// ExperienceEntry is a single job held by the candidate.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty" validate:"max=200"`
	Company     string `json:"company,omitempty" validate:"max=200"`
	Location    string `json:"location,omitempty" validate:"max=200"`
	StartDate   string `json:"startDate,omitempty" validate:"max=50"`
	EndDate     string `json:"endDate,omitempty" validate:"max=50"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty" validate:"max=10000"`
}

// EducationEntry is a single degree or program.
type EducationEntry struct {
	Degree         string `json:"degree,omitempty" validate:"max=200"`
	School         string `json:"school,omitempty" validate:"max=200"`
	Location       string `json:"location,omitempty" validate:"max=200"`
	GraduationDate string `json:"graduationDate,omitempty" validate:"max=50"`
	GPA            string `json:"gpa,omitempty" validate:"max=20"`
}

// CertificationEntry is a professional certification.
type CertificationEntry struct {
	Name   string `json:"name,omitempty" validate:"max=200"`
	Issuer string `json:"issuer,omitempty" validate:"max=200"`
	Date   string `json:"date,omitempty" validate:"max=50"`
}

// ProjectEntry is a side project or portfolio item.
type ProjectEntry struct {
	Name         string `json:"name,omitempty" validate:"max=200"`
	Description  string `json:"description,omitempty" validate:"max=5000"`
	Technologies string `json:"technologies,omitempty" validate:"max=500"`
	Link         string `json:"link,omitempty" validate:"max=300"`
}

// ATSResult is the builder's completeness score for structured resume data.
type ATSResult struct {
	Score   int      `json:"score"`
	Grade   string   `json:"grade"`
	Factors []string `json:"factors"`
}

// Validate validates the ResumeData using the validator.
func (d *ResumeData) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}
