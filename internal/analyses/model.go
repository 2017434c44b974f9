package analyses

import (
	"time"

	"sentinel-backend/internal/incidents"
)

// Analysis status values. A result is only ever returned completed; failures
// surface as errors, never as partially-filled results.
const StatusCompleted = "completed"

// Sensitivity levels, ordered from least to most sensitive.
const (
	LevelLow      = "LOW"
	LevelMedium   = "MEDIUM"
	LevelHigh     = "HIGH"
	LevelCritical = "CRITICAL"
)

// Level thresholds over the overall score. The mapping is local and
// deterministic: a higher score never yields a lower level.
const (
	lowMax    = 30
	mediumMax = 60
	highMax   = 85
)

// LevelForScore maps a validated overall score onto its sensitivity level.
func LevelForScore(score int) string {
	switch {
	case score <= lowMax:
		return LevelLow
	case score <= mediumMax:
		return LevelMedium
	case score <= highMax:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// Departments is the fixed department taxonomy, in presentation order.
var Departments = []string{
	"HR", "Finance", "Legal", "IT_Security", "Executive",
	"RnD", "Sales", "Operations", "Marketing",
}

// RegulatoryVocabulary is the fixed set of regulatory concern tags.
var RegulatoryVocabulary = []string{"GDPR", "HIPAA", "PCI-DSS", "SOX"}

// DimensionScores holds the seven fixed sensitivity dimensions.
type DimensionScores struct {
	PII                  int `json:"pii"`
	Financial            int `json:"financial"`
	StrategicBusiness    int `json:"strategic_business"`
	IntellectualProperty int `json:"intellectual_property"`
	LegalCompliance      int `json:"legal_compliance"`
	OperationalSecurity  int `json:"operational_security"`
	HREmployee           int `json:"hr_employee"`
}

// dimensionKeys lists the wire names of the seven dimensions, in order.
var dimensionKeys = []string{
	"pii", "financial", "strategic_business", "intellectual_property",
	"legal_compliance", "operational_security", "hr_employee",
}

// ByName returns the dimension scores keyed by wire name.
func (d DimensionScores) ByName() map[string]int {
	return map[string]int{
		"pii":                   d.PII,
		"financial":             d.Financial,
		"strategic_business":    d.StrategicBusiness,
		"intellectual_property": d.IntellectualProperty,
		"legal_compliance":      d.LegalCompliance,
		"operational_security":  d.OperationalSecurity,
		"hr_employee":           d.HREmployee,
	}
}

// Finding is one provider-reported observation, values redacted provider-side.
type Finding struct {
	Category    string   `json:"category"`
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
	Count       int      `json:"count"`
	Examples    []string `json:"examples"`
}

// Result is the full analysis response returned to the client and used to
// derive the incident record.
type Result struct {
	ID                      string            `json:"id"`
	Timestamp               time.Time         `json:"timestamp"`
	FileName                string            `json:"filename"`
	FileType                string            `json:"filetype"`
	FileSize                string            `json:"filesize"`
	OverallSensitivityScore int               `json:"overall_sensitivity_score"`
	SensitivityLevel        string            `json:"sensitivity_level"`
	Confidence              float64           `json:"confidence"`
	DimensionScores         DimensionScores   `json:"dimension_scores"`
	DepartmentRelevance     map[string]string `json:"department_relevance"`
	Findings                []Finding         `json:"findings"`
	RegulatoryConcerns      []string          `json:"regulatory_concerns"`
	RecommendedActions      []string          `json:"recommended_actions"`
	Reasoning               string            `json:"reasoning"`
	Status                  string            `json:"status"`
}

// topCategoryThreshold marks a dimension as a top category for the incident.
const topCategoryThreshold = 50

// Incident derives the append-only dashboard record from a completed result.
func (r Result) Incident(docHash string) incidents.Incident {
	scores := r.DimensionScores.ByName()
	topCategories := []string{}
	for _, key := range dimensionKeys {
		if scores[key] > topCategoryThreshold {
			topCategories = append(topCategories, key)
		}
	}

	affected := []string{}
	for _, dept := range Departments {
		tier := r.DepartmentRelevance[dept]
		if tier == LevelHigh || tier == LevelCritical {
			affected = append(affected, dept)
		}
	}

	return incidents.Incident{
		ID:                  r.ID,
		Timestamp:           r.Timestamp,
		FileName:            r.FileName,
		FileType:            r.FileType,
		FileSize:            r.FileSize,
		SensitivityLevel:    r.SensitivityLevel,
		OverallScore:        r.OverallSensitivityScore,
		TopCategories:       topCategories,
		DepartmentsAffected: affected,
		Status:              r.Status,
		Hash:                docHash,
	}
}
