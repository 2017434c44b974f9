package analyses

// Provider assessment schema:
// {
//   "overall_sensitivity_score": "number (0-100)",
//   "sensitivity_level": "LOW | MEDIUM | HIGH | CRITICAL (advisory; recomputed locally)",
//   "confidence": "number (0.0-1.0)",
//   "dimension_scores": {
//     "pii": 0, "financial": 0, "strategic_business": 0,
//     "intellectual_property": 0, "legal_compliance": 0,
//     "operational_security": 0, "hr_employee": 0
//   },
//   "department_relevance": {"HR": "NONE|LOW|MEDIUM|HIGH|CRITICAL", ...},
//   "findings": [
//     {"category": "string", "severity": "LOW|MEDIUM|HIGH|CRITICAL",
//      "description": "string", "count": 1, "examples": ["string"]}
//   ],
//   "regulatory_concerns": ["GDPR | HIPAA | PCI-DSS | SOX | NONE"],
//   "recommended_actions": ["string"],
//   "reasoning": "string"
// }

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Assessment is the validated provider output. Parsing is strict: a payload
// that violates the schema yields an ErrSchemaMismatch error, never a
// zero-filled assessment.
type Assessment struct {
	OverallSensitivityScore int
	Confidence              float64
	DimensionScores         DimensionScores
	DepartmentRelevance     map[string]string
	Findings                []Finding
	RegulatoryConcerns      []string
	RecommendedActions      []string
	Reasoning               string
}

type rawAssessment struct {
	OverallSensitivityScore *int              `json:"overall_sensitivity_score"`
	SensitivityLevel        string            `json:"sensitivity_level"`
	Confidence              *float64          `json:"confidence"`
	DimensionScores         map[string]int    `json:"dimension_scores"`
	DepartmentRelevance     map[string]string `json:"department_relevance"`
	Findings                []rawFinding      `json:"findings"`
	RegulatoryConcerns      []string          `json:"regulatory_concerns"`
	RecommendedActions      []string          `json:"recommended_actions"`
	Reasoning               string            `json:"reasoning"`
}

type rawFinding struct {
	Category    string   `json:"category"`
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
	Count       int      `json:"count"`
	Examples    []string `json:"examples"`
}

var relevanceTiers = map[string]struct{}{
	"NONE": {}, LevelLow: {}, LevelMedium: {}, LevelHigh: {}, LevelCritical: {},
}

var findingSeverities = map[string]struct{}{
	LevelLow: {}, LevelMedium: {}, LevelHigh: {}, LevelCritical: {},
}

// ParseAssessment decodes and validates the provider's raw JSON output.
func ParseAssessment(raw json.RawMessage) (Assessment, error) {
	var parsed rawAssessment
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Assessment{}, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	if parsed.OverallSensitivityScore == nil {
		return Assessment{}, fmt.Errorf("%w: overall_sensitivity_score missing", ErrSchemaMismatch)
	}
	score := *parsed.OverallSensitivityScore
	if score < 0 || score > 100 {
		return Assessment{}, fmt.Errorf("%w: overall_sensitivity_score %d out of range [0,100]", ErrSchemaMismatch, score)
	}

	if parsed.Confidence == nil {
		return Assessment{}, fmt.Errorf("%w: confidence missing", ErrSchemaMismatch)
	}
	confidence := *parsed.Confidence
	if confidence < 0 || confidence > 1 {
		return Assessment{}, fmt.Errorf("%w: confidence %v out of range [0,1]", ErrSchemaMismatch, confidence)
	}

	dims, err := parseDimensions(parsed.DimensionScores)
	if err != nil {
		return Assessment{}, err
	}

	relevance, err := parseRelevance(parsed.DepartmentRelevance)
	if err != nil {
		return Assessment{}, err
	}

	findings, err := parseFindings(parsed.Findings)
	if err != nil {
		return Assessment{}, err
	}

	return Assessment{
		OverallSensitivityScore: score,
		Confidence:              confidence,
		DimensionScores:         dims,
		DepartmentRelevance:     relevance,
		Findings:                findings,
		RegulatoryConcerns:      filterRegulatory(parsed.RegulatoryConcerns),
		RecommendedActions:      orEmpty(parsed.RecommendedActions),
		Reasoning:               parsed.Reasoning,
	}, nil
}

// parseDimensions requires exactly the seven known keys, each in [0,100].
func parseDimensions(scores map[string]int) (DimensionScores, error) {
	if scores == nil {
		return DimensionScores{}, fmt.Errorf("%w: dimension_scores missing", ErrSchemaMismatch)
	}
	for key := range scores {
		if !isDimensionKey(key) {
			return DimensionScores{}, fmt.Errorf("%w: unknown dimension %q", ErrSchemaMismatch, key)
		}
	}
	for _, key := range dimensionKeys {
		value, ok := scores[key]
		if !ok {
			return DimensionScores{}, fmt.Errorf("%w: dimension %q missing", ErrSchemaMismatch, key)
		}
		if value < 0 || value > 100 {
			return DimensionScores{}, fmt.Errorf("%w: dimension %q score %d out of range [0,100]", ErrSchemaMismatch, key, value)
		}
	}
	return DimensionScores{
		PII:                  scores["pii"],
		Financial:            scores["financial"],
		StrategicBusiness:    scores["strategic_business"],
		IntellectualProperty: scores["intellectual_property"],
		LegalCompliance:      scores["legal_compliance"],
		OperationalSecurity:  scores["operational_security"],
		HREmployee:           scores["hr_employee"],
	}, nil
}

// parseRelevance normalizes tiers and fills missing departments with NONE.
// Departments outside the taxonomy are rejected.
func parseRelevance(relevance map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(Departments))
	for _, dept := range Departments {
		out[dept] = "NONE"
	}
	for dept, tier := range relevance {
		if _, ok := out[dept]; !ok {
			return nil, fmt.Errorf("%w: unknown department %q", ErrSchemaMismatch, dept)
		}
		normalized := strings.ToUpper(strings.TrimSpace(tier))
		if _, ok := relevanceTiers[normalized]; !ok {
			return nil, fmt.Errorf("%w: department %q tier %q invalid", ErrSchemaMismatch, dept, tier)
		}
		out[dept] = normalized
	}
	return out, nil
}

func parseFindings(raw []rawFinding) ([]Finding, error) {
	findings := make([]Finding, 0, len(raw))
	for i, f := range raw {
		severity := strings.ToUpper(strings.TrimSpace(f.Severity))
		if _, ok := findingSeverities[severity]; !ok {
			return nil, fmt.Errorf("%w: finding %d severity %q invalid", ErrSchemaMismatch, i, f.Severity)
		}
		count := f.Count
		if count <= 0 {
			count = 1
		}
		findings = append(findings, Finding{
			Category:    f.Category,
			Severity:    severity,
			Description: f.Description,
			Count:       count,
			Examples:    orEmpty(f.Examples),
		})
	}
	return findings, nil
}

// filterRegulatory keeps only tags from the fixed vocabulary; the provider's
// "NONE" marker and anything unrecognized are dropped.
func filterRegulatory(raw []string) []string {
	out := []string{}
	for _, tag := range raw {
		normalized := strings.ToUpper(strings.TrimSpace(tag))
		for _, known := range RegulatoryVocabulary {
			if normalized == known {
				out = append(out, known)
				break
			}
		}
	}
	return out
}

func isDimensionKey(key string) bool {
	for _, k := range dimensionKeys {
		if k == key {
			return true
		}
	}
	return false
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
