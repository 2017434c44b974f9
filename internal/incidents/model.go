package incidents

import "time"

// Incident is an append-only record of one completed analysis, kept for the
// dashboard. Records are never mutated after being written.
type Incident struct {
	ID                  string    `json:"id"`
	Timestamp           time.Time `json:"timestamp"`
	FileName            string    `json:"filename"`
	FileType            string    `json:"filetype"`
	FileSize            string    `json:"filesize"`
	SensitivityLevel    string    `json:"sensitivity_level"`
	OverallScore        int       `json:"overall_score"`
	TopCategories       []string  `json:"top_categories"`
	DepartmentsAffected []string  `json:"departments_affected"`
	Status              string    `json:"status"`
	Hash                string    `json:"hash"`
}

// Filter narrows incident listings for the dashboard.
type Filter struct {
	Severity   string
	Department string
	Limit      int
	Offset     int
}

// Page is one listing page plus the filtered total.
type Page struct {
	Total     int        `json:"total"`
	Offset    int        `json:"offset"`
	Limit     int        `json:"limit"`
	Incidents []Incident `json:"incidents"`
}

// Stats aggregates the incident log for the dashboard.
type Stats struct {
	TotalScans     int            `json:"total_scans"`
	BySeverity     map[string]int `json:"by_severity"`
	ByDepartment   map[string]int `json:"by_department"`
	ByCategory     map[string]int `json:"by_category"`
	AvgScore       float64        `json:"avg_score"`
	RecentCritical []Incident     `json:"recent_critical"`
}
