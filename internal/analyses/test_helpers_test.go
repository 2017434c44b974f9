package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"

	"sentinel-backend/internal/incidents"
	"sentinel-backend/internal/llm"
	"sentinel-backend/internal/settings"
)

// validAssessmentJSON is a provider response that passes schema validation.
const validAssessmentJSON = `{
  "overall_sensitivity_score": 72,
  "sensitivity_level": "HIGH",
  "confidence": 0.9,
  "dimension_scores": {
    "pii": 85,
    "financial": 20,
    "strategic_business": 10,
    "intellectual_property": 5,
    "legal_compliance": 55,
    "operational_security": 15,
    "hr_employee": 40
  },
  "department_relevance": {
    "HR": "HIGH",
    "Legal": "CRITICAL",
    "Finance": "LOW"
  },
  "findings": [
    {
      "category": "pii",
      "severity": "HIGH",
      "description": "National identifiers present",
      "count": 2,
      "examples": ["***-**-6789"]
    }
  ],
  "regulatory_concerns": ["GDPR", "NONE"],
  "recommended_actions": ["Restrict distribution"],
  "reasoning": "Identifiers dominate the document."
}`

type stubLLM struct {
	raw   json.RawMessage
	err   error
	calls *int
}

func (s stubLLM) AnalyzeDocument(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	if s.calls != nil {
		*s.calls++
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.raw, nil
}

func (s stubLLM) Ping(ctx context.Context) error {
	return s.err
}

// setupAnalysisRouter wires the analyze routes over in-memory stores with the
// given stub provider. An empty apiKey leaves the provider unconfigured.
func setupAnalysisRouter(t *testing.T, stub stubLLM, apiKey string) (*gin.Engine, *incidents.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := settings.NewMemoryStore()
	if apiKey != "" {
		ctx := context.Background()
		current, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("load settings: %v", err)
		}
		current.APIKey = apiKey
		if err := store.Save(ctx, current); err != nil {
			t.Fatalf("save settings: %v", err)
		}
	}

	factory := func(cfg llm.ProviderConfig) (llm.Client, error) {
		return stub, nil
	}

	repo := incidents.NewMemoryRepo()
	svc := &Service{
		Settings:  &settings.Service{Store: store, NewLLM: factory},
		Incidents: &incidents.Service{Repo: repo},
		NewLLM:    factory,
	}

	router := gin.New()
	api := router.Group("/api")
	NewHandler(svc).RegisterRoutes(api)
	return router, repo
}

// failingRepo refuses every write so the incident-storage failure path can be
// exercised end to end.
type failingRepo struct {
	*incidents.MemoryRepo
}

func (failingRepo) Append(ctx context.Context, incident incidents.Incident) error {
	return errors.New("disk full")
}

// setupFailingStorageRouter wires the analyze routes over a repo whose writes
// always fail.
func setupFailingStorageRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := settings.NewMemoryStore()
	ctx := context.Background()
	current, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	current.APIKey = "sk-ant-test-key"
	if err := store.Save(ctx, current); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	factory := func(cfg llm.ProviderConfig) (llm.Client, error) {
		return stubLLM{raw: json.RawMessage(validAssessmentJSON)}, nil
	}
	svc := &Service{
		Settings:  &settings.Service{Store: store, NewLLM: factory},
		Incidents: &incidents.Service{Repo: failingRepo{incidents.NewMemoryRepo()}},
		NewLLM:    factory,
	}

	router := gin.New()
	api := router.Group("/api")
	NewHandler(svc).RegisterRoutes(api)
	return router
}

func decodeErrorCode(t *testing.T, body []byte) string {
	t.Helper()
	var parsed struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return parsed.Error.Code
}
