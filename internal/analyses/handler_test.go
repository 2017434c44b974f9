package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"sentinel-backend/internal/llm"
)

func TestAnalyzeTextSuccess(t *testing.T) {
	router, repo := setupAnalysisRouter(t, stubLLM{raw: json.RawMessage(validAssessmentJSON)}, "sk-ant-test-key")

	payload := map[string]string{
		"document_text": "John Doe SSN: 123-45-6789",
		"filename":      "hr_records.txt",
		"filetype":      "txt",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.ID == "" {
		t.Fatalf("expected analysis id, got empty")
	}
	if result.OverallSensitivityScore != 72 {
		t.Fatalf("expected score 72, got %d", result.OverallSensitivityScore)
	}
	if result.SensitivityLevel != LevelHigh {
		t.Fatalf("expected level HIGH for score 72, got %q", result.SensitivityLevel)
	}
	if result.DimensionScores.PII != 85 {
		t.Fatalf("expected pii 85, got %d", result.DimensionScores.PII)
	}
	if result.Status != StatusCompleted {
		t.Fatalf("expected status completed, got %q", result.Status)
	}
	if got := result.DepartmentRelevance["Sales"]; got != "NONE" {
		t.Fatalf("expected Sales NONE, got %q", got)
	}
	if len(result.RegulatoryConcerns) != 1 || result.RegulatoryConcerns[0] != "GDPR" {
		t.Fatalf("expected regulatory concerns [GDPR], got %v", result.RegulatoryConcerns)
	}

	records, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("list incidents: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 incident recorded, got %d", len(records))
	}
	incident := records[0]
	if incident.ID != result.ID {
		t.Fatalf("expected incident id %q, got %q", result.ID, incident.ID)
	}
	if incident.FileName != "hr_records.txt" {
		t.Fatalf("expected incident filename hr_records.txt, got %q", incident.FileName)
	}
	if incident.Hash == "" {
		t.Fatalf("expected document hash on incident, got empty")
	}
	if len(incident.TopCategories) != 2 {
		t.Fatalf("expected 2 top categories, got %v", incident.TopCategories)
	}
}

func TestAnalyzeTextEmptyDocument(t *testing.T) {
	calls := 0
	router, repo := setupAnalysisRouter(t, stubLLM{raw: json.RawMessage(validAssessmentJSON), calls: &calls}, "sk-ant-test-key")

	body := []byte(`{"document_text": "   "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != ErrorCodeValidation {
		t.Fatalf("expected code %s, got %s", ErrorCodeValidation, code)
	}
	if calls != 0 {
		t.Fatalf("expected no provider call for empty document, got %d", calls)
	}
	records, _ := repo.All(context.Background())
	if len(records) != 0 {
		t.Fatalf("expected no incident recorded, got %d", len(records))
	}
}

func TestAnalyzeTextWithoutAPIKey(t *testing.T) {
	router, _ := setupAnalysisRouter(t, stubLLM{raw: json.RawMessage(validAssessmentJSON)}, "")

	body := []byte(`{"document_text": "quarterly numbers"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != ErrorCodeNotConfigured {
		t.Fatalf("expected code %s, got %s", ErrorCodeNotConfigured, code)
	}
}

func TestAnalyzeTextProviderUnreachable(t *testing.T) {
	router, repo := setupAnalysisRouter(t, stubLLM{err: llm.ErrUnreachable}, "sk-ant-test-key")

	body := []byte(`{"document_text": "quarterly numbers"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != ErrorCodeProviderUnreachable {
		t.Fatalf("expected code %s, got %s", ErrorCodeProviderUnreachable, code)
	}
	records, _ := repo.All(context.Background())
	if len(records) != 0 {
		t.Fatalf("expected no incident on provider failure, got %d", len(records))
	}
}

func TestAnalyzeTextSchemaMismatch(t *testing.T) {
	router, repo := setupAnalysisRouter(t, stubLLM{raw: json.RawMessage(`{"verdict": "looks fine"}`)}, "sk-ant-test-key")

	body := []byte(`{"document_text": "quarterly numbers"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", resp.Code)
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != ErrorCodeProviderSchema {
		t.Fatalf("expected code %s, got %s", ErrorCodeProviderSchema, code)
	}
	records, _ := repo.All(context.Background())
	if len(records) != 0 {
		t.Fatalf("expected no incident on schema mismatch, got %d", len(records))
	}
}

func TestAnalyzeFileSuccess(t *testing.T) {
	router, _ := setupAnalysisRouter(t, stubLLM{raw: json.RawMessage(validAssessmentJSON)}, "sk-ant-test-key")

	content := []byte("Employee roster with salaries")
	body, contentType := multipartFile(t, "roster.csv", content)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/file", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.FileName != "roster.csv" {
		t.Fatalf("expected filename roster.csv, got %q", result.FileName)
	}
	if result.FileType != "csv" {
		t.Fatalf("expected filetype csv, got %q", result.FileType)
	}
	if result.FileSize != "29 bytes" {
		t.Fatalf("expected filesize 29 bytes, got %q", result.FileSize)
	}
}

func TestAnalyzeFileUnsupportedType(t *testing.T) {
	calls := 0
	router, _ := setupAnalysisRouter(t, stubLLM{raw: json.RawMessage(validAssessmentJSON), calls: &calls}, "sk-ant-test-key")

	body, contentType := multipartFile(t, "scan.pdf", []byte("%PDF-1.7"))

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/file", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != ErrorCodeValidation {
		t.Fatalf("expected code %s, got %s", ErrorCodeValidation, code)
	}
	if calls != 0 {
		t.Fatalf("expected no provider call for unsupported file, got %d", calls)
	}
}

func TestAnalyzeFileMissing(t *testing.T) {
	router, _ := setupAnalysisRouter(t, stubLLM{raw: json.RawMessage(validAssessmentJSON)}, "sk-ant-test-key")

	req := httptest.NewRequest(http.MethodPost, "/api/analyze/file", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=empty")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAnalyzeTextStorageFailure(t *testing.T) {
	router := setupFailingStorageRouter(t)

	body := []byte(`{"document_text": "quarterly numbers"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze/text", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != ErrorCodeStorage {
		t.Fatalf("expected code %s, got %s", ErrorCodeStorage, code)
	}
}

func multipartFile(t *testing.T, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}
