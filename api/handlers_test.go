package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type qualifyResponse struct {
	Region          string  `json:"region"`
	ClimateZone     *string `json:"climateZone"`
	CompletionScore int     `json:"completionScore"`
}

func postQualify(t *testing.T, body string) (*httptest.ResponseRecorder, qualifyResponse) {
	t.Helper()

	handlers := NewHandlers(nil, nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/leads/qualify", strings.NewReader(body))

	handlers.QualifyLead(recorder, request)

	var response qualifyResponse
	if recorder.Code == http.StatusOK {
		if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
			t.Fatalf("réponse JSON invalide: %v", err)
		}
	}
	return recorder, response
}

func TestQualifyLead(t *testing.T) {
	body := `{
		"postcode": "75001",
		"details": {
			"email": "jean@exemple.fr",
			"phone": "0612345678",
			"firstName": "Jean",
			"lastName": "Dupont"
		}
	}`

	recorder, response := postQualify(t, body)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", recorder.Code)
	}
	if response.Region != "Île-de-France" {
		t.Errorf("region: got %q", response.Region)
	}
	if response.ClimateZone == nil || *response.ClimateZone != "H1" {
		t.Errorf("climateZone: got %v, want H1", response.ClimateZone)
	}
	// 30 points sur 170 -> 18
	if response.CompletionScore != 18 {
		t.Errorf("completionScore: got %d, want 18", response.CompletionScore)
	}
}

func TestQualifyLead_MissingPostcode(t *testing.T) {
	recorder, response := postQualify(t, `{"postcode": "", "details": {}}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", recorder.Code)
	}
	if response.Region != "Code postal à remplir" {
		t.Errorf("region: got %q", response.Region)
	}
	// Code postal absent: zone climatique null, pas "Zone inconnue"
	if response.ClimateZone != nil {
		t.Errorf("climateZone: got %q, want null", *response.ClimateZone)
	}
	if response.CompletionScore != 0 {
		t.Errorf("completionScore: got %d, want 0", response.CompletionScore)
	}
}

func TestQualifyLead_UnknownPostcode(t *testing.T) {
	recorder, response := postQualify(t, `{"postcode": "98714", "details": {}}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", recorder.Code)
	}
	// Code renseigné mais hors référentiel: chaîne sentinelle, pas null
	if response.ClimateZone == nil || *response.ClimateZone != "Zone inconnue" {
		t.Errorf("climateZone: got %v, want Zone inconnue", response.ClimateZone)
	}
}

func TestQualifyLead_InvalidBody(t *testing.T) {
	recorder, _ := postQualify(t, `{not json`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", recorder.Code)
	}
}

func TestQualifyLead_MethodNotAllowed(t *testing.T) {
	handlers := NewHandlers(nil, nil)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/leads/qualify", nil)

	handlers.QualifyLead(recorder, request)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", recorder.Code)
	}
}

func TestParsePeriodQuery(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/dashboard?period=custom&start=2024-03-01&end=2024-03-15", nil)

	period, custom, err := parsePeriodQuery(request)
	if err != nil {
		t.Fatalf("parsePeriodQuery: %v", err)
	}
	if period != "custom" {
		t.Errorf("period: got %q", period)
	}
	if custom.Start == nil || custom.Start.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("start inattendu: %v", custom.Start)
	}
	if custom.End == nil || custom.End.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("end inattendu: %v", custom.End)
	}
}

func TestParsePeriodQuery_Defaults(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)

	period, custom, err := parsePeriodQuery(request)
	if err != nil {
		t.Fatalf("parsePeriodQuery: %v", err)
	}
	if period != "30d" {
		t.Errorf("période par défaut: got %q, want 30d", period)
	}
	if custom.Start != nil || custom.End != nil {
		t.Errorf("bornes custom inattendues: %+v", custom)
	}
}

func TestParsePeriodQuery_InvalidDate(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/dashboard?period=custom&start=15-03-2024", nil)

	if _, _, err := parsePeriodQuery(request); err == nil {
		t.Error("une date mal formée doit être rejetée")
	}
}
