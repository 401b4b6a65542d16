package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	analyticsapp "backoffice/internal/analytics/application"
	exportapp "backoffice/internal/export/application"
	geodomain "backoffice/internal/geo/domain"
	leadsdomain "backoffice/internal/leads/domain"
	shareddomain "backoffice/internal/shared/domain"
)

// Handlers contient tous les handlers HTTP du back-office
type Handlers struct {
	dashboardService *analyticsapp.DashboardService
	exportService    *exportapp.ExportService
}

// NewHandlers crée une nouvelle instance des handlers
func NewHandlers(
	dashboardService *analyticsapp.DashboardService,
	exportService *exportapp.ExportService,
) *Handlers {
	return &Handlers{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// Health handler pour GET /api/health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// GetDashboard handler pour GET /api/dashboard
// Paramètres: period (today|7d|30d|month|quarter|year|custom, défaut
// 30d) et, pour custom, start et end au format YYYY-MM-DD.
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	period, custom, err := parsePeriodQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(period, custom)
	if err != nil {
		log.Printf("Error getting dashboard: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard)
}

// QualifyLead handler pour POST /api/leads/qualify
// Reçoit la fiche d'un prospect et retourne les valeurs dérivées:
// région administrative, zone climatique DPE et score de complétude.
// La zone climatique est null quand aucun code postal n'est fourni.
func (h *Handlers) QualifyLead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		Postcode string                  `json:"postcode"`
		Details  leadsdomain.LeadDetails `json:"details"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	response := struct {
		Region          string  `json:"region"`
		ClimateZone     *string `json:"climateZone"`
		CompletionScore int     `json:"completionScore"`
	}{
		Region:          geodomain.CalculateRegion(request.Postcode),
		CompletionScore: leadsdomain.CalculateCompletionScore(request.Details),
	}
	if zone, ok := geodomain.CalculateClimateZone(request.Postcode); ok {
		response.ClimateZone = &zone
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ExportLeadsCSV handler pour GET /api/export/leads-csv
func (h *Handlers) ExportLeadsCSV(w http.ResponseWriter, r *http.Request) {
	period, custom, err := parsePeriodQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	csvData, err := h.exportService.ExportLeadsToCSV(period, custom)
	if err != nil {
		log.Printf("Error exporting leads CSV: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=leads.csv")
	w.Write(csvData)
}

// ExportOrdersCSV handler pour GET /api/export/orders-csv
func (h *Handlers) ExportOrdersCSV(w http.ResponseWriter, r *http.Request) {
	period, custom, err := parsePeriodQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	csvData, err := h.exportService.ExportOrdersToCSV(period, custom)
	if err != nil {
		log.Printf("Error exporting orders CSV: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=orders.csv")
	w.Write(csvData)
}

// parsePeriodQuery extrait la période des paramètres de requête.
// Une période absente vaut 30d; une période inconnue est transmise
// telle quelle, la résolution retombant alors sur la même règle.
func parsePeriodQuery(r *http.Request) (shareddomain.Period, shareddomain.CustomRange, error) {
	period := shareddomain.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = shareddomain.Period30Days
	}

	var custom shareddomain.CustomRange
	if period == shareddomain.PeriodCustom {
		if raw := r.URL.Query().Get("start"); raw != "" {
			start, err := time.ParseInLocation("2006-01-02", raw, time.Local)
			if err != nil {
				return "", shareddomain.CustomRange{}, err
			}
			custom.Start = &start
		}
		if raw := r.URL.Query().Get("end"); raw != "" {
			end, err := time.ParseInLocation("2006-01-02", raw, time.Local)
			if err != nil {
				return "", shareddomain.CustomRange{}, err
			}
			custom.End = &end
		}
	}

	return period, custom, nil
}
