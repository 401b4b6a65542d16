package application

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"backoffice/internal/export/domain"
	"backoffice/internal/export/infrastructure"
	geodomain "backoffice/internal/geo/domain"
	leadsdomain "backoffice/internal/leads/domain"
	shareddomain "backoffice/internal/shared/domain"
	sharedinfra "backoffice/internal/shared/infrastructure"
)

// LeadReader expose la lecture des prospects avec leur fiche complète
type LeadReader interface {
	FindAll() ([]*leadsdomain.Lead, error)
}

// ExportService génère les exports CSV du back-office en mémoire,
// sans écriture disque: le résultat part directement dans la réponse
// HTTP. Les prospects sont enrichis (région, zone climatique, score de
// complétude) au moment de l'export.
type ExportService struct {
	exportRepo  *infrastructure.ExportQueryRepository
	leads       LeadReader
	batchSize   int
	workerCount int
	now         func() time.Time
}

// NewExportService crée une nouvelle instance de ExportService
func NewExportService(
	exportRepo *infrastructure.ExportQueryRepository,
	leads LeadReader,
) *ExportService {
	return &ExportService{
		exportRepo:  exportRepo,
		leads:       leads,
		batchSize:   1000,
		workerCount: 4,
		now:         time.Now,
	}
}

// ExportOrdersToCSV génère le CSV des lignes de commande de la période
func (s *ExportService) ExportOrdersToCSV(period shareddomain.Period, custom shareddomain.CustomRange) ([]byte, error) {
	dateRange := shareddomain.ResolvePeriod(period, custom, s.now())

	orderRows, err := s.exportRepo.GetOrderRows(dateRange)
	if err != nil {
		return nil, fmt.Errorf("chargement des lignes de commande: %w", err)
	}

	buffer := bytes.NewBuffer(make([]byte, 0, 1024*1024))
	writer := csv.NewWriter(buffer)

	if err := writer.Write(domain.OrderCSVHeaders()); err != nil {
		return nil, err
	}

	for i, row := range orderRows {
		if err := writer.Write(row.ToCSVRow()); err != nil {
			return nil, err
		}
		// Flush périodique pour limiter le buffer interne du writer
		if (i+1)%s.batchSize == 0 {
			writer.Flush()
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// ExportLeadsToCSV génère le CSV des prospects créés sur la période.
// L'enrichissement de chaque prospect est du calcul pur; il est
// réparti par lots sur un pool de workers, chaque lot écrivant dans sa
// propre tranche du résultat.
func (s *ExportService) ExportLeadsToCSV(period shareddomain.Period, custom shareddomain.CustomRange) ([]byte, error) {
	dateRange := shareddomain.ResolvePeriod(period, custom, s.now())

	leads, err := s.leads.FindAll()
	if err != nil {
		return nil, fmt.Errorf("chargement des prospects: %w", err)
	}

	selected := make([]*leadsdomain.Lead, 0, len(leads))
	for _, lead := range leads {
		if dateRange.Contains(lead.CreatedAt()) {
			selected = append(selected, lead)
		}
	}

	exportRows := s.enrichLeads(selected)

	buffer := bytes.NewBuffer(make([]byte, 0, 1024*1024))
	writer := csv.NewWriter(buffer)

	if err := writer.Write(domain.LeadCSVHeaders()); err != nil {
		return nil, err
	}

	for i, row := range exportRows {
		if err := writer.Write(row.ToCSVRow()); err != nil {
			return nil, err
		}
		if (i+1)%s.batchSize == 0 {
			writer.Flush()
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// enrichLeads calcule les colonnes dérivées de chaque prospect. Les
// lots couvrent des tranches disjointes du tableau résultat, l'écriture
// se fait donc sans verrou.
func (s *ExportService) enrichLeads(leads []*leadsdomain.Lead) []*domain.LeadExportRow {
	exportRows := make([]*domain.LeadExportRow, len(leads))
	if len(leads) == 0 {
		return exportRows
	}

	pool := sharedinfra.NewWorkerPool(s.workerCount)
	pool.Start()

	for start := 0; start < len(leads); start += s.batchSize {
		end := start + s.batchSize
		if end > len(leads) {
			end = len(leads)
		}
		batchStart, batchEnd := start, end

		pool.Submit(func() error {
			for i := batchStart; i < batchEnd; i++ {
				exportRows[i] = buildLeadRow(leads[i])
			}
			return nil
		})
	}

	pool.Wait()

	return exportRows
}

func buildLeadRow(lead *leadsdomain.Lead) *domain.LeadExportRow {
	// Code postal absent: la cellule zone climatique reste vide, au
	// contraire d'un code renseigné mais inconnu ("Zone inconnue")
	climateZone, _ := geodomain.CalculateClimateZone(lead.Postcode())

	var score int
	if details := lead.Details(); details != nil {
		score = leadsdomain.CalculateCompletionScore(*details)
	}

	return &domain.LeadExportRow{
		ID:               int64(lead.ID()),
		FirstName:        lead.FirstName(),
		LastName:         lead.LastName(),
		Email:            lead.Email(),
		Phone:            lead.Phone(),
		Postcode:         lead.Postcode(),
		Region:           geodomain.CalculateRegion(lead.Postcode()),
		ClimateZone:      climateZone,
		Status:           string(lead.Status()),
		PotentialRevenue: lead.PotentialRevenue().Amount(),
		CompletionScore:  score,
		CreatedAt:        lead.CreatedAt(),
	}
}
