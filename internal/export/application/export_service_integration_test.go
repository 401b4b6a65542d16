package application

import (
	"bytes"
	"encoding/csv"
	"testing"

	shareddomain "backoffice/internal/shared/domain"
	"backoffice/internal/testhelpers"
)

func TestIntegrationExportOrdersToCSV(t *testing.T) {
	testhelpers.SkipIfNoDatabase(t)

	ctx := testhelpers.SetupTestContext(t)
	defer ctx.Cleanup()

	service := NewExportService(ctx.ExportQueryRepo, ctx.LeadQueryRepo)

	data, err := service.ExportOrdersToCSV(shareddomain.Period30Days, shareddomain.CustomRange{})
	if err != nil {
		t.Fatalf("ExportOrdersToCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("CSV invalide: %v", err)
	}
	if len(records) < 2 {
		t.Fatal("base seedée attendue: export sans lignes")
	}
	if records[0][0] != "order_id" {
		t.Errorf("en-têtes inattendus: %v", records[0])
	}
}

func TestIntegrationExportLeadsToCSV(t *testing.T) {
	testhelpers.SkipIfNoDatabase(t)

	ctx := testhelpers.SetupTestContext(t)
	defer ctx.Cleanup()

	service := NewExportService(ctx.ExportQueryRepo, ctx.LeadQueryRepo)

	data, err := service.ExportLeadsToCSV(shareddomain.PeriodYear, shareddomain.CustomRange{})
	if err != nil {
		t.Fatalf("ExportLeadsToCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("CSV invalide: %v", err)
	}
	if len(records) < 2 {
		t.Fatal("base seedée attendue: export sans prospects")
	}

	// Chaque ligne porte une région dérivée, jamais vide
	for _, record := range records[1:] {
		if record[6] == "" {
			t.Errorf("région manquante pour le prospect %s", record[0])
		}
	}
}

func BenchmarkIntegrationExportLeadsToCSV(b *testing.B) {
	testhelpers.SkipIfNoDatabase(b)

	ctx := testhelpers.SetupTestContext(b)
	defer ctx.Cleanup()

	service := NewExportService(ctx.ExportQueryRepo, ctx.LeadQueryRepo)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := service.ExportLeadsToCSV(shareddomain.PeriodYear, shareddomain.CustomRange{}); err != nil {
			b.Fatal(err)
		}
	}
}
