package application

import (
	"testing"

	shareddomain "backoffice/internal/shared/domain"
	"backoffice/internal/testhelpers"
)

// ========================================
// INTEGRATION TESTS - REAL DATABASE
// ========================================
// Ces tests utilisent PostgreSQL (base seedée avec cmd/seed) et
// vérifient le pipeline complet: requêtes SQL, agrégations, cache.

func setupDashboardService(ctx *testhelpers.TestContext) *DashboardService {
	return NewDashboardService(
		ctx.OrderQueryRepo,
		ctx.LeadQueryRepo,
		ctx.ProductQueryRepo,
		ctx.Cache,
	)
}

func TestIntegrationGetDashboard(t *testing.T) {
	testhelpers.SkipIfNoDatabase(t)

	ctx := testhelpers.SetupTestContext(t)
	defer ctx.Cleanup()

	service := setupDashboardService(ctx)

	dashboard, err := service.GetDashboard(shareddomain.Period30Days, shareddomain.CustomRange{})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if dashboard.Orders.Total == 0 {
		t.Error("base seedée attendue: aucun total de commandes")
	}
	if dashboard.Revenue.Total < 0 {
		t.Errorf("chiffre d'affaires négatif: %v", dashboard.Revenue.Total)
	}
	if dashboard.Leads.ConversionRate < 0 || dashboard.Leads.ConversionRate > 100 {
		t.Errorf("taux de conversion hors bornes: %v", dashboard.Leads.ConversionRate)
	}
	for i := 1; i < len(dashboard.RevenueTrend); i++ {
		if dashboard.RevenueTrend[i-1].Date >= dashboard.RevenueTrend[i].Date {
			t.Errorf("courbe non triée: %s avant %s",
				dashboard.RevenueTrend[i-1].Date, dashboard.RevenueTrend[i].Date)
		}
	}
}

func BenchmarkIntegrationGetDashboard(b *testing.B) {
	testhelpers.SkipIfNoDatabase(b)

	ctx := testhelpers.SetupTestContext(b)
	defer ctx.Cleanup()

	service := setupDashboardService(ctx)

	b.Run("CacheMiss", func(b *testing.B) {
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			b.StopTimer()
			ctx.ClearCache()
			b.StartTimer()

			if _, err := service.GetDashboard(shareddomain.Period30Days, shareddomain.CustomRange{}); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("CacheHit", func(b *testing.B) {
		b.ReportAllocs()

		// Chauffer le cache
		_, _ = service.GetDashboard(shareddomain.Period30Days, shareddomain.CustomRange{})

		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			if _, err := service.GetDashboard(shareddomain.Period30Days, shareddomain.CustomRange{}); err != nil {
				b.Fatal(err)
			}
		}
	})
}
