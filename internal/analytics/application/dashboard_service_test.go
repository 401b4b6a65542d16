package application

import (
	"errors"
	"testing"
	"time"

	catalogdomain "backoffice/internal/catalog/domain"
	leadsdomain "backoffice/internal/leads/domain"
	ordersdomain "backoffice/internal/orders/domain"
	shareddomain "backoffice/internal/shared/domain"
	sharedinfra "backoffice/internal/shared/infrastructure"
)

type stubOrderReader struct {
	orders []*ordersdomain.Order
	err    error
	calls  int
}

func (s *stubOrderReader) FindAll() ([]*ordersdomain.Order, error) {
	s.calls++
	return s.orders, s.err
}

type stubLeadReader struct {
	leads []*leadsdomain.Lead
	err   error
}

func (s *stubLeadReader) FindAll() ([]*leadsdomain.Lead, error) {
	return s.leads, s.err
}

type stubCatalogReader struct {
	products   []*catalogdomain.Product
	categories []*catalogdomain.Category
	err        error
}

func (s *stubCatalogReader) FindAll() ([]*catalogdomain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalogReader) FindAllCategories() ([]*catalogdomain.Category, error) {
	return s.categories, s.err
}

func fixedNow() time.Time {
	return time.Date(2024, time.March, 20, 12, 0, 0, 0, time.Local)
}

func buildService(t *testing.T) (*DashboardService, *stubOrderReader) {
	t.Helper()

	category, err := catalogdomain.NewCategory(1, "Éclairage LED", "eclairage-led", fixedNow())
	if err != nil {
		t.Fatalf("invalid category: %v", err)
	}

	categoryID := catalogdomain.CategoryID(1)
	stock, _ := shareddomain.NewQuantity(50)
	product, err := catalogdomain.NewProduct(
		10, "Spot encastrable", &categoryID,
		catalogdomain.ProductStatusActive,
		shareddomain.MustNewMoney(49.9), stock, fixedNow(),
	)
	if err != nil {
		t.Fatalf("invalid product: %v", err)
	}

	order, err := ordersdomain.NewOrder(
		1, "Client", "client@exemple.fr",
		ordersdomain.OrderStatusCompleted,
		shareddomain.MustNewMoney(500),
		time.Date(2024, time.March, 18, 10, 0, 0, 0, time.Local),
	)
	if err != nil {
		t.Fatalf("invalid order: %v", err)
	}
	qty, _ := shareddomain.NewQuantity(2)
	item, err := ordersdomain.NewOrderItem(10, "Spot encastrable", qty, shareddomain.MustNewMoney(250), shareddomain.MustNewMoney(500))
	if err != nil {
		t.Fatalf("invalid item: %v", err)
	}
	if err := order.AddItem(item); err != nil {
		t.Fatalf("add item: %v", err)
	}

	lead, err := leadsdomain.NewLead(
		1, "Jean", "Dupont", "jean@exemple.fr", "0612345678", "75001",
		leadsdomain.LeadStatusWon,
		shareddomain.MustNewMoney(1000),
		time.Date(2024, time.March, 19, 9, 0, 0, 0, time.Local),
		nil,
	)
	if err != nil {
		t.Fatalf("invalid lead: %v", err)
	}

	orderReader := &stubOrderReader{orders: []*ordersdomain.Order{order}}
	service := NewDashboardService(
		orderReader,
		&stubLeadReader{leads: []*leadsdomain.Lead{lead}},
		&stubCatalogReader{
			products:   []*catalogdomain.Product{product},
			categories: []*catalogdomain.Category{category},
		},
		sharedinfra.NewInMemoryCache(),
	)
	service.now = fixedNow

	return service, orderReader
}

func TestGetDashboard(t *testing.T) {
	service, _ := buildService(t)

	dashboard, err := service.GetDashboard(shareddomain.Period7Days, shareddomain.CustomRange{})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if dashboard.Period != "7d" {
		t.Errorf("Period: got %q, want %q", dashboard.Period, "7d")
	}
	if dashboard.Revenue.PeriodRevenue != 500 {
		t.Errorf("PeriodRevenue: got %v, want 500", dashboard.Revenue.PeriodRevenue)
	}
	if dashboard.Leads.Won != 1 {
		t.Errorf("Leads.Won: got %d, want 1", dashboard.Leads.Won)
	}
	if dashboard.Products.Active != 1 {
		t.Errorf("Products.Active: got %d, want 1", dashboard.Products.Active)
	}
	if len(dashboard.TopProducts) != 1 || dashboard.TopProducts[0].Quantity != 2 {
		t.Errorf("TopProducts inattendus: %+v", dashboard.TopProducts)
	}
	// La borne de fin de la période précédente coïncide avec le début
	// de la période courante
	if !dashboard.PreviousEnd.Equal(dashboard.Start) {
		t.Errorf("PreviousEnd %v doit coïncider avec Start %v", dashboard.PreviousEnd, dashboard.Start)
	}
}

func TestGetDashboard_CategoryNames(t *testing.T) {
	service, _ := buildService(t)

	dashboard, err := service.GetDashboard(shareddomain.Period7Days, shareddomain.CustomRange{})
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}

	if len(dashboard.SalesByCategory) != 1 {
		t.Fatalf("got %d catégories, want 1", len(dashboard.SalesByCategory))
	}
	sales := dashboard.SalesByCategory[0]
	if sales.CategoryName != "Éclairage LED" {
		t.Errorf("CategoryName: got %q, want %q", sales.CategoryName, "Éclairage LED")
	}
	if sales.Revenue != 500 || sales.OrderCount != 1 {
		t.Errorf("ventes inattendues: %+v", sales)
	}
}

func TestGetDashboard_CacheHit(t *testing.T) {
	service, orderReader := buildService(t)

	first, err := service.GetDashboard(shareddomain.Period30Days, shareddomain.CustomRange{})
	if err != nil {
		t.Fatalf("premier appel: %v", err)
	}
	second, err := service.GetDashboard(shareddomain.Period30Days, shareddomain.CustomRange{})
	if err != nil {
		t.Fatalf("second appel: %v", err)
	}

	if orderReader.calls != 1 {
		t.Errorf("le second appel doit servir depuis le cache, got %d chargements", orderReader.calls)
	}
	if first != second {
		t.Error("le cache doit retourner la même instance")
	}

	// Une autre période ne doit pas partager l'entrée de cache
	if _, err := service.GetDashboard(shareddomain.Period7Days, shareddomain.CustomRange{}); err != nil {
		t.Fatalf("autre période: %v", err)
	}
	if orderReader.calls != 2 {
		t.Errorf("une autre période doit recalculer, got %d chargements", orderReader.calls)
	}
}

func TestGetDashboard_CustomCacheKey(t *testing.T) {
	service, orderReader := buildService(t)

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	custom := shareddomain.CustomRange{Start: &start, End: &end}

	if _, err := service.GetDashboard(shareddomain.PeriodCustom, custom); err != nil {
		t.Fatalf("période custom: %v", err)
	}

	otherEnd := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	other := shareddomain.CustomRange{Start: &start, End: &otherEnd}
	if _, err := service.GetDashboard(shareddomain.PeriodCustom, other); err != nil {
		t.Fatalf("autre période custom: %v", err)
	}

	if orderReader.calls != 2 {
		t.Errorf("des bornes custom différentes doivent recalculer, got %d chargements", orderReader.calls)
	}
}

func TestGetDashboard_RepositoryError(t *testing.T) {
	wantErr := errors.New("connexion perdue")
	service := NewDashboardService(
		&stubOrderReader{err: wantErr},
		&stubLeadReader{},
		&stubCatalogReader{},
		sharedinfra.NewInMemoryCache(),
	)
	service.now = fixedNow

	if _, err := service.GetDashboard(shareddomain.Period30Days, shareddomain.CustomRange{}); !errors.Is(err, wantErr) {
		t.Errorf("got %v, want wrapped %v", err, wantErr)
	}
}

func TestInvalidateCache(t *testing.T) {
	service, orderReader := buildService(t)

	if _, err := service.GetDashboard(shareddomain.Period30Days, shareddomain.CustomRange{}); err != nil {
		t.Fatalf("premier appel: %v", err)
	}
	service.InvalidateCache()
	if _, err := service.GetDashboard(shareddomain.Period30Days, shareddomain.CustomRange{}); err != nil {
		t.Fatalf("après invalidation: %v", err)
	}

	if orderReader.calls != 2 {
		t.Errorf("l'invalidation doit forcer un recalcul, got %d chargements", orderReader.calls)
	}
}
