package application

import (
	"fmt"
	"sync"
	"time"

	"backoffice/internal/analytics/domain"
	catalogdomain "backoffice/internal/catalog/domain"
	leadsdomain "backoffice/internal/leads/domain"
	ordersdomain "backoffice/internal/orders/domain"
	shareddomain "backoffice/internal/shared/domain"
	sharedinfra "backoffice/internal/shared/infrastructure"
)

// OrderReader expose la lecture des commandes avec leurs lignes
type OrderReader interface {
	FindAll() ([]*ordersdomain.Order, error)
}

// LeadReader expose la lecture des prospects
type LeadReader interface {
	FindAll() ([]*leadsdomain.Lead, error)
}

// CatalogReader expose la lecture du catalogue (produits et catégories)
type CatalogReader interface {
	FindAll() ([]*catalogdomain.Product, error)
	FindAllCategories() ([]*catalogdomain.Category, error)
}

// DashboardService assemble le tableau de bord à partir des trois
// sources de données. Les chargements sont parallélisés et le résultat
// est mis en cache pour absorber les rafraîchissements fréquents du
// back-office.
type DashboardService struct {
	orders   OrderReader
	leads    LeadReader
	catalog  CatalogReader
	cache    sharedinfra.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

// NewDashboardService crée une nouvelle instance de DashboardService
func NewDashboardService(
	orders OrderReader,
	leads LeadReader,
	catalog CatalogReader,
	cache sharedinfra.Cache,
) *DashboardService {
	return &DashboardService{
		orders:   orders,
		leads:    leads,
		catalog:  catalog,
		cache:    cache,
		cacheTTL: 5 * time.Minute,
		now:      time.Now,
	}
}

// GetDashboard calcule le tableau de bord pour la période demandée.
// Les périodes personnalisées sont résolues avant la mise en cache:
// deux requêtes custom identiques partagent la même entrée.
func (s *DashboardService) GetDashboard(period shareddomain.Period, custom shareddomain.CustomRange) (*domain.Dashboard, error) {
	dateRange := shareddomain.ResolvePeriod(period, custom, s.now())
	previous := shareddomain.PreviousPeriod(dateRange)

	cacheKey := s.buildCacheKey(period, dateRange)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*domain.Dashboard), nil
	}

	dashboard, err := s.assemble(period, dateRange, previous)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, dashboard, s.cacheTTL)

	return dashboard, nil
}

// assemble charge les trois instantanés en parallèle puis déroule les
// agrégations pures sur des données immuables.
func (s *DashboardService) assemble(
	period shareddomain.Period,
	dateRange shareddomain.DateRange,
	previous shareddomain.DateRange,
) (*domain.Dashboard, error) {
	var (
		orders     []*ordersdomain.Order
		leads      []*leadsdomain.Lead
		products   []*catalogdomain.Product
		categories []*catalogdomain.Category
	)

	var wg sync.WaitGroup
	errChan := make(chan error, 3)

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		orders, err = s.orders.FindAll()
		if err != nil {
			errChan <- fmt.Errorf("chargement des commandes: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		leads, err = s.leads.FindAll()
		if err != nil {
			errChan <- fmt.Errorf("chargement des prospects: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		products, err = s.catalog.FindAll()
		if err != nil {
			errChan <- fmt.Errorf("chargement du catalogue: %w", err)
			return
		}
		categories, err = s.catalog.FindAllCategories()
		if err != nil {
			errChan <- fmt.Errorf("chargement des catégories: %w", err)
		}
	}()

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	dashboard := &domain.Dashboard{
		Period:        string(period),
		Start:         dateRange.Start(),
		End:           dateRange.End(),
		PreviousStart: previous.Start(),
		PreviousEnd:   previous.End(),

		Revenue:         domain.CalculateRevenue(orders, dateRange, previous),
		Orders:          domain.CalculateOrderStats(orders, dateRange),
		Leads:           domain.CalculateLeadStats(leads, dateRange),
		Products:        domain.CalculateProductStats(products),
		TopProducts:     domain.TopProducts(orders, dateRange, 10),
		SalesByCategory: domain.SalesByCategory(orders, products, dateRange),
		Funnel:          domain.ConversionFunnel(leads, dateRange),
		RevenueTrend:    domain.RevenueTrend(orders, dateRange),
		LeadTrend:       domain.LeadTrend(leads, dateRange),
	}

	resolveCategoryNames(dashboard.SalesByCategory, categories)

	return dashboard, nil
}

// resolveCategoryNames complète les ventes par catégorie avec les
// libellés du catalogue. Une catégorie supprimée entre temps reste
// sans libellé plutôt que de faire échouer le tableau de bord.
func resolveCategoryNames(sales []domain.CategorySales, categories []*catalogdomain.Category) {
	names := make(map[catalogdomain.CategoryID]string, len(categories))
	for _, category := range categories {
		names[category.ID()] = category.Name()
	}
	for i := range sales {
		sales[i].CategoryName = names[catalogdomain.CategoryID(sales[i].CategoryID)]
	}
}

func (s *DashboardService) buildCacheKey(period shareddomain.Period, dateRange shareddomain.DateRange) string {
	builder := sharedinfra.NewCacheKeyBuilder().
		Add("dashboard").
		Add(string(period))
	if period == shareddomain.PeriodCustom {
		builder.Add(dateRange.Start().Format("2006-01-02")).
			Add(dateRange.End().Format("2006-01-02"))
	}
	return builder.Build()
}

// InvalidateCache vide le cache du tableau de bord, à appeler après
// une écriture qui modifie commandes, prospects ou catalogue
func (s *DashboardService) InvalidateCache() {
	s.cache.Clear()
}
