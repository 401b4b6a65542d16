package domain

import (
	"sort"

	catalogdomain "backoffice/internal/catalog/domain"
	leadsdomain "backoffice/internal/leads/domain"
	ordersdomain "backoffice/internal/orders/domain"
	shareddomain "backoffice/internal/shared/domain"
)

// Agrégateurs du tableau de bord: fonctions pures sur des instantanés
// fournis par la couche d'accès aux données. Aucune entrée n'est
// mutée, aucun appel externe; la reproductibilité vient de l'injection
// explicite des périodes (et donc de l'instant courant).
//
// Convention de bornes: la période courante est filtrée bornes
// incluses (Contains), la période de comparaison début inclus / fin
// exclue (ContainsExclusive), sa fin coïncidant avec le début de la
// période courante.

// CalculateRevenue calcule les statistiques de chiffre d'affaires.
// Seules les commandes réalisées (terminées ou payées) comptent.
// Croissance: (période - précédente) / précédente × 100; par
// convention 100 quand on part de zéro, 0 quand les deux sont nulles.
func CalculateRevenue(orders []*ordersdomain.Order, r, previous shareddomain.DateRange) RevenueStats {
	var stats RevenueStats

	for _, order := range orders {
		if !order.Status().IsRealized() {
			continue
		}
		amount := shareddomain.SafeAmount(order.Amount().Amount())
		stats.Total += amount
		if r.Contains(order.CreatedAt()) {
			stats.PeriodRevenue += amount
			stats.PeriodOrderCount++
		}
		if previous.ContainsExclusive(order.CreatedAt()) {
			stats.PreviousPeriodRevenue += amount
		}
	}

	switch {
	case stats.PreviousPeriodRevenue > 0:
		stats.Growth = (stats.PeriodRevenue - stats.PreviousPeriodRevenue) / stats.PreviousPeriodRevenue * 100
	case stats.PeriodRevenue > 0:
		stats.Growth = 100
	}

	if stats.PeriodOrderCount > 0 {
		stats.AverageOrderValue = stats.PeriodRevenue / float64(stats.PeriodOrderCount)
	}

	return stats
}

// CalculateOrderStats compte les commandes par seau de statut
func CalculateOrderStats(orders []*ordersdomain.Order, r shareddomain.DateRange) OrderStats {
	var stats OrderStats

	for _, order := range orders {
		stats.Total++
		inPeriod := r.Contains(order.CreatedAt())
		if inPeriod {
			stats.PeriodTotal++
		}

		switch order.Status() {
		case ordersdomain.OrderStatusPending, ordersdomain.OrderStatusQuote:
			stats.Pending++
			if inPeriod {
				stats.PeriodPending++
			}
		case ordersdomain.OrderStatusProcessing:
			stats.Processing++
			if inPeriod {
				stats.PeriodProcessing++
			}
		case ordersdomain.OrderStatusCompleted, ordersdomain.OrderStatusPaid:
			stats.Completed++
			if inPeriod {
				stats.PeriodCompleted++
			}
		case ordersdomain.OrderStatusCancelled:
			stats.Cancelled++
			if inPeriod {
				stats.PeriodCancelled++
			}
		}
	}

	return stats
}

// CalculateLeadStats compte les prospects par statut. Les statuts
// converted et archived comptent dans le total mais n'ont pas de seau
// propre; le revenu potentiel est sommé sur tous les prospects, toute
// période confondue.
func CalculateLeadStats(leads []*leadsdomain.Lead, r shareddomain.DateRange) LeadStats {
	var stats LeadStats

	for _, lead := range leads {
		stats.Total++
		stats.PotentialRevenue += shareddomain.SafeAmount(lead.PotentialRevenue().Amount())

		inPeriod := r.Contains(lead.CreatedAt())
		if inPeriod {
			stats.PeriodNew++
		}

		switch {
		case lead.Status() == leadsdomain.LeadStatusNew:
			stats.New++
		case lead.Status().IsInProgress():
			stats.InProgress++
		case lead.Status() == leadsdomain.LeadStatusQualified:
			stats.Qualified++
		case lead.Status() == leadsdomain.LeadStatusWon:
			stats.Won++
			if inPeriod {
				stats.PeriodWon++
			}
		case lead.Status() == leadsdomain.LeadStatusLost:
			stats.Lost++
		}
	}

	if stats.Total > 0 {
		stats.ConversionRate = float64(stats.Won) / float64(stats.Total) * 100
	}

	return stats
}

// CalculateProductStats compte le catalogue par statut de publication
// et signale les stocks faibles
func CalculateProductStats(products []*catalogdomain.Product) ProductStats {
	var stats ProductStats

	for _, product := range products {
		stats.Total++
		switch product.Status() {
		case catalogdomain.ProductStatusActive:
			stats.Active++
		case catalogdomain.ProductStatusDraft:
			stats.Draft++
		case catalogdomain.ProductStatusInactive:
			stats.Inactive++
		}
		if product.IsLowStock() {
			stats.LowStock++
		}
	}

	return stats
}

// TopProducts classe les produits de la période par quantité vendue
// décroissante. Le tri est stable: à quantités égales, l'ordre de
// première rencontre dans les commandes est conservé.
func TopProducts(orders []*ordersdomain.Order, r shareddomain.DateRange, limit int) []TopProduct {
	byProduct := make(map[catalogdomain.ProductID]*TopProduct)
	ranking := make([]*TopProduct, 0)

	for _, order := range orders {
		if !r.Contains(order.CreatedAt()) {
			continue
		}
		for _, item := range order.Items() {
			entry, ok := byProduct[item.ProductID()]
			if !ok {
				entry = &TopProduct{
					ProductID:   int64(item.ProductID()),
					ProductName: item.ProductName(),
				}
				byProduct[item.ProductID()] = entry
				ranking = append(ranking, entry)
			}
			entry.Quantity += item.Quantity().Value()
			entry.Revenue += shareddomain.SafeAmount(item.LineTotal().Amount())
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})

	if limit >= 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}

	result := make([]TopProduct, len(ranking))
	for i, entry := range ranking {
		result[i] = *entry
	}
	return result
}

// SalesByCategory agrège le chiffre d'affaires de la période par
// catégorie de produit. Une commande incrémente le compteur d'une
// catégorie au plus une fois, même si plusieurs de ses lignes touchent
// la même catégorie; les produits sans catégorie sont ignorés.
func SalesByCategory(
	orders []*ordersdomain.Order,
	products []*catalogdomain.Product,
	r shareddomain.DateRange,
) []CategorySales {
	categoryOf := make(map[catalogdomain.ProductID]catalogdomain.CategoryID, len(products))
	for _, product := range products {
		if product.CategoryID() != nil {
			categoryOf[product.ID()] = *product.CategoryID()
		}
	}

	byCategory := make(map[catalogdomain.CategoryID]*CategorySales)
	result := make([]*CategorySales, 0)

	for _, order := range orders {
		if !r.Contains(order.CreatedAt()) {
			continue
		}

		// Dédoublonnage par commande: chaque catégorie touchée par
		// cette commande ne doit incrémenter OrderCount qu'une fois
		touched := make(map[catalogdomain.CategoryID]bool)

		for _, item := range order.Items() {
			categoryID, ok := categoryOf[item.ProductID()]
			if !ok {
				continue
			}

			entry, seen := byCategory[categoryID]
			if !seen {
				entry = &CategorySales{CategoryID: int64(categoryID)}
				byCategory[categoryID] = entry
				result = append(result, entry)
			}
			entry.Revenue += shareddomain.SafeAmount(item.LineTotal().Amount())

			if !touched[categoryID] {
				touched[categoryID] = true
				entry.OrderCount++
			}
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})

	sales := make([]CategorySales, len(result))
	for i, entry := range result {
		sales[i] = *entry
	}
	return sales
}

// ConversionFunnel compte les prospects créés sur la période par seau
// de statut. Instantané, pas un tunnel à transitions.
func ConversionFunnel(leads []*leadsdomain.Lead, r shareddomain.DateRange) Funnel {
	var funnel Funnel

	for _, lead := range leads {
		if !r.Contains(lead.CreatedAt()) {
			continue
		}
		switch {
		case lead.Status() == leadsdomain.LeadStatusNew:
			funnel.New++
		case lead.Status().IsInProgress():
			funnel.InProgress++
		case lead.Status() == leadsdomain.LeadStatusQualified:
			funnel.Qualified++
		case lead.Status() == leadsdomain.LeadStatusWon:
			funnel.Won++
		case lead.Status() == leadsdomain.LeadStatusLost:
			funnel.Lost++
		}
	}

	return funnel
}

// trendDateLayout format des clés journalières des courbes, en heure
// locale
const trendDateLayout = "2006-01-02"

// RevenueTrend construit la courbe journalière du chiffre d'affaires
// réalisé sur la période. Série creuse: les jours sans commande ne
// produisent pas de point. Points triés par date croissante.
func RevenueTrend(orders []*ordersdomain.Order, r shareddomain.DateRange) []RevenuePoint {
	byDay := make(map[string]*RevenuePoint)

	for _, order := range orders {
		if !order.Status().IsRealized() || !r.Contains(order.CreatedAt()) {
			continue
		}
		day := order.CreatedAt().Format(trendDateLayout)
		point, ok := byDay[day]
		if !ok {
			point = &RevenuePoint{Date: day}
			byDay[day] = point
		}
		point.Revenue += shareddomain.SafeAmount(order.Amount().Amount())
		point.OrderCount++
	}

	points := make([]RevenuePoint, 0, len(byDay))
	for _, point := range byDay {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// LeadTrend construit la courbe journalière d'arrivée des prospects
// sur la période. Série creuse, triée par date croissante.
func LeadTrend(leads []*leadsdomain.Lead, r shareddomain.DateRange) []LeadPoint {
	byDay := make(map[string]*LeadPoint)

	for _, lead := range leads {
		if !r.Contains(lead.CreatedAt()) {
			continue
		}
		day := lead.CreatedAt().Format(trendDateLayout)
		point, ok := byDay[day]
		if !ok {
			point = &LeadPoint{Date: day}
			byDay[day] = point
		}
		point.Count++
		if lead.Status() == leadsdomain.LeadStatusWon {
			point.WonCount++
		}
	}

	points := make([]LeadPoint, 0, len(byDay))
	for _, point := range byDay {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
