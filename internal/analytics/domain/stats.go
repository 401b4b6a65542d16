package domain

import "time"

// Agrégats du tableau de bord. Champs exportés avec tags json: ces
// enregistrements sont sérialisés tels quels vers l'interface
// d'administration, sans identité propre ni lien vivant vers les
// entités sources.

// RevenueStats statistiques de chiffre d'affaires HT. Total est
// toute période confondue; les autres champs sont bornés à la période
// demandée et à la période de comparaison qui la précède.
type RevenueStats struct {
	Total                 float64 `json:"total"`
	PeriodRevenue         float64 `json:"periodRevenue"`
	PreviousPeriodRevenue float64 `json:"previousPeriodRevenue"`
	Growth                float64 `json:"growth"`
	PeriodOrderCount      int     `json:"periodOrderCount"`
	AverageOrderValue     float64 `json:"averageOrderValue"`
}

// OrderStats compteurs de commandes par seau de statut, toute période
// confondue et bornés à la période. Les devis rejoignent le seau
// "en attente", les commandes payées le seau "terminées".
type OrderStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`

	PeriodTotal      int `json:"periodTotal"`
	PeriodPending    int `json:"periodPending"`
	PeriodProcessing int `json:"periodProcessing"`
	PeriodCompleted  int `json:"periodCompleted"`
	PeriodCancelled  int `json:"periodCancelled"`
}

// LeadStats compteurs de prospects par statut. PotentialRevenue est la
// somme sur tous les prospects, volontairement non bornée à la période.
type LeadStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	Qualified  int `json:"qualified"`
	Won        int `json:"won"`
	Lost       int `json:"lost"`

	ConversionRate   float64 `json:"conversionRate"`
	PotentialRevenue float64 `json:"potentialRevenue"`

	PeriodNew int `json:"periodNew"`
	PeriodWon int `json:"periodWon"`
}

// ProductStats compteurs du catalogue par statut de publication, plus
// le nombre de produits sous le seuil de stock
type ProductStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Draft    int `json:"draft"`
	Inactive int `json:"inactive"`
	LowStock int `json:"lowStock"`
}

// TopProduct classement d'un produit sur la période: quantités vendues
// et chiffre d'affaires HT des lignes de commande
type TopProduct struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// CategorySales ventes agrégées par catégorie sur la période. Une
// commande compte une seule fois par catégorie touchée, quel que soit
// le nombre de lignes.
type CategorySales struct {
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
	Revenue      float64 `json:"revenue"`
	OrderCount   int     `json:"orderCount"`
}

// Funnel instantané du pipeline: compteurs de prospects par statut sur
// la période. Ce n'est pas un tunnel à transitions, il n'y a ni durée
// par étape ni suivi de passage d'un statut à l'autre.
type Funnel struct {
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	Qualified  int `json:"qualified"`
	Won        int `json:"won"`
	Lost       int `json:"lost"`
}

// RevenuePoint point journalier de la courbe de chiffre d'affaires.
// Date au format YYYY-MM-DD en heure locale; les jours sans commande
// sont omis (série creuse).
type RevenuePoint struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"orderCount"`
}

// LeadPoint point journalier de la courbe de prospects
type LeadPoint struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	WonCount int    `json:"wonCount"`
}

// Dashboard vue assemblée du tableau de bord pour une période
type Dashboard struct {
	Period        string    `json:"period"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	PreviousStart time.Time `json:"previousStart"`
	PreviousEnd   time.Time `json:"previousEnd"`

	Revenue         RevenueStats    `json:"revenue"`
	Orders          OrderStats      `json:"orders"`
	Leads           LeadStats       `json:"leads"`
	Products        ProductStats    `json:"products"`
	TopProducts     []TopProduct    `json:"topProducts"`
	SalesByCategory []CategorySales `json:"salesByCategory"`
	Funnel          Funnel          `json:"conversionFunnel"`
	RevenueTrend    []RevenuePoint  `json:"revenueTrend"`
	LeadTrend       []LeadPoint     `json:"leadTrend"`
}
