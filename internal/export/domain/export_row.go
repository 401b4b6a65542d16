package domain

import (
	"strconv"
	"time"
)

// LeadExportRow ligne d'export d'un prospect, enrichie des valeurs
// dérivées (région, zone climatique, score de complétude) calculées au
// moment de l'export. La zone climatique vide correspond à un code
// postal absent.
type LeadExportRow struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Postcode         string
	Region           string
	ClimateZone      string
	Status           string
	PotentialRevenue float64
	CompletionScore  int
	CreatedAt        time.Time
}

// ToCSVRow convertit en tableau pour CSV
func (r *LeadExportRow) ToCSVRow() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.FirstName,
		r.LastName,
		r.Email,
		r.Phone,
		r.Postcode,
		r.Region,
		r.ClimateZone,
		r.Status,
		strconv.FormatFloat(r.PotentialRevenue, 'f', 2, 64),
		strconv.Itoa(r.CompletionScore),
		r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// LeadCSVHeaders retourne les en-têtes de l'export prospects
func LeadCSVHeaders() []string {
	return []string{
		"lead_id",
		"first_name",
		"last_name",
		"email",
		"phone",
		"postcode",
		"region",
		"climate_zone",
		"status",
		"potential_revenue",
		"completion_score",
		"created_at",
	}
}

// OrderExportRow ligne d'export dénormalisée: une ligne par ligne de
// commande, avec les informations de la commande répétées
type OrderExportRow struct {
	OrderID       int64
	CustomerName  string
	CustomerEmail string
	Status        string
	ProductID     int64
	ProductName   string
	CategoryName  string
	Quantity      int
	UnitPrice     float64
	LineTotal     float64
	OrderDate     time.Time
}

// ToCSVRow convertit en tableau pour CSV
func (r *OrderExportRow) ToCSVRow() []string {
	return []string{
		strconv.FormatInt(r.OrderID, 10),
		r.CustomerName,
		r.CustomerEmail,
		r.Status,
		strconv.FormatInt(r.ProductID, 10),
		r.ProductName,
		r.CategoryName,
		strconv.Itoa(r.Quantity),
		strconv.FormatFloat(r.UnitPrice, 'f', 2, 64),
		strconv.FormatFloat(r.LineTotal, 'f', 2, 64),
		r.OrderDate.Format("2006-01-02 15:04:05"),
	}
}

// OrderCSVHeaders retourne les en-têtes de l'export commandes
func OrderCSVHeaders() []string {
	return []string{
		"order_id",
		"customer_name",
		"customer_email",
		"status",
		"product_id",
		"product_name",
		"category_name",
		"quantity",
		"unit_price",
		"line_total",
		"order_date",
	}
}
