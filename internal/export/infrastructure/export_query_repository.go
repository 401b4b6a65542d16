package infrastructure

import (
	"database/sql"
	"time"

	"backoffice/internal/export/domain"
	shareddomain "backoffice/internal/shared/domain"
	"backoffice/internal/shared/infrastructure"
)

// ExportQueryRepository repository pour les requêtes d'export
type ExportQueryRepository struct {
	infrastructure.BaseRepository
}

// NewExportQueryRepository crée un nouveau repository d'export
func NewExportQueryRepository(db *sql.DB) *ExportQueryRepository {
	return &ExportQueryRepository{
		BaseRepository: infrastructure.NewBaseRepository(db),
	}
}

// GetOrderRows récupère les lignes de commande dénormalisées de la
// période en une seule requête. La dénormalisation est déléguée à
// PostgreSQL: chaque ligne du résultat est une ligne du CSV.
func (r *ExportQueryRepository) GetOrderRows(dateRange shareddomain.DateRange) ([]*domain.OrderExportRow, error) {
	query := `
		SELECT
			o.id as order_id,
			o.customer_name,
			o.customer_email,
			o.status,
			oi.product_id,
			oi.product_name,
			COALESCE(c.name, '') as category_name,
			oi.quantity,
			oi.unit_price,
			oi.line_total,
			o.created_at
		FROM orders o
		INNER JOIN order_items oi ON o.id = oi.order_id
		LEFT JOIN products p ON oi.product_id = p.id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE o.created_at >= $1 AND o.created_at <= $2
		ORDER BY o.created_at DESC, o.id, oi.id
	`

	rows, err := r.Query(query, dateRange.Start(), dateRange.End())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exportRows []*domain.OrderExportRow

	for rows.Next() {
		var (
			orderID       int64
			customerName  string
			customerEmail string
			status        string
			productID     int64
			productName   string
			categoryName  string
			quantity      int
			unitPrice     float64
			lineTotal     float64
			orderDate     time.Time
		)

		if err := rows.Scan(
			&orderID,
			&customerName,
			&customerEmail,
			&status,
			&productID,
			&productName,
			&categoryName,
			&quantity,
			&unitPrice,
			&lineTotal,
			&orderDate,
		); err != nil {
			return nil, err
		}

		exportRows = append(exportRows, &domain.OrderExportRow{
			OrderID:       orderID,
			CustomerName:  customerName,
			CustomerEmail: customerEmail,
			Status:        status,
			ProductID:     productID,
			ProductName:   productName,
			CategoryName:  categoryName,
			Quantity:      quantity,
			UnitPrice:     unitPrice,
			LineTotal:     lineTotal,
			OrderDate:     orderDate,
		})
	}

	return exportRows, rows.Err()
}
