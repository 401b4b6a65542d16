package infrastructure

import (
	"database/sql"
	"time"

	catalogdomain "backoffice/internal/catalog/domain"
	"backoffice/internal/orders/domain"
	shareddomain "backoffice/internal/shared/domain"
	"backoffice/internal/shared/infrastructure"
)

// OrderQueryRepository repository pour les requêtes de lecture sur les commandes
type OrderQueryRepository struct {
	infrastructure.BaseRepository
}

// NewOrderQueryRepository crée un nouveau repository de lecture pour les commandes
func NewOrderQueryRepository(db *sql.DB) *OrderQueryRepository {
	return &OrderQueryRepository{
		BaseRepository: infrastructure.NewBaseRepository(db),
	}
}

// FindAll récupère un instantané de toutes les commandes avec leurs
// lignes. Deux requêtes seulement: les lignes sont chargées en bloc
// puis rattachées en mémoire, pas de requête par commande.
func (r *OrderQueryRepository) FindAll() ([]*domain.Order, error) {
	query := `
		SELECT o.id, o.customer_name, o.customer_email, o.status, o.amount, o.created_at
		FROM orders o
		ORDER BY o.created_at
	`

	rows, err := r.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order
	index := make(map[domain.OrderID]*domain.Order)

	for rows.Next() {
		var (
			id            int64
			customerName  string
			customerEmail string
			status        string
			amount        float64
			createdAt     time.Time
		)
		if err := rows.Scan(&id, &customerName, &customerEmail, &status, &amount, &createdAt); err != nil {
			return nil, err
		}

		money, _ := shareddomain.NewMoney(shareddomain.SafeAmount(amount))
		order, err := domain.NewOrder(
			domain.OrderID(id),
			customerName,
			customerEmail,
			domain.OrderStatus(status),
			money,
			createdAt,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
		index[order.ID()] = order
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(index); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems charge toutes les lignes de commande et les rattache à
// leur commande
func (r *OrderQueryRepository) attachItems(orders map[domain.OrderID]*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	query := `
		SELECT oi.order_id, oi.product_id, oi.product_name, oi.quantity, oi.unit_price, oi.line_total
		FROM order_items oi
		ORDER BY oi.order_id, oi.id
	`

	rows, err := r.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID     int64
			productID   int64
			productName string
			quantity    int
			unitPrice   float64
			lineTotal   float64
		)
		if err := rows.Scan(&orderID, &productID, &productName, &quantity, &unitPrice, &lineTotal); err != nil {
			return err
		}

		order, ok := orders[domain.OrderID(orderID)]
		if !ok {
			continue
		}

		qty, _ := shareddomain.NewQuantity(quantity)
		unit, _ := shareddomain.NewMoney(shareddomain.SafeAmount(unitPrice))
		total, _ := shareddomain.NewMoney(shareddomain.SafeAmount(lineTotal))

		item, err := domain.NewOrderItem(
			catalogdomain.ProductID(productID),
			productName,
			qty,
			unit,
			total,
		)
		if err != nil {
			return err
		}
		if err := order.AddItem(item); err != nil {
			return err
		}
	}

	return rows.Err()
}
