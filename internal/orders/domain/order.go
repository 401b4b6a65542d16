package domain

import (
	"errors"
	"time"

	"backoffice/internal/shared/domain"
)

// OrderID représente l'identifiant unique d'une commande
type OrderID int64

// OrderStatus représente le statut d'une commande
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusQuote      OrderStatus = "quote"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsRealized indique si la commande compte dans le chiffre d'affaires.
// Seules les commandes terminées ou payées portent un montant HT
// faisant foi; les autres statuts ont des montants provisoires.
func (s OrderStatus) IsRealized() bool {
	return s == OrderStatusCompleted || s == OrderStatusPaid
}

// Order représente une commande (aggregate root). Instantané en lecture
// seule côté analytique: les mutations passent par la couche CRUD.
type Order struct {
	id            OrderID
	customerName  string
	customerEmail string
	status        OrderStatus
	amount        domain.Money
	items         []*OrderItem
	createdAt     time.Time
}

// NewOrder crée une nouvelle commande avec validation
func NewOrder(
	id OrderID,
	customerName string,
	customerEmail string,
	status OrderStatus,
	amount domain.Money,
	createdAt time.Time,
) (*Order, error) {
	switch status {
	case OrderStatusPending, OrderStatusQuote, OrderStatusProcessing,
		OrderStatusCompleted, OrderStatusPaid, OrderStatusCancelled:
	default:
		return nil, errors.New("invalid order status")
	}

	return &Order{
		id:            id,
		customerName:  customerName,
		customerEmail: customerEmail,
		status:        status,
		amount:        amount,
		items:         make([]*OrderItem, 0),
		createdAt:     createdAt,
	}, nil
}

// ID retourne l'identifiant de la commande
func (o *Order) ID() OrderID {
	return o.id
}

// CustomerName retourne le nom du client
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail retourne l'email du client
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// Status retourne le statut de la commande
func (o *Order) Status() OrderStatus {
	return o.status
}

// Amount retourne le montant total HT
func (o *Order) Amount() domain.Money {
	return o.amount
}

// Items retourne les lignes de la commande
func (o *Order) Items() []*OrderItem {
	return append([]*OrderItem{}, o.items...)
}

// CreatedAt retourne la date de création
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AddItem ajoute une ligne à la commande
func (o *Order) AddItem(item *OrderItem) error {
	if item == nil {
		return errors.New("item cannot be nil")
	}
	o.items = append(o.items, item)
	return nil
}
