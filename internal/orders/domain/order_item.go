package domain

import (
	"errors"

	catalogdomain "backoffice/internal/catalog/domain"
	"backoffice/internal/shared/domain"
)

// OrderItem représente une ligne de commande
type OrderItem struct {
	productID   catalogdomain.ProductID
	productName string
	quantity    domain.Quantity
	unitPrice   domain.Money
	lineTotal   domain.Money
}

// NewOrderItem crée une nouvelle ligne de commande avec validation
func NewOrderItem(
	productID catalogdomain.ProductID,
	productName string,
	quantity domain.Quantity,
	unitPrice domain.Money,
	lineTotal domain.Money,
) (*OrderItem, error) {
	if productID <= 0 {
		return nil, errors.New("invalid product ID")
	}
	if quantity.IsZero() {
		return nil, errors.New("quantity cannot be zero")
	}

	return &OrderItem{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		lineTotal:   lineTotal,
	}, nil
}

// ProductID retourne l'identifiant du produit
func (i *OrderItem) ProductID() catalogdomain.ProductID {
	return i.productID
}

// ProductName retourne le nom du produit au moment de la commande
func (i *OrderItem) ProductName() string {
	return i.productName
}

// Quantity retourne la quantité commandée
func (i *OrderItem) Quantity() domain.Quantity {
	return i.quantity
}

// UnitPrice retourne le prix unitaire HT
func (i *OrderItem) UnitPrice() domain.Money {
	return i.unitPrice
}

// LineTotal retourne le total HT de la ligne
func (i *OrderItem) LineTotal() domain.Money {
	return i.lineTotal
}
