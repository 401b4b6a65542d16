package domain

import (
	"errors"
	"time"

	"backoffice/internal/shared/domain"
)

// ProductID représente l'identifiant unique d'un produit
type ProductID int64

// ProductStatus représente le statut de publication d'un produit
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusInactive ProductStatus = "inactive"
)

// LowStockThreshold seuil en dessous duquel un produit est signalé en
// stock faible sur le tableau de bord
const LowStockThreshold = 10

// Product représente un produit du catalogue (éclairage, pompes à
// chaleur, climatisation)
type Product struct {
	id         ProductID
	name       string
	categoryID *CategoryID
	status     ProductStatus
	price      domain.Money
	stock      domain.Quantity
	createdAt  time.Time
}

// NewProduct crée une nouvelle instance de Product avec validation
func NewProduct(
	id ProductID,
	name string,
	categoryID *CategoryID,
	status ProductStatus,
	price domain.Money,
	stock domain.Quantity,
	createdAt time.Time,
) (*Product, error) {
	if name == "" {
		return nil, errors.New("product name cannot be empty")
	}
	switch status {
	case ProductStatusActive, ProductStatusDraft, ProductStatusInactive:
	default:
		return nil, errors.New("invalid product status")
	}

	return &Product{
		id:         id,
		name:       name,
		categoryID: categoryID,
		status:     status,
		price:      price,
		stock:      stock,
		createdAt:  createdAt,
	}, nil
}

// ID retourne l'identifiant du produit
func (p *Product) ID() ProductID {
	return p.id
}

// Name retourne le nom du produit
func (p *Product) Name() string {
	return p.name
}

// CategoryID retourne la catégorie du produit (peut être nil)
func (p *Product) CategoryID() *CategoryID {
	return p.categoryID
}

// Status retourne le statut de publication
func (p *Product) Status() ProductStatus {
	return p.status
}

// Price retourne le prix de vente HT
func (p *Product) Price() domain.Money {
	return p.price
}

// Stock retourne la quantité en stock
func (p *Product) Stock() domain.Quantity {
	return p.stock
}

// CreatedAt retourne la date de création
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// IsLowStock indique si le stock est passé sous le seuil d'alerte
func (p *Product) IsLowStock() bool {
	return p.stock.Value() < LowStockThreshold
}
