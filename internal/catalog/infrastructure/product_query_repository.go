package infrastructure

import (
	"database/sql"
	"time"

	"backoffice/internal/catalog/domain"
	shareddomain "backoffice/internal/shared/domain"
	"backoffice/internal/shared/infrastructure"
)

// ProductQueryRepository repository pour les requêtes de lecture sur les produits
type ProductQueryRepository struct {
	infrastructure.BaseRepository
}

// NewProductQueryRepository crée un nouveau repository de lecture pour les produits
func NewProductQueryRepository(db *sql.DB) *ProductQueryRepository {
	return &ProductQueryRepository{
		BaseRepository: infrastructure.NewBaseRepository(db),
	}
}

const productColumns = `p.id, p.name, p.category_id, p.status, p.price, p.stock, p.created_at`

// FindByID trouve un produit par son ID
func (r *ProductQueryRepository) FindByID(id domain.ProductID) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.id = $1
	`

	return scanProduct(r.QueryRow(query, int64(id)))
}

// FindAll récupère un instantané de tous les produits du catalogue.
// Les agrégateurs du tableau de bord travaillent sur cet instantané en
// mémoire, ils ne relisent jamais la base en cours de calcul.
func (r *ProductQueryRepository) FindAll() ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		ORDER BY p.id
	`

	rows, err := r.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// FindAllCategories récupère toutes les catégories
func (r *ProductQueryRepository) FindAllCategories() ([]*domain.Category, error) {
	query := `
		SELECT c.id, c.name, c.slug, c.created_at
		FROM categories c
		ORDER BY c.id
	`

	rows, err := r.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var (
			id        int64
			name      string
			slug      string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &name, &slug, &createdAt); err != nil {
			return nil, err
		}

		category, err := domain.NewCategory(domain.CategoryID(id), name, slug, createdAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// scanner abstraction commune à Row et Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanProduct hydrate un Product depuis une ligne SQL
func scanProduct(s scanner) (*domain.Product, error) {
	var (
		id         int64
		name       string
		categoryID sql.NullInt64
		status     string
		price      float64
		stock      int
		createdAt  time.Time
	)

	if err := s.Scan(&id, &name, &categoryID, &status, &price, &stock, &createdAt); err != nil {
		return nil, err
	}

	var catID *domain.CategoryID
	if categoryID.Valid {
		cid := domain.CategoryID(categoryID.Int64)
		catID = &cid
	}

	money, _ := shareddomain.NewMoney(price)
	quantity, _ := shareddomain.NewQuantity(stock)

	return domain.NewProduct(
		domain.ProductID(id),
		name,
		catID,
		domain.ProductStatus(status),
		money,
		quantity,
		createdAt,
	)
}
