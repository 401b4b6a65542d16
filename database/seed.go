package database

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
)

// SeedDatabase peuple toutes les tables de la base de données
func SeedDatabase(months int) error {
	fmt.Println("🌱 Création du schéma...")
	if err := createSchema(); err != nil {
		return fmt.Errorf("erreur création schéma: %w", err)
	}

	fmt.Println("🌱 Génération des données de référence...")

	categoryIDs, err := seedCategories()
	if err != nil {
		return fmt.Errorf("erreur génération catégories: %w", err)
	}

	productIDs, err := seedProducts(80, categoryIDs)
	if err != nil {
		return fmt.Errorf("erreur génération produits: %w", err)
	}

	fmt.Println("🌱 Génération des commandes...")
	if err := seedOrdersAndItems(months, productIDs); err != nil {
		return fmt.Errorf("erreur génération commandes: %w", err)
	}

	fmt.Println("🌱 Génération des prospects...")
	if err := seedLeads(months); err != nil {
		return fmt.Errorf("erreur génération prospects: %w", err)
	}

	fmt.Println("🔍 Analyse des tables...")
	if _, err := DB.Exec("ANALYZE"); err != nil {
		fmt.Println("⚠️ Attention: échec de l'analyse:", err)
	}

	return nil
}

func createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category_id BIGINT REFERENCES categories(id),
			status TEXT NOT NULL DEFAULT 'active',
			price NUMERIC(12,2) NOT NULL DEFAULT 0,
			stock INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			customer_email TEXT NOT NULL,
			status TEXT NOT NULL,
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id),
			product_id BIGINT NOT NULL,
			product_name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price NUMERIC(12,2) NOT NULL,
			line_total NUMERIC(12,2) NOT NULL
		);

		CREATE TABLE IF NOT EXISTS leads (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			postcode TEXT,
			status TEXT NOT NULL,
			potential_revenue NUMERIC(12,2),
			created_at TIMESTAMPTZ NOT NULL,
			beneficiary_email TEXT,
			beneficiary_phone TEXT,
			beneficiary_first_name TEXT,
			beneficiary_last_name TEXT,
			work_address TEXT,
			work_city TEXT,
			work_postcode TEXT,
			company TEXT,
			hq_address TEXT,
			hq_city TEXT,
			hq_postcode TEXT,
			work_company_name TEXT,
			work_region TEXT,
			work_climate_zone TEXT,
			beneficiary_title TEXT,
			beneficiary_function TEXT,
			beneficiary_landline TEXT,
			cadastral_parcel TEXT,
			surface_m2 DOUBLE PRECISION,
			siret TEXT,
			siren TEXT,
			work_siret TEXT,
			qualification_score INTEGER,
			exterior_photo_url TEXT,
			cadastral_photo_url TEXT,
			internal_notes TEXT,
			category_id TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
		CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);
	`
	_, err := DB.Exec(schema)
	return err
}

// seedCategories crée les catégories du catalogue
func seedCategories() ([]int64, error) {
	categories := []struct {
		name string
		slug string
	}{
		{"Éclairage LED", "eclairage-led"},
		{"Pompes à chaleur", "pompes-a-chaleur"},
		{"Climatisation", "climatisation"},
		{"Ventilation", "ventilation"},
	}

	ids := make([]int64, 0, len(categories))
	for _, category := range categories {
		var id int64
		err := DB.QueryRow(`
			INSERT INTO categories (name, slug)
			VALUES ($1, $2)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, category.name, category.slug).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	fmt.Printf("   ✅ %d catégories créées\n", len(ids))
	return ids, nil
}

// seedProducts génère le catalogue
func seedProducts(count int, categoryIDs []int64) ([]int64, error) {
	names := []string{
		"Spot encastrable", "Dalle LED 600x600", "Réglette étanche", "Projecteur 50W",
		"Ruban LED 5m", "Ampoule E27", "Détecteur de présence", "Downlight 18W",
		"PAC air-eau 8kW", "PAC air-air monosplit", "Ballon thermodynamique",
		"Climatiseur réversible", "Console double flux", "Cassette plafonnière",
		"VMC simple flux", "VMC double flux", "Extracteur d'air", "Bouche hygroréglable",
	}
	statuses := []string{"active", "active", "active", "active", "draft", "inactive"}

	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		name := names[i%len(names)]
		if i >= len(names) {
			name = fmt.Sprintf("%s v%d", name, i/len(names)+1)
		}

		// Quelques produits sans catégorie, comme dans le vrai catalogue
		var categoryID *int64
		if rand.Float32() > 0.05 {
			id := categoryIDs[rand.Intn(len(categoryIDs))]
			categoryID = &id
		}

		var id int64
		err := DB.QueryRow(`
			INSERT INTO products (name, category_id, status, price, stock)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, name,
			categoryID,
			statuses[rand.Intn(len(statuses))],
			10+rand.Float64()*4990,
			rand.Intn(200),
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	fmt.Printf("   ✅ %d produits créés\n", len(ids))
	return ids, nil
}

// seedOrdersAndItems génère les commandes et leurs lignes
func seedOrdersAndItems(months int, productIDs []int64) error {
	totalDays := months * 30
	statuses := []string{"pending", "quote", "processing", "completed", "completed", "paid", "cancelled"}

	bar := progressbar.Default(int64(totalDays), "commandes")
	totalOrders := 0

	for day := 0; day < totalDays; day++ {
		orderDate := time.Now().AddDate(0, 0, -day)
		numOrders := 2 + rand.Intn(9)

		for i := 0; i < numOrders; i++ {
			var orderID int64
			err := DB.QueryRow(`
				INSERT INTO orders (customer_name, customer_email, status, amount, created_at)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id
			`,
				fmt.Sprintf("Client %d", totalOrders+1),
				fmt.Sprintf("client%d@exemple.fr", totalOrders+1),
				statuses[rand.Intn(len(statuses))],
				0,
				orderDate,
			).Scan(&orderID)
			if err != nil {
				return err
			}

			numItems := 1 + rand.Intn(4)
			orderTotal := 0.0
			for j := 0; j < numItems; j++ {
				productID := productIDs[rand.Intn(len(productIDs))]
				quantity := 1 + rand.Intn(10)
				unitPrice := 10 + rand.Float64()*2000
				lineTotal := float64(quantity) * unitPrice
				orderTotal += lineTotal

				_, err := DB.Exec(`
					INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, line_total)
					VALUES ($1, $2, $3, $4, $5, $6)
				`, orderID, productID, fmt.Sprintf("Produit %d", productID), quantity, unitPrice, lineTotal)
				if err != nil {
					return err
				}
			}

			if _, err := DB.Exec(`UPDATE orders SET amount = $1 WHERE id = $2`, orderTotal, orderID); err != nil {
				return err
			}
			totalOrders++
		}

		bar.Add(1)
	}

	fmt.Printf("   ✅ %d commandes créées\n", totalOrders)
	return nil
}

// seedLeads génère les prospects avec des codes postaux réalistes
func seedLeads(months int) error {
	firstNames := []string{"Jean", "Marie", "Pierre", "Sophie", "Luc", "Claire", "Paul", "Julie", "Marc", "Emma"}
	lastNames := []string{"Dupont", "Martin", "Bernard", "Durand", "Moreau", "Petit", "Roux", "Garnier", "Faure", "Blanc"}
	postcodes := []string{
		"75001", "69001", "13001", "31000", "33000", "59000", "67000", "44000",
		"06000", "34000", "97400", "97110", "20000", "1234", "",
	}
	statuses := []string{"new", "new", "contacted", "in_progress", "qualified", "won", "lost", "converted", "archived"}

	totalLeads := months * 40
	bar := progressbar.Default(int64(totalLeads), "prospects")

	for i := 0; i < totalLeads; i++ {
		firstName := firstNames[rand.Intn(len(firstNames))]
		lastName := lastNames[rand.Intn(len(lastNames))]
		createdAt := time.Now().AddDate(0, 0, -rand.Intn(months*30))

		// Une partie des prospects a rempli le formulaire détaillé
		var company, siret *string
		var surface *float64
		var qualification *int
		if rand.Float32() < 0.4 {
			c := fmt.Sprintf("%s %s SARL", lastName, firstName)
			s := fmt.Sprintf("%014d", rand.Int63n(1e14))
			m2 := 50 + rand.Float64()*950
			q := 1 + rand.Intn(10)
			company, siret, surface, qualification = &c, &s, &m2, &q
		}

		_, err := DB.Exec(`
			INSERT INTO leads (first_name, last_name, email, phone, postcode, status,
			                   potential_revenue, created_at, company, siret, surface_m2, qualification_score)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)
		`,
			firstName,
			lastName,
			fmt.Sprintf("%s.%s%d@exemple.fr", firstName, lastName, i),
			fmt.Sprintf("06%08d", rand.Intn(100000000)),
			postcodes[rand.Intn(len(postcodes))],
			statuses[rand.Intn(len(statuses))],
			rand.Float64()*50000,
			createdAt,
			company, siret, surface, qualification,
		)
		if err != nil {
			return err
		}

		bar.Add(1)
	}

	fmt.Printf("   ✅ %d prospects créés\n", totalLeads)
	return nil
}
