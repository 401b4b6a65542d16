package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/joho/godotenv"

	"backoffice/api"
	"backoffice/database"
	analyticsapp "backoffice/internal/analytics/application"
	cataloginfra "backoffice/internal/catalog/infrastructure"
	exportapp "backoffice/internal/export/application"
	exportinfra "backoffice/internal/export/infrastructure"
	leadsinfra "backoffice/internal/leads/infrastructure"
	ordersinfra "backoffice/internal/orders/infrastructure"
	sharedinfra "backoffice/internal/shared/infrastructure"
)

func main() {
	// Charge .env
	if err := godotenv.Load(); err != nil {
		log.Println("Attention: fichier .env non trouvé, utilisation des valeurs par défaut")
	}

	// Connexion PostgreSQL
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "backoffice"),
		getEnv("DB_PASSWORD", "backoffice"),
		getEnv("DB_NAME", "backoffice"),
		getEnv("DB_SSLMODE", "disable"),
	)
	if err := database.Init(connStr); err != nil {
		log.Fatal("Erreur connexion DB:", err)
	}
	defer database.Close()

	// Repositories
	orderRepo := ordersinfra.NewOrderQueryRepository(database.DB)
	leadRepo := leadsinfra.NewLeadQueryRepository(database.DB)
	productRepo := cataloginfra.NewProductQueryRepository(database.DB)
	exportRepo := exportinfra.NewExportQueryRepository(database.DB)

	// Services
	cache := sharedinfra.NewShardedCache(16)
	dashboardService := analyticsapp.NewDashboardService(orderRepo, leadRepo, productRepo, cache)
	exportService := exportapp.NewExportService(exportRepo, leadRepo)

	handlers := api.NewHandlers(dashboardService, exportService)

	http.HandleFunc("/api/health", handlers.Health)
	http.HandleFunc("/api/dashboard", handlers.GetDashboard)
	http.HandleFunc("/api/leads/qualify", handlers.QualifyLead)
	http.HandleFunc("/api/export/leads-csv", handlers.ExportLeadsCSV)
	http.HandleFunc("/api/export/orders-csv", handlers.ExportOrdersCSV)

	port := getEnv("PORT", "8080")
	log.Printf("Back-office démarré sur :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
