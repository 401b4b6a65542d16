package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"backoffice/database"

	"github.com/joho/godotenv"
)

func main() {
	// Charge .env
	err := godotenv.Load()
	if err != nil {
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

	err = database.Init(connStr)
	if err != nil {
		log.Fatal("❌ Erreur connexion DB:", err)
	}
	defer database.Close()

	fmt.Println("✅ Connexion PostgreSQL établie")

	months, _ := strconv.Atoi(getEnv("SEED_MONTHS", "12"))

	fmt.Println("🌱 Démarrage du seed de la base de données...")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	err = database.SeedDatabase(months)
	if err != nil {
		log.Fatal("❌ Erreur lors du seed:", err)
	}

	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("✅ Seed terminé avec succès!")
	fmt.Println()
	fmt.Println("Vous pouvez maintenant démarrer l'application avec:")
	fmt.Println("  go run main.go")
	fmt.Println()
	fmt.Println("Et tester les endpoints:")
	fmt.Println("  http://localhost:8080/api/dashboard?period=30d")
	fmt.Println("  http://localhost:8080/api/export/leads-csv?period=month")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
