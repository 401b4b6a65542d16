package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// DB connexion partagée du back-office, initialisée au démarrage
var DB *sql.DB

// Init ouvre la connexion PostgreSQL et configure le pool. Les trois
// chargements parallèles du tableau de bord tirent chacun sur le pool,
// d'où un plafond large.
func Init(connStr string) error {
	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

// Close ferme la connexion si elle est ouverte
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
