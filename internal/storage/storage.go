package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/ginny-app/ginny-server/internal/config"
	"github.com/ginny-app/ginny-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	Users        sqlconfig.IUserTable
	Transactions sqlconfig.ITransactionTable
	SyncStatus   sqlconfig.ISyncStatusTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:           db,
		Users:        sqlconfig.NewUsersTable(db),
		Transactions: sqlconfig.NewTransactionsTable(db),
		SyncStatus:   sqlconfig.NewSyncStatusTable(db),
	}
}
