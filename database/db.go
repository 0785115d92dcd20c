package database

import (
	"fiber-erp/config"
	"fmt"
	"log"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

func OpenDB() (*gorm.DB, error) {
	_, dialector := getDSNAndDialector(config.DBName)
	return gorm.Open(dialector, &gorm.Config{})
}

var (
	dbPool  = make(map[string]*gorm.DB)
	dbMutex sync.Mutex
)

// GetDBConnection returns a pooled connection for the given database name,
// opening it on first use.
func GetDBConnection(dbName string) (*gorm.DB, error) {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	if db, exists := dbPool[dbName]; exists {
		return db, nil
	}

	_, dialector := getDSNAndDialector(dbName)
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbPool[dbName] = db
	return db, nil
}

func getDSNAndDialector(dbName string) (string, gorm.Dialector) {
	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort)
		return dsn, postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return dsn, mysql.Open(dsn)
	case "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		return dsn, sqlserver.Open(dsn)
	default:
		log.Fatalf("Unsupported DB_DRIVER: %s", config.DBDriver)
		return "", nil
	}
}

// EnsureDatabaseExists connects without a database selected and creates
// the target database when missing. SQL Server checks sys.databases; the
// other drivers use IF NOT EXISTS semantics.
func EnsureDatabaseExists(dbName string) {
	var dsn string
	var db *gorm.DB
	var err error

	switch config.DBDriver {
	case "postgres":
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, config.DBPort)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			var count int64
			db.Raw("SELECT COUNT(*) FROM pg_database WHERE datname = ?", dbName).Scan(&count)
			if count == 0 {
				db.Exec("CREATE DATABASE " + dbName)
			}
		}
	case "mysql":
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort)
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			db.Exec("CREATE DATABASE IF NOT EXISTS " + dbName)
		}
	case "mssql":
		dsn = fmt.Sprintf("sqlserver://%s:%s@%s:%s", config.DBUser, config.DBPassword, config.DBHost, config.DBPort)
		db, err = gorm.Open(sqlserver.Open(dsn), &gorm.Config{})
		if err == nil {
			db.Exec("IF NOT EXISTS (SELECT * FROM sys.databases WHERE name = '" + dbName + "') CREATE DATABASE [" + dbName + "]")
		}
	default:
		log.Fatalf("Unsupported DB_DRIVER: %s", config.DBDriver)
	}

	if err != nil {
		log.Fatalf("Failed to connect to server while ensuring database %s: %v", dbName, err)
	}
}
