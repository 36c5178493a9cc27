package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-booking/models"

	sqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	cfg := sqldriver.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = u.Hostname() + ":" + port
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	for key, values := range u.Query() {
		if len(values) > 0 {
			cfg.Params[key] = values[0]
		}
	}

	return cfg.FormatDSN(), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	cfg := sqldriver.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = envOrDefault("DB_PASS", "")
	cfg.Net = "tcp"
	cfg.Addr = envOrDefault("DB_HOST", "127.0.0.1") + ":" + envOrDefault("DB_PORT", "3306")
	cfg.DBName = envOrDefault("DB_NAME", "hotel_booking")
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}

	return cfg.FormatDSN(), nil
}

// ConnectDatabase opens the MySQL connection and migrates the booking ledger.
// The room catalog is static in-code data and needs no seeding.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(&models.BookingLedger{}); err != nil {
		return err
	}

	return nil
}
