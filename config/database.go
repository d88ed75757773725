package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hotelcart/models"
)

func getDBConfigByEnv(env string) (string, error) {
	var prefix string
	switch env {
	case "dev":
		prefix = "DEV_"
	case "qc":
		prefix = "QC_"
	case "prod":
		prefix = "PROD_"
	default:
		return "", fmt.Errorf("unknown environment: %s", env)
	}

	user := os.Getenv(prefix + "DB_USER")
	password := os.Getenv(prefix + "DB_PASSWORD")
	host := os.Getenv(prefix + "DB_HOST")
	port := os.Getenv(prefix + "DB_PORT")
	name := os.Getenv(prefix + "DB_NAME")
	sslMode := os.Getenv(prefix + "DB_SSLMODE")
	if sslMode == "" {
		sslMode = "require"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Ho_Chi_Minh",
		host, user, password, name, port, sslMode)
	return dsn, nil
}

// ConnectDB mở kết nối Postgres theo ENV (dev/qc/prod)
func ConnectDB(s *Settings) (*gorm.DB, error) {
	dsn, err := getDBConfigByEnv(s.Env)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	if s.DBAutoMigrate {
		if err := db.AutoMigrate(&models.Accommodation{}, &models.Room{}, &models.RoomRate{}); err != nil {
			return nil, fmt.Errorf("failed to migrate tables: %w", err)
		}
	}
	return db, nil
}
