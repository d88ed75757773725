package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"

	"hotelcart/constants"
)

// Settings là cấu hình của dịch vụ giỏ hàng
type Settings struct {
	Env  string `default:"dev"`
	Port string `default:"8083"`

	Log struct {
		Level  string `default:"info"`
		Format string `default:"json"`
	}

	Catalog struct {
		// Source là "db" (đọc Postgres) hoặc "http" (gọi dịch vụ danh mục)
		Source   string        `default:"db"`
		URL      string
		Timeout  time.Duration `default:"10s"`
		CacheTTL time.Duration `default:"1m"`
	}

	Session struct {
		// Store là "redis" hoặc "memory"
		Store string        `default:"redis"`
		TTL   time.Duration `default:"2h"`
	}

	Handoff struct {
		Secret string
		TTL    time.Duration `default:"15m"`
	}

	Redis struct {
		Addr     string `default:"localhost:6379"`
		User     string
		Password string
	}

	DBAutoMigrate bool
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// Load đọc cấu hình: giá trị mặc định rồi ghi đè bằng biến môi trường
func Load() (*Settings, error) {
	s := &Settings{}
	if err := defaults.Set(s); err != nil {
		return nil, fmt.Errorf("không đặt được cấu hình mặc định: %w", err)
	}

	overrideString(&s.Env, "ENV")
	overrideString(&s.Port, "PORT")
	overrideString(&s.Log.Level, "LOG_LEVEL")
	overrideString(&s.Log.Format, "LOG_FORMAT")
	overrideString(&s.Catalog.Source, "CATALOG_SOURCE")
	overrideString(&s.Catalog.URL, "CATALOG_URL")
	overrideString(&s.Session.Store, "SESSION_STORE")
	overrideString(&s.Handoff.Secret, "HANDOFF_SECRET")
	overrideString(&s.Redis.Addr, "REDIS_ADDR")
	overrideString(&s.Redis.User, "REDIS_USER")
	overrideString(&s.Redis.Password, "REDIS_PASSWORD")

	for key, target := range map[string]*time.Duration{
		"CATALOG_TIMEOUT":   &s.Catalog.Timeout,
		"CATALOG_CACHE_TTL": &s.Catalog.CacheTTL,
		"SESSION_TTL":       &s.Session.TTL,
		"HANDOFF_TTL":       &s.Handoff.TTL,
	} {
		if err := overrideDuration(target, key); err != nil {
			return nil, err
		}
	}
	if v := GetEnv("DB_AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("DB_AUTO_MIGRATE không hợp lệ: %w", err)
		}
		s.DBAutoMigrate = b
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate kiểm tra các giá trị liệt kê và các khóa bắt buộc
func (s *Settings) Validate() error {
	switch s.Catalog.Source {
	case constants.CatalogSourceDB:
	case constants.CatalogSourceHTTP:
		if s.Catalog.URL == "" {
			return fmt.Errorf("CATALOG_URL là bắt buộc khi CATALOG_SOURCE=http")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE không hợp lệ: %s", s.Catalog.Source)
	}

	switch s.Session.Store {
	case constants.SessionStoreRedis, constants.SessionStoreMemory:
	default:
		return fmt.Errorf("SESSION_STORE không hợp lệ: %s", s.Session.Store)
	}

	if s.Handoff.Secret == "" {
		return fmt.Errorf("HANDOFF_SECRET là bắt buộc")
	}
	return nil
}

func overrideString(target *string, key string) {
	if v := GetEnv(key); v != "" {
		*target = v
	}
}

func overrideDuration(target *time.Duration, key string) error {
	v := GetEnv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s không hợp lệ: %w", key, err)
	}
	*target = d
	return nil
}
