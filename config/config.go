package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// AppConfig menampung setelan runtime yang dibaca dari environment.
type AppConfig struct {
	Port        string
	TotalTables int  // jumlah meja di pool, default 30
	ExemptSelf  bool // kalau true, update reservasi tidak menghitung meja milik record itu sendiri
}

func Load() AppConfig {
	return AppConfig{
		Port:        getenv("PORT", "8080"),
		TotalTables: getenvInt("TOTAL_TABLES", 30),
		ExemptSelf:  getenvBool("ALLOCATOR_EXEMPT_SELF", false),
	}
}

// InitDB membuka koneksi MySQL. DATABASE_URL dipakai langsung sebagai DSN
// kalau di-set, kalau tidak DSN dirakit dari variabel DB_*.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			getenv("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			getenv("DB_HOST", "127.0.0.1"),
			getenv("DB_PORT", "3306"),
			getenv("DB_NAME", "cafe_fausse"),
		)
	}
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
