package config

import (
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config is everything read from the environment at startup.
type Config struct {
	DBDriver          string // "sqlite" (default) or "mysql"
	DBDSN             string
	ServerPort        string
	AdminPasswordHash string // bcrypt hash of the shared staff password
	CORSOrigin        string
}

// Load reads .env (if present) and the environment, falling back to
// development defaults.
func Load() *Config {
	godotenv.Load()

	return &Config{
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBDSN:             getEnv("DB_DSN", "comanda.db"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", defaultAdminHash()),
		CORSOrigin:        getEnv("CORS_ORIGIN", "*"),
	}
}

// OpenDB opens the configured database. SQLite keeps the snapshot in a
// local file, matching the single-tenant deployment; MySQL is available
// for shared setups.
func (c *Config) OpenDB() (*gorm.DB, error) {
	if c.DBDriver == "mysql" {
		return gorm.Open(mysql.Open(c.DBDSN), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(c.DBDSN), &gorm.Config{})
}

// CheckAdminPassword verifies the shared staff password.
func (c *Config) CheckAdminPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.AdminPasswordHash), []byte(password)) == nil
}

// defaultAdminHash is the development password "admin123". Always set
// ADMIN_PASSWORD_HASH in production.
func defaultAdminHash() string {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	return string(hash)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
