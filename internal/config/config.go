package config

import (
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is built once at process start and passed down explicitly.
// Nothing reads the environment after Load returns.
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	BcryptCost int

	// Login attempts per username per minute, plus burst headroom.
	LoginRatePerMinute int
	LoginRateBurst     int

	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:           GetEnvAsString("HTTP_ADDR", ":8080"),
		DatabaseURL:        GetEnvAsString("DATABASE_URL", ""),
		JWTSecret:          GetEnvAsString("JWT_SECRET", ""),
		TokenTTL:           GetEnvAsDuration("TOKEN_TTL", 30*time.Minute),
		BcryptCost:         GetEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		LoginRatePerMinute: GetEnvAsInt("LOGIN_RATE_PER_MINUTE", 60),
		LoginRateBurst:     GetEnvAsInt("LOGIN_RATE_BURST", 20),
		AdminUsername:      GetEnvAsString("ADMIN_USERNAME", ""),
		AdminPassword:      GetEnvAsString("ADMIN_PASSWORD", ""),
	}
}
