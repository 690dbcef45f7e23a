package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Port   string
	AppEnv string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBroker string

	JWTSecret     string
	JWTTTL        time.Duration
	ResetTokenTTL time.Duration
	FrontendURL   string

	UploadDir   string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	CORSOrigins        []string
	RateLimitPerMinute int64

	SeedManagerEmail    string
	SeedManagerPassword string
	SeedCompanyID       string
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("no .env file, using environment variables")
	}

	return &Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		KafkaBroker: os.Getenv("KAFKA_BROKER"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        time.Duration(getInt("JWT_TTL_HOURS", 24)) * time.Hour,
		ResetTokenTTL: time.Duration(getInt("RESET_TOKEN_TTL_MINUTES", 60)) * time.Minute,
		FrontendURL:   strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),

		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    getEnv("S3_REGION", "auto"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		RateLimitPerMinute: int64(getInt("RATE_LIMIT_PER_MINUTE", 300)),

		SeedManagerEmail:    os.Getenv("SEED_MANAGER_EMAIL"),
		SeedManagerPassword: os.Getenv("SEED_MANAGER_PASSWORD"),
		SeedCompanyID:       os.Getenv("SEED_COMPANY_ID"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
