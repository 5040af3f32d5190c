package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

type Config struct {
	BoardRows    int
	BoardColumns int
	PlayerName   string
	ComputerName string
	SavePath     string
	LoadPath     string
	RandomSeed   int64
	LogFile      string

	DatabaseURL          string
	DBDriver             string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int

	RedisURL          string
	RedisPassword     string
	StandingsCacheTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	Port           string
	AllowedOrigins []string
}

func LoadConfig() *Config {
	rows := GetEnvAsInt("BOARD_ROWS", domain.Rows)
	columns := GetEnvAsInt("BOARD_COLUMNS", domain.Columns)
	if rows < 1 || columns < 1 {
		log.Printf("Invalid board size %dx%d, using default: %dx%d", rows, columns, domain.Rows, domain.Columns)
		rows, columns = domain.Rows, domain.Columns
	}

	dbDriver := GetEnv("DB_DRIVER", "pgx")
	if dbDriver != "pgx" && dbDriver != "postgres" {
		log.Printf("Unknown DB_DRIVER %q, using default: pgx", dbDriver)
		dbDriver = "pgx"
	}

	cacheTTLSec := GetEnvAsInt("STANDINGS_CACHE_TTL_SECONDS", 60)

	cfg := &Config{
		BoardRows:    rows,
		BoardColumns: columns,
		PlayerName:   strings.TrimSpace(GetEnv("PLAYER_NAME", "")),
		ComputerName: GetEnv("COMPUTER_NAME", "Computer"),
		SavePath:     GetEnv("SAVE_PATH", "saved_game.txt"),
		LoadPath:     GetEnv("LOAD_PATH", "board_input.txt"),
		RandomSeed:   int64(GetEnvAsInt("RANDOM_SEED", 0)),
		LogFile:      GetEnv("LOG_FILE", ""),

		DatabaseURL:          GetEnv("DATABASE_URL", ""),
		DBDriver:             dbDriver,
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 5),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),

		RedisURL:          GetEnv("REDIS_URL", ""),
		RedisPassword:     GetEnv("REDIS_PASSWORD", ""),
		StandingsCacheTTL: time.Duration(cacheTTLSec) * time.Second,

		KafkaBrokers: GetEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:   GetEnv("KAFKA_TOPIC", "game-analytics"),

		Port:           GetEnv("PORT", "8080"),
		AllowedOrigins: GetEnvAsList("ALLOWED_ORIGINS"),
	}

	return cfg
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsList splits a comma separated variable, dropping blank entries.
func GetEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
