package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// SimConfig is everything sim-svc and agg-svc read from the environment.
type SimConfig struct {
	Tables       int
	Waiters      int
	Customers    int
	Markets      int
	TimeUnit     time.Duration
	Seed         uint64
	AutoRehungry bool

	HTTPAddr    string
	PublicURL   string
	EventsTopic string
	EventBuffer int

	EnablePostgres bool
	EnableRedis    bool
	EnableKafka    bool
}

// LoadSim reads a .env file when one exists, then the environment.
func LoadSim() SimConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env")
	}
	return SimConfig{
		Tables:         getInt("TABLES", 4),
		Waiters:        getInt("WAITERS", 2),
		Customers:      getInt("CUSTOMERS", 6),
		Markets:        getInt("MARKETS", 3),
		TimeUnit:       time.Duration(getInt("TIME_UNIT_MS", 1000)) * time.Millisecond,
		Seed:           uint64(getInt("SEED", 0)),
		AutoRehungry:   getBool("AUTO_REHUNGRY", false),
		HTTPAddr:       getString("HTTP_ADDR", ":8085"),
		PublicURL:      getString("PUBLIC_URL", "http://localhost:8085"),
		EventsTopic:    getString("EVENTS_TOPIC", "restaurant-events"),
		EventBuffer:    getInt("EVENT_BUFFER", 1024),
		EnablePostgres: os.Getenv("DB_HOST") != "",
		EnableRedis:    os.Getenv("REDIS_HOST") != "",
		EnableKafka:    os.Getenv("KAFKA_BROKER") != "",
	}
}

// InitLogger configures the global zerolog logger from LOG_LEVEL and
// LOG_FORMAT.
func InitLogger(service string) {
	level, err := zerolog.ParseLevel(strings.ToLower(getString("LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(os.Stderr)
	if getString("LOG_FORMAT", "json") == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	log.Logger = logger.With().Timestamp().Str("service", service).Logger()
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + getString("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("not an integer, using default")
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("not a boolean, using default")
		return fallback
	}
	return b
}
