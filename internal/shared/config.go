package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type FixtureSource string

const (
	SourceEmbedded FixtureSource = "embedded"
	SourceMySQL    FixtureSource = "mysql"
	SourceFeed     FixtureSource = "feed"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string

	MySQLDSN  string
	RedisAddr string
	RedisDB   int
	RedisPass string

	// SessionKey is the Redis key holding the signed-in user.
	SessionKey string

	FixtureSource FixtureSource
	FeedBase      string
	FeedKey       string
	FeedRPS       int
	CacheTTL      time.Duration
	SeedWorkers   int

	DemoPassword       string
	LoginDelay         time.Duration
	LoginRPS           float64
	LoginBurst         int
	BookingAutoConfirm bool

	CORSOrigins    []string
	RequestTimeout time.Duration
	TrustProxy     bool
}

// Load reads the environment. A .env file in the working directory is
// applied first when present; real environment variables win.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env not loaded")
	}

	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		MySQLDSN:  env("MYSQL_DSN", "root:root@tcp(localhost:3306)/wanderlust?parseTime=true&charset=utf8mb4&loc=UTC"),
		RedisAddr: env("REDIS_ADDR", ""),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),

		SessionKey: env("SESSION_KEY", "wanderlust_user"),

		FixtureSource: FixtureSource(strings.ToLower(env("FIXTURE_SOURCE", string(SourceEmbedded)))),
		FeedBase:      env("FEED_BASE_URL", ""),
		FeedKey:       env("FEED_API_KEY", ""),
		FeedRPS:       atoi("FEED_RPS", 5),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SeedWorkers:   atoi("SEED_WORKERS", 8),

		DemoPassword:       env("DEMO_PASSWORD", "password"),
		LoginDelay:         duration("LOGIN_DELAY", time.Second),
		LoginRPS:           float("LOGIN_RPS", 1),
		LoginBurst:         atoi("LOGIN_BURST", 5),
		BookingAutoConfirm: boolean("BOOKING_AUTO_CONFIRM", false),

		CORSOrigins:    list("CORS_ORIGINS", []string{"http://localhost:5173"}),
		RequestTimeout: duration("REQUEST_TIMEOUT", 15*time.Second),
		TrustProxy:     boolean("TRUST_PROXY", false),
	}

	switch c.FixtureSource {
	case SourceEmbedded, SourceMySQL, SourceFeed:
	default:
		log.Warn().Str("source", string(c.FixtureSource)).Msg("unknown FIXTURE_SOURCE, using embedded")
		c.FixtureSource = SourceEmbedded
	}
	if c.FixtureSource == SourceFeed && c.FeedBase == "" {
		log.Warn().Msg("FEED_BASE_URL is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func float(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func boolean(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// duration accepts Go durations ("1500ms") or whole seconds ("2").
func duration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func list(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
