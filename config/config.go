package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Stores
	Postgres PostgresConfig
	Redis    RedisConfig

	// Collaborators
	Gemini GeminiConfig

	// Domain tuning
	Auth     AuthConfig
	Chat     ChatConfig
	Matching MatchingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type AuthConfig struct {
	OTPTTL      time.Duration
	SessionTTL  time.Duration
	MockOTPCode string
}

type ChatConfig struct {
	RateLimitPerMin int
	FAQCacheTTL     time.Duration
}

// MatchingConfig optionally overrides the FAQ scoring constants. A zero value
// keeps the built-in default for that knob.
type MatchingConfig struct {
	PhraseScore     float64
	PhraseRelevance float64
	BigramScore     float64
	BigramRelevance float64

	ExactWordScore   float64
	PartialWordScore float64
	AnswerWordScore  float64

	RelevanceBonus float64

	KeywordWholeScore         float64
	KeywordWholeRelevance     float64
	KeywordSubstringScore     float64
	KeywordSubstringRelevance float64

	MinRelevanceForScore float64
	RelevanceDivisor     float64

	MinFinalScore float64
	MinRelevance  float64
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Stores
	cfg.Postgres.URL = viper.GetString("postgres.url")
	if pgURL := viper.GetString("database_url"); pgURL != "" {
		cfg.Postgres.URL = pgURL
	}
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Auth
	cfg.Auth.OTPTTL = viper.GetDuration("auth.otp_ttl")
	cfg.Auth.SessionTTL = viper.GetDuration("auth.session_ttl")
	cfg.Auth.MockOTPCode = viper.GetString("auth.mock_otp_code")

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.FAQCacheTTL = viper.GetDuration("chat.faq_cache_ttl")

	// Matching overrides (every knob defaults to 0 = use built-in constant)
	cfg.Matching.PhraseScore = viper.GetFloat64("matching.phrase_score")
	cfg.Matching.PhraseRelevance = viper.GetFloat64("matching.phrase_relevance")
	cfg.Matching.BigramScore = viper.GetFloat64("matching.bigram_score")
	cfg.Matching.BigramRelevance = viper.GetFloat64("matching.bigram_relevance")
	cfg.Matching.ExactWordScore = viper.GetFloat64("matching.exact_word_score")
	cfg.Matching.PartialWordScore = viper.GetFloat64("matching.partial_word_score")
	cfg.Matching.AnswerWordScore = viper.GetFloat64("matching.answer_word_score")
	cfg.Matching.RelevanceBonus = viper.GetFloat64("matching.relevance_bonus")
	cfg.Matching.KeywordWholeScore = viper.GetFloat64("matching.keyword_whole_score")
	cfg.Matching.KeywordWholeRelevance = viper.GetFloat64("matching.keyword_whole_relevance")
	cfg.Matching.KeywordSubstringScore = viper.GetFloat64("matching.keyword_substring_score")
	cfg.Matching.KeywordSubstringRelevance = viper.GetFloat64("matching.keyword_substring_relevance")
	cfg.Matching.MinRelevanceForScore = viper.GetFloat64("matching.min_relevance_for_score")
	cfg.Matching.RelevanceDivisor = viper.GetFloat64("matching.relevance_divisor")
	cfg.Matching.MinFinalScore = viper.GetFloat64("matching.min_final_score")
	cfg.Matching.MinRelevance = viper.GetFloat64("matching.min_relevance")

	if cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("postgres.url is required (or set DATABASE_URL)")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("auth.otp_ttl", "5m")
	viper.SetDefault("auth.session_ttl", "24h")
	viper.SetDefault("chat.rate_limit_per_min", 30)
	viper.SetDefault("chat.faq_cache_ttl", "5m")
}
