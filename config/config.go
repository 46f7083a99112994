package config

import (
	"log"

	"github.com/spf13/viper"
)

type WebServerConfig struct {
	Port            string `mapstructure:"port"`
	IP              string `mapstructure:"ip"`
	Scheme          string `mapstructure:"scheme"`
	BaseURL         string `mapstructure:"base_url"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	Production      bool   `mapstructure:"production"`
}

type BackendConfig struct {
	// APIURL is the base URL of the booking/link backend, without a trailing slash.
	APIURL         string `mapstructure:"api_url"`
	RequestTimeout int    `mapstructure:"request_timeout"`
}

type ShortlinkConfig struct {
	// Host is the dedicated short-link hostname (e.g. link.maetry.com).
	// Requests arriving on this host are rewritten to the link-resolution route.
	Host string `mapstructure:"host"`
}

type CookiesConfig struct {
	LocaleMaxAge   int `mapstructure:"locale_max_age"`   // seconds
	TrackingMaxAge int `mapstructure:"tracking_max_age"` // seconds
}

type RedisConfig struct {
	Address          string `mapstructure:"address"`
	Password         string `mapstructure:"password"`
	DB               int    `mapstructure:"db"`
	PoolSize         int    `mapstructure:"pool_size"`
	MinIdleConns     int    `mapstructure:"min_idle_conns"`
	OperationTimeout int    `mapstructure:"operation_timeout"`
}

type CacheConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxSizeMB   int  `mapstructure:"max_size_mb"`
	TTLSeconds  int  `mapstructure:"ttl_seconds"`
	CounterSize int  `mapstructure:"counter_size"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type SecurityConfig struct {
	BotDetectionEnabled     bool `mapstructure:"bot_detection_enabled"`
	BotMaxRequestsPerMinute int  `mapstructure:"bot_max_requests_per_minute"`
}

type AdminConfig struct {
	APIKey      string `mapstructure:"api_key"`
	AuthEnabled bool   `mapstructure:"auth_enabled"`
}

type Config struct {
	WebServer WebServerConfig `mapstructure:"webserver"`
	Backend   BackendConfig   `mapstructure:"backend"`
	Shortlink ShortlinkConfig `mapstructure:"shortlink"`
	Cookies   CookiesConfig   `mapstructure:"cookies"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Security  SecurityConfig  `mapstructure:"security"`
	Admin     AdminConfig     `mapstructure:"admin"`
}

func LoadConfig() (Config, error) {
	var config Config

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Enable environment variable overrides
	viper.SetEnvPrefix("MAETRY")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %v", err)
		return config, err
	}

	if err := viper.Unmarshal(&config); err != nil {
		log.Printf("Unable to decode into struct: %v", err)
		return config, err
	}

	log.Println("Configuration loaded successfully")
	return config, nil
}

func MustLoadConfig() Config {
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return config
}

func setDefaults() {
	// WebServer defaults
	viper.SetDefault("webserver.port", "8080")
	viper.SetDefault("webserver.ip", "127.0.0.1")
	viper.SetDefault("webserver.scheme", "http")
	viper.SetDefault("webserver.base_url", "")
	viper.SetDefault("webserver.read_timeout", 15)
	viper.SetDefault("webserver.write_timeout", 15)
	viper.SetDefault("webserver.shutdown_timeout", 30)
	viper.SetDefault("webserver.production", false)

	// Backend defaults
	viper.SetDefault("backend.api_url", "")
	viper.SetDefault("backend.request_timeout", 15)

	// Shortlink defaults
	viper.SetDefault("shortlink.host", "link.maetry.com")

	// Cookie defaults
	viper.SetDefault("cookies.locale_max_age", 60*60*24*365)   // 1 year
	viper.SetDefault("cookies.tracking_max_age", 60*60*24*180) // 180 days

	// Redis defaults
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.min_idle_conns", 5)
	viper.SetDefault("redis.operation_timeout", 5)

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size_mb", 50)
	viper.SetDefault("cache.ttl_seconds", 60)
	viper.SetDefault("cache.counter_size", 100000)

	// RateLimit defaults
	viper.SetDefault("ratelimit.requests_per_second", 10.0)
	viper.SetDefault("ratelimit.burst", 20)

	// Security defaults
	viper.SetDefault("security.bot_detection_enabled", true)
	viper.SetDefault("security.bot_max_requests_per_minute", 60)

	// Admin defaults
	viper.SetDefault("admin.api_key", "")
	viper.SetDefault("admin.auth_enabled", false)
}
