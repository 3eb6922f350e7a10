// api/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration        `mapstructure:"server"`
	Storage       StorageConfiguration       `mapstructure:"storage"`
	Neo4j         DatabaseConfiguration      `mapstructure:"neo4j"`
	Redis         RedisConfiguration         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfiguration `mapstructure:"elasticsearch"`
	Auth          AuthConfiguration          `mapstructure:"auth"`
	Policy        PolicyConfiguration        `mapstructure:"policy"`
	RateLimit     RateLimitConfiguration     `mapstructure:"ratelimit"`
	Log           LogConfiguration           `mapstructure:"log"`
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

// StorageConfiguration selects the client store: "neo4j" or "memory"
type StorageConfiguration struct {
	Driver string `mapstructure:"driver"`
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Enabled         bool          `mapstructure:"enabled"`
	Addr            string        `mapstructure:"addr"`
	Password        string        `mapstructure:"password"`
	DB              int           `mapstructure:"db"`
	DefaultCacheTTL time.Duration `mapstructure:"defaultCacheTTL"`
	EncryptionKey   string        `mapstructure:"encryptionKey"`
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Index   string `mapstructure:"index"`
}

// AuthConfiguration holds the signing secrets of the two actor realms
type AuthConfiguration struct {
	ClientSecret   string `mapstructure:"clientSecret"`
	EmployeeSecret string `mapstructure:"employeeSecret"`
}

// PolicyConfiguration holds the employee role table.
// Source is "config" (use Roles) or "neo4j" (load EmployeeRole nodes).
type PolicyConfiguration struct {
	Source string              `mapstructure:"source"`
	Roles  map[string][]string `mapstructure:"roles"`
}

type RateLimitConfiguration struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type LogConfiguration struct {
	Dir string `mapstructure:"dir"`
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	setDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.shutdownTimeout", "5s")
	viper.SetDefault("storage.driver", "neo4j")
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.defaultCacheTTL", "10m")
	viper.SetDefault("elasticsearch.enabled", false)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "client-audit-logs")
	viper.SetDefault("policy.source", "config")
	viper.SetDefault("ratelimit.enabled", true)
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")
	viper.SetDefault("log.dir", "logging")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
