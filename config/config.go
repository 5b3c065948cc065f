package config

import (
	"fmt"
	"os"
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

	// Storage
	Postgres PostgresConfig

	// Jira notifier specifics
	Jira         JiraConfig
	Slack        SlackConfig
	Cache        CacheConfig
	Notification NotificationConfig

	// Webhooks
	Webhook WebhookConfig
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
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the connection string for database/sql.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type JiraConfig struct {
	URL      string
	Username string
	APIToken string
	VCSType  string // dev-status applicationType, e.g. "bitbucket" or "github"
}

type SlackConfig struct {
	BotToken string
}

type CacheConfig struct {
	Enabled       bool
	DefaultTTL    time.Duration
	SweepInterval time.Duration
}

type NotificationConfig struct {
	WorkspaceID     string
	DynamicChannels bool // resolve repository-linked channels via dev-status
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
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

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = expandEnvVar(viper.GetString("postgres.password"))
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Jira
	cfg.Jira.URL = viper.GetString("jira.url")
	cfg.Jira.Username = viper.GetString("jira.username")
	cfg.Jira.APIToken = expandEnvVar(viper.GetString("jira.api_token"))
	cfg.Jira.VCSType = viper.GetString("jira.vcs_type")
	if jiraToken := viper.GetString("jira_api_token"); jiraToken != "" {
		cfg.Jira.APIToken = jiraToken
	}

	// Slack
	cfg.Slack.BotToken = expandEnvVar(viper.GetString("slack.bot_token"))
	if slackToken := viper.GetString("slack_bot_token"); slackToken != "" {
		cfg.Slack.BotToken = slackToken
	}

	// Cache
	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Cache.DefaultTTL = viper.GetDuration("cache.default_ttl")
	cfg.Cache.SweepInterval = viper.GetDuration("cache.sweep_interval")

	// Notification
	cfg.Notification.WorkspaceID = viper.GetString("notification.workspace_id")
	cfg.Notification.DynamicChannels = viper.GetBool("notification.dynamic_channels")

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	if cfg.Jira.URL == "" {
		return nil, fmt.Errorf("jira.url is required")
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
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.database", "jira_notifier")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("jira.vcs_type", "bitbucket")
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.default_ttl", time.Hour)
	viper.SetDefault("cache.sweep_interval", 30*time.Second)
	viper.SetDefault("notification.workspace_id", "default")
	viper.SetDefault("notification.dynamic_channels", false)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.enabled", true)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
