// Package config holds the runtime configuration of the API.
//
// Values are layered: defaults in code, then an optional YAML or JSON file named by
// CONFIG_FILE, then environment variables. Plan limits live here so handlers receive
// them explicitly instead of reading tier constants.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
)

// Environment is the deployment stage.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// AI provider names.
const (
	AIProviderNone  = "none"
	AIProviderHTTP  = "http"
	AIProviderGenAI = "genai"
)

// Config is the complete runtime configuration.
type Config struct {
	Environment    Environment   `yaml:"environment" json:"environment" envconfig:"ENVIRONMENT"`
	ServerAddress  string        `yaml:"server_address" json:"server_address" envconfig:"SERVER_ADDRESS"`
	LogLevel       string        `yaml:"log_level" json:"log_level" envconfig:"LOG_LEVEL"`
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout" envconfig:"REQUEST_TIMEOUT"`
	SentryDSN      string        `yaml:"sentry_dsn" json:"sentry_dsn" envconfig:"SENTRY_DSN"`
	CORSOrigins    []string      `yaml:"cors_origins" json:"cors_origins" envconfig:"CORS_ORIGINS"`

	Supabase SupabaseConfig `yaml:"supabase" json:"supabase" envconfig:"SUPABASE"`
	AI       AIConfig       `yaml:"ai" json:"ai" envconfig:"AI"`
	Clearbit ClearbitConfig `yaml:"clearbit" json:"clearbit" envconfig:"CLEARBIT"`

	// Relations read and written by the API.
	ShipmentsView  string `yaml:"shipments_view" json:"shipments_view" envconfig:"SHIPMENTS_VIEW"`
	ContactsTable  string `yaml:"contacts_table" json:"contacts_table" envconfig:"CONTACTS_TABLE"`
	CampaignsTable string `yaml:"campaigns_table" json:"campaigns_table" envconfig:"CAMPAIGNS_TABLE"`

	// Optional AWS integrations. Empty names disable them.
	AWSRegion        string `yaml:"aws_region" json:"aws_region" envconfig:"AWS_REGION"`
	EventBusName     string `yaml:"event_bus_name" json:"event_bus_name" envconfig:"EVENT_BUS_NAME"`
	IdempotencyTable string `yaml:"idempotency_table" json:"idempotency_table" envconfig:"IDEMPOTENCY_TABLE"`

	EnableMetrics   bool    `yaml:"enable_metrics" json:"enable_metrics" envconfig:"ENABLE_METRICS"`
	EnableTracing   bool    `yaml:"enable_tracing" json:"enable_tracing" envconfig:"ENABLE_TRACING"`
	OTLPEndpoint    string  `yaml:"otlp_endpoint" json:"otlp_endpoint" envconfig:"OTLP_ENDPOINT"`
	TraceSampleRate float64 `yaml:"trace_sample_rate" json:"trace_sample_rate" envconfig:"TRACE_SAMPLE_RATE"`

	Plans map[domain.Plan]domain.PlanLimits `yaml:"plans" json:"plans" ignored:"true"`
}

// SupabaseConfig points at the hosted store.
type SupabaseConfig struct {
	URL            string `yaml:"url" json:"url" envconfig:"URL"`
	ServiceRoleKey string `yaml:"service_role_key" json:"service_role_key" envconfig:"SERVICE_ROLE_KEY"`
	JWTSecret      string `yaml:"jwt_secret" json:"jwt_secret" envconfig:"JWT_SECRET"`
}

// AIConfig selects and configures the completion provider.
type AIConfig struct {
	Provider string        `yaml:"provider" json:"provider" envconfig:"PROVIDER"`
	Endpoint string        `yaml:"endpoint" json:"endpoint" envconfig:"ENDPOINT"`
	APIKey   string        `yaml:"api_key" json:"api_key" envconfig:"API_KEY"`
	Model    string        `yaml:"model" json:"model" envconfig:"MODEL"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" envconfig:"TIMEOUT"`
}

// ClearbitConfig enables company enrichment.
type ClearbitConfig struct {
	APIKey string `yaml:"api_key" json:"api_key" envconfig:"API_KEY"`
}

// DefaultPlans are the limits used when the configuration does not override a tier.
func DefaultPlans() map[domain.Plan]domain.PlanLimits {
	return map[domain.Plan]domain.PlanLimits{
		domain.PlanFree:       {MaxPageSize: 50, MaxExportRows: 100, AIInsights: false},
		domain.PlanPro:        {MaxPageSize: 100, MaxExportRows: 5000, AIInsights: true},
		domain.PlanEnterprise: {MaxPageSize: 200, MaxExportRows: 50000, AIInsights: true},
	}
}

// Default returns the development defaults.
func Default() *Config {
	return &Config{
		Environment:    Development,
		ServerAddress:  ":8080",
		LogLevel:       "info",
		RequestTimeout: 30 * time.Second,
		CORSOrigins:    []string{"*"},
		AI: AIConfig{
			Provider: AIProviderNone,
			Model:    "gemini-2.0-flash",
			Timeout:  20 * time.Second,
		},
		ShipmentsView:   "unified_shipments",
		ContactsTable:   "crm_contacts",
		CampaignsTable:  "campaigns",
		AWSRegion:       "us-east-1",
		EnableMetrics:   true,
		TraceSampleRate: 0.1,
		Plans:           DefaultPlans(),
	}
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}

	if c.IsProduction() {
		if c.Supabase.URL == "" {
			return fmt.Errorf("SUPABASE_URL is required in production")
		}
		if c.Supabase.ServiceRoleKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required in production")
		}
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	switch c.AI.Provider {
	case AIProviderNone, AIProviderGenAI:
	case AIProviderHTTP:
		if c.AI.Endpoint == "" {
			return fmt.Errorf("AI_ENDPOINT is required for the http provider")
		}
	default:
		return fmt.Errorf("unknown AI provider %q", c.AI.Provider)
	}

	if _, ok := c.Plans[domain.PlanFree]; !ok {
		return fmt.Errorf("plan %q must be configured", domain.PlanFree)
	}
	for plan, limits := range c.Plans {
		if limits.MaxPageSize < 1 {
			return fmt.Errorf("plan %q: max_page_size must be at least 1", plan)
		}
		if limits.MaxExportRows < 0 {
			return fmt.Errorf("plan %q: max_export_rows cannot be negative", plan)
		}
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		return fmt.Errorf("trace sample rate must be between 0 and 1")
	}
	return nil
}

// IsProduction reports whether the API runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Limits returns the limits of plan. Unknown plans get the free tier.
func (c *Config) Limits(plan domain.Plan) domain.PlanLimits {
	if limits, ok := c.Plans[domain.Plan(strings.ToLower(string(plan)))]; ok {
		return limits
	}
	return c.Plans[domain.PlanFree]
}
