package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"tienda/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultPageLimit          = 10
	defaultMaxPageLimit       = 100
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database struct {
		// AutoMigrate creates or updates the schema from the persistence models at startup
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"database" yaml:"database"`

	// Identity configures session verification against the hosted identity provider
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Media configures the hosted image bucket
	Media *MediaConfig `json:"media" yaml:"media"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for coupon QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Inventory *InventoryConfig `json:"inventory" yaml:"inventory"`

	Pagination *PaginationConfig `json:"pagination" yaml:"pagination"`
}

// IdentityConfig defines how session tokens issued by the identity provider are verified
type IdentityConfig struct {
	// Issuer expected in the "iss" claim, e.g. https://clerk.example.com
	Issuer string `json:"issuer" yaml:"issuer"`

	// PEM encoded RSA public key used to verify session token signatures
	PublicKey string `json:"publicKey" yaml:"publicKey"`

	// Origins allowed in the "azp" claim; empty disables the check
	AuthorizedParties []string `json:"authorizedParties" yaml:"authorizedParties"`

	// Hosted sign-up page
	SignUpURL string `json:"signUpUrl" yaml:"signUpUrl"`

	// Default redirect after sign-up when the request does not provide one
	AfterSignUpURL string `json:"afterSignUpUrl" yaml:"afterSignUpUrl"`

	ClockSkew time.Duration `json:"clockSkew" yaml:"clockSkew"`
}

// MediaConfig defines the image bucket and how asset URLs are built
type MediaConfig struct {
	// gocloud.dev bucket URL: gs://, s3://, file:// or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public base URL prepended to object keys
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Optional service account key file (for google provider)
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// InventoryConfig defines the stock report thresholds
type InventoryConfig struct {
	LowStockThreshold int `json:"lowStockThreshold" yaml:"lowStockThreshold"`
	RestockRunwayDays int `json:"restockRunwayDays" yaml:"restockRunwayDays"`
	SalesWindowDays   int `json:"salesWindowDays" yaml:"salesWindowDays"`
}

// PaginationConfig defines list endpoint page sizes
type PaginationConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// InventoryThresholds returns the configured stock report thresholds, falling
// back to the defaults for unset values.
func (c *Config) InventoryThresholds() entity.InventoryThresholds {
	thresholds := entity.DefaultInventoryThresholds()
	if c == nil || c.Inventory == nil {
		return thresholds
	}
	if c.Inventory.LowStockThreshold > 0 {
		thresholds.LowStock = c.Inventory.LowStockThreshold
	}
	if c.Inventory.RestockRunwayDays > 0 {
		thresholds.RestockRunwayDays = c.Inventory.RestockRunwayDays
	}
	if c.Inventory.SalesWindowDays > 0 {
		thresholds.SalesWindowDays = c.Inventory.SalesWindowDays
	}

	return thresholds
}

// PageLimits returns the default and maximum page size for list endpoints.
func (c *Config) PageLimits() (defaultLimit, maxLimit int) {
	defaultLimit, maxLimit = defaultPageLimit, defaultMaxPageLimit
	if c == nil || c.Pagination == nil {
		return defaultLimit, maxLimit
	}
	if c.Pagination.DefaultLimit > 0 {
		defaultLimit = c.Pagination.DefaultLimit
	}
	if c.Pagination.MaxLimit > 0 {
		maxLimit = c.Pagination.MaxLimit
	}

	return defaultLimit, maxLimit
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
