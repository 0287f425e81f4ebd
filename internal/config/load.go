package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. BENCHLEDGER_WORK_DIR.
const EnvPrefix = "BENCHLEDGER"

// Settings is the typed view of the loaded configuration.
type Settings struct {
	WorkDir       string `mapstructure:"work_dir"`
	LedgerFile    string `mapstructure:"ledger_file"`
	ReportFile    string `mapstructure:"report_file"`
	ReportFormat  string `mapstructure:"report_format"`
	SkipMalformed bool   `mapstructure:"skip_malformed"`
	Verbose       bool   `mapstructure:"verbose"`
	LogFile       string `mapstructure:"log_file"`

	Metrics MetricsSettings `mapstructure:"metrics"`
	Archive ArchiveSettings `mapstructure:"archive"`
}

type MetricsSettings struct {
	Textfile string `mapstructure:"textfile"`
}

type ArchiveSettings struct {
	Type      string        `mapstructure:"type"`
	DSN       string        `mapstructure:"dsn"`
	RedisAddr string        `mapstructure:"redis_addr"`
	RedisTTL  time.Duration `mapstructure:"redis_ttl"`
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("work_dir", "tfhe")
	viper.SetDefault("ledger_file", "wasm_pk_gen.csv")
	viper.SetDefault("report_file", "benchmarks_parameters/wasm_pk_gen.json")
	viper.SetDefault("report_format", "json")
	viper.SetDefault("skip_malformed", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics.textfile", "")
	viper.SetDefault("archive.type", "")
	viper.SetDefault("archive.dsn", "")
	viper.SetDefault("archive.redis_addr", "")
	viper.SetDefault("archive.redis_ttl", time.Duration(0))
}

// Load initializes the configuration from file and environment variables.
// An empty cfgFile searches the current directory for benchledger.yaml and
// tolerates its absence; an explicit cfgFile must exist.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile == "" {
		cfgFile = os.Getenv(EnvPrefix + "_CONFIG")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("benchledger")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Get decodes the current configuration into Settings.
func Get() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return s, nil
}
