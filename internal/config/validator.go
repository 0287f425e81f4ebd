package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var (
	reportFormats = map[string]bool{"json": true, "yaml": true, "yml": true}
	archiveTypes  = map[string]bool{"": true, "sqlite": true, "sqlite3": true, "postgres": true, "postgresql": true, "redis": true}
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if strings.TrimSpace(viper.GetString("work_dir")) == "" {
		errors = append(errors, "work_dir must not be empty")
	}
	if strings.TrimSpace(viper.GetString("ledger_file")) == "" {
		errors = append(errors, "ledger_file must not be empty")
	}
	if strings.TrimSpace(viper.GetString("report_file")) == "" {
		errors = append(errors, "report_file must not be empty")
	}

	format := strings.ToLower(viper.GetString("report_format"))
	if !reportFormats[format] {
		errors = append(errors, fmt.Sprintf("report_format must be json or yaml, got: %q", format))
	}

	archiveType := strings.ToLower(viper.GetString("archive.type"))
	if !archiveTypes[archiveType] {
		errors = append(errors, fmt.Sprintf("archive.type must be sqlite, postgres or redis, got: %q", archiveType))
	}

	switch archiveType {
	case "postgres", "postgresql":
		if viper.GetString("archive.dsn") == "" {
			errors = append(errors, "archive.dsn is required for the postgres archive")
		}
	case "redis":
		if viper.GetString("archive.redis_addr") == "" {
			errors = append(errors, "archive.redis_addr is required for the redis archive")
		}
	}

	if viper.IsSet("archive.redis_ttl") {
		if ttl := viper.GetDuration("archive.redis_ttl"); ttl < 0 {
			errors = append(errors, fmt.Sprintf("archive.redis_ttl must not be negative, got: %v", ttl))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
