package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		setup     func()
		wantError bool
		errMsg    string
	}{
		{
			name:      "Defaults",
			setup:     func() {},
			wantError: false,
		},
		{
			name: "Valid Sqlite Archive",
			setup: func() {
				viper.Set("report_format", "YAML")
				viper.Set("archive.type", "sqlite")
			},
			wantError: false,
		},
		{
			name: "Unknown Report Format",
			setup: func() {
				viper.Set("report_format", "csv")
			},
			wantError: true,
			errMsg:    "report_format must be json or yaml",
		},
		{
			name: "Empty Ledger File",
			setup: func() {
				viper.Set("ledger_file", " ")
			},
			wantError: true,
			errMsg:    "ledger_file must not be empty",
		},
		{
			name: "Unknown Archive Type",
			setup: func() {
				viper.Set("archive.type", "mongo")
			},
			wantError: true,
			errMsg:    "archive.type must be sqlite, postgres or redis",
		},
		{
			name: "Postgres Without DSN",
			setup: func() {
				viper.Set("archive.type", "postgres")
			},
			wantError: true,
			errMsg:    "archive.dsn is required",
		},
		{
			name: "Redis Without Address",
			setup: func() {
				viper.Set("archive.type", "redis")
			},
			wantError: true,
			errMsg:    "archive.redis_addr is required",
		},
		{
			name: "Negative Redis TTL",
			setup: func() {
				viper.Set("archive.type", "redis")
				viper.Set("archive.redis_addr", "127.0.0.1:6379")
				viper.Set("archive.redis_ttl", -time.Minute)
			},
			wantError: true,
			errMsg:    "archive.redis_ttl must not be negative",
		},
		{
			name: "Multiple Errors",
			setup: func() {
				viper.Set("report_file", "")
				viper.Set("work_dir", "")
			},
			wantError: true,
			errMsg:    "work_dir must not be empty\n  report_file must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			SetDefaults()
			tt.setup()

			err := ValidateConfig()
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateConfig() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if tt.wantError && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateConfig() error = %v, want to contain %q", err, tt.errMsg)
			}
		})
	}
	viper.Reset()
}
