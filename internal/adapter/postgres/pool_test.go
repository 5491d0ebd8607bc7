package postgres

import (
	"testing"
	"time"

	"github.com/heartmarshall/myburmese-backend/internal/config"
)

func TestPoolConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		wantMax int32
		wantMin int32
		wantApp string
	}{
		{
			name:    "settings applied",
			cfg:     config.DatabaseConfig{DSN: "postgres://u:p@localhost:5432/db", MaxConns: 4, MinConns: 1, MaxConnLifetime: time.Hour},
			wantMax: 4,
			wantMin: 1,
			wantApp: "phrasebook",
		},
		{
			name:    "min capped at max",
			cfg:     config.DatabaseConfig{DSN: "postgres://u:p@localhost:5432/db", MaxConns: 2, MinConns: 9},
			wantMax: 2,
			wantMin: 2,
			wantApp: "phrasebook",
		},
		{
			name:    "dsn application name kept",
			cfg:     config.DatabaseConfig{DSN: "postgres://u:p@localhost:5432/db?application_name=ops", MaxConns: 3},
			wantMax: 3,
			wantMin: 0,
			wantApp: "ops",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := poolConfig(tt.cfg)
			if err != nil {
				t.Fatalf("poolConfig() unexpected error: %v", err)
			}
			if got.MaxConns != tt.wantMax || got.MinConns != tt.wantMin {
				t.Errorf("conns = %d/%d, want %d/%d", got.MaxConns, got.MinConns, tt.wantMax, tt.wantMin)
			}
			if app := got.ConnConfig.RuntimeParams["application_name"]; app != tt.wantApp {
				t.Errorf("application_name = %q, want %q", app, tt.wantApp)
			}
		})
	}
}

func TestPoolConfig_BadDSN(t *testing.T) {
	t.Parallel()

	if _, err := poolConfig(config.DatabaseConfig{DSN: "::not a dsn"}); err == nil {
		t.Error("expected error for malformed DSN")
	}
}
