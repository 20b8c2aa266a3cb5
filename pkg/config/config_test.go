package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadNormalizesBareYear(t *testing.T) {
	c, err := Load(writeConfig(t, `
environment: test
server:
  port: 8080
clickhouse:
  host: localhost
league:
  default_season: "2024"
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.League.DefaultSeason != "2024-25" {
		t.Fatalf("default_season = %q, want 2024-25", c.League.DefaultSeason)
	}
}

func TestLoadDerivesSeasonsFromDefault(t *testing.T) {
	c, err := Load(writeConfig(t, `
environment: test
server:
  port: 8080
clickhouse:
  host: localhost
league:
  default_season: "2024-25"
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"2024-25", "2023-24", "2022-23"}
	if len(c.League.Seasons) != len(want) {
		t.Fatalf("got %d seasons, want %d", len(c.League.Seasons), len(want))
	}
	for i := range want {
		if c.League.Seasons[i] != want[i] {
			t.Fatalf("seasons[%d] = %q, want %q", i, c.League.Seasons[i], want[i])
		}
	}
}

func TestLoadRejectsMalformedSeason(t *testing.T) {
	if _, err := Load(writeConfig(t, `
environment: test
server:
  port: 8080
clickhouse:
  host: localhost
league:
  default_season: "2024-26"
`)); err == nil {
		t.Fatalf("non-consecutive season years must be rejected")
	}

	if _, err := Load(writeConfig(t, `
environment: test
server:
  port: 8080
clickhouse:
  host: localhost
league:
  default_season: "2024-25"
  seasons: ["2024-25", "garbage"]
`)); err == nil {
		t.Fatalf("malformed seasons entry must be rejected")
	}
}

func TestLoadWithEnvNormalizesSeason(t *testing.T) {
	path := writeConfig(t, `
environment: test
server:
  port: 8080
clickhouse:
  host: localhost
league:
  default_season: "2023-24"
`)

	t.Setenv("DEFAULT_SEASON", "2025")
	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.League.DefaultSeason != "2025-26" {
		t.Fatalf("default_season = %q, want 2025-26 from env", c.League.DefaultSeason)
	}

	t.Setenv("DEFAULT_SEASON", "not-a-season")
	if _, err := LoadWithEnv(path); err == nil {
		t.Fatalf("garbage DEFAULT_SEASON must be rejected")
	}
}

func TestValidateRequiredFields(t *testing.T) {
	if _, err := Load(writeConfig(t, `
environment: test
server:
  port: 8080
clickhouse:
  host: localhost
`)); err == nil {
		t.Fatalf("missing league.default_season must be rejected")
	}

	if _, err := Load(writeConfig(t, `
environment: test
server:
  port: 8080
clickhouse:
  host: localhost
cache:
  mode: memcached
league:
  default_season: "2024-25"
`)); err == nil {
		t.Fatalf("unknown cache.mode must be rejected")
	}
}
