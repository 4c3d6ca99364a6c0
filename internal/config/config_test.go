package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "DB_DRIVER", "REDIS_DB", "LOAN_DURATION_UNIT", "IDEMPOTENCY_TTL_SECONDS", "AUTO_MIGRATE"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppPort != "8080" || c.DBDriver != "mysql" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.LoanDurationUnit != 24*time.Hour {
		t.Fatalf("duration unit = %s, want 24h", c.LoanDurationUnit)
	}
	if c.IdempotencyTTL() != 5*time.Minute {
		t.Fatalf("idempotency ttl = %s", c.IdempotencyTTL())
	}
	if !c.AutoMigrate {
		t.Fatalf("auto migrate should default to true")
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/ledger.db")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOAN_DURATION_UNIT", "1s")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")
	t.Setenv("AUTO_MIGRATE", "false")

	c := Load()
	if c.DSN() != "/tmp/ledger.db" {
		t.Fatalf("DSN = %q", c.DSN())
	}
	if c.RedisDB != 3 || c.LoanDurationUnit != time.Second || c.IdempTTLSecs != 60 || c.AutoMigrate {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			AppPort: "8080", DBDriver: "mysql",
			MySQLHost: "db", MySQLPort: "3306", MySQLDB: "ledger", MySQLUser: "u",
			LoanDurationUnit: time.Hour, EventsChannel: "ledger.events",
		}
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"missing port", func(c *Config) { c.AppPort = "" }, "APP_PORT"},
		{"missing mysql host", func(c *Config) { c.MySQLHost = "" }, "MySQL"},
		{"bad mysql port", func(c *Config) { c.MySQLPort = "notaport" }, "MYSQL_PORT"},
		{"postgres without dsn", func(c *Config) { c.DBDriver = "postgres" }, "POSTGRES_DSN"},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }, "DB_DRIVER"},
		{"zero unit", func(c *Config) { c.LoanDurationUnit = 0 }, "LOAN_DURATION_UNIT"},
		{"no channel", func(c *Config) { c.EventsChannel = "" }, "EVENTS_CHANNEL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{MySQLHost: "db", MySQLPort: "3306", MySQLDB: "ledger", MySQLUser: "u", MySQLPass: "p", DBDriver: "mysql"}
	want := "u:p@tcp(db:3306)/ledger?parseTime=true&loc=UTC&charset=utf8mb4"
	if got := c.DSN(); got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}
