package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MINIO_ACCESS_KEY_ID", "minio")
	t.Setenv("MINIO_SECRET_ACCESS_KEY", "minio-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("api port = %d", cfg.API.Port)
	}
	if cfg.Database.Name != "biopress" || cfg.Database.SSLMode != "disable" {
		t.Errorf("database defaults = %+v", cfg.Database)
	}
	if got := cfg.Redis.Addr(); got != "localhost:6379" {
		t.Errorf("redis addr = %q", got)
	}
	if cfg.MinIO.Bucket != "biodata" || !cfg.MinIO.AutoCreateBucket {
		t.Errorf("minio defaults = %+v", cfg.MinIO)
	}
	if cfg.ClamAV.Address != "tcp://localhost:3310" {
		t.Errorf("clamav address = %q", cfg.ClamAV.Address)
	}
	if cfg.Worker.Concurrency != 5 {
		t.Errorf("worker concurrency = %d", cfg.Worker.Concurrency)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_PORT", "9090")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("MINIO_PUBLIC_ENDPOINT", "https://files.example.com")
	t.Setenv("WORKER_CONCURRENCY", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("api port = %d", cfg.API.Port)
	}
	if got := cfg.Redis.Addr(); got != "cache.internal:6380" {
		t.Errorf("redis addr = %q", got)
	}
	if cfg.MinIO.PublicEndpoint != "https://files.example.com" {
		t.Errorf("public endpoint = %q", cfg.MinIO.PublicEndpoint)
	}
	if cfg.Worker.Concurrency != 12 {
		t.Errorf("worker concurrency = %d", cfg.Worker.Concurrency)
	}
}

func TestLoadRejectsMissingSecrets(t *testing.T) {
	t.Setenv("MINIO_ACCESS_KEY_ID", "")
	t.Setenv("MINIO_SECRET_ACCESS_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without minio credentials")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WORKER_CONCURRENCY", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-positive concurrency")
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, Name: "biopress",
		User: "app", Password: "secret", SSLMode: "disable",
	}
	want := "host=db port=5432 user=app password=secret dbname=biopress sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("dsn = %q", got)
	}
}
