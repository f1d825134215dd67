package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	Load(t.TempDir())

	if ConfigInfo.Store.Backend != "file" {
		t.Errorf("Store.Backend = %q, want file", ConfigInfo.Store.Backend)
	}
	if ConfigInfo.Upload.PublicPrefix != "/uploads" {
		t.Errorf("Upload.PublicPrefix = %q, want /uploads", ConfigInfo.Upload.PublicPrefix)
	}
	if ConfigInfo.Jwt.Timeout != 24*time.Hour {
		t.Errorf("Jwt.Timeout = %v, want 24h", ConfigInfo.Jwt.Timeout)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yml := `
store:
  backend: Redis
  dir: /var/lib/flowtube
upload:
  public_prefix: /media/
redis:
  addr: 10.0.0.1:6379
  prefix: demo
jwt:
  secret: s3cret
  timeout: 2h
`
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	Load(dir)

	if ConfigInfo.Store.Backend != "redis" {
		t.Errorf("Store.Backend = %q, want redis", ConfigInfo.Store.Backend)
	}
	if ConfigInfo.Store.Dir != "/var/lib/flowtube" {
		t.Errorf("Store.Dir = %q", ConfigInfo.Store.Dir)
	}
	if ConfigInfo.Upload.PublicPrefix != "/media" {
		t.Errorf("Upload.PublicPrefix = %q, want /media", ConfigInfo.Upload.PublicPrefix)
	}
	if ConfigInfo.Redis.Addr != "10.0.0.1:6379" || ConfigInfo.Redis.Prefix != "demo" {
		t.Errorf("Redis = %+v", ConfigInfo.Redis)
	}
	if ConfigInfo.Jwt.Secret != "s3cret" || ConfigInfo.Jwt.Timeout != 2*time.Hour {
		t.Errorf("Jwt = %+v", ConfigInfo.Jwt)
	}
}
