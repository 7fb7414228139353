package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testYAML = `
app:
  name: test-app
  http:
    host: 127.0.0.1
    port: 3000
  admin:
    host: 127.0.0.1
    port: 3001
log:
  level: debug
  json: false
jwt:
  secret: test-secret
  issuer: test-issuer
db:
  driver: sqlite
  dsn: ./test.db
redis:
  addr: ""
`

func TestLoadDefaultsTokenTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := Load(path)
	assert.Equal(t, "test-app", c.App.Name)
	assert.Equal(t, 3000, c.App.HTTP.Port)
	assert.Equal(t, 3001, c.App.Admin.Port)
	assert.Equal(t, "sqlite", c.DB.Driver)
	assert.Equal(t, "test-secret", c.JWT.Secret)
	// 未配置时回落到 365 天
	assert.Equal(t, 365, c.JWT.AccessTokenTTLDay)
}
