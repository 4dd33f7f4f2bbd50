package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPublic = `
server:
  port: "8081"
  read_timeout: 5s
  write_timeout: 10s
api:
  base_url: http://api:8080/api
  timeout: 0s
  default_per_page: 12
  popular_limit: 6
images:
  placeholder: /static/images/placeholder.jpg
  equipment_dir: /static/images/equipment
notifications:
  duration: 4s
log:
  level: info
login_url: /login
templates_path: templates
static_path: static
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfig(t, validPublic, "jwt_key: 'k'\n")

	cfg := MustLoad(dir)

	assert.Equal(t, "8081", cfg.Public.Server.Port)
	assert.Equal(t, "http://api:8080/api", cfg.Public.API.BaseURL)
	assert.Equal(t, 12, cfg.Public.API.DefaultPerPage)
	assert.Equal(t, 4*time.Second, cfg.Public.Notifications.Duration)
	assert.Equal(t, "/static/images/equipment", cfg.Public.Images.EquipmentDir)
	assert.Equal(t, "k", cfg.JwtKey())
}

func TestMustLoad_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, validPublic, "jwt_key: 'file-key'\n")
	t.Setenv("API_BASE_URL", "http://backend.internal/api")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "env-key")

	cfg := MustLoad(dir)

	assert.Equal(t, "http://backend.internal/api", cfg.Public.API.BaseURL)
	assert.Equal(t, "9000", cfg.Public.Server.Port)
	assert.Equal(t, "env-key", cfg.JwtKey())
	// untouched by the environment
	assert.Equal(t, "/login", cfg.Public.LoginURL)
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// jwt_key is intentionally missing
	dir := writeConfig(t, validPublic, "other: 1\n")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing required field, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestMustLoad_NotificationDurationOutOfRange(t *testing.T) {
	public := strings.Replace(validPublic, "duration: 4s", "duration: 10s", 1)
	dir := writeConfig(t, public, "jwt_key: 'k'\n")

	assert.Panics(t, func() { _ = MustLoad(dir) })
}

func TestMustLoad_MissingFile(t *testing.T) {
	assert.PanicsWithValue(t, "config file does not exist: "+filepath.Join("does-not-exist", "public.yaml"), func() {
		_ = MustLoad("does-not-exist")
	})
}
