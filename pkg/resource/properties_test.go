package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("WEATHER_TEST_SET", "from-env")

	tests := []struct {
		in   string
		want string
	}{
		{in: "${WEATHER_TEST_SET:default}", want: "from-env"},
		{in: "${WEATHER_TEST_UNSET:default}", want: "default"},
		{in: "${WEATHER_TEST_UNSET}", want: ""},
		{in: "${WEATHER_TEST_UNSET:*/15 * * * *}", want: "*/15 * * * *"},
		{in: "plain value", want: "plain value"},
		{in: "prefix-${WEATHER_TEST_SET}", want: "prefix-${WEATHER_TEST_SET}"},
	}

	for _, tt := range tests {
		if got := resolveEnvVariable(tt.in); got != tt.want {
			t.Errorf("resolveEnvVariable(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInitFromFile(t *testing.T) {
	t.Setenv("WEATHER_TEST_PORT", "9090")
	path := filepath.Join(t.TempDir(), "application.yml")
	content := `app:
  server:
    port: ${WEATHER_TEST_PORT:8080}
  weather:
    read-timeout: 5s
    format: xml
  location:
    fallback:
      lat: 48.8566
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { _ = Init("does-not-exist.yml") })

	if got := GetInt("app.server.port"); got != 9090 {
		t.Errorf("port = %d", got)
	}
	if got := GetDuration("app.weather.read-timeout"); got != 5*time.Second {
		t.Errorf("read-timeout = %v", got)
	}
	if got := GetString("app.weather.format"); got != "xml" {
		t.Errorf("format = %q", got)
	}
	if got := GetFloat64("app.location.fallback.lat"); got != 48.8566 {
		t.Errorf("lat = %v", got)
	}
	if got := GetStringOrDefault("app.missing", "fallback"); got != "fallback" {
		t.Errorf("missing = %q", got)
	}
}

func TestInitEmbeddedDefaults(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "missing.yml")); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if got := GetString("app.display.locale"); got == "" {
		t.Error("embedded defaults not loaded")
	}
	if got := GetFloat64("app.location.fallback.lon"); got != 37.6173 {
		t.Errorf("fallback lon = %v", got)
	}
}
