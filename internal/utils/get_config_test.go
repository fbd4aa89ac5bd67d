package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigAndGetConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := `DB_USER: nutritrack
DB_NAME: nutritrack_db
DB_PASSWORD: secret
DB_PORT: "5432"
DB_HOST: localhost
JWT_SECRET: test-secret
APP_URL: http://localhost:8080
SERVER_KEY: SB-Mid-server-test
IsProd: false
AWS_S3_BUCKET: nutritrack-assets
AWS_S3_REGION: ap-southeast-1
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("writing config.yaml: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	LoadConfig()

	cases := []struct {
		key  string
		want string
	}{
		{"DB_USER", "nutritrack"},
		{"DB_NAME", "nutritrack_db"},
		{"DB_PASSWORD", "secret"},
		{"DB_PORT", "5432"},
		{"DB_HOST", "localhost"},
		{"JWT_SECRET", "test-secret"},
		{"APP_URL", "http://localhost:8080"},
		{"SERVER_KEY", "SB-Mid-server-test"},
		{"IsProd", "false"},
		{"AWS_S3_BUCKET", "nutritrack-assets"},
		{"AWS_S3_REGION", "ap-southeast-1"},
	}
	for _, c := range cases {
		if got := GetConfig(c.key); got != c.want {
			t.Errorf("GetConfig(%q) = %q, want %q", c.key, got, c.want)
		}
	}

	if got := GetConfig("NO_SUCH_KEY"); got != "" {
		t.Errorf("GetConfig on unknown key = %q, want empty", got)
	}

	// LoadConfig mirrors the secret into the environment for consumers
	// that read it via os.Getenv.
	if got := os.Getenv("JWT_SECRET"); got != "test-secret" {
		t.Errorf("JWT_SECRET env = %q, want %q", got, "test-secret")
	}
}
