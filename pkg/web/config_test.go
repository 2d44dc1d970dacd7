package web_test

import (
	"testing"

	"github.com/JaimeStill/physics-lab/pkg/web"
)

var testEnv = &web.Env{
	TemplatesDir:    "TEST_WEB_TEMPLATES_DIR",
	StaticDir:       "TEST_WEB_STATIC_DIR",
	Reload:          "TEST_WEB_RELOAD",
	MaxTemplateSize: "TEST_WEB_MAX_TEMPLATE_SIZE",
}

func TestConfigDefaults(t *testing.T) {
	var cfg web.Config
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.StaticDir != "static" {
		t.Errorf("StaticDir = %q, want static", cfg.StaticDir)
	}
	if cfg.TemplatesDir != "" {
		t.Errorf("TemplatesDir = %q, want embedded", cfg.TemplatesDir)
	}
	if cfg.Reload {
		t.Error("Reload = true, want false")
	}
	if cfg.MaxTemplateSizeBytes() != 1000000 {
		t.Errorf("MaxTemplateSizeBytes() = %d, want 1000000", cfg.MaxTemplateSizeBytes())
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("TEST_WEB_TEMPLATES_DIR", "/srv/templates")
	t.Setenv("TEST_WEB_RELOAD", "true")
	t.Setenv("TEST_WEB_MAX_TEMPLATE_SIZE", "64KB")

	var cfg web.Config
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.TemplatesDir != "/srv/templates" {
		t.Errorf("TemplatesDir = %q", cfg.TemplatesDir)
	}
	if !cfg.Reload {
		t.Error("Reload = false, want true")
	}
	if cfg.MaxTemplateSizeBytes() != 64000 {
		t.Errorf("MaxTemplateSizeBytes() = %d, want 64000", cfg.MaxTemplateSizeBytes())
	}
}

func TestConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"reload", "TEST_WEB_RELOAD", "sometimes"},
		{"size", "TEST_WEB_MAX_TEMPLATE_SIZE", "huge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			var cfg web.Config
			if err := cfg.Finalize(testEnv); err == nil {
				t.Error("Finalize() error = nil, want error")
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := web.Config{StaticDir: "static", MaxTemplateSize: "1MB"}
	base.Merge(&web.Config{StaticDir: "/var/www/static", Reload: true})

	if base.StaticDir != "/var/www/static" {
		t.Errorf("StaticDir = %q", base.StaticDir)
	}
	if !base.Reload {
		t.Error("Reload not merged")
	}
	if base.MaxTemplateSize != "1MB" {
		t.Errorf("MaxTemplateSize = %q, want unchanged", base.MaxTemplateSize)
	}
}

func TestConfigEnableDebug(t *testing.T) {
	var cfg web.Config
	cfg.EnableDebug()
	if !cfg.Reload {
		t.Error("EnableDebug() did not enable reload")
	}
}
