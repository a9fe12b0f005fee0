package config

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	v.Set("data_dir", "/tmp/readmekit")
	v.Set("view", "recruiter")
	v.Set("word_wrap", 100)
	v.Set("export.filename", "README.md")

	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("data_dir", "")
	v.Set("view", "investor")
	v.Set("word_wrap", 0)
	v.Set("export.filename", " ")

	err := CheckConfigValidity(v)
	if err == nil {
		t.Fatalf("expected error for invalid config")
	}

	msg := err.Error()
	expected := []string{
		"data_dir is required",
		"not developer/recruiter/client",
		"word_wrap must be greater than 0",
		"export.filename is required",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	v := viper.New()
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("view"); got != "developer" {
		t.Errorf("view default: got %q", got)
	}
	if got := v.GetString("output"); got != "markdown" {
		t.Errorf("output default: got %q", got)
	}
	if got := v.GetInt("word_wrap"); got != 80 {
		t.Errorf("word_wrap default: got %d", got)
	}
	if got := v.GetString("export.filename"); got != "README.md" {
		t.Errorf("export.filename default: got %q", got)
	}
	if v.GetString("data_dir") == "" {
		t.Error("data_dir should be resolved")
	}
}

func TestRenderDefaultTOMLContainsOptions(t *testing.T) {
	toml := RenderDefaultTOML()
	for _, want := range []string{"data_dir", "view", "style", "[export]", "filename"} {
		if !strings.Contains(toml, want) {
			t.Errorf("rendered config missing %q:\n%s", want, toml)
		}
	}
}

func TestUpdateTOMLMergesAndFlagsOutdated(t *testing.T) {
	existing := "view = \"client\"\nlegacy_key = 3\n"
	updated, changed := UpdateTOML(existing)
	if !changed {
		t.Fatal("expected changes")
	}
	if !strings.Contains(updated, "view = \"client\"") {
		t.Error("existing value should be preserved")
	}
	if !strings.Contains(updated, "# OUTDATED") {
		t.Error("unknown key should be commented out")
	}
	if !strings.Contains(updated, "word_wrap") {
		t.Error("missing defaults should be appended")
	}
}
