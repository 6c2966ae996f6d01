package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/scribekit/errors"
)

type remoteSettings struct {
	APIKey       string `mapstructure:"api_key" validate:"required_if=Enabled true"`
	Enabled      bool   `mapstructure:"enabled"`
	PollAttempts int    `mapstructure:"max_poll_attempts" validate:"gte=0"`
}

type runSettings struct {
	Engine   string         `mapstructure:"engine" validate:"required,oneof=whisper assemblyai"`
	Language string         `mapstructure:"language" validate:"omitempty,oneof=en en_us it es fr de"`
	Remote   remoteSettings `mapstructure:"assemblyai"`
}

func TestValidateValid(t *testing.T) {
	err := Validate(runSettings{Engine: "whisper", Language: "it"})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateReportsConfigKeys(t *testing.T) {
	err := Validate(runSettings{Engine: "gpt", Remote: remoteSettings{Enabled: true}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{"engine: must be one of: whisper assemblyai", "assemblyai.api_key: is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestValidateFieldDetails(t *testing.T) {
	err := Validate(runSettings{Engine: "whisper", Remote: remoteSettings{PollAttempts: -1}})
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 1 {
		t.Fatalf("expected one field error, got %#v", appErr.Details["fields"])
	}
	if fields[0].Field != "assemblyai.max_poll_attempts" {
		t.Errorf("unexpected field %q", fields[0].Field)
	}
	if fields[0].Message != "must be greater than or equal to 0" {
		t.Errorf("unexpected message %q", fields[0].Message)
	}
}

func TestValidateStringLength(t *testing.T) {
	type input struct {
		Title string `validate:"required,min=3,max=10"`
	}

	if err := Validate(input{Title: "abc"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	err := Validate(input{Title: "ab"})
	if err == nil {
		t.Fatal("expected error for short title")
	}
	if !strings.Contains(err.Error(), "title: must be at least 3 characters") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Engine":     "engine",
		"BasePath":   "base_path",
		"PollTimout": "poll_timout",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
