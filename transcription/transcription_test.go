package transcription

import (
	"testing"

	"github.com/kbukum/scribekit/errors"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"", LanguageAuto, false},
		{"auto", LanguageAuto, false},
		{" AUTO ", LanguageAuto, false},
		{"en", LanguageEnglish, false},
		{"en_us", LanguageEnglishUS, false},
		{"IT", LanguageItalian, false},
		{"es", LanguageSpanish, false},
		{"fr", LanguageFrench, false},
		{"de", LanguageGerman, false},
		{"pt", "", true},
		{"english", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguage(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Fatalf("error = %v, want INVALID_INPUT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLanguageString(t *testing.T) {
	if LanguageAuto.String() != "auto" {
		t.Errorf("auto String = %q", LanguageAuto.String())
	}
	if LanguageEnglishUS.String() != "en_us" {
		t.Errorf("en_us String = %q", LanguageEnglishUS.String())
	}
	if len(SupportedLanguages()) != 6 {
		t.Errorf("SupportedLanguages = %v", SupportedLanguages())
	}
}

func TestParseEngine(t *testing.T) {
	for _, in := range []string{"whisper", "AssemblyAI", " assemblyai "} {
		if _, err := ParseEngine(in); err != nil {
			t.Errorf("ParseEngine(%q): %v", in, err)
		}
	}
	if _, err := ParseEngine("deepgram"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseEngine(deepgram) error = %v", err)
	}
	if !RequiresCredential(EngineAssemblyAI) || RequiresCredential(EngineWhisper) {
		t.Error("RequiresCredential mismatch")
	}
}

func TestResultHasSummary(t *testing.T) {
	var nilResult *Result
	if nilResult.HasSummary() {
		t.Error("nil result has no summary")
	}
	if (&Result{Transcript: "t"}).HasSummary() {
		t.Error("empty summary reported")
	}
	if !(&Result{Summary: "s"}).HasSummary() {
		t.Error("summary not reported")
	}
}
