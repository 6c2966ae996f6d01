package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestChooseRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("0\nabc\n3\n2\n"), &out)

	got, err := p.choose("Pick:", []string{"one", "two"}, "Enter 1 or 2: ")
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	if n := strings.Count(out.String(), "Invalid choice. Please enter a number between 1 and 2."); n != 3 {
		t.Errorf("invalid choice notices = %d, want 3\n%s", n, out.String())
	}
	if !strings.Contains(out.String(), "1) one\n2) two\n") {
		t.Errorf("menu not printed:\n%s", out.String())
	}
}

func TestChooseEOF(t *testing.T) {
	p := newPrompter(strings.NewReader("9\n"), &bytes.Buffer{})
	if _, err := p.choose("Pick:", []string{"one"}, "> "); !errors.Is(err, errNoInput) {
		t.Errorf("err = %v, want errNoInput", err)
	}
}

func TestAskRequired(t *testing.T) {
	var out bytes.Buffer
	p := newPrompter(strings.NewReader("\n   \n  my title  "), &out)

	got, err := p.askRequired("Title: ")
	if err != nil {
		t.Fatalf("askRequired: %v", err)
	}
	if got != "my title" {
		t.Errorf("answer = %q", got)
	}
	if n := strings.Count(out.String(), "A value is required."); n != 2 {
		t.Errorf("required notices = %d, want 2", n)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"maybe\n", false},
		{"\n", false},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader(tc.input), &out)
		got, err := p.confirm("Show?")
		if err != nil {
			t.Fatalf("confirm(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("confirm(%q) = %v, want %v", tc.input, got, tc.want)
		}
		if out.String() != "Show? (y/n): " {
			t.Errorf("prompt = %q", out.String())
		}
	}
}

func TestPrintHeader(t *testing.T) {
	var out bytes.Buffer
	printHeader(&out, "Title")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out.String())
	}
	rule := strings.Repeat("=", 60)
	if lines[0] != rule || lines[2] != rule {
		t.Errorf("rules = %q / %q", lines[0], lines[2])
	}
	if strings.TrimSpace(lines[1]) != "Title" || !strings.HasPrefix(lines[1], strings.Repeat(" ", 27)) {
		t.Errorf("title line = %q", lines[1])
	}
}
