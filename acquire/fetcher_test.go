package acquire

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/scribekit/process"
)

type recordingExec struct {
	cmds   []process.Command
	result *process.Result
	err    error
}

func (r *recordingExec) Run(_ context.Context, cmd process.Command) (*process.Result, error) {
	r.cmds = append(r.cmds, cmd)
	return r.result, r.err
}

func TestYTDLPTitle(t *testing.T) {
	exec := &recordingExec{result: &process.Result{Stdout: []byte(`{"id":"x","title":"My Talk","duration":61}`)}}
	y := NewYTDLP("", exec)

	title, err := y.Title(context.Background(), "https://youtu.be/x")
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "My Talk" {
		t.Errorf("title = %q", title)
	}
	cmd := exec.cmds[0]
	if cmd.Binary != "yt-dlp" {
		t.Errorf("binary = %q", cmd.Binary)
	}
	if got := cmd.String(); !strings.Contains(got, "--dump-single-json --skip-download") {
		t.Errorf("command = %q", got)
	}
}

func TestYTDLPTitleBadJSON(t *testing.T) {
	y := NewYTDLP("", &recordingExec{result: &process.Result{Stdout: []byte("not json")}})
	if _, err := y.Title(context.Background(), "u"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestYTDLPFetchAudioArgs(t *testing.T) {
	exec := &recordingExec{result: &process.Result{Stderr: []byte("WARNING: nsig extraction failed\n")}}
	y := NewYTDLP("/usr/bin/yt-dlp", exec)

	if err := y.FetchAudio(context.Background(), "https://youtu.be/x", "/data/Talk"); err != nil {
		t.Fatalf("FetchAudio: %v", err)
	}
	cmd := exec.cmds[0].String()
	for _, want := range []string{
		"-f bestaudio/best",
		"-x",
		"--audio-format wav",
		"--audio-quality 192K",
		"-o " + filepath.Join("/data/Talk", "%(title)s.%(ext)s"),
		"https://youtu.be/x",
	} {
		if !strings.Contains(cmd, want) {
			t.Errorf("command %q missing %q", cmd, want)
		}
	}
}

func TestYTDLPFailureCarriesStderr(t *testing.T) {
	exec := &recordingExec{
		result: &process.Result{ExitCode: 1, Stderr: []byte("ERROR: [youtube] x: Private video")},
		err:    errors.New("process: yt-dlp exit code 1"),
	}
	err := NewYTDLP("", exec).FetchAudio(context.Background(), "u", t.TempDir())

	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("error = %T %v, want *ToolError", err, err)
	}
	if te.Stderr != "ERROR: [youtube] x: Private video" {
		t.Errorf("stderr = %q", te.Stderr)
	}
	if !strings.Contains(err.Error(), "Private video") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestYTDLPBinaryNotFound(t *testing.T) {
	exec := &recordingExec{result: &process.Result{ExitCode: -1}, err: process.ErrBinaryNotFound}
	err := NewYTDLP("", exec).FetchAudio(context.Background(), "u", t.TempDir())
	if !errors.Is(err, process.ErrBinaryNotFound) {
		t.Fatalf("error = %v", err)
	}
}
