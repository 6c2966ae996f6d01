package whisper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbukum/scribekit/process"
	"github.com/kbukum/scribekit/transcription"
)

// CLILoader runs the openai-whisper command line tool through a process
// executor. Each call loads the weights inside the child process, so Load
// only records the options.
type CLILoader struct {
	binary   string
	modelDir string
	exec     process.Executor
}

// NewCLILoader creates a CLI loader. A nil executor runs on the host.
func NewCLILoader(cfg Config, exec process.Executor) *CLILoader {
	if exec == nil {
		exec = process.Local
	}
	return &CLILoader{binary: cfg.Binary, modelDir: cfg.ModelDir, exec: exec}
}

// Load returns a model bound to opts.
func (l *CLILoader) Load(_ context.Context, opts LoadOptions) (Model, error) {
	return &cliModel{loader: l, opts: opts}, nil
}

type cliModel struct {
	loader *CLILoader
	opts   LoadOptions
}

// args builds the whisper command line writing a .txt transcript to outDir.
func (m *cliModel) args(audioPath, outDir string, lang transcription.Language) []string {
	args := []string{
		audioPath,
		"--model", m.opts.Size,
		"--device", string(m.opts.Device),
		"--output_format", "txt",
		"--output_dir", outDir,
		"--verbose", "False",
	}
	if m.opts.Device == DeviceCPU {
		args = append(args, "--fp16", "False")
	}
	if code := modelLanguage(lang); code != "" {
		args = append(args, "--language", code)
	}
	if m.loader.modelDir != "" {
		args = append(args, "--model_dir", m.loader.modelDir)
	}
	return args
}

func (m *cliModel) Transcribe(ctx context.Context, audioPath string, lang transcription.Language) (string, error) {
	outDir, err := os.MkdirTemp("", "scribe-whisper-")
	if err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	res, err := m.loader.exec.Run(ctx, process.Command{
		Binary: m.loader.binary,
		Args:   m.args(audioPath, outDir, lang),
	})
	if err != nil {
		if tail := res.StderrTail(); tail != "" {
			return "", fmt.Errorf("%w: %s", err, tail)
		}
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	data, err := os.ReadFile(filepath.Join(outDir, base+".txt"))
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
