// Command scribe transcribes an audio file or a YouTube video with a local
// whisper model or the AssemblyAI API, saving the transcript (and summary)
// under <base>/<project>/.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/kbukum/scribekit/acquire"
	"github.com/kbukum/scribekit/errors"
	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/observability"
	"github.com/kbukum/scribekit/orchestrator"
	"github.com/kbukum/scribekit/storage"
	"github.com/kbukum/scribekit/storage/local"
	_ "github.com/kbukum/scribekit/storage/s3"
	"github.com/kbukum/scribekit/store"
	"github.com/kbukum/scribekit/transcription"
	"github.com/kbukum/scribekit/transcription/assemblyai"
	"github.com/kbukum/scribekit/transcription/whisper"
	"github.com/kbukum/scribekit/version"
	"github.com/mattn/go-isatty"
)

type options struct {
	engine     string
	language   string
	file       string
	url        string
	title      string
	apiKey     string
	configPath string
	export     bool
	print      bool
	noPrompt   bool
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.engine, "engine", "", "Transcription engine: whisper|assemblyai")
	fs.StringVar(&o.language, "language", "", "Language: auto|en|en_us|it|es|fr|de")
	fs.StringVar(&o.file, "file", "", "Audio file to transcribe")
	fs.StringVar(&o.url, "url", "", "YouTube link to transcribe")
	fs.StringVar(&o.title, "title", "", "Project title for an uploaded file")
	fs.StringVar(&o.apiKey, "api-key", "", "AssemblyAI API key (or ASSEMBLYAI_API_KEY)")
	fs.StringVar(&o.configPath, "config", "", "Config file path")
	fs.BoolVar(&o.export, "export", false, "Copy results to the configured export destination")
	fs.BoolVar(&o.print, "print", false, "Print the transcript and summary to stdout")
	fs.BoolVar(&o.noPrompt, "no-prompt", false, "Fail instead of asking for missing options")
	fs.BoolVar(&o.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.InvalidInput("arguments", "unexpected argument "+fs.Arg(0))
	}
	return &o, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return errors.ExitOK
		}
		fail(stderr, err)
		return errors.ExitInput
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s %s\n", serviceName, version.Get())
		return errors.ExitOK
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fail(stderr, err)
		return errors.ExitCode(err)
	}
	logger.Init(cfg.Logging, cfg.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := observability.Setup(ctx, cfg.Tracing)
	if err != nil {
		logger.Warn("tracing disabled", logger.Fields(logger.FieldError, err.Error()))
	} else {
		defer shutdown(context.Background()) //nolint:errcheck // best effort flush
	}

	if err := execute(ctx, cfg, opts, newPrompter(stdin, stdout), stdout); err != nil {
		fail(stderr, err)
		return errors.ExitCode(err)
	}
	return errors.ExitOK
}

func execute(ctx context.Context, cfg *AppConfig, opts *options, p *prompter, stdout io.Writer) error {
	printHeader(stdout, "Transcription Tool")
	req, err := resolveRequest(cfg, opts, p, stdout)
	if err != nil {
		return err
	}

	results, err := local.NewStorage(cfg.Storage.BasePath)
	if err != nil {
		return errors.StorageFailed(cfg.Storage.BasePath, err)
	}

	remote := cfg.AssemblyAI
	remote.APIKey = req.Credential
	backends := transcription.NewRegistry()
	backends.RegisterFactory(transcription.EngineWhisper, whisper.Factory(cfg.Whisper))
	backends.RegisterFactory(transcription.EngineAssemblyAI, assemblyai.Factory(remote))

	orch := orchestrator.New(
		acquire.New(results.BasePath(), acquire.NewYTDLP(cfg.YTDLP.Binary, nil)),
		backends,
		store.New(results),
	)
	defer orch.Close(context.Background()) //nolint:errcheck // process is exiting

	printHeader(stdout, "Transcription in Progress")
	fmt.Fprintln(stdout, "Please wait while your audio is being transcribed...")
	if req.Engine == transcription.EngineWhisper {
		fmt.Fprintf(stdout, "Compute device: %s\n", whisper.DetectDevice())
	}

	out, err := orch.Run(ctx, req)
	if err != nil {
		return err
	}

	printHeader(stdout, "Transcription Completed")
	fmt.Fprintln(stdout, "Transcription completed successfully!")
	fmt.Fprintf(stdout, "Transcription saved at: %s\n", out.Paths.Transcript)
	if out.Paths.Summary != "" {
		fmt.Fprintf(stdout, "Summary generated and saved at: %s\n", out.Paths.Summary)
	}

	if err := display(out, opts, p, stdout); err != nil {
		return err
	}
	return exportResults(ctx, cfg, opts, p, store.New(results), out.Project, stdout)
}

// resolveRequest fills the run request from flags, config and, unless
// disabled, interactive prompts.
func resolveRequest(cfg *AppConfig, opts *options, p *prompter, stdout io.Writer) (orchestrator.Request, error) {
	var req orchestrator.Request
	var err error

	if req.Engine, err = resolveEngine(firstNonEmpty(opts.engine, cfg.Engine), opts.noPrompt, p); err != nil {
		return req, err
	}
	if transcription.RequiresCredential(req.Engine) {
		req.Credential = firstNonEmpty(opts.apiKey, cfg.AssemblyAI.APIKey)
		if req.Credential == "" && !opts.noPrompt {
			if req.Credential, err = p.askRequired("Enter your AssemblyAI API key: "); err != nil {
				return req, inputErr(err)
			}
		}
	}

	printHeader(stdout, "Language Selection")
	if req.Language, err = resolveLanguage(firstNonEmpty(opts.language, cfg.Language), opts.noPrompt, p); err != nil {
		return req, err
	}

	printHeader(stdout, "Audio Input Selection")
	if req.Source, err = resolveSource(opts, p); err != nil {
		return req, err
	}
	return req, nil
}

func resolveEngine(preset string, noPrompt bool, p *prompter) (string, error) {
	if preset != "" {
		return transcription.ParseEngine(preset)
	}
	if noPrompt {
		return "", errors.MissingField("engine")
	}
	i, err := p.choose("Please select the transcription engine:", []string{"Whisper AI", "AssemblyAI"}, "Enter 1 or 2: ")
	if err != nil {
		return "", inputErr(err)
	}
	return transcription.Engines()[i], nil
}

var languageMenu = []struct {
	label string
	code  transcription.Language
}{
	{"Auto-detect", transcription.LanguageAuto},
	{"English", transcription.LanguageEnglish},
	{"Italian", transcription.LanguageItalian},
	{"Spanish", transcription.LanguageSpanish},
	{"French", transcription.LanguageFrench},
	{"German", transcription.LanguageGerman},
}

func resolveLanguage(preset string, noPrompt bool, p *prompter) (string, error) {
	if preset != "" || noPrompt {
		lang, err := transcription.ParseLanguage(preset)
		return string(lang), err
	}
	labels := make([]string, len(languageMenu))
	for i, l := range languageMenu {
		labels[i] = l.label
	}
	i, err := p.choose("Please select the language:", labels, "Enter the number corresponding to the language: ")
	if err != nil {
		return "", inputErr(err)
	}
	return string(languageMenu[i].code), nil
}

func resolveSource(opts *options, p *prompter) (acquire.Source, error) {
	switch {
	case opts.file != "" && opts.url != "":
		return acquire.Source{}, errors.InvalidInput("input", "use either --file or --url, not both")
	case opts.file != "":
		return uploadSource(opts.file, opts.title, opts.noPrompt, p)
	case opts.url != "":
		return acquire.Source{Kind: acquire.KindVideo, URL: opts.url}, nil
	case opts.noPrompt:
		return acquire.Source{}, errors.MissingField("file or url")
	}

	i, err := p.choose("Please select the input:", []string{"Upload audio file", "Enter YouTube link"}, "Enter 1 or 2: ")
	if err != nil {
		return acquire.Source{}, inputErr(err)
	}
	if i == 0 {
		file, err := p.askRequired("Enter the path of the audio file: ")
		if err != nil {
			return acquire.Source{}, inputErr(err)
		}
		return uploadSource(file, opts.title, false, p)
	}
	link, err := p.askRequired("Enter the YouTube link: ")
	if err != nil {
		return acquire.Source{}, inputErr(err)
	}
	return acquire.Source{Kind: acquire.KindVideo, URL: link}, nil
}

func uploadSource(file, title string, noPrompt bool, p *prompter) (acquire.Source, error) {
	if title == "" {
		if noPrompt {
			title = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		} else {
			var err error
			if title, err = p.askRequired("Enter the title for the uploaded file: "); err != nil {
				return acquire.Source{}, inputErr(err)
			}
		}
	}
	return acquire.Source{Kind: acquire.KindUpload, Files: []string{file}, Title: title}, nil
}

func display(out *orchestrator.Outcome, opts *options, p *prompter, stdout io.Writer) error {
	showTranscript, showSummary := opts.print, opts.print && out.Result.HasSummary()
	if !opts.noPrompt && !opts.print {
		var err error
		if showTranscript, err = p.confirm("\nWould you like to display the transcription?"); err != nil {
			return inputErr(err)
		}
		if out.Result.HasSummary() {
			if showSummary, err = p.confirm("\nWould you like to display the summary?"); err != nil {
				return inputErr(err)
			}
		}
	}
	if showTranscript {
		printSection(stdout, "Transcription:", out.Result.Transcript)
	}
	if showSummary {
		printSection(stdout, "Summary:", out.Result.Summary)
	}
	return nil
}

func exportResults(ctx context.Context, cfg *AppConfig, opts *options, p *prompter, results *store.Store, project string, stdout io.Writer) error {
	if !cfg.ExportEnabled() {
		if opts.export {
			return errors.MissingField("export.provider")
		}
		return nil
	}
	doExport := opts.export
	if !doExport && !opts.noPrompt {
		var err error
		if doExport, err = p.confirm(fmt.Sprintf("\nWould you like to export the results to %s?", cfg.Export.Provider)); err != nil {
			return inputErr(err)
		}
	}
	if !doExport {
		return nil
	}

	dst, err := storage.New(ctx, cfg.Export, logger.Get("export"))
	if err != nil {
		return errors.StorageFailed(cfg.Export.Provider, err)
	}
	locations, err := results.Export(ctx, project, dst)
	if err != nil {
		return err
	}
	for _, loc := range locations {
		fmt.Fprintf(stdout, "Exported: %s\n", loc)
	}
	return nil
}

func printSection(w io.Writer, title, body string) {
	rule := strings.Repeat("-", 60)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n%s\n\n%s\n", rule, title, rule, body, rule)
}

func fail(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorTag(w), err)
}

// errorTag is red only when w is a terminal.
func errorTag(w io.Writer) string {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return "\033[31m[error]\033[0m"
	}
	return "[error]"
}

func inputErr(err error) error {
	if stderrors.Is(err, errNoInput) {
		return errors.InvalidInput("input", "input ended before a choice was made")
	}
	return errors.Internal(err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
