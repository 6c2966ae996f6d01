package acquire

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/kbukum/scribekit/errors"
	"github.com/kbukum/scribekit/logger"
	"github.com/kbukum/scribekit/observability"
)

// Kind is the kind of audio source.
type Kind string

const (
	KindUpload Kind = "upload"
	KindVideo  Kind = "video"
)

// AudioExt is the extension a video download is expected to produce.
const AudioExt = ".wav"

// Source describes where the audio comes from.
type Source struct {
	Kind Kind
	// Files are uploaded files already transferred to the working area.
	Files []string
	// Title names the project for uploads.
	Title string
	// URL is the video link.
	URL string
}

// Asset is one acquired audio file inside its project directory.
type Asset struct {
	Path    string
	Project string
	Dir     string
}

// Acquirer turns a Source into an Asset under a base directory.
type Acquirer struct {
	baseDir string
	fetcher MediaFetcher
	log     *logger.Logger
}

// New creates an Acquirer storing projects under baseDir. The fetcher is
// only needed for video sources.
func New(baseDir string, fetcher MediaFetcher) *Acquirer {
	return &Acquirer{baseDir: baseDir, fetcher: fetcher, log: logger.Get("acquire")}
}

// Acquire obtains exactly one audio file for src. There is no retry.
func (a *Acquirer) Acquire(ctx context.Context, src Source) (asset *Asset, err error) {
	ctx, span := observability.StartPhase(ctx, observability.SpanAcquire,
		observability.AttrSource, string(src.Kind))
	defer func() { observability.EndSpan(span, err) }()

	switch src.Kind {
	case KindUpload:
		asset, err = a.acquireUpload(src)
	case KindVideo:
		asset, err = a.acquireVideo(ctx, src)
	default:
		return nil, errors.InvalidInput("source", fmt.Sprintf("unknown source kind %q", src.Kind))
	}
	if err != nil {
		a.log.Error("acquisition failed", logger.ErrorFields("acquire", err))
		return nil, err
	}
	span.SetAttributes(observability.String(observability.AttrProject, asset.Project))
	a.log.Info("audio ready", logger.Fields(logger.FieldProject, asset.Project, logger.FieldPath, asset.Path))
	return asset, nil
}

func (a *Acquirer) acquireUpload(src Source) (*Asset, error) {
	if len(src.Files) == 0 {
		return nil, errors.NoFileProvided()
	}
	project, err := ProjectName(src.Title)
	if err != nil {
		return nil, err
	}
	dir, err := a.projectDir(project)
	if err != nil {
		return nil, err
	}

	dst := filepath.Join(dir, filepath.Base(src.Files[0]))
	if err := moveFile(src.Files[0], dst); err != nil {
		return nil, errors.AcquisitionFailed("move upload", err).WithDetail(logger.FieldPath, src.Files[0])
	}
	return &Asset{Path: dst, Project: project, Dir: dir}, nil
}

func (a *Acquirer) acquireVideo(ctx context.Context, src Source) (*Asset, error) {
	if strings.TrimSpace(src.URL) == "" {
		return nil, errors.MissingField("url")
	}
	if a.fetcher == nil {
		return nil, errors.Internal(stderrors.New("no media fetcher configured"))
	}

	a.log.Info("fetching video information", logger.Fields("url", src.URL))
	title, err := a.fetcher.Title(ctx, src.URL)
	if err != nil {
		return nil, toolFailure("fetch video information", err)
	}
	a.log.Info("video title: " + title)

	project, err := ProjectName(title)
	if err != nil {
		return nil, err
	}
	dir, err := a.projectDir(project)
	if err != nil {
		return nil, err
	}

	a.log.Info("downloading audio", logger.Fields(logger.FieldProject, project))
	if err := a.fetcher.FetchAudio(ctx, src.URL, dir); err != nil {
		return nil, toolFailure("download audio", err)
	}

	path, err := findAudio(dir, AudioExt)
	if err != nil {
		return nil, err
	}
	return &Asset{Path: path, Project: project, Dir: dir}, nil
}

// projectDir creates the project directory if absent.
func (a *Acquirer) projectDir(project string) (string, error) {
	dir := filepath.Join(a.baseDir, project)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", errors.AcquisitionFailed("create project directory", err).WithDetail(logger.FieldPath, dir)
	}
	return dir, nil
}

// findAudio returns the first file in dir with extension ext, by name.
func findAudio(dir, ext string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.AcquisitionFailed("scan project directory", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ext) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", errors.AudioNotFound(dir, ext)
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0]), nil
}

func toolFailure(step string, err error) *errors.AppError {
	appErr := errors.AcquisitionFailed(step, err)
	var te *ToolError
	if stderrors.As(err, &te) && te.Stderr != "" {
		appErr.WithPayload([]byte(te.Stderr))
	}
	return appErr
}

// moveFile renames src to dst, copying across filesystems.
func moveFile(src, dst string) error {
	if same, err := samePath(src, dst); err == nil && same {
		return nil
	}
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !stderrors.As(err, &linkErr) || !stderrors.Is(linkErr.Err, syscall.EXDEV) {
		return err
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck // copy error takes precedence
		return err
	}
	return out.Close()
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
