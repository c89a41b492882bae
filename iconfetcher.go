package iconfetcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kataras/icon-fetcher/pkg/archive"
	"github.com/kataras/icon-fetcher/pkg/copier"
	"github.com/kataras/icon-fetcher/pkg/fetch"
	"github.com/kataras/icon-fetcher/pkg/formatter"
	"github.com/kataras/icon-fetcher/pkg/icon"
	"github.com/kataras/icon-fetcher/pkg/paths"

	"github.com/google/uuid"
)

// Version is the current release.
const Version = "0.2.0"

// Options configures a run.
type Options struct {
	Name       string // raw icon name, e.g. "directions car"
	Color      string // "black" (default) or "white", case-insensitive
	Size       int    // 18, 24 (default), 36 or 48
	ProjectDir string // required, must exist

	BaseURL string        // empty = fetch.DefaultBaseURL
	Timeout time.Duration // whole download; 0 = fetch.DefaultTimeout
	TempDir string        // parent of the per-run work directory; empty = os.TempDir()
	Layout  paths.Layout  // zero value = paths.DefaultLayout

	SkipAndroid bool
	SkipIOS     bool
	KeepTemp    bool // leave the archive and its extraction in TempDir
	Parallel    int  // concurrent copies per platform; 0 = copier.DefaultParallel

	Logger  Logger      // nil = no logging
	OnStage func(Stage) // called on every stage transition, nil = ignored
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result describes a run. Run returns a non-nil Result even on failure.
type Result struct {
	RunID       string
	Request     icon.Request
	Stage       Stage // StageDone or StageFailed
	FailedAt    Stage // the stage that failed, StageIdle on success
	ArchiveURL  string
	ArchivePath string
	WorkDir     string
	Copied      []paths.PathPair // files written to the project, also on failure
	Bytes       int64
	Warnings    []error
	Markdown    string // report of the copied files, set on success
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Request validates the user-facing fields of o.
func (o *Options) Request() (icon.Request, error) {
	color, err := icon.ParseColor(o.Color)
	if err != nil {
		return icon.Request{}, &UsageError{Err: err}
	}

	req, err := icon.NewRequest(o.Name, color, icon.Size(o.Size))
	if err != nil {
		return icon.Request{}, &UsageError{Err: err}
	}

	return req, nil
}

func (o *Options) validate() (icon.Request, error) {
	req, err := o.Request()
	if err != nil {
		return icon.Request{}, err
	}

	if strings.TrimSpace(o.ProjectDir) == "" {
		return icon.Request{}, &UsageError{Err: errors.New("project directory is required")}
	}
	info, err := os.Stat(o.ProjectDir)
	if err != nil {
		return icon.Request{}, &UsageError{Err: fmt.Errorf("project directory: %w", err)}
	}
	if !info.IsDir() {
		return icon.Request{}, &UsageError{Err: fmt.Errorf("project directory %q is not a directory", o.ProjectDir)}
	}

	if o.SkipAndroid && o.SkipIOS {
		return icon.Request{}, &UsageError{Err: errors.New("nothing to do: both android and ios are skipped")}
	}

	return req, nil
}

// Run downloads the icon archive, extracts it and copies every platform
// variant into the project. Errors are one of *UsageError, *DownloadError,
// *ExtractionError or *CopyError; cleanup failures end up in Result.Warnings.
func Run(ctx context.Context, opts Options) (*Result, error) {
	// Apply defaults.
	if opts.Layout == (paths.Layout{}) {
		opts.Layout = paths.DefaultLayout
	}
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}

	p := &pipeline{opts: &opts, result: &Result{RunID: newRunID()}}

	req, err := opts.validate()
	if err != nil {
		return p.fail(err)
	}
	p.result.Request = req

	return p.run(ctx)
}

type pipeline struct {
	opts   *Options
	result *Result
	stage  Stage
}

func (p *pipeline) transition(to Stage) {
	if !canTransition(p.stage, to) {
		panic(fmt.Sprintf("iconfetcher: illegal transition %s -> %s", p.stage, to))
	}
	p.stage = to
	p.result.Stage = to
	if p.opts.OnStage != nil {
		p.opts.OnStage(to)
	}
}

func (p *pipeline) fail(err error) (*Result, error) {
	p.result.FailedAt = p.stage
	p.transition(StageFailed)
	return p.result, err
}

func (p *pipeline) run(ctx context.Context) (*Result, error) {
	opts, res := p.opts, p.result
	req := res.Request

	res.WorkDir = filepath.Join(opts.TempDir, "icon-fetcher-"+res.RunID)
	if err := os.MkdirAll(res.WorkDir, 0755); err != nil {
		p.transition(StageDownloading)
		return p.fail(&DownloadError{Err: fmt.Errorf("failed to create work directory: %w", err)})
	}

	archiveName := req.ArchiveName()
	client := fetch.NewClient(opts.BaseURL, opts.Timeout)
	res.ArchiveURL = client.URL(archiveName + ".zip")
	res.ArchivePath = filepath.Join(res.WorkDir, archiveName+".zip")

	// Download.
	p.transition(StageDownloading)
	opts.logInfo("Downloading %q from %s", req.Name, res.ArchiveURL)
	n, err := client.Download(ctx, archiveName+".zip", res.ArchivePath)
	if err != nil {
		os.Remove(res.ArchivePath)
		os.Remove(res.WorkDir)
		if fetch.IsNotFound(err) {
			opts.logError("No archive for %s: check the icon name, color and size", req)
		}
		return p.fail(&DownloadError{URL: res.ArchiveURL, Err: err})
	}
	opts.logInfo("Download finished (%d bytes)", n)

	// Extract.
	p.transition(StageExtracting)
	extractDir := filepath.Join(res.WorkDir, archiveName)
	extracted, err := archive.Extract(res.ArchivePath, extractDir)
	if err != nil {
		opts.logWarn("Keeping downloaded archive at %s", res.ArchivePath)
		return p.fail(&ExtractionError{Archive: res.ArchivePath, Err: err})
	}
	opts.logInfo("Extraction finished (%d files)", len(extracted.Files))

	// Copy.
	if !opts.SkipAndroid {
		p.transition(StageCopyingAndroid)
		pairs := paths.ForAndroid(req, extracted.Root, opts.ProjectDir, opts.Layout)
		if err := p.copyPlatform(ctx, paths.Android, "Android", pairs); err != nil {
			return p.fail(err)
		}
	}

	if !opts.SkipIOS {
		p.transition(StageCopyingIOS)
		pairs := paths.ForIOS(req, extracted.Root, opts.ProjectDir, opts.Layout)
		if err := p.copyPlatform(ctx, paths.IOS, "iOS", pairs); err != nil {
			return p.fail(err)
		}
	}

	// Clean up.
	p.transition(StageCleaningUp)
	if opts.KeepTemp {
		opts.logInfo("Keeping temporary files in %s", res.WorkDir)
	} else {
		p.cleanup(res.ArchivePath, extractDir, res.WorkDir)
	}

	res.Markdown = formatter.ToMarkdown(req, res.ArchiveURL, opts.ProjectDir, res.Copied)
	p.transition(StageDone)
	return res, nil
}

func (p *pipeline) copyPlatform(ctx context.Context, platform paths.Platform, title string, pairs []paths.PathPair) error {
	opts := p.opts
	opts.logInfo("Processing icons for %s", title)

	var (
		mu     sync.Mutex
		copied = make(map[string]bool, len(pairs))
	)
	n, err := copier.CopyAll(ctx, pairs, opts.Parallel, func(pair paths.PathPair) {
		mu.Lock()
		defer mu.Unlock()
		copied[pair.Destination] = true
		opts.logInfo("Created %s", pair.Destination)
	})
	p.result.Bytes += n

	// Files written before a failure stay in the project, so they are reported too.
	for _, pair := range pairs {
		if copied[pair.Destination] {
			p.result.Copied = append(p.result.Copied, pair)
		}
	}

	if err != nil {
		if errors.Is(err, copier.ErrSourceMissing) {
			opts.logError("The archive has no %s file for %s", title, p.result.Request)
		}
		opts.logWarn("Keeping temporary files in %s", p.result.WorkDir)
		return &CopyError{Platform: platform, Err: err}
	}

	opts.logInfo("Processing icons for %s finished", title)
	return nil
}

// cleanup removes the temporary artifacts. Failures are recorded as
// warnings and never fail the run.
func (p *pipeline) cleanup(archivePath, extractDir, workDir string) {
	warn := func(path string, err error) {
		w := &CleanupWarning{Path: path, Err: err}
		p.result.Warnings = append(p.result.Warnings, w)
		p.opts.logWarn("%v", w)
	}

	if err := os.Remove(archivePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		warn(archivePath, err)
	}
	if err := os.RemoveAll(extractDir); err != nil {
		warn(extractDir, err)
	}
	if err := os.Remove(workDir); err != nil && !errors.Is(err, os.ErrNotExist) {
		warn(workDir, err)
	}
}

// newRunID returns a time-ordered id for the run's work directory.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
