package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	iconfetcher "github.com/kataras/icon-fetcher"
	"github.com/kataras/icon-fetcher/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = iconfetcher.Version

var errReport = errors.New("write report")

var (
	projectDir  string
	iconColor   string
	iconSize    int
	baseURL     string
	timeout     time.Duration
	tempDir     string
	androidDir  string
	iosDir      string
	androidOnly bool
	iosOnly     bool
	keepTemp    bool
	parallel    int
	reportFile  string
)

func main() {
	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		color.New(color.FgRed).Fprintf(color.Error, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "icon-fetcher <icon name>",
		Short: "Download a Material icon into a mobile project",
		Long: "Downloads a Material icon archive, extracts it and copies the Android density and iOS scale " +
			"variants into the project's resource directories using canonical file names.",
		Example: `  icon-fetcher home -d ./MyApp
  icon-fetcher directions car -d ./MyApp -c white -s 36`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&projectDir, "dir", "d", "", "Project root directory (required)")
	rootCmd.Flags().StringVarP(&iconColor, "color", "c", "black", "Icon color: black or white")
	rootCmd.Flags().IntVarP(&iconSize, "size", "s", 24, "Icon size: 18, 24, 36 or 48")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "Archive host base URL (overrides $"+config.EnvBaseURL+")")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "Download timeout (overrides $"+config.EnvTimeout+")")
	rootCmd.Flags().StringVar(&tempDir, "temp-dir", "", "Parent directory for temporary files (overrides $"+config.EnvTempDir+")")
	rootCmd.Flags().StringVar(&androidDir, "android-dir", "", "Android resource root, relative to --dir")
	rootCmd.Flags().StringVar(&iosDir, "ios-dir", "", "iOS resource root, relative to --dir")
	rootCmd.Flags().BoolVar(&androidOnly, "android-only", false, "Only copy the Android variants")
	rootCmd.Flags().BoolVar(&iosOnly, "ios-only", false, "Only copy the iOS variants")
	rootCmd.Flags().BoolVar(&keepTemp, "keep-temp", false, "Keep the downloaded archive and its extraction")
	rootCmd.Flags().IntVar(&parallel, "parallel", 0, "Concurrent file copies per platform")
	rootCmd.Flags().StringVarP(&reportFile, "report", "o", "", "Write a markdown report of the created files")

	rootCmd.MarkFlagRequired("dir")
	rootCmd.MarkFlagsMutuallyExclusive("android-only", "ios-only")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("icon-fetcher version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	opts := iconfetcher.Options{
		Name:        strings.Join(args, " "),
		Color:       iconColor,
		Size:        iconSize,
		ProjectDir:  projectDir,
		SkipAndroid: iosOnly,
		SkipIOS:     androidOnly,
		Logger:      &cliLogger{},
	}

	// Reject bad input before touching the disk or the network.
	if _, err := opts.Request(); err != nil {
		return err
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		return &iconfetcher.UsageError{Err: err}
	}
	applyFlags(cmd, &cfg)

	opts.BaseURL = cfg.BaseURL
	opts.Timeout = cfg.Timeout
	opts.TempDir = cfg.TempDir
	opts.Layout = cfg.Layout
	opts.KeepTemp = cfg.KeepTemp
	opts.Parallel = cfg.Parallel

	cyan.Println("\n🎨 Material Icon Fetcher")
	cyan.Println("========================")
	if cfg.ProjectFile != "" {
		cyan.Printf("Using layout from %s\n", cfg.ProjectFile)
	}
	cyan.Println()

	result, err := iconfetcher.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if reportFile != "" {
		green.Printf("\n💾 Writing report to %s... ", reportFile)
		if err := os.WriteFile(reportFile, []byte(result.Markdown), 0644); err != nil {
			color.New(color.FgRed).Printf("✗\n")
			return fmt.Errorf("%w: %v", errReport, err)
		}
		green.Println("✓")
	}

	green.Printf("\n✨ Created %d file(s) for %s\n", len(result.Copied), result.Request)
	fmt.Println("Don't forget to include the new files in the project.")
	fmt.Println()
	return nil
}

// applyFlags lets explicitly set flags win over environment and project file values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Changed("temp-dir") {
		cfg.TempDir = tempDir
	}
	if flags.Changed("android-dir") {
		cfg.Layout.AndroidDir = androidDir
	}
	if flags.Changed("ios-dir") {
		cfg.Layout.IOSDir = iosDir
	}
	if flags.Changed("keep-temp") {
		cfg.KeepTemp = keepTemp
	}
	if flags.Changed("parallel") {
		cfg.Parallel = parallel
	}
}

// exitCode returns 1 for pipeline failures and 2 for everything that is
// a usage problem, including flag errors reported by cobra.
func exitCode(err error) int {
	var (
		downloadErr   *iconfetcher.DownloadError
		extractionErr *iconfetcher.ExtractionError
		copyErr       *iconfetcher.CopyError
	)
	if errors.As(err, &downloadErr) || errors.As(err, &extractionErr) || errors.As(err, &copyErr) || errors.Is(err, errReport) {
		return iconfetcher.ExitFailure
	}
	return iconfetcher.ExitUsage
}

// cliLogger implements iconfetcher.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(color.Error, "✗ "+format+"\n", args...)
}
