package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LoganBrinsmead/DRSB/config"
	apperrors "github.com/LoganBrinsmead/DRSB/errors"
	"github.com/LoganBrinsmead/DRSB/json"
	"github.com/LoganBrinsmead/DRSB/logging"
	"github.com/LoganBrinsmead/DRSB/media/processor"
	"github.com/LoganBrinsmead/DRSB/media/storage"
)

type options struct {
	output     string
	original   bool
	small      bool
	smallest   bool
	sizing     string
	quality    int
	jsonOutput bool
	configFile string
	verbose    bool
}

// NewRootCommand builds the drsb command.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "drsb <input_image>",
		Short: "Flip an image upside down, optionally resize it, and add crosshairs",
		Long: `drsb flips an image vertically and horizontally (a 180 degree rotation),
optionally resizes it to a preset or custom size, draws a centered crosshair,
and saves the result.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output image path (default: derived from input: name_DRSB.ext)")
	flags.BoolVar(&opts.original, "original", false, "keep original image size (default: resize to 576x720)")
	flags.BoolVar(&opts.small, "small", false, "resize to 576x720 pixels (default behavior)")
	flags.BoolVar(&opts.smallest, "smallest", false, "resize to 300x420 pixels")
	flags.StringVar(&opts.sizing, "sizing", "", "custom size as WxH (e.g., 800x600) or W,H")
	flags.IntVar(&opts.quality, "quality", 0, "encode quality 1-100 (default: from config, 95)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "print the result as JSON")
	flags.StringVar(&opts.configFile, "config", "", "config file path")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute runs the command and returns the process exit code. Every failure
// is reported as a single line on standard output.
func Execute() int {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), apperrors.Format(err))
		return apperrors.ExitCode(err)
	}
	return 0
}

func run(cmd *cobra.Command, opts *options, inputPath string) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}
	initLogging(settings, opts.verbose)
	log := logging.Global().Named("cli")

	ctx := cmd.Context()
	store := storage.NewLocalProvider()

	exists, err := store.Exists(ctx, inputPath)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewInputNotFound(inputPath)
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = DeriveOutputPath(inputPath, settings.OutputSuffix)
	}

	directive, err := resolveDirective(opts, settings.Presets)
	if err != nil {
		return err
	}

	quality := settings.Quality
	if cmd.Flags().Changed("quality") {
		quality = opts.quality
	}
	if quality < 1 || quality > 100 {
		return apperrors.New(apperrors.ErrorTypeConfig, fmt.Sprintf("--quality must be between 1 and 100, got %d", quality))
	}

	log.Debugf("processing %s -> %s (%s, quality %d)", inputPath, outputPath, directive, quality)

	pipeline := processor.NewPipeline(store, quality)
	result, err := pipeline.Run(ctx, inputPath, outputPath, directive)
	if err != nil {
		return err
	}

	return report(cmd, opts, result)
}

// resolveDirective applies the size flag precedence:
// sizing > original > smallest > small default.
func resolveDirective(opts *options, presets config.Presets) (processor.SizeDirective, error) {
	switch {
	case opts.sizing != "":
		return ParseSizing(opts.sizing)
	case opts.original:
		return processor.Original(), nil
	case opts.smallest:
		return processor.Preset(presets.Smallest.Width, presets.Smallest.Height), nil
	default:
		return processor.Preset(presets.Small.Width, presets.Small.Height), nil
	}
}

// loadSettings reads configuration, honoring an explicit --config path.
func loadSettings(opts *options) (*config.Settings, error) {
	configOpts := config.DefaultOptions()
	if opts.configFile != "" {
		configOpts.File = opts.configFile
	}
	return config.Load(configOpts)
}

// initLogging installs the global logger from settings.
func initLogging(settings *config.Settings, verbose bool) {
	cfg := settings.Logging
	if verbose {
		cfg.Level = "debug"
	}
	logging.Init(cfg)
}

// report prints the success line, or the result as JSON with --json.
func report(cmd *cobra.Command, opts *options, result processor.Result) error {
	if opts.jsonOutput {
		line, err := json.MarshalToString(result)
		if err != nil {
			return apperrors.Wrap(err, "cannot encode result")
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "[+] Saved: %s (%dx%dpx)\n", result.Path, result.Width, result.Height)
	return nil
}

// Main is the entry point used by cmd/drsb.
func Main() {
	os.Exit(Execute())
}
