package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"go.uber.org/zap"

	"github.com/viant/dequery/codemod"
	"github.com/viant/dequery/config"
)

const defaultTimeout = 5 * time.Minute

var (
	dryRun      bool
	baseline    int
	workers     int
	reportURL   string
	metricsFile string
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Rewrite jQuery calls that are safe to replace with native code",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		defer func() { _ = logger.Sync() }()

		fs := afs.New()
		cfg, err := loadConfig(ctx, fs, location(args[0]))
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if cmd.Flags().Changed("baseline") {
			cfg.Baseline = baseline
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
		}

		var metrics *codemod.Metrics
		if metricsFile != "" {
			metrics = codemod.NewMetrics()
		}
		transformer, err := codemod.New(cfg,
			codemod.WithFS(fs),
			codemod.WithLogger(logger),
			codemod.WithMetrics(metrics),
			codemod.WithDryRun(dryRun))
		if err != nil {
			logger.Fatal("Failed to initialize transformer", zap.Error(err))
		}

		failed := runFix(ctx, fs, transformer, args)
		if metrics != nil {
			if err = metrics.WriteToTextfile(metricsFile); err != nil {
				logger.Error("Failed to write metrics", zap.String("file", metricsFile), zap.Error(err))
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print diffs without writing files")
	fixCmd.Flags().IntVar(&baseline, "baseline", 0, "Newest native feature year rewrites may use")
	fixCmd.Flags().IntVar(&workers, "workers", 0, "Number of files transformed in parallel")
	fixCmd.Flags().StringVar(&reportURL, "report", "", "Write YAML report to the given location (- for stdout)")
	fixCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics in text format to the given file")
}

// runFix transforms every path and returns true when any path or file failed
func runFix(ctx context.Context, fs afs.Service, transformer *codemod.Transformer, paths []string) bool {
	failed := false
	for _, path := range paths {
		root := location(path)
		report, err := transformer.TransformDir(ctx, root)
		if err != nil {
			logger.Error("error processing path", zap.String("path", path), zap.Error(err))
			failed = true
			continue
		}
		if len(report.Failures) > 0 {
			failed = true
		}
		if dryRun {
			for _, result := range report.Results {
				if result.Diff != "" {
					fmt.Print(result.Diff)
				}
			}
		}
		if err = writeReport(ctx, fs, report); err != nil {
			logger.Error("error writing report", zap.String("path", path), zap.Error(err))
			failed = true
		}
	}
	return failed
}

func writeReport(ctx context.Context, fs afs.Service, report *codemod.Report) error {
	if reportURL == "" {
		return nil
	}
	data, err := report.Encode()
	if err != nil {
		return err
	}
	if reportURL == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return fs.Upload(ctx, location(reportURL), file.DefaultFileOsMode, strings.NewReader(string(data)))
}

func loadConfig(ctx context.Context, fs afs.Service, start string) (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(ctx, fs, location(cfgFile))
	}
	object, err := fs.Object(ctx, start)
	if err == nil && !object.IsDir() {
		start = filepath.Dir(start)
	}
	cfg, found, err := config.Discover(ctx, fs, start)
	if err != nil {
		return nil, err
	}
	if found != "" {
		logger.Debug("using configuration", zap.String("url", found))
	}
	return cfg, nil
}

// location turns a local path into an absolute one, leaving URLs intact
func location(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
