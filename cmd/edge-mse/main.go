package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/ironsheep/edge-mse/internal/config"
	"github.com/ironsheep/edge-mse/internal/imaging"
	"github.com/ironsheep/edge-mse/internal/logger"
	"github.com/ironsheep/edge-mse/internal/pipeline"
	"github.com/ironsheep/edge-mse/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Printf("edge-mse %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage(os.Stdout)
			return
		}
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "edge-mse: %v\n", err)
		os.Exit(2)
	}

	// Logs go to stderr; stdout carries the report or the MCP stream.
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if len(args) > 0 && args[0] == "serve" {
		server.Version = Version
		srv := server.New(server.Options{
			OutputDir:  cfg.OutputDir,
			AutoOrient: cfg.AutoOrient,
			Logger:     log,
		})
		log.Debug().Str("version", Version).Str("commit", GitCommit).Msg("edge-mse server starting")
		if err := srv.Run(os.Stdin, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, args, os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

// run processes either the given paths or the configured selection list and
// writes the report to out.
func run(ctx context.Context, cfg *config.Config, paths []string, out io.Writer, log zerolog.Logger) error {
	if len(paths) == 0 {
		paths = cfg.InputPaths()
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input images configured")
	}

	sink := imaging.FileSink{}
	if err := sink.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	cache := imaging.NewImageCache(cfg.AutoOrient)
	p := pipeline.New(cache, sink, pipeline.Options{OutputDir: cfg.OutputDir, Logger: log})

	log.Info().Int("images", len(paths)).Str("output_dir", cfg.OutputDir).Msg("processing images")
	rep, err := pipeline.NewBatch(p, log).Run(ctx, paths)
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	if cfg.Report == "json" {
		return rep.WriteJSON(out)
	}
	return rep.WriteTable(out)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "edge-mse - edge detection with per-operator MSE scoring")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: edge-mse [options] [image ...]")
	fmt.Fprintln(w, "       edge-mse serve")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Runs the Roberts, Prewitt, Sobel and Frei-Chen operators on each image,")
	fmt.Fprintln(w, "writes {name}_{method}.png to the output directory and prints the MSE")
	fmt.Fprintln(w, "of every edge image against its grayscale source.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve            Serve the edge tools over MCP (stdin/stdout)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  EDGE_MSE_INPUT_DIR=dir        Directory of the selection list (default output_images)")
	fmt.Fprintln(w, "  EDGE_MSE_OUTPUT_DIR=dir       Edge image directory (default <input>/segmentation_results)")
	fmt.Fprintln(w, "  EDGE_MSE_IMAGES=a.png,b.png   Selection list used when no images are given")
	fmt.Fprintln(w, "  EDGE_MSE_REPORT=table|json    Report format (default table)")
	fmt.Fprintln(w, "  EDGE_MSE_LOG_LEVEL=debug      Log level: debug, info, warn, error")
	fmt.Fprintln(w, "  EDGE_MSE_LOG_FORMAT=json      Log format: console or json")
	fmt.Fprintln(w, "  EDGE_MSE_AUTO_ORIENT=true     Apply EXIF orientation when decoding")
}
