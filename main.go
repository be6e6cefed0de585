package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/renderer"
	"github.com/df07/go-ppm-pathtracer/pkg/scene"
)

// seedEnvVar overrides the default seed when -seed is not given
const seedEnvVar = "PATHTRACER_SEED"

const defaultSeed int64 = 42

type options struct {
	sceneName  string
	configPath string
	width      int
	height     int
	samples    int
	depth      int
	seed       int64
	seedSet    bool
	format     string
	output     string
	help       bool
}

func parseFlags(args []string, output io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.sceneName, "scene", "default", "Scene name or path to a .json scene file")
	fs.StringVar(&opts.configPath, "config", "", "Path to a .json scene file (overrides -scene)")
	fs.IntVar(&opts.width, "width", 0, "Image width (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height (0 = scene default)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	fs.Int64Var(&opts.seed, "seed", defaultSeed, "Random seed (also "+seedEnvVar+")")
	fs.StringVar(&opts.format, "format", "", "Output format: ppm or png (default from -output extension, else ppm)")
	fs.StringVar(&opts.output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	return opts, fs, nil
}

// createScene resolves a builtin name, a scene file name, or an explicit config path
func createScene(sceneName, configPath string) (*scene.Scene, error) {
	if configPath != "" {
		return scene.LoadScene(configPath)
	}
	return scene.Create(sceneName)
}

// resolveSeed picks the -seed flag, then the environment, then the default
func resolveSeed(opts *options, env string) (int64, error) {
	if opts.seedSet || env == "" {
		return opts.seed, nil
	}
	seed, err := strconv.ParseInt(env, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", seedEnvVar, env, err)
	}
	return seed, nil
}

// resolveFormat picks -format, then the output extension, then PPM
func resolveFormat(format, output string) (renderer.Format, error) {
	if format != "" {
		return renderer.ParseFormat(format)
	}
	if output != "" && filepath.Ext(output) != "" {
		return renderer.FormatFromPath(output)
	}
	return renderer.FormatPPM, nil
}

// samplingConfig applies non-zero flag overrides to the scene's recommendation
func samplingConfig(base renderer.SamplingConfig, opts *options) renderer.SamplingConfig {
	config := base
	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.samples > 0 {
		config.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		config.MaxDepth = opts.depth
	}
	return config
}

func sceneLabel(opts *options) string {
	name := opts.sceneName
	if opts.configPath != "" {
		name = opts.configPath
	}
	base := filepath.Base(name)
	return base[:len(base)-len(filepath.Ext(base))]
}

func printHelp(fs *flag.FlagSet) {
	fmt.Println("PPM Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-13s - %s\n", info.ID, info.Description)
	}
	fmt.Println("  <file>.json   - Scene file")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.ppm unless -output is given")
}

func run(args []string) error {
	opts, fs, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(fs)
		return nil
	}

	seed, err := resolveSeed(opts, os.Getenv(seedEnvVar))
	if err != nil {
		return err
	}
	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}

	fmt.Println("Starting PPM Path Tracer...")

	selectedScene, err := createScene(opts.sceneName, opts.configPath)
	if err != nil {
		return err
	}
	config := samplingConfig(selectedScene.SamplingConfig, opts)
	if err := config.Validate(); err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputDir := filepath.Join("output", sceneLabel(opts))
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}

	raytracer := renderer.NewRaytracer(selectedScene, config.Width, config.Height)
	raytracer.SetSamplingConfig(config)
	raytracer.SetSampler(core.NewSeededSampler(seed))
	raytracer.SetLogger(renderer.NewDefaultLogger())

	img, stats, err := raytracer.Render(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("%d pixels, %d samples per pixel, seed %d, average luminance %.4f\n",
		stats.TotalPixels, stats.SamplesPerPixel, seed, stats.AverageLuminance)

	if err := renderer.SaveImage(outputPath, img, format); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", outputPath)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
