package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/milk9111/keystone/assets"
	"github.com/milk9111/keystone/logging"
	"github.com/milk9111/keystone/manifest"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

// EnvVarPrefix prefixes the environment variables mirroring each flag, e.g.
// KEYSTONE_ASSETS.
const EnvVarPrefix = "KEYSTONE"

type Config struct {
	AssetsDir       string
	Overlay         string
	Manifest        string
	Workers         int
	MinSplashFrames int
	Watch           bool
	NotifyOnce      bool
	Debug           bool
	Logging         logging.Options
}

// AssetFS returns the file system assets are loaded from: the overlay
// directory, then the assets directory, then the embedded art. An empty
// AssetsDir serves the embedded art only.
func (c Config) AssetFS() fs.FS {
	var fsys fs.FS = assets.Embedded
	if c.AssetsDir != "" {
		fsys = assets.OverlayFS{Primary: os.DirFS(c.AssetsDir), Fallback: fsys}
	}
	if c.Overlay != "" {
		fsys = assets.OverlayFS{Primary: os.DirFS(c.Overlay), Fallback: fsys}
	}
	return fsys
}

// AssetFlags registers the flags shared by every command that loads the
// manifest: asset locations, manifest name, workers, log level and the
// config file.
func (c *Config) AssetFlags(flags *ff.FlagSet) {
	flags.StringVar(&c.AssetsDir, 'a', "assets", "assets", "Directory asset paths are resolved against. Missing files fall back to the embedded art.")
	flags.StringVar(&c.Overlay, 0, "overlay", "", "Optional directory whose files shadow the assets directory.")
	flags.StringVar(&c.Manifest, 'm', "manifest", manifest.DefaultName, "Asset group manifest, read from manifest/ on disk or the embedded copy.")
	flags.IntVar(&c.Workers, 'w', "workers", runtime.NumCPU(), "The maximum number of assets loaded in parallel.")
	_ = flags.String('c', "config", "keystone.yaml", "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		flags.StringEnumVar(&c.Logging.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}
}

// ParseFlags parses args into flags in order of precedence:
// 1. flags > 2. env vars > 3. config file
//
// flags must have been populated by AssetFlags.
func ParseFlags(flags *ff.FlagSet, stderr io.Writer, args []string) error {
	err := ff.Parse(flags, args,
		ff.WithEnvVarPrefix(EnvVarPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(flags))
		return err
	}
	return nil
}

// Validate checks values flags cannot constrain.
func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.MinSplashFrames < 0 {
		return fmt.Errorf("min-splash-frames must not be negative, got %d", c.MinSplashFrames)
	}
	return nil
}

// Parse builds the game config.
func Parse(name string, stderr io.Writer, args []string) (Config, error) {
	var cfg Config

	flags := ff.NewFlagSet(name)
	cfg.AssetFlags(flags)
	flags.IntVar(&cfg.MinSplashFrames, 0, "min-splash-frames", 120, "Minimum number of ticks the splash screen stays up.")
	flags.BoolVar(&cfg.Watch, 0, "watch", "Reload the manifest and its assets when the manifest changes on disk.")
	flags.BoolVar(&cfg.NotifyOnce, 0, "notify-once", "Announce each loaded asset group once instead of every tick.")
	flags.BoolVar(&cfg.Debug, 'd', "debug", "Draw the debug overlay.")

	if err := ParseFlags(flags, stderr, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
