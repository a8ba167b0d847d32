// Command rurtle is the interactive host for the Rurtle turtle-graphics
// language: it runs script files given on the command line and then
// drops into a REPL on the same environment.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	rurtle "github.com/Kingdread/Rurtle"
)

var cli struct {
	Scripts []string `arg:"" optional:"" name:"script" type:"existingfile" help:"Script files to run before the REPL starts."`

	NoRepl  bool   `help:"Exit after running the scripts instead of starting the REPL."`
	Size    string `placeholder:"WxH" help:"Canvas size in pixels, e.g. 800x600. Overrides the config file."`
	Config  string `type:"path" help:"Config file to use instead of the default location."`
	Debug   bool   `help:"Enable debug logging."`
	Profile bool   `help:"Write a CPU profile to the current directory."`

	Version kong.VersionFlag `help:"Print the version and exit."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("rurtle"),
		kong.Description("An interpreter for the Rurtle turtle-graphics language."),
		kong.Vars{"version": rurtle.Version},
	)
	os.Exit(run())
}

func run() int {
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cli.Profile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rurtle: %v\n", err)
		return 1
	}
	if cli.Size != "" {
		w, h, err := parseSize(cli.Size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rurtle: %v\n", err)
			return 2
		}
		cfg.Width, cfg.Height = w, h
	}
	slog.Debug("configuration loaded", "width", cfg.Width, "height", cfg.Height)

	env := rurtle.NewEnvironment(rurtle.NewCanvas(cfg.Width, cfg.Height))

	for _, script := range cli.Scripts {
		if err := runScript(env, script); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if cli.NoRepl {
		return 0
	}
	return repl(env, cfg)
}

func runScript(env *rurtle.Environment, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("rurtle: %w", err)
	}
	slog.Debug("running script", "path", path)
	if _, err := env.EvalSource(string(src)); err != nil {
		return rurtle.WrapErrorWithName(err, path, string(src))
	}
	return nil
}

// parseSize splits a WIDTHxHEIGHT flag value.
func parseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		width, err = strconv.Atoi(w)
		if err == nil {
			height, err = strconv.Atoi(h)
		}
	}
	if !ok || err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, expected WIDTHxHEIGHT", s)
	}
	return width, height, nil
}
