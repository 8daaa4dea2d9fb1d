// Package main is a demonstration driver for the textforge engine: it
// loads a file, runs the colorizer to completion, and prints the
// result to stdout with ANSI true-color escapes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/textforge/internal/config"
	"github.com/dshills/textforge/internal/engine"
	"github.com/dshills/textforge/internal/style"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		language    string
		paletteName string
		wrapColumn  int
		logLevel    string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&language, "lang", "", "Language definition (c, cpp, lua, python, json, sql)")
	flag.StringVar(&paletteName, "palette", "", "Palette (dark, light, mariana, retroblue)")
	flag.IntVar(&wrapColumn, "wrap", 0, "Wrap at display column (0 disables)")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("textforge %s (%s)\n", version, commit)
		return 0
	}

	setupLogging(logLevel)

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if language != "" {
		cfg.Language = language
	}
	if paletteName != "" {
		cfg.Palette = paletteName
	}
	if wrapColumn > 0 {
		cfg.WordWrap = true
		cfg.WrapColumn = wrapColumn
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: textforge [flags] <file>")
		return 2
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Language == "" {
		cfg.Language = languageForFile(path)
	}

	opts := append(cfg.Options(), engine.WithContent(string(data)))
	ed := engine.New(opts...)
	for ed.Update() {
	}

	render(ed)
	return 0
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// languageForFile guesses a language definition from the extension.
func languageForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c", ".h":
		return "c"
	case ".cpp", ".cc", ".cxx", ".hpp", ".hh":
		return "cpp"
	case ".lua":
		return "lua"
	case ".py":
		return "python"
	case ".json":
		return "json"
	case ".sql":
		return "sql"
	}
	return ""
}

// render prints every visual row with true-color escapes, honoring
// wrap segments and ghost rows.
func render(ed *engine.Editor) {
	lay := ed.Layout()
	doc := ed.Document()
	var sb strings.Builder

	for _, row := range lay.VisualLines() {
		if row.Ghost {
			ghost := lay.GhostLines()[row.GhostIndex]
			sb.WriteString(ghost.Text)
			sb.WriteByte('\n')
			continue
		}

		line := doc.Line(row.DocumentLine)
		first := doc.CharIndexRight(engine.Coordinate{Line: row.DocumentLine, Column: row.StartColumn})
		last := doc.CharIndexRight(engine.Coordinate{Line: row.DocumentLine, Column: row.EndColumn})
		for i := first; i < last && i < len(line); i++ {
			writeColored(&sb, line[i].Cluster, ed.GlyphColor(line[i]))
		}
		sb.WriteString("\x1b[0m\n")
	}
	fmt.Print(sb.String())
}

func writeColored(sb *strings.Builder, cluster string, c style.Color) {
	r := uint8(c >> 24)
	g := uint8(c >> 16)
	b := uint8(c >> 8)
	fmt.Fprintf(sb, "\x1b[38;2;%d;%d;%dm%s", r, g, b, cluster)
}
