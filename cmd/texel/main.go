// Command texel renders LaTeX-style math expressions and markdown
// documents as Unicode text for the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"nickandperla.net/texel/internal/config"
	"nickandperla.net/texel/pkg/texel"
)

func main() {
	var (
		file    = flag.String("f", "", "Render a markdown file")
		docMode = flag.Bool("md", false, "Treat input as markdown instead of a bare expression")
		themeF  = flag.String("theme", "", "Theme name: default, mono, or plain")
		noColor = flag.Bool("no-color", false, "Disable styling")
		noPager = flag.Bool("no-pager", false, "Never invoke the pager")
		cacheF  = flag.String("cache", "", "SQLite render cache path")
		cfgPath = flag.String("config", config.DefaultPath(), "Config file path")
		diag    = flag.Bool("diag", false, "Print render diagnostics to stderr")
	)

	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "texel: bad config: %v\n", err)
		cfg = config.Default()
	}
	if *themeF != "" {
		cfg.Theme = *themeF
	}
	if *noColor || os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	if *noPager {
		cfg.Pager = false
	}
	if *cacheF != "" {
		cfg.Cache = *cacheF
	}

	opts := []texel.Option{texel.WithTheme(cfg.Theme)}
	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		opts = append(opts, texel.WithNoColor())
	}
	if cfg.Cache != "" {
		opts = append(opts, texel.WithSQLiteCache(cfg.Cache))
	}

	r := texel.New(opts...)
	defer r.Close()

	if *file != "" {
		doc, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "texel: %v\n", err)
			os.Exit(1)
		}
		page(r.RenderDocument(string(doc)), !cfg.Pager)
		return
	}

	input, ok := readInput(flag.Args())
	if !ok {
		fmt.Fprintln(os.Stderr, "usage: texel [flags] EXPRESSION")
		fmt.Fprintln(os.Stderr, "       texel -f FILE.md")
		fmt.Fprintln(os.Stderr, "       echo EXPRESSION | texel")
		return
	}

	if *docMode {
		page(r.RenderDocument(input), !cfg.Pager)
	} else {
		fmt.Println(r.Render(input))
	}

	if *diag {
		for _, d := range r.Diagnostics() {
			fmt.Fprintf(os.Stderr, "texel: %s\n", d)
		}
	}
}

// readInput joins the remaining arguments with spaces, falling back to
// stdin when it is piped and no arguments were given.
func readInput(args []string) (string, bool) {
	if len(args) > 0 {
		return strings.Join(args, " "), true
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return "", false
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", false
	}
	return strings.TrimRight(string(data), "\n"), true
}
