// norgestion-pdf exports the NORGESTION results report and proposal as PDF.
//
// Usage:
//
//	norgestion-pdf visual [options]
//	norgestion-pdf editorial [options]
//	norgestion-pdf propuesta [options]
//	norgestion-pdf html [-page informe|propuesta] [-export] [-o file]
//	norgestion-pdf config init [path]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/norgestion/reportpdf"
	"github.com/norgestion/reportpdf/internal/config"
	"github.com/norgestion/reportpdf/internal/site"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "visual":
		err = runVisual(ctx, os.Args[2:])
	case "editorial":
		err = runText(ctx, os.Args[2:], (*reportpdf.Exporter).GenerateEditorialPDF, func(c *config.Config) string { return c.Output.Editorial })
	case "propuesta":
		err = runText(ctx, os.Args[2:], (*reportpdf.Exporter).GeneratePropuestaEditorialPDF, func(c *config.Config) string { return c.Output.Proposal })
	case "html":
		err = runHTML(os.Args[2:])
	case "config":
		err = runConfig(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`norgestion-pdf - NORGESTION report and proposal PDF exporter

Usage:
  norgestion-pdf visual [options] [-url URL] [-target id]
  norgestion-pdf editorial [options]
  norgestion-pdf propuesta [options]
  norgestion-pdf html [-page informe|propuesta] [-export] [-o file]
  norgestion-pdf config init [path]

Commands:
  visual      Capture the rendered report through headless Chrome
  editorial   Compose the text version of the report
  propuesta   Compose the 2026 proposal
  html        Write the report or proposal page as HTML
  config      Write the default configuration file

Options:
  -c <file>       Config file (default: norgestion-pdf.yaml if present)
  -o <file>       Output file (default: from config)
  -url <url>      Page to capture (default: the built-in report page)
  -target <id>    Element to capture (default: pdf-content)
  -v              Verbose development logging

Examples:
  norgestion-pdf editorial
  norgestion-pdf propuesta -o out/propuesta.pdf
  norgestion-pdf visual -url http://localhost:3000/informe
  norgestion-pdf html -page propuesta -export -o propuesta.html
`)
}

// cliOptions are the flags shared by the export commands.
type cliOptions struct {
	configPath string
	output     string
	url        string
	target     string
	page       string
	export     bool
	verbose    bool
	args       []string
}

func parseOptions(args []string) (*cliOptions, error) {
	o := &cliOptions{}
	value := func(i *int, name string) (string, error) {
		*i++
		if *i >= len(args) {
			return "", fmt.Errorf("%s requires an argument", name)
		}
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "-c":
			o.configPath, err = value(&i, "-c")
		case "-o":
			o.output, err = value(&i, "-o")
		case "-url":
			o.url, err = value(&i, "-url")
		case "-target":
			o.target, err = value(&i, "-target")
		case "-page":
			o.page, err = value(&i, "-page")
		case "-export":
			o.export = true
		case "-v":
			o.verbose = true
		default:
			if strings.HasPrefix(args[i], "-") {
				return nil, fmt.Errorf("unknown option: %s", args[i])
			}
			o.args = append(o.args, args[i])
		}
		if err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *cliOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config.LoadOrDefault(afero.NewOsFs(), path)
}

func (o *cliOptions) logger() (*zap.Logger, error) {
	if o.verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// exporter builds an Exporter from the config. An -o with a directory part
// overrides the configured output directory.
func (o *cliOptions) exporter(cfg *config.Config, log *zap.Logger) (*reportpdf.Exporter, string, error) {
	opts := append(cfg.Options(), reportpdf.WithLogger(log))
	filename := ""
	if o.output != "" {
		if dir := filepath.Dir(o.output); dir != "." {
			opts = append(opts, reportpdf.WithOutputDir(dir))
		}
		filename = filepath.Base(o.output)
	}
	e, err := reportpdf.NewExporter(opts...)
	if err != nil {
		return nil, "", err
	}
	return e, filename, nil
}

type generateFunc func(*reportpdf.Exporter, context.Context, *reportpdf.ExportOptions) (*reportpdf.Result, error)

// runText implements the "editorial" and "propuesta" commands.
func runText(ctx context.Context, args []string, generate generateFunc, configured func(*config.Config) string) error {
	o, err := parseOptions(args)
	if err != nil {
		return err
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	log, err := o.logger()
	if err != nil {
		return err
	}
	defer log.Sync()

	e, filename, err := o.exporter(cfg, log)
	if err != nil {
		return err
	}
	defer e.Close()
	if filename == "" {
		filename = configured(cfg)
	}

	bar := newProgressBar(os.Stderr)
	res, err := generate(e, ctx, &reportpdf.ExportOptions{Filename: filename, OnProgress: bar.Update})
	bar.Finish()
	if err != nil {
		return err
	}
	return report(os.Stdout, res)
}

// runVisual implements the "visual" command.
func runVisual(ctx context.Context, args []string) error {
	o, err := parseOptions(args)
	if err != nil {
		return err
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	log, err := o.logger()
	if err != nil {
		return err
	}
	defer log.Sync()

	e, filename, err := o.exporter(cfg, log)
	if err != nil {
		return err
	}
	defer e.Close()
	if filename == "" {
		filename = cfg.Output.Visual
	}
	target := o.target
	if target == "" {
		target = cfg.TargetID()
	}
	pageURL := o.url
	if pageURL == "" {
		pageURL = cfg.Capture.URL
	}

	bar := newProgressBar(os.Stderr)
	opts := &reportpdf.ExportOptions{Filename: filename, OnProgress: bar.Update}
	var res *reportpdf.Result
	if pageURL != "" {
		res, err = e.GenerateVisualPDF(ctx, pageURL, target, opts)
	} else {
		var page strings.Builder
		if err := site.Render(&page, site.PageInforme, site.Screen); err != nil {
			return err
		}
		res, err = e.GenerateVisualPDFFromHTML(ctx, page.String(), target, opts)
	}
	bar.Finish()
	if err != nil {
		return err
	}
	return report(os.Stdout, res)
}

func report(w io.Writer, res *reportpdf.Result) error {
	if res == nil {
		_, err := fmt.Fprintln(w, "another export is already running")
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d pages, %d bytes\n", res.Filename(), res.Pages(), res.Len())
	return err
}

// runHTML implements the "html" command.
func runHTML(args []string) error {
	o, err := parseOptions(args)
	if err != nil {
		return err
	}
	page := o.page
	if page == "" {
		page = site.PageInforme
	}
	mode := site.Screen
	if o.export {
		mode = site.Export
	}

	out := io.Writer(os.Stdout)
	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return site.Render(out, page, mode)
}

// runConfig implements the "config" command.
func runConfig(args []string) error {
	if len(args) == 0 || args[0] != "init" {
		return fmt.Errorf("usage: norgestion-pdf config init [path]")
	}
	path := config.DefaultPath
	if len(args) > 1 {
		path = args[1]
	}
	created, err := config.Init(afero.NewOsFs(), path)
	if err != nil {
		return err
	}
	if !created {
		fmt.Printf("%s already exists\n", path)
		return nil
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
