package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/tasmovie/parser/internal/config"
	_ "github.com/tasmovie/parser/internal/formats" // register formats
	"github.com/tasmovie/parser/internal/logger"
	"github.com/tasmovie/parser/internal/parser"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/report"
	"github.com/tasmovie/parser/internal/result"
)

func main() {
	configPath := flag.String("config", "", "Path to an HCL config file")
	format := flag.String("format", "", "Output format: text, json or hcl (overrides config)")
	parallel := flag.Int("parallel", -1, "Max files parsed in parallel (0 = auto, overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	stdinName := flag.String("stdin-name", "", "File name (for format detection) when reading a movie from stdin via -")
	progress := flag.Bool("progress", false, "Show a progress bar on stderr")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: parser [-config file.hcl] [-format text|json|hcl] [-parallel N] [-progress] <movie|-> ...\n")
		fmt.Fprintf(os.Stderr, "supported formats: %s\n", strings.Join(registry.Default.Extensions(), ", "))
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *format != "" {
		cfg.Output = *format
	}
	if *parallel >= 0 {
		cfg.MaxParallel = *parallel
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.New(os.Stderr, level)

	files, err := readInputs(flag.Args(), *stdinName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := cfg.ParserOptions()
	opts.Logger = log
	opts.Registry = registry.Default.Without(cfg.DisabledFormats...)
	p := parser.New(opts)

	var done func(parser.Outcome)
	if *progress {
		bar := progressbar.Default(int64(len(files)), "parsing")
		done = func(parser.Outcome) { _ = bar.Add(1) }
	}
	outcomes := p.ParseFiles(files, done)

	if err := write(os.Stdout, cfg.Output, outcomes); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
	for _, o := range outcomes {
		if o.Err != nil || !o.Result.Success {
			os.Exit(1)
		}
	}
}

func readInputs(args []string, stdinName string) ([]parser.File, error) {
	files := make([]parser.File, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			if stdinName == "" {
				return nil, fmt.Errorf("reading from stdin requires -stdin-name")
			}
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			files = append(files, parser.File{Name: stdinName, Data: data})
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		files = append(files, parser.File{Name: filepath.Base(arg), Data: data})
	}
	return files, nil
}

func write(w io.Writer, output string, outcomes []parser.Outcome) error {
	switch output {
	case config.OutputJSON:
		type jsonOutcome struct {
			File  string `json:"file"`
			Error string `json:"error,omitempty"`
			*result.Result
		}
		list := make([]jsonOutcome, 0, len(outcomes))
		for _, o := range outcomes {
			jo := jsonOutcome{File: o.Name}
			if o.Err != nil {
				jo.Error = o.Err.Error()
			} else {
				jo.Result = o.Result
			}
			list = append(list, jo)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case config.OutputHCL:
		b := report.NewBuilder()
		for _, o := range outcomes {
			if o.Err != nil {
				b.Add(report.UnsupportedBlock(o.Name, o.Err))
			} else {
				b.Add(report.MovieBlock(o.Name, o.Result))
			}
		}
		_, err := w.Write(b.Build())
		return err
	default:
		return writeText(w, outcomes)
	}
}

// textWriter keeps the first write error and skips every later write.
type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func writeText(w io.Writer, outcomes []parser.Outcome) error {
	tw := &textWriter{w: w}
	for _, o := range outcomes {
		if o.Err != nil {
			tw.printf("%s: ERROR %v\n", o.Name, o.Err)
			continue
		}
		r := o.Result
		status := "ok"
		if !r.Success {
			status = "rejected"
		}
		tw.printf("%s: %s system=%s region=%s frames=%d rerecords=%d start=%s\n",
			o.Name, status, r.SystemCode, r.Region, r.Frames, r.RerecordCount, r.StartType)
		for _, e := range r.Errors {
			tw.printf("  ERROR %s\n", e)
		}
		for _, warn := range r.Warnings {
			tw.printf("  WARN %s\n", warn)
		}
	}
	return tw.err
}
