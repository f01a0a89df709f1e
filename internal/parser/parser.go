package parser

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/tasmovie/parser/internal/container"
	"github.com/tasmovie/parser/internal/logger"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

// MovieParser resolves a movie's format by file name and runs the matching
// format parser over its contents.
type MovieParser struct {
	opts Options
	reg  *registry.Registry
}

// File is a named movie upload.
type File struct {
	Name string
	Data []byte
}

// Outcome pairs a batch input with its parse result. Err is set only when
// the file's format could not be resolved, in which case Result is nil.
type Outcome struct {
	Name   string
	Result *result.Result
	Err    error
}

// New returns a new parser with the given options.
func New(opts Options) *MovieParser {
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = runtime.NumCPU()
	}
	if opts.MaxParallel > 32 {
		opts.MaxParallel = 32
	}
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.Default
	}
	return &MovieParser{opts: opts, reg: reg}
}

// Parse resolves the format from filename and parses data. The returned
// error is non-nil only for an unsupported format (wrapping
// registry.ErrUnsupportedFormat); every problem with the content itself is
// reported through the result's errors and warnings.
func (p *MovieParser) Parse(filename string, data []byte) (*result.Result, error) {
	d, err := p.reg.Resolve(filename)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := p.parse(d, data)
	p.opts.Logger.Debug("parsed movie",
		"file", filename,
		"format", d.Extension,
		"success", res.Success,
		"frames", res.Frames,
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
		"elapsed", time.Since(start),
	)
	return &res, nil
}

func (p *MovieParser) parse(d registry.Descriptor, data []byte) result.Result {
	if len(data) > p.opts.MaxFileSize {
		return result.Failed(d.Extension, result.ErrFileTooLarge)
	}
	c, err := d.Open(data, p.opts.MaxFileSize)
	if errors.Is(err, container.ErrTooLarge) {
		return result.Failed(d.Extension, result.ErrFileTooLarge)
	}
	if err != nil {
		return result.Failed(d.Extension, "unreadable archive: "+err.Error())
	}
	defer c.Close()
	return d.Parser.Parse(c)
}

// ParseFiles parses a batch concurrently, at most MaxParallel files at a
// time. Outcomes are returned in input order. If done is non-nil it is called
// once per file as soon as that file finishes, possibly from several
// goroutines at once.
func (p *MovieParser) ParseFiles(files []File, done func(Outcome)) []Outcome {
	out := make([]Outcome, len(files))
	sem := make(chan struct{}, p.opts.MaxParallel)
	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			f := files[i]
			res, err := p.Parse(f.Name, f.Data)
			out[i] = Outcome{Name: f.Name, Result: res, Err: err}
			if done != nil {
				done(out[i])
			}
		}(i)
	}
	wg.Wait()
	return out
}

// Extensions lists the formats this parser accepts.
func (p *MovieParser) Extensions() []string {
	return p.reg.Extensions()
}
