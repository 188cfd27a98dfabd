// Command allrgb renders an image that uses every 24-bit colour exactly once.
//
// It writes five files into the output directory: the final image (all),
// the three normalized noise fields (hue, sat, val) and the HSV colour field
// they form before ranking (out).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/allrgb"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, generates the image and writes its files. It returns the
// process exit code: 0 on success, 2 for bad flags, 1 for any other failure.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("allrgb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		size    = fs.Int("size", allrgb.DefaultSize, "image width and height in pixels")
		out     = fs.String("out", ".", "output directory")
		format  = fs.String("format", "ppm", "output format: ppm, png, tiff or bmp")
		workers = fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS, 1 = sequential)")
		seed    = fs.Int64("seed", 0, "noise seed")
		order   = fs.String("order", "lex", "ranking order: lex or interleaved")
		verify  = fs.Bool("verify", false, "count distinct colours in the result")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "", log.LstdFlags)
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	allrgb.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	ff, err := allrgb.ParseFormat(*format)
	if err != nil {
		logger.Printf("Invalid -format: %v", err)
		return 2
	}
	ord, err := allrgb.ParseOrder(*order)
	if err != nil {
		logger.Printf("Invalid -order: %v", err)
		return 2
	}

	g, err := allrgb.New(
		allrgb.WithSize(*size),
		allrgb.WithWorkers(*workers),
		allrgb.WithSeed(*seed),
		allrgb.WithOrder(ord),
	)
	if err != nil {
		logger.Printf("Invalid configuration: %v", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := g.Run(ctx)
	if err != nil {
		logger.Printf("Generation failed: %v", err)
		return 1
	}

	if *verify {
		report(stdout, res)
	}

	paths, err := res.Save(*out, ff)
	logger.Printf("Saved %d of 5 files to %s", len(paths), *out)
	if err != nil {
		logger.Printf("Output failed: %v", err)
		return 1
	}
	return 0
}

// report prints the colour census and digest of res.
func report(w io.Writer, res *allrgb.Result) {
	p := message.NewPrinter(language.English)
	cov := res.Census()

	p.Fprintf(w, "pixels:     %d\n", cov.Pixels)
	p.Fprintf(w, "distinct:   %d\n", cov.Distinct)
	p.Fprintf(w, "duplicates: %d\n", cov.Duplicates)
	p.Fprintf(w, "missing:    %d of %d\n", cov.Missing(), allrgb.ColorSpace)
	fmt.Fprintf(w, "digest:     %016x\n", res.Digest())
	if cov.Complete() {
		fmt.Fprintln(w, "every 24-bit colour appears exactly once")
	}
}
