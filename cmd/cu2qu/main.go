// Command cu2qu converts the cubic outlines of font glyphs to quadratic
// splines and prints the result as SVG path data.
//
// Usage:
//
//	cu2qu [flags] font [font...]
//
// Every font is a master of the same family; the glyphs of all masters are
// converted compatibly.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"
	"honnef.co/go/cu2qu"
	"honnef.co/go/cu2qu/otpen"
	"honnef.co/go/cu2qu/rasterpen"
	"honnef.co/go/cu2qu/sfntpen"
)

var (
	text         = flag.String("text", "aeg&", "characters to convert")
	maxErr       = flag.Float64("max-err", 0, "maximum error in font units; 0 derives it from -max-err-em")
	maxErrEm     = flag.Float64("max-err-em", cu2qu.DefaultMaxErrEm, "maximum error relative to units per em")
	maxN         = flag.Int("max-n", cu2qu.DefaultMaxN, "maximum number of segments per spline")
	reverse      = flag.Bool("reverse", false, "reverse contour direction")
	retainCubics = flag.Bool("retain-cubics", false, "keep cubics that would need two quadratic segments")
	loader       = flag.String("loader", "opentype", "font parser: opentype or sfnt")
	workers      = flag.Int("workers", 0, "number of worker goroutines; 0 uses GOMAXPROCS")
	pngDir       = flag.String("png", "", "directory to write previews of the converted glyphs to")
	ppem         = flag.Float64("ppem", 128, "preview size in pixels per em")
	verbose      = flag.Bool("v", false, "verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cu2qu [flags] font [font...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	cu2qu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "cu2qu: %v\n", err)
		os.Exit(1)
	}
}

// master is one loaded font.
type master struct {
	path string
	upem float64
	// glyph returns the glyph for a rune.
	glyph func(r rune) (cu2qu.Drawer, error)
}

func loadMaster(path string) (master, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return master{}, err
	}
	switch *loader {
	case "opentype":
		face, err := otpen.Load(data)
		if err != nil {
			return master{}, fmt.Errorf("%s: %w", path, err)
		}
		return master{
			path: path,
			upem: otpen.UnitsPerEm(face),
			glyph: func(r rune) (cu2qu.Drawer, error) {
				return otpen.GlyphForRune(face, r)
			},
		}, nil
	case "sfnt":
		f, err := sfnt.Parse(data)
		if err != nil {
			return master{}, fmt.Errorf("%s: %w", path, err)
		}
		return master{
			path: path,
			upem: float64(f.UnitsPerEm()),
			glyph: func(r rune) (cu2qu.Drawer, error) {
				return sfntpen.GlyphForRune(f, r)
			},
		}, nil
	default:
		return master{}, fmt.Errorf("unknown loader %q", *loader)
	}
}

func run(paths []string) error {
	masters := make([]master, len(paths))
	for i, path := range paths {
		m, err := loadMaster(path)
		if err != nil {
			return err
		}
		masters[i] = m
	}

	stats := new(cu2qu.Stats)
	opts := cu2qu.Options{
		MaxErrEm:         *maxErrEm,
		MaxN:             *maxN,
		ReverseDirection: *reverse,
		Stats:            stats,
		RetainCubics:     *retainCubics,
	}
	if *maxErr > 0 {
		opts.MaxErr = *maxErr
	} else {
		opts.MaxErrs = make([]float64, len(masters))
		for i, m := range masters {
			opts.MaxErrs[i] = opts.Tolerance(m.upem)
		}
		opts.MaxErr = opts.MaxErrs[0]
	}

	// Fonts aren't safe for concurrent use, so glyphs are recorded up front
	// and converted from the recordings.
	runes := []rune(*text)
	jobs := make([]cu2qu.GlyphJob, 0, len(runes))
	results := make([][]*cu2qu.BezPathPen, 0, len(runes))
	for _, r := range runes {
		job := cu2qu.GlyphJob{Name: string(r)}
		var outs []*cu2qu.BezPathPen
		for _, m := range masters {
			g, err := m.glyph(r)
			if err != nil {
				return err
			}
			rec := new(cu2qu.RecordingPen)
			if err := g.Draw(rec); err != nil {
				return fmt.Errorf("%s: glyph %q: %w", m.path, r, err)
			}
			out := new(cu2qu.BezPathPen)
			job.Masters = append(job.Masters, rec)
			job.Outs = append(job.Outs, out)
			outs = append(outs, out)
		}
		jobs = append(jobs, job)
		results = append(results, outs)
	}

	if err := cu2qu.ConvertGlyphs(jobs, opts, *workers); err != nil {
		return err
	}

	for i, job := range jobs {
		for j, out := range results[i] {
			fmt.Printf("%s\t%s\t%s\n", job.Name, filepath.Base(masters[j].path), out.Path.SVG(cu2qu.SVGOptions{MaxPrecision: 3}))
			if *pngDir != "" {
				name := fmt.Sprintf("%U-%d.png", []rune(job.Name)[0], j)
				if err := writePNG(filepath.Join(*pngDir, name), out.Path, masters[j].upem); err != nil {
					return err
				}
			}
		}
	}
	fmt.Fprintf(os.Stderr, "segments per spline:\n%s", indent(stats.String()))
	return nil
}

func writePNG(path string, p cu2qu.BezPath, upem float64) error {
	size := int(*ppem * 1.25)
	z := vector.NewRasterizer(size, size)
	aff := rasterpen.FontTransform(upem, *ppem, cu2qu.Pt(*ppem/8, *ppem))
	if err := p.Draw(rasterpen.NewVectorPen(z, aff)); err != nil {
		return err
	}
	dst := image.NewAlpha(z.Bounds())
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func indent(s string) string {
	var sb strings.Builder
	for line := range strings.Lines(s) {
		sb.WriteString("  ")
		sb.WriteString(line)
	}
	return sb.String()
}
