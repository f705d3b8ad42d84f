// Command vrdemo renders every widget of a theme into a PNG contact sheet.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/gogpu/vrender"
	"github.com/gogpu/vrender/pixfmt"
	"github.com/gogpu/vrender/surface"
	"github.com/gogpu/vrender/text"
	"github.com/gogpu/vrender/theme"
)

type options struct {
	theme  string
	output string
	format string
	aa     bool
	watch  bool
	width  int
	height int
}

func main() {
	var opts options
	flag.StringVar(&opts.theme, "theme", "cmd/vrdemo/classic.yaml", "theme file (.yaml or .toml)")
	flag.StringVar(&opts.output, "output", "widgets.png", "output file")
	flag.StringVar(&opts.format, "format", "xrgb8888", "pixel format: rgb565, rgb555, argb1555, xrgb8888, argb8888, rgba8888, abgr8888")
	flag.BoolVar(&opts.aa, "aa", false, "use the anti-aliased rasterizer")
	flag.BoolVar(&opts.watch, "watch", false, "re-render whenever the theme file changes")
	flag.IntVar(&opts.width, "width", 160, "widget cell width")
	flag.IntVar(&opts.height, "height", 48, "widget cell height")
	verbose := flag.Bool("v", false, "log every resolved step")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	vrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	switch strings.ToLower(opts.format) {
	case "rgb565":
		return serve(opts, pixfmt.RGB565)
	case "rgb555":
		return serve(opts, pixfmt.RGB555)
	case "argb1555":
		return serve(opts, pixfmt.ARGB1555)
	case "xrgb8888":
		return serve(opts, pixfmt.XRGB8888)
	case "argb8888":
		return serve(opts, pixfmt.ARGB8888)
	case "rgba8888":
		return serve(opts, pixfmt.RGBA8888)
	case "abgr8888":
		return serve(opts, pixfmt.ABGR8888)
	}
	return errors.Errorf("unknown pixel format %q", opts.format)
}

func serve[P pixfmt.Pixel](opts options, f *pixfmt.Format[P]) error {
	mode := vrender.ModePlain
	if opts.aa {
		mode = vrender.ModeAntiAlias
	}
	r := vrender.New(f, mode)
	res := resources()

	th, err := theme.Load(opts.theme)
	if err != nil {
		return err
	}
	if err := render(r, th, res, opts); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	w, err := theme.NewWatcher(opts.theme)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		for {
			select {
			case th, ok := <-w.Updates():
				if !ok {
					return
				}
				if err := render(r, th, res, opts); err != nil {
					log.Printf("render: %v", err)
				}
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				log.Printf("reload: %v", err)
			}
		}
	}()
	log.Printf("watching %s", opts.theme)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// render draws one row per widget and saves the sheet.
func render[P pixfmt.Pixel](r vrender.Renderer[P], th *theme.Theme, res theme.Resources, opts options) error {
	names := th.WidgetNames()
	const margin = 8
	cellW, cellH := opts.width, opts.height
	s := surface.New(cellW+2*margin, len(names)*(cellH+margin)+margin, r.Format())
	r.SetSurface(s)

	base := vrender.DefaultStyle()
	if bg, err := th.Color("background"); err == nil {
		r.FillSurface(base.WithFgColor(bg))
	}

	for i, name := range names {
		steps, err := th.Steps(name, res)
		if err != nil {
			return err
		}
		y := margin + i*(cellH+margin)
		area := image.Rect(margin, y, margin+cellW, y+cellH)
		for _, step := range steps {
			r.DrawStep(base, area, area, step, 0)
		}
	}

	if err := s.SavePNG(opts.output); err != nil {
		return err
	}
	log.Printf("%d widgets from %q saved to %s (%s)", len(names), th.Name, opts.output, r.Format())
	return nil
}

func resources() theme.Resources {
	fonts := map[string]text.Font{"default": text.Default()}
	if sans, err := text.NewGoRegular(12); err == nil {
		fonts["sans"] = sans
	} else {
		log.Printf("sans font unavailable: %v", err)
	}
	return theme.Resources{
		Fonts:  fonts,
		Images: map[string]image.Image{"checker": checker(16)},
	}
}

// checker returns a translucent checkerboard icon.
func checker(n int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := color.NRGBA{R: 0x20, G: 0x60, B: 0xc0, A: 0xff}
			if (x/4+y/4)%2 == 1 {
				c = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
