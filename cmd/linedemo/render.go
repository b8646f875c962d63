package main

import (
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gogpu/linekit"
	"github.com/gogpu/linekit/internal/raster"
	"github.com/gogpu/linekit/text"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

// margin is the distance from the image edge to the first line, in pixels.
const margin = 16

type renderParams struct {
	output     string
	width      int
	height     int
	foreground string
	accent     string
	background string
	underline  float64
}

func (a *app) renderCommand() *cobra.Command {
	var flags layoutFlags
	p := renderParams{
		output:     a.settings.Output,
		width:      a.settings.Width,
		height:     a.settings.Height,
		foreground: a.settings.Foreground,
		accent:     a.settings.Accent,
		background: a.settings.Background,
	}

	cmd := &cobra.Command{
		Use:   "render text...",
		Short: "Render laid out text to a PNG",
		Long: `Shape each argument as one line, lay the lines out and render them to an
image. Glyphs are shaded from the foreground to the accent color, and each line
gets a stroked underline that follows its rotation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, a)
			if err != nil {
				return err
			}
			return a.runRender(args, cfg, flags.size, p)
		},
	}
	flags.register(cmd, a.settings)
	cmd.Flags().StringVarP(&p.output, "output", "o", p.output, "output PNG file")
	cmd.Flags().IntVar(&p.width, "width", p.width, "image width")
	cmd.Flags().IntVar(&p.height, "height", p.height, "image height")
	cmd.Flags().StringVar(&p.foreground, "fg", p.foreground, "glyph color of the first glyph")
	cmd.Flags().StringVar(&p.accent, "accent", p.accent, "glyph color of the last glyph and underline color")
	cmd.Flags().StringVar(&p.background, "bg", p.background, "background color")
	cmd.Flags().Float64Var(&p.underline, "underline", 2, "underline thickness (0 = none)")
	return cmd
}

func (a *app) runRender(args []string, cfg text.Config, size float64, p renderParams) error {
	start := time.Now()
	if p.width <= 0 || p.height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", p.width, p.height)
	}

	// Glyph bitmaps are rasterized at the supersampled size; layout stays
	// in output pixels.
	k := float64(a.settings.Supersample)
	factory, err := text.OpenTypeRendererFactory(goregular.TTF, size*k)
	if err != nil {
		return err
	}
	cfg.Renderer = factory

	lines, err := shapeLines(args, size, margin, margin)
	if err != nil {
		return err
	}
	var sink text.Collector
	if !text.Process(lines, &sink, text.WithConfig(cfg)) {
		return errRejected
	}
	a.logger.Debug("layout done", "lines", len(lines), "glyphs", len(sink.Glyphs))

	fg := linekit.Hex(p.foreground)
	accent := linekit.Hex(p.accent)
	bg := linekit.Hex(p.background)

	canvas := image.NewNRGBA(image.Rect(0, 0, p.width*int(k), p.height*int(k)))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg.ToRGBA()), image.Point{}, draw.Src)

	drawGlyphs(canvas, sink.Glyphs, k, fg, accent)
	if p.underline > 0 {
		// Half-transparent accent over the background.
		c := accent
		c.A *= 0.6
		drawUnderlines(canvas, lines, cfg, p.underline, k, c.Blend(bg))
	}

	out := imaging.Resize(canvas, p.width, p.height, imaging.Lanczos)
	if err := imaging.Save(out, p.output); err != nil {
		return fmt.Errorf("save %s: %w", p.output, err)
	}
	a.logger.Infof("wrote %s, %d glyphs (%s)", p.output, len(sink.Glyphs), time.Since(start).Round(time.Millisecond))
	return nil
}

// drawGlyphs composites every rendered glyph onto dst, shading from fg to
// accent in batch order.
func drawGlyphs(dst draw.Image, glyphs []text.PlacedGlyph, k float64, fg, accent linekit.RGBA) {
	up := linekit.ScaleMatrix(k, k)
	down := linekit.ScaleMatrix(1/k, 1/k)
	for i, g := range glyphs {
		bmp := g.Glyph.Bitmap
		if bmp == nil {
			continue
		}
		t := 0.0
		if len(glyphs) > 1 {
			t = float64(i) / float64(len(glyphs)-1)
		}
		src := image.NewUniform(fg.Lerp(accent, t).ToRGBA())
		s2d := up.Multiply(g.GlyphToDevice()).Multiply(down)
		draw.BiLinear.Transform(dst, s2d.Aff3(), src, bmp.Bounds, draw.Over, &draw.Options{
			SrcMask: bmp.Mask,
		})
	}
}

// drawUnderlines strokes a segment below the baseline of every line,
// transformed like the line's glyphs.
func drawUnderlines(dst draw.Image, lines []*text.GlyphLine, cfg text.Config, thickness, k float64, c linekit.RGBA) {
	b := dst.Bounds()
	mask := image.NewAlpha(b)
	up := linekit.ScaleMatrix(k, k)
	stroke := linekit.DefaultStroke().WithWidth(thickness * k)
	for _, line := range lines {
		y := line.Y + line.Baseline + thickness*2
		seg := linekit.L(line.X, y, line.X+line.Width, y).
			Transform(cfg.LineTransform(line)).
			Transform(up)
		raster.FillStroke(mask, seg, stroke, 0xff)
	}
	draw.DrawMask(dst, b, image.NewUniform(c.ToRGBA()), image.Point{}, mask, b.Min, draw.Over)
}
