package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/linekit"
	"github.com/gogpu/linekit/text"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

// errRejected is returned when the layout engine refuses the shaped lines.
var errRejected = errors.New("layout rejected the shaped lines")

// layoutFlags are the flags shared by layout and render.
type layoutFlags struct {
	config string
	size   float64
	filter string
	max    int
	angle  float64
	scale  float64
	wrap   float64
}

func (f *layoutFlags) register(cmd *cobra.Command, s settings) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "TOML layout configuration file")
	cmd.Flags().Float64VarP(&f.size, "size", "s", s.FontSize, "font size in pixels")
	cmd.Flags().StringVarP(&f.filter, "filter", "f", "", "character filter: none, letters, digits, alnum, symbols, letters+symbols, digits+symbols")
	cmd.Flags().IntVarP(&f.max, "max", "m", 0, "maximum visible glyphs per line (0 = unlimited)")
	cmd.Flags().Float64Var(&f.angle, "angle", 0, "rotation in degrees about the line center")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "uniform glyph scale (0 = unscaled)")
	cmd.Flags().Float64Var(&f.wrap, "wrap", 0, "wrap width in pixels (0 = no wrapping)")
}

// resolve loads the configuration file and applies the flags that were
// set explicitly on top of it.
func (f *layoutFlags) resolve(cmd *cobra.Command, a *app) (text.Config, error) {
	cfg, unknown, err := loadConfig(f.config)
	if err != nil {
		return text.Config{}, err
	}
	if len(unknown) > 0 {
		a.logger.Warn("ignoring unknown config keys", "keys", unknown)
	}

	flags := cmd.Flags()
	if flags.Changed("filter") {
		if cfg.Filter, err = text.ParseFilter(f.filter); err != nil {
			return text.Config{}, err
		}
	}
	if flags.Changed("max") {
		cfg.MaxVisible = f.max
	}
	if flags.Changed("angle") {
		cfg.Rotation.Angle = f.angle
	}
	if flags.Changed("scale") {
		cfg.Scale = linekit.Scale{X: f.scale, Y: f.scale}
	}
	if flags.Changed("wrap") {
		cfg.WrapWidth = f.wrap
	}
	return cfg, nil
}

func (a *app) layoutCommand() *cobra.Command {
	var flags layoutFlags
	cmd := &cobra.Command{
		Use:   "layout text...",
		Short: "Shape text and print the placed glyphs",
		Long: `Shape each argument as one line with Go Regular, lay the lines out
top to bottom and print every placed glyph.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, a)
			if err != nil {
				return err
			}
			lines, err := shapeLines(args, flags.size, 0, 0)
			if err != nil {
				return err
			}
			var sink text.Collector
			if !text.Process(lines, &sink, text.WithConfig(cfg), text.WithRenderer(measureOnly)) {
				return errRejected
			}
			printGlyphs(cmd.OutOrStdout(), sink.Glyphs)
			return nil
		},
	}
	flags.register(cmd, a.settings)
	return cmd
}

// shapeLines shapes every string as its own line, stacked from (x, y).
func shapeLines(strs []string, size, x, y float64) ([]*text.GlyphLine, error) {
	shaper, err := text.NewShaper(goregular.TTF)
	if err != nil {
		return nil, err
	}
	lines := make([]*text.GlyphLine, 0, len(strs))
	for _, s := range strs {
		line, err := shaper.Shape(s, size)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", s, err)
		}
		line.X, line.Y = x, y
		y += line.Height
		lines = append(lines, line)
	}
	return lines, nil
}

func printGlyphs(w io.Writer, glyphs []text.PlacedGlyph) {
	for _, g := range glyphs {
		mark := ""
		if g.Ellipsis {
			mark = " ellipsis"
		}
		fmt.Fprintf(w, "%d:%d %q x=%.2f y=%.2f%s\n", g.Line, g.Index, g.Glyph.Rune, g.Offset.X, g.Offset.Y, mark)
	}
}

// nopRenderer marks glyphs processed without rasterizing them.
type nopRenderer struct{}

func (nopRenderer) Refresh(g *text.Glyph) { g.Processed = true }
func (nopRenderer) Close() error          { return nil }

func measureOnly() (text.GlyphRenderer, error) {
	return nopRenderer{}, nil
}
