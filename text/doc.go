// Package text lays out lines of shaped glyphs for rasterization.
//
// The pipeline has three stages:
//
//   - Shaper: turns a string into a GlyphLine (go-text/typesetting HarfBuzz)
//   - Process: filters, truncates, wraps and transforms glyphs line by line
//   - Sink: receives the finished batch of PlacedGlyph values in one call
//
// Glyph outlines are produced lazily by a GlyphRenderer obtained from a
// RendererFactory at most once per Process call and closed before Process
// returns.
//
// # Example usage
//
//	shaper, err := text.NewShaper(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	line, err := shaper.Shape("Hello, 42!", 24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	line.X, line.Y = 10, 10
//
//	text.ProcessLine(line, text.SinkFunc(func(glyphs []text.PlacedGlyph) {
//	    for _, g := range glyphs {
//	        fmt.Printf("%q at %v\n", g.Glyph.Rune, g.Offset)
//	    }
//	}),
//	    text.WithFilter(text.FilterLettersOnly),
//	    text.WithMaxVisible(5),
//	    text.WithRotation(linekit.RotationOf(15)),
//	)
//
// Configuration is resolved once per call; the caller's Rotation and Scale
// values are never modified.
package text
