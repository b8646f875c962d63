package text

// Sink receives the finished layout batch.
// Deliver is called exactly once per successful Process call, possibly
// with an empty batch. The slice is owned by the sink.
type Sink interface {
	Deliver(glyphs []PlacedGlyph)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(glyphs []PlacedGlyph)

// Deliver implements Sink.
func (f SinkFunc) Deliver(glyphs []PlacedGlyph) {
	f(glyphs)
}

// Collector is a Sink that keeps the last delivered batch.
type Collector struct {
	Glyphs []PlacedGlyph
	Calls  int
}

// Deliver implements Sink.
func (c *Collector) Deliver(glyphs []PlacedGlyph) {
	c.Glyphs = glyphs
	c.Calls++
}
