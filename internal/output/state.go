package output

// GraphicState memoises the last emitted dash/cap/colour/gray settings
// so a backend can skip redundant state-change operators
// (spec.md §4.10: "memoisation so that the emitted output omits
// redundant state changes").
type GraphicState struct {
	haveDash    bool
	dash, gap   int32
	haveCaps    bool
	caps        int
	haveColour  bool
	colour      RGB
	haveGray    bool
	gray        int32
}

// SetDash reports whether (dash, gap) differs from the last call and
// records it as current.
func (g *GraphicState) SetDash(dash, gap int32) bool {
	if g.haveDash && g.dash == dash && g.gap == gap {
		return false
	}
	g.haveDash, g.dash, g.gap = true, dash, gap
	return true
}

// SetCapAndJoin reports whether caps differs from the last call.
func (g *GraphicState) SetCapAndJoin(caps int) bool {
	if g.haveCaps && g.caps == caps {
		return false
	}
	g.haveCaps, g.caps = true, caps
	return true
}

// SetColour reports whether c differs from the last colour set (by
// either SetColour or SetGray).
func (g *GraphicState) SetColour(c RGB) bool {
	if g.haveColour && !g.haveGray && g.colour == c {
		return false
	}
	g.haveColour, g.haveGray, g.colour = true, false, c
	return true
}

// SetGray reports whether g differs from the last gray/colour set.
func (g *GraphicState) SetGray(v int32) bool {
	if g.haveGray && g.gray == v {
		return false
	}
	g.haveGray, g.haveColour, g.gray = true, false, v
	return true
}

// GetColour returns the last colour set via SetColour (SetGray sets a
// grayscale RGB with all channels equal).
func (g *GraphicState) GetColour() RGB {
	if g.haveGray {
		return RGB{g.gray, g.gray, g.gray}
	}
	return g.colour
}
