package fractree

// renderMotif draws one visual unit for index idx at (x, y). Glyph mode
// centers the motif string on the point at font size size; shape mode fills
// a palette circle whose diameter is size.
func renderMotif(s Surface, cfg Config, idx int, x, y, size float64) error {
	if cfg.UseMotifs {
		glyph := FallbackMotif
		if len(cfg.Motifs) > 0 {
			glyph = cfg.Motifs[wrapIndex(idx, len(cfg.Motifs))]
		}
		return surfaceErr("glyph", s.DrawGlyph(glyph, x, y, size, cfg.Foreground))
	}
	return surfaceErr("circle", s.FillCircle(x, y, size/2, PaletteColor(idx)))
}
