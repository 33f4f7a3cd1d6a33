package rebar

// ShapeColorStyle selects the bar's own display color instead of a
// fixed named or hex color.
const ShapeColorStyle = "shape color"

// ResolveColor resolves the stroke color for a bar under the given
// color style: ShapeColorStyle yields the bar's own color, any other
// value (a named color or "#rrggbb") passes through unchanged.
func ResolveColor(b Bar, style string) string {
	if style == ShapeColorStyle || style == "" {
		if c := b.Color(); c != "" {
			return c
		}
		return "#000000"
	}
	return style
}
