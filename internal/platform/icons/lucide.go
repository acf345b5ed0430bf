package icons

const lucideSymbolPrefix = "lucide-"

// LucideName returns the Lucide glyph name for a core icon identifier.
func LucideName(id ID) (string, bool) {
	def, ok := catalogByID[id]
	if !ok {
		return "", false
	}
	return def.Lucide, true
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID
// is unknown.
func LucideNameOrDefault(id ID) string {
	if def, ok := catalogByID[id]; ok {
		return def.Lucide
	}
	return catalogByID[Generic].Lucide
}

// LucideSymbolID returns the sprite symbol ID for a Lucide glyph name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for the bundled Lucide glyphs.
func LucideSprite() string {
	return lucideSprite
}
