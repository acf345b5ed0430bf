package icons

// ID identifies a core icon independent of the rendering theme.
type ID string

const (
	Generic     ID = "generic"
	Notice      ID = "notice"
	Court       ID = "court"
	Legislation ID = "legislation"
	Property    ID = "property"
	Arrears     ID = "arrears"
	Deadline    ID = "deadline"
	Calendar    ID = "calendar"
	Landlords   ID = "landlords"
	Shield      ID = "shield"
	Check       ID = "check"
	Warning     ID = "warning"
	Question    ID = "question"
	Guide       ID = "guide"
	Resume      ID = "resume"
	Forward     ID = "forward"
	Mail        ID = "mail"
	Lock        ID = "lock"
	Download    ID = "download"
	LogOut      ID = "log-out"
)

// Definition describes a core icon entry.
type Definition struct {
	ID     ID
	Label  string // accessible name announced by screen readers
	Lucide string // glyph name in the bundled Lucide sprite
}

var catalog = []Definition{
	{ID: Generic, Label: "Decoration", Lucide: "sparkle"},
	{ID: Notice, Label: "Eviction notice", Lucide: "file-text"},
	{ID: Court, Label: "Court", Lucide: "gavel"},
	{ID: Legislation, Label: "Legislation", Lucide: "landmark"},
	{ID: Property, Label: "Property", Lucide: "house"},
	{ID: Arrears, Label: "Rent arrears", Lucide: "banknote"},
	{ID: Deadline, Label: "Deadline", Lucide: "alarm-clock"},
	{ID: Calendar, Label: "Calendar", Lucide: "calendar-days"},
	{ID: Landlords, Label: "Landlords", Lucide: "users"},
	{ID: Shield, Label: "Protection", Lucide: "shield-check"},
	{ID: Check, Label: "Included", Lucide: "circle-check"},
	{ID: Warning, Label: "Warning", Lucide: "triangle-alert"},
	{ID: Question, Label: "Question", Lucide: "circle-help"},
	{ID: Guide, Label: "Guide", Lucide: "book-open"},
	{ID: Resume, Label: "Resume", Lucide: "rotate-ccw"},
	{ID: Forward, Label: "Continue", Lucide: "arrow-right"},
	{ID: Mail, Label: "Email", Lucide: "mail"},
	{ID: Lock, Label: "Secure", Lucide: "lock"},
	{ID: Download, Label: "Download", Lucide: "download"},
	{ID: LogOut, Label: "Sign out", Lucide: "log-out"},
}

var catalogByID = func() map[ID]Definition {
	m := make(map[ID]Definition, len(catalog))
	for _, def := range catalog {
		m[def.ID] = def
	}
	return m
}()

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the catalog entry for an icon identifier.
func Lookup(id ID) (Definition, bool) {
	def, ok := catalogByID[id]
	return def, ok
}

// Label returns the accessible name for an icon, falling back to the
// generic entry for unknown identifiers.
func Label(id ID) string {
	if def, ok := catalogByID[id]; ok {
		return def.Label
	}
	return catalogByID[Generic].Label
}
