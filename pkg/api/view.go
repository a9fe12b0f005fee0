package api

// ViewMode selects which audience a rendered document targets.
type ViewMode string

const (
	ViewDeveloper ViewMode = "developer"
	ViewRecruiter ViewMode = "recruiter"
	ViewClient    ViewMode = "client"
)

// ViewModes lists all modes in cycle order for the preview TUI.
var ViewModes = []ViewMode{ViewDeveloper, ViewRecruiter, ViewClient}

// ParseViewMode parses a string like "developer", "recruiter", "client".
func ParseViewMode(s string) (ViewMode, bool) {
	switch s {
	case "developer", "dev":
		return ViewDeveloper, true
	case "recruiter":
		return ViewRecruiter, true
	case "client":
		return ViewClient, true
	default:
		return ViewDeveloper, false
	}
}

// visibility maps each kind to the modes it appears in. Kinds missing from
// the map are visible everywhere.
var visibility = map[Kind]map[ViewMode]bool{
	KindHeader:       all(),
	KindText:         all(),
	KindBanner:       all(),
	KindQuote:        all(),
	KindImage:        all(),
	KindDivider:      all(),
	KindSocials:      all(),
	KindSpacer:       all(),
	KindList:         all(),
	KindBadge:        modes(ViewDeveloper, ViewRecruiter),
	KindTechStack:    modes(ViewDeveloper, ViewRecruiter),
	KindStats:        modes(ViewDeveloper, ViewRecruiter),
	KindCodeBlock:    modes(ViewDeveloper),
	KindTable:        modes(ViewDeveloper),
	KindInstallation: modes(ViewDeveloper),
}

func all() map[ViewMode]bool {
	return modes(ViewDeveloper, ViewRecruiter, ViewClient)
}

func modes(ms ...ViewMode) map[ViewMode]bool {
	out := make(map[ViewMode]bool, len(ms))
	for _, m := range ms {
		out[m] = true
	}
	return out
}

// VisibleIn reports whether kind appears in mode.
func VisibleIn(kind Kind, mode ViewMode) bool {
	set, ok := visibility[kind]
	if !ok {
		return true
	}
	return set[mode]
}

// Filter returns the elements visible in mode, order preserved.
// Filtering an already-filtered list with the same mode is a no-op.
func Filter(elements []Element, mode ViewMode) []Element {
	out := make([]Element, 0, len(elements))
	for _, e := range elements {
		if VisibleIn(e.Kind, mode) {
			out = append(out, e)
		}
	}
	return out
}
