package domain

// Document is the derived, renderable form of one dossier.
type Document struct {
	Title      string
	PhotoPanel []PhotoBox     // fixed identification slots; empty for bail reports
	Sections   []SectionBlock // numbered rows in schema order
	Appendix   *Appendix      // standard reports only
	Galleries  []Gallery      // repeated media blocks, list order
	History    []HistoryEntry // bail reports only, newest first
}

// PhotoBox is one fixed identification position in the photo panel.
type PhotoBox struct {
	Label string
	Data  string // empty when the slot is unset
}

// SectionBlock is one numbered section: a single value row, or a group of
// sub rows (optionally under a header row). The block renders as one atomic
// unit that must not split across a page boundary.
type SectionBlock struct {
	Number     int
	Label      string
	Group      bool
	HeaderRow  bool // groups that show a header row above their sub rows
	Value      string
	Rows       []SubRow
	AvoidBreak bool
}

// SubRow is one indented sub-field row within a group section.
type SubRow struct {
	Label string
	Value string
}

// Appendix carries the free-text annex and its exhibit gallery.
type Appendix struct {
	Text     string
	Exhibits []string
}

// Gallery is one media collection rendered as repeated blocks.
type Gallery struct {
	Title string
	Kind  MediaKind
	Items []string
}

// HistoryEntry is one logged verification as shown in the history block.
// Number counts down so the newest entry carries the highest number.
type HistoryEntry struct {
	Number int
	Entry  BailEntry
}
