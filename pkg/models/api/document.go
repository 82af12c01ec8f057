package api

type Document struct {
	Title      string         `json:"title"`
	PhotoPanel []PhotoBox     `json:"photo_panel,omitempty"`
	Sections   []SectionBlock `json:"sections"`
	Appendix   *Appendix      `json:"appendix,omitempty"`
	Galleries  []Gallery      `json:"galleries,omitempty"`
	History    []HistoryEntry `json:"history,omitempty"`
}

type PhotoBox struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

type SectionBlock struct {
	Number     int      `json:"number"`
	Label      string   `json:"label"`
	Group      bool     `json:"group"`
	HeaderRow  bool     `json:"header_row"`
	Value      string   `json:"value"`
	Rows       []SubRow `json:"rows,omitempty"`
	AvoidBreak bool     `json:"avoid_break"`
}

type SubRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Appendix struct {
	Text     string   `json:"text"`
	Exhibits []string `json:"exhibits"`
}

type Gallery struct {
	Title string   `json:"title"`
	Kind  string   `json:"kind"`
	Items []string `json:"items"`
}

type HistoryEntry struct {
	Number int       `json:"number"`
	Entry  BailEntry `json:"entry"`
}

type SchemaSection struct {
	Number    int              `json:"number"`
	Label     string           `json:"label"`
	Kind      string           `json:"kind"`
	HeaderRow bool             `json:"header_row"`
	Key       string           `json:"key,omitempty"`
	Subs      []SchemaSubField `json:"subs,omitempty"`
}

type SchemaSubField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
