package store

// Snapshot is the serialized form of the entire dossier state. Saving writes
// it; loading fully replaces the live state with it.
type Snapshot struct {
	ReportType  string            `json:"reportType"`
	Fields      map[string]string `json:"fields"`
	Photos      PhotoSlots        `json:"photos"`
	ExtraPhotos []string          `json:"extraPhotos"`
	Videos      []string          `json:"videos"`
	Audio       []string          `json:"audio"`
	BailHistory []BailEntry       `json:"bailHistory"`
}

type PhotoSlots struct {
	P1 *string `json:"p1"`
	P2 *string `json:"p2"`
	P3 *string `json:"p3"`
}

type BailEntry struct {
	Date       string `json:"date"`
	Name       string `json:"name"`
	GPS        string `json:"gps"`
	Living     string `json:"living"`
	Occupation string `json:"occupation"`
	Activity   string `json:"activity"`
	Income     string `json:"income"`
	Other      string `json:"other"`
	Verifier   string `json:"verifier"`
}
