package api

type Dossier struct {
	ReportType  string            `json:"report_type"`
	Fields      map[string]string `json:"fields"`
	Photos      Photos            `json:"photos"`
	ExtraPhotos []string          `json:"extra_photos"`
	Videos      []string          `json:"videos"`
	Audio       []string          `json:"audio"`
	BailHistory []BailEntry       `json:"bail_history"`
}

type Photos struct {
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

type Session struct {
	ID string `json:"id"`
}

type FieldUpdate struct {
	Value string `json:"value"`
}

type ReportTypeUpdate struct {
	ReportType string `json:"report_type"`
}

type FieldsReplace struct {
	Fields map[string]string `json:"fields"`
}

type PhotoUpdate struct {
	Data string `json:"data"`
}

type MediaBatch struct {
	Items []string `json:"items"`
}

type TranslateRequest struct {
	TargetLang string `json:"target_lang"`
}

type GPSFix struct {
	Location string `json:"location"`
}

type Error struct {
	Error string `json:"error"`
}
