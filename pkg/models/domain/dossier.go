package domain

// ReportType selects which document schema applies to a dossier.
type ReportType string

const (
	ReportEDossier       ReportType = "E-DOSSIER"
	ReportInterrogation  ReportType = "INTERROGATION REPORT"
	ReportBailMonitoring ReportType = "BAIL MONITORING"
)

// ParseReportType validates a wire value against the known report types.
func ParseReportType(v string) (ReportType, bool) {
	switch t := ReportType(v); t {
	case ReportEDossier, ReportInterrogation, ReportBailMonitoring:
		return t, true
	}
	return "", false
}

// MediaKind identifies one of the growable media collections.
type MediaKind string

const (
	MediaPhoto MediaKind = "photo"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// PhotoSlot names one of the three fixed identification positions.
type PhotoSlot string

const (
	PhotoFront PhotoSlot = "p1"
	PhotoLeft  PhotoSlot = "p2"
	PhotoRight PhotoSlot = "p3"
)

// Photos holds the fixed identification slots. A nil slot is empty.
type Photos struct {
	P1 *string
	P2 *string
	P3 *string
}

// Get returns the slot content, or empty when unset or unknown.
func (p Photos) Get(slot PhotoSlot) string {
	var v *string
	switch slot {
	case PhotoFront:
		v = p.P1
	case PhotoLeft:
		v = p.P2
	case PhotoRight:
		v = p.P3
	}
	if v == nil {
		return ""
	}
	return *v
}

// BailEntry freezes the bail sub-fields at the moment of logging.
// Entries are immutable once appended to the history log.
type BailEntry struct {
	Date       string
	Name       string
	GPS        string
	Living     string
	Occupation string
	Activity   string
	Income     string
	Other      string
	Verifier   string
}

// Dossier is the full state of one in-progress record: the flat field
// mapping plus the media collections and the bail history log.
type Dossier struct {
	ReportType  ReportType
	Fields      map[string]string
	Photos      Photos
	ExtraPhotos []string
	Videos      []string
	Audio       []string
	BailHistory []BailEntry
}

// NewDossier returns an empty dossier ready for entry.
func NewDossier() Dossier {
	return Dossier{
		ReportType:  ReportEDossier,
		Fields:      map[string]string{},
		ExtraPhotos: []string{},
		Videos:      []string{},
		Audio:       []string{},
		BailHistory: []BailEntry{},
	}
}

// Field returns the value for key, or empty when absent.
func (d Dossier) Field(key string) string {
	return d.Fields[key]
}

// Media returns the collection for the given kind.
func (d Dossier) Media(kind MediaKind) []string {
	switch kind {
	case MediaPhoto:
		return d.ExtraPhotos
	case MediaVideo:
		return d.Videos
	case MediaAudio:
		return d.Audio
	}
	return nil
}

// Clone returns a deep copy so transitions can treat dossiers as values.
func (d Dossier) Clone() Dossier {
	out := d
	out.Fields = make(map[string]string, len(d.Fields))
	for k, v := range d.Fields {
		out.Fields[k] = v
	}
	out.ExtraPhotos = append([]string{}, d.ExtraPhotos...)
	out.Videos = append([]string{}, d.Videos...)
	out.Audio = append([]string{}, d.Audio...)
	out.BailHistory = append([]BailEntry{}, d.BailHistory...)
	out.Photos = clonePhotos(d.Photos)
	return out
}

func clonePhotos(p Photos) Photos {
	cp := func(v *string) *string {
		if v == nil {
			return nil
		}
		s := *v
		return &s
	}
	return Photos{P1: cp(p.P1), P2: cp(p.P2), P3: cp(p.P3)}
}
