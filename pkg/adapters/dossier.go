package adapters

import (
	"github.com/de-tools/dossier-desk/pkg/models/api"
	"github.com/de-tools/dossier-desk/pkg/models/domain"
	"github.com/de-tools/dossier-desk/pkg/models/store"
)

func MapDossierDomainToApi(d domain.Dossier) api.Dossier {
	out := api.Dossier{
		ReportType:  string(d.ReportType),
		Fields:      cloneFields(d.Fields),
		Photos:      api.Photos{P1: cloneStr(d.Photos.P1), P2: cloneStr(d.Photos.P2), P3: cloneStr(d.Photos.P3)},
		ExtraPhotos: cloneList(d.ExtraPhotos),
		Videos:      cloneList(d.Videos),
		Audio:       cloneList(d.Audio),
		BailHistory: []api.BailEntry{},
	}
	for _, e := range d.BailHistory {
		out.BailHistory = append(out.BailHistory, api.BailEntry(e))
	}
	return out
}

func MapDossierDomainToStore(d domain.Dossier) store.Snapshot {
	out := store.Snapshot{
		ReportType:  string(d.ReportType),
		Fields:      cloneFields(d.Fields),
		Photos:      store.PhotoSlots{P1: cloneStr(d.Photos.P1), P2: cloneStr(d.Photos.P2), P3: cloneStr(d.Photos.P3)},
		ExtraPhotos: cloneList(d.ExtraPhotos),
		Videos:      cloneList(d.Videos),
		Audio:       cloneList(d.Audio),
		BailHistory: []store.BailEntry{},
	}
	for _, e := range d.BailHistory {
		out.BailHistory = append(out.BailHistory, store.BailEntry(e))
	}
	return out
}

func MapSnapshotStoreToDomain(s store.Snapshot) domain.Dossier {
	out := domain.Dossier{
		ReportType:  domain.ReportType(s.ReportType),
		Fields:      cloneFields(s.Fields),
		Photos:      domain.Photos{P1: cloneStr(s.Photos.P1), P2: cloneStr(s.Photos.P2), P3: cloneStr(s.Photos.P3)},
		ExtraPhotos: cloneList(s.ExtraPhotos),
		Videos:      cloneList(s.Videos),
		Audio:       cloneList(s.Audio),
		BailHistory: []domain.BailEntry{},
	}
	for _, e := range s.BailHistory {
		out.BailHistory = append(out.BailHistory, domain.BailEntry(e))
	}
	return out
}

// cloneFields normalizes a nil mapping to empty so loaded snapshots behave
// like fresh sessions.
func cloneFields(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneList(in []string) []string {
	return append([]string{}, in...)
}

func cloneStr(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
