package shadow

import (
	"shadow-sync/core/utils"

	"github.com/goccy/go-json"
)

// Section names inside the document state.
const (
	SectionDesired  = "desired"
	SectionReported = "reported"
)

// State holds the two peer sections and the delta computed between them.
type State struct {
	Desired  map[string]any `json:"desired,omitempty"`
	Reported map[string]any `json:"reported,omitempty"`
	// Delta lists desired keys whose value differs from reported.
	Delta map[string]any `json:"delta,omitempty"`
}

// Metadata records when each section last changed, in epoch seconds.
type Metadata struct {
	DesiredUpdatedAt  int64 `json:"desiredUpdatedAt,omitempty"`
	ReportedUpdatedAt int64 `json:"reportedUpdatedAt,omitempty"`
}

// Document is a device shadow as returned by a Store.
type Document struct {
	State    State    `json:"state"`
	Metadata Metadata `json:"metadata"`
	// Version is the store's own document revision, incremented on every
	// update. It is unrelated to dsrdVrs and rptdVrs.
	Version     int64  `json:"version"`
	Timestamp   int64  `json:"timestamp"`
	ClientToken string `json:"clientToken,omitempty"`
}

// Patch is a partial update of a shadow.
type Patch struct {
	Desired  map[string]any
	Reported map[string]any
	// ClearReported wipes the reported section. Reported is ignored when set.
	ClearReported bool
	ClientToken   string
}

// IsEmpty reports whether the patch changes no section.
func (p Patch) IsEmpty() bool {
	return p.Desired == nil && p.Reported == nil && !p.ClearReported
}

// state returns the merge patch applied to the document state.
func (p Patch) state() map[string]any {
	state := make(map[string]any, 2)
	if p.Desired != nil {
		state[SectionDesired] = p.Desired
	}
	if p.ClearReported {
		state[SectionReported] = nil
	} else if p.Reported != nil {
		state[SectionReported] = p.Reported
	}
	return state
}

// MarshalJSON renders the patch in its wire form:
// {"state":{"desired":{...},"reported":{...}|null},"clientToken":"..."}.
func (p Patch) MarshalJSON() ([]byte, error) {
	body := map[string]any{"state": p.state()}
	if p.ClientToken != "" {
		body["clientToken"] = p.ClientToken
	}
	return json.Marshal(body)
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.State = State{
		Desired:  utils.CloneMap(d.State.Desired),
		Reported: utils.CloneMap(d.State.Reported),
		Delta:    utils.CloneMap(d.State.Delta),
	}
	return &out
}

// DesiredValue returns a key from the desired section of doc, tolerating a nil doc.
func (d *Document) DesiredValue(key string) (any, bool) {
	if d == nil || d.State.Desired == nil {
		return nil, false
	}
	v, ok := d.State.Desired[key]
	return v, ok
}

// ReportedValue returns a key from the reported section of doc, tolerating a nil doc.
func (d *Document) ReportedValue(key string) (any, bool) {
	if d == nil || d.State.Reported == nil {
		return nil, false
	}
	v, ok := d.State.Reported[key]
	return v, ok
}

func decodeDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
