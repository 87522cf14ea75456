package shadow

import (
	"fmt"
	"reflect"
	"time"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/goccy/go-json"
)

type stateBody struct {
	Desired  map[string]any `json:"desired,omitempty"`
	Reported map[string]any `json:"reported,omitempty"`
}

// Apply merges patch into doc and returns the resulting document. doc may be
// nil for a device without a shadow. doc itself is not modified.
func Apply(doc *Document, patch Patch, now time.Time) (*Document, error) {
	var current stateBody
	if doc != nil {
		current = stateBody{Desired: doc.State.Desired, Reported: doc.State.Reported}
	}
	original, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shadow state: %w", err)
	}
	delta, err := json.Marshal(patch.state())
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}

	merged, err := jsonpatch.MergePatch(original, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to merge patch: %w", err)
	}

	var body stateBody
	if err := json.Unmarshal(merged, &body); err != nil {
		return nil, fmt.Errorf("failed to decode merged state: %w", err)
	}

	next := &Document{
		State: State{Desired: body.Desired, Reported: body.Reported},
	}
	if doc != nil {
		next.Metadata = doc.Metadata
		next.Version = doc.Version
	}
	next.Version++
	next.Timestamp = now.Unix()
	next.ClientToken = patch.ClientToken

	if patch.Desired != nil {
		next.Metadata.DesiredUpdatedAt = next.Timestamp
	}
	if patch.Reported != nil || patch.ClearReported {
		next.Metadata.ReportedUpdatedAt = next.Timestamp
	}
	next.State.Delta = ComputeDelta(next.State.Desired, next.State.Reported)
	return next, nil
}

// ComputeDelta returns the desired keys whose values differ from reported.
// Nested objects are compared key by key. It returns nil when the sections agree.
func ComputeDelta(desired, reported map[string]any) map[string]any {
	var delta map[string]any
	for k, want := range desired {
		have, ok := reported[k]
		if wantMap, isMap := want.(map[string]any); isMap && ok {
			if haveMap, isMap := have.(map[string]any); isMap {
				if sub := ComputeDelta(wantMap, haveMap); sub != nil {
					if delta == nil {
						delta = make(map[string]any)
					}
					delta[k] = sub
				}
				continue
			}
		}
		if ok && reflect.DeepEqual(want, have) {
			continue
		}
		if delta == nil {
			delta = make(map[string]any)
		}
		delta[k] = want
	}
	return delta
}
