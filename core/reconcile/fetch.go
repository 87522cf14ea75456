package reconcile

import (
	"context"

	"shadow-sync/core/apperror"
	"shadow-sync/core/env"
	"shadow-sync/core/shadow"
)

// FieldEnv is the reported key carrying a device's environment tag.
const FieldEnv = "env"

// Fetch reads the shadow for deviceID and rejects the request when its
// environment tag disagrees with the one the device reported.
func Fetch(ctx context.Context, store shadow.Store, deviceID, requestEnv string) (*shadow.Document, error) {
	doc, err := store.Get(ctx, deviceID)
	if err != nil {
		return nil, apperror.Store(err, "failed to read shadow %s", deviceID)
	}
	if err := CheckEnv(requestEnv, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CheckEnv passes when either side has no environment tag or both tags name
// the same environment.
func CheckEnv(requestEnv string, doc *shadow.Document) error {
	if requestEnv == "" {
		return nil
	}
	raw, ok := doc.ReportedValue(FieldEnv)
	if !ok {
		return nil
	}
	stored, ok := raw.(string)
	if !ok || stored == "" {
		return nil
	}
	if !env.InSameEnv(requestEnv, stored) {
		return apperror.Validation("environment mismatch: update targets %q but shadow reports %q", requestEnv, stored)
	}
	return nil
}
