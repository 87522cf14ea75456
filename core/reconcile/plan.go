package reconcile

import (
	"context"
	"fmt"

	"shadow-sync/core/apperror"
	"shadow-sync/core/metrics"
	"shadow-sync/core/shadow"

	"go.uber.org/zap"
)

// Stage names a step of a reconcile pipeline. Used in logs and panic reports.
type Stage string

const (
	StageValidate        Stage = "validate"
	StageFetch           Stage = "fetch"
	StageEnvCheck        Stage = "env_check"
	StageVersionCheck    Stage = "version_check"
	StageNormalize       Stage = "normalize"
	StageDiff            Stage = "diff"
	StageNormalizeInput  Stage = "normalize_input"
	StageTranslateLegacy Stage = "translate_legacy"
	StagePositional      Stage = "positional_arrays"
	StagePatch           Stage = "patch"
	StageWrite           Stage = "write"
)

// Outcome is what applying a plan does to the shadow.
type Outcome string

const (
	// OutcomeWrite merges the patch into the shadow.
	OutcomeWrite Outcome = "write"
	// OutcomeReset wipes the reported section.
	OutcomeReset Outcome = "reset"
	// OutcomeNoop performs no write.
	OutcomeNoop Outcome = "noop"
)

// Plan is a fully built reconcile result waiting to be written.
type Plan struct {
	DeviceID string       `json:"deviceId,omitempty"`
	Outcome  Outcome      `json:"outcome"`
	Patch    shadow.Patch `json:"patch"`
	// Skipped lists payload fields dropped because they match the shadow.
	Skipped []string `json:"skipped,omitempty"`
	// DesiredVersion is the desired version written (desired pipeline) or
	// acknowledged by the device (reported pipeline).
	DesiredVersion int `json:"desiredVersion,omitempty"`
	// ReportedVersion is the device-supplied reported version.
	ReportedVersion int `json:"reportedVersion,omitempty"`
	// Message explains a no-op plan.
	Message string `json:"message,omitempty"`
	// Current is the shadow the plan was built against, nil when the device
	// had none or no read was needed.
	Current *shadow.Document `json:"-"`
}

// Apply writes plan to store with a single update. A no-op plan writes
// nothing and returns the document it was built against.
func Apply(ctx context.Context, store shadow.Store, plan *Plan) (*shadow.Document, error) {
	if plan == nil {
		return nil, apperror.Internal(fmt.Errorf("nil plan"), "nothing to apply")
	}
	if plan.Outcome == OutcomeNoop {
		return plan.Current, nil
	}
	doc, err := store.Update(ctx, plan.DeviceID, plan.Patch)
	if err != nil {
		return nil, apperror.Store(err, "failed to write shadow %s", plan.DeviceID)
	}
	return doc, nil
}

// Record counts one finished reconcile call for pipeline.
func Record(pipeline string, plan *Plan, err error) {
	switch {
	case err != nil && apperror.KindOf(err) == apperror.KindValidation:
		metrics.RecordReconcile(pipeline, metrics.OutcomeRejected)
	case err != nil:
		metrics.RecordReconcile(pipeline, metrics.OutcomeFailed)
	case plan == nil:
	case plan.Outcome == OutcomeReset:
		metrics.RecordReconcile(pipeline, metrics.OutcomeReset)
	case plan.Outcome == OutcomeNoop:
		metrics.RecordReconcile(pipeline, metrics.OutcomeNoop)
	default:
		metrics.RecordReconcile(pipeline, metrics.OutcomeWritten)
	}
}

// Guard turns a panic in stage into an InternalError stored in *err.
// Use as: defer reconcile.Guard(&stage, &err).
func Guard(stage *Stage, err *error) {
	if r := recover(); r != nil {
		*err = apperror.Internal(fmt.Errorf("%v", r), "unexpected failure during %s", *stage)
	}
}

// LogFailure logs a failed plan: rejections at info, everything else at error.
// A nil err logs nothing.
func LogFailure(l *zap.Logger, pipeline string, stage Stage, err error) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("pipeline", pipeline),
		zap.String("stage", string(stage)),
		zap.Error(err),
	}
	if apperror.KindOf(err) == apperror.KindValidation {
		l.Info("Update rejected", fields...)
		return
	}
	l.Error("Update failed", fields...)
}
