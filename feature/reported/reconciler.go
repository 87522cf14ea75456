package reported

import (
	"context"

	"shadow-sync/core/apperror"
	"shadow-sync/core/logger"
	"shadow-sync/core/reconcile"
	"shadow-sync/core/schedule"
	"shadow-sync/core/shadow"
	"shadow-sync/core/utils"

	"go.uber.org/zap"
)

// Pipeline is the metrics label of this reconciler.
const Pipeline = "reported"

// Reconciler applies reported-state updates to device shadows.
type Reconciler struct {
	store      shadow.Store
	normalizer schedule.Normalizer
	cfg        reconcile.Config
	logger     *zap.Logger
}

// NewReconciler creates a Reconciler. A nil normalizer uses the default
// schedule library.
func NewReconciler(store shadow.Store, normalizer schedule.Normalizer, cfg reconcile.Config, logger *zap.Logger) *Reconciler {
	cfg = cfg.Normalized()
	if normalizer == nil {
		normalizer = schedule.New(schedule.Options{TrimGrace: cfg.TrimGrace()})
	}
	return &Reconciler{store: store, normalizer: normalizer, cfg: cfg, logger: logger}
}

// Reconcile plans the update and writes it. No-op messages return a nil
// document and a plan carrying the explanation.
func (r *Reconciler) Reconcile(ctx context.Context, req Request) (*shadow.Document, *reconcile.Plan, error) {
	plan, err := r.Plan(ctx, req)
	if err != nil {
		reconcile.Record(Pipeline, nil, err)
		return nil, nil, err
	}
	doc, err := reconcile.Apply(ctx, r.store, plan)
	reconcile.Record(Pipeline, plan, err)
	if err != nil {
		logger.WithDevice(r.logger, req.DeviceID).Error("Failed to write reported state", zap.Error(err))
		return nil, plan, err
	}
	return doc, plan, nil
}

// Plan builds the patch for req without writing it.
func (r *Reconciler) Plan(ctx context.Context, req Request) (plan *reconcile.Plan, err error) {
	stage := reconcile.StageNormalizeInput
	l := logger.WithDevice(r.logger, req.DeviceID)
	defer func() { reconcile.LogFailure(l, Pipeline, stage, err) }()
	defer reconcile.Guard(&stage, &err)

	msg := req.MsgData
	if msg == nil {
		inferred, ok := req.inferMsgData()
		if !ok {
			message := MessageNoConfig
			if req.isNormalOperation() {
				message = MessageNormalOperation
			}
			l.Debug("Reported message carries no configuration", zap.String("message", message))
			return &reconcile.Plan{DeviceID: req.DeviceID, Outcome: reconcile.OutcomeNoop, Message: message}, nil
		}
		msg = inferred
	}
	payload := utils.CloneMap(msg)

	stage = reconcile.StageValidate
	if req.DeviceID == "" {
		return nil, apperror.Validation("device id (astId) is required")
	}
	reportedVersion, err := r.reportedVersion(req, payload)
	if err != nil {
		return nil, err
	}
	desiredVersion, desiredErr := r.desiredVersion(req, payload)
	if desiredErr != nil && reportedVersion != 0 {
		return nil, desiredErr
	}

	stage = reconcile.StageFetch
	requestEnv := req.Env
	if requestEnv == "" {
		requestEnv = r.cfg.DefaultEnv
	}
	doc, err := reconcile.Fetch(ctx, r.store, req.DeviceID, requestEnv)
	if err != nil {
		return nil, err
	}

	// The reported version is never gated: confirmations may arrive late or
	// out of order and are accepted as sent.
	if reportedVersion == 0 {
		l.Info("Device reported a reset, clearing reported state")
		if desiredErr != nil {
			l.Debug("Ignoring desired version on reset", zap.Error(desiredErr))
		}
		return &reconcile.Plan{
			DeviceID: req.DeviceID,
			Outcome:  reconcile.OutcomeReset,
			Patch: shadow.Patch{
				Desired:       map[string]any{FieldReportedVersion: 0},
				ClearReported: true,
				ClientToken:   req.ClientToken,
			},
			DesiredVersion: desiredVersion,
			Current:        doc,
		}, nil
	}

	stage = reconcile.StageTranslateLegacy
	if err := r.translateTimezone(payload); err != nil {
		return nil, err
	}

	stage = reconcile.StagePositional
	if err := r.overlay(doc, payload, FieldRecurring, FieldRecurringCount, r.normalizer.CompareRecurring); err != nil {
		return nil, err
	}
	if err := r.overlay(doc, payload, FieldOneTime, FieldOneTimeCount, r.normalizer.CompareOneTime); err != nil {
		return nil, err
	}
	for _, field := range wireOnly {
		delete(payload, field)
	}

	stage = reconcile.StagePatch
	l.Debug("Reported patch built",
		zap.Int("version", reportedVersion),
		zap.Int("desired_version", desiredVersion),
	)
	return &reconcile.Plan{
		DeviceID: req.DeviceID,
		Outcome:  reconcile.OutcomeWrite,
		Patch: shadow.Patch{
			Desired:     map[string]any{FieldReportedVersion: reportedVersion},
			Reported:    payload,
			ClientToken: req.ClientToken,
		},
		DesiredVersion:  desiredVersion,
		ReportedVersion: reportedVersion,
		Current:         doc,
	}, nil
}

// reportedVersion resolves rptdVrs. The top-level field wins over msgData and
// both end up holding the same value. Any whole number is accepted.
func (r *Reconciler) reportedVersion(req Request, payload map[string]any) (int, error) {
	var raw any = payload[FieldReportedVersion]
	if req.ReportedVersion != nil {
		raw = *req.ReportedVersion
	}
	if raw == nil {
		return 0, apperror.Validation("%s is required", FieldReportedVersion)
	}
	v, ok := utils.ToInt(raw)
	if !ok {
		return 0, apperror.Validation("%s must be a whole number, got %v", FieldReportedVersion, raw)
	}
	payload[FieldReportedVersion] = v
	return v, nil
}

// desiredVersion resolves the desired version the device acknowledges. The
// msgData value wins over the top-level field. It is removed from the payload
// so it never lands in the reported section.
func (r *Reconciler) desiredVersion(req Request, payload map[string]any) (int, error) {
	raw, inPayload := payload[FieldDesiredVersion]
	delete(payload, FieldDesiredVersion)
	if !inPayload || raw == nil {
		if req.DesiredVersion == nil {
			return 0, nil
		}
		raw = *req.DesiredVersion
	}
	v, err := reconcile.IntField(FieldDesiredVersion, raw, r.cfg.MaxVersion)
	if err != nil || v == nil {
		return 0, err
	}
	return *v, nil
}

// translateTimezone converts a legacy hour offset in opsCfg into minutes.
func (r *Reconciler) translateTimezone(payload map[string]any) error {
	raw, ok := payload[FieldOpsConfig]
	if !ok || raw == nil {
		return nil
	}
	ops, ok := raw.(map[string]any)
	if !ok {
		return apperror.Validation("%s must be an object, got %T", FieldOpsConfig, raw)
	}
	offset, ok := ops[FieldTimezoneOffset]
	if !ok {
		return nil
	}
	if converted, changed := schedule.NormalizeTimezoneOffset(offset); changed {
		ops[FieldTimezoneOffset] = converted
	}
	return nil
}
