package desired

import (
	"context"

	"shadow-sync/core/apperror"
	"shadow-sync/core/logger"
	"shadow-sync/core/metrics"
	"shadow-sync/core/reconcile"
	"shadow-sync/core/schedule"
	"shadow-sync/core/shadow"
	"shadow-sync/core/utils"
	"shadow-sync/core/version"

	"go.uber.org/zap"
)

// Pipeline is the metrics label of this reconciler.
const Pipeline = "desired"

// Payload fields handled by the desired pipeline.
const (
	FieldDesiredVersion = "dsrdVrs"
	FieldRecurring      = "rcrEvntsCfg"
	FieldOneTime        = "oneEvntsCfg"
)

// Request is a desired-state update.
type Request struct {
	// DeviceID identifies the shadow (astId).
	DeviceID string `json:"astId"`
	// Env is the environment the caller targets. Empty falls back to the
	// configured default.
	Env         string `json:"env,omitempty"`
	ClientToken string `json:"clientToken,omitempty"`
	// DesiredVersion must equal the shadow's dsrdVrs once one exists.
	DesiredVersion *int `json:"dsrdVrs,omitempty"`
	// MsgData is the configuration to merge into the desired section.
	MsgData map[string]any `json:"msgData"`
}

// Reconciler applies desired-state updates to device shadows.
type Reconciler struct {
	store      shadow.Store
	normalizer schedule.Normalizer
	gate       version.Gate
	cfg        reconcile.Config
	logger     *zap.Logger
}

// NewReconciler creates a Reconciler.
func NewReconciler(store shadow.Store, normalizer schedule.Normalizer, cfg reconcile.Config, logger *zap.Logger) *Reconciler {
	cfg = cfg.Normalized()
	if normalizer == nil {
		normalizer = schedule.New(schedule.Options{TrimGrace: cfg.TrimGrace()})
	}
	return &Reconciler{
		store:      store,
		normalizer: normalizer,
		gate:       version.NewGate(cfg.MaxVersion),
		cfg:        cfg,
		logger:     logger,
	}
}

// Reconcile plans the update and writes it. It returns the merged shadow.
func (r *Reconciler) Reconcile(ctx context.Context, req Request) (*shadow.Document, *reconcile.Plan, error) {
	plan, err := r.Plan(ctx, req)
	if err != nil {
		reconcile.Record(Pipeline, nil, err)
		return nil, nil, err
	}
	doc, err := reconcile.Apply(ctx, r.store, plan)
	reconcile.Record(Pipeline, plan, err)
	if err != nil {
		logger.WithDevice(r.logger, req.DeviceID).Error("Failed to write desired state", zap.Error(err))
		return nil, plan, err
	}
	return doc, plan, nil
}

// Plan builds the patch for req without writing it.
func (r *Reconciler) Plan(ctx context.Context, req Request) (plan *reconcile.Plan, err error) {
	stage := reconcile.StageValidate
	l := logger.WithDevice(r.logger, req.DeviceID)
	defer func() { reconcile.LogFailure(l, Pipeline, stage, err) }()
	defer reconcile.Guard(&stage, &err)

	if req.DeviceID == "" {
		return nil, apperror.Validation("device id (astId) is required")
	}
	if req.MsgData == nil {
		return nil, apperror.Validation("msgData is required")
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

	stage = reconcile.StageVersionCheck
	next, err := r.checkVersion(doc, req.DesiredVersion)
	if err != nil {
		return nil, err
	}

	payload := utils.CloneMap(req.MsgData)
	delete(payload, FieldDesiredVersion)

	stage = reconcile.StageNormalize
	recurring, hasRecurring, err := r.normalizeRecurring(payload)
	if err != nil {
		return nil, err
	}
	oneTime, hasOneTime, err := r.normalizeOneTime(payload)
	if err != nil {
		return nil, err
	}

	stage = reconcile.StageDiff
	var skipped []string
	if hasRecurring {
		if r.unchanged(doc, FieldRecurring, recurring, r.normalizer.CompareRecurringArrays) {
			delete(payload, FieldRecurring)
			skipped = append(skipped, FieldRecurring)
		} else {
			payload[FieldRecurring] = schedule.ToJSON(recurring)
		}
	}
	if hasOneTime {
		oneTime, keep := r.diffOneTime(doc, oneTime)
		if keep {
			payload[FieldOneTime] = schedule.ToJSON(oneTime)
		} else {
			delete(payload, FieldOneTime)
			skipped = append(skipped, FieldOneTime)
		}
	}
	for _, field := range skipped {
		metrics.RecordUnchanged(field)
		l.Info("Dropped unchanged field from desired patch", zap.String("field", field))
	}

	stage = reconcile.StagePatch
	payload[FieldDesiredVersion] = next
	l.Debug("Desired patch built", zap.Int("version", next), zap.Strings("skipped", skipped))

	return &reconcile.Plan{
		DeviceID:       req.DeviceID,
		Outcome:        reconcile.OutcomeWrite,
		Patch:          shadow.Patch{Desired: payload, ClientToken: req.ClientToken},
		Skipped:        skipped,
		DesiredVersion: next,
		Current:        doc,
	}, nil
}

func (r *Reconciler) checkVersion(doc *shadow.Document, supplied *int) (int, error) {
	var current *int
	if raw, ok := doc.DesiredValue(FieldDesiredVersion); ok {
		// A corrupt stored version would let any writer through; refuse instead.
		v, err := reconcile.IntField("stored "+FieldDesiredVersion, raw, r.gate.Max())
		if err != nil {
			return 0, err
		}
		current = v
	}
	if supplied != nil && (*supplied < 0 || *supplied > r.gate.Max()) {
		return 0, apperror.Validation("%s must be between 0 and %d, got %d", FieldDesiredVersion, r.gate.Max(), *supplied)
	}
	return r.gate.Advance(current, supplied)
}

// normalizeRecurring coerces day lists and sorts the recurring array. A
// null value is passed through untouched and clears the stored array.
func (r *Reconciler) normalizeRecurring(payload map[string]any) ([]schedule.Event, bool, error) {
	raw, ok := payload[FieldRecurring]
	if !ok || raw == nil {
		return nil, false, nil
	}
	events, err := schedule.AsEvents(FieldRecurring, raw)
	if err != nil {
		return nil, false, err
	}
	for _, ev := range events {
		if ev == nil {
			continue
		}
		days, present := ev[schedule.FieldDays]
		if !present {
			continue
		}
		normalized, err := r.normalizer.NormalizeDaysOfWeek(days)
		if err != nil {
			return nil, false, err
		}
		ev[schedule.FieldDays] = normalized
	}
	schedule.SortFunc(events, r.normalizer.CompareRecurring)
	return events, true, nil
}

func (r *Reconciler) normalizeOneTime(payload map[string]any) ([]schedule.Event, bool, error) {
	raw, ok := payload[FieldOneTime]
	if !ok || raw == nil {
		return nil, false, nil
	}
	events, err := schedule.AsEvents(FieldOneTime, raw)
	if err != nil {
		return nil, false, err
	}
	schedule.SortFunc(events, r.normalizer.CompareOneTime)
	return events, true, nil
}

// unchanged reports whether incoming equals the array stored under field in
// the desired section. A missing or malformed stored array never matches.
func (r *Reconciler) unchanged(doc *shadow.Document, field string, incoming []schedule.Event, cmp func(a, b []schedule.Event) int) bool {
	raw, ok := doc.DesiredValue(field)
	if !ok || raw == nil {
		return false
	}
	stored, err := schedule.AsEvents(field, raw)
	if err != nil {
		return false
	}
	return cmp(incoming, stored) == 0
}

// diffOneTime decides what to send for the one-time array. Changed arrays are
// trimmed of expired events; keep is false when nothing needs writing.
func (r *Reconciler) diffOneTime(doc *shadow.Document, incoming []schedule.Event) ([]schedule.Event, bool) {
	raw, stored := doc.DesiredValue(FieldOneTime)
	if stored && raw != nil {
		if r.unchanged(doc, FieldOneTime, incoming, r.normalizer.CompareOneTimeArrays) {
			return nil, false
		}
		return r.normalizer.TrimOneTime(incoming), true
	}
	trimmed := r.normalizer.TrimOneTime(incoming)
	if r.normalizer.CompareOneTimeArrays(trimmed, nil) == 0 {
		return nil, false
	}
	return trimmed, true
}
