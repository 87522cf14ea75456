package shadow

import (
	"context"

	"shadow-sync/core/apperror"
	"shadow-sync/core/shadow"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service reads shadows and triggers delta publication.
type Service struct {
	store  shadow.Store
	sf     singleflight.Group
	logger *zap.Logger
}

// NewService creates a new shadow service.
func NewService(store shadow.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the shadow of deviceID. Simultaneous calls for the same device
// are collapsed into a single read and each caller gets its own copy. The
// shared read is not cancelled when one caller goes away.
func (s *Service) Get(ctx context.Context, deviceID string) (*shadow.Document, error) {
	if deviceID == "" {
		return nil, apperror.Validation("device id is required")
	}
	readCtx := context.WithoutCancel(ctx)
	result, err, shared := s.sf.Do(deviceID, func() (interface{}, error) {
		return s.store.Get(readCtx, deviceID)
	})
	if err != nil {
		return nil, apperror.Store(err, "failed to read shadow %s", deviceID)
	}
	doc, _ := result.(*shadow.Document)
	if doc == nil {
		return nil, apperror.NotFound("no shadow for device %s", deviceID)
	}
	if shared {
		doc = doc.Clone()
	}
	return doc, nil
}

// TriggerDelta re-publishes the pending delta of deviceID and returns the
// updated document with the client token used.
func (s *Service) TriggerDelta(ctx context.Context, deviceID, clientToken string) (*shadow.Document, string, error) {
	doc, token, err := shadow.TriggerDelta(ctx, s.store, deviceID, clientToken)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindValidation {
			return nil, token, err
		}
		return nil, token, apperror.Store(err, "failed to trigger delta for %s", deviceID)
	}
	s.logger.Debug("Delta triggered",
		zap.String("device_id", deviceID),
		zap.String("client_token", token),
		zap.Int64("version", doc.Version),
	)
	return doc, token, nil
}
