// ABOUTME: Manager orchestrating the public operation surface over the
// ABOUTME: registry, unit table, query builder, bridge, and normalizer.
package manager

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Kayz-mann/healthbridge/internal/bridge"
	"github.com/Kayz-mann/healthbridge/internal/models"
	"github.com/Kayz-mann/healthbridge/internal/normalize"
	"github.com/Kayz-mann/healthbridge/internal/query"
	"github.com/Kayz-mann/healthbridge/internal/registry"
	"github.com/Kayz-mann/healthbridge/internal/store"
	"github.com/Kayz-mann/healthbridge/internal/units"
)

// Manager composes the access layer over one native store. Every public
// operation is a single-shot flow: it either fully completes or reports
// one terminal error from the taxonomy in errors.go. The manager holds no
// mutable state between calls; the store is the sole synchronization
// point, and concurrent operations need no coordination here.
type Manager struct {
	store store.Store
	log   *zap.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a Manager over the given store.
func New(st store.Store, opts ...Option) *Manager {
	m := &Manager{store: st, log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// IsAvailable reports whether the underlying store can serve requests.
// It is the only synchronous operation.
func (m *Manager) IsAvailable() bool {
	return m.store.Available()
}

// ensureAvailable short-circuits every operation when the store reports
// unavailable, without issuing further native calls.
func (m *Manager) ensureAvailable(op string) error {
	if m.store.Available() {
		return nil
	}
	return opErr(KindNotAvailable, op, nil)
}

// RequestAuthorization requests user consent for the given identifier
// sets. Unresolvable identifiers are silently dropped; the write set is
// additionally restricted to types the store accepts as shareable. The
// per-type outcome is not queryable afterward.
func (m *Manager) RequestAuthorization(ctx context.Context, readTypes, writeTypes []string) error {
	const op = "requestAuthorization"
	if err := m.ensureAvailable(op); err != nil {
		return err
	}

	req := store.AuthRequest{
		Read:  registry.ResolveAll(readTypes),
		Write: registry.ResolveWritable(writeTypes),
	}

	c := bridge.New[struct{}](m.log)
	m.store.RequestAuthorization(req, func(err error) {
		if err != nil {
			c.Reject(err)
			return
		}
		c.Resolve(struct{}{})
	})
	if _, err := c.Await(ctx); err != nil {
		return opErr(KindAuthorizationFailed, op, err)
	}
	return nil
}

// saveQuantity writes one scalar sample, converting the canonical-unit
// value to the kind's native unit.
func (m *Manager) saveQuantity(ctx context.Context, op string, h store.TypeHandle, value, startSec, endSec float64) (string, error) {
	if err := m.ensureAvailable(op); err != nil {
		return "", err
	}
	if !registry.Writable(h) {
		return "", opErr(KindInvalidIdentifier, op, nil)
	}
	if startSec <= 0 {
		return "", missingData(op, []string{"startTime"})
	}
	if endSec == 0 {
		endSec = startSec
	}
	if endSec < startSec {
		return "", missingData(op, []string{"endTime"})
	}

	c := bridge.New[string](m.log)
	m.store.SaveQuantity(store.QuantityWrite{
		Type:  h,
		Value: units.ToNative(h, value),
		Start: models.EpochToTime(startSec),
		End:   models.EpochToTime(endSec),
	}, c.Callback())

	id, err := c.Await(ctx)
	if err != nil {
		return "", opErr(KindSaveFailed, op, err)
	}
	return id, nil
}

// querySamples runs one read and returns the raw results.
func (m *Manager) querySamples(ctx context.Context, op string, q store.Query) ([]store.RawSample, error) {
	if err := m.ensureAvailable(op); err != nil {
		return nil, err
	}

	c := bridge.New[[]store.RawSample](m.log)
	m.store.ExecuteQuery(q, c.Callback())

	samples, err := c.Await(ctx)
	if err != nil {
		return nil, opErr(KindQueryFailed, op, err)
	}
	return samples, nil
}

// quantitySamples reads scalar samples of one kind in canonical units,
// sorted by start time descending.
func (m *Manager) quantitySamples(ctx context.Context, op string, h store.TypeHandle, startSec, endSec float64, limit int) ([]models.QuantitySample, error) {
	raws, err := m.querySamples(ctx, op, store.Query{
		Type:      h,
		Predicate: query.Range(startSec, endSec),
		Sort:      query.ByStartTime(false),
		Limit:     query.Limit(limit),
	})
	if err != nil {
		return nil, err
	}

	samples := make([]models.QuantitySample, 0, len(raws))
	for _, raw := range raws {
		samples = append(samples, normalize.Quantity(h, raw))
	}
	return samples, nil
}

// latestQuantity reads the most recent sample of one kind. No sample in
// the store reports KindRecordNotFound.
func (m *Manager) latestQuantity(ctx context.Context, op string, h store.TypeHandle) (models.QuantitySample, error) {
	raws, err := m.querySamples(ctx, op, store.Query{
		Type:  h,
		Sort:  query.ByEndTime(false),
		Limit: 1,
	})
	if err != nil {
		return models.QuantitySample{}, err
	}
	if len(raws) == 0 {
		return models.QuantitySample{}, opErr(KindRecordNotFound, op, nil)
	}
	return normalize.Quantity(h, raws[0]), nil
}

// sumQuantity reduces all samples of one kind in range to a plain
// floating-point sum of canonical-unit values. The reduction happens
// client-side because neither backend exposes a native aggregate
// primitive; overlapping or duplicate samples are summed as-is.
func (m *Manager) sumQuantity(ctx context.Context, op string, h store.TypeHandle, startSec, endSec float64) (float64, error) {
	samples, err := m.quantitySamples(ctx, op, h, startSec, endSec, store.NoLimit)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, s := range samples {
		total += s.Value
	}
	return total, nil
}

// deleteObject removes one record, translating the store's not-found
// sentinel into the taxonomy. Any other store failure reports
// KindSaveFailed: the taxonomy is closed and carries no delete-specific
// kind, so deletes share the write-path failure kind, with Op naming the
// actual operation in the error text.
func (m *Manager) deleteObject(ctx context.Context, op string, h store.TypeHandle, id string) error {
	if err := m.ensureAvailable(op); err != nil {
		return err
	}
	if id == "" {
		return opErr(KindInvalidIdentifier, op, nil)
	}

	c := bridge.New[struct{}](m.log)
	m.store.DeleteObject(h, id, func(err error) {
		if err != nil {
			c.Reject(err)
			return
		}
		c.Resolve(struct{}{})
	})
	if _, err := c.Await(ctx); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return opErr(KindRecordNotFound, op, err)
		}
		return opErr(KindSaveFailed, op, err)
	}
	return nil
}
