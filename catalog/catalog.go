// Package catalog keeps named spans of dates in a storage.System so they can
// be queried by day, by overlap, or intersected by name.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hoyle1974/timespan"
	"github.com/hoyle1974/timespan/misc"
	"github.com/hoyle1974/timespan/storage"
	"github.com/hoyle1974/timespan/telemetry"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const (
	keyPrefix = "spans/"
	keySuffix = ".span"

	listConcurrency = 8
)

var (
	ErrNotFound    = errors.New("span not found")
	ErrInvalidName = errors.New("invalid span name")
)

type Catalog struct {
	store   storage.System
	log     telemetry.Logger
	metrics telemetry.Metrics
	cache   *cache.Cache
	stats   misc.CacheStats
	now     func() time.Time

	puts    atomic.Int64
	deletes atomic.Int64
}

type Option func(*Catalog)

func WithLogger(l telemetry.Logger) Option {
	return func(c *Catalog) { c.log = l }
}

func WithMetrics(m telemetry.Metrics) Option {
	return func(c *Catalog) { c.metrics = m }
}

// WithCacheTTL sets how long records read from storage are kept in memory.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Catalog) { c.cache = cache.New(ttl, 2*ttl) }
}

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

func New(store storage.System, opts ...Option) *Catalog {
	c := &Catalog{
		store:   store,
		log:     telemetry.NOPLogger{},
		metrics: telemetry.NOPMetrics{},
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func key(name string) string {
	return keyPrefix + name + keySuffix
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.TrimSpace(name) != name {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return nil
}

// CacheStats reports how many reads were answered from memory.
func (c *Catalog) CacheStats() string {
	return c.stats.String()
}

// Put stores span under name.  Replacing a record keeps its ID.
func (c *Catalog) Put(ctx context.Context, name string, span timespan.DateSpan) (Record, error) {
	if err := validateName(name); err != nil {
		return Record{}, err
	}
	if err := timespan.ValidateSpan(span); err != nil {
		return Record{}, errors.Wrapf(err, "can not store %s", name)
	}

	id := uuid.New()
	existing, err := c.Get(ctx, name)
	switch {
	case err == nil:
		id = existing.ID
	case !errors.Is(err, ErrNotFound):
		return Record{}, err
	}

	r := Record{ID: id, Name: name, Span: span, UpdatedAt: c.now().UTC()}
	if err := c.write(ctx, r); err != nil {
		return Record{}, err
	}

	c.metrics.SetCount("catalog.puts", c.puts.Add(1))
	c.log.Debug(fmt.Sprintf("stored %s as %s", name, span))
	return r, nil
}

func (c *Catalog) write(ctx context.Context, r Record) error {
	b, err := misc.EncodeToBytes(r.stored())
	if err != nil {
		return errors.Wrapf(err, "can not encode %s", r.Name)
	}
	if err := c.store.Write(ctx, key(r.Name), b); err != nil {
		c.log.Error("can not store "+r.Name, err)
		return errors.Wrapf(err, "can not store %s", r.Name)
	}
	c.cache.Set(r.Name, r, cache.DefaultExpiration)
	return nil
}

// Get returns the record stored under name, or ErrNotFound.
func (c *Catalog) Get(ctx context.Context, name string) (Record, error) {
	if err := validateName(name); err != nil {
		return Record{}, err
	}
	if r, ok := c.cache.Get(name); ok {
		c.stats.Hit()
		return r.(Record), nil
	}
	c.stats.Miss()

	b, err := c.store.Read(ctx, key(name))
	if errors.Is(err, storage.ErrDoesNotExist) {
		return Record{}, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return Record{}, errors.Wrapf(err, "can not load %s", name)
	}

	var s storedRecord
	if err := misc.DecodeFromBytes(b, &s); err != nil {
		return Record{}, errors.Wrapf(err, "can not decode %s", name)
	}
	r, err := s.record()
	if err != nil {
		return Record{}, errors.Wrapf(err, "corrupt record %s", name)
	}

	c.cache.Set(name, r, cache.DefaultExpiration)
	return r, nil
}

// Delete removes the record stored under name, or returns ErrNotFound.
func (c *Catalog) Delete(ctx context.Context, name string) error {
	if _, err := c.Get(ctx, name); err != nil {
		return err
	}
	if err := c.store.Delete(ctx, key(name)); err != nil {
		return errors.Wrapf(err, "can not delete %s", name)
	}
	c.cache.Delete(name)

	c.metrics.SetCount("catalog.deletes", c.deletes.Add(1))
	c.log.Debug("deleted " + name)
	return nil
}

// Names returns the names of every stored record, sorted.
func (c *Catalog) Names(ctx context.Context) ([]string, error) {
	keys, err := c.store.GetKeysWithPrefix(ctx, keyPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "can not list spans")
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		name, ok := strings.CutSuffix(strings.TrimPrefix(k, keyPrefix), keySuffix)
		if !ok || validateName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// List returns every stored record, sorted by name.  Records are loaded
// concurrently, at most listConcurrency at a time.
func (c *Catalog) List(ctx context.Context) ([]Record, error) {
	names, err := c.Names(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]Record, len(names))
	found := make([]bool, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, name := range names {
		g.Go(func() error {
			r, err := c.Get(gctx, name)
			if errors.Is(err, ErrNotFound) {
				// Deleted since it was listed.
				return nil
			}
			if err != nil {
				return err
			}
			records[i], found[i] = r, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ret := records[:0]
	for i, r := range records {
		if found[i] {
			ret = append(ret, r)
		}
	}
	c.metrics.SetGauge("catalog.records", float64(len(ret)))
	return ret, nil
}

// Covering returns the records whose span contains day.
func (c *Catalog) Covering(ctx context.Context, day timespan.Date) ([]Record, error) {
	records, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(records, func(r Record) bool {
		return !r.Span.Contains(day)
	}), nil
}

// Overlapping returns the records sharing at least one day with span.
func (c *Catalog) Overlapping(ctx context.Context, span timespan.DateSpan) ([]Match, error) {
	records, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	var matches []Match
	for _, r := range records {
		if r.Span.Overlaps(span) {
			matches = append(matches, Match{Record: r, Common: r.Span.Intersect(span)})
		}
	}
	return matches, nil
}

// Common intersects the spans stored under names.  With no names it returns
// timespan.ErrEmptyFold.
func (c *Catalog) Common(ctx context.Context, names ...string) (timespan.DateSpan, error) {
	spans := make([]timespan.DateSpan, 0, len(names))
	for _, name := range names {
		r, err := c.Get(ctx, name)
		if err != nil {
			return timespan.DateSpan{}, err
		}
		spans = append(spans, r.Span)
	}
	return timespan.IntersectAll(spans...)
}
