// Package cache implementa o cache com tempo de vida usado pelos loaders.
// O cache é explícito e injetado, para que testes controlem o relógio.
package cache

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/advanced-computing/bouncing-penguin/pkg/metrics"
	"github.com/bluele/gcache"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const DefaultTTL = time.Hour

// Key identifica um resultado pela função que o produziu e seus argumentos
type Key struct {
	Function string
	Args     string
}

func (k Key) String() string {
	return k.Function + "(" + k.Args + ")"
}

// Entry guarda o valor e o momento em que entrou no cache
type Entry[V any] struct {
	Key        Key
	Value      V
	InsertedAt time.Time
	ExpiresAt  time.Time
}

type Cache[V any] interface {
	Get(key Key) (*Entry[V], bool)
	Set(key Key, value V) *Entry[V]
	// GetOrLoad devolve a entrada válida ou executa load uma única vez por chave,
	// mesmo com chamadas concorrentes. O booleano indica acerto de cache.
	GetOrLoad(ctx context.Context, key Key, load func(ctx context.Context) (V, error)) (*Entry[V], bool, error)
	Entries() []*Entry[V]
	Len() int
}

type TTLCache[V any] struct {
	store gcache.Cache
	clock gcache.Clock
	ttl   time.Duration
	group singleflight.Group
}

type Option func(*options)

type options struct {
	clock gcache.Clock
	size  int
}

// WithClock troca o relógio; testes usam gcache.NewFakeClock
func WithClock(clock gcache.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func WithSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.size = size
		}
	}
}

func New[V any](ttl time.Duration, opts ...Option) *TTLCache[V] {
	o := &options{
		clock: gcache.NewRealClock(),
		size:  32,
	}
	for _, opt := range opts {
		opt(o)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &TTLCache[V]{
		store: gcache.New(o.size).
			LRU().
			Expiration(ttl).
			Clock(o.clock).
			Build(),
		clock: o.clock,
		ttl:   ttl,
	}
}

func (c *TTLCache[V]) TTL() time.Duration {
	return c.ttl
}

func (c *TTLCache[V]) Get(key Key) (*Entry[V], bool) {
	value, err := c.store.Get(key)
	if err != nil {
		return nil, false
	}

	entry, ok := value.(*Entry[V])
	return entry, ok
}

func (c *TTLCache[V]) Set(key Key, value V) *Entry[V] {
	now := c.clock.Now()
	entry := &Entry[V]{
		Key:        key,
		Value:      value,
		InsertedAt: now,
		ExpiresAt:  now.Add(c.ttl),
	}

	if err := c.store.Set(key, entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key.String(),
			"error": err.Error(),
		}).Warn("cache: failed to store entry")
	}

	return entry
}

func (c *TTLCache[V]) GetOrLoad(ctx context.Context, key Key, load func(ctx context.Context) (V, error)) (*Entry[V], bool, error) {
	if entry, ok := c.Get(key); ok {
		metrics.CacheHits.WithLabelValues(key.Function).Inc()
		return entry, true, nil
	}

	result, err, shared := c.group.Do(key.String(), func() (any, error) {
		// Outro chamador pode ter preenchido a chave enquanto esperávamos
		if entry, ok := c.Get(key); ok {
			return entry, nil
		}

		metrics.CacheMisses.WithLabelValues(key.Function).Inc()

		value, err := load(ctx)
		if err != nil {
			return nil, err
		}

		return c.Set(key, value), nil
	})
	if err != nil {
		return nil, false, err
	}

	entry, ok := result.(*Entry[V])
	if !ok {
		return nil, false, fmt.Errorf("cache: unexpected entry type %T for %s", result, key)
	}

	if shared {
		logrus.WithField("key", key.String()).Debug("cache: load shared with concurrent caller")
	}

	return entry, false, nil
}

// Entries devolve as entradas ainda válidas ordenadas por chave
func (c *TTLCache[V]) Entries() []*Entry[V] {
	all := c.store.GetALL(true)

	entries := make([]*Entry[V], 0, len(all))
	for _, value := range all {
		if entry, ok := value.(*Entry[V]); ok {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key.String() < entries[j].Key.String()
	})

	return entries
}

func (c *TTLCache[V]) Len() int {
	return c.store.Len(true)
}
