package enumcache

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/codewandler/enummeta/core/reflector"
	"github.com/codewandler/enummeta/core/sf"
)

// Options configures a [Cache].
type Options struct {
	// Method is fixed for the lifetime of the cache. Defaults to Explicit.
	Method  CachingMethod
	Log     *slog.Logger
	Metrics CacheMetrics
}

// Cache answers metadata queries for enum members, populating its [Store]
// from a [Source] according to the configured [CachingMethod].
type Cache struct {
	source  Source
	store   *Store
	method  CachingMethod
	log     *slog.Logger
	metrics CacheMetrics

	memberFlight *sf.Group[[]Entry]
	typeFlight   *sf.Group[int]
}

// New creates an empty cache reading annotations from src.
func New(src Source, opts Options) (*Cache, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if !opts.Method.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCachingMethod, uint8(opts.Method))
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = NopCacheMetrics()
	}

	return &Cache{
		source:       src,
		store:        NewStore(),
		method:       opts.Method,
		log:          opts.Log.With(slog.String("component", "enumcache"), slog.String("method", opts.Method.String())),
		metrics:      opts.Metrics,
		memberFlight: sf.New[[]Entry](),
		typeFlight:   sf.New[int](),
	}, nil
}

func (c *Cache) Method() CachingMethod { return c.method }

func (c *Cache) Stats() StoreStats { return c.store.Stats() }

// GetBooleanValue returns the single bool value of member, or false.
func (c *Cache) GetBooleanValue(member any) (bool, error) { return GetValue[bool](c, member) }

// GetDoubleValue returns the single float64 value of member, or 0.
func (c *Cache) GetDoubleValue(member any) (float64, error) { return GetValue[float64](c, member) }

// GetIntegerValue returns the single int value of member, or 0.
func (c *Cache) GetIntegerValue(member any) (int, error) { return GetValue[int](c, member) }

// GetLongValue returns the single int64 value of member, or 0.
func (c *Cache) GetLongValue(member any) (int64, error) { return GetValue[int64](c, member) }

// GetStringValue returns the single string value of member, or "".
func (c *Cache) GetStringValue(member any) (string, error) { return GetValue[string](c, member) }

// GetKeyValuePairs returns the key/value pairs of member in declaration order.
func (c *Cache) GetKeyValuePairs(member any) ([]KeyValuePair, error) {
	return GetValues[KeyValuePair](c, member)
}

// CacheType populates every member of t. It is a no-op if t is already
// type cached and fails with [ErrNotAnEnumType] before touching the store.
func (c *Cache) CacheType(t reflect.Type) error {
	ti := reflector.TypeInfoForType(t)
	if !ti.IsEnum {
		return fmt.Errorf("cache type %v: %w", t, ErrNotAnEnumType)
	}
	return c.populateType(ti)
}

// CacheValue populates member regardless of the caching method and returns
// its entries. Members not declared in the source yield no entries and are
// not stored.
func (c *Cache) CacheValue(member any) ([]Entry, error) {
	m, ti, err := resolveMember(member)
	if err != nil {
		return nil, err
	}
	if entries, ok := c.store.TryGet(ti.Type, m); ok {
		c.metrics.CacheHit(ti.Name)
		return slices.Clone(entries), nil
	}
	c.metrics.CacheMiss(ti.Name)
	entries, err := c.populateMember(ti, m)
	return slices.Clone(entries), err
}

// IsEnumCached probes x, which is either a reflect.Type (type cached via
// the whole-type path) or a member (member populated). It never fails.
func (c *Cache) IsEnumCached(x any) bool {
	if t, ok := x.(reflect.Type); ok {
		return c.IsTypeCached(t)
	}
	return c.IsMemberCached(x)
}

func (c *Cache) IsTypeCached(t reflect.Type) bool {
	ti := reflector.TypeInfoForType(t)
	return ti.IsEnum && c.store.IsTypeCached(ti.Type)
}

func (c *Cache) IsMemberCached(member any) bool {
	m, ti, err := resolveMember(member)
	return err == nil && c.store.IsMemberCached(ti.Type, m)
}

// entries returns the entries of member, populating on a miss as the
// caching method dictates. Absence yields nil without error.
func (c *Cache) entries(member any) ([]Entry, error) {
	m, ti, err := resolveMember(member)
	if err != nil {
		return nil, err
	}
	if entries, ok := c.store.TryGet(ti.Type, m); ok {
		c.metrics.CacheHit(ti.Name)
		return entries, nil
	}
	c.metrics.CacheMiss(ti.Name)

	switch c.method.onMiss() {
	case ScopeMember:
		return c.populateMember(ti, m)
	case ScopeType:
		if err := c.populateType(ti); err != nil {
			return nil, err
		}
		entries, _ := c.store.TryGet(ti.Type, m)
		return entries, nil
	default:
		return nil, nil
	}
}

func (c *Cache) populateMember(ti reflector.TypeInfo, member any) ([]Entry, error) {
	key := "member/" + strconv.FormatUint(ti.ID, 10) + "/" + ordinal(member)
	entries, shared, err := c.memberFlight.Do(key, func() ([]Entry, error) {
		if entries, ok := c.store.TryGet(ti.Type, member); ok {
			return entries, nil
		}

		startAt := time.Now()
		timer := c.metrics.PopulateDuration(ti.Name, ScopeMember)
		annotations, declared := c.source.Annotations(ti.Type, member)
		entries, ignored := extract(annotations)
		timer.ObserveDuration()

		log := c.log.With(slog.String("type", ti.Name), slog.Any("member", member))
		if ignored > 0 {
			log.Warn("ignored duplicate single-valued annotations", slog.Int("ignored", ignored))
		}
		if !declared {
			log.Debug("member not declared, nothing cached")
			return nil, nil
		}

		committed, added := c.store.Put(ti.Type, member, entries)
		if added {
			c.metrics.MembersPopulated(ti.Name, ScopeMember, 1)
			log.Debug("populated member",
				slog.Int("entries", len(committed)),
				slog.Duration("duration", time.Since(startAt)),
			)
		}
		return committed, nil
	})
	if shared {
		c.metrics.SharedPopulation(ti.Name, ScopeMember)
	}
	return entries, err
}

func (c *Cache) populateType(ti reflector.TypeInfo) error {
	if c.store.IsTypeCached(ti.Type) {
		return nil
	}
	key := "type/" + strconv.FormatUint(ti.ID, 10)
	_, shared, err := c.typeFlight.Do(key, func() (int, error) {
		if c.store.IsTypeCached(ti.Type) {
			return 0, nil
		}

		startAt := time.Now()
		timer := c.metrics.PopulateDuration(ti.Name, ScopeType)
		members := c.source.Members(ti.Type)
		batch := make([]MemberEntries, 0, len(members))
		ignored := 0
		for _, m := range members {
			annotations, _ := c.source.Annotations(ti.Type, m)
			entries, n := extract(annotations)
			ignored += n
			batch = append(batch, MemberEntries{Member: m, Entries: entries})
		}
		timer.ObserveDuration()

		log := c.log.With(slog.String("type", ti.Name))
		if ignored > 0 {
			log.Warn("ignored duplicate single-valued annotations", slog.Int("ignored", ignored))
		}
		if c.store.PutWholeType(ti.Type, batch) {
			c.metrics.MembersPopulated(ti.Name, ScopeType, len(batch))
			log.Debug("populated type",
				slog.Int("members", len(batch)),
				slog.Duration("duration", time.Since(startAt)),
			)
		}
		return len(batch), nil
	})
	if shared {
		c.metrics.SharedPopulation(ti.Name, ScopeType)
	}
	return err
}

// resolveMember validates member and unwraps pointers to it.
func resolveMember(member any) (any, reflector.TypeInfo, error) {
	if member == nil {
		return nil, reflector.TypeInfo{}, ErrNullArgument
	}
	rv := reflect.ValueOf(member)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, reflector.TypeInfo{}, ErrNullArgument
		}
		rv = rv.Elem()
	}
	ti := reflector.TypeInfoForType(rv.Type())
	if !ti.IsEnum {
		return nil, ti, fmt.Errorf("member of type %v: %w", rv.Type(), ErrNotAnEnumType)
	}
	return rv.Interface(), ti, nil
}

// ordinal formats the integer value of an enum member.
func ordinal(member any) string {
	rv := reflect.ValueOf(member)
	if rv.CanInt() {
		return strconv.FormatInt(rv.Int(), 10)
	}
	return strconv.FormatUint(rv.Uint(), 10)
}
