package enumcache

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/codewandler/enummeta/core/ds"
	"github.com/codewandler/enummeta/core/reflector"
)

// Enum is satisfied by integer-backed enumerated types. Only declared named
// types are accepted at runtime; see [reflector.IsEnumType].
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Source enumerates the members of an enum type and the annotations
// attached to each member. Implementations must be safe for concurrent reads.
type Source interface {
	// Members returns the declared members of t in declaration order.
	Members(t reflect.Type) []any
	// Annotations returns the annotations on member and whether member is
	// declared for t. The returned slice must not be modified.
	Annotations(t reflect.Type, member any) ([]Annotation, bool)
}

// MemberDecl declares one enum member with its annotations.
type MemberDecl[E Enum] struct {
	Value       E
	Annotations []Annotation
}

// Member declares v with the given annotations, in declaration order.
func Member[E Enum](v E, annotations ...Annotation) MemberDecl[E] {
	return MemberDecl[E]{Value: v, Annotations: annotations}
}

type table struct {
	members     *ds.Set[any]
	annotations [][]Annotation // indexed by member position
}

// Registry is a static registration table of annotated enum types, usually
// filled from package init functions or generated code.
type Registry struct {
	mu     sync.RWMutex
	tables map[reflect.Type]*table
	order  *ds.Set[reflect.Type]
}

func NewRegistry() *Registry {
	return &Registry{
		tables: make(map[reflect.Type]*table),
		order:  ds.NewSet[reflect.Type](),
	}
}

// Declare registers the members of E. Members must be listed once each;
// undeclared values of E carry no metadata. A type can be declared once.
func Declare[E Enum](r *Registry, members ...MemberDecl[E]) error {
	ti := reflector.TypeInfoFor[E]()
	if !ti.IsEnum {
		return fmt.Errorf("declare %s: %w", ti.Type, ErrNotAnEnumType)
	}

	tbl := &table{
		members:     ds.NewSet[any](),
		annotations: make([][]Annotation, 0, len(members)),
	}
	for _, m := range members {
		if !tbl.members.Add(m.Value) {
			return fmt.Errorf("declare %s: member %v: %w", ti.Name, m.Value, ErrDuplicateMember)
		}
		tbl.annotations = append(tbl.annotations, slices.Clone(m.Annotations))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[ti.Type]; ok {
		return fmt.Errorf("declare %s: %w", ti.Name, ErrDuplicateType)
	}
	r.tables[ti.Type] = tbl
	r.order.Add(ti.Type)
	return nil
}

// MustDeclare is like [Declare] but panics on error.
func MustDeclare[E Enum](r *Registry, members ...MemberDecl[E]) {
	if err := Declare(r, members...); err != nil {
		panic(err)
	}
}

// Types returns the declared enum types in declaration order.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.order.Values()
}

func (r *Registry) Members(t reflect.Type) []any {
	tbl := r.table(t)
	if tbl == nil {
		return nil
	}
	return tbl.members.Values()
}

func (r *Registry) Annotations(t reflect.Type, member any) ([]Annotation, bool) {
	tbl := r.table(t)
	if tbl == nil {
		return nil, false
	}
	i := tbl.members.Index(member)
	if i < 0 {
		return nil, false
	}
	return tbl.annotations[i], true
}

func (r *Registry) table(t reflect.Type) *table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tables[t]
}

var _ Source = (*Registry)(nil)
