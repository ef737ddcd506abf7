package enumcache

import (
	"fmt"
	"reflect"
)

// Entry is the derived metadata of one declared value type on one member.
//
// For single-valued entries Value holds a value of DeclaredValueType. For
// multi-valued entries Value holds a non-empty []T of DeclaredValueType in
// declaration order.
type Entry struct {
	declaredType reflect.Type
	value        any
	multi        bool
}

func (e Entry) DeclaredValueType() reflect.Type { return e.declaredType }
func (e Entry) Kind() Kind                      { return kindOf(e.declaredType) }
func (e Entry) AllowsMultiple() bool            { return e.multi }

// Value returns the stored value. Multi-valued lists are copied so callers
// cannot mutate the cache.
func (e Entry) Value() any {
	if !e.multi || e.value == nil {
		return e.value
	}
	src := reflect.ValueOf(e.value)
	dst := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
	reflect.Copy(dst, src)
	return dst.Interface()
}

func (e Entry) String() string {
	return fmt.Sprintf("%s(multi=%t): %v", e.declaredType, e.multi, e.value)
}

func (e Entry) single(t reflect.Type) bool { return !e.multi && e.declaredType == t }
func (e Entry) list(t reflect.Type) bool   { return e.multi && e.declaredType == t }
