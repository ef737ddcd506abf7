package enumcache

import (
	"fmt"
	"reflect"

	"github.com/codewandler/enummeta/core/reflector"
)

// Extract derives the entries of member from the annotations src reports
// for it. Annotations are grouped by declared value type in order of first
// appearance; the first annotation of a group decides its multiplicity.
// A multi-valued group yields one entry listing every value in declaration
// order. A single-valued group yields the first value; later annotations of
// that type are ignored.
//
// Extract has no side effects. It fails with [ErrInvalidType] when t is not
// an enum type.
func Extract(src Source, t reflect.Type, member any) ([]Entry, error) {
	if !reflector.IsEnumType(t) {
		return nil, fmt.Errorf("extract %v: %w", t, ErrInvalidType)
	}
	annotations, _ := src.Annotations(t, member)
	entries, _ := extract(annotations)
	return entries, nil
}

// extract groups annotations into entries and reports how many
// single-valued duplicates were dropped.
func extract(annotations []Annotation) (entries []Entry, ignored int) {
	if len(annotations) == 0 {
		return nil, 0
	}

	byType := make(map[reflect.Type]int, len(annotations))
	for _, a := range annotations {
		if a == nil {
			continue
		}
		dt := a.DeclaredValueType()
		i, seen := byType[dt]
		if !seen {
			e := Entry{declaredType: dt, multi: a.AllowsMultiple()}
			if e.multi {
				e.value = a.collect(nil)
			} else {
				e.value = a.Value()
			}
			byType[dt] = len(entries)
			entries = append(entries, e)
			continue
		}
		if entries[i].multi {
			entries[i].value = a.collect(entries[i].value)
			continue
		}
		ignored++
	}
	return entries, ignored
}
