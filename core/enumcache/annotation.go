package enumcache

import (
	"fmt"
	"reflect"
)

// Kind tags the built-in declared value types. Declared types created with
// [Single] or [Multi] for any other T report KindCustom.
type Kind uint8

const (
	KindCustom Kind = iota
	KindBool
	KindDouble
	KindInteger
	KindLong
	KindString
	KindKeyValuePair
)

var kindNames = [...]string{
	KindCustom:       "custom",
	KindBool:         "bool",
	KindDouble:       "double",
	KindInteger:      "integer",
	KindLong:         "long",
	KindString:       "string",
	KindKeyValuePair: "key_value_pair",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

var (
	boolType         = reflect.TypeFor[bool]()
	doubleType       = reflect.TypeFor[float64]()
	integerType      = reflect.TypeFor[int]()
	longType         = reflect.TypeFor[int64]()
	stringType       = reflect.TypeFor[string]()
	keyValuePairType = reflect.TypeFor[KeyValuePair]()
)

func kindOf(t reflect.Type) Kind {
	switch t {
	case boolType:
		return KindBool
	case doubleType:
		return KindDouble
	case integerType:
		return KindInteger
	case longType:
		return KindLong
	case stringType:
		return KindString
	case keyValuePairType:
		return KindKeyValuePair
	default:
		return KindCustom
	}
}

// KeyValuePair is the value carried by [KeyValue] annotations.
type KeyValuePair struct {
	Key   string
	Value any
}

func (p KeyValuePair) String() string { return fmt.Sprintf("%s=%v", p.Key, p.Value) }

// Annotation is one piece of declarative metadata attached to an enum member.
// The set of implementations is closed; build annotations with the
// constructors in this package.
type Annotation interface {
	// DeclaredValueType is the type of Value. Entries are grouped by it.
	DeclaredValueType() reflect.Type
	Value() any
	// AllowsMultiple reports whether a member may carry several annotations
	// of the same declared type, collapsed into one list-valued entry.
	AllowsMultiple() bool

	// collect appends Value to list, which is nil or a []T of the declared type.
	collect(list any) any
}

type annotation[T any] struct {
	value T
	multi bool
}

func (a annotation[T]) DeclaredValueType() reflect.Type { return reflect.TypeFor[T]() }
func (a annotation[T]) Value() any                      { return a.value }
func (a annotation[T]) AllowsMultiple() bool            { return a.multi }

func (a annotation[T]) collect(list any) any {
	l, _ := list.([]T)
	return append(l, a.value)
}

func (a annotation[T]) String() string {
	return fmt.Sprintf("%s(%v)", kindOf(a.DeclaredValueType()), a.value)
}

// Single returns a single-valued annotation with declared type T.
func Single[T any](v T) Annotation { return annotation[T]{value: v} }

// Multi returns a multi-valued annotation with declared type T.
func Multi[T any](v T) Annotation { return annotation[T]{value: v, multi: true} }

func Bool(v bool) Annotation      { return Single(v) }
func Double(v float64) Annotation { return Single(v) }
func Integer(v int) Annotation    { return Single(v) }
func Long(v int64) Annotation     { return Single(v) }
func String(v string) Annotation  { return Single(v) }

// KeyValue returns a multi-valued [KeyValuePair] annotation.
func KeyValue(key string, value any) Annotation {
	return Multi(KeyValuePair{Key: key, Value: value})
}
