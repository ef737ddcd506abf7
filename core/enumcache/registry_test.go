package enumcache

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Declare(t *testing.T) {
	r := newTestRegistry(t)

	assert.Equal(t, []reflect.Type{
		reflect.TypeFor[testEnum](),
		reflect.TypeFor[Color](),
		reflect.TypeFor[Tags](),
	}, r.Types())

	assert.Equal(t, []any{Black, Red, Green}, r.Members(reflect.TypeFor[Color]()))

	anns, ok := r.Annotations(reflect.TypeFor[Tags](), Combo)
	require.True(t, ok)
	assert.Len(t, anns, 2)

	anns, ok = r.Annotations(reflect.TypeFor[testEnum](), Undefined)
	require.True(t, ok, "members without annotations are declared")
	assert.Empty(t, anns)
}

func TestRegistry_Unknown(t *testing.T) {
	r := newTestRegistry(t)

	_, ok := r.Annotations(reflect.TypeFor[testEnum](), undeclared)
	assert.False(t, ok)

	_, ok = r.Annotations(reflect.TypeFor[Color](), Combo)
	assert.False(t, ok, "member of another type")

	type unknown int
	assert.Nil(t, r.Members(reflect.TypeFor[unknown]()))
}

func TestRegistry_DuplicateType(t *testing.T) {
	r := newTestRegistry(t)

	err := Declare(r, Member(Red))
	require.ErrorIs(t, err, ErrDuplicateType)
	assert.Contains(t, err.Error(), "Color")
}

func TestRegistry_DuplicateMember(t *testing.T) {
	type dup int
	r := NewRegistry()

	err := Declare(r, Member(dup(1)), Member(dup(1), String("again")))
	require.ErrorIs(t, err, ErrDuplicateMember)
	assert.Empty(t, r.Types(), "failed declaration leaves no trace")
}

func TestRegistry_InvalidType(t *testing.T) {
	err := Declare(NewRegistry(), Member(1))
	require.ErrorIs(t, err, ErrNotAnEnumType)
	require.ErrorIs(t, err, ErrInvalidType)
}

func TestRegistry_MustDeclare(t *testing.T) {
	r := newTestRegistry(t)
	assert.Panics(t, func() { MustDeclare(r, Member(Plain)) })
}

func TestRegistry_AnnotationsAreCopied(t *testing.T) {
	type copied int
	anns := []Annotation{String("a")}
	r := NewRegistry()
	require.NoError(t, Declare(r, Member(copied(0), anns...)))

	anns[0] = String("b")

	got, _ := r.Annotations(reflect.TypeFor[copied](), copied(0))
	assert.Equal(t, "a", got[0].Value())
}
