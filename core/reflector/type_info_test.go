package reflector

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnum int

type testUnsigned uint8

type testStruct struct {
	Name string
}

type testString string

func TestTypeInfoOf(t *testing.T) {
	ti := TypeInfoOf(testEnum(1))

	assert.Equal(t, "github.com/codewandler/enummeta/core/reflector.testEnum", ti.Name)
	assert.Equal(t, "testEnum", ti.Type.Name())
	assert.True(t, ti.IsEnum)
	assert.NotZero(t, ti.ID)
}

func TestTypeInfoOf_Pointer(t *testing.T) {
	v := testEnum(2)
	ti := TypeInfoOf(&v)

	assert.Equal(t, "github.com/codewandler/enummeta/core/reflector.testEnum", ti.Name)
	assert.NotEqual(t, reflect.Pointer, ti.Type.Kind(), "pointer should be unwrapped")
	assert.Equal(t, TypeInfoOf(v).ID, ti.ID)
}

func TestTypeInfoFor(t *testing.T) {
	ti := TypeInfoFor[testUnsigned]()

	assert.Equal(t, "github.com/codewandler/enummeta/core/reflector.testUnsigned", ti.Name)
	assert.True(t, ti.IsEnum)
	assert.Equal(t, ti, TypeInfoFor[*testUnsigned]())
}

func TestTypeInfoForType_Nil(t *testing.T) {
	ti := TypeInfoForType(nil)

	assert.Empty(t, ti.Name)
	assert.Nil(t, ti.Type)
	assert.False(t, ti.IsEnum)
	assert.Zero(t, ti.ID)
}

func TestIsEnumType(t *testing.T) {
	assert.True(t, IsEnumType(reflect.TypeFor[testEnum]()))
	assert.True(t, IsEnumType(reflect.TypeFor[testUnsigned]()))

	assert.False(t, IsEnumType(reflect.TypeFor[int]()), "predeclared int is not an enum")
	assert.False(t, IsEnumType(reflect.TypeFor[testString]()))
	assert.False(t, IsEnumType(reflect.TypeFor[testStruct]()))
	assert.False(t, IsEnumType(reflect.TypeFor[*testEnum]()))
	assert.False(t, IsEnumType(nil))
}

func TestTypeInfo_DistinctIDs(t *testing.T) {
	a := TypeInfoFor[testEnum]()
	b := TypeInfoFor[testUnsigned]()

	require.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.ID, TypeInfoFor[testEnum]().ID, "id is stable while cached")
}

func TestConcurrentAccess(t *testing.T) {
	const goroutines = 100
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			for range iterations {
				_ = TypeInfoOf(testEnum(0))
				_ = TypeInfoFor[testUnsigned]()
				_ = TypeInfoForType(reflect.TypeFor[string]())
			}
		}()
	}

	wg.Wait()
}

func TestCacheHit(t *testing.T) {
	muCache.Lock()
	cache = make(map[reflect.Type]TypeInfo)
	muCache.Unlock()

	ti1 := TypeInfoOf(testEnum(0))
	ti2 := TypeInfoOf(testEnum(5))
	assert.Equal(t, ti1, ti2)

	muCache.RLock()
	_, ok := cache[reflect.TypeFor[testEnum]()]
	muCache.RUnlock()
	assert.True(t, ok, "expected cache to contain testEnum type")
}
