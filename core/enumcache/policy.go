package enumcache

import (
	"fmt"
	"strings"
)

// CachingMethod decides what a cache miss populates.
type CachingMethod uint8

const (
	// Explicit never populates on a miss; use CacheEnum or CacheValue first.
	Explicit CachingMethod = iota
	// OnFirstUse populates only the missed member.
	OnFirstUse
	// WholeTypeOnFirstUse populates every member of the missed member's type.
	WholeTypeOnFirstUse
)

var cachingMethodNames = map[CachingMethod]string{
	Explicit:            "Explicit",
	OnFirstUse:          "OnFirstUse",
	WholeTypeOnFirstUse: "WholeTypeOnFirstUse",
}

// cachingMethodAliases maps lower-cased names, including legacy ones.
var cachingMethodAliases = map[string]CachingMethod{
	"explicit":                     Explicit,
	"cacheexplicitly":              Explicit,
	"onfirstuse":                   OnFirstUse,
	"cachevalueifused":             OnFirstUse,
	"wholetypeonfirstuse":          WholeTypeOnFirstUse,
	"cacheentireenumwhenfirstused": WholeTypeOnFirstUse,
}

func (m CachingMethod) String() string {
	if name, ok := cachingMethodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CachingMethod(%d)", uint8(m))
}

func (m CachingMethod) valid() bool {
	_, ok := cachingMethodNames[m]
	return ok
}

// ParseCachingMethod parses a method name case-insensitively. Hyphens and
// underscores are ignored, so "whole-type-on-first-use" is accepted.
func ParseCachingMethod(s string) (CachingMethod, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	if m, ok := cachingMethodAliases[key]; ok {
		return m, nil
	}
	return Explicit, fmt.Errorf("%w: %q", ErrUnknownCachingMethod, s)
}

func (m CachingMethod) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCachingMethod, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *CachingMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseCachingMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scope is the extent of one population.
type Scope string

const (
	ScopeMember Scope = "member"
	ScopeType   Scope = "type"
)

// onMiss returns the scope a miss on a single member populates, or "" if
// the miss is surfaced as absence.
func (m CachingMethod) onMiss() Scope {
	switch m {
	case OnFirstUse:
		return ScopeMember
	case WholeTypeOnFirstUse:
		return ScopeType
	default:
		return ""
	}
}

// populatesForScan reports whether a reverse lookup on a type that is not
// type cached may populate it.
func (m CachingMethod) populatesForScan() bool {
	return m == WholeTypeOnFirstUse
}
