package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaswire/oaserrors"
)

func collect[V any](m *Map[V]) ([]string, []V) {
	var ks []string
	var vs []V
	for k, v := range m.All() {
		ks = append(ks, k.String())
		vs = append(vs, v)
	}
	return ks, vs
}

func TestMapInsertionOrder(t *testing.T) {
	m := NewMap[int](PathTemplate)
	require.NoError(t, m.Set("/zeta", 1))
	require.NoError(t, m.Set("/alpha", 2))
	require.NoError(t, m.Set("/mid", 3))

	ks, vs := collect(m)
	assert.Equal(t, []string{"/zeta", "/alpha", "/mid"}, ks)
	assert.Equal(t, []int{1, 2, 3}, vs)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, PathTemplate, m.Pattern())
}

func TestMapSetReplacesInPlace(t *testing.T) {
	m := NewMap[string](StatusCode)
	require.NoError(t, m.Set("200", "ok"))
	require.NoError(t, m.Set("404", "missing"))
	require.NoError(t, m.Set("200", "fine"))

	ks, vs := collect(m)
	assert.Equal(t, []string{"200", "404"}, ks)
	assert.Equal(t, []string{"fine", "missing"}, vs)
}

func TestMapSetInvalidKey(t *testing.T) {
	m := NewMap[string](ComponentName)
	require.NoError(t, m.Set("Pet", "pet"))

	err := m.Set("foo/bar", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrInvalidKey)

	// The map is unchanged after a rejected write.
	assert.Equal(t, 1, m.Len())
	_, ok := m.Get("foo/bar")
	assert.False(t, ok)
}

func TestMapGet(t *testing.T) {
	m := NewMap[string](StatusCode)
	require.NoError(t, m.Set("4XX", "client error"))

	v, ok := m.Get("4XX")
	assert.True(t, ok)
	assert.Equal(t, "client error", v)

	_, ok = m.Get("404")
	assert.False(t, ok, "valid but missing key")

	v, ok = m.Get("not-a-code")
	assert.False(t, ok, "invalid key is reported as absent")
	assert.Equal(t, "", v)
}

func TestMapSetKey(t *testing.T) {
	m := NewMap[bool](ComponentName)
	require.NoError(t, m.SetKey(MustNew("Pet", ComponentName), true))

	v, ok := m.Get("Pet")
	assert.True(t, ok)
	assert.True(t, v)

	err := m.SetKey(MustNew("/pets", PathTemplate), true)
	assert.ErrorIs(t, err, oaserrors.ErrInvalidKey)
	assert.Equal(t, 1, m.Len())
}

func TestMapSetKeyZero(t *testing.T) {
	t.Run("zero map rejects zero key", func(t *testing.T) {
		var m Map[int]
		assert.NotPanics(t, func() {
			assert.ErrorIs(t, m.SetKey(Key{}, 1), oaserrors.ErrInvalidKey)
		})
		assert.Equal(t, 0, m.Len())
	})

	t.Run("zero key on built map", func(t *testing.T) {
		m := NewMap[int](ComponentName)
		assert.ErrorIs(t, m.SetKey(Key{}, 1), oaserrors.ErrInvalidKey)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("zero map rejects Set", func(t *testing.T) {
		var m Map[int]
		assert.ErrorIs(t, m.Set("Pet", 1), oaserrors.ErrInvalidKey)
		assert.False(t, m.Delete("Pet"))
	})
}

func TestMapDelete(t *testing.T) {
	m := NewMap[int](ComponentName)
	for i, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, m.Set(name, i))
	}

	assert.True(t, m.Delete("B"))
	assert.False(t, m.Delete("B"))
	assert.False(t, m.Delete("nope"))

	ks, vs := collect(m)
	assert.Equal(t, []string{"A", "C", "D"}, ks)
	assert.Equal(t, []int{0, 2, 3}, vs)

	// Index stays consistent after the shift.
	v, ok := m.Get("D")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	require.NoError(t, m.Set("B", 9))
	ks, _ = collect(m)
	assert.Equal(t, []string{"A", "C", "D", "B"}, ks)
}

func TestMapKeysIsACopy(t *testing.T) {
	m := NewMap[int](ComponentName)
	require.NoError(t, m.Set("A", 1))

	ks := m.Keys()
	ks[0] = MustNew("Z", ComponentName)

	got := m.Keys()
	assert.Equal(t, "A", got[0].String())
}

func TestMapAllStopsEarly(t *testing.T) {
	m := NewMap[int](ComponentName)
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, m.Set(name, 0))
	}

	var seen []string
	for k := range m.All() {
		seen = append(seen, k.String())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestNilMap(t *testing.T) {
	var m *Map[int]
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	_, ok := m.Get("A")
	assert.False(t, ok)
	for range m.All() {
		t.Fatal("nil map should not yield")
	}
}
