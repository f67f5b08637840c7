package code

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	n := New(DefaultMaxLength)

	t.Run("trims whitespace and uppercases", func(t *testing.T) {
		got, err := n.Normalize("  abc123 \n")
		require.NoError(t, err)
		assert.Equal(t, "ABC123", got)
	})

	t.Run("strips scanner guard characters", func(t *testing.T) {
		got, err := n.Normalize("*ABC123*")
		require.NoError(t, err)
		assert.Equal(t, "ABC123", got)
	})

	t.Run("strips camera decode prefix case-insensitively", func(t *testing.T) {
		for _, raw := range []string{"GC:abc123", "gc:abc123"} {
			got, err := n.Normalize(raw)
			require.NoError(t, err)
			assert.Equal(t, "ABC123", got)
		}
	})

	t.Run("removes interior whitespace from manual entry", func(t *testing.T) {
		got, err := n.Normalize("abc 123")
		require.NoError(t, err)
		assert.Equal(t, "ABC123", got)
	})

	t.Run("strips stacked artifacts in one pass", func(t *testing.T) {
		for raw, want := range map[string]string{
			"GC:GC:abc123": "ABC123",
			"g c:abc123":   "ABC123",
			";GC:abc123*":  "ABC123",
		} {
			got, err := n.Normalize(raw)
			require.NoError(t, err, "raw %q", raw)
			assert.Equal(t, want, got, "raw %q", raw)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := n.Normalize("")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("rejects whitespace-only input", func(t *testing.T) {
		_, err := n.Normalize("  \t\r\n ")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("rejects guard-characters-only input", func(t *testing.T) {
		_, err := n.Normalize("**")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		_, err := n.Normalize(strings.Repeat("A", DefaultMaxLength+1))
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("accepts input at the limit", func(t *testing.T) {
		got, err := n.Normalize(strings.Repeat("a", DefaultMaxLength))
		require.NoError(t, err)
		assert.Len(t, got, DefaultMaxLength)
	})

	t.Run("rejects embedded control characters", func(t *testing.T) {
		_, err := n.Normalize("AB\x00C123")
		require.ErrorIs(t, err, ErrMalformed)
	})
}

// TestNormalize_Idempotent verifies normalizing an already-normalized code
// returns the same code unchanged.
func TestNormalize_Idempotent(t *testing.T) {
	n := New(DefaultMaxLength)

	for _, raw := range []string{
		"  abc123 ",
		"*GC:xy-99*",
		"MEAL2024-0042",
		"a b c",
		"GC:GC:ABC123",
		"g c:abc123",
		";*GC:zz-7",
	} {
		first, err := n.Normalize(raw)
		require.NoError(t, err, "raw %q", raw)
		second, err := n.Normalize(first)
		require.NoError(t, err, "normalized %q", first)
		assert.Equal(t, first, second, "raw %q", raw)
	}
}

func TestNormalize_CustomLimit(t *testing.T) {
	n := New(8)

	_, err := n.Normalize("ABCDEFGHI")
	require.ErrorIs(t, err, ErrMalformed)

	got, err := n.Normalize("ABCDEFGH")
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGH", got)
}
