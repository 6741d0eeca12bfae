package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

func testAliases() domain.AliasTable {
	return domain.AliasTable{
		"foo": {Domain: "D1", Style: "S1"},
	}
}

func TestParseAnnotations_NoAnnotations(t *testing.T) {
	meta := ParseAnnotations("Set A\nSet B\nSubset(A, B)\n", testAliases())

	assert.Equal(t, domain.Metadata{}, meta)
}

func TestParseAnnotations_ExplicitTags(t *testing.T) {
	src := "-- domain: D\n-- style: S\n-- variation: 42\nSet A\n"

	meta := ParseAnnotations(src, testAliases())

	assert.Equal(t, "D", meta.Domain)
	assert.Equal(t, "S", meta.Style)
	assert.Equal(t, "42", meta.Variation)
	assert.Empty(t, meta.AliasName)
}

func TestParseAnnotations_TrimsWhitespace(t *testing.T) {
	meta := ParseAnnotations("  --   domain:   spaced.domain   \n", nil)

	assert.Equal(t, "spaced.domain", meta.Domain)
}

func TestParseAnnotations_AliasSetsBothFields(t *testing.T) {
	meta := ParseAnnotations("-- alias: foo\n", testAliases())

	assert.Equal(t, "D1", meta.Domain)
	assert.Equal(t, "S1", meta.Style)
	assert.Equal(t, "foo", meta.AliasName)
}

func TestParseAnnotations_LaterExplicitTagOverridesAlias(t *testing.T) {
	meta := ParseAnnotations("-- alias: foo\n-- domain: D2\n", testAliases())

	// Later line wins for domain; style still comes from the alias.
	assert.Equal(t, "D2", meta.Domain)
	assert.Equal(t, "S1", meta.Style)
}

func TestParseAnnotations_LaterAliasOverridesExplicitTag(t *testing.T) {
	meta := ParseAnnotations("-- domain: D2\n-- alias: foo\n", testAliases())

	// Precedence is purely positional: the alias line is later, so its
	// domain wins over the earlier explicit tag.
	assert.Equal(t, "D1", meta.Domain)
	assert.Equal(t, "S1", meta.Style)
}

func TestParseAnnotations_UnknownAliasIsSilent(t *testing.T) {
	t.Run("leaves empty accumulators empty", func(t *testing.T) {
		meta := ParseAnnotations("-- alias: nope\n", testAliases())

		assert.Empty(t, meta.Domain)
		assert.Empty(t, meta.Style)
		assert.Equal(t, "nope", meta.AliasName)
	})

	t.Run("preserves earlier explicit tags", func(t *testing.T) {
		meta := ParseAnnotations("-- domain: D2\n-- alias: nope\n", testAliases())

		assert.Equal(t, "D2", meta.Domain)
	})
}

func TestParseAnnotations_TagsAreCaseSensitive(t *testing.T) {
	meta := ParseAnnotations("-- Domain: D\n-- STYLE: S\n", testAliases())

	assert.Empty(t, meta.Domain)
	assert.Empty(t, meta.Style)
}

func TestParseAnnotations_LastLineWinsPerField(t *testing.T) {
	src := "-- variation: 1\n-- variation: 2\n-- style: S2\n-- style: S3\n"

	meta := ParseAnnotations(src, testAliases())

	assert.Equal(t, "2", meta.Variation)
	assert.Equal(t, "S3", meta.Style)
}

func TestParseAnnotations_NilAliasTable(t *testing.T) {
	meta := ParseAnnotations("-- alias: foo\n-- style: S\n", nil)

	assert.Empty(t, meta.Domain)
	assert.Equal(t, "S", meta.Style)
}
