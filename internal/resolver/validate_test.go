package resolver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemakit/typemap/internal/testutil"
	"github.com/schemakit/typemap/internal/typemap"
)

func TestValidate_BareVarcharFails(t *testing.T) {
	r := New()

	m := r.Resolve(Description{StoreType: "varchar"})
	require.NotNil(t, m)

	err := r.Validate(m, "Title")
	require.Error(t, err)
	assert.True(t, IsUnqualifiedStoreType(err))

	var ue *UnqualifiedStoreTypeError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "varchar", ue.StoreType)
	assert.Equal(t, "Title", ue.Property)
	assert.Contains(t, err.Error(), `"Title"`)
	assert.Contains(t, err.Error(), "varchar(max)")
}

func TestValidate_WithoutPropertyName(t *testing.T) {
	r := New()

	m := r.Resolve(Description{StoreType: "nvarchar"})
	require.NotNil(t, m)

	err := r.Validate(m, "")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "property", "general message when no property is bound")
	assert.Contains(t, err.Error(), "nvarchar")
}

func TestValidate_QualifiedFormsPass(t *testing.T) {
	r := New()

	testCases := []Description{
		{StoreType: "varchar(max)"},
		{StoreType: "varchar(30)", Size: testutil.Int(30)},
		{Tag: typemap.TagString},
		{Tag: typemap.TagString, Key: true},
		{Tag: typemap.TagBytes, Size: testutil.Int(16)},
		{StoreType: "bigint"},
		{StoreType: "rowversion"},
	}

	for _, d := range testCases {
		m := r.Resolve(d)
		require.NotNil(t, m, "%+v", d)
		assert.NoError(t, r.Validate(m, "Prop"), "store type %s", m.StoreType)
	}
}

func TestValidate_AllDisallowedBaseNames(t *testing.T) {
	r := New()

	// Every bare length-requiring name in the catalog fails validation.
	bare := []string{
		"binary", "binary varying", "char", "char varying", "character",
		"character varying", "national char varying",
		"national character varying", "national character", "nchar",
		"nvarchar", "varbinary", "varchar",
	}

	for _, name := range bare {
		t.Run(name, func(t *testing.T) {
			m := r.Resolve(Description{StoreType: name})
			require.NotNil(t, m)

			err := r.Validate(m, "P")
			// Aliases resolve to the canonical entry, whose canonical
			// name is itself in the disallowed set.
			require.Error(t, err, "canonical name %s", m.StoreType)
			assert.True(t, IsUnqualifiedStoreType(err))
		})
	}
}

func TestValidate_NilMapping(t *testing.T) {
	r := New()
	assert.NoError(t, r.Validate(nil, "P"))
}

func TestValidate_Deterministic(t *testing.T) {
	r := New()

	m := r.Resolve(Description{StoreType: "varchar"})
	require.NotNil(t, m)

	first := r.Validate(m, "Name")
	second := r.Validate(m, "Name")
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error(), "same inputs fail identically")
}

func TestIsUnqualifiedStoreType_WrappedError(t *testing.T) {
	err := fmt.Errorf("building model: %w", &UnqualifiedStoreTypeError{StoreType: "varchar"})
	assert.True(t, IsUnqualifiedStoreType(err))
	assert.False(t, IsUnqualifiedStoreType(fmt.Errorf("other failure")))
	assert.False(t, IsUnqualifiedStoreType(nil))
}
