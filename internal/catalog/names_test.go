package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "varchar", Normalize("VARCHAR"))
	assert.Equal(t, "varchar(30)", Normalize("  VarChar(30) "))
	assert.Equal(t, "national character varying", Normalize("National Character Varying"))
}

func TestBaseName(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"nvarchar(450)", "nvarchar"},
		{"decimal(18,2)", "decimal"},
		{"varchar(max)", "varchar"},
		{"bigint", "bigint"},
		{"varchar (30)", "varchar"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, BaseName(tc.input), "input %q", tc.input)
	}
}

func TestIsDisallowed(t *testing.T) {
	// Bare variable/fixed character and binary family names are invalid
	// without a length qualifier.
	for name := range disallowedNames {
		assert.True(t, IsDisallowed(name), "%s", name)
	}

	assert.True(t, IsDisallowed("VARCHAR"), "membership is case-insensitive")
	assert.True(t, IsDisallowed("National Character"))

	// Only exact full-name matches count: qualified forms are fine.
	assert.False(t, IsDisallowed("varchar(30)"))
	assert.False(t, IsDisallowed("varchar(max)"))
	assert.False(t, IsDisallowed("bigint"))
	assert.False(t, IsDisallowed("rowversion"))
	assert.False(t, IsDisallowed(""))
}
