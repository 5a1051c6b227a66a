package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedType(t *testing.T) {
	cases := map[string]string{
		"Technical":  "Technical",
		"Behavioral": "Behavioral",
		"Mixed":      "Mixed",
		"mixed":      "Mixed",
		"MIX":        "Mixed",
		"Mix & Tech": "Mixed",
	}
	for raw, want := range cases {
		iv := Interview{Type: raw}
		assert.Equal(t, want, iv.NormalizedType(), "type %q", raw)
	}
}

func TestStringListAcceptsArrayAndCommaString(t *testing.T) {
	var fromArray StringList
	require.NoError(t, json.Unmarshal([]byte(`["React","TypeScript"]`), &fromArray))
	assert.Equal(t, StringList{"React", "TypeScript"}, fromArray)

	var fromString StringList
	require.NoError(t, json.Unmarshal([]byte(`"React, TypeScript,  Node.js"`), &fromString))
	assert.Equal(t, StringList{"React", "TypeScript", "Node.js"}, fromString)

	var empty StringList
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Empty(t, empty)
}
