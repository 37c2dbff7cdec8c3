// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(validFixture(), format)
			require.NoError(t, err)

			got, err := NewLoader(NewBytesSource("out."+string(format), data, format), noEnv()).Load()
			require.NoError(t, err)
			if diff := cmp.Diff(validFixture(), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshal_YAMLMatchesFixture(t *testing.T) {
	want, err := os.ReadFile("testdata/valid.yaml")
	require.NoError(t, err)

	got, err := Marshal(validFixture(), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestMarshal_JSONKeys(t *testing.T) {
	data, err := Marshal(validFixture(), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "seo")
	header := doc["header"].(map[string]interface{})
	assert.Contains(t, header, "externalLinks")

	link := header["links"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, false, link["external"], "external is always present in JSON")
	assert.NotContains(t, link, "target")
	assert.NotContains(t, link, "icon")
}

func TestMarshal_UnsupportedFormat(t *testing.T) {
	_, err := Marshal(validFixture(), Format("toml"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"yaml": FormatYAML, "yml": FormatYAML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
