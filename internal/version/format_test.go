package version

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-launcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormat(t *testing.T) {
	info := models.NewVersionInfoFromMap(map[string]string{
		"buildNumber":    "42",
		"displayVersion": "1.2.3",
	})

	t.Run("text", func(t *testing.T) {
		out, err := Format(info, OutputText)
		require.NoError(t, err)
		assert.Equal(t, info.String(), out)
	})

	t.Run("empty defaults to text", func(t *testing.T) {
		out, err := Format(info, "")
		require.NoError(t, err)
		assert.Equal(t, info.String(), out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := Format(info, OutputJSON)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "42", decoded["buildNumber"])
		assert.Equal(t, "1.2.3", decoded["displayVersion"])
		assert.Equal(t, "", decoded["gitBranch"])
		assert.Equal(t, false, decoded["isEmpty"])
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := Format(info, OutputYAML)
		require.NoError(t, err)

		var decoded models.VersionSnapshot
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, info.Snapshot(), decoded)
	})

	t.Run("unknown", func(t *testing.T) {
		out, err := Format(info, "xml")
		assert.Empty(t, out)
		assert.ErrorIs(t, err, ErrUnknownOutput)
	})
}
