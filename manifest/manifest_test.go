package manifest

import (
	"testing"

	"github.com/milk9111/keystone/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultManifest(t *testing.T) {
	m, err := LoadManifest("")
	require.NoError(t, err)

	requests, err := m.Requests()
	require.NoError(t, err)
	require.Len(t, requests, 2)

	splash := requests[component.AssetGroupSplash]
	assert.Equal(t, component.AssetGroupSplash, splash.Group)
	require.Len(t, splash.Images, 1)
	assert.Equal(t, "logo", splash.Images[0].Key)
	assert.Empty(t, splash.Audio)

	game := requests[component.AssetGroupGame]
	assert.Len(t, game.Images, 14)
	require.Len(t, game.Audio, 1)
	assert.Equal(t, "audio/title.wav", game.Audio[0].Path)
	assert.Equal(t, 16, game.Len())
}

func TestLoadManifestAcceptsPrefixedName(t *testing.T) {
	_, err := LoadManifest("manifest/groups.yaml")
	assert.NoError(t, err)

	_, err = LoadManifest("missing.yaml")
	assert.ErrorContains(t, err, "missing.yaml")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr []string
	}{
		{
			name: "valid with empty group",
			data: `
groups:
  - name: Splash
    images:
      - {key: logo, path: images/logo.png}
  - name: game
`,
		},
		{
			name:    "unknown group",
			data:    "groups:\n  - name: credits\n",
			wantErr: []string{`groups[0]`, `credits`},
		},
		{
			name: "duplicate group",
			data: `
groups:
  - name: game
  - name: game
`,
			wantErr: []string{"group game declared twice"},
		},
		{
			name: "entry problems are all reported",
			data: `
groups:
  - name: game
    images:
      - {key: a, path: a.png}
      - {key: a, path: b.png}
      - {key: "", path: c.png}
    fonts:
      - {key: f}
`,
			wantErr: []string{`duplicate key "a"`, "game.images[2]: empty key", "game.fonts[0]: empty path"},
		},
		{
			name:    "malformed yaml",
			data:    "groups: [",
			wantErr: []string{"unmarshal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.data))
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				require.NotNil(t, m)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}

func TestRequestsKeepsEmptyGroups(t *testing.T) {
	m, err := Parse([]byte("groups:\n  - name: game\n"))
	require.NoError(t, err)

	requests, err := m.Requests()
	require.NoError(t, err)
	req, ok := requests[component.AssetGroupGame]
	require.True(t, ok)
	assert.Zero(t, req.Len())
	_, ok = requests[component.AssetGroupSplash]
	assert.False(t, ok)
}

func TestValidateNil(t *testing.T) {
	var m *Manifest
	assert.Error(t, m.Validate())
}
