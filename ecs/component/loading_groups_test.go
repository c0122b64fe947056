package component

import (
	"testing"

	"github.com/milk9111/keystone/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadingGroups(t *testing.T) {
	g := NewLoadingGroups()
	assert.Zero(t, g.Len())
	assert.Nil(t, g.Groups())

	g.Append(AssetGroupGame, 2, 3)
	g.Append(AssetGroupSplash)
	assert.Equal(t, []AssetGroup{AssetGroupSplash, AssetGroupGame}, g.Groups())

	handles, ok := g.Handles(AssetGroupSplash)
	assert.True(t, ok)
	assert.Empty(t, handles, "appending nothing still tracks the group")

	handles, _ = g.Handles(AssetGroupGame)
	handles[0] = 99
	again, _ := g.Handles(AssetGroupGame)
	assert.Equal(t, []assets.Handle{2, 3}, again, "Handles returns a copy")

	g.Set(AssetGroupGame, 4)
	again, _ = g.Handles(AssetGroupGame)
	assert.Equal(t, []assets.Handle{4}, again)

	g.Remove(AssetGroupGame)
	_, ok = g.Handles(AssetGroupGame)
	assert.False(t, ok)
	assert.Equal(t, 1, g.Len())
}

func TestParseAssetGroup(t *testing.T) {
	for _, group := range AssetGroups {
		parsed, err := ParseAssetGroup(" " + group.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, group, parsed)
		assert.True(t, group.Valid())
	}

	_, err := ParseAssetGroup("credits")
	assert.Error(t, err)
	assert.False(t, AssetGroup(0).Valid())
	assert.Equal(t, "AssetGroup(9)", AssetGroup(9).String())
}
