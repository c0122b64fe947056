package component

import (
	"fmt"
	"strings"
)

// AssetGroup names a collection of assets that must all finish loading before
// the scene depending on them can start. The set is closed: adding a group
// means adding a constant here and to AssetGroups.
type AssetGroup uint8

const (
	AssetGroupSplash AssetGroup = iota + 1
	AssetGroupGame
)

// AssetGroups lists every known group in evaluation order.
var AssetGroups = [...]AssetGroup{AssetGroupSplash, AssetGroupGame}

func (g AssetGroup) String() string {
	switch g {
	case AssetGroupSplash:
		return "splash"
	case AssetGroupGame:
		return "game"
	default:
		return fmt.Sprintf("AssetGroup(%d)", uint8(g))
	}
}

func (g AssetGroup) Valid() bool {
	return g == AssetGroupSplash || g == AssetGroupGame
}

// ParseAssetGroup maps a manifest group name to its AssetGroup.
func ParseAssetGroup(name string) (AssetGroup, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "splash":
		return AssetGroupSplash, nil
	case "game":
		return AssetGroupGame, nil
	default:
		return 0, fmt.Errorf("unknown asset group %q", name)
	}
}
