package component

// AssetEntry binds a lookup key to an asset path.
type AssetEntry struct {
	Key  string
	Path string
}

// LoadAssetGroupRequest is a one-shot request asking the asset loader system
// to start loading a group. The request entity is destroyed once consumed.
//
// Replace drops the handles previously tracked for Group; without it the new
// handles are appended.
type LoadAssetGroupRequest struct {
	Group   AssetGroup
	Images  []AssetEntry
	Fonts   []AssetEntry
	Audio   []AssetEntry
	Replace bool
}

// Len returns the number of entries across all kinds.
func (r LoadAssetGroupRequest) Len() int {
	return len(r.Images) + len(r.Fonts) + len(r.Audio)
}

var LoadAssetGroupRequestComponent = NewComponent[LoadAssetGroupRequest]()
