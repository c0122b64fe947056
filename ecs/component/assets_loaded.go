package component

// AssetsLoadedEvent reports that every asset of Group is loaded. It is
// re-sent every tick the group stays loaded unless the readiness system was
// built with notify-once.
type AssetsLoadedEvent struct {
	Group AssetGroup
}

// AssetLoadFailedEvent is sent once per asset that ended in the failed state.
type AssetLoadFailedEvent struct {
	Group AssetGroup
	Path  string
	Err   error
}
