package system

import (
	"github.com/milk9111/keystone/assets"
	"github.com/milk9111/keystone/ecs"
	"github.com/milk9111/keystone/ecs/component"
)

// LoadStatus answers whether a set of assets has finished loading.
// *assets.Server implements it.
type LoadStatus interface {
	IsLoaded(handles ...assets.Handle) bool
}

// CheckAssetGroups returns one event for every tracked group whose assets
// are all loaded. Groups are visited in ascending order.
func CheckAssetGroups(groups *component.LoadingGroups, status LoadStatus) []component.AssetsLoadedEvent {
	if groups == nil || status == nil {
		return nil
	}
	var out []component.AssetsLoadedEvent
	for _, group := range groups.Groups() {
		handles, _ := groups.Handles(group)
		if status.IsLoaded(handles...) {
			out = append(out, component.AssetsLoadedEvent{Group: group})
		}
	}
	return out
}

// AssetReadinessSystem publishes an AssetsLoadedEvent for each loaded group
// on every tick. It keeps no state unless built with WithNotifyOnce.
type AssetReadinessSystem struct {
	status     LoadStatus
	groups     *component.LoadingGroups
	notifyOnce bool
	notified   map[component.AssetGroup]bool
}

type ReadinessOption func(*AssetReadinessSystem)

// WithNotifyOnce suppresses repeats: a group is announced once and again only
// after it has been observed not loaded (for example after a hot reload
// replaced its assets).
func WithNotifyOnce() ReadinessOption {
	return func(s *AssetReadinessSystem) {
		s.notifyOnce = true
	}
}

func NewAssetReadinessSystem(status LoadStatus, groups *component.LoadingGroups, opts ...ReadinessOption) *AssetReadinessSystem {
	s := &AssetReadinessSystem{
		status:   status,
		groups:   groups,
		notified: make(map[component.AssetGroup]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AssetReadinessSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	events := CheckAssetGroups(s.groups, s.status)

	if s.notifyOnce {
		loaded := make(map[component.AssetGroup]bool, len(events))
		for _, evt := range events {
			loaded[evt.Group] = true
		}
		for group := range s.notified {
			if !loaded[group] {
				delete(s.notified, group)
			}
		}
	}

	for _, evt := range events {
		if s.notifyOnce {
			if s.notified[evt.Group] {
				continue
			}
			s.notified[evt.Group] = true
		}
		w.Events().Push(ecs.Event{Type: ecs.EventAssetsLoaded, Data: evt})
	}
}
