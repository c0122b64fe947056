package system

import (
	"log/slog"

	"github.com/milk9111/keystone/assets"
	"github.com/milk9111/keystone/ecs"
	"github.com/milk9111/keystone/ecs/component"
)

// LoadStateQuery exposes per-asset state. *assets.Server implements it.
type LoadStateQuery interface {
	LoadState(h assets.Handle) assets.LoadState
	Err(h assets.Handle) error
	Path(h assets.Handle) string
}

// LoadProgressSystem keeps the LoadProgress singleton current and reports
// each failed asset once.
type LoadProgressSystem struct {
	query    LoadStateQuery
	groups   *component.LoadingGroups
	logger   *slog.Logger
	reported map[groupHandle]bool
}

// groupHandle identifies a group member; a handle shared by several groups
// is reported once per group.
type groupHandle struct {
	group  component.AssetGroup
	handle assets.Handle
}

func NewLoadProgressSystem(query LoadStateQuery, groups *component.LoadingGroups, logger *slog.Logger) *LoadProgressSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadProgressSystem{
		query:    query,
		groups:   groups,
		logger:   logger,
		reported: make(map[groupHandle]bool),
	}
}

func (s *LoadProgressSystem) Update(w *ecs.World) {
	if w == nil || s.query == nil {
		return
	}
	progress := ecs.Singleton(w, component.LoadProgressComponent.Kind())
	if progress == nil {
		return
	}
	progress.Groups = make(map[component.AssetGroup]component.GroupProgress, s.groups.Len())

	for _, group := range s.groups.Groups() {
		handles, _ := s.groups.Handles(group)
		p := component.GroupProgress{Total: len(handles)}
		for _, h := range handles {
			switch s.query.LoadState(h) {
			case assets.Loaded:
				p.Loaded++
				delete(s.reported, groupHandle{group, h})
			case assets.Failed:
				p.Failed++
				s.reportFailure(w, group, h)
			default:
				// reloading, may fail again
				delete(s.reported, groupHandle{group, h})
			}
		}
		progress.Groups[group] = p
	}
}

func (s *LoadProgressSystem) reportFailure(w *ecs.World, group component.AssetGroup, h assets.Handle) {
	key := groupHandle{group, h}
	if s.reported[key] {
		return
	}
	s.reported[key] = true
	path := s.query.Path(h)
	err := s.query.Err(h)
	s.logger.Warn("asset group member failed to load", "group", group, "path", path, "error", err)
	w.Events().Push(ecs.Event{
		Type: ecs.EventAssetLoadFailed,
		Data: component.AssetLoadFailedEvent{Group: group, Path: path, Err: err},
	})
}
