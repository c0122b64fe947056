package system

import (
	"log/slog"

	"github.com/milk9111/keystone/assets"
	"github.com/milk9111/keystone/ecs"
	"github.com/milk9111/keystone/ecs/component"
)

// AssetLoader starts loading a path and returns its handle immediately.
// *assets.Server implements it.
type AssetLoader interface {
	Load(path string) assets.Handle
}

// AssetLoaderSystem turns LoadAssetGroupRequest entities into asset loads,
// store keys and group membership.
type AssetLoaderSystem struct {
	loader AssetLoader
	store  *assets.Store
	groups *component.LoadingGroups
	logger *slog.Logger
}

func NewAssetLoaderSystem(loader AssetLoader, store *assets.Store, groups *component.LoadingGroups, logger *slog.Logger) *AssetLoaderSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssetLoaderSystem{
		loader: loader,
		store:  store,
		groups: groups,
		logger: logger,
	}
}

// RequestAssetGroup queues req for the asset loader system.
func RequestAssetGroup(w *ecs.World, req *component.LoadAssetGroupRequest) {
	if w == nil || req == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.LoadAssetGroupRequestComponent.Kind(), req)
}

func (s *AssetLoaderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var requests []component.LoadAssetGroupRequest
	var requestEntities []ecs.Entity
	ecs.ForEach(w, component.LoadAssetGroupRequestComponent.Kind(), func(ent ecs.Entity, req *component.LoadAssetGroupRequest) {
		requestEntities = append(requestEntities, ent)
		if req != nil {
			requests = append(requests, *req)
		}
	})
	for _, ent := range requestEntities {
		ecs.DestroyEntity(w, ent)
	}

	for _, req := range requests {
		s.apply(req)
	}
}

func (s *AssetLoaderSystem) apply(req component.LoadAssetGroupRequest) {
	if !req.Group.Valid() {
		s.logger.Warn("ignoring load request for unknown group", "group", req.Group)
		return
	}
	if s.loader == nil {
		s.logger.Error("no asset loader configured", "group", req.Group)
		return
	}

	handles := make([]assets.Handle, 0, req.Len())
	handles = s.loadEntries(handles, assets.KindImage, req.Images)
	handles = s.loadEntries(handles, assets.KindFont, req.Fonts)
	handles = s.loadEntries(handles, assets.KindAudio, req.Audio)

	if req.Replace {
		s.groups.Set(req.Group, handles...)
	} else {
		s.groups.Append(req.Group, handles...)
	}
	s.logger.Info("loading asset group", "group", req.Group, "assets", len(handles), "replace", req.Replace)
}

func (s *AssetLoaderSystem) loadEntries(handles []assets.Handle, kind assets.Kind, entries []component.AssetEntry) []assets.Handle {
	for _, entry := range entries {
		h := s.loader.Load(entry.Path)
		if !h.Valid() {
			s.logger.Warn("asset loader returned invalid handle", "path", entry.Path)
			continue
		}
		s.store.Set(kind, entry.Key, h)
		handles = append(handles, h)
	}
	return handles
}
