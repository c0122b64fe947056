package system

import (
	"log/slog"

	"github.com/milk9111/keystone/ecs"
	"github.com/milk9111/keystone/ecs/component"
)

// defaultMinSplashFrames keeps the splash on screen for about two seconds at
// 60 TPS even when the game group is already cached.
const defaultMinSplashFrames = 120

// GameStateSystem drives Boot -> Splash -> Game. Boot asks for the splash
// group, Splash asks for the game group, and each scene ends once the
// readiness system has announced the group it was waiting on.
type GameStateSystem struct {
	requests        map[component.AssetGroup]component.LoadAssetGroupRequest
	minSplashFrames int
	logger          *slog.Logger
}

type GameStateOption func(*GameStateSystem)

// WithMinSplashFrames sets how many ticks the splash scene lasts at minimum.
// Zero leaves the splash as soon as the game group is ready.
func WithMinSplashFrames(frames int) GameStateOption {
	return func(s *GameStateSystem) {
		if frames >= 0 {
			s.minSplashFrames = frames
		}
	}
}

func WithGameStateLogger(logger *slog.Logger) GameStateOption {
	return func(s *GameStateSystem) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewGameStateSystem(requests map[component.AssetGroup]component.LoadAssetGroupRequest, opts ...GameStateOption) *GameStateSystem {
	s := &GameStateSystem{
		requests:        requests,
		minSplashFrames: defaultMinSplashFrames,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetRequests swaps the group requests, e.g. after the manifest was edited.
func (s *GameStateSystem) SetRequests(requests map[component.AssetGroup]component.LoadAssetGroupRequest) {
	s.requests = requests
}

func (s *GameStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	rt := ecs.Singleton(w, component.GameStateComponent.Kind())
	if rt == nil {
		return
	}
	if rt.Ready == nil {
		rt.Ready = make(map[component.AssetGroup]bool)
	}
	if rt.Requested == nil {
		rt.Requested = make(map[component.AssetGroup]bool)
	}

	ecs.Each(w.Events(), ecs.EventAssetsLoaded, func(evt component.AssetsLoadedEvent) {
		if !rt.Ready[evt.Group] {
			s.logger.Info("asset group ready", "group", evt.Group, "state", rt.Current)
		}
		rt.Ready[evt.Group] = true
	})

	switch rt.Current {
	case component.StateBoot:
		s.request(w, rt, component.AssetGroupSplash)
		if rt.Ready[component.AssetGroupSplash] {
			s.enter(w, rt, component.StateSplash)
			s.request(w, rt, component.AssetGroupGame)
			return
		}
	case component.StateSplash:
		s.request(w, rt, component.AssetGroupGame)
		if rt.Ready[component.AssetGroupGame] && rt.Frames >= s.minSplashFrames {
			s.enter(w, rt, component.StateGame)
			return
		}
	}
	rt.Frames++
}

func (s *GameStateSystem) request(w *ecs.World, rt *component.GameStateRuntime, group component.AssetGroup) {
	if rt.Requested[group] {
		return
	}
	rt.Requested[group] = true
	req, ok := s.requests[group]
	if !ok {
		// nothing to load: the group is ready as soon as it is tracked
		req = component.LoadAssetGroupRequest{Group: group}
	}
	req.Group = group
	RequestAssetGroup(w, &req)
}

func (s *GameStateSystem) enter(w *ecs.World, rt *component.GameStateRuntime, next component.GameState) {
	prev := rt.Current
	rt.Current = next
	rt.Frames = 0
	s.logger.Info("game state changed", "from", prev, "to", next)
	w.Events().Push(ecs.Event{
		Type: ecs.EventStateChanged,
		Data: component.StateChangedEvent{From: prev, To: next},
	})
}
