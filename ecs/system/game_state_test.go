package system

import (
	"testing"

	"github.com/milk9111/keystone/assets"
	"github.com/milk9111/keystone/ecs"
	"github.com/milk9111/keystone/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stateHarness struct {
	world   *ecs.World
	sched   *ecs.Scheduler
	assets  *fakeAssets
	groups  *component.LoadingGroups
	changes []component.StateChangedEvent
}

func newStateHarness(minSplash int, requests map[component.AssetGroup]component.LoadAssetGroupRequest) *stateHarness {
	h := &stateHarness{
		world:  ecs.NewWorld(),
		assets: newFakeAssets(),
		groups: component.NewLoadingGroups(),
	}
	h.sched = ecs.NewScheduler(
		NewAssetLoaderSystem(h.assets, assets.NewStore(), h.groups, discardLogger()),
		NewAssetReadinessSystem(h.assets, h.groups),
		NewGameStateSystem(requests, WithMinSplashFrames(minSplash), WithGameStateLogger(discardLogger())),
		ecs.SystemFunc(func(w *ecs.World) {
			ecs.Each(w.Events(), ecs.EventStateChanged, func(evt component.StateChangedEvent) {
				h.changes = append(h.changes, evt)
			})
		}),
	)
	return h
}

func (h *stateHarness) tick(n int) {
	for i := 0; i < n; i++ {
		h.sched.Update(h.world)
	}
}

func (h *stateHarness) runtime() *component.GameStateRuntime {
	return ecs.Singleton(h.world, component.GameStateComponent.Kind())
}

func testRequests() map[component.AssetGroup]component.LoadAssetGroupRequest {
	return map[component.AssetGroup]component.LoadAssetGroupRequest{
		component.AssetGroupSplash: {
			Group:  component.AssetGroupSplash,
			Images: []component.AssetEntry{{Key: "logo", Path: "images/logo.png"}},
		},
		component.AssetGroupGame: {
			Group:  component.AssetGroupGame,
			Images: []component.AssetEntry{{Key: "player", Path: "images/player.png"}},
			Audio:  []component.AssetEntry{{Key: "title", Path: "audio/title.wav"}},
		},
	}
}

func TestGameStateSystem_BootToGame(t *testing.T) {
	h := newStateHarness(3, testRequests())

	h.tick(2)
	assert.Equal(t, component.StateBoot, h.runtime().Current)
	assert.Equal(t, []component.AssetGroup{component.AssetGroupSplash}, h.groups.Groups(), "only splash is requested during boot")

	h.assets.setAll(assets.Loaded)
	// loader, readiness and state run in the same tick
	h.tick(1)
	require.Equal(t, component.StateSplash, h.runtime().Current)
	require.Len(t, h.changes, 1)
	assert.Equal(t, component.StateChangedEvent{From: component.StateBoot, To: component.StateSplash}, h.changes[0])

	// the game request is consumed on the next tick
	h.tick(1)
	assert.Equal(t, []component.AssetGroup{component.AssetGroupSplash, component.AssetGroupGame}, h.groups.Groups())
	assert.Equal(t, component.StateSplash, h.runtime().Current)

	h.assets.setAll(assets.Loaded)
	h.tick(1)
	assert.Equal(t, component.StateSplash, h.runtime().Current, "splash lasts the minimum frames")

	h.tick(3)
	assert.Equal(t, component.StateGame, h.runtime().Current)
	require.Len(t, h.changes, 2)
	assert.Equal(t, component.StateChangedEvent{From: component.StateSplash, To: component.StateGame}, h.changes[1])

	h.tick(5)
	assert.Len(t, h.changes, 2, "game is terminal")
	assert.Equal(t, 6, h.runtime().Frames)
}

func TestGameStateSystem_WaitsOnFailedGroup(t *testing.T) {
	h := newStateHarness(0, testRequests())

	h.tick(2)
	h.assets.setAll(assets.Failed)
	h.tick(10)
	assert.Equal(t, component.StateBoot, h.runtime().Current)
	assert.Empty(t, h.changes)
}

func TestGameStateSystem_MissingRequestsAreEmptyGroups(t *testing.T) {
	h := newStateHarness(0, nil)

	// splash: requested, tracked, ready
	h.tick(2)
	assert.Equal(t, component.StateSplash, h.runtime().Current)

	h.tick(2)
	assert.Equal(t, component.StateGame, h.runtime().Current)
	assert.True(t, h.runtime().Ready[component.AssetGroupGame])
}
