package system

import (
	"testing"

	"github.com/milk9111/keystone/assets"
	"github.com/milk9111/keystone/ecs"
	"github.com/milk9111/keystone/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProgressSystem(t *testing.T) {
	status := newFakeAssets()
	logo := status.Load("images/logo.png")
	run := status.Load("images/run.png")
	idle := status.Load("images/idle.png")

	groups := component.NewLoadingGroups()
	groups.Set(component.AssetGroupSplash, logo)
	groups.Set(component.AssetGroupGame, run, idle)

	w := ecs.NewWorld()
	var failures []component.AssetLoadFailedEvent
	collect := ecs.SystemFunc(func(w *ecs.World) {
		ecs.Each(w.Events(), ecs.EventAssetLoadFailed, func(evt component.AssetLoadFailedEvent) {
			failures = append(failures, evt)
		})
	})
	sched := ecs.NewScheduler(NewLoadProgressSystem(status, groups, discardLogger()), collect)

	sched.Update(w)
	progress := ecs.Singleton(w, component.LoadProgressComponent.Kind())
	assert.Equal(t, component.GroupProgress{Total: 1}, progress.Groups[component.AssetGroupSplash])
	assert.Equal(t, component.GroupProgress{Total: 2}, progress.Groups[component.AssetGroupGame])

	status.set(assets.Loaded, logo, run)
	status.set(assets.Failed, idle)
	sched.Update(w)
	sched.Update(w)

	splash := progress.Groups[component.AssetGroupSplash]
	assert.True(t, splash.Done())
	assert.Equal(t, 1.0, splash.Fraction())

	game := progress.Groups[component.AssetGroupGame]
	assert.Equal(t, component.GroupProgress{Loaded: 1, Failed: 1, Total: 2}, game)
	assert.True(t, game.Done())
	assert.InDelta(t, 0.5, game.Fraction(), 1e-9)

	require.Len(t, failures, 1, "a failure is reported once")
	assert.Equal(t, component.AssetGroupGame, failures[0].Group)
	assert.Equal(t, "images/idle.png", failures[0].Path)
	assert.ErrorIs(t, failures[0].Err, errMissing)

	// reloading and failing again is a new failure
	status.set(assets.Loading, idle)
	sched.Update(w)
	status.set(assets.Failed, idle)
	sched.Update(w)
	assert.Len(t, failures, 2)
}

func TestLoadProgressSystem_DropsUntrackedGroups(t *testing.T) {
	status := newFakeAssets()
	h := status.Load("a.png")
	groups := component.NewLoadingGroups()
	groups.Set(component.AssetGroupGame, h)

	w := ecs.NewWorld()
	sys := NewLoadProgressSystem(status, groups, discardLogger())
	sys.Update(w)

	groups.Remove(component.AssetGroupGame)
	sys.Update(w)

	progress := ecs.Singleton(w, component.LoadProgressComponent.Kind())
	assert.Empty(t, progress.Groups)
}

func TestLoadProgressSystem_SharedFailureReportedPerGroup(t *testing.T) {
	status := newFakeAssets()
	shared := status.Load("fonts/shared.ttf")
	status.set(assets.Failed, shared)

	groups := component.NewLoadingGroups()
	groups.Set(component.AssetGroupSplash, shared)
	groups.Set(component.AssetGroupGame, shared)

	w := ecs.NewWorld()
	var failed []component.AssetGroup
	collect := ecs.SystemFunc(func(w *ecs.World) {
		ecs.Each(w.Events(), ecs.EventAssetLoadFailed, func(evt component.AssetLoadFailedEvent) {
			failed = append(failed, evt.Group)
		})
	})
	sched := ecs.NewScheduler(NewLoadProgressSystem(status, groups, discardLogger()), collect)

	sched.Update(w)
	sched.Update(w)
	assert.Equal(t, []component.AssetGroup{component.AssetGroupSplash, component.AssetGroupGame}, failed)
}

func TestGroupProgressEmpty(t *testing.T) {
	var p component.GroupProgress
	assert.True(t, p.Done())
	assert.Equal(t, 1.0, p.Fraction())
}
