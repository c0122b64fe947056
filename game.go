package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/keystone/assets"
	"github.com/milk9111/keystone/config"
	"github.com/milk9111/keystone/ecs"
	"github.com/milk9111/keystone/ecs/component"
	"github.com/milk9111/keystone/ecs/render"
	"github.com/milk9111/keystone/ecs/system"
	"github.com/milk9111/keystone/logging"
	"github.com/milk9111/keystone/manifest"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	cfg    config.Config
	logger *logging.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	server    *assets.Server
	store     *assets.Store
	groups    *component.LoadingGroups
	states    *system.GameStateSystem
	watcher   *manifest.Watcher

	ui        *bootUI
	anims     *render.AnimationLibrary
	music     *musicPlayer
	titleFace ebtext.Face

	frames int
}

func NewGame(cfg config.Config, logger *logging.Logger, server *assets.Server, requests map[component.AssetGroup]component.LoadAssetGroupRequest) *Game {
	g := &Game{
		cfg:    cfg,
		logger: logger,
		world:  ecs.NewWorld(),
		server: server,
		store:  assets.NewStore(),
		groups: component.NewLoadingGroups(),
		ui:     newBootUI(),
		anims:  render.NewAnimationLibrary(),
	}
	g.music = &musicPlayer{server: server, store: g.store, logger: logger.Logger}

	var readinessOpts []system.ReadinessOption
	if cfg.NotifyOnce {
		readinessOpts = append(readinessOpts, system.WithNotifyOnce())
	}
	g.states = system.NewGameStateSystem(requests,
		system.WithMinSplashFrames(cfg.MinSplashFrames),
		system.WithGameStateLogger(logger.Logger),
	)
	g.scheduler = ecs.NewScheduler(
		system.NewAssetLoaderSystem(server, g.store, g.groups, logger.Logger),
		system.NewAssetReadinessSystem(server, g.groups, readinessOpts...),
		system.NewLoadProgressSystem(server, g.groups, logger.Logger),
		g.states,
		ecs.SystemFunc(g.onStateChanged),
	)

	g.anims.Register("player_idle", render.Animation{Frames: frameKeys("player_idle", 4), FrameTicks: 10})
	g.anims.Register("player_run", render.Animation{Frames: frameKeys("player_run", 10), FrameTicks: 6})

	if cfg.Watch {
		w, err := manifest.NewWatcher(manifest.Dir())
		if err != nil {
			logger.Logger.Warn("manifest hot reload disabled", "error", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func frameKeys(prefix string, n int) []string {
	keys := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		keys = append(keys, fmt.Sprintf("%s_%d", prefix, i))
	}
	return keys
}

func (g *Game) Update() error {
	g.frames++
	g.pollManifest()
	g.scheduler.Update(g.world)

	rt := ecs.Singleton(g.world, component.GameStateComponent.Kind())
	if rt.Current == component.StateBoot {
		g.ui.refresh(ecs.Singleton(g.world, component.LoadProgressComponent.Kind()), rt.Current)
	}
	return nil
}

// onStateChanged runs last in the tick, while the state events are queued.
func (g *Game) onStateChanged(w *ecs.World) {
	ecs.Each(w.Events(), ecs.EventStateChanged, func(evt component.StateChangedEvent) {
		switch evt.To {
		case component.StateSplash:
			g.titleFace = g.loadFace("default", 24)
		case component.StateGame:
			if face := g.loadFace("title", 48); face != nil {
				g.titleFace = face
			}
			g.music.play("title")
		}
	})
}

func (g *Game) loadFace(key string, size float64) ebtext.Face {
	h, ok := g.store.Font(key)
	if !ok {
		return nil
	}
	f, ok := assets.Value[*opentype.Font](g.server, h)
	if !ok {
		return nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		g.logger.Logger.Warn("create font face", "key", key, "error", err)
		return nil
	}
	return ebtext.NewGoXFace(face)
}

// pollManifest re-requests every group already asked for when the manifest
// changed on disk, and reloads the assets it lists.
func (g *Game) pollManifest() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		g.reloadManifest(name)
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Logger.Warn("manifest watcher", "error", err)
		}
	default:
	}
}

func (g *Game) reloadManifest(name string) {
	m, err := manifest.LoadManifest(g.cfg.Manifest)
	if err != nil {
		g.logger.Logger.Error("manifest reload failed", "file", name, "error", err)
		return
	}
	requests, err := m.Requests()
	if err != nil {
		g.logger.Logger.Error("manifest reload failed", "file", name, "error", err)
		return
	}
	g.states.SetRequests(requests)

	rt := ecs.Singleton(g.world, component.GameStateComponent.Kind())
	for group, req := range requests {
		if !rt.Requested[group] {
			continue
		}
		for _, entries := range [][]component.AssetEntry{req.Images, req.Fonts, req.Audio} {
			for _, e := range entries {
				if h, ok := g.server.Handle(e.Path); ok {
					render.Forget(h)
					g.server.Reload(h)
				}
			}
		}
		req.Replace = true
		system.RequestAssetGroup(g.world, &req)
	}
	g.logger.Logger.Info("manifest reloaded", "file", name, "groups", len(requests))
}

func (g *Game) Draw(screen *ebiten.Image) {
	rt := ecs.Singleton(g.world, component.GameStateComponent.Kind())
	switch rt.Current {
	case component.StateBoot:
		g.ui.ui.Draw(screen)
	case component.StateSplash:
		g.drawSplash(screen)
	case component.StateGame:
		g.drawGame(screen, rt.Frames)
	}

	if g.cfg.Debug {
		g.drawDebug(screen, rt)
	}
}

func (g *Game) drawSplash(screen *ebiten.Image) {
	screen.Fill(color.Black)
	logo := render.StoreImage(g.server, g.store, "logo")
	if logo == nil {
		return
	}
	const logoSize = 180.0
	b := logo.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(logoSize/float64(b.Dx()), logoSize/float64(b.Dy()))
	op.GeoM.Translate((baseWidth-logoSize)/2, (baseHeight-logoSize)/2)
	screen.DrawImage(logo, op)
}

func (g *Game) drawGame(screen *ebiten.Image, frames int) {
	screen.Fill(color.NRGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff})

	if anim, ok := g.anims.Get("player_idle"); ok {
		if img := render.StoreImage(g.server, g.store, anim.Frame(frames)); img != nil {
			b := img.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(4, 4)
			op.GeoM.Translate(baseWidth/2-float64(b.Dx())*2, baseHeight/2-float64(b.Dy())*2)
			screen.DrawImage(img, op)
		}
	}

	if g.titleFace != nil {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(baseWidth/2, 80)
		op.PrimaryAlign = ebtext.AlignCenter
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, "keystone", g.titleFace, op)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image, rt *component.GameStateRuntime) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.2f  tick: %d  state: %s\n", ebiten.ActualFPS(), g.world.Tick(), rt.Current)
	for _, msg := range g.logger.Recent(8) {
		fmt.Fprintf(&b, "%s %s", msg.Level, msg.Message)
		for _, a := range msg.Attributes {
			fmt.Fprintf(&b, " %s=%s", a.Key, a.Value)
		}
		b.WriteByte('\n')
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the watcher and stops background loads.
func (g *Game) Close() error {
	g.music.stop()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	return g.server.Close()
}
