package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/keystone/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// bootUI is the loading panel shown until the splash group is ready. It uses
// the built-in basic font since no font asset is loaded yet.
type bootUI struct {
	ui     *ebitenui.UI
	status *widget.Text
	groups map[component.AssetGroup]*widget.Text
}

func newBootUI() *bootUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Loading", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	status := widget.NewText(
		widget.TextOpts.Text("waiting for assets", &face, color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	b := &bootUI{status: status, groups: make(map[component.AssetGroup]*widget.Text)}
	for _, group := range component.AssetGroups {
		label := widget.NewText(
			widget.TextOpts.Text(formatProgress(group, component.GroupProgress{}, false), &face, white),
			widget.TextOpts.WidgetOpts(centered),
		)
		b.groups[group] = label
		panel.AddChild(label)
	}
	panel.AddChild(status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	b.ui = &ebitenui.UI{Container: root}
	return b
}

// refresh copies the current progress into the labels.
func (b *bootUI) refresh(progress *component.LoadProgress, state component.GameState) {
	if b == nil {
		return
	}
	for group, label := range b.groups {
		p, tracked := component.GroupProgress{}, false
		if progress != nil {
			p, tracked = progress.Groups[group]
		}
		label.Label = formatProgress(group, p, tracked)
	}
	b.status.Label = fmt.Sprintf("state: %s", state)
	b.ui.Update()
}

func formatProgress(group component.AssetGroup, p component.GroupProgress, tracked bool) string {
	if !tracked {
		return fmt.Sprintf("%-6s  queued", group)
	}
	s := fmt.Sprintf("%-6s  %d/%d  %3.0f%%", group, p.Loaded, p.Total, p.Fraction()*100)
	if p.Failed > 0 {
		s += fmt.Sprintf("  (%d failed)", p.Failed)
	}
	return s
}
