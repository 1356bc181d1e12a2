package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// ViewerUI holds the ebitenui creature viewer panel
type ViewerUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Widget references for updates
	titleLabel  *widget.Label
	pathLabels  []*widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewViewerUI creates the creature viewer for the given scene.
func NewViewerUI(e *ecs.ECS) *ViewerUI {
	vui := &ViewerUI{ecs: e}

	vui.loadFonts()
	vui.buildUI()

	return vui
}

func (vui *ViewerUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	vui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	vui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
	vui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   9,
	}
}

func (vui *ViewerUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.NewInsetsSimple(8)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.ViewerPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	vui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &vui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	panel.AddChild(vui.titleLabel)

	// One label per resolved asset path
	for range systems.ViewerLines(systems.GetOrCreateViewer(vui.ecs)) {
		label := widget.NewLabel(
			widget.LabelOpts.Text("", &vui.smallFace, &widget.LabelColor{
				Idle: color.RGBA{200, 255, 200, 255},
			}),
		)
		vui.pathLabels = append(vui.pathLabels, label)
		panel.AddChild(label)
	}

	panel.AddChild(vui.buildSelectRow())
	panel.AddChild(vui.buildActionRow())

	vui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &vui.smallFace, &widget.LabelColor{
			Idle: cfg.Yellow,
		}),
	)
	panel.AddChild(vui.statusLabel)

	rootContainer.AddChild(panel)

	vui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (vui *ViewerUI) buildSelectRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	row.AddChild(vui.button("< Dex", func() {
		systems.PrevDex(systems.GetOrCreateViewer(vui.ecs))
	}))
	row.AddChild(vui.button("Dex >", func() {
		systems.NextDex(systems.GetOrCreateViewer(vui.ecs))
	}))
	row.AddChild(vui.button("Shiny", func() {
		systems.ToggleShiny(systems.GetOrCreateViewer(vui.ecs))
	}))
	row.AddChild(vui.button("Form", func() {
		systems.NextForm(systems.GetOrCreateViewer(vui.ecs))
	}))

	return row
}

func (vui *ViewerUI) buildActionRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	row.AddChild(vui.button("Cry", func() {
		systems.PlayViewerCry(vui.ecs)
	}))
	row.AddChild(vui.button("Apply", func() {
		systems.ApplyViewerToPlayer(vui.ecs)
	}))

	return row
}

func (vui *ViewerUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(48, 18),
		),
		widget.ButtonOpts.Image(vui.buttonImage()),
		widget.ButtonOpts.Text(label, &vui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			vui.UpdateUI()
		}),
	)
}

func (vui *ViewerUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.UI.ViewerButtonColor),
		Hover:   image.NewNineSliceColor(cfg.UI.ViewerHoverColor),
		Pressed: image.NewNineSliceColor(cfg.UI.ViewerPressedColor),
	}
}

// UpdateUI refreshes the labels when the selection changed.
func (vui *ViewerUI) UpdateUI() {
	viewer := systems.GetOrCreateViewer(vui.ecs)
	if !viewer.Dirty {
		return
	}
	viewer.Dirty = false

	shiny := ""
	if viewer.Shiny {
		shiny = " shiny"
	}
	vui.titleLabel.Label = fmt.Sprintf("#%03d form %d%s", viewer.Dex, viewer.Form, shiny)

	for i, line := range systems.ViewerLines(viewer) {
		if i >= len(vui.pathLabels) {
			break
		}
		text := fmt.Sprintf("%s: %s", line.Label, line.Path)
		if !line.Exists {
			text += " (missing)"
		}
		vui.pathLabels[i].Label = text
	}

	vui.statusLabel.Label = viewer.Status
}

// Update runs the panel's widgets. Call it only while the panel is open.
func (vui *ViewerUI) Update() {
	vui.UpdateUI()
	vui.UI.Update()
}
