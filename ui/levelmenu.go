package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelMenu is the in-game overlay for switching levels and toggling the
// debug display.
type LevelMenu struct {
	UI *ebitenui.UI

	// Callbacks
	OnSelect      func(name string)
	OnToggleDebug func()
	OnResume      func()

	levels      []string
	debugButton *widget.Button
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewLevelMenu builds the overlay for the given level names.
func NewLevelMenu(levels []string, onSelect func(string), onToggleDebug, onResume func()) (*LevelMenu, error) {
	m := &LevelMenu{
		OnSelect:      onSelect,
		OnToggleDebug: onToggleDebug,
		OnResume:      onResume,
		levels:        append([]string(nil), levels...),
	}
	if err := m.loadFonts(); err != nil {
		return nil, err
	}
	m.buildUI()
	return m, nil
}

func (m *LevelMenu) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load menu font: %w", err)
	}
	m.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	m.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	m.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (m *LevelMenu) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("LEVELS", &m.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	for _, name := range m.levels {
		level := name
		content.AddChild(m.button(level, 140, func() {
			if m.OnSelect != nil {
				m.OnSelect(level)
			}
		}))
	}

	m.debugButton = m.button("Debug: off", 140, func() {
		if m.OnToggleDebug != nil {
			m.OnToggleDebug()
		}
	})
	content.AddChild(m.debugButton)

	content.AddChild(m.button("Resume", 140, func() {
		if m.OnResume != nil {
			m.OnResume()
		}
	}))

	m.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &m.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 120, 120, 255},
		}),
	)
	content.AddChild(m.statusLabel)

	rootContainer.AddChild(content)
	m.UI = &ebitenui.UI{Container: rootContainer}
}

func (m *LevelMenu) button(label string, width int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 22)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &m.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 70, 90, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 100, 120, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 50, 70, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Refresh shows the debug flag and the last load error, if any.
func (m *LevelMenu) Refresh(showDebug bool, status string) {
	if m.debugButton != nil {
		label := "Debug: off"
		if showDebug {
			label = "Debug: on"
		}
		if textWidget := m.debugButton.Text(); textWidget != nil {
			textWidget.Label = label
		}
	}
	if m.statusLabel != nil {
		m.statusLabel.Label = status
	}
}

func (m *LevelMenu) Update() {
	m.UI.Update()
}

func (m *LevelMenu) Draw(screen *ebiten.Image) {
	m.UI.Draw(screen)
}
