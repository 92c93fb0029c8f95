package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/genjam/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MenuStyle holds the colours of a menu panel.
type MenuStyle struct {
	Background    color.Color // nil leaves the screen behind visible
	Panel         color.Color
	Title         color.Color
	Text          color.Color
	TextSelected  color.Color
	ButtonIdle    color.Color
	ButtonHover   color.Color
	ButtonPressed color.Color
}

// MenuUI renders a Menu as a centred ebitenui panel with a title, an
// optional subtitle and one button per option. Mouse clicks and keyboard
// navigation share the same Menu.
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *Menu

	subtitle *widget.Text
	buttons  []*widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds the widget tree for menu.
func NewMenuUI(title string, menu *Menu, style MenuStyle) *MenuUI {
	mui := &MenuUI{
		Menu:       menu,
		titleFace:  fonts.Title.Text(),
		normalFace: fonts.Bold.Text(),
		smallFace:  fonts.Small.Text(),
	}
	mui.buildUI(title, style)
	mui.refresh()
	return mui
}

func (mui *MenuUI) buildUI(title string, style MenuStyle) {
	rootOpts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	}
	if style.Background != nil {
		rootOpts = append(rootOpts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Background)))
	}
	root := widget.NewContainer(rootOpts...)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &mui.titleFace, style.Title),
		widget.TextOpts.WidgetOpts(centered),
	))

	mui.subtitle = widget.NewText(
		widget.TextOpts.Text("", &mui.smallFace, style.Text),
		widget.TextOpts.WidgetOpts(centered),
	)
	panel.AddChild(mui.subtitle)

	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(style.ButtonIdle),
		Hover:   image.NewNineSliceColor(style.ButtonHover),
		Pressed: image.NewNineSliceColor(style.ButtonPressed),
	}

	for i, option := range mui.Menu.Options {
		idx := i
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(160, 24),
				centered,
			),
			widget.ButtonOpts.Image(buttonImage),
			widget.ButtonOpts.Text(option, &mui.normalFace, &widget.ButtonTextColor{
				Idle:    style.Text,
				Hover:   style.TextSelected,
				Pressed: style.TextSelected,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				mui.Menu.Select(idx)
				mui.refresh()
				mui.Menu.Run(idx)
			}),
		)
		mui.buttons = append(mui.buttons, btn)
		panel.AddChild(btn)
	}

	root.AddChild(panel)
	mui.UI = &ebitenui.UI{Container: root}
}

// SetSubtitle changes the line under the title.
func (mui *MenuUI) SetSubtitle(s string) {
	mui.subtitle.Label = s
}

// Move shifts the keyboard cursor.
func (mui *MenuUI) Move(delta int) {
	mui.Menu.Move(delta)
	mui.refresh()
}

// Activate runs the option under the keyboard cursor.
func (mui *MenuUI) Activate() {
	mui.Menu.Activate()
}

func (mui *MenuUI) refresh() {
	for i, btn := range mui.buttons {
		if textWidget := btn.Text(); textWidget != nil {
			textWidget.Label = mui.Menu.Label(i)
		}
	}
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
