package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pmattheis/balloonfield/components"
	cfg "github.com/pmattheis/balloonfield/config"
	"github.com/pmattheis/balloonfield/systems"
	"golang.org/x/image/font/gofont/goregular"
)

// ShellUI is the page chrome bar: balloon enable, mute and theme toggles.
// It owns the SettingsData mutations; the balloon systems only read them.
type ShellUI struct {
	UI       *ebitenui.UI
	Settings *components.SettingsData

	// Widget references for label updates
	balloonButton *widget.Button
	soundButton   *widget.Button
	themeButton   *widget.Button
	titleLabel    *widget.Label

	face        text.Face
	initialized bool
}

// NewShellUI creates the shell bar bound to the given settings.
func NewShellUI(settings *components.SettingsData) *ShellUI {
	sui := &ShellUI{
		Settings: settings,
	}

	sui.loadFont()
	sui.buildUI()

	return sui
}

func (sui *ShellUI) loadFont() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.face = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *ShellUI) buildUI() {
	palette := sui.Settings.Palette()

	// Root container with AnchorLayout; only the bar has a background so
	// the page underneath stays visible and clickable.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	barContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(palette.Bar)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
			widget.WidgetOpts.MinSize(cfg.C.Width, int(cfg.Shell.BarHeight)),
		),
	)

	sui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("balloonfield", &sui.face, &widget.LabelColor{
			Idle: palette.Heading,
		}),
	)
	barContainer.AddChild(sui.titleLabel)

	sui.balloonButton = sui.toggleButton(sui.balloonLabel(), func() {
		sui.Settings.BalloonsEnabled = !sui.Settings.BalloonsEnabled
		systems.SaveCurrentSettings(sui.Settings)
	})
	barContainer.AddChild(sui.balloonButton)

	sui.soundButton = sui.toggleButton(sui.soundLabel(), func() {
		sui.Settings.Muted = !sui.Settings.Muted
		systems.SaveCurrentSettings(sui.Settings)
	})
	barContainer.AddChild(sui.soundButton)

	sui.themeButton = sui.toggleButton(sui.themeLabel(), func() {
		if sui.Settings.Theme == cfg.ThemeDark {
			sui.Settings.Theme = cfg.ThemeLight
		} else {
			sui.Settings.Theme = cfg.ThemeDark
		}
		systems.SaveCurrentSettings(sui.Settings)
		// Bar colors come from the palette, so rebuild on theme change.
		sui.buildUI()
	})
	barContainer.AddChild(sui.themeButton)

	rootContainer.AddChild(barContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *ShellUI) toggleButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(110, 22),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func (sui *ShellUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func (sui *ShellUI) balloonLabel() string {
	if sui.Settings.BalloonsEnabled {
		return "Balloons: On"
	}
	return "Balloons: Off"
}

func (sui *ShellUI) soundLabel() string {
	if sui.Settings.Muted {
		return "Sound: Muted"
	}
	return "Sound: On"
}

func (sui *ShellUI) themeLabel() string {
	if sui.Settings.Theme == cfg.ThemeDark {
		return "Theme: Dark"
	}
	return "Theme: Light"
}

// UpdateUI refreshes button labels from the current settings.
func (sui *ShellUI) UpdateUI() {
	if sui.balloonButton != nil {
		if textWidget := sui.balloonButton.Text(); textWidget != nil {
			textWidget.Label = sui.balloonLabel()
		}
	}
	if sui.soundButton != nil {
		if textWidget := sui.soundButton.Text(); textWidget != nil {
			textWidget.Label = sui.soundLabel()
		}
	}
	if sui.themeButton != nil {
		if textWidget := sui.themeButton.Text(); textWidget != nil {
			textWidget.Label = sui.themeLabel()
		}
	}
}

// Update calls the UI's Update method
func (sui *ShellUI) Update() {
	sui.UI.Update()
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
