package ui

import (
	"bytes"

	cfg "github.com/coedo/spankthefox/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the start screen overlay: title, volume warning and credits panel.
// It has no interactive widgets; the scene leaves the menu on a press edge.
type MenuUI struct {
	UI *ebitenui.UI

	titleFace        text.Face
	warningFace      text.Face
	creditsLabelFace text.Face
	creditsFace      text.Face
}

func NewMenuUI() (*MenuUI, error) {
	mui := &MenuUI{}
	if err := mui.loadFonts(); err != nil {
		return nil, err
	}
	mui.buildUI()
	return mui, nil
}

func (mui *MenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.TitleSize}
	mui.warningFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.WarningSize}
	mui.creditsLabelFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.CreditsLabelSize}
	mui.creditsFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.CreditsSize}
	return nil
}

func (mui *MenuUI) buildUI() {
	menu := cfg.Menu

	// Transparent root so the stage shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: menu.TitleTop}),
		)),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text(menu.Title, &mui.titleFace, &widget.LabelColor{Idle: menu.TitleColor}),
	)
	rootContainer.AddChild(centred(title))

	// Spacer between the title block and the warning line
	titleHeight := int(menu.TitleSize * 1.3)
	rootContainer.AddChild(widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(1, max(0, menu.WarningTop-menu.TitleTop-titleHeight))),
	))

	warning := widget.NewLabel(
		widget.LabelOpts.Text(menu.Warning, &mui.warningFace, &widget.LabelColor{Idle: menu.WarningColor}),
	)
	rootContainer.AddChild(centred(warning))

	rootContainer.AddChild(mui.buildCreditsPanel())

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buildCreditsPanel() *widget.Container {
	menu := cfg.Menu

	wrapper := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, int(menu.PanelOffset.Y)*2),
		),
	)

	padding := widget.NewInsetsSimple(menu.PanelMargin * 4)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(menu.PanelMargin*2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(menu.PanelSize.X), int(menu.PanelSize.Y)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(menu.CreditsLabel, &mui.creditsLabelFace, &widget.LabelColor{Idle: menu.CreditsColor}),
	))
	for _, line := range menu.Credits {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &mui.creditsFace, &widget.LabelColor{Idle: menu.CreditsColor}),
		))
	}

	wrapper.AddChild(panel)
	return wrapper
}

// centred wraps w so a vertical row layout places it in the middle
func centred(w widget.PreferredSizeLocateableWidget) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	c.AddChild(w)
	return c
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) Draw(screen *ebiten.Image) {
	mui.UI.Draw(screen)
}
