package app

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"scalepreview/internal/preview"
	"scalepreview/internal/style"
	"scalepreview/internal/textrun"
	"scalepreview/internal/ui"
)

type Options struct {
	Style   style.Style
	Logger  *slog.Logger
	Session preview.Session
	// Picks receives userpics chosen with the file dialog.
	Picks       chan<- image.Image
	Ratio       int
	Translucent bool
	Scale       int
}

// App hosts the settings page in an ebiten window.
type App struct {
	log      *slog.Logger
	opts     Options
	ratio    int
	faces    *textrun.Faces
	settings *ui.Settings

	frame  *image.RGBA
	canvas *ebiten.Image

	focused bool
	night   bool
	status  string

	screenW int
	screenH int
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	ratio := max(opts.Ratio, 1)
	faces := textrun.NewFaces()
	settings := ui.NewSettings(ui.SettingsOptions{
		Style:       opts.Style,
		Logger:      log,
		Session:     opts.Session,
		Faces:       faces,
		Ratio:       ratio,
		Translucent: opts.Translucent,
		Scale:       opts.Scale,
	}, 900, 640)
	return &App{
		log:      log,
		opts:     opts,
		ratio:    ratio,
		faces:    faces,
		settings: settings,
		focused:  true,
		status:   "Drag the slider. Ctrl+O picks a userpic, Ctrl+N toggles night mode, Ctrl+C copies geometry.",
	}
}

func (a *App) Run() error {
	ebiten.SetWindowTitle("Interface scale")
	ebiten.SetWindowSize(900, 640)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(480, 360, -1, -1)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if focused := ebiten.IsFocused(); focused != a.focused {
		a.focused = focused
		a.settings.SetFocused(focused)
	}

	x, y := ebiten.CursorPosition()
	x, y = x/a.ratio, y/a.ratio
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.settings.Press(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		a.settings.Move(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.settings.Release()
		a.status = fmt.Sprintf("Interface scale: %d%%", a.settings.Scale())
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyReport()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := a.pickUserpic(); err != nil {
			a.log.Warn("pick userpic", slog.Any("error", err))
			a.status = "Userpic: " + err.Error()
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.toggleNight()
	}

	a.settings.Tick(time.Now())
	return nil
}

func (a *App) copyReport() {
	report := a.settings.Report()
	if err := clipboard.WriteAll(report); err != nil {
		a.log.Warn("copy geometry", slog.Any("error", err))
		a.status = "Copy failed: " + err.Error()
		return
	}
	a.status = "Copied: " + report
}

func (a *App) toggleNight() {
	a.night = !a.night
	palette := style.DefaultPalette()
	if a.night {
		palette = style.NightPalette()
	}
	a.settings.SetPalette(palette)
	a.log.Debug("palette switched", slog.Bool("night", a.night))
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if a.frame == nil || a.frame.Bounds().Dx() != w || a.frame.Bounds().Dy() != h {
		a.frame = image.NewRGBA(image.Rect(0, 0, w, h))
		a.canvas = ebiten.NewImage(w, h)
	}

	a.settings.Paint(a.frame)
	a.canvas.WritePixels(a.frame.Pix)
	screen.DrawImage(a.canvas, nil)

	statusFace := a.faces.Face(11*a.ratio, false)
	text.Draw(screen, a.status, statusFace, 12*a.ratio, h-8*a.ratio, color.RGBA{R: 42, G: 56, B: 80, A: 255})
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth < 480 {
		outsideWidth = 480
	}
	if outsideHeight < 360 {
		outsideHeight = 360
	}
	a.screenW = outsideWidth
	a.screenH = outsideHeight
	a.settings.Resize(outsideWidth, outsideHeight)
	return outsideWidth * a.ratio, outsideHeight * a.ratio
}
