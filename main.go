package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/OpticalFlyer/showcase/config"
	"github.com/OpticalFlyer/showcase/render/screen"
	"github.com/OpticalFlyer/showcase/settings"
	"github.com/OpticalFlyer/showcase/showcase"
	"github.com/OpticalFlyer/showcase/ui"
)

const appName = "canvas-showcases"

var (
	configPath = flag.String("config", "", "YAML config file (default: embedded catalogue)")
	showcaseID = flag.String("showcase", "", "show only the showcase with this id")
	verbose    = flag.Bool("verbose", false, "log file and line numbers")
	seed       = flag.Uint64("seed", 1, "random seed for palettes and path jitter")
)

var errUnknownShowcase = errors.New("no showcase with that id")

var pageColor = color.RGBA{24, 24, 28, 255}

// card is one showcase placed on the page with its offscreen image and
// control panel.
type card struct {
	id       string
	host     *canvas.Host
	surface  *screen.Surface
	panel    *ui.Panel
	controls []*canvas.Control
	dirty    bool
}

// Showcases implements ebiten.Game: a scrolling page of showcase cards and a
// docked panel with the controls of the card in focus.
type Showcases struct {
	cards       []*card
	page        *pageLayout
	ui          *ui.Controller
	store       *settings.Store
	touch       *touchTracker
	scrollSpeed float64
	debugMode   bool
	focused     int
}

func newShowcases(cfg *config.Config, store *settings.Store, rng *rand.Rand) (*Showcases, error) {
	hosts, err := showcase.BuildAll(cfg, rng)
	if err != nil {
		return nil, err
	}

	g := &Showcases{
		ui:          ui.NewController(),
		store:       store,
		touch:       newTouchTracker(),
		scrollSpeed: float64(cfg.Page.ScrollSpeed),
		focused:     -1,
	}
	sizes := make([]image.Point, len(hosts))
	for i, h := range hosts {
		sc := cfg.Showcases[i]
		c := &card{
			id:       sc.ID,
			host:     h,
			surface:  screen.New(sc.Width, sc.Height),
			controls: h.Controls(),
		}
		if err := store.Apply(c.id, c.controls, h.Objects()); err != nil {
			log.Printf("[settings] %v", err)
		}
		c.panel = ui.NewControlPanel(sc.Title, float64(cfg.Page.PanelWidth), c.controls, func() { c.dirty = true })
		c.panel.Hidden = true
		c.panel.UpdateWindowSize(cfg.Window.Width, cfg.Window.Height)
		c.panel.DockRight()
		g.ui.AddPanel(c.panel)

		h.Start()
		g.cards = append(g.cards, c)
		sizes[i] = image.Pt(sc.Width, sc.Height)
		log.Printf("showcase %s: %dx%d, %d objects, %d controls", sc.ID, sc.Width, sc.Height, len(h.Objects()), len(c.controls))
	}
	g.page = newPageLayout(float64(cfg.Page.Padding), sizes)
	g.page.setViewport(cfg.Window.Height)
	return g, nil
}

func (g *Showcases) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if err := g.ui.Update(x, y, pressed); err != nil {
		return err
	}
	ebiten.SetCursorShape(g.ui.CursorShape(x, y))

	if !g.ui.IsInteractingWithUI() {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			g.debugMode = !g.debugMode
		}
		if _, wheelY := ebiten.Wheel(); wheelY != 0 {
			g.page.scrollBy(-wheelY * g.scrollSpeed)
		}
		if ebiten.IsKeyPressed(ebiten.KeyDown) {
			g.page.scrollBy(g.scrollSpeed / 4)
		}
		if ebiten.IsKeyPressed(ebiten.KeyUp) {
			g.page.scrollBy(-g.scrollSpeed / 4)
		}

		clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		touch := g.touch.poll()
		if touch.Active || touch.Tap {
			x, y = touch.Pointer.X, touch.Pointer.Y
			g.page.scrollBy(touch.ScrollBy)
			clicked = clicked || touch.Tap
		}

		for _, c := range g.cards {
			c.host.MouseMove(x, y)
			if clicked {
				c.host.Click()
			}
		}
		g.focus(x, y)
	}

	for i, c := range g.cards {
		c.host.Scroll(g.page.cardOrigin(i))
		c.host.Step(c.surface)
		if c.dirty && !pressed {
			g.store.SaveAll(c.id, c.controls, c.host.Objects())
			c.dirty = false
		}
	}
	return nil
}

// focus shows the panel of the card under the pointer, or of the card
// nearest the middle of the window.
func (g *Showcases) focus(x, y float64) {
	i := g.page.cardAt(x, y)
	if i < 0 {
		if g.focused >= 0 && g.page.visible(g.focused) {
			return
		}
		i = g.page.nearest()
	}
	if i == g.focused {
		return
	}
	for j, c := range g.cards {
		c.panel.Hidden = j != i
	}
	g.focused = i
}

func (g *Showcases) Draw(dst *ebiten.Image) {
	dst.Fill(pageColor)
	for i, c := range g.cards {
		if !g.page.visible(i) {
			continue
		}
		left, top := g.page.cardOrigin(i)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(left, top)
		dst.DrawImage(c.surface.Image(), op)
	}

	g.ui.Draw(dst)

	if g.debugMode {
		name := ""
		if g.focused >= 0 {
			name = g.cards[g.focused].id
		}
		g.ui.ShowDebugInfo(dst, fmt.Sprintf("Scroll: %.0f\nFocus: %s", g.page.scroll, name))
	}
}

func (g *Showcases) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.page.setViewport(outsideHeight)
	g.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close stops every showcase and saves its tuning.
func (g *Showcases) Close() {
	for _, c := range g.cards {
		g.store.SaveAll(c.id, c.controls, c.host.Objects())
		c.host.Close()
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if *showcaseID != "" {
		sc := cfg.Showcase(*showcaseID)
		if sc == nil {
			return nil, fmt.Errorf("%w: %q", errUnknownShowcase, *showcaseID)
		}
		cfg.Showcases = []config.ShowcaseConfig{*sc}
	}
	return cfg, nil
}

// play runs the game loop, then closes g whatever the loop returned.
// Termination is a clean exit.
func play(g *Showcases, run func(ebiten.Game) error) error {
	err := run(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	store, err := settings.Open(appName)
	if err != nil {
		log.Printf("[settings] %v; tuning will not be saved", err)
	}

	app, err := newShowcases(cfg, store, rand.New(rand.NewPCG(*seed, *seed^0x5eed)))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetVsyncEnabled(true)

	if err := play(app, ebiten.RunGame); err != nil {
		log.Fatal(err)
	}
}
