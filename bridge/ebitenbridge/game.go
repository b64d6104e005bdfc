package ebitenbridge

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Called once per tick to run the interpreter up to the end of a frame.
// Returning ebiten.Termination closes the window
type StepFunc func() error

// An ebiten.Game showing the frames drawn by an EbitenRenderer
type Game struct {
	Renderer   *EbitenRenderer
	Step       StepFunc
	Background color.Color
	Width      int
	Height     int
}

// Returns a new Game of `width`x`height` device pixels
func NewGame(renderer *EbitenRenderer, step StepFunc, width, height int) *Game {
	return &Game{
		Renderer:   renderer,
		Step:       step,
		Background: color.Black,
		Width:      width,
		Height:     height,
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if g.Step == nil {
		return nil
	}
	return g.Step()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)
	g.Renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

// Opens a window and runs the game until it's closed or Step fails
func (g *Game) Run(title string, scale int) error {
	ebiten.SetWindowSize(g.Width*scale, g.Height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}
