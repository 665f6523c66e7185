package core

// Color is a palette slot for a screen cell.
// The platform layer decides how each slot is drawn (ANSI 256-color codes
// for the terminal), so game code only names what a cell depicts.
type Color uint8

// Palette slots for game elements.
const (
	ColorDefault Color = iota
	ColorSky
	ColorSkyHigh
	ColorCloud
	ColorPipe
	ColorPipeCap
	ColorPipeShine
	ColorParticle
	ColorParticleFaint
	ColorBird
	ColorBeak
	ColorGrass
	ColorGrassTip
	ColorDirt
	ColorScore
	ColorTitle
	ColorGameOver
	ColorHint
)
