package ebitenhost

import "github.com/hajimehoshi/ebiten/v2"

// keyBindings maps keys to fractree command names.
var keyBindings = []struct {
	key     ebiten.Key
	command string
}{
	{ebiten.KeyA, "animate"},
	{ebiten.KeyD, "debug"},
	{ebiten.KeyS, "shapes"},
	{ebiten.KeyArrowUp, "deeper"},
	{ebiten.KeyArrowDown, "shallower"},
	{ebiten.KeyC, "clear"},
	{ebiten.KeyR, "reseed"},
}
