package ui

import (
	"snake-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyBinding struct {
	keys []int32
	dir  types.Direction
}

// Checked in this order every frame, so with several keys held the last
// accepted one wins.
var directionKeys = []keyBinding{
	{keys: []int32{rl.KeyW, rl.KeyUp}, dir: types.Up},
	{keys: []int32{rl.KeyS, rl.KeyDown}, dir: types.Down},
	{keys: []int32{rl.KeyA, rl.KeyLeft}, dir: types.Left},
	{keys: []int32{rl.KeyD, rl.KeyRight}, dir: types.Right},
}

// HeldDirections returns the directions whose keys are currently held
func HeldDirections() []types.Direction {
	var dirs []types.Direction
	for _, b := range directionKeys {
		for _, k := range b.keys {
			if rl.IsKeyDown(k) {
				dirs = append(dirs, b.dir)
				break
			}
		}
	}
	return dirs
}

// PausePressed reports a pause toggle this frame
func PausePressed() bool {
	return rl.IsKeyPressed(rl.KeyEscape)
}
