package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"deserted-home/input"
)

var _ input.FocusSource = (*Window)(nil)

// input.Key values are polled straight through Window.IsKeyPressed. An
// "invalid array index" compiler error here means a constant drifted from
// its GLFW token.
func _() {
	var x [1]struct{}
	_ = x[int(input.Key1)-int(glfw.Key1)]
	_ = x[int(input.Key2)-int(glfw.Key2)]
	_ = x[int(input.Key3)-int(glfw.Key3)]
	_ = x[int(input.KeyA)-int(glfw.KeyA)]
	_ = x[int(input.KeyD)-int(glfw.KeyD)]
	_ = x[int(input.KeyE)-int(glfw.KeyE)]
	_ = x[int(input.KeyJ)-int(glfw.KeyJ)]
	_ = x[int(input.KeyL)-int(glfw.KeyL)]
	_ = x[int(input.KeyM)-int(glfw.KeyM)]
	_ = x[int(input.KeyN)-int(glfw.KeyN)]
	_ = x[int(input.KeyO)-int(glfw.KeyO)]
	_ = x[int(input.KeyP)-int(glfw.KeyP)]
	_ = x[int(input.KeyQ)-int(glfw.KeyQ)]
	_ = x[int(input.KeyS)-int(glfw.KeyS)]
	_ = x[int(input.KeyW)-int(glfw.KeyW)]
	_ = x[int(input.KeyEscape)-int(glfw.KeyEscape)]
}
