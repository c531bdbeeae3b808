package input

// Key is a keyboard key. Values match the GLFW key tokens so a GLFW window
// can be polled with them directly.
type Key int

const (
	Key1 Key = 49
	Key2 Key = 50
	Key3 Key = 51

	KeyA Key = 65
	KeyD Key = 68
	KeyE Key = 69
	KeyJ Key = 74
	KeyL Key = 76
	KeyM Key = 77
	KeyN Key = 78
	KeyO Key = 79
	KeyP Key = 80
	KeyQ Key = 81
	KeyS Key = 83
	KeyW Key = 87

	KeyEscape Key = 256

	keyCount = 512
)

// Bindings lists every key the viewer reacts to.
var Bindings = []Key{
	KeyW, KeyS, KeyA, KeyD,
	KeyQ, KeyE,
	KeyJ, KeyL,
	Key1, Key2, Key3,
	KeyO, KeyP,
	KeyM, KeyN,
	KeyEscape,
}
