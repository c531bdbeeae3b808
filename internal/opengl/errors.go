package opengl

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// errorName returns the symbolic name of a glGetError code.
func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("0x%X", code)
	}
}

// maxErrors bounds the drain loop; a lost context can report errors forever.
const maxErrors = 32

// checkErrors drains the GL error queue, logging each error with the
// file:line of the caller skip frames up.
func checkErrors(log *slog.Logger, skip int) int {
	where := "unknown"
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		where = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	n := 0
	for ; n < maxErrors; n++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		log.Error("gl error", "error", errorName(code), "at", where)
	}
	return n
}
