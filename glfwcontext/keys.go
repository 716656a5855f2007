package glfwcontext

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gomandel/graphics"
)

var keys = map[glfw.Key]graphics.Key{
	glfw.KeyEscape: graphics.KeyEscape,
	glfw.KeyUp:     graphics.KeyUp,
	glfw.KeyDown:   graphics.KeyDown,
	glfw.KeyLeft:   graphics.KeyLeft,
	glfw.KeyRight:  graphics.KeyRight,
	glfw.KeyTab:    graphics.KeyTab,
	glfw.KeyEnter:  graphics.KeyEnter,
	glfw.KeySpace:  graphics.KeySpace,
}

func convertKey(k glfw.Key) graphics.Key {
	if key, ok := keys[k]; ok {
		return key
	}
	return graphics.KeyUnknown
}

func convertAction(a glfw.Action) graphics.Action {
	switch a {
	case glfw.Press:
		return graphics.Press
	case glfw.Repeat:
		return graphics.Repeat
	}
	return graphics.Release
}

func mouseButton(b glfw.MouseButton) (graphics.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return graphics.MouseLeft, true
	case glfw.MouseButtonRight:
		return graphics.MouseRight, true
	case glfw.MouseButtonMiddle:
		return graphics.MouseMiddle, true
	}
	return 0, false
}
