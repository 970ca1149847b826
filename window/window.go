// Package window implements the core.Window collaborator on SDL2.
package window

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/oxide3d/oxide/core"
)

// New initialises the SDL video subsystem, loads the Vulkan library
// and creates a Vulkan-capable window. A failure at any step tears
// down the steps before it.
func New(cfg core.WindowConfiguration) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl.Init(): %w", err)
	}

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl.VulkanLoadLibrary(): %w", err)
	}

	win, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.VulkanUnloadLibrary()
		sdl.Quit()
		return nil, fmt.Errorf("sdl.CreateWindow(): %w", err)
	}

	return &Window{window: win}, nil
}

// Window wraps an SDL window behind the core.Window contract.
type Window struct {
	window *sdl.Window
}

// RequiredExtensions implements interface
func (w *Window) RequiredExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

// InstanceProcAddr implements interface
func (w *Window) InstanceProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// WaitEvent blocks until the next OS event arrives and translates it.
// SDL delivers events only on the thread that created the window.
func (w *Window) WaitEvent() core.Event {
	switch ev := sdl.WaitEvent().(type) {
	case *sdl.QuitEvent:
		return core.CloseEvent{}
	case *sdl.KeyboardEvent:
		return core.KeyEvent{
			Code:    uint32(ev.Keysym.Sym),
			Pressed: ev.State == sdl.PRESSED,
		}
	default:
		return core.UnknownEvent{}
	}
}

// Destroy releases the window and shuts SDL down. It runs after the
// Vulkan context is gone: instance creation depended on this window's
// presentation requirements, not the other way around.
func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}
