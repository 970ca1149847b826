package core

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// Instance describes the root Vulkan API handle.
// It is created once, outlives every object derived from it,
// and is destroyed last.
type Instance interface {
	// Handle returns the native vk.Instance
	Handle() vk.Instance

	// Extensions returns the extension names the instance was created with
	Extensions() []string

	// Layers returns the layer names the instance was created with
	Layers() []string

	// Destroy destroys internal members
	Destroy()
}

// Debugger conditionally supplies the validation layer, the debug
// extension and the report callback. When disabled every method is
// a no-op, so callers never branch on the build mode themselves.
type Debugger interface {
	// Enabled reports whether diagnostics were compiled in.
	// The value is fixed at construction and never changes.
	Enabled() bool

	// AppendExtensions appends the debug extension name when enabled
	AppendExtensions([]string) []string

	// AppendLayers appends the validation layer name when enabled
	AppendLayers([]string) []string

	// CreateInfo returns the callback descriptor, nil when disabled.
	// It is chained into instance creation so that the create and
	// destroy calls themselves are validated.
	CreateInfo() *vk.DebugReportCallbackCreateInfo

	// Attach registers the report callback on the instance
	Attach(vk.Instance) error

	// Detach destroys the callback, a no-op if never attached
	Detach(vk.Instance)
}

// LogicalDevice describes a configured connection to a chosen
// physical device. It owns a single queue and must be destroyed
// before the Instance it was created from.
type LogicalDevice interface {
	// Handle returns the native vk.Device
	Handle() vk.Device

	// Queue returns the device queue at slot 0 of the selected family
	Queue() vk.Queue

	// QueueFamily returns the queue family index the queue belongs to
	QueueFamily() uint32

	// Destroy destroys internal members
	Destroy()
}

// Window is the OS window collaborator. The application only ever
// needs the platform's required instance extensions and a blocking
// event pump from it.
type Window interface {
	// RequiredExtensions returns the instance extensions the
	// platform needs to present into this window
	RequiredExtensions() []string

	// InstanceProcAddr returns the loader's vkGetInstanceProcAddr,
	// nil to use the default lookup
	InstanceProcAddr() unsafe.Pointer

	// WaitEvent blocks until the next event arrives
	WaitEvent() Event

	// Destroy releases the window and its platform resources
	Destroy()
}

// Event is a single window event delivered by the Window collaborator.
type Event interface {
	ImplementsEvent()
}

// CloseEvent reports that the user asked to close the window.
type CloseEvent struct{}

// KeyEvent reports a key press or release.
type KeyEvent struct {
	Code    uint32
	Pressed bool
}

// UnknownEvent stands in for every event kind the application ignores.
type UnknownEvent struct{}

func (CloseEvent) ImplementsEvent()   {}
func (KeyEvent) ImplementsEvent()     {}
func (UnknownEvent) ImplementsEvent() {}
