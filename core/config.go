package core

import (
	vk "github.com/vulkan-go/vulkan"
)

// Configuration defines the global application configuration
type Configuration struct {
	App    AppConfiguration
	Window WindowConfiguration

	// Debug gates the validation layer, the debug extension and the
	// report callback. Resolved once at startup, immutable afterwards.
	Debug bool
}

// AppConfiguration describes the application to the Vulkan runtime
type AppConfiguration struct {
	Name    string
	Version Version
}

// WindowConfiguration is used to configure the OS window
type WindowConfiguration struct {
	Title  string
	Width  uint32
	Height uint32
}

// Version is used to specify versions of components
type Version struct {
	Major int
	Minor int
	Patch int
}

// VKVersion returns a Vulkan compatible version representation
func (v Version) VKVersion() uint32 {
	return vk.MakeVersion(v.Major, v.Minor, v.Patch)
}

// ApplicationInfo builds the Vulkan description of this application.
func (c AppConfiguration) ApplicationInfo() *vk.ApplicationInfo {
	return &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         vk.ApiVersion10,
		ApplicationVersion: c.Version.VKVersion(),
		PApplicationName:   safeString(c.Name),
		PEngineName:        "No Engine\x00",
	}
}
