package core

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// InstanceConfiguration carries the window-required extension names.
type InstanceConfiguration struct {
	Extensions []string
}

// InstanceExtensions composes the final instance extension list:
// the window-required names plus the debug extension when enabled,
// duplicates removed, order preserved.
func InstanceExtensions(windowRequired []string, dbg Debugger) []string {
	list := append([]string{}, windowRequired...)
	return dedupe(dbg.AppendExtensions(list))
}

// InstanceLayers composes the instance layer list. Empty unless
// diagnostics are enabled.
func InstanceLayers(dbg Debugger) []string {
	return dedupe(dbg.AppendLayers(nil))
}

// NewVulkanInstance loads the Vulkan library, verifies that every
// requested layer and extension is supported, and creates the
// instance. When diagnostics are enabled the callback descriptor is
// chained into the create info, so the create and destroy calls are
// validated as well.
//
// procAddr is the loader entry point supplied by the window
// collaborator; nil falls back to the default lookup.
func NewVulkanInstance(appInfo *vk.ApplicationInfo, procAddr unsafe.Pointer, cfg InstanceConfiguration, dbg Debugger) (Instance, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, &CreationError{Object: "instance proc addr", Err: err}
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, &CreationError{Object: "vulkan loader", Err: err}
	}

	extensions := InstanceExtensions(cfg.Extensions, dbg)
	layers := InstanceLayers(dbg)

	if err := checkLayerSupport(layers); err != nil {
		return nil, err
	}
	if err := checkExtensionSupport(extensions); err != nil {
		return nil, err
	}

	// The create info keeps pointers into these slices only for the
	// duration of the call, the terminated copies live long enough.
	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     safeStrings(layers),
	}
	if info := dbg.CreateInfo(); info != nil {
		instanceInfo.PNext = unsafe.Pointer(info.Ref())
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, &CreationError{Object: "instance", Err: err}
	}
	vk.InitInstance(instance)

	return &VulkanInstance{
		instance:   instance,
		extensions: extensions,
		layers:     layers,
	}, nil
}

// VulkanInstance describes a Vulkan API Instance
type VulkanInstance struct {
	instance   vk.Instance
	extensions []string
	layers     []string
}

// Handle implements interface
func (v *VulkanInstance) Handle() vk.Instance {
	return v.instance
}

// Extensions implements interface
func (v *VulkanInstance) Extensions() []string {
	return v.extensions
}

// Layers implements interface
func (v *VulkanInstance) Layers() []string {
	return v.layers
}

// Destroy implements interface
func (v *VulkanInstance) Destroy() {
	vk.DestroyInstance(v.instance, nil)
}
