package core

import (
	"unsafe"

	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// Names requested from the runtime when diagnostics are enabled.
const (
	ValidationLayerName = "VK_LAYER_KHRONOS_validation"
	DebugExtensionName  = "VK_EXT_debug_report"
)

// NewVulkanDebugger creates a Debugger. The enabled flag is resolved
// by the caller exactly once, normally from the build mode.
func NewVulkanDebugger(enabled bool) Debugger {
	return &VulkanDebugger{enabled: enabled}
}

// VulkanDebugger owns the debug report callback registered on an
// instance. Disabled, it contributes nothing to any creation list.
type VulkanDebugger struct {
	enabled  bool
	attached bool
	callback vk.DebugReportCallback
}

// Enabled implements interface
func (d *VulkanDebugger) Enabled() bool {
	return d.enabled
}

// AppendExtensions implements interface
func (d *VulkanDebugger) AppendExtensions(list []string) []string {
	if !d.enabled {
		return list
	}
	return append(list, DebugExtensionName)
}

// AppendLayers implements interface
func (d *VulkanDebugger) AppendLayers(list []string) []string {
	if !d.enabled {
		return list
	}
	return append(list, ValidationLayerName)
}

// CreateInfo implements interface
func (d *VulkanDebugger) CreateInfo() *vk.DebugReportCallbackCreateInfo {
	if !d.enabled {
		return nil
	}
	return &vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(vk.DebugReportErrorBit |
			vk.DebugReportWarningBit |
			vk.DebugReportPerformanceWarningBit |
			vk.DebugReportInformationBit |
			vk.DebugReportDebugBit),
		PfnCallback: debugReportCallback,
	}
}

// Attach implements interface
func (d *VulkanDebugger) Attach(instance vk.Instance) error {
	if !d.enabled || d.attached {
		return nil
	}

	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(instance, d.CreateInfo(), nil, &callback)); err != nil {
		return &CreationError{Object: "debug report callback", Err: err}
	}

	d.callback = callback
	d.attached = true
	return nil
}

// Detach implements interface
func (d *VulkanDebugger) Detach(instance vk.Instance) {
	if !d.attached {
		return
	}
	vk.DestroyDebugReportCallback(instance, d.callback, nil)
	d.attached = false
}

// severityLevel maps report flags to a log level. Anything without a
// recognised severity bit is treated as verbose output.
func severityLevel(flags vk.DebugReportFlags) log.Level {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return log.ErrorLevel
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit) != 0:
		return log.WarnLevel
	case flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

// debugReportCallback crosses the API boundary, so it carries no
// captured state and must never panic. The message is only valid for
// the duration of the call; logrus formats it before returning.
func debugReportCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, layerPrefix string,
	message string, userData unsafe.Pointer) vk.Bool32 {

	entry := log.WithField("layer", layerPrefix)
	switch severityLevel(flags) {
	case log.ErrorLevel:
		entry.Error(message)
	case log.WarnLevel:
		entry.Warn(message)
	case log.InfoLevel:
		entry.Info(message)
	default:
		entry.Debug(message)
	}

	// Never abort the call that triggered the report.
	return vk.Bool32(vk.False)
}
