package core

import (
	vk "github.com/vulkan-go/vulkan"
)

// DeviceLayers composes the device-level layer list. Current drivers
// ignore it, older ones still read it, so the validation layer is
// propagated here too when enabled.
func DeviceLayers(dbg Debugger) []string {
	return dedupe(dbg.AppendLayers(nil))
}

// NewVulkanLogicalDevice creates a logical device bound to the given
// physical device, requesting one queue at maximum priority from the
// selected family, and retrieves the queue at slot 0.
func NewVulkanLogicalDevice(physical vk.PhysicalDevice, family uint32, dbg Debugger) (LogicalDevice, error) {
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: family,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}

	layers := DeviceLayers(dbg)

	dci := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: uint32(len(queueInfos)),
		PQueueCreateInfos:    queueInfos,
		EnabledLayerCount:    uint32(len(layers)),
		PpEnabledLayerNames:  safeStrings(layers),
	}

	var handle vk.Device
	if err := vk.Error(vk.CreateDevice(physical, &dci, nil, &handle)); err != nil {
		return nil, &CreationError{Object: "logical device", Err: err}
	}

	var queue vk.Queue
	vk.GetDeviceQueue(handle, family, 0, &queue)

	return &VulkanLogicalDevice{
		device: handle,
		queue:  queue,
		family: family,
	}, nil
}

// VulkanLogicalDevice wraps a vk.Device and the queue it owns.
type VulkanLogicalDevice struct {
	device vk.Device
	queue  vk.Queue
	family uint32
}

// Handle implements interface
func (v *VulkanLogicalDevice) Handle() vk.Device {
	return v.device
}

// Queue implements interface
func (v *VulkanLogicalDevice) Queue() vk.Queue {
	return v.queue
}

// QueueFamily implements interface
func (v *VulkanLogicalDevice) QueueFamily() uint32 {
	return v.family
}

// Destroy implements interface
func (v *VulkanLogicalDevice) Destroy() {
	vk.DestroyDevice(v.device, nil)
}
