package device

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Enumerate snapshots every physical device known to the instance.
func Enumerate(instance vk.Instance) ([]Record, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, nil)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %w", err)
	}
	devices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, devices)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %w", err)
	}

	records := make([]Record, len(devices))
	for i, dev := range devices {
		records[i] = newRecord(dev)
	}
	return records, nil
}

func newRecord(dev vk.PhysicalDevice) Record {
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(dev, &properties)
	properties.Deref()

	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(dev, &memoryProperties)
	memoryProperties.Deref()
	var memory vk.DeviceSize
	for i := uint32(0); i < memoryProperties.MemoryHeapCount; i++ {
		memoryProperties.MemoryHeaps[i].Deref()
		memory += memoryProperties.MemoryHeaps[i].Size
	}

	var queueFamilyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &queueFamilyCount, nil)
	queueFamilies := make([]vk.QueueFamilyProperties, queueFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &queueFamilyCount, queueFamilies)

	families := make([]QueueFamily, queueFamilyCount)
	for i := range queueFamilies {
		queueFamilies[i].Deref()
		families[i] = QueueFamily{
			Index: uint32(i),
			Flags: queueFamilies[i].QueueFlags,
		}
	}

	return Record{
		Handle:        dev,
		Name:          vk.ToString(properties.DeviceName[:]),
		VendorID:      properties.VendorID,
		Type:          properties.DeviceType,
		Memory:        memory,
		QueueFamilies: families,
	}
}
