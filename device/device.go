// Package device enumerates physical accelerators and picks the one
// the application runs on. Selection works on plain Record snapshots,
// the Vulkan calls live in Enumerate alone.
package device

import (
	"errors"
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// Selection failures. Both are fatal, there is no fallback tier.
var (
	ErrNoSuitableDevice = errors.New("no suitable physical device found")
	ErrNoGraphicsQueue  = errors.New("no graphics-capable queue family on device")
)

// QueueFamily describes one queue family of a physical device
type QueueFamily struct {
	Index uint32
	Flags vk.QueueFlags
}

// IsGraphics reports whether the family can execute graphics commands
func (q QueueFamily) IsGraphics() bool {
	return q.Flags&vk.QueueFlags(vk.QueueGraphicsBit) != 0
}

// Record is a capability snapshot of one physical device
type Record struct {
	Handle        vk.PhysicalDevice
	Name          string
	VendorID      uint32
	Type          vk.PhysicalDeviceType
	Memory        vk.DeviceSize
	QueueFamilies []QueueFamily
}

// GraphicsQueueFamily returns the lowest-indexed graphics-capable
// queue family of the device.
func (r Record) GraphicsQueueFamily() (uint32, error) {
	for _, qf := range r.QueueFamilies {
		if qf.IsGraphics() {
			return qf.Index, nil
		}
	}
	return 0, ErrNoGraphicsQueue
}

// Suitable reports whether the device can drive this application:
// a discrete GPU with at least one graphics-capable queue family.
func (r Record) Suitable() bool {
	if r.Type != vk.PhysicalDeviceTypeDiscreteGpu {
		return false
	}
	_, err := r.GraphicsQueueFamily()
	return err == nil
}

// Select picks the first suitable device in enumeration order.
// There is no scoring between candidates.
func Select(records []Record) (Record, error) {
	for _, r := range records {
		if r.Suitable() {
			return r, nil
		}
	}
	return Record{}, ErrNoSuitableDevice
}

func (r Record) String() string {
	return fmt.Sprintf("%s (vendor %#x, %d queue families)", r.Name, r.VendorID, len(r.QueueFamilies))
}
