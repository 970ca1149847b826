package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"

	"github.com/oxide3d/oxide/device"
)

// NewApplication wires an Application to the Vulkan-backed
// constructors. The debug flag from cfg is resolved here, once.
func NewApplication(cfg Configuration, win Window) *Application {
	return &Application{
		cfg:      cfg,
		window:   win,
		debugger: NewVulkanDebugger(cfg.Debug),
		newInstance: func(win Window, dbg Debugger) (Instance, error) {
			return NewVulkanInstance(
				cfg.App.ApplicationInfo(),
				win.InstanceProcAddr(),
				InstanceConfiguration{Extensions: win.RequiredExtensions()},
				dbg)
		},
		enumerate: func(in Instance) ([]device.Record, error) {
			return device.Enumerate(in.Handle())
		},
		newLogicalDevice: NewVulkanLogicalDevice,
	}
}

// Application owns every Vulkan resource in acquisition order and
// releases them in exact reverse order. All of it runs on the single
// OS thread main locked itself to.
type Application struct {
	cfg      Configuration
	window   Window
	debugger Debugger

	newInstance      func(Window, Debugger) (Instance, error)
	enumerate        func(Instance) ([]device.Record, error)
	newLogicalDevice func(vk.PhysicalDevice, uint32, Debugger) (LogicalDevice, error)

	instance Instance
	logical  LogicalDevice
	selected device.Record

	destroyed bool
}

// Selected returns the physical device record the selector picked.
// Only valid after a successful Init.
func (a *Application) Selected() device.Record {
	return a.selected
}

// Init acquires the instance, the debug callback, the physical device
// and the logical device, in that order. A failure at any step
// releases what was already created, in reverse, before returning.
func (a *Application) Init() error {
	instance, err := a.newInstance(a.window, a.debugger)
	if err != nil {
		return err
	}
	a.instance = instance
	log.WithField("extensions", instance.Extensions()).Info("instance created")

	if err := a.debugger.Attach(instance.Handle()); err != nil {
		a.Destroy()
		return err
	}

	records, err := a.enumerate(instance)
	if err != nil {
		a.Destroy()
		return err
	}
	for _, r := range records {
		log.WithFields(log.Fields{
			"vendor": r.VendorID,
			"type":   r.Type,
			"memory": r.Memory,
		}).Infof("physical device: %s", r.Name)
	}

	selected, err := device.Select(records)
	if err != nil {
		a.Destroy()
		return err
	}
	a.selected = selected

	family, err := selected.GraphicsQueueFamily()
	if err != nil {
		a.Destroy()
		return err
	}

	logical, err := a.newLogicalDevice(selected.Handle, family, a.debugger)
	if err != nil {
		a.Destroy()
		return err
	}
	a.logical = logical
	log.WithField("queueFamily", family).Infof("logical device created on %s", selected.Name)

	return nil
}

// Run blocks on the window's event stream until a close request
// arrives. Every other event kind is observed and discarded.
func (a *Application) Run() {
	for {
		switch ev := a.window.WaitEvent().(type) {
		case CloseEvent:
			log.Info("close requested, leaving event loop")
			return
		default:
			log.WithField("event", fmt.Sprintf("%T", ev)).Debug("event discarded")
		}
	}
}

// Destroy releases everything Init acquired, in reverse order of
// acquisition: debug callback, logical device, instance. It is safe
// after a partial startup and does nothing on repeated calls. Native
// destroy calls cannot fail, so shutdown always completes.
func (a *Application) Destroy() {
	if a.destroyed {
		return
	}
	a.destroyed = true

	if a.instance != nil {
		a.debugger.Detach(a.instance.Handle())
	}
	if a.logical != nil {
		a.logical.Destroy()
		a.logical = nil
		log.Debug("logical device destroyed")
	}
	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
		log.Debug("instance destroyed")
	}
}
