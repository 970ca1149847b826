package core

import (
	vk "github.com/vulkan-go/vulkan"
)

// supportedLayers returns the layer names known to the runtime.
func supportedLayers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, err
	}
	properties := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, properties)); err != nil {
		return nil, err
	}

	names := make([]string, 0, count)
	for _, layer := range properties {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// supportedExtensions returns the instance extension names known to
// the runtime.
func supportedExtensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, err
	}
	properties := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, properties)); err != nil {
		return nil, err
	}

	names := make([]string, 0, count)
	for _, ext := range properties {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

func checkLayerSupport(required []string) error {
	if len(required) == 0 {
		return nil
	}
	available, err := supportedLayers()
	if err != nil {
		return &CreationError{Object: "layer properties", Err: err}
	}
	if m := missing(required, available); len(m) > 0 {
		return &ConfigurationError{Kind: "validation layer", Name: m[0]}
	}
	return nil
}

func checkExtensionSupport(required []string) error {
	if len(required) == 0 {
		return nil
	}
	available, err := supportedExtensions()
	if err != nil {
		return &CreationError{Object: "extension properties", Err: err}
	}
	if m := missing(required, available); len(m) > 0 {
		return &ConfigurationError{Kind: "instance extension", Name: m[0]}
	}
	return nil
}
