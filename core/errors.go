package core

import "fmt"

// ConfigurationError reports a requested layer or extension that the
// runtime cannot provide. Creation is not attempted when one occurs.
type ConfigurationError struct {
	Kind string
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s %q is not supported by this runtime", e.Kind, e.Name)
}

// CreationError reports a failed native create call. The wrapped
// error carries the Vulkan result code.
type CreationError struct {
	Object string
	Err    error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("failed to create %s: %s", e.Object, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}
