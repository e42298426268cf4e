package loteria

import "fmt"

// ConfigError reports parameters rejected before any rendering starts.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// InsufficientImagesError reports a pool too small to fill one card.
// Rejected before any rendering starts.
type InsufficientImagesError struct {
	Have int
	Need int
}

func (e *InsufficientImagesError) Error() string {
	return fmt.Sprintf("need at least %d images, found %d", e.Need, e.Have)
}

// AssemblyError reports a fatal failure producing the final document. No
// partial document accompanies it.
type AssemblyError struct {
	Err error
}

func (e *AssemblyError) Error() string {
	return "assembling document: " + e.Err.Error()
}

func (e *AssemblyError) Unwrap() error { return e.Err }
