package surface

import (
	"strings"

	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

// PresentModes is a set of the present modes a Surface can be configured with
type PresentModes uint32

var presentModeOrder = []khr_surface.PresentMode{
	khr_surface.PresentModeImmediate,
	khr_surface.PresentModeMailbox,
	khr_surface.PresentModeFIFO,
	khr_surface.PresentModeFIFORelaxed,
}

func presentModeBit(mode khr_surface.PresentMode) PresentModes {
	for index, known := range presentModeOrder {
		if known == mode {
			return 1 << index
		}
	}
	return 0
}

// PresentModeSet builds a set from a list of present modes. Modes that a Surface cannot be
// configured with (such as the shared-presentation modes) are ignored.
func PresentModeSet(modes ...khr_surface.PresentMode) PresentModes {
	var set PresentModes
	for _, mode := range modes {
		set |= presentModeBit(mode)
	}
	return set
}

func (m PresentModes) Contains(mode khr_surface.PresentMode) bool {
	bit := presentModeBit(mode)
	return bit != 0 && m&bit == bit
}

// Modes lists the contents of the set
func (m PresentModes) Modes() []khr_surface.PresentMode {
	var modes []khr_surface.PresentMode
	for _, mode := range presentModeOrder {
		if m.Contains(mode) {
			modes = append(modes, mode)
		}
	}
	return modes
}

func (m PresentModes) String() string {
	var names []string
	for _, mode := range m.Modes() {
		names = append(names, mode.String())
	}
	return strings.Join(names, "|")
}

type Size struct {
	Width  int
	Height int
}

// Config is a requested surface configuration
type Config struct {
	Width       int
	Height      int
	PresentMode khr_surface.PresentMode
}

// Capabilities describes which configurations a Surface currently accepts. MinSize and MaxSize
// may change whenever the surface target is resized; PresentModes is fixed for the lifetime of
// the Surface.
type Capabilities struct {
	MinSize Size
	// MaxSize is nil when the surface has no upper size bound
	MaxSize      *Size
	PresentModes PresentModes
}

func (c Capabilities) IsSizeValid(width, height int) bool {
	if width < c.MinSize.Width || height < c.MinSize.Height {
		return false
	}

	if c.MaxSize != nil && (width > c.MaxSize.Width || height > c.MaxSize.Height) {
		return false
	}

	return true
}

func (c Capabilities) IsPresentModeValid(mode khr_surface.PresentMode) bool {
	return c.PresentModes.Contains(mode)
}

// IsConfigValid reports whether config can be passed to Configure. Zero-sized configurations are
// never valid.
func (c Capabilities) IsConfigValid(config Config) bool {
	return config.Width > 0 &&
		config.Height > 0 &&
		c.IsSizeValid(config.Width, config.Height) &&
		c.IsPresentModeValid(config.PresentMode)
}
