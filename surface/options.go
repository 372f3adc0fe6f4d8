package surface

import (
	"time"

	"github.com/vkngwrapper/core/v2/common"
)

// CreateFlags indicate specific surface behaviors to activate or deactivate
type CreateFlags int32

var surfaceCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	surfaceCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return surfaceCreateFlagsMapping.FlagsToString(f)
}

const (
	// SurfaceCreateSuboptimalAsOutOfDate causes Present to report ErrOutOfDate when the presentation
	// engine reports the swapchain as suboptimal. The frame is still presented. Without this flag,
	// suboptimal frames succeed and are only reported through IsSuboptimal.
	SurfaceCreateSuboptimalAsOutOfDate CreateFlags = 1 << iota
)

func init() {
	SurfaceCreateSuboptimalAsOutOfDate.Register("SurfaceCreateSuboptimalAsOutOfDate")
}

// DefaultAcquireTimeout is the value used as AcquireTimeout when none is provided via
// CreateOptions: Present blocks until an image is available.
var DefaultAcquireTimeout = common.NoTimeout

const (
	// DefaultPreferredImageCount is the value used as PreferredImageCount when none is provided
	// via CreateOptions
	DefaultPreferredImageCount = 3
)

// CreateOptions contains optional settings when creating a surface
type CreateOptions struct {
	// Flags indicates specific surface behaviors to activate or deactivate
	Flags CreateFlags
	// AcquireTimeout bounds how long Present will wait for the presentation engine to hand over
	// an image
	AcquireTimeout time.Duration
	// PreferredImageCount is the number of swapchain images to request. The surface's own limits
	// take precedence.
	PreferredImageCount int
}

func (o CreateOptions) withDefaults() CreateOptions {
	if o.AcquireTimeout <= 0 {
		o.AcquireTimeout = DefaultAcquireTimeout
	}
	if o.PreferredImageCount <= 0 {
		o.PreferredImageCount = DefaultPreferredImageCount
	}
	return o
}
