package renderpass

import (
	"time"

	"github.com/vkngwrapper/core/v2/common"
)

// CreateFlags indicate specific render pass behaviors to activate or deactivate
type CreateFlags int32

var renderPassCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	renderPassCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return renderPassCreateFlagsMapping.FlagsToString(f)
}

const (
	// RenderPassCreateNoAutomaticDependencies stops the builder from adding the external dependency
	// on the first subpass and the dependencies between consecutive subpasses. Only dependencies
	// added with Builder.AddDependency will be present.
	RenderPassCreateNoAutomaticDependencies CreateFlags = 1 << iota
)

func init() {
	RenderPassCreateNoAutomaticDependencies.Register("RenderPassCreateNoAutomaticDependencies")
}

const (
	// DefaultFenceTimeout is the value used as FenceTimeout when none is provided via CreateOptions
	DefaultFenceTimeout = 10 * time.Second
)

// CreateOptions contains optional settings when creating a render pass
type CreateOptions struct {
	// Flags indicates specific render pass behaviors to activate or deactivate
	Flags CreateFlags
	// FenceTimeout bounds every wait on a frame's fence
	FenceTimeout time.Duration
}

func (o CreateOptions) withDefaults() CreateOptions {
	if o.FenceTimeout <= 0 {
		o.FenceTimeout = DefaultFenceTimeout
	}
	return o
}
