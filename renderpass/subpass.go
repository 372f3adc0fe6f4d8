package renderpass

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/gpu"
)

// Subpass is one subpass of a RenderPass. Register requests the references the subpass uses and
// describes them relative to the builder. Record is called inside the render pass with the
// subpass active.
type Subpass[A any] interface {
	Register(b *Builder) (SubpassDescription, error)
	Record(cmd gpu.CommandBuffer, args A) error
}

// EmptySubpass writes to the OutputAttachment and records nothing, so the output is only cleared
type EmptySubpass[A any] struct{}

var _ Subpass[struct{}] = EmptySubpass[struct{}]{}

func (EmptySubpass[A]) Register(b *Builder) (SubpassDescription, error) {
	color, err := RequestRef[*OutputAttachment](b, core1_0.ImageLayoutColorAttachmentOptimal)
	if err != nil {
		return SubpassDescription{}, err
	}

	return SubpassDescription{
		FirstColorAttachment: color,
		ColorAttachmentCount: 1,
	}, nil
}

func (EmptySubpass[A]) Record(cmd gpu.CommandBuffer, args A) error {
	return nil
}

// SubpassFuncs builds a Subpass from a pair of functions
type SubpassFuncs[A any] struct {
	RegisterFunc func(b *Builder) (SubpassDescription, error)
	RecordFunc   func(cmd gpu.CommandBuffer, args A) error
}

// Register calls RegisterFunc
func (s SubpassFuncs[A]) Register(b *Builder) (SubpassDescription, error) {
	return s.RegisterFunc(b)
}

// Record calls RecordFunc. A nil RecordFunc records nothing.
func (s SubpassFuncs[A]) Record(cmd gpu.CommandBuffer, args A) error {
	if s.RecordFunc == nil {
		return nil
	}
	return s.RecordFunc(cmd, args)
}
