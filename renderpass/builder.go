package renderpass

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/internal/utils"
)

// SubpassDescription describes a subpass in terms of the references a subpass requested from the
// Builder. Every First* field is the index of the first reference the subpass requested for that
// group, relative to the Builder's reference list. Build rewrites them into absolute spans.
type SubpassDescription struct {
	FirstInputAttachment int
	InputAttachmentCount int
	FirstColorAttachment int
	ColorAttachmentCount int
	// DepthStencilAttachment is the index of a single requested reference, or nil
	DepthStencilAttachment *int

	FirstPreserveAttachment int
	PreserveAttachmentCount int
}

// Builder collects attachments, subpasses and dependencies and produces a Description. Attachments
// are identified by their concrete Go type, so two attachments of the same type cannot both be
// requested. Wrap one of them in its own named type when that is needed.
type Builder struct {
	flags CreateFlags

	attachmentDescs []core1_0.AttachmentDescription
	attachmentTypes []reflect.Type

	references []core1_0.AttachmentReference
	preserve   []int

	subpasses    []SubpassDescription
	dependencies []core1_0.SubpassDependency
}

func NewBuilder(flags CreateFlags) *Builder {
	return &Builder{flags: flags}
}

// RegisterAttachment adds attachment to the render pass. The attachment index is the order of
// registration.
func (b *Builder) RegisterAttachment(attachment Attachment) error {
	desc, err := attachment.Description()
	if err != nil {
		return errors.Wrapf(err, "attachment %d (%T) could not describe itself", len(b.attachmentDescs), attachment)
	}

	b.attachmentDescs = append(b.attachmentDescs, desc)
	b.attachmentTypes = append(b.attachmentTypes, reflect.TypeOf(attachment))
	return nil
}

// RequestAttachment returns the index of the first registered attachment of type t
func (b *Builder) RequestAttachment(t reflect.Type) (int, bool) {
	for index, registered := range b.attachmentTypes {
		if registered == t {
			return index, true
		}
	}

	return -1, false
}

// RequestAttachmentRef adds a reference to the attachment of type t used in layout and returns the
// reference's index relative to the builder's reference list
func (b *Builder) RequestAttachmentRef(t reflect.Type, layout core1_0.ImageLayout) (int, bool) {
	attachment, ok := b.RequestAttachment(t)
	if !ok {
		return -1, false
	}

	b.references = append(b.references, core1_0.AttachmentReference{
		Attachment: attachment,
		Layout:     layout,
	})
	return len(b.references) - 1, true
}

// RequestPreserveAttachment marks the attachment of type t as preserved and returns the index of
// the preserve entry relative to the builder's preserve list
func (b *Builder) RequestPreserveAttachment(t reflect.Type) (int, bool) {
	attachment, ok := b.RequestAttachment(t)
	if !ok {
		return -1, false
	}

	b.preserve = append(b.preserve, attachment)
	return len(b.preserve) - 1, true
}

// RequestRef adds a reference to the attachment of type A
func RequestRef[A Attachment](b *Builder, layout core1_0.ImageLayout) (int, error) {
	t := reflect.TypeOf((*A)(nil)).Elem()
	index, ok := b.RequestAttachmentRef(t, layout)
	if !ok {
		return -1, errors.Wrapf(ErrMissingAttachment, "attachment type %s", t)
	}

	return index, nil
}

// RequestPreserve marks the attachment of type A as preserved
func RequestPreserve[A Attachment](b *Builder) (int, error) {
	t := reflect.TypeOf((*A)(nil)).Elem()
	index, ok := b.RequestPreserveAttachment(t)
	if !ok {
		return -1, errors.Wrapf(ErrMissingAttachment, "attachment type %s", t)
	}

	return index, nil
}

// AddSubpass appends a subpass described relative to the references it requested
func (b *Builder) AddSubpass(desc SubpassDescription) {
	b.subpasses = append(b.subpasses, desc)
}

// RegisterSubpass lets subpass request its references, then adds the description it returns
func RegisterSubpass[A any](b *Builder, subpass Subpass[A]) error {
	desc, err := subpass.Register(b)
	if err != nil {
		return errors.Wrapf(err, "subpass %d failed to register", len(b.subpasses))
	}

	b.AddSubpass(desc)
	return nil
}

// AddDependency adds an explicit subpass dependency
func (b *Builder) AddDependency(dependency core1_0.SubpassDependency) {
	b.dependencies = append(b.dependencies, dependency)
}

// Build compacts the requested references of each subpass into contiguous absolute spans and
// produces the final Description
func (b *Builder) Build() (*Description, error) {
	if len(b.subpasses) == 0 {
		return nil, errors.Wrap(ErrInvalidSubpass, "a render pass needs at least one subpass")
	}

	desc := &Description{
		Attachments: append([]core1_0.AttachmentDescription(nil), b.attachmentDescs...),
	}

	for index, subpass := range b.subpasses {
		var layout SubpassLayout
		var err error

		layout.Inputs, err = b.copyReferences(desc, subpass.FirstInputAttachment, subpass.InputAttachmentCount)
		if err != nil {
			return nil, errors.Wrapf(err, "subpass %d input attachments", index)
		}

		layout.Colors, err = b.copyReferences(desc, subpass.FirstColorAttachment, subpass.ColorAttachmentCount)
		if err != nil {
			return nil, errors.Wrapf(err, "subpass %d color attachments", index)
		}

		if subpass.DepthStencilAttachment != nil {
			span, err := b.copyReferences(desc, *subpass.DepthStencilAttachment, 1)
			if err != nil {
				return nil, errors.Wrapf(err, "subpass %d depth stencil attachment", index)
			}
			offset := span.Offset
			layout.DepthStencil = &offset
		}

		layout.Preserve, err = b.copyPreserve(desc, subpass.FirstPreserveAttachment, subpass.PreserveAttachmentCount)
		if err != nil {
			return nil, errors.Wrapf(err, "subpass %d preserve attachments", index)
		}

		desc.Subpasses = append(desc.Subpasses, layout)
	}

	desc.Dependencies = append(desc.Dependencies, b.dependencies...)
	if b.flags&RenderPassCreateNoAutomaticDependencies == 0 {
		desc.Dependencies = append(desc.Dependencies, b.automaticDependencies()...)
	}

	utils.DebugValidate(desc)
	return desc, nil
}

func checkRange(first, count, length int) error {
	if first < 0 || count < 0 || first+count > length {
		return errors.Wrapf(ErrInvalidSubpass, "range [%d, %d) with %d registered", first, first+count, length)
	}
	return nil
}

func (b *Builder) copyReferences(desc *Description, first, count int) (Span, error) {
	err := checkRange(first, count, len(b.references))
	if err != nil {
		return Span{}, err
	}

	span := Span{Offset: len(desc.References), Count: count}
	desc.References = append(desc.References, b.references[first:first+count]...)
	return span, nil
}

func (b *Builder) copyPreserve(desc *Description, first, count int) (Span, error) {
	err := checkRange(first, count, len(b.preserve))
	if err != nil {
		return Span{}, err
	}

	span := Span{Offset: len(desc.Preserve), Count: count}
	desc.Preserve = append(desc.Preserve, b.preserve[first:first+count]...)
	return span, nil
}

func (b *Builder) hasDependency(src, dst int) bool {
	for _, dependency := range b.dependencies {
		if dependency.SrcSubpass == src && dependency.DstSubpass == dst {
			return true
		}
	}
	return false
}

// automaticDependencies orders the first subpass's color writes after the image acquire, and
// each subpass after the one before it
func (b *Builder) automaticDependencies() []core1_0.SubpassDependency {
	var dependencies []core1_0.SubpassDependency

	if !b.hasDependency(core1_0.SubpassExternal, 0) {
		dependencies = append(dependencies, core1_0.SubpassDependency{
			SrcSubpass:    core1_0.SubpassExternal,
			DstSubpass:    0,
			SrcStageMask:  core1_0.PipelineStageColorAttachmentOutput,
			SrcAccessMask: 0,
			DstStageMask:  core1_0.PipelineStageColorAttachmentOutput,
			DstAccessMask: core1_0.AccessColorAttachmentWrite,
		})
	}

	for dst := 1; dst < len(b.subpasses); dst++ {
		if b.hasDependency(dst-1, dst) {
			continue
		}

		dependencies = append(dependencies, core1_0.SubpassDependency{
			SrcSubpass:      dst - 1,
			DstSubpass:      dst,
			SrcStageMask:    core1_0.PipelineStageColorAttachmentOutput,
			SrcAccessMask:   core1_0.AccessColorAttachmentWrite,
			DstStageMask:    core1_0.PipelineStageFragmentShader | core1_0.PipelineStageColorAttachmentOutput,
			DstAccessMask:   core1_0.AccessInputAttachmentRead | core1_0.AccessColorAttachmentWrite,
			DependencyFlags: core1_0.DependencyByRegion,
		})
	}

	return dependencies
}
