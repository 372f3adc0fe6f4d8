package renderpass

import (
	"reflect"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/gpu"
	"github.com/vkngwrapper/presenter/surface"
)

type depthAttachment struct {
	*ExternalAttachment
}

func newDepthAttachment() depthAttachment {
	return depthAttachment{NewExternalAttachment(core1_0.AttachmentDescription{
		Format:         core1_0.FormatD32SignedFloat,
		Samples:        core1_0.Samples1,
		LoadOp:         core1_0.AttachmentLoadOpClear,
		StoreOp:        core1_0.AttachmentStoreOpDontCare,
		StencilLoadOp:  core1_0.AttachmentLoadOpDontCare,
		StencilStoreOp: core1_0.AttachmentStoreOpDontCare,
		InitialLayout:  core1_0.ImageLayoutUndefined,
		FinalLayout:    core1_0.ImageLayoutDepthStencilAttachmentOptimal,
	}, func(info surface.ImagesInfo) (gpu.ImageView, error) {
		return gpu.ImageView(0x900), nil
	}, nil)}
}

func outputType() reflect.Type {
	return reflect.TypeOf((*OutputAttachment)(nil))
}

func TestBuilderAttachmentIndexByType(t *testing.T) {
	builder := NewBuilder(0)
	require.NoError(t, builder.RegisterAttachment(NewOutputAttachment(nil, core1_0.FormatB8G8R8A8SRGB)))
	require.NoError(t, builder.RegisterAttachment(newDepthAttachment()))

	index, ok := builder.RequestAttachment(outputType())
	require.True(t, ok)
	require.Equal(t, 0, index)

	index, ok = builder.RequestAttachment(reflect.TypeOf(depthAttachment{}))
	require.True(t, ok)
	require.Equal(t, 1, index)

	_, ok = builder.RequestAttachment(reflect.TypeOf(&ExternalAttachment{}))
	require.False(t, ok)
}

func TestBuilderMissingAttachment(t *testing.T) {
	builder := NewBuilder(0)
	require.NoError(t, builder.RegisterAttachment(newDepthAttachment()))

	err := RegisterSubpass[struct{}](builder, EmptySubpass[struct{}]{})
	require.True(t, errors.Is(err, ErrMissingAttachment))

	_, err = RequestPreserve[*OutputAttachment](builder)
	require.True(t, errors.Is(err, ErrMissingAttachment))
}

func TestBuilderUndescribableAttachment(t *testing.T) {
	builder := NewBuilder(0)
	err := builder.RegisterAttachment(NewExternalAttachment(core1_0.AttachmentDescription{}, nil, nil))
	require.Error(t, err)
}

func TestBuilderCompactsReferences(t *testing.T) {
	builder := NewBuilder(RenderPassCreateNoAutomaticDependencies)
	require.NoError(t, builder.RegisterAttachment(NewOutputAttachment(nil, core1_0.FormatB8G8R8A8SRGB)))
	require.NoError(t, builder.RegisterAttachment(newDepthAttachment()))

	laterColor, err := RequestRef[*OutputAttachment](builder, core1_0.ImageLayoutColorAttachmentOptimal)
	require.NoError(t, err)
	input, err := RequestRef[depthAttachment](builder, core1_0.ImageLayoutShaderReadOnlyOptimal)
	require.NoError(t, err)
	color, err := RequestRef[*OutputAttachment](builder, core1_0.ImageLayoutColorAttachmentOptimal)
	require.NoError(t, err)
	depth, err := RequestRef[depthAttachment](builder, core1_0.ImageLayoutDepthStencilAttachmentOptimal)
	require.NoError(t, err)
	preserve, err := RequestPreserve[depthAttachment](builder)
	require.NoError(t, err)

	builder.AddSubpass(SubpassDescription{
		FirstInputAttachment: input,
		InputAttachmentCount: 1,
		FirstColorAttachment: color,
		ColorAttachmentCount: 1,
	})
	builder.AddSubpass(SubpassDescription{
		FirstColorAttachment:    laterColor,
		ColorAttachmentCount:    1,
		DepthStencilAttachment:  &depth,
		FirstPreserveAttachment: preserve,
		PreserveAttachmentCount: 1,
	})

	desc, err := builder.Build()
	require.NoError(t, err)
	require.NoError(t, desc.Validate())

	require.Equal(t, []core1_0.AttachmentReference{
		{Attachment: 1, Layout: core1_0.ImageLayoutShaderReadOnlyOptimal},
		{Attachment: 0, Layout: core1_0.ImageLayoutColorAttachmentOptimal},
		{Attachment: 0, Layout: core1_0.ImageLayoutColorAttachmentOptimal},
		{Attachment: 1, Layout: core1_0.ImageLayoutDepthStencilAttachmentOptimal},
	}, desc.References)
	require.Equal(t, []int{1}, desc.Preserve)

	depthIndex := 3
	require.Equal(t, []SubpassLayout{
		{Inputs: Span{Offset: 0, Count: 1}, Colors: Span{Offset: 1, Count: 1}, Preserve: Span{Offset: 0, Count: 0}},
		{Inputs: Span{Offset: 2, Count: 0}, Colors: Span{Offset: 2, Count: 1}, DepthStencil: &depthIndex, Preserve: Span{Offset: 0, Count: 1}},
	}, desc.Subpasses)
	require.Empty(t, desc.Dependencies)

	createInfo := desc.CreateInfo()
	require.Len(t, createInfo.Attachments, 2)
	require.Len(t, createInfo.Subpasses, 2)
	require.Equal(t, core1_0.PipelineBindPointGraphics, createInfo.Subpasses[0].PipelineBindPoint)
	require.Equal(t, desc.References[0:1], createInfo.Subpasses[0].InputAttachments)
	require.Equal(t, desc.References[1:2], createInfo.Subpasses[0].ColorAttachments)
	require.Nil(t, createInfo.Subpasses[0].DepthStencilAttachment)
	require.Nil(t, createInfo.Subpasses[1].InputAttachments)
	require.Equal(t, &desc.References[3], createInfo.Subpasses[1].DepthStencilAttachment)
	require.Equal(t, []int{1}, createInfo.Subpasses[1].PreserveAttachments)
}

func TestBuilderInvalidSubpassRange(t *testing.T) {
	builder := NewBuilder(0)
	require.NoError(t, builder.RegisterAttachment(NewOutputAttachment(nil, core1_0.FormatB8G8R8A8SRGB)))
	_, err := RequestRef[*OutputAttachment](builder, core1_0.ImageLayoutColorAttachmentOptimal)
	require.NoError(t, err)

	builder.AddSubpass(SubpassDescription{FirstColorAttachment: 0, ColorAttachmentCount: 2})
	_, err = builder.Build()
	require.True(t, errors.Is(err, ErrInvalidSubpass))
}

func TestBuilderNoSubpasses(t *testing.T) {
	_, err := NewBuilder(0).Build()
	require.True(t, errors.Is(err, ErrInvalidSubpass))
}

func twoSubpassBuilder(t *testing.T, flags CreateFlags) *Builder {
	builder := NewBuilder(flags)
	require.NoError(t, builder.RegisterAttachment(NewOutputAttachment(nil, core1_0.FormatB8G8R8A8SRGB)))
	require.NoError(t, RegisterSubpass[struct{}](builder, EmptySubpass[struct{}]{}))
	require.NoError(t, RegisterSubpass[struct{}](builder, EmptySubpass[struct{}]{}))
	return builder
}

func TestBuilderAutomaticDependencies(t *testing.T) {
	desc, err := twoSubpassBuilder(t, 0).Build()
	require.NoError(t, err)

	require.Len(t, desc.Dependencies, 2)
	require.Equal(t, core1_0.SubpassExternal, desc.Dependencies[0].SrcSubpass)
	require.Equal(t, 0, desc.Dependencies[0].DstSubpass)
	require.Equal(t, core1_0.PipelineStageColorAttachmentOutput, desc.Dependencies[0].DstStageMask)
	require.Equal(t, core1_0.AccessColorAttachmentWrite, desc.Dependencies[0].DstAccessMask)
	require.Equal(t, 0, desc.Dependencies[1].SrcSubpass)
	require.Equal(t, 1, desc.Dependencies[1].DstSubpass)
}

func TestBuilderDeclaredDependencyReplacesAutomatic(t *testing.T) {
	builder := twoSubpassBuilder(t, 0)
	declared := core1_0.SubpassDependency{
		SrcSubpass:    0,
		DstSubpass:    1,
		SrcStageMask:  core1_0.PipelineStageColorAttachmentOutput,
		SrcAccessMask: core1_0.AccessColorAttachmentWrite,
		DstStageMask:  core1_0.PipelineStageFragmentShader,
		DstAccessMask: core1_0.AccessShaderRead,
	}
	builder.AddDependency(declared)

	desc, err := builder.Build()
	require.NoError(t, err)
	require.Len(t, desc.Dependencies, 2)
	require.Equal(t, declared, desc.Dependencies[0])
	require.Equal(t, core1_0.SubpassExternal, desc.Dependencies[1].SrcSubpass)
}

func TestBuilderNoAutomaticDependencies(t *testing.T) {
	desc, err := twoSubpassBuilder(t, RenderPassCreateNoAutomaticDependencies).Build()
	require.NoError(t, err)
	require.Empty(t, desc.Dependencies)
}

func TestDescriptionValidate(t *testing.T) {
	desc, err := twoSubpassBuilder(t, 0).Build()
	require.NoError(t, err)
	require.NoError(t, desc.Validate())

	desc.References[0].Attachment = 4
	require.Error(t, desc.Validate())
	desc.References[0].Attachment = 0

	desc.Dependencies = append(desc.Dependencies, core1_0.SubpassDependency{SrcSubpass: 1, DstSubpass: 2})
	require.Error(t, desc.Validate())
}

func TestDescriptionStatsString(t *testing.T) {
	desc, err := twoSubpassBuilder(t, 0).Build()
	require.NoError(t, err)

	stats := desc.BuildStatsString()
	require.Contains(t, stats, `"Attachments":[`)
	require.Contains(t, stats, `"Subpasses":[`)
	require.Contains(t, stats, `"DstSubpass":1`)
}
