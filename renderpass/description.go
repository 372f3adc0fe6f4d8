package renderpass

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// Span is a contiguous range of a Description's flat reference or preserve arrays
type Span struct {
	Offset int
	Count  int
}

// SubpassLayout locates one subpass's references in the owning Description. DepthStencil is an
// absolute index into References, or nil.
type SubpassLayout struct {
	Inputs       Span
	Colors       Span
	DepthStencil *int
	Preserve     Span
}

// Description is a fully built render pass. Every subpass's references are stored contiguously in
// References and Preserve, addressed by absolute spans.
type Description struct {
	Attachments  []core1_0.AttachmentDescription
	References   []core1_0.AttachmentReference
	Preserve     []int
	Subpasses    []SubpassLayout
	Dependencies []core1_0.SubpassDependency
}

func validateSpan(span Span, length int) error {
	if span.Offset < 0 || span.Count < 0 || span.Offset+span.Count > length {
		return errors.Newf("span {%d, %d} is out of range of %d entries", span.Offset, span.Count, length)
	}
	return nil
}

// Validate checks that every span, reference and dependency in the description is in range
func (d *Description) Validate() error {
	for index, ref := range d.References {
		if ref.Attachment < 0 || ref.Attachment >= len(d.Attachments) {
			return errors.Newf("reference %d points to attachment %d, but there are %d attachments", index, ref.Attachment, len(d.Attachments))
		}
	}

	for index, attachment := range d.Preserve {
		if attachment < 0 || attachment >= len(d.Attachments) {
			return errors.Newf("preserve entry %d points to attachment %d, but there are %d attachments", index, attachment, len(d.Attachments))
		}
	}

	for index, subpass := range d.Subpasses {
		err := validateSpan(subpass.Inputs, len(d.References))
		if err != nil {
			return errors.Wrapf(err, "subpass %d inputs", index)
		}

		err = validateSpan(subpass.Colors, len(d.References))
		if err != nil {
			return errors.Wrapf(err, "subpass %d colors", index)
		}

		err = validateSpan(subpass.Preserve, len(d.Preserve))
		if err != nil {
			return errors.Wrapf(err, "subpass %d preserve", index)
		}

		if subpass.DepthStencil != nil && (*subpass.DepthStencil < 0 || *subpass.DepthStencil >= len(d.References)) {
			return errors.Newf("subpass %d depth stencil reference %d is out of range", index, *subpass.DepthStencil)
		}
	}

	for index, dependency := range d.Dependencies {
		if !d.isSubpassIndex(dependency.SrcSubpass) || !d.isSubpassIndex(dependency.DstSubpass) {
			return errors.Newf("dependency %d (%d -> %d) refers to a missing subpass", index, dependency.SrcSubpass, dependency.DstSubpass)
		}
	}

	return nil
}

func (d *Description) isSubpassIndex(index int) bool {
	return index == core1_0.SubpassExternal || (index >= 0 && index < len(d.Subpasses))
}

func (d *Description) references(span Span) []core1_0.AttachmentReference {
	if span.Count == 0 {
		return nil
	}
	return d.References[span.Offset : span.Offset+span.Count]
}

// CreateInfo produces the render pass create info for this description. Every subpass uses the
// graphics bind point.
func (d *Description) CreateInfo() core1_0.RenderPassCreateInfo {
	subpasses := make([]core1_0.SubpassDescription, 0, len(d.Subpasses))
	for _, layout := range d.Subpasses {
		subpass := core1_0.SubpassDescription{
			PipelineBindPoint: core1_0.PipelineBindPointGraphics,
			InputAttachments:  d.references(layout.Inputs),
			ColorAttachments:  d.references(layout.Colors),
		}

		if layout.DepthStencil != nil {
			ref := d.References[*layout.DepthStencil]
			subpass.DepthStencilAttachment = &ref
		}

		if layout.Preserve.Count > 0 {
			subpass.PreserveAttachments = d.Preserve[layout.Preserve.Offset : layout.Preserve.Offset+layout.Preserve.Count]
		}

		subpasses = append(subpasses, subpass)
	}

	return core1_0.RenderPassCreateInfo{
		Attachments:         d.Attachments,
		Subpasses:           subpasses,
		SubpassDependencies: d.Dependencies,
	}
}

func (d *Description) BuildStatsString() string {
	writer := jwriter.NewWriter()
	d.PrintDetailedMap(&writer)
	return string(writer.Bytes())
}

// PrintDetailedMap writes every attachment, subpass and dependency of the description as JSON
func (d *Description) PrintDetailedMap(writer *jwriter.Writer) {
	json := writer.Object()
	defer json.End()

	attachments := json.Name("Attachments").Array()
	for _, attachment := range d.Attachments {
		obj := attachments.Object()
		obj.Name("Format").String(attachment.Format.String())
		obj.Name("Samples").String(attachment.Samples.String())
		obj.Name("LoadOp").String(attachment.LoadOp.String())
		obj.Name("StoreOp").String(attachment.StoreOp.String())
		obj.Name("InitialLayout").String(attachment.InitialLayout.String())
		obj.Name("FinalLayout").String(attachment.FinalLayout.String())
		obj.End()
	}
	attachments.End()

	subpasses := json.Name("Subpasses").Array()
	for _, layout := range d.Subpasses {
		obj := subpasses.Object()
		d.printReferences(&obj, "Inputs", d.references(layout.Inputs))
		d.printReferences(&obj, "Colors", d.references(layout.Colors))
		if layout.DepthStencil != nil {
			d.printReferences(&obj, "DepthStencil", d.References[*layout.DepthStencil:*layout.DepthStencil+1])
		}

		preserve := obj.Name("Preserve").Array()
		for i := 0; i < layout.Preserve.Count; i++ {
			preserve.Int(d.Preserve[layout.Preserve.Offset+i])
		}
		preserve.End()
		obj.End()
	}
	subpasses.End()

	dependencies := json.Name("Dependencies").Array()
	for _, dependency := range d.Dependencies {
		obj := dependencies.Object()
		obj.Name("SrcSubpass").Int(dependency.SrcSubpass)
		obj.Name("DstSubpass").Int(dependency.DstSubpass)
		obj.Name("SrcStageMask").String(dependency.SrcStageMask.String())
		obj.Name("DstStageMask").String(dependency.DstStageMask.String())
		obj.Name("SrcAccessMask").String(dependency.SrcAccessMask.String())
		obj.Name("DstAccessMask").String(dependency.DstAccessMask.String())
		obj.End()
	}
	dependencies.End()
}

func (d *Description) printReferences(obj *jwriter.ObjectState, name string, refs []core1_0.AttachmentReference) {
	arr := obj.Name(name).Array()
	for _, ref := range refs {
		refObj := arr.Object()
		refObj.Name("Attachment").Int(ref.Attachment)
		refObj.Name("Layout").String(ref.Layout.String())
		refObj.End()
	}
	arr.End()
}
