package renderpass

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/presenter/gpu"
	"github.com/vkngwrapper/presenter/internal/utils"
	"github.com/vkngwrapper/presenter/surface"
)

// Attachment is one image bound to every framebuffer of a render pass. Subpasses find attachments
// by their concrete type via RequestRef and RequestPreserve.
type Attachment interface {
	Description() (core1_0.AttachmentDescription, error)
	// ImageView returns the view used by the framebuffer of the frame at index
	ImageView(index int) gpu.ImageView
	// NotifyOutputChanged is called when the render pass is bound to a new set of output images
	NotifyOutputChanged(info surface.ImagesInfo) error
	// NotifyDestroyingOutput is called before the current output images are destroyed
	NotifyDestroyingOutput()
}

// OutputAttachment is the color attachment backed by the swapchain images. It is cleared on load
// and left ready for presentation.
type OutputAttachment struct {
	device gpu.Device
	format core1_0.Format
	views  []gpu.ImageView
}

var _ Attachment = &OutputAttachment{}

func NewOutputAttachment(device gpu.Device, format core1_0.Format) *OutputAttachment {
	return &OutputAttachment{
		device: device,
		format: format,
	}
}

func (a *OutputAttachment) Format() core1_0.Format {
	return a.format
}

func (a *OutputAttachment) Description() (core1_0.AttachmentDescription, error) {
	return core1_0.AttachmentDescription{
		Format:         a.format,
		Samples:        core1_0.Samples1,
		LoadOp:         core1_0.AttachmentLoadOpClear,
		StoreOp:        core1_0.AttachmentStoreOpStore,
		StencilLoadOp:  core1_0.AttachmentLoadOpDontCare,
		StencilStoreOp: core1_0.AttachmentStoreOpDontCare,
		InitialLayout:  core1_0.ImageLayoutUndefined,
		FinalLayout:    khr_swapchain.ImageLayoutPresentSrc,
	}, nil
}

func (a *OutputAttachment) ImageView(index int) gpu.ImageView {
	return a.views[index]
}

// NotifyOutputChanged creates one color view per output image. The output format must match the
// format the attachment was created with.
func (a *OutputAttachment) NotifyOutputChanged(info surface.ImagesInfo) error {
	if info.Format != a.format {
		return errors.Wrapf(ErrFormatMismatch, "attachment format %s, output format %s", a.format, info.Format)
	}

	a.NotifyDestroyingOutput()

	var unwind utils.Unwinder
	defer unwind.Run()

	views := make([]gpu.ImageView, 0, len(info.Images))
	for index, image := range info.Images {
		view, res, err := a.device.CreateImageView(gpu.ImageViewCreateInfo{
			Image:  image,
			Format: a.format,
			Aspect: core1_0.ImageAspectColor,
		})
		err = gpu.ResultError(res, err)
		if err != nil {
			return errors.Wrapf(err, "failed to create view for output image %d", index)
		}

		unwind.Push(func() { a.device.DestroyImageView(view) })
		views = append(views, view)
	}

	unwind.Defuse()
	a.views = views
	return nil
}

func (a *OutputAttachment) NotifyDestroyingOutput() {
	for _, view := range a.views {
		a.device.DestroyImageView(view)
	}
	a.views = nil
}

// Destroy releases any views still held by the attachment
func (a *OutputAttachment) Destroy() {
	a.NotifyDestroyingOutput()
}

// ViewProvider creates the image view an ExternalAttachment shares across every frame
type ViewProvider func(info surface.ImagesInfo) (gpu.ImageView, error)

// ExternalAttachment is an attachment whose image is owned by the application, such as a depth
// buffer sized to the output. The same view is used by every frame. Embed it in a named type so
// that subpasses can request it by type.
type ExternalAttachment struct {
	description core1_0.AttachmentDescription
	provide     ViewProvider
	release     func(view gpu.ImageView)

	view  gpu.ImageView
	bound bool
}

var _ Attachment = &ExternalAttachment{}

// NewExternalAttachment creates an attachment described by description. provide is called each
// time the output changes, and release is called with the provided view before the output is
// destroyed.
func NewExternalAttachment(description core1_0.AttachmentDescription, provide ViewProvider, release func(view gpu.ImageView)) *ExternalAttachment {
	return &ExternalAttachment{
		description: description,
		provide:     provide,
		release:     release,
	}
}

func (a *ExternalAttachment) Description() (core1_0.AttachmentDescription, error) {
	if a.description.Format == core1_0.FormatUndefined {
		return a.description, errors.New("external attachment has no format")
	}
	return a.description, nil
}

func (a *ExternalAttachment) ImageView(index int) gpu.ImageView {
	return a.view
}

func (a *ExternalAttachment) NotifyOutputChanged(info surface.ImagesInfo) error {
	a.NotifyDestroyingOutput()

	view, err := a.provide(info)
	if err != nil {
		return errors.Wrap(err, "external attachment could not provide a view")
	}

	a.view = view
	a.bound = true
	return nil
}

func (a *ExternalAttachment) NotifyDestroyingOutput() {
	if !a.bound {
		return
	}

	if a.release != nil {
		a.release(a.view)
	}
	a.view = gpu.NullHandle
	a.bound = false
}
