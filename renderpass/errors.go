package renderpass

import "github.com/cockroachdb/errors"

var (
	// ErrMissingAttachment is returned when a subpass requests an attachment type that was never
	// registered with the builder
	ErrMissingAttachment = errors.New("an attachment was requested by a subpass but was not provided")
	// ErrInvalidSubpass is returned when a subpass description refers to references it never
	// requested
	ErrInvalidSubpass = errors.New("the subpass description is out of range of the registered references")
	// ErrClearValueCount is returned when rendering with a number of clear values different from
	// the number of attachments
	ErrClearValueCount = errors.New("the number of clear values does not match the number of attachments")
	// ErrImagesNotBound is returned when rendering to a frame that has no framebuffer
	ErrImagesNotBound = errors.New("the render pass is not bound to the output images")
	// ErrImagesAlreadyBound is returned when new output images are provided before the previous
	// ones were released
	ErrImagesAlreadyBound = errors.New("the render pass is still bound to the previous output images")
	// ErrFormatMismatch is returned by OutputAttachment when the output images do not use the
	// format the render pass was built for
	ErrFormatMismatch = errors.New("the output images do not match the attachment format")
	// ErrDeviceHang is returned when in-flight frames did not complete within the fence timeout
	ErrDeviceHang = errors.New("in-flight frames did not complete in time; the device appears to be hung")
)
