package surface

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/gpu"
)

// FrameContext is handed to the renderer for a single Present call. The acquire semaphore is
// signaled once the image is ready to be written to; every submission that touches the image must
// wait on it. Semaphores added with AddWaitSemaphore are waited on before the image is presented.
type FrameContext struct {
	device           gpu.Device
	imageIndex       int
	image            gpu.Image
	acquireSemaphore gpu.Semaphore
	waitSemaphores   []gpu.Semaphore
}

// NewFrameContext creates a context for rendering into image, the swapchain image at imageIndex,
// once acquireSemaphore is signaled
func NewFrameContext(device gpu.Device, imageIndex int, image gpu.Image, acquireSemaphore gpu.Semaphore) *FrameContext {
	return &FrameContext{
		device:           device,
		imageIndex:       imageIndex,
		image:            image,
		acquireSemaphore: acquireSemaphore,
	}
}

func (c *FrameContext) Device() gpu.Device {
	return c.device
}

// ImageIndex is the index of the acquired image in the swapchain image list
func (c *FrameContext) ImageIndex() int {
	return c.imageIndex
}

func (c *FrameContext) Image() gpu.Image {
	return c.image
}

func (c *FrameContext) AcquireSemaphore() gpu.Semaphore {
	return c.acquireSemaphore
}

// AddWaitSemaphore registers a semaphore the present call must wait on. The semaphore is not
// owned by the surface.
func (c *FrameContext) AddWaitSemaphore(semaphore gpu.Semaphore) {
	c.waitSemaphores = append(c.waitSemaphores, semaphore)
}

func (c *FrameContext) WaitSemaphores() []gpu.Semaphore {
	return c.waitSemaphores
}

// ImagesInfo describes a freshly created set of swapchain images
type ImagesInfo struct {
	Images []gpu.Image
	Width  int
	Height int
	Format core1_0.Format
}

// FrameRenderer records and submits the work for one acquired image
type FrameRenderer interface {
	RenderFrame(ctx *FrameContext) error
}

// RenderFunc adapts a plain function to FrameRenderer
type RenderFunc func(ctx *FrameContext) error

func (f RenderFunc) RenderFrame(ctx *FrameContext) error {
	return f(ctx)
}

// Contents is something that renders into a surface and owns resources tied to the surface's
// swapchain images. NotifyDestroyImages is always called before the images it was last told about
// are destroyed, and NotifyNewImages is called after each successful reconfiguration.
type Contents[A any] interface {
	NotifyDestroyImages() error
	NotifyNewImages(info ImagesInfo) error
	Render(ctx *FrameContext, args A) error
}

// Present renders contents into the next image of s and presents it
func Present[A any](s *Surface, contents Contents[A], args A) error {
	return s.Present(RenderFunc(func(ctx *FrameContext) error {
		return contents.Render(ctx, args)
	}))
}
