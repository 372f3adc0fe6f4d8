package gpu

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

type CommandPoolCreateInfo struct {
	Flags            core1_0.CommandPoolCreateFlags
	QueueFamilyIndex int
}

// RenderPassBeginInfo always covers the full Width x Height area at offset 0,0
type RenderPassBeginInfo struct {
	RenderPass  RenderPass
	Framebuffer Framebuffer
	Width       int
	Height      int
	ClearValues []core1_0.ClearValue
}

type FramebufferCreateInfo struct {
	RenderPass  RenderPass
	Attachments []ImageView
	Width       int
	Height      int
	Layers      int
}

// ImageViewCreateInfo describes a 2D view over the first mip level and array layer of Image
type ImageViewCreateInfo struct {
	Image  Image
	Format core1_0.Format
	Aspect core1_0.ImageAspectFlags
}

type SubmitInfo struct {
	WaitSemaphores   []Semaphore
	WaitDstStageMask []core1_0.PipelineStageFlags
	CommandBuffers   []CommandBuffer
	SignalSemaphores []Semaphore
}

type SwapchainCreateInfo struct {
	Surface          Surface
	MinImageCount    int
	ImageFormat      core1_0.Format
	ImageColorSpace  khr_surface.ColorSpace
	Width            int
	Height           int
	ImageArrayLayers int
	ImageUsage       core1_0.ImageUsageFlags
	PreTransform     khr_surface.SurfaceTransformFlags
	CompositeAlpha   khr_surface.CompositeAlphaFlags
	PresentMode      khr_surface.PresentMode
	Clipped          bool

	// OldSwapchain is the swapchain being replaced, or nil. The old swapchain is retired by the
	// create call whether or not it succeeds, but must still be destroyed by the caller.
	OldSwapchain *Swapchain
}

type PresentInfo struct {
	WaitSemaphores []Semaphore
	Swapchain      Swapchain
	ImageIndex     int
}

// SurfaceCapabilities mirrors the surface capabilities reported by the physical device. A zero
// MaxImageCount means there is no upper bound on image count.
type SurfaceCapabilities struct {
	MinImageCount int
	MaxImageCount int

	CurrentExtent  core1_0.Extent2D
	MinImageExtent core1_0.Extent2D
	MaxImageExtent core1_0.Extent2D

	MaxImageArrayLayers int

	SupportedTransforms     khr_surface.SurfaceTransformFlags
	CurrentTransform        khr_surface.SurfaceTransformFlags
	SupportedCompositeAlpha khr_surface.CompositeAlphaFlags
	SupportedUsageFlags     core1_0.ImageUsageFlags
}
