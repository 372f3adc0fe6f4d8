package vulkan

import (
	"io"

	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/presenter/gpu"
	"golang.org/x/exp/slog"
)

// Device implements gpu.Device over a vkngwrapper logical device, a single queue used for both
// rendering and presentation, and the swapchain extension. It is not safe for concurrent use.
type Device struct {
	logger           *slog.Logger
	device           core1_0.Device
	physicalDevice   core1_0.PhysicalDevice
	queue            core1_0.Queue
	queueFamilyIndex int
	swapchainExt     khr_swapchain.Extension

	handles handleSource

	semaphores     handleTable[gpu.Semaphore, core1_0.Semaphore]
	fences         handleTable[gpu.Fence, core1_0.Fence]
	commandPools   handleTable[gpu.CommandPool, core1_0.CommandPool]
	commandBuffers handleTable[gpu.CommandBuffer, pooledCommandBuffer]
	renderPasses   handleTable[gpu.RenderPass, core1_0.RenderPass]
	framebuffers   handleTable[gpu.Framebuffer, core1_0.Framebuffer]
	images         handleTable[gpu.Image, core1_0.Image]
	imageViews     handleTable[gpu.ImageView, core1_0.ImageView]
	swapchains     handleTable[gpu.Swapchain, khr_swapchain.Swapchain]
	surfaces       handleTable[gpu.Surface, khr_surface.Surface]

	swapchainImages map[gpu.Swapchain][]gpu.Image
}

var _ gpu.Device = &Device{}

// New wraps device. queue must support graphics work and presentation to every surface
// registered with the Device, and belong to the family at queueFamilyIndex.
func New(logger *slog.Logger, device core1_0.Device, physicalDevice core1_0.PhysicalDevice, queue core1_0.Queue, queueFamilyIndex int, swapchainExt khr_swapchain.Extension) *Device {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	return &Device{
		logger:           logger,
		device:           device,
		physicalDevice:   physicalDevice,
		queue:            queue,
		queueFamilyIndex: queueFamilyIndex,
		swapchainExt:     swapchainExt,

		semaphores:     newHandleTable[gpu.Semaphore, core1_0.Semaphore](),
		fences:         newHandleTable[gpu.Fence, core1_0.Fence](),
		commandPools:   newHandleTable[gpu.CommandPool, core1_0.CommandPool](),
		commandBuffers: newHandleTable[gpu.CommandBuffer, pooledCommandBuffer](),
		renderPasses:   newHandleTable[gpu.RenderPass, core1_0.RenderPass](),
		framebuffers:   newHandleTable[gpu.Framebuffer, core1_0.Framebuffer](),
		images:         newHandleTable[gpu.Image, core1_0.Image](),
		imageViews:     newHandleTable[gpu.ImageView, core1_0.ImageView](),
		swapchains:     newHandleTable[gpu.Swapchain, khr_swapchain.Swapchain](),
		surfaces:       newHandleTable[gpu.Surface, khr_surface.Surface](),

		swapchainImages: make(map[gpu.Swapchain][]gpu.Image),
	}
}

// RegisterSurface hands surface to the Device. The returned handle owns the surface, which is
// destroyed by DestroySurface.
func (d *Device) RegisterSurface(surface khr_surface.Surface) gpu.Surface {
	return d.surfaces.put(&d.handles, surface)
}

// CommandBuffer returns the command buffer behind handle so that subpasses can record into it
func (d *Device) CommandBuffer(handle gpu.CommandBuffer) (core1_0.CommandBuffer, bool) {
	buffer, ok := d.commandBuffers.get(handle)
	return buffer.CommandBuffer, ok
}

// RenderPass returns the render pass behind handle, for building pipelines against it
func (d *Device) RenderPass(handle gpu.RenderPass) (core1_0.RenderPass, bool) {
	return d.renderPasses.get(handle)
}

func (d *Device) Image(handle gpu.Image) (core1_0.Image, bool) {
	return d.images.get(handle)
}

func (d *Device) ImageView(handle gpu.ImageView) (core1_0.ImageView, bool) {
	return d.imageViews.get(handle)
}

func (d *Device) QueueFamilyIndex() int {
	return d.queueFamilyIndex
}

// LiveObjects counts the handles the Device is still tracking
func (d *Device) LiveObjects() int {
	return d.semaphores.count() + d.fences.count() + d.commandPools.count() + d.commandBuffers.count() +
		d.renderPasses.count() + d.framebuffers.count() + d.images.count() + d.imageViews.count() +
		d.swapchains.count() + d.surfaces.count()
}
