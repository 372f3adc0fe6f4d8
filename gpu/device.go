package gpu

import (
	"time"

	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

//go:generate mockgen -source device.go -destination ./mocks/device.go -package mocks

// Device is the table of native entry points used to drive a single logical device, its
// presentation queue and the surfaces attached to it. Fallible calls report the raw result
// code alongside an error, the way vkngwrapper does.
type Device interface {
	CreateSemaphore() (Semaphore, common.VkResult, error)
	DestroySemaphore(semaphore Semaphore)

	CreateFence(signaled bool) (Fence, common.VkResult, error)
	DestroyFence(fence Fence)
	WaitForFences(waitAll bool, timeout time.Duration, fences []Fence) (common.VkResult, error)
	ResetFences(fences []Fence) (common.VkResult, error)

	CreateCommandPool(o CommandPoolCreateInfo) (CommandPool, common.VkResult, error)
	DestroyCommandPool(pool CommandPool)
	AllocateCommandBuffer(pool CommandPool) (CommandBuffer, common.VkResult, error)
	FreeCommandBuffers(pool CommandPool, buffers []CommandBuffer)

	BeginCommandBuffer(buffer CommandBuffer, flags core1_0.CommandBufferUsageFlags) (common.VkResult, error)
	EndCommandBuffer(buffer CommandBuffer) (common.VkResult, error)
	ResetCommandBuffer(buffer CommandBuffer) (common.VkResult, error)
	CmdBeginRenderPass(buffer CommandBuffer, o RenderPassBeginInfo) error
	CmdNextSubpass(buffer CommandBuffer)
	CmdEndRenderPass(buffer CommandBuffer)

	CreateRenderPass(o core1_0.RenderPassCreateInfo) (RenderPass, common.VkResult, error)
	DestroyRenderPass(renderPass RenderPass)
	CreateFramebuffer(o FramebufferCreateInfo) (Framebuffer, common.VkResult, error)
	DestroyFramebuffer(framebuffer Framebuffer)
	CreateImageView(o ImageViewCreateInfo) (ImageView, common.VkResult, error)
	DestroyImageView(view ImageView)

	QueueFamilyIndex() int
	QueueSubmit(fence Fence, submits []SubmitInfo) (common.VkResult, error)
	QueueWaitIdle() (common.VkResult, error)

	CreateSwapchain(o SwapchainCreateInfo) (Swapchain, common.VkResult, error)
	DestroySwapchain(swapchain Swapchain)
	SwapchainImages(swapchain Swapchain) ([]Image, common.VkResult, error)
	AcquireNextImage(swapchain Swapchain, timeout time.Duration, semaphore Semaphore) (int, common.VkResult, error)
	QueuePresent(o PresentInfo) (common.VkResult, error)

	SurfaceCapabilities(surface Surface) (*SurfaceCapabilities, common.VkResult, error)
	SurfaceFormats(surface Surface) ([]khr_surface.SurfaceFormat, common.VkResult, error)
	SurfacePresentModes(surface Surface) ([]khr_surface.PresentMode, common.VkResult, error)
	DestroySurface(surface Surface)
}
