package vulkan

import (
	"time"

	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/presenter/gpu"
)

func (d *Device) QueueSubmit(fenceHandle gpu.Fence, submits []gpu.SubmitInfo) (common.VkResult, error) {
	var fence core1_0.Fence
	if fenceHandle != gpu.NullHandle {
		var ok bool
		fence, ok = d.fences.get(fenceHandle)
		if !ok {
			return unknownHandle(fenceHandle)
		}
	}

	infos := make([]core1_0.SubmitInfo, 0, len(submits))
	for _, submit := range submits {
		waits, res, err := d.lookupSemaphores(submit.WaitSemaphores)
		if err != nil {
			return res, err
		}

		signals, res, err := d.lookupSemaphores(submit.SignalSemaphores)
		if err != nil {
			return res, err
		}

		buffers := make([]core1_0.CommandBuffer, 0, len(submit.CommandBuffers))
		for _, handle := range submit.CommandBuffers {
			buffer, ok := d.commandBuffers.get(handle)
			if !ok {
				return unknownHandle(handle)
			}
			buffers = append(buffers, buffer.CommandBuffer)
		}

		infos = append(infos, core1_0.SubmitInfo{
			WaitSemaphores:   waits,
			WaitDstStageMask: submit.WaitDstStageMask,
			CommandBuffers:   buffers,
			SignalSemaphores: signals,
		})
	}

	return d.queue.Submit(fence, infos)
}

func (d *Device) QueueWaitIdle() (common.VkResult, error) {
	return d.queue.WaitIdle()
}

func (d *Device) CreateSwapchain(o gpu.SwapchainCreateInfo) (gpu.Swapchain, common.VkResult, error) {
	d.logger.Debug("Device::CreateSwapchain", "width", o.Width, "height", o.Height, "presentMode", o.PresentMode.String())

	surface, ok := d.surfaces.get(o.Surface)
	if !ok {
		res, err := unknownHandle(o.Surface)
		return gpu.NullHandle, res, err
	}

	var oldSwapchain khr_swapchain.Swapchain
	if o.OldSwapchain != nil {
		oldSwapchain, ok = d.swapchains.get(*o.OldSwapchain)
		if !ok {
			res, err := unknownHandle(*o.OldSwapchain)
			return gpu.NullHandle, res, err
		}
	}

	swapchain, res, err := d.swapchainExt.CreateSwapchain(d.device, nil, khr_swapchain.SwapchainCreateInfo{
		Surface: surface,

		MinImageCount:    o.MinImageCount,
		ImageFormat:      o.ImageFormat,
		ImageColorSpace:  o.ImageColorSpace,
		ImageExtent:      core1_0.Extent2D{Width: o.Width, Height: o.Height},
		ImageArrayLayers: o.ImageArrayLayers,
		ImageUsage:       o.ImageUsage,

		ImageSharingMode:   core1_0.SharingModeExclusive,
		QueueFamilyIndices: []int{d.queueFamilyIndex},

		PreTransform:   o.PreTransform,
		CompositeAlpha: o.CompositeAlpha,
		PresentMode:    o.PresentMode,
		Clipped:        o.Clipped,
		OldSwapchain:   oldSwapchain,
	})
	if err != nil {
		return gpu.NullHandle, res, err
	}

	return d.swapchains.put(&d.handles, swapchain), res, nil
}

func (d *Device) forgetSwapchainImages(handle gpu.Swapchain) {
	for _, image := range d.swapchainImages[handle] {
		d.images.take(image)
	}
	delete(d.swapchainImages, handle)
}

// DestroySwapchain destroys the swapchain. Its images are owned by the swapchain and their
// handles become unknown.
func (d *Device) DestroySwapchain(handle gpu.Swapchain) {
	swapchain, ok := d.swapchains.take(handle)
	if !ok {
		d.logger.Warn("Device::DestroySwapchain unknown handle", "handle", handle.String())
		return
	}

	d.forgetSwapchainImages(handle)
	swapchain.Destroy(nil)
}

// SwapchainImages lists the swapchain's images. Calling it again replaces the image handles
// issued by the previous call.
func (d *Device) SwapchainImages(handle gpu.Swapchain) ([]gpu.Image, common.VkResult, error) {
	swapchain, ok := d.swapchains.get(handle)
	if !ok {
		res, err := unknownHandle(handle)
		return nil, res, err
	}

	images, res, err := swapchain.SwapchainImages()
	if err != nil {
		return nil, res, err
	}

	d.forgetSwapchainImages(handle)
	handles := make([]gpu.Image, 0, len(images))
	for _, image := range images {
		handles = append(handles, d.images.put(&d.handles, image))
	}
	d.swapchainImages[handle] = handles

	return handles, res, nil
}

func (d *Device) AcquireNextImage(handle gpu.Swapchain, timeout time.Duration, semaphoreHandle gpu.Semaphore) (int, common.VkResult, error) {
	swapchain, ok := d.swapchains.get(handle)
	if !ok {
		res, err := unknownHandle(handle)
		return -1, res, err
	}

	semaphore, ok := d.semaphores.get(semaphoreHandle)
	if !ok {
		res, err := unknownHandle(semaphoreHandle)
		return -1, res, err
	}

	return swapchain.AcquireNextImage(timeout, semaphore, nil)
}

func (d *Device) QueuePresent(o gpu.PresentInfo) (common.VkResult, error) {
	swapchain, ok := d.swapchains.get(o.Swapchain)
	if !ok {
		return unknownHandle(o.Swapchain)
	}

	waits, res, err := d.lookupSemaphores(o.WaitSemaphores)
	if err != nil {
		return res, err
	}

	return d.swapchainExt.QueuePresent(d.queue, khr_swapchain.PresentInfo{
		WaitSemaphores: waits,
		Swapchains:     []khr_swapchain.Swapchain{swapchain},
		ImageIndices:   []int{o.ImageIndex},
	})
}

func (d *Device) SurfaceCapabilities(handle gpu.Surface) (*gpu.SurfaceCapabilities, common.VkResult, error) {
	surface, ok := d.surfaces.get(handle)
	if !ok {
		res, err := unknownHandle(handle)
		return nil, res, err
	}

	caps, res, err := surface.PhysicalDeviceSurfaceCapabilities(d.physicalDevice)
	if err != nil {
		return nil, res, err
	}

	return &gpu.SurfaceCapabilities{
		MinImageCount:           caps.MinImageCount,
		MaxImageCount:           caps.MaxImageCount,
		CurrentExtent:           caps.CurrentExtent,
		MinImageExtent:          caps.MinImageExtent,
		MaxImageExtent:          caps.MaxImageExtent,
		MaxImageArrayLayers:     caps.MaxImageArrayLayers,
		SupportedTransforms:     caps.SupportedTransforms,
		CurrentTransform:        caps.CurrentTransform,
		SupportedCompositeAlpha: caps.SupportedCompositeAlpha,
		SupportedUsageFlags:     caps.SupportedUsageFlags,
	}, res, nil
}

func (d *Device) SurfaceFormats(handle gpu.Surface) ([]khr_surface.SurfaceFormat, common.VkResult, error) {
	surface, ok := d.surfaces.get(handle)
	if !ok {
		res, err := unknownHandle(handle)
		return nil, res, err
	}

	return surface.PhysicalDeviceSurfaceFormats(d.physicalDevice)
}

func (d *Device) SurfacePresentModes(handle gpu.Surface) ([]khr_surface.PresentMode, common.VkResult, error) {
	surface, ok := d.surfaces.get(handle)
	if !ok {
		res, err := unknownHandle(handle)
		return nil, res, err
	}

	return surface.PhysicalDeviceSurfacePresentModes(d.physicalDevice)
}

func (d *Device) DestroySurface(handle gpu.Surface) {
	surface, ok := d.surfaces.take(handle)
	if !ok {
		d.logger.Warn("Device::DestroySurface unknown handle", "handle", handle.String())
		return
	}
	surface.Destroy(nil)
}
