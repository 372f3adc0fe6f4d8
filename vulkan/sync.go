package vulkan

import (
	"time"

	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/gpu"
)

func (d *Device) CreateSemaphore() (gpu.Semaphore, common.VkResult, error) {
	semaphore, res, err := d.device.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
	if err != nil {
		return gpu.NullHandle, res, err
	}

	return d.semaphores.put(&d.handles, semaphore), res, nil
}

func (d *Device) DestroySemaphore(handle gpu.Semaphore) {
	semaphore, ok := d.semaphores.take(handle)
	if !ok {
		d.logger.Warn("Device::DestroySemaphore unknown handle", "handle", handle.String())
		return
	}
	semaphore.Destroy(nil)
}

func (d *Device) CreateFence(signaled bool) (gpu.Fence, common.VkResult, error) {
	var flags core1_0.FenceCreateFlags
	if signaled {
		flags = core1_0.FenceCreateSignaled
	}

	fence, res, err := d.device.CreateFence(nil, core1_0.FenceCreateInfo{Flags: flags})
	if err != nil {
		return gpu.NullHandle, res, err
	}

	return d.fences.put(&d.handles, fence), res, nil
}

func (d *Device) DestroyFence(handle gpu.Fence) {
	fence, ok := d.fences.take(handle)
	if !ok {
		d.logger.Warn("Device::DestroyFence unknown handle", "handle", handle.String())
		return
	}
	fence.Destroy(nil)
}

func (d *Device) lookupFences(handles []gpu.Fence) ([]core1_0.Fence, common.VkResult, error) {
	fences := make([]core1_0.Fence, 0, len(handles))
	for _, handle := range handles {
		fence, ok := d.fences.get(handle)
		if !ok {
			res, err := unknownHandle(handle)
			return nil, res, err
		}
		fences = append(fences, fence)
	}
	return fences, core1_0.VKSuccess, nil
}

func (d *Device) WaitForFences(waitAll bool, timeout time.Duration, handles []gpu.Fence) (common.VkResult, error) {
	fences, res, err := d.lookupFences(handles)
	if err != nil {
		return res, err
	}

	return d.device.WaitForFences(waitAll, timeout, fences)
}

func (d *Device) ResetFences(handles []gpu.Fence) (common.VkResult, error) {
	fences, res, err := d.lookupFences(handles)
	if err != nil {
		return res, err
	}

	return d.device.ResetFences(fences)
}

func (d *Device) lookupSemaphores(handles []gpu.Semaphore) ([]core1_0.Semaphore, common.VkResult, error) {
	semaphores := make([]core1_0.Semaphore, 0, len(handles))
	for _, handle := range handles {
		semaphore, ok := d.semaphores.get(handle)
		if !ok {
			res, err := unknownHandle(handle)
			return nil, res, err
		}
		semaphores = append(semaphores, semaphore)
	}
	return semaphores, core1_0.VKSuccess, nil
}
