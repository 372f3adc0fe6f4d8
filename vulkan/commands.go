package vulkan

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/gpu"
)

func (d *Device) CreateCommandPool(o gpu.CommandPoolCreateInfo) (gpu.CommandPool, common.VkResult, error) {
	pool, res, err := d.device.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		Flags:            o.Flags,
		QueueFamilyIndex: o.QueueFamilyIndex,
	})
	if err != nil {
		return gpu.NullHandle, res, err
	}

	return d.commandPools.put(&d.handles, pool), res, nil
}

// DestroyCommandPool destroys the pool. Command buffers still allocated from it are freed along
// with it and their handles become unknown.
func (d *Device) DestroyCommandPool(handle gpu.CommandPool) {
	pool, ok := d.commandPools.take(handle)
	if !ok {
		d.logger.Warn("Device::DestroyCommandPool unknown handle", "handle", handle.String())
		return
	}

	var orphaned []gpu.CommandBuffer
	d.commandBuffers.objects.Iter(func(buffer gpu.CommandBuffer, allocated pooledCommandBuffer) bool {
		if allocated.pool == handle {
			orphaned = append(orphaned, buffer)
		}
		return false
	})
	for _, buffer := range orphaned {
		d.commandBuffers.take(buffer)
	}

	pool.Destroy(nil)
}

func (d *Device) AllocateCommandBuffer(handle gpu.CommandPool) (gpu.CommandBuffer, common.VkResult, error) {
	pool, ok := d.commandPools.get(handle)
	if !ok {
		res, err := unknownHandle(handle)
		return gpu.NullHandle, res, err
	}

	buffers, res, err := d.device.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        pool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	})
	if err != nil {
		return gpu.NullHandle, res, err
	}

	return d.commandBuffers.put(&d.handles, pooledCommandBuffer{CommandBuffer: buffers[0], pool: handle}), res, nil
}

func (d *Device) FreeCommandBuffers(pool gpu.CommandPool, handles []gpu.CommandBuffer) {
	buffers := make([]core1_0.CommandBuffer, 0, len(handles))
	for _, handle := range handles {
		buffer, ok := d.commandBuffers.get(handle)
		if !ok || buffer.pool != pool {
			d.logger.Warn("Device::FreeCommandBuffers unknown handle", "handle", handle.String(), "pool", pool.String())
			continue
		}
		d.commandBuffers.take(handle)
		buffers = append(buffers, buffer.CommandBuffer)
	}

	if len(buffers) > 0 {
		d.device.FreeCommandBuffers(buffers)
	}
}

// pooledCommandBuffer remembers the pool a command buffer was allocated from
type pooledCommandBuffer struct {
	core1_0.CommandBuffer
	pool gpu.CommandPool
}

func (d *Device) commandBuffer(handle gpu.CommandBuffer) core1_0.CommandBuffer {
	buffer, ok := d.commandBuffers.get(handle)
	return mustLookup(buffer, ok, handle).CommandBuffer
}

func (d *Device) BeginCommandBuffer(handle gpu.CommandBuffer, flags core1_0.CommandBufferUsageFlags) (common.VkResult, error) {
	buffer, ok := d.commandBuffers.get(handle)
	if !ok {
		return unknownHandle(handle)
	}

	return buffer.Begin(core1_0.CommandBufferBeginInfo{Flags: flags})
}

func (d *Device) EndCommandBuffer(handle gpu.CommandBuffer) (common.VkResult, error) {
	buffer, ok := d.commandBuffers.get(handle)
	if !ok {
		return unknownHandle(handle)
	}

	return buffer.End()
}

func (d *Device) ResetCommandBuffer(handle gpu.CommandBuffer) (common.VkResult, error) {
	buffer, ok := d.commandBuffers.get(handle)
	if !ok {
		return unknownHandle(handle)
	}

	return buffer.Reset(0)
}

func (d *Device) CmdBeginRenderPass(handle gpu.CommandBuffer, o gpu.RenderPassBeginInfo) error {
	buffer, ok := d.commandBuffers.get(handle)
	if !ok {
		_, err := unknownHandle(handle)
		return err
	}

	renderPass, ok := d.renderPasses.get(o.RenderPass)
	if !ok {
		_, err := unknownHandle(o.RenderPass)
		return err
	}

	framebuffer, ok := d.framebuffers.get(o.Framebuffer)
	if !ok {
		_, err := unknownHandle(o.Framebuffer)
		return err
	}

	return buffer.CmdBeginRenderPass(core1_0.SubpassContentsInline, core1_0.RenderPassBeginInfo{
		RenderPass:  renderPass,
		Framebuffer: framebuffer,
		RenderArea: core1_0.Rect2D{
			Offset: core1_0.Offset2D{X: 0, Y: 0},
			Extent: core1_0.Extent2D{Width: o.Width, Height: o.Height},
		},
		ClearValues: o.ClearValues,
	})
}

func (d *Device) CmdNextSubpass(handle gpu.CommandBuffer) {
	d.commandBuffer(handle).CmdNextSubpass(core1_0.SubpassContentsInline)
}

func (d *Device) CmdEndRenderPass(handle gpu.CommandBuffer) {
	d.commandBuffer(handle).CmdEndRenderPass()
}
