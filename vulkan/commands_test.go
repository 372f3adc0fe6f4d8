package vulkan

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/mocks"
	"github.com/vkngwrapper/presenter/gpu"
	"github.com/golang/mock/gomock"
)

func createPool(t *testing.T, device *Device, mockDevice *mocks.MockDevice, pool core1_0.CommandPool) gpu.CommandPool {
	mockDevice.EXPECT().CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		Flags:            core1_0.CommandPoolCreateResetBuffer,
		QueueFamilyIndex: testQueueFamily,
	}).Return(pool, core1_0.VKSuccess, nil)

	handle, _, err := device.CreateCommandPool(gpu.CommandPoolCreateInfo{
		Flags:            core1_0.CommandPoolCreateResetBuffer,
		QueueFamilyIndex: testQueueFamily,
	})
	require.NoError(t, err)
	return handle
}

func allocateBuffer(t *testing.T, device *Device, mockDevice *mocks.MockDevice, pool core1_0.CommandPool, poolHandle gpu.CommandPool, buffer core1_0.CommandBuffer) gpu.CommandBuffer {
	mockDevice.EXPECT().AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        pool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}).Return([]core1_0.CommandBuffer{buffer}, core1_0.VKSuccess, nil)

	handle, _, err := device.AllocateCommandBuffer(poolHandle)
	require.NoError(t, err)
	return handle
}

func TestDestroyCommandPoolForgetsItsBuffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	device, mockDevice, _, _ := newTestDevice(ctrl)

	doomedPool := mocks.NewMockCommandPool(ctrl)
	keptPool := mocks.NewMockCommandPool(ctrl)
	doomedHandle := createPool(t, device, mockDevice, doomedPool)
	keptHandle := createPool(t, device, mockDevice, keptPool)

	doomedBuffers := []gpu.CommandBuffer{
		allocateBuffer(t, device, mockDevice, doomedPool, doomedHandle, mocks.NewMockCommandBuffer(ctrl)),
		allocateBuffer(t, device, mockDevice, doomedPool, doomedHandle, mocks.NewMockCommandBuffer(ctrl)),
	}
	keptBuffer := mocks.NewMockCommandBuffer(ctrl)
	keptBufferHandle := allocateBuffer(t, device, mockDevice, keptPool, keptHandle, keptBuffer)
	require.Equal(t, 5, device.LiveObjects())

	doomedPool.EXPECT().Destroy(nil)
	device.DestroyCommandPool(doomedHandle)
	require.Equal(t, 2, device.LiveObjects())

	for _, handle := range doomedBuffers {
		_, ok := device.CommandBuffer(handle)
		require.False(t, ok)
	}
	buffer, ok := device.CommandBuffer(keptBufferHandle)
	require.True(t, ok)
	require.Same(t, keptBuffer, buffer)

	// Buffers freed with their pool are not freed again
	device.FreeCommandBuffers(doomedHandle, doomedBuffers)

	mockDevice.EXPECT().FreeCommandBuffers([]core1_0.CommandBuffer{keptBuffer})
	device.FreeCommandBuffers(keptHandle, []gpu.CommandBuffer{keptBufferHandle})
	require.Equal(t, 1, device.LiveObjects())
}

func TestFreeCommandBuffersChecksPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	device, mockDevice, _, _ := newTestDevice(ctrl)

	pool := mocks.NewMockCommandPool(ctrl)
	other := mocks.NewMockCommandPool(ctrl)
	poolHandle := createPool(t, device, mockDevice, pool)
	otherHandle := createPool(t, device, mockDevice, other)
	buffer := allocateBuffer(t, device, mockDevice, pool, poolHandle, mocks.NewMockCommandBuffer(ctrl))

	// Freeing through the wrong pool is ignored and leaves the buffer usable
	device.FreeCommandBuffers(otherHandle, []gpu.CommandBuffer{buffer})
	_, ok := device.CommandBuffer(buffer)
	require.True(t, ok)
	require.Equal(t, 3, device.LiveObjects())
}

func TestQueueSubmitTranslatesHandles(t *testing.T) {
	ctrl := gomock.NewController(t)
	device, mockDevice, queue, _ := newTestDevice(ctrl)

	acquired := mocks.NewMockSemaphore(ctrl)
	rendered := mocks.NewMockSemaphore(ctrl)
	gomock.InOrder(
		mockDevice.EXPECT().CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{}).Return(acquired, core1_0.VKSuccess, nil),
		mockDevice.EXPECT().CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{}).Return(rendered, core1_0.VKSuccess, nil),
	)
	acquiredHandle, _, err := device.CreateSemaphore()
	require.NoError(t, err)
	renderedHandle, _, err := device.CreateSemaphore()
	require.NoError(t, err)

	fence := mocks.NewMockFence(ctrl)
	mockDevice.EXPECT().CreateFence(nil, core1_0.FenceCreateInfo{Flags: core1_0.FenceCreateSignaled}).Return(fence, core1_0.VKSuccess, nil)
	fenceHandle, _, err := device.CreateFence(true)
	require.NoError(t, err)

	pool := mocks.NewMockCommandPool(ctrl)
	commands := mocks.NewMockCommandBuffer(ctrl)
	commandsHandle := allocateBuffer(t, device, mockDevice, pool, createPool(t, device, mockDevice, pool), commands)

	submit := gpu.SubmitInfo{
		WaitSemaphores:   []gpu.Semaphore{acquiredHandle},
		WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
		CommandBuffers:   []gpu.CommandBuffer{commandsHandle},
		SignalSemaphores: []gpu.Semaphore{renderedHandle},
	}
	queue.EXPECT().Submit(fence, []core1_0.SubmitInfo{
		{
			WaitSemaphores:   []core1_0.Semaphore{acquired},
			WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
			CommandBuffers:   []core1_0.CommandBuffer{commands},
			SignalSemaphores: []core1_0.Semaphore{rendered},
		},
	}).Return(core1_0.VKSuccess, nil)

	res, err := device.QueueSubmit(fenceHandle, []gpu.SubmitInfo{submit})
	require.NoError(t, err)
	require.Equal(t, core1_0.VKSuccess, res)

	// A null fence submits without one
	queue.EXPECT().Submit(nil, gomock.Len(1)).Return(core1_0.VKSuccess, nil)
	_, err = device.QueueSubmit(gpu.NullHandle, []gpu.SubmitInfo{submit})
	require.NoError(t, err)

	submit.SignalSemaphores = []gpu.Semaphore{gpu.Semaphore(0xdead)}
	_, err = device.QueueSubmit(fenceHandle, []gpu.SubmitInfo{submit})
	require.True(t, errors.Is(err, ErrUnknownHandle))

	queue.EXPECT().WaitIdle().Return(core1_0.VKSuccess, nil)
	_, err = device.QueueWaitIdle()
	require.NoError(t, err)
}

func TestFenceWaitAndReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	device, mockDevice, _, _ := newTestDevice(ctrl)

	fence := mocks.NewMockFence(ctrl)
	mockDevice.EXPECT().CreateFence(nil, core1_0.FenceCreateInfo{}).Return(fence, core1_0.VKSuccess, nil)
	handle, _, err := device.CreateFence(false)
	require.NoError(t, err)

	mockDevice.EXPECT().WaitForFences(true, testTimeout, []core1_0.Fence{fence}).Return(core1_0.VKTimeout, nil)
	res, err := device.WaitForFences(true, testTimeout, []gpu.Fence{handle})
	require.NoError(t, err)
	require.Equal(t, core1_0.VKTimeout, res)

	mockDevice.EXPECT().ResetFences([]core1_0.Fence{fence}).Return(core1_0.VKSuccess, nil)
	_, err = device.ResetFences([]gpu.Fence{handle})
	require.NoError(t, err)

	fence.EXPECT().Destroy(nil)
	device.DestroyFence(handle)

	_, err = device.WaitForFences(true, testTimeout, []gpu.Fence{handle})
	require.True(t, errors.Is(err, ErrUnknownHandle))
}

func TestCreateFramebufferTranslatesAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	device, mockDevice, _, _ := newTestDevice(ctrl)

	renderPass := mocks.NewMockRenderPass(ctrl)
	mockDevice.EXPECT().CreateRenderPass(nil, gomock.Any()).Return(renderPass, core1_0.VKSuccess, nil)
	renderPassHandle, _, err := device.CreateRenderPass(core1_0.RenderPassCreateInfo{})
	require.NoError(t, err)

	color := mocks.NewMockImageView(ctrl)
	depth := mocks.NewMockImageView(ctrl)
	colorHandle := device.RegisterImageView(color)
	depthHandle := device.RegisterImageView(depth)

	framebuffer := mocks.NewMockFramebuffer(ctrl)
	mockDevice.EXPECT().CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
		RenderPass:  renderPass,
		Attachments: []core1_0.ImageView{color, depth},
		Width:       800,
		Height:      600,
		Layers:      1,
	}).Return(framebuffer, core1_0.VKSuccess, nil)

	framebufferHandle, _, err := device.CreateFramebuffer(gpu.FramebufferCreateInfo{
		RenderPass:  renderPassHandle,
		Attachments: []gpu.ImageView{colorHandle, depthHandle},
		Width:       800,
		Height:      600,
		Layers:      1,
	})
	require.NoError(t, err)

	_, _, err = device.CreateFramebuffer(gpu.FramebufferCreateInfo{
		RenderPass:  renderPassHandle,
		Attachments: []gpu.ImageView{colorHandle, gpu.ImageView(0xdead)},
		Width:       800,
		Height:      600,
		Layers:      1,
	})
	require.True(t, errors.Is(err, ErrUnknownHandle))

	framebuffer.EXPECT().Destroy(nil)
	device.DestroyFramebuffer(framebufferHandle)
	color.EXPECT().Destroy(nil)
	device.DestroyImageView(colorHandle)
	require.Equal(t, 2, device.LiveObjects())
}
