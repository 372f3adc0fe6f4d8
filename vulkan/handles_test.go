package vulkan

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/gpu"
)

func TestHandleTableIssuesUniqueHandles(t *testing.T) {
	var source handleSource
	names := newHandleTable[gpu.Semaphore, string]()
	counts := newHandleTable[gpu.Fence, int]()

	first := names.put(&source, "first")
	fence := counts.put(&source, 7)
	second := names.put(&source, "second")

	require.NotEqual(t, gpu.Semaphore(gpu.NullHandle), first)
	require.NotEqual(t, uint64(first), uint64(fence))
	require.NotEqual(t, first, second)

	value, ok := names.get(first)
	require.True(t, ok)
	require.Equal(t, "first", value)
	require.Equal(t, 2, names.count())

	value, ok = names.take(first)
	require.True(t, ok)
	require.Equal(t, "first", value)

	_, ok = names.get(first)
	require.False(t, ok)
	_, ok = names.take(first)
	require.False(t, ok)
	require.Equal(t, 1, names.count())
}

func TestUnknownHandles(t *testing.T) {
	device := New(nil, nil, nil, nil, 0, nil)

	res, err := device.WaitForFences(true, time.Second, []gpu.Fence{0x42})
	require.True(t, errors.Is(err, ErrUnknownHandle))
	require.Equal(t, core1_0.VKErrorUnknown, res)

	_, _, err = device.AllocateCommandBuffer(gpu.CommandPool(0x43))
	require.True(t, errors.Is(err, ErrUnknownHandle))

	_, _, err = device.CreateFramebuffer(gpu.FramebufferCreateInfo{RenderPass: 0x44})
	require.True(t, errors.Is(err, ErrUnknownHandle))

	_, err = device.QueuePresent(gpu.PresentInfo{Swapchain: 0x45})
	require.True(t, errors.Is(err, ErrUnknownHandle))

	_, _, err = device.SurfaceCapabilities(gpu.Surface(0x46))
	require.True(t, errors.Is(err, ErrUnknownHandle))

	wrapped := gpu.ResultError(res, err)
	_, unexpected := gpu.IsUnexpected(wrapped)
	require.True(t, unexpected)

	device.DestroySemaphore(0x47)
	device.DestroySwapchain(0x48)
	require.Equal(t, 0, device.LiveObjects())

	require.Panics(t, func() {
		device.CmdEndRenderPass(gpu.CommandBuffer(0x49))
	})
}

func TestQueueFamilyIndex(t *testing.T) {
	device := New(nil, nil, nil, nil, 3, nil)
	require.Equal(t, 3, device.QueueFamilyIndex())
}
