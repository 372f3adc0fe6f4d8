package semaphores

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/gpu"
	"github.com/vkngwrapper/presenter/gpu/mocks"
	"go.uber.org/mock/gomock"
)

func TestPoolReusesReleasedSemaphore(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)

	device.EXPECT().CreateSemaphore().Return(gpu.Semaphore(7), core1_0.VKSuccess, nil)

	var pool Pool
	first, err := pool.Acquire(device)
	require.NoError(t, err)
	require.Equal(t, gpu.Semaphore(7), first.Semaphore())
	first.Release()
	require.Equal(t, 1, pool.Len())

	second, err := pool.Acquire(device)
	require.NoError(t, err)
	require.Equal(t, gpu.Semaphore(7), second.Semaphore())
	require.Equal(t, 0, pool.Len())
	require.Equal(t, 1, pool.Created())
}

func TestPoolGrowsWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)

	gomock.InOrder(
		device.EXPECT().CreateSemaphore().Return(gpu.Semaphore(1), core1_0.VKSuccess, nil),
		device.EXPECT().CreateSemaphore().Return(gpu.Semaphore(2), core1_0.VKSuccess, nil),
	)

	var pool Pool
	first, err := pool.Acquire(device)
	require.NoError(t, err)
	second, err := pool.Acquire(device)
	require.NoError(t, err)
	require.NotEqual(t, first.Semaphore(), second.Semaphore())
	require.Equal(t, 2, pool.Created())
}

func TestPoolReleaseIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)

	device.EXPECT().CreateSemaphore().Return(gpu.Semaphore(3), core1_0.VKSuccess, nil)

	var pool Pool
	pooled, err := pool.Acquire(device)
	require.NoError(t, err)
	pooled.Release()
	pooled.Release()

	require.Equal(t, 1, pool.Len())
}

func TestPoolTeardownDestroysFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)

	gomock.InOrder(
		device.EXPECT().CreateSemaphore().Return(gpu.Semaphore(1), core1_0.VKSuccess, nil),
		device.EXPECT().CreateSemaphore().Return(gpu.Semaphore(2), core1_0.VKSuccess, nil),
	)
	device.EXPECT().DestroySemaphore(gpu.Semaphore(1))
	device.EXPECT().DestroySemaphore(gpu.Semaphore(2))

	var pool Pool
	first, err := pool.Acquire(device)
	require.NoError(t, err)
	second, err := pool.Acquire(device)
	require.NoError(t, err)
	first.Release()
	second.Release()

	pool.Teardown(device)
	require.Equal(t, 0, pool.Len())
}

func TestPoolCreateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)

	device.EXPECT().CreateSemaphore().Return(gpu.Semaphore(0), core1_0.VKErrorOutOfDeviceMemory, errors.New("oom"))

	var pool Pool
	_, err := pool.Acquire(device)
	_, unexpected := gpu.IsUnexpected(err)
	require.True(t, unexpected)
	require.Equal(t, 0, pool.Created())
}

func TestPoolDiscardDestroysSemaphore(t *testing.T) {
	ctrl := gomock.NewController(t)
	device := mocks.NewMockDevice(ctrl)

	gomock.InOrder(
		device.EXPECT().CreateSemaphore().Return(gpu.Semaphore(4), core1_0.VKSuccess, nil),
		device.EXPECT().DestroySemaphore(gpu.Semaphore(4)),
		device.EXPECT().CreateSemaphore().Return(gpu.Semaphore(5), core1_0.VKSuccess, nil),
	)

	var pool Pool
	pooled, err := pool.Acquire(device)
	require.NoError(t, err)
	pooled.Discard(device)
	pooled.Release()
	pooled.Discard(device)
	require.Equal(t, 0, pool.Len())

	next, err := pool.Acquire(device)
	require.NoError(t, err)
	require.Equal(t, gpu.Semaphore(5), next.Semaphore())
	require.Equal(t, 2, pool.Created())
}
