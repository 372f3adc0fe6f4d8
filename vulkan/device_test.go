package vulkan

import (
	"time"

	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/core/v2/driver"
	"github.com/vkngwrapper/core/v2/mocks"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/golang/mock/gomock"
)

const (
	testQueueFamily = 3
	testTimeout     = 50 * time.Millisecond
)

// recordingSwapchainExt captures what the Device hands to the swapchain extension. Embedding the
// interface keeps the fake compiling against extension methods the Device never calls.
type recordingSwapchainExt struct {
	khr_swapchain.Extension

	created  []khr_swapchain.SwapchainCreateInfo
	presents []khr_swapchain.PresentInfo
	queues   []core1_0.Queue

	nextSwapchains []*recordingSwapchain
	presentResult  common.VkResult
}

func (e *recordingSwapchainExt) CreateSwapchain(device core1_0.Device, allocation *driver.AllocationCallbacks, options khr_swapchain.SwapchainCreateInfo) (khr_swapchain.Swapchain, common.VkResult, error) {
	e.created = append(e.created, options)
	swapchain := e.nextSwapchains[0]
	e.nextSwapchains = e.nextSwapchains[1:]
	return swapchain, core1_0.VKSuccess, nil
}

func (e *recordingSwapchainExt) QueuePresent(queue core1_0.Queue, o khr_swapchain.PresentInfo) (common.VkResult, error) {
	e.presents = append(e.presents, o)
	e.queues = append(e.queues, queue)
	return e.presentResult, nil
}

type acquireCall struct {
	timeout   time.Duration
	semaphore core1_0.Semaphore
	fence     core1_0.Fence
}

type recordingSwapchain struct {
	khr_swapchain.Swapchain

	images    []core1_0.Image
	acquires  []acquireCall
	destroyed int
}

func (s *recordingSwapchain) SwapchainImages() ([]core1_0.Image, common.VkResult, error) {
	return s.images, core1_0.VKSuccess, nil
}

func (s *recordingSwapchain) AcquireNextImage(timeout time.Duration, semaphore core1_0.Semaphore, fence core1_0.Fence) (int, common.VkResult, error) {
	s.acquires = append(s.acquires, acquireCall{timeout: timeout, semaphore: semaphore, fence: fence})
	return 1, core1_0.VKSuccess, nil
}

func (s *recordingSwapchain) Destroy(callbacks *driver.AllocationCallbacks) {
	s.destroyed++
}

type recordingSurface struct {
	khr_surface.Surface

	destroyed int
}

func (s *recordingSurface) Destroy(callbacks *driver.AllocationCallbacks) {
	s.destroyed++
}

func newTestDevice(ctrl *gomock.Controller) (*Device, *mocks.MockDevice, *mocks.MockQueue, *recordingSwapchainExt) {
	device := mocks.NewMockDevice(ctrl)
	physicalDevice := mocks.NewMockPhysicalDevice(ctrl)
	queue := mocks.NewMockQueue(ctrl)
	ext := &recordingSwapchainExt{presentResult: core1_0.VKSuccess}

	return New(nil, device, physicalDevice, queue, testQueueFamily, ext), device, queue, ext
}
