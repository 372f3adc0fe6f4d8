package surface

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/presenter/gpu"
	"github.com/vkngwrapper/presenter/internal/semaphores"
	"github.com/vkngwrapper/presenter/internal/utils"
	"golang.org/x/exp/slog"
)

// State is the position of a Surface in its swapchain lifecycle
type State int

const (
	// StateUnconfigured surfaces have never been successfully configured
	StateUnconfigured State = iota
	// StateConfigured surfaces own a live swapchain and can present
	StateConfigured
	// StateRetired surfaces lost their swapchain, either because a reconfiguration failed or
	// because Retire was called. They cannot present until Configure succeeds again.
	StateRetired
)

var stateNames = map[State]string{
	StateUnconfigured: "Unconfigured",
	StateConfigured:   "Configured",
	StateRetired:      "Retired",
}

func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return name
}

// Surface owns a presentable surface and at most one live swapchain for it. It is not safe for
// concurrent use.
type Surface struct {
	logger  *slog.Logger
	device  gpu.Device
	handle  gpu.Surface
	options CreateOptions
	info    swapchainInfo

	state     State
	swapchain *gpu.Swapchain
	images    []gpu.Image
	config    Config

	semaphorePool  semaphores.Pool
	waitSemaphores []gpu.Semaphore
	suboptimal     bool
	stats          Statistics
}

// New takes ownership of a surface handle and probes the device's support for it. If probing
// fails, the surface handle is destroyed.
func New(logger *slog.Logger, device gpu.Device, handle gpu.Surface, options CreateOptions) (*Surface, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}
	logger.Debug("Surface::New")

	var unwind utils.Unwinder
	defer unwind.Run()
	unwind.Push(func() { device.DestroySurface(handle) })

	options = options.withDefaults()
	info, err := querySwapchainInfo(device, handle, options.PreferredImageCount)
	if err != nil {
		return nil, err
	}

	unwind.Defuse()
	return &Surface{
		logger:  logger,
		device:  device,
		handle:  handle,
		options: options,
		info:    info,
		state:   StateUnconfigured,
	}, nil
}

// State reports where the surface is in its swapchain lifecycle
func (s *Surface) State() State {
	return s.state
}

// IsSwapchainValid reports whether the surface currently owns a swapchain it can present to
func (s *Surface) IsSwapchainValid() bool {
	return s.swapchain != nil
}

// IsSuboptimal reports whether the last acquire or present was reported as suboptimal. The
// swapchain still works, but reconfiguring is recommended.
func (s *Surface) IsSuboptimal() bool {
	return s.suboptimal
}

// Handle returns the surface handle owned by this Surface
func (s *Surface) Handle() gpu.Surface {
	return s.handle
}

// Swapchain returns the live swapchain, or false if the surface is not configured
func (s *Surface) Swapchain() (gpu.Swapchain, bool) {
	if s.swapchain == nil {
		return gpu.NullHandle, false
	}
	return *s.swapchain, true
}

// Images returns the live swapchain's images. The slice is empty while retired.
func (s *Surface) Images() []gpu.Image {
	return s.images
}

// Format returns the image format chosen for the surface when it was created. Every swapchain
// built for the surface uses it.
func (s *Surface) Format() core1_0.Format {
	return s.info.format
}

// Config returns the configuration most recently applied, even if the surface has since been
// retired
func (s *Surface) Config() Config {
	return s.config
}

// Capabilities queries the current size bounds of the surface
func (s *Surface) Capabilities() (Capabilities, error) {
	caps, err := querySurfaceCapabilities(s.device, s.handle)
	if err != nil {
		return Capabilities{}, err
	}

	capabilities := Capabilities{
		MinSize: Size{
			Width:  caps.MinImageExtent.Width,
			Height: caps.MinImageExtent.Height,
		},
		PresentModes: s.info.presentModes,
	}

	if caps.MaxImageExtent.Width != 0 && caps.MaxImageExtent.Height != 0 {
		capabilities.MaxSize = &Size{
			Width:  caps.MaxImageExtent.Width,
			Height: caps.MaxImageExtent.Height,
		}
	}

	return capabilities, nil
}

// Configure replaces the swapchain with one matching config. The config is checked against
// Capabilities first; an invalid config returns ErrInvalidConfig and leaves the surface untouched.
//
// If creating the replacement swapchain fails, the surface is left retired.
func (s *Surface) Configure(config Config) error {
	caps, err := s.Capabilities()
	if err != nil {
		return err
	}

	if !caps.IsConfigValid(config) {
		return errors.Wrapf(ErrInvalidConfig, "%dx%d with present mode %s", config.Width, config.Height, config.PresentMode)
	}

	return s.ConfigureUnchecked(config)
}

// ConfigureUnchecked replaces the swapchain without validating config against Capabilities. The
// caller is responsible for providing a configuration the surface supports.
func (s *Surface) ConfigureUnchecked(config Config) error {
	s.logger.Debug("Surface::ConfigureUnchecked")

	oldSwapchain := s.swapchain
	s.swapchain = nil
	s.images = nil
	s.suboptimal = false

	swapchain, res, err := s.device.CreateSwapchain(gpu.SwapchainCreateInfo{
		Surface:          s.handle,
		MinImageCount:    s.info.minImageCount,
		ImageFormat:      s.info.format,
		ImageColorSpace:  s.info.colorSpace,
		Width:            config.Width,
		Height:           config.Height,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,
		PreTransform:     s.info.preTransform,
		CompositeAlpha:   s.info.compositeAlpha,
		PresentMode:      config.PresentMode,
		Clipped:          true,
		OldSwapchain:     oldSwapchain,
	})

	// The old swapchain is retired by the create call even if it fails
	if oldSwapchain != nil {
		s.device.DestroySwapchain(*oldSwapchain)
	}

	err = classify(gpu.ResultError(res, err), false)
	if err != nil {
		s.retire()
		return errors.Wrap(err, "failed to create swapchain")
	}

	images, err := gpu.ReadIncomplete(func() ([]gpu.Image, common.VkResult, error) {
		return s.device.SwapchainImages(swapchain)
	})
	if err != nil {
		s.device.DestroySwapchain(swapchain)
		s.retire()
		return errors.Wrap(classify(err, false), "failed to get swapchain images")
	}

	s.swapchain = &swapchain
	s.images = images
	s.config = config
	s.state = StateConfigured
	s.stats.SwapchainsCreated++

	return nil
}

// Retire destroys the live swapchain, if any. The surface cannot present until Configure
// succeeds again. Any resources tied to the swapchain's images must already have been released.
func (s *Surface) Retire() {
	s.logger.Debug("Surface::Retire")

	if s.swapchain == nil {
		return
	}

	s.device.DestroySwapchain(*s.swapchain)
	s.swapchain = nil
	s.images = nil
	s.retire()
}

func (s *Surface) retire() {
	if s.state == StateConfigured {
		s.stats.Retirements++
	}
	s.state = StateRetired
}

// Present acquires the next swapchain image, hands it to renderer, and queues it for
// presentation once every semaphore the renderer added to the FrameContext is signaled.
//
// A retired surface returns ErrSwapchainRetired without touching the device.
func (s *Surface) Present(renderer FrameRenderer) error {
	if s.swapchain == nil {
		return ErrSwapchainRetired
	}
	swapchain := *s.swapchain

	acquire, err := s.semaphorePool.Acquire(s.device)
	if err != nil {
		return classify(err, true)
	}
	// The acquire semaphore is consumed by the submissions the renderer makes, so it goes back
	// to the pool only once the present call has been issued.
	defer acquire.Release()

	imageIndex, res, err := s.device.AcquireNextImage(swapchain, s.options.AcquireTimeout, acquire.Semaphore())
	suboptimal := res == khr_swapchain.VKSuboptimal
	err = classify(gpu.ResultError(res, err), true)
	if err != nil {
		return errors.Wrap(err, "failed to acquire swapchain image")
	}

	if imageIndex < 0 || imageIndex >= len(s.images) {
		panic(fmt.Sprintf("acquired image index %d is outside of the %d known swapchain images", imageIndex, len(s.images)))
	}

	ctx := &FrameContext{
		device:           s.device,
		imageIndex:       imageIndex,
		image:            s.images[imageIndex],
		acquireSemaphore: acquire.Semaphore(),
		waitSemaphores:   s.waitSemaphores[:0],
	}

	err = renderer.RenderFrame(ctx)
	s.waitSemaphores = ctx.waitSemaphores
	if err != nil {
		// The acquire may have left a signal nothing will wait on, so the semaphore is not reusable
		acquire.Discard(s.device)
		return err
	}

	res, err = s.device.QueuePresent(gpu.PresentInfo{
		WaitSemaphores: ctx.waitSemaphores,
		Swapchain:      swapchain,
		ImageIndex:     imageIndex,
	})
	suboptimal = suboptimal || res == khr_swapchain.VKSuboptimal
	err = classify(gpu.ResultError(res, err), true)
	if err != nil {
		return errors.Wrap(err, "failed to present swapchain image")
	}

	s.stats.FramesPresented++
	s.suboptimal = suboptimal
	if suboptimal {
		s.stats.SuboptimalFrames++
		if s.options.Flags&SurfaceCreateSuboptimalAsOutOfDate != 0 {
			return ErrOutOfDate
		}
	}

	return nil
}

// Destroy waits for the queue to drain, then releases the swapchain and the surface handle. The
// Surface must not be used afterward.
func (s *Surface) Destroy() error {
	s.logger.Debug("Surface::Destroy")

	res, err := s.device.QueueWaitIdle()
	err = gpu.ResultError(res, err)

	s.semaphorePool.Teardown(s.device)

	if s.swapchain != nil {
		s.device.DestroySwapchain(*s.swapchain)
		s.swapchain = nil
		s.images = nil
	}

	s.device.DestroySurface(s.handle)

	if err != nil {
		return errors.Wrap(err, "failed to wait for the queue before destroying the surface")
	}
	return nil
}
