package surface

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/presenter/gpu"
)

var (
	// ErrNotSupported is returned when the device cannot render to the surface at all
	ErrNotSupported = errors.New("the device does not support the surface")
	// ErrLost is returned when the surface or its device has been lost. The surface must be
	// destroyed and created again.
	ErrLost = errors.New("the surface has been lost")
	// ErrInvalidConfig is returned by Configure when the requested configuration is incompatible
	// with the current surface capabilities
	ErrInvalidConfig = errors.New("the configuration provided is incompatible with the surface")
	// ErrOutOfDate is returned by Present when the swapchain no longer matches the surface and
	// must be reconfigured
	ErrOutOfDate = errors.New("the surface is out of date")
	// ErrTimeout is returned by Present when no image could be acquired within the acquire timeout
	ErrTimeout = errors.New("no image could be acquired within the desired timeout")
	// ErrSwapchainRetired is returned by Present when the surface has no live swapchain
	ErrSwapchainRetired = errors.New("the swapchain is retired and must be recreated")
)

// classify converts an error that has already been through gpu.ResultError into the surface
// error taxonomy. Out-of-date results are only meaningful while presenting.
func classify(err error, presenting bool) error {
	if err == nil {
		return nil
	}

	if unexpected, ok := gpu.IsUnexpected(err); ok {
		switch unexpected.Result {
		case khr_surface.VKErrorSurfaceLost:
			return ErrLost
		case khr_swapchain.VKErrorOutOfDate:
			if presenting {
				return ErrOutOfDate
			}
		}
		return err
	}

	if errors.Is(err, gpu.ErrDeviceLost) {
		return errors.Mark(err, ErrLost)
	}
	if presenting && errors.Is(err, gpu.ErrTimeout) {
		return errors.Mark(err, ErrTimeout)
	}

	return err
}
