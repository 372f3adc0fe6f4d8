package surface

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/presenter/gpu"
)

// swapchainInfo is the part of the surface capabilities that is assumed not to change for the
// lifetime of a surface
type swapchainInfo struct {
	minImageCount  int
	compositeAlpha khr_surface.CompositeAlphaFlags
	preTransform   khr_surface.SurfaceTransformFlags
	format         core1_0.Format
	colorSpace     khr_surface.ColorSpace
	presentModes   PresentModes
}

var compositeAlphaPreference = []khr_surface.CompositeAlphaFlags{
	khr_surface.CompositeAlphaOpaque,
	khr_surface.CompositeAlphaInherit,
	khr_surface.CompositeAlphaPreMultiplied,
	khr_surface.CompositeAlphaPostMultiplied,
}

func querySwapchainInfo(device gpu.Device, surface gpu.Surface, preferredImageCount int) (swapchainInfo, error) {
	caps, err := querySurfaceCapabilities(device, surface)
	if err != nil {
		return swapchainInfo{}, err
	}

	compositeAlpha, err := chooseCompositeAlpha(caps)
	if err != nil {
		return swapchainInfo{}, err
	}

	formats, err := gpu.ReadIncomplete(func() ([]khr_surface.SurfaceFormat, common.VkResult, error) {
		return device.SurfaceFormats(surface)
	})
	if err != nil {
		return swapchainInfo{}, errors.Wrap(classify(err, false), "failed to query surface formats")
	}

	format, err := chooseSurfaceFormat(formats)
	if err != nil {
		return swapchainInfo{}, err
	}

	modes, err := gpu.ReadIncomplete(func() ([]khr_surface.PresentMode, common.VkResult, error) {
		return device.SurfacePresentModes(surface)
	})
	if err != nil {
		return swapchainInfo{}, errors.Wrap(classify(err, false), "failed to query surface present modes")
	}

	return swapchainInfo{
		minImageCount:  chooseImageCount(caps, preferredImageCount),
		compositeAlpha: compositeAlpha,
		preTransform:   choosePreTransform(caps),
		format:         format.Format,
		colorSpace:     format.ColorSpace,
		presentModes:   PresentModeSet(modes...),
	}, nil
}

// querySurfaceCapabilities reads the live capabilities and rejects surfaces that cannot be
// rendered to as a color attachment
func querySurfaceCapabilities(device gpu.Device, surface gpu.Surface) (*gpu.SurfaceCapabilities, error) {
	caps, res, err := device.SurfaceCapabilities(surface)
	err = classify(gpu.ResultError(res, err), false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query surface capabilities")
	}

	if caps.MaxImageArrayLayers < 1 {
		return nil, errors.Wrap(ErrNotSupported, "surface does not support any image array layers")
	}

	if caps.SupportedUsageFlags&core1_0.ImageUsageColorAttachment == 0 {
		return nil, errors.Wrap(ErrNotSupported, "surface images cannot be used as color attachments")
	}

	return caps, nil
}

func chooseImageCount(caps *gpu.SurfaceCapabilities, preferred int) int {
	if caps.MinImageCount > preferred {
		return caps.MinImageCount
	}

	if caps.MaxImageCount != 0 && caps.MaxImageCount < preferred {
		return caps.MaxImageCount
	}

	return preferred
}

func chooseCompositeAlpha(caps *gpu.SurfaceCapabilities) (khr_surface.CompositeAlphaFlags, error) {
	for _, mode := range compositeAlphaPreference {
		if caps.SupportedCompositeAlpha&mode == mode {
			return mode, nil
		}
	}

	return 0, errors.Wrap(ErrNotSupported, "surface supports no known composite alpha mode")
}

func choosePreTransform(caps *gpu.SurfaceCapabilities) khr_surface.SurfaceTransformFlags {
	if caps.SupportedTransforms&khr_surface.TransformIdentity == khr_surface.TransformIdentity {
		return khr_surface.TransformIdentity
	}

	return caps.CurrentTransform
}

func scoreSurfaceFormat(format khr_surface.SurfaceFormat) int {
	score := 0

	if format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
		score += 100
	}

	switch format.Format {
	case core1_0.FormatR8G8B8A8UnsignedNormalized, core1_0.FormatB8G8R8A8UnsignedNormalized:
		score += 10
	}

	return score
}

// chooseSurfaceFormat picks the highest-scoring format. Among equal scores, the one listed first
// by the device wins.
func chooseSurfaceFormat(formats []khr_surface.SurfaceFormat) (khr_surface.SurfaceFormat, error) {
	if len(formats) == 0 {
		return khr_surface.SurfaceFormat{}, errors.Wrap(ErrNotSupported, "surface reports no formats")
	}

	best := 0
	bestScore := scoreSurfaceFormat(formats[0])
	for index := 1; index < len(formats); index++ {
		score := scoreSurfaceFormat(formats[index])
		if score > bestScore {
			best = index
			bestScore = score
		}
	}

	return formats[best], nil
}
