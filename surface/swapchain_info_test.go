package surface

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/presenter/gpu"
)

var imageCountTestCases = map[string]struct {
	Min      int
	Max      int
	Expected int
}{
	"Preferred Within Bounds": {Min: 2, Max: 8, Expected: 3},
	"Unbounded Max":           {Min: 1, Max: 0, Expected: 3},
	"Min Above Preferred":     {Min: 4, Max: 8, Expected: 4},
	"Max Below Preferred":     {Min: 1, Max: 2, Expected: 2},
}

func TestChooseImageCount(t *testing.T) {
	for name, testCase := range imageCountTestCases {
		t.Run(name, func(t *testing.T) {
			caps := &gpu.SurfaceCapabilities{
				MinImageCount: testCase.Min,
				MaxImageCount: testCase.Max,
			}
			require.Equal(t, testCase.Expected, chooseImageCount(caps, DefaultPreferredImageCount))
		})
	}
}

func TestChooseCompositeAlphaPreference(t *testing.T) {
	caps := &gpu.SurfaceCapabilities{
		SupportedCompositeAlpha: khr_surface.CompositeAlphaPostMultiplied | khr_surface.CompositeAlphaInherit,
	}

	alpha, err := chooseCompositeAlpha(caps)
	require.NoError(t, err)
	require.Equal(t, khr_surface.CompositeAlphaInherit, alpha)

	caps.SupportedCompositeAlpha |= khr_surface.CompositeAlphaOpaque
	alpha, err = chooseCompositeAlpha(caps)
	require.NoError(t, err)
	require.Equal(t, khr_surface.CompositeAlphaOpaque, alpha)
}

func TestChooseCompositeAlphaNone(t *testing.T) {
	_, err := chooseCompositeAlpha(&gpu.SurfaceCapabilities{})
	require.True(t, errors.Is(err, ErrNotSupported))
}

func TestChoosePreTransform(t *testing.T) {
	caps := &gpu.SurfaceCapabilities{
		SupportedTransforms: khr_surface.TransformIdentity | khr_surface.TransformRotate90,
		CurrentTransform:    khr_surface.TransformRotate90,
	}
	require.Equal(t, khr_surface.TransformIdentity, choosePreTransform(caps))

	caps.SupportedTransforms = khr_surface.TransformRotate90
	require.Equal(t, khr_surface.TransformRotate90, choosePreTransform(caps))
}

func TestChooseSurfaceFormatFirstBestWins(t *testing.T) {
	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR32G32B32SignedFloat, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	format, err := chooseSurfaceFormat(formats)
	require.NoError(t, err)
	require.Equal(t, core1_0.FormatB8G8R8A8UnsignedNormalized, format.Format)
}

func TestChooseSurfaceFormatPrefersColorSpace(t *testing.T) {
	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatB8G8R8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpace(1000104002)},
		{Format: core1_0.FormatR32G32B32SignedFloat, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	format, err := chooseSurfaceFormat(formats)
	require.NoError(t, err)
	require.Equal(t, core1_0.FormatR32G32B32SignedFloat, format.Format)
}

func TestChooseSurfaceFormatEmpty(t *testing.T) {
	_, err := chooseSurfaceFormat(nil)
	require.True(t, errors.Is(err, ErrNotSupported))
}

func TestPresentModeSet(t *testing.T) {
	set := PresentModeSet(khr_surface.PresentModeFIFO, khr_surface.PresentModeMailbox, khr_surface.PresentMode(1000111000))

	require.True(t, set.Contains(khr_surface.PresentModeFIFO))
	require.True(t, set.Contains(khr_surface.PresentModeMailbox))
	require.False(t, set.Contains(khr_surface.PresentModeImmediate))
	require.False(t, set.Contains(khr_surface.PresentMode(1000111000)))
	require.Equal(t, []khr_surface.PresentMode{khr_surface.PresentModeMailbox, khr_surface.PresentModeFIFO}, set.Modes())
}

func TestCapabilitiesConfigValidity(t *testing.T) {
	caps := Capabilities{
		MinSize:      Size{Width: 1, Height: 1},
		MaxSize:      &Size{Width: 1920, Height: 1080},
		PresentModes: PresentModeSet(khr_surface.PresentModeFIFO),
	}

	require.True(t, caps.IsConfigValid(Config{Width: 800, Height: 600, PresentMode: khr_surface.PresentModeFIFO}))
	require.False(t, caps.IsConfigValid(Config{Width: 0, Height: 600, PresentMode: khr_surface.PresentModeFIFO}))
	require.False(t, caps.IsConfigValid(Config{Width: 800, Height: 0, PresentMode: khr_surface.PresentModeFIFO}))
	require.False(t, caps.IsConfigValid(Config{Width: 1921, Height: 600, PresentMode: khr_surface.PresentModeFIFO}))
	require.False(t, caps.IsConfigValid(Config{Width: 800, Height: 600, PresentMode: khr_surface.PresentModeMailbox}))

	caps.MaxSize = nil
	require.True(t, caps.IsConfigValid(Config{Width: 10000, Height: 10000, PresentMode: khr_surface.PresentModeFIFO}))

	caps.MinSize = Size{}
	require.False(t, caps.IsConfigValid(Config{Width: 0, Height: 0, PresentMode: khr_surface.PresentModeFIFO}))
}
