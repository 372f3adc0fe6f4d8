package surface

import "github.com/cockroachdb/errors"

// WithContents binds a Surface to the Contents rendered into it, keeping the contents notified
// of every swapchain image replacement
type WithContents[A any] struct {
	surface       *Surface
	contents      Contents[A]
	contentsValid bool
}

// NewWithContents pairs surface with contents. The contents are not valid until the first
// successful Configure.
func NewWithContents[A any](surface *Surface, contents Contents[A]) *WithContents[A] {
	return &WithContents[A]{
		surface:  surface,
		contents: contents,
	}
}

func (w *WithContents[A]) Surface() *Surface {
	return w.surface
}

func (w *WithContents[A]) Contents() Contents[A] {
	return w.contents
}

// IsContentsValid reports whether the contents are bound to the surface's current images
func (w *WithContents[A]) IsContentsValid() bool {
	return w.contentsValid
}

// Configure validates config, then reconfigures the surface and the contents
func (w *WithContents[A]) Configure(config Config) error {
	caps, err := w.surface.Capabilities()
	if err != nil {
		return err
	}

	if !caps.IsConfigValid(config) {
		return errors.Wrapf(ErrInvalidConfig, "%dx%d with present mode %s", config.Width, config.Height, config.PresentMode)
	}

	return w.ConfigureUnchecked(config)
}

// ConfigureUnchecked releases the contents' image resources, reconfigures the surface without
// validation, and binds the contents to the new images
func (w *WithContents[A]) ConfigureUnchecked(config Config) error {
	if w.contentsValid {
		err := w.contents.NotifyDestroyImages()
		if err != nil {
			return err
		}
		w.contentsValid = false
	}

	err := w.surface.ConfigureUnchecked(config)
	if err != nil {
		return err
	}

	err = w.contents.NotifyNewImages(ImagesInfo{
		Images: w.surface.Images(),
		Width:  config.Width,
		Height: config.Height,
		Format: w.surface.Format(),
	})
	if err != nil {
		return err
	}

	w.contentsValid = true
	return nil
}

// Retire releases the contents' image resources and retires the surface
func (w *WithContents[A]) Retire() error {
	if w.contentsValid {
		err := w.contents.NotifyDestroyImages()
		if err != nil {
			return err
		}
		w.contentsValid = false
	}

	w.surface.Retire()
	return nil
}

// Present renders the contents into the next swapchain image. It returns ErrOutOfDate when the
// contents are not bound to the current images.
func (w *WithContents[A]) Present(args A) error {
	if !w.surface.IsSwapchainValid() {
		return ErrSwapchainRetired
	}

	if !w.contentsValid {
		return ErrOutOfDate
	}

	return Present[A](w.surface, w.contents, args)
}
