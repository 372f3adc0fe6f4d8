package vulkan

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/gpu"
)

func (d *Device) CreateRenderPass(o core1_0.RenderPassCreateInfo) (gpu.RenderPass, common.VkResult, error) {
	d.logger.Debug("Device::CreateRenderPass")

	renderPass, res, err := d.device.CreateRenderPass(nil, o)
	if err != nil {
		return gpu.NullHandle, res, err
	}

	return d.renderPasses.put(&d.handles, renderPass), res, nil
}

func (d *Device) DestroyRenderPass(handle gpu.RenderPass) {
	renderPass, ok := d.renderPasses.take(handle)
	if !ok {
		d.logger.Warn("Device::DestroyRenderPass unknown handle", "handle", handle.String())
		return
	}
	renderPass.Destroy(nil)
}

func (d *Device) CreateFramebuffer(o gpu.FramebufferCreateInfo) (gpu.Framebuffer, common.VkResult, error) {
	renderPass, ok := d.renderPasses.get(o.RenderPass)
	if !ok {
		res, err := unknownHandle(o.RenderPass)
		return gpu.NullHandle, res, err
	}

	views := make([]core1_0.ImageView, 0, len(o.Attachments))
	for _, handle := range o.Attachments {
		view, ok := d.imageViews.get(handle)
		if !ok {
			res, err := unknownHandle(handle)
			return gpu.NullHandle, res, err
		}
		views = append(views, view)
	}

	framebuffer, res, err := d.device.CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
		RenderPass:  renderPass,
		Layers:      uint32(o.Layers),
		Attachments: views,
		Width:       o.Width,
		Height:      o.Height,
	})
	if err != nil {
		return gpu.NullHandle, res, err
	}

	return d.framebuffers.put(&d.handles, framebuffer), res, nil
}

func (d *Device) DestroyFramebuffer(handle gpu.Framebuffer) {
	framebuffer, ok := d.framebuffers.take(handle)
	if !ok {
		d.logger.Warn("Device::DestroyFramebuffer unknown handle", "handle", handle.String())
		return
	}
	framebuffer.Destroy(nil)
}

func (d *Device) CreateImageView(o gpu.ImageViewCreateInfo) (gpu.ImageView, common.VkResult, error) {
	image, ok := d.images.get(o.Image)
	if !ok {
		res, err := unknownHandle(o.Image)
		return gpu.NullHandle, res, err
	}

	view, res, err := d.device.CreateImageView(nil, core1_0.ImageViewCreateInfo{
		Image:    image,
		ViewType: core1_0.ImageViewType2D,
		Format:   o.Format,
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask:     o.Aspect,
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	})
	if err != nil {
		return gpu.NullHandle, res, err
	}

	return d.imageViews.put(&d.handles, view), res, nil
}

// RegisterImageView hands an application-created view to the Device so it can be used as a
// framebuffer attachment. The view is destroyed by DestroyImageView.
func (d *Device) RegisterImageView(view core1_0.ImageView) gpu.ImageView {
	return d.imageViews.put(&d.handles, view)
}

func (d *Device) DestroyImageView(handle gpu.ImageView) {
	view, ok := d.imageViews.take(handle)
	if !ok {
		d.logger.Warn("Device::DestroyImageView unknown handle", "handle", handle.String())
		return
	}
	view.Destroy(nil)
}
