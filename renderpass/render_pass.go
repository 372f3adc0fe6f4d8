package renderpass

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/presenter/gpu"
	"github.com/vkngwrapper/presenter/internal/utils"
	"github.com/vkngwrapper/presenter/surface"
	"golang.org/x/exp/slog"
)

// RenderArgs is the per-frame input of RenderPass.Render. ClearValues holds one value per
// attachment in registration order.
type RenderArgs[A any] struct {
	ClearValues []core1_0.ClearValue
	Args        A
}

type perFrame struct {
	framebuffer   *gpu.Framebuffer
	commandBuffer gpu.CommandBuffer
	fence         gpu.Fence
	semaphore     gpu.Semaphore
}

// RenderPass renders its subpasses into the images of a surface. There is one set of per-frame
// resources for each swapchain image, and the frame for an image is reused every time that
// image is acquired.
type RenderPass[A any] struct {
	logger  *slog.Logger
	device  gpu.Device
	options CreateOptions

	attachments []Attachment
	subpasses   []Subpass[A]
	description *Description

	renderPass  gpu.RenderPass
	commandPool gpu.CommandPool

	frames []*perFrame
	width  int
	height int
}

var _ surface.Contents[RenderArgs[struct{}]] = &RenderPass[struct{}]{}

// New builds the render pass for attachments and subpasses and creates its command pool on the
// device's queue family. Nothing is created on the device if the description cannot be built.
func New[A any](logger *slog.Logger, device gpu.Device, attachments []Attachment, subpasses []Subpass[A], options CreateOptions) (*RenderPass[A], error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}
	logger.Debug("RenderPass::New")

	options = options.withDefaults()

	builder := NewBuilder(options.Flags)
	for _, attachment := range attachments {
		err := builder.RegisterAttachment(attachment)
		if err != nil {
			return nil, err
		}
	}

	for _, subpass := range subpasses {
		err := RegisterSubpass[A](builder, subpass)
		if err != nil {
			return nil, err
		}
	}

	description, err := builder.Build()
	if err != nil {
		return nil, err
	}

	var unwind utils.Unwinder
	defer unwind.Run()

	renderPass, res, err := device.CreateRenderPass(description.CreateInfo())
	err = gpu.ResultError(res, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create render pass")
	}
	unwind.Push(func() { device.DestroyRenderPass(renderPass) })

	commandPool, res, err := device.CreateCommandPool(gpu.CommandPoolCreateInfo{
		Flags:            core1_0.CommandPoolCreateTransient | core1_0.CommandPoolCreateResetBuffer,
		QueueFamilyIndex: device.QueueFamilyIndex(),
	})
	err = gpu.ResultError(res, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create command pool")
	}

	unwind.Defuse()
	return &RenderPass[A]{
		logger:      logger,
		device:      device,
		options:     options,
		attachments: attachments,
		subpasses:   subpasses,
		description: description,
		renderPass:  renderPass,
		commandPool: commandPool,
	}, nil
}

// Description is the attachment and subpass layout the render pass was built from
func (r *RenderPass[A]) Description() *Description {
	return r.description
}

// Handle returns the render pass object owned by this RenderPass
func (r *RenderPass[A]) Handle() gpu.RenderPass {
	return r.renderPass
}

// FrameCount is the number of per-frame resource sets currently allocated
func (r *RenderPass[A]) FrameCount() int {
	return len(r.frames)
}

// FramebufferCount is the number of frames currently bound to an output image
func (r *RenderPass[A]) FramebufferCount() int {
	count := 0
	for _, frame := range r.frames {
		if frame.framebuffer != nil {
			count++
		}
	}
	return count
}

func (r *RenderPass[A]) newFrame() (*perFrame, error) {
	var unwind utils.Unwinder
	defer unwind.Run()

	fence, res, err := r.device.CreateFence(true)
	err = gpu.ResultError(res, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create frame fence")
	}
	unwind.Push(func() { r.device.DestroyFence(fence) })

	semaphore, res, err := r.device.CreateSemaphore()
	err = gpu.ResultError(res, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create frame semaphore")
	}
	unwind.Push(func() { r.device.DestroySemaphore(semaphore) })

	commandBuffer, res, err := r.device.AllocateCommandBuffer(r.commandPool)
	err = gpu.ResultError(res, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate frame command buffer")
	}

	unwind.Defuse()
	return &perFrame{
		commandBuffer: commandBuffer,
		fence:         fence,
		semaphore:     semaphore,
	}, nil
}

func (r *RenderPass[A]) destroyFrame(frame *perFrame) {
	if frame.framebuffer != nil {
		r.device.DestroyFramebuffer(*frame.framebuffer)
		frame.framebuffer = nil
	}
	r.device.FreeCommandBuffers(r.commandPool, []gpu.CommandBuffer{frame.commandBuffer})
	r.device.DestroyFence(frame.fence)
	r.device.DestroySemaphore(frame.semaphore)
}

// NotifyNewImages resizes the per-frame resources to one set per image, notifies every
// attachment of the new output and creates one framebuffer per image. The previous images must
// have been released with NotifyDestroyImages.
func (r *RenderPass[A]) NotifyNewImages(info surface.ImagesInfo) error {
	r.logger.Debug("RenderPass::NotifyNewImages")

	if r.FramebufferCount() > 0 {
		return ErrImagesAlreadyBound
	}

	count := len(info.Images)
	if count < len(r.frames) {
		for index := count; index < len(r.frames); index++ {
			r.destroyFrame(r.frames[index])
			r.frames[index] = nil
		}
		r.frames = r.frames[:count]
	}

	for len(r.frames) < count {
		frame, err := r.newFrame()
		if err != nil {
			return err
		}
		r.frames = append(r.frames, frame)
	}

	var unwind utils.Unwinder
	defer unwind.Run()

	for index, attachment := range r.attachments {
		err := attachment.NotifyOutputChanged(info)
		if err != nil {
			return errors.Wrapf(err, "attachment %d rejected the new output", index)
		}
		unwind.Push(attachment.NotifyDestroyingOutput)
	}

	for index, frame := range r.frames {
		frame := frame
		views := make([]gpu.ImageView, 0, len(r.attachments))
		for _, attachment := range r.attachments {
			views = append(views, attachment.ImageView(index))
		}

		framebuffer, res, err := r.device.CreateFramebuffer(gpu.FramebufferCreateInfo{
			RenderPass:  r.renderPass,
			Attachments: views,
			Width:       info.Width,
			Height:      info.Height,
			Layers:      1,
		})
		err = gpu.ResultError(res, err)
		if err != nil {
			return errors.Wrapf(err, "failed to create framebuffer for image %d", index)
		}

		frame.framebuffer = &framebuffer
		unwind.Push(func() {
			r.device.DestroyFramebuffer(framebuffer)
			frame.framebuffer = nil
		})
	}

	unwind.Defuse()
	r.width = info.Width
	r.height = info.Height
	return nil
}

// waitFrames waits for every in-flight frame. Frames that never rendered are already signaled.
func (r *RenderPass[A]) waitFrames() error {
	if len(r.frames) == 0 {
		return nil
	}

	fences := make([]gpu.Fence, 0, len(r.frames))
	for _, frame := range r.frames {
		fences = append(fences, frame.fence)
	}

	res, err := r.device.WaitForFences(true, r.options.FenceTimeout, fences)
	err = gpu.ResultError(res, err)
	if errors.Is(err, gpu.ErrTimeout) {
		return errors.Wrapf(ErrDeviceHang, "frames still running after %s", r.options.FenceTimeout)
	} else if err != nil {
		return errors.Wrap(err, "failed to wait for in-flight frames")
	}

	return nil
}

// NotifyDestroyImages waits for every in-flight frame, then releases the attachments' output
// resources and the framebuffers. The per-frame command buffers, fences and semaphores are kept
// for the next set of images.
func (r *RenderPass[A]) NotifyDestroyImages() error {
	r.logger.Debug("RenderPass::NotifyDestroyImages")

	err := r.waitFrames()
	if err != nil {
		return err
	}

	r.releaseOutput()
	return nil
}

func (r *RenderPass[A]) releaseOutput() {
	if r.FramebufferCount() == 0 {
		return
	}

	for _, attachment := range r.attachments {
		attachment.NotifyDestroyingOutput()
	}

	for _, frame := range r.frames {
		if frame.framebuffer != nil {
			r.device.DestroyFramebuffer(*frame.framebuffer)
			frame.framebuffer = nil
		}
	}
}

// Render records every subpass into the acquired image's frame and submits it. The submission
// waits on the image's acquire semaphore and signals the frame's semaphore, which is handed to
// the present call through ctx.
func (r *RenderPass[A]) Render(ctx *surface.FrameContext, args RenderArgs[A]) error {
	if len(args.ClearValues) != len(r.description.Attachments) {
		return errors.Wrapf(ErrClearValueCount, "got %d clear values for %d attachments", len(args.ClearValues), len(r.description.Attachments))
	}

	index := ctx.ImageIndex()
	if index < 0 || index >= len(r.frames) || r.frames[index].framebuffer == nil {
		return errors.Wrapf(ErrImagesNotBound, "image %d", index)
	}
	frame := r.frames[index]

	res, err := r.device.WaitForFences(true, r.options.FenceTimeout, []gpu.Fence{frame.fence})
	err = gpu.ResultError(res, err)
	if err != nil {
		return errors.Wrapf(err, "failed to wait for frame %d", index)
	}

	res, err = r.device.ResetCommandBuffer(frame.commandBuffer)
	err = gpu.ResultError(res, err)
	if err != nil {
		return errors.Wrap(err, "failed to reset command buffer")
	}

	res, err = r.device.BeginCommandBuffer(frame.commandBuffer, core1_0.CommandBufferUsageOneTimeSubmit)
	err = gpu.ResultError(res, err)
	if err != nil {
		return errors.Wrap(err, "failed to begin command buffer")
	}

	err = r.device.CmdBeginRenderPass(frame.commandBuffer, gpu.RenderPassBeginInfo{
		RenderPass:  r.renderPass,
		Framebuffer: *frame.framebuffer,
		Width:       r.width,
		Height:      r.height,
		ClearValues: args.ClearValues,
	})
	if err != nil {
		return errors.Wrap(err, "failed to begin render pass")
	}

	for subpassIndex, subpass := range r.subpasses {
		if subpassIndex > 0 {
			r.device.CmdNextSubpass(frame.commandBuffer)
		}

		err = subpass.Record(frame.commandBuffer, args.Args)
		if err != nil {
			return errors.Wrapf(err, "subpass %d failed to record", subpassIndex)
		}
	}

	r.device.CmdEndRenderPass(frame.commandBuffer)

	res, err = r.device.EndCommandBuffer(frame.commandBuffer)
	err = gpu.ResultError(res, err)
	if err != nil {
		return errors.Wrap(err, "failed to end command buffer")
	}

	res, err = r.device.ResetFences([]gpu.Fence{frame.fence})
	err = gpu.ResultError(res, err)
	if err != nil {
		return errors.Wrap(err, "failed to reset frame fence")
	}

	res, err = r.device.QueueSubmit(frame.fence, []gpu.SubmitInfo{
		{
			WaitSemaphores:   []gpu.Semaphore{ctx.AcquireSemaphore()},
			WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
			CommandBuffers:   []gpu.CommandBuffer{frame.commandBuffer},
			SignalSemaphores: []gpu.Semaphore{frame.semaphore},
		},
	})
	err = gpu.ResultError(res, err)
	if err != nil {
		err = errors.Wrap(err, "failed to submit frame")
		return errors.CombineErrors(err, r.replaceFence(frame))
	}

	ctx.AddWaitSemaphore(frame.semaphore)
	return nil
}

// replaceFence swaps the frame's fence for a fresh signaled one. A fence that was reset but never
// submitted would never signal again, and every later wait on it would time out.
func (r *RenderPass[A]) replaceFence(frame *perFrame) error {
	fence, res, err := r.device.CreateFence(true)
	err = gpu.ResultError(res, err)
	if err != nil {
		return errors.Wrap(err, "failed to replace frame fence")
	}

	r.device.DestroyFence(frame.fence)
	frame.fence = fence
	return nil
}

// Destroy waits for in-flight frames and releases everything the render pass created. The
// attachments' output resources are released if the render pass is still bound.
func (r *RenderPass[A]) Destroy() error {
	r.logger.Debug("RenderPass::Destroy")

	err := r.waitFrames()
	if err != nil {
		return err
	}

	r.releaseOutput()
	for _, frame := range r.frames {
		r.destroyFrame(frame)
	}
	r.frames = nil

	r.device.DestroyCommandPool(r.commandPool)
	r.device.DestroyRenderPass(r.renderPass)
	return nil
}

// BuildStatsString renders PrintStats output as a JSON string
func (r *RenderPass[A]) BuildStatsString() string {
	writer := jwriter.NewWriter()
	r.PrintStats(&writer)
	return string(writer.Bytes())
}

// PrintStats writes the frame counts, the bound image size, the create flags and the full
// description to writer as a JSON object
func (r *RenderPass[A]) PrintStats(writer *jwriter.Writer) {
	json := writer.Object()
	defer json.End()

	json.Name("Frames").Int(len(r.frames))
	json.Name("Framebuffers").Int(r.FramebufferCount())
	json.Name("Width").Int(r.width)
	json.Name("Height").Int(r.height)
	json.Name("Flags").String(r.options.Flags.String())

	r.description.PrintDetailedMap(json.Name("Description"))
}
