package gpu

import "fmt"

// Handles are opaque identifiers issued by a Device. A handle is only meaningful to the Device that
// issued it, and all handles of a given kind are distinct for as long as the object is alive.
type (
	Semaphore     uint64
	Fence         uint64
	CommandPool   uint64
	CommandBuffer uint64
	RenderPass    uint64
	Framebuffer   uint64
	Image         uint64
	ImageView     uint64
	Swapchain     uint64
	Surface       uint64
)

// NullHandle is never issued by a Device and can be passed wherever an optional handle is accepted,
// such as the fence parameter of QueueSubmit
const NullHandle = 0

func (h Semaphore) String() string     { return fmt.Sprintf("Semaphore(%#x)", uint64(h)) }
func (h Fence) String() string         { return fmt.Sprintf("Fence(%#x)", uint64(h)) }
func (h CommandPool) String() string   { return fmt.Sprintf("CommandPool(%#x)", uint64(h)) }
func (h CommandBuffer) String() string { return fmt.Sprintf("CommandBuffer(%#x)", uint64(h)) }
func (h RenderPass) String() string    { return fmt.Sprintf("RenderPass(%#x)", uint64(h)) }
func (h Framebuffer) String() string   { return fmt.Sprintf("Framebuffer(%#x)", uint64(h)) }
func (h Image) String() string         { return fmt.Sprintf("Image(%#x)", uint64(h)) }
func (h ImageView) String() string     { return fmt.Sprintf("ImageView(%#x)", uint64(h)) }
func (h Swapchain) String() string     { return fmt.Sprintf("Swapchain(%#x)", uint64(h)) }
func (h Surface) String() string       { return fmt.Sprintf("Surface(%#x)", uint64(h)) }
