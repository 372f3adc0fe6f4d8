package utils

// Unwinder collects cleanup steps for a partially-constructed object. Steps run in reverse order
// when Run is called, unless Defuse was called first. The zero value is ready to use:
//
//	var unwind utils.Unwinder
//	defer unwind.Run()
//	...
//	unwind.Push(func() { device.DestroyFence(fence) })
//	...
//	unwind.Defuse()
type Unwinder struct {
	steps   []func()
	defused bool
}

// Push adds a cleanup step
func (u *Unwinder) Push(step func()) {
	u.steps = append(u.steps, step)
}

// Defuse drops all pending steps so that Run does nothing
func (u *Unwinder) Defuse() {
	u.defused = true
	u.steps = nil
}

// Run executes pending steps, most recently pushed first
func (u *Unwinder) Run() {
	if u.defused {
		return
	}

	for i := len(u.steps) - 1; i >= 0; i-- {
		u.steps[i]()
	}
	u.steps = nil
}
