package semaphores

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/presenter/gpu"
)

// Pool recycles binary semaphores used to wait on image acquisition. It is unbounded: when no
// free semaphore is available a new one is created. Pool is not safe for concurrent use.
type Pool struct {
	free    []gpu.Semaphore
	created int
}

// Pooled is a semaphore on loan from a Pool. Release returns it, and may be called any number
// of times; only the first call has an effect.
type Pooled struct {
	pool      *Pool
	semaphore gpu.Semaphore
	released  bool
}

// Acquire pops a free semaphore or creates a new one on the provided device
func (p *Pool) Acquire(device gpu.Device) (*Pooled, error) {
	if len(p.free) > 0 {
		last := len(p.free) - 1
		semaphore := p.free[last]
		p.free = p.free[:last]
		return &Pooled{pool: p, semaphore: semaphore}, nil
	}

	semaphore, res, err := device.CreateSemaphore()
	err = gpu.ResultError(res, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create acquire semaphore")
	}
	p.created++

	return &Pooled{pool: p, semaphore: semaphore}, nil
}

// Teardown destroys every free semaphore. Semaphores still on loan are not affected and will be
// returned to the (now empty) pool when released.
func (p *Pool) Teardown(device gpu.Device) {
	for _, semaphore := range p.free {
		device.DestroySemaphore(semaphore)
	}
	p.free = nil
}

// Len is the number of free semaphores currently held
func (p *Pool) Len() int {
	return len(p.free)
}

// Created is the number of semaphores this pool has ever created
func (p *Pool) Created() int {
	return p.created
}

func (s *Pooled) Semaphore() gpu.Semaphore {
	return s.semaphore
}

func (s *Pooled) Release() {
	if s.released {
		return
	}
	s.released = true
	s.pool.free = append(s.pool.free, s.semaphore)
}

// Discard destroys the semaphore instead of returning it to the pool. Use it when the semaphore
// may hold a signal that no queue operation will ever wait on. Discard after Release, or a
// second Discard, does nothing.
func (s *Pooled) Discard(device gpu.Device) {
	if s.released {
		return
	}
	s.released = true
	device.DestroySemaphore(s.semaphore)
}
