package vulkan

import (
	"github.com/dolthub/swiss"
)

// handleTable maps the opaque handles given out by a Device to the vkngwrapper objects they
// stand for
type handleTable[H ~uint64, O any] struct {
	objects *swiss.Map[H, O]
}

func newHandleTable[H ~uint64, O any]() handleTable[H, O] {
	return handleTable[H, O]{objects: swiss.NewMap[H, O](42)}
}

func (t handleTable[H, O]) put(handles *handleSource, object O) H {
	handle := H(handles.next())
	t.objects.Put(handle, object)
	return handle
}

func (t handleTable[H, O]) get(handle H) (O, bool) {
	return t.objects.Get(handle)
}

// take removes handle from the table and returns the object it stood for
func (t handleTable[H, O]) take(handle H) (O, bool) {
	object, ok := t.objects.Get(handle)
	if ok {
		t.objects.Delete(handle)
	}
	return object, ok
}

func (t handleTable[H, O]) count() int {
	return t.objects.Count()
}

// handleSource issues handles that are unique across every table of a Device. Zero is never
// issued.
type handleSource struct {
	last uint64
}

func (s *handleSource) next() uint64 {
	s.last++
	return s.last
}
