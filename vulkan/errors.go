package vulkan

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// ErrUnknownHandle is returned when a handle was not issued by the Device or was already destroyed
var ErrUnknownHandle = errors.New("unknown handle")

func unknownHandle(handle fmt.Stringer) (common.VkResult, error) {
	return core1_0.VKErrorUnknown, errors.Wrapf(ErrUnknownHandle, "%s", handle)
}

// mustLookup panics when a handle passed to a call that cannot report errors is unknown
func mustLookup[O any](object O, ok bool, handle fmt.Stringer) O {
	if !ok {
		panic(errors.Wrapf(ErrUnknownHandle, "%s", handle))
	}
	return object
}
