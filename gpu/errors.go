package gpu

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

var (
	// ErrTimeout is returned when a blocking call ran out of time or the object was not yet ready
	ErrTimeout = errors.New("timed out waiting on the device")
	// ErrDeviceLost is returned when the logical device is no longer usable
	ErrDeviceLost = errors.New("device lost")
)

// UnexpectedError carries a result code that none of the calling code is prepared to handle
type UnexpectedError struct {
	Result common.VkResult
	Err    error
}

func (e *UnexpectedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unexpected result: %v", e.Result)
	}
	return fmt.Sprintf("unexpected result %v: %v", e.Result, e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// ResultError converts the result pair returned by a Device call into a single error. Success
// codes (including non-zero successes such as VKIncomplete) produce nil.
func ResultError(res common.VkResult, err error) error {
	switch res {
	case core1_0.VKTimeout, core1_0.VKNotReady:
		return ErrTimeout
	case core1_0.VKErrorDeviceLost:
		return ErrDeviceLost
	}

	if err != nil || res < core1_0.VKSuccess {
		return &UnexpectedError{Result: res, Err: err}
	}

	return nil
}

// IsUnexpected reports whether err wraps an UnexpectedError and returns it if so
func IsUnexpected(err error) (*UnexpectedError, bool) {
	var unexpected *UnexpectedError
	if errors.As(err, &unexpected) {
		return unexpected, true
	}
	return nil, false
}
