package gpu

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// MaxIncompleteRetries is the number of times ReadIncomplete will re-run a query that keeps
// reporting VKIncomplete before giving up
const MaxIncompleteRetries = 8

// ReadIncomplete runs a variable-length query, re-running it while it reports VKIncomplete. The
// returned error has already been passed through ResultError.
func ReadIncomplete[T any](read func() ([]T, common.VkResult, error)) ([]T, error) {
	for attempt := 0; attempt < MaxIncompleteRetries; attempt++ {
		values, res, err := read()
		if res == core1_0.VKIncomplete && err == nil {
			continue
		}

		err = ResultError(res, err)
		if err != nil {
			return nil, err
		}

		return values, nil
	}

	return nil, &UnexpectedError{Result: core1_0.VKIncomplete}
}
