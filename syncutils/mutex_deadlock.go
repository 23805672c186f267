//go:build deadlock

package syncutils

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

// DeadlockTimeout is the time a lock can be waited for before it is reported as a potential deadlock.
const DeadlockTimeout = 20 * time.Second

type Mutex = deadlock.Mutex
type RWMutex = deadlock.RWMutex

func init() {
	deadlock.Opts.DeadlockTimeout = DeadlockTimeout
}
