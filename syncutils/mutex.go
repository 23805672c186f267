//go:build !deadlock

// Package syncutils provides the mutex types used by the thread-safe containers. Building with the "deadlock" tag
// swaps them for instrumented versions that report lock ordering violations and locks held for too long.
package syncutils

import (
	"sync"
)

// Mutex is the mutual exclusion lock used by the containers.
type Mutex = sync.Mutex

// RWMutex is the reader/writer mutual exclusion lock used by the containers.
type RWMutex = sync.RWMutex
