package db

import (
	"sync"

	"FlowTube.com/pkg/errno"
	"FlowTube.com/pkg/store"
	"github.com/pkg/errors"
)

var Store store.Store

// mu serializes read-modify-write cycles of this process. Other processes sharing the
// same backend are not coordinated.
var mu sync.Mutex

func Init(s store.Store) {
	Store = s
}

// Lock acquires the mutation lock and returns its release function.
func Lock() func() {
	mu.Lock()
	return mu.Unlock
}

func ioErr(err error, op string) error {
	return errors.WithMessagef(errno.IOFailureErr.WithMessage(err.Error()), "%s failed", op)
}
