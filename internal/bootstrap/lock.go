package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// runLock serializes concurrent bootstrap runs on the same machine so two
// invocations do not race on package installs.
type runLock struct {
	file *os.File
}

var lockFn = lockFile
var unlockFn = unlockFile
var flockFn = unix.Flock
var lockSleep = time.Sleep

var (
	lockWaitTimeout = 30 * time.Second
	lockPollEvery   = 100 * time.Millisecond
)

// withRunLock acquires a lock for path, runs fn, and releases the lock.
func withRunLock(path string, fn func() error) error {
	lock, err := acquireRunLock(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.release()
	}()
	return fn()
}

// acquireRunLock opens or creates path and acquires an exclusive lock.
func acquireRunLock(path string) (*runLock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.BootstrapOpenLockFmt, path, err)
	}
	if err := lockFn(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf(messages.BootstrapLockFmt, path, err)
	}
	return &runLock{file: file}, nil
}

// release unlocks and closes the file lock.
func (l *runLock) release() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := unlockFn(l.file); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}

// lockFile acquires an exclusive advisory lock on the file.
func lockFile(file *os.File) error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.BootstrapLockTimeoutFmt, lockWaitTimeout)
		}
		lockSleep(lockPollEvery)
	}
}

// unlockFile releases the advisory lock on the file.
func unlockFile(file *os.File) error {
	return flockFn(int(file.Fd()), unix.LOCK_UN)
}
