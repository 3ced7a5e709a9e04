package utils

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResourceLockerSerializesPerID(t *testing.T) {
	locker := NewResourceLocker()

	const workers = 32
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("need-1")
			defer unlock()

			v := counter
			runtime.Gosched()
			counter = v + 1
		}()
	}
	wg.Wait()

	require.Equal(t, workers, counter)
}

func TestResourceLockerIndependentIDs(t *testing.T) {
	locker := NewResourceLocker()

	unlockA := locker.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locker.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("holding one id blocked an unrelated id")
	}
}

func TestResourceLockerReleasesEntries(t *testing.T) {
	locker := NewResourceLocker()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("need-1")
			unlock()
		}()
	}
	wg.Wait()

	unlock := locker.Lock("need-2")
	unlock()

	locker.mu.Lock()
	defer locker.mu.Unlock()
	require.Empty(t, locker.locks)
}
