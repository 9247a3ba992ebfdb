package agent

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelGuardSerializesSameChannel(t *testing.T) {
	guard := NewChannelGuard()

	const workers = 8
	active := 0
	maxActive := 0
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := guard.Acquire("chan-1")
			defer release()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive)
}

func TestChannelGuardIndependentChannels(t *testing.T) {
	guard := NewChannelGuard()

	releaseA := guard.Acquire("chan-a")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		// Must not block on chan-a's lock
		release := guard.Acquire("chan-b")
		release()
		close(done)
	}()

	<-done
}

func TestChannelGuardReacquire(t *testing.T) {
	guard := NewChannelGuard()

	release := guard.Acquire("chan-1")
	release()

	// Same channel can be taken again once released
	release = guard.Acquire("chan-1")
	release()
}
