package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCoalescesRapidCalls(t *testing.T) {
	d := New(30 * time.Millisecond)

	var fired int32
	var last int32
	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Do(func() {
			atomic.AddInt32(&fired, 1)
			atomic.StoreInt32(&last, n)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Errorf("fired %d times, want 1", got)
	}
	if got := atomic.LoadInt32(&last); got != 5 {
		t.Errorf("ran call %d, want the last call (5)", got)
	}
}

func TestSeparatedCallsBothFire(t *testing.T) {
	d := New(10 * time.Millisecond)

	var fired int32
	d.Do(func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(50 * time.Millisecond)
	d.Do(func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(50 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 2 {
		t.Errorf("fired %d times, want 2", got)
	}
}

func TestCancelPreventsFiring(t *testing.T) {
	d := New(20 * time.Millisecond)

	var fired int32
	d.Do(func() { atomic.AddInt32(&fired, 1) })
	d.Cancel()

	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Errorf("fired %d times after Cancel, want 0", got)
	}
}

func TestCancelWithoutPendingCall(t *testing.T) {
	d := New(10 * time.Millisecond)
	d.Cancel() // must not panic
}
