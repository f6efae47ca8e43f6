package rotator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Rotator_WrapsInBothDirections(t *testing.T) {

	assert := assert.New(t)
	r := New(3, 0, nil)

	assert.Equal(0, r.Index())

	r.Next()
	r.Next()
	r.Next()
	assert.Equal(0, r.Index())

	r.Previous()
	assert.Equal(2, r.Index())
}

func Test_Rotator_GoWrapsOutOfRangeIndexes(t *testing.T) {

	assert := assert.New(t)
	r := New(4, 0, nil)

	r.Go(6)
	assert.Equal(2, r.Index())

	r.Go(-1)
	assert.Equal(3, r.Index())
}

func Test_Rotator_AutoAdvances(t *testing.T) {

	advanced := make(chan int, 16)
	r := New(3, 10*time.Millisecond, func(index int) {
		advanced <- index
	})

	r.Start()
	defer r.Stop()

	select {
	case index := <-advanced:
		assert.Equal(t, 1, index)
	case <-time.After(time.Second):
		t.Fatal("rotator never advanced")
	}
}

func Test_Rotator_PauseHoldsTheCurrentItem(t *testing.T) {

	assert := assert.New(t)
	advanced := make(chan int, 16)
	r := New(3, 10*time.Millisecond, func(index int) {
		advanced <- index
	})

	r.Pause()
	r.Start()
	defer r.Stop()

	select {
	case <-advanced:
		t.Fatal("rotator advanced while paused")
	case <-time.After(50 * time.Millisecond):
	}

	r.Resume()
	select {
	case index := <-advanced:
		assert.Equal(1, index)
	case <-time.After(time.Second):
		t.Fatal("rotator never resumed")
	}
}

func Test_Rotator_SingleItemNeverAdvances(t *testing.T) {

	advanced := make(chan int, 1)
	r := New(1, 5*time.Millisecond, func(index int) {
		advanced <- index
	})

	r.Start()
	defer r.Stop()

	select {
	case <-advanced:
		t.Fatal("a single item rotator advanced")
	case <-time.After(30 * time.Millisecond):
	}
}

func Test_Rotator_StopWaitsForPendingAdvance(t *testing.T) {

	// A caller that stops the rotator and then recycles what onChange
	// reads must never see a late notification.
	for i := 0; i < 100; i++ {
		items := []string{"a", "b", "c"}
		r := New(len(items), time.Millisecond, func(index int) {
			_ = items[index]
		})

		r.Start()
		time.Sleep(time.Millisecond)
		r.Stop()

		items = items[:1]
		time.Sleep(2 * time.Millisecond)
		_ = items
	}
}

func Test_Rotator_NoNotificationAfterStop(t *testing.T) {

	advanced := make(chan int, 64)
	r := New(3, time.Millisecond, func(index int) {
		advanced <- index
	})

	r.Start()
	time.Sleep(5 * time.Millisecond)
	r.Stop()

	// Drain whatever fired before Stop returned; nothing may follow.
	for len(advanced) > 0 {
		<-advanced
	}
	select {
	case index := <-advanced:
		t.Fatalf("rotator notified index %d after Stop", index)
	case <-time.After(20 * time.Millisecond):
	}
}

func Test_Rotator_ManualNavigationNotifies(t *testing.T) {

	var last int
	r := New(5, 0, func(index int) { last = index })

	r.Next()
	assert.Equal(t, 1, last)

	r.Go(4)
	assert.Equal(t, 4, last)
}
