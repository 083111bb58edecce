package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualSchedulerOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []string
	s.Schedule(30*time.Millisecond, func() { got = append(got, "c") })
	s.Schedule(10*time.Millisecond, func() { got = append(got, "a") })
	s.Schedule(10*time.Millisecond, func() { got = append(got, "b") })

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 20*time.Millisecond, s.Now())

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestManualSchedulerStop(t *testing.T) {
	s := NewManualScheduler()
	ran := false
	h := s.Schedule(time.Millisecond, func() { ran = true })

	assert.True(t, h.Stop())
	assert.False(t, h.Stop())
	s.Advance(time.Second)
	assert.False(t, ran)
	assert.Zero(t, s.Pending())
}

func TestManualSchedulerChained(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	var again func()
	again = func() {
		count++
		s.Schedule(10*time.Millisecond, again)
	}
	s.Schedule(10*time.Millisecond, again)

	s.Advance(35 * time.Millisecond)
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, s.Pending())
}
