package core

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerFiresOnce(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(100*time.Millisecond, func() { count++ })

	s.Advance(50 * time.Millisecond)
	if count != 0 {
		t.Fatalf("timer fired early at %v", s.Now())
	}

	s.Advance(50 * time.Millisecond)
	if count != 1 {
		t.Fatalf("timer should fire when due, count = %d", count)
	}

	s.Advance(time.Second)
	if count != 1 {
		t.Errorf("one-shot timer fired %d times", count)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after firing, expected 0", s.Pending())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(10*time.Millisecond, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel() = false for a pending timer")
	}
	if s.Cancel(id) {
		t.Error("Cancel() = true for an already cancelled timer")
	}
	if s.Cancel(0) {
		t.Error("Cancel(0) should never match a timer")
	}

	s.Advance(time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestSchedulerDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(10*time.Millisecond, func() { order = append(order, "b") })

	if n := s.Advance(time.Second); n != 3 {
		t.Errorf("Advance() fired %d timers, expected 3", n)
	}

	expected := []string{"a", "b", "c"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("fire order = %v, expected %v", order, expected)
	}
}

func TestSchedulerCallbackCancelsSibling(t *testing.T) {
	s := NewScheduler()
	var second TimerID
	secondFired := false

	s.After(10*time.Millisecond, func() { s.Cancel(second) })
	second = s.After(20*time.Millisecond, func() { secondFired = true })

	s.Advance(time.Second)
	if secondFired {
		t.Error("timer cancelled by an earlier callback in the same Advance still fired")
	}
}

func TestSchedulerCallbackSchedulesNextAdvance(t *testing.T) {
	s := NewScheduler()
	nested := false
	s.After(0, func() {
		s.After(0, func() { nested = true })
	})

	s.Advance(0)
	if nested {
		t.Fatal("timer scheduled from a callback fired in the same Advance")
	}

	s.Advance(0)
	if !nested {
		t.Error("nested timer should fire on the next Advance")
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler()
	s.After(time.Millisecond, func() { t.Error("timer survived Reset") })
	s.Advance(time.Microsecond)

	s.Reset()

	if s.Now() != 0 || s.Pending() != 0 {
		t.Errorf("Reset left now=%v pending=%d", s.Now(), s.Pending())
	}
	s.Advance(time.Second)
}
