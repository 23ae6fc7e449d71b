package component

import (
	"reflect"
	"sync"
)

//go:generate mockgen -source=listener.go -destination=mocks/mock_listener.go

// Listener is notified when an item of a ComboCheckList changes checked state.
type Listener interface {
	// OnStatusChange receives the item index and its new state.
	OnStatusChange(index int, checked bool)
}

// ListenerFunc adapts a function to Listener. Functions cannot be compared,
// so register them with ComboCheckList.AddListenerFunc rather than AddListener.
type ListenerFunc func(index int, checked bool)

// OnStatusChange calls f.
func (f ListenerFunc) OnStatusChange(index int, checked bool) { f(index, checked) }

// funcListener gives a function listener an identity for removal.
type funcListener struct {
	fn ListenerFunc
}

func (l *funcListener) OnStatusChange(index int, checked bool) { l.fn(index, checked) }

// listenerSet is a copy-on-write list of listeners without duplicates.
// Only comparable listener values are accepted, so identity is always defined.
// Snapshots stay valid while listeners are added or removed.
type listenerSet[L any] struct {
	mu    sync.Mutex
	items []L
}

func (s *listenerSet[L]) add(l L) bool {
	if !comparableListener(l) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if sameListener(existing, l) {
			return false
		}
	}
	next := make([]L, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.items = append(next, l)
	return true
}

func (s *listenerSet[L]) remove(l L) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if sameListener(existing, l) {
			next := make([]L, 0, len(s.items)-1)
			next = append(next, s.items[:i]...)
			s.items = append(next, s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *listenerSet[L]) snapshot() []L {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// comparableListener reports whether l can be compared without panicking.
// A struct type may be comparable while an interface field holds a slice.
func comparableListener(l any) bool {
	v := reflect.ValueOf(l)
	return v.IsValid() && v.Comparable()
}

// sameListener compares by identity; non-comparable values never match.
func sameListener(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	return va.IsValid() && vb.IsValid() &&
		va.Comparable() && vb.Comparable() &&
		va.Equal(vb)
}
