// Package state implements the confirm-then-apply mutation protocol shared by
// every management screen, plus the caches built on top of it. Local state
// changes only after the backend confirms a mutation; the backend's returned
// object, never the locally constructed payload, is what gets spliced in.
package state

import (
	"errors"
	"sort"
	"sync/atomic"

	"fitcoach/client/internal/api"
)

// Notifier receives the user-visible outcome of a mutation. The terminal
// client prints; tests record.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Gate marks one triggering control as busy while its mutation is in flight.
// It guards a single control against re-entry; two different controls racing
// against overlapping state remains possible.
type Gate struct {
	busy atomic.Bool
}

// TryStart claims the gate, reporting false when a mutation is already in flight.
func (g *Gate) TryStart() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Done releases the gate. Called regardless of mutation outcome.
func (g *Gate) Done() {
	g.busy.Store(false)
}

// Run executes one confirm-then-apply mutation: issue the request, and only on
// success hand the backend's canonical value to apply. On failure the prior
// state is untouched and the mapped message goes to fail. Returns whether the
// mutation was applied.
func Run[T any](request func() (T, error), apply func(T), fail func(string)) bool {
	value, err := request()
	if err != nil {
		fail(ErrorMessage(err))
		return false
	}
	apply(value)
	return true
}

// ErrorMessage maps an error to the text shown to the user. RemoteError
// messages already follow the transport taxonomy; anything else is unexpected.
func ErrorMessage(err error) string {
	var remote *api.RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	if err != nil {
		return err.Error()
	}
	return "An unexpected error occurred"
}

// ReplaceByID swaps the entry whose id matches item's into place. The list is
// returned unchanged when the id is absent.
func ReplaceByID[T any](list []T, item T, idOf func(T) int64) []T {
	id := idOf(item)
	out := make([]T, len(list))
	for i, entry := range list {
		if idOf(entry) == id {
			out[i] = item
		} else {
			out[i] = entry
		}
	}
	return out
}

// RemoveByID drops the entry with the given id, if present.
func RemoveByID[T any](list []T, id int64, idOf func(T) int64) []T {
	out := make([]T, 0, len(list))
	for _, entry := range list {
		if idOf(entry) != id {
			out = append(out, entry)
		}
	}
	return out
}

// AppendSorted appends item and re-sorts by the given ordering key.
func AppendSorted[T any](list []T, item T, orderOf func(T) int) []T {
	out := append(append(make([]T, 0, len(list)+1), list...), item)
	sort.Slice(out, func(i, j int) bool {
		return orderOf(out[i]) < orderOf(out[j])
	})
	return out
}
