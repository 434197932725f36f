package day

import "context"

// Toggler issues the remote toggle mutation.
type Toggler interface {
	ToggleHabit(ctx context.Context, habitID string) error
}

// CommitFunc pushes an already-applied local flip to the server.
type CommitFunc func(context.Context) error

// Reconciler applies a user's toggle intents to the store. Updates are
// optimistic: the local flip happens first and is never reverted, even
// when the remote mutation fails. The client converges with the server
// again on the next successful reload.
type Reconciler struct {
	store   *Store
	toggler Toggler
}

func NewReconciler(store *Store, toggler Toggler) *Reconciler {
	return &Reconciler{store: store, toggler: toggler}
}

// Toggle flips habitID's local completion immediately and returns the
// commit that issues the remote mutation. The new local state is derived
// purely from the pre-toggle membership, never from the server's
// response. A failed commit reports the error and leaves the local edit
// in place; whether to resynchronize via a reload is the caller's call.
//
// Past-day policy is enforced at the call boundary, not here. Toggling
// before any load is safe: it flips membership in an empty set.
//
// Back-to-back toggles of the same id are not serialized; two in-flight
// commits for one id can diverge from server truth until the next
// reload. Toggles of distinct ids are independent: each flip is atomic
// on the shared set, so no write is lost.
func (r *Reconciler) Toggle(habitID string) CommitFunc {
	r.store.flip(habitID)
	return func(ctx context.Context) error {
		return r.toggler.ToggleHabit(ctx, habitID)
	}
}
