package settlement

import (
	"sync"
	"testing"
)

func TestToggle(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		store := NewStore()

		if settled := store.Toggle("user1", KindIncome, "inc1_week_0"); !settled {
			t.Error("expected first toggle to settle the item")
		}
		if !store.Settled("user1", KindIncome, "inc1_week_0") {
			t.Error("expected item to be settled")
		}

		if settled := store.Toggle("user1", KindIncome, "inc1_week_0"); settled {
			t.Error("expected second toggle to return the item to pending")
		}
		if store.Settled("user1", KindIncome, "inc1_week_0") {
			t.Error("expected item to be pending again")
		}
	})

	t.Run("kinds_are_independent", func(t *testing.T) {
		store := NewStore()
		store.Toggle("user1", KindIncome, "item")

		if store.Settled("user1", KindExpense, "item") {
			t.Error("expected expense set to be unaffected by income toggle")
		}
	})

	t.Run("users_are_independent", func(t *testing.T) {
		store := NewStore()
		store.Toggle("user1", KindExpense, "exp1")

		if store.Settled("user2", KindExpense, "exp1") {
			t.Error("expected user2 set to be empty")
		}
	})
}

func TestSnapshot(t *testing.T) {
	t.Run("copy_is_detached", func(t *testing.T) {
		store := NewStore()
		store.Toggle("user1", KindExpense, "exp1")

		snap := store.Snapshot("user1", KindExpense)
		if _, ok := snap["exp1"]; !ok {
			t.Fatal("expected exp1 in snapshot")
		}

		// Mutating the snapshot must not leak back into the store.
		delete(snap, "exp1")
		if !store.Settled("user1", KindExpense, "exp1") {
			t.Error("expected store to still hold exp1")
		}
	})

	t.Run("empty_for_unknown_user", func(t *testing.T) {
		store := NewStore()
		if snap := store.Snapshot("nobody", KindIncome); len(snap) != 0 {
			t.Errorf("expected empty snapshot, got %v", snap)
		}
	})
}

func TestReset(t *testing.T) {
	store := NewStore()
	store.Toggle("user1", KindIncome, "inc1")
	store.Toggle("user1", KindExpense, "exp1")

	store.Reset("user1")

	if store.Settled("user1", KindIncome, "inc1") || store.Settled("user1", KindExpense, "exp1") {
		t.Error("expected both sets cleared after reset")
	}
}

func TestConcurrentToggles(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.Toggle("user1", KindExpense, "exp1")
			store.Snapshot("user1", KindExpense)
		}(i)
	}
	wg.Wait()

	// 50 toggles of the same item must land back on pending.
	if store.Settled("user1", KindExpense, "exp1") {
		t.Error("expected item pending after an even number of toggles")
	}
}
