package index

import (
	"fmt"
	"sync"
	"testing"
)

func TestRecordCreatesAndIncrements(t *testing.T) {
	x := New()
	x.Record("jacob_williamson", "d1.txt", "PERSON", "Jacob Williamson")
	x.Record("jacob_williamson", "d1.txt", "PERSON", "Jacob Williamson")
	x.Record("jacob_williamson", "d2.txt", "PERSON", "Jacob Williamson")

	snap := x.Finalize()
	e, ok := snap.Get("jacob_williamson")
	if !ok {
		t.Fatal("entry missing")
	}
	if e.Counts["d1.txt"] != 2 || e.Counts["d2.txt"] != 1 {
		t.Fatalf("counts = %v", e.Counts)
	}
	if e.SourceCount() != 2 || e.TotalCount() != 3 {
		t.Fatalf("sources=%d total=%d", e.SourceCount(), e.TotalCount())
	}
	if e.Type != "PERSON" || e.Display != "Jacob Williamson" {
		t.Fatalf("type=%q display=%q", e.Type, e.Display)
	}
}

func TestFirstWriterFixesDisplay(t *testing.T) {
	x := New()
	x.Record("jacob", "d1.txt", "PERSON", "Jacob")
	x.Record("jacob", "d2.txt", "ORG", "JACOB")

	snap := x.Finalize()
	e, _ := snap.Get("jacob")
	if e.Type != "PERSON" || e.Display != "Jacob" {
		t.Fatalf("first writer lost: type=%q display=%q", e.Type, e.Display)
	}
}

func TestListTypeWinsOverEntity(t *testing.T) {
	x := New()
	x.Record("cordon_bleu", "d1.txt", "PRODUCT", "Cordon Bleu")
	x.Seed("cordon_bleu", TypeList, "cordon bleu")
	// An entity write after the list claim must not take the type back.
	x.Record("cordon_bleu", "d2.txt", "PRODUCT", "Cordon Bleu")

	snap := x.Finalize()
	e, _ := snap.Get("cordon_bleu")
	if e.Type != TypeList {
		t.Fatalf("type = %q, want %q", e.Type, TypeList)
	}
	if e.Display != "cordon bleu" {
		t.Fatalf("display = %q, want list spelling", e.Display)
	}
	if e.Counts["d1.txt"] != 1 || e.Counts["d2.txt"] != 1 {
		t.Fatalf("counts = %v", e.Counts)
	}
}

func TestSeedIsIdempotentForCounts(t *testing.T) {
	x := New()
	x.Record("whale", "d1.txt", TypeList, "whale")
	x.Seed("whale", TypeList, "whale")
	x.Seed("whale", TypeList, "whale")

	snap := x.Finalize()
	e, _ := snap.Get("whale")
	if e.Counts["d1.txt"] != 1 {
		t.Fatalf("seed disturbed counts: %v", e.Counts)
	}
}

func TestSeedCreatesEmptyEntry(t *testing.T) {
	x := New()
	x.Seed("ahab", TypeList, "ahab")

	snap := x.Finalize()
	e, ok := snap.Get("ahab")
	if !ok {
		t.Fatal("seeded entry missing")
	}
	if len(e.Counts) != 0 {
		t.Fatalf("counts = %v, want empty", e.Counts)
	}
}

func TestFinalizeFreezesIndex(t *testing.T) {
	x := New()
	x.Record("jacob", "d1.txt", "PERSON", "Jacob")
	snap := x.Finalize()

	x.Record("jacob", "d1.txt", "PERSON", "Jacob")
	x.Record("late", "d1.txt", "PERSON", "Late")
	x.Seed("late_seed", TypeList, "late seed")

	if x.Len() != 1 {
		t.Fatalf("len = %d after finalize, want 1", x.Len())
	}
	e, _ := snap.Get("jacob")
	if e.Counts["d1.txt"] != 1 {
		t.Fatalf("snapshot mutated: %v", e.Counts)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	x := New()
	x.Record("jacob", "d1.txt", "PERSON", "Jacob")
	snap := x.Finalize()

	e, _ := snap.Get("jacob")
	e.Counts["d1.txt"] = 99

	// The live index must not see mutations of the snapshot's maps.
	live := x.Finalize()
	if live.Entries["jacob"].Counts["d1.txt"] != 1 {
		t.Fatal("snapshot mutation leaked into index")
	}
}

func TestAttested(t *testing.T) {
	x := New()
	x.Record("jacob", "d1.txt", "PERSON", "Jacob")
	snap := x.Finalize()

	if !snap.Attested("jacob", "d1.txt") {
		t.Fatal("expected attested in d1")
	}
	if snap.Attested("jacob", "d2.txt") {
		t.Fatal("not attested in d2")
	}
	if snap.Attested("missing", "d1.txt") {
		t.Fatal("missing key attested")
	}
}

func TestKeysSorted(t *testing.T) {
	x := New()
	x.Record("zeta", "d", "PERSON", "Zeta")
	x.Record("alpha", "d", "PERSON", "Alpha")
	x.Record("mid", "d", "PERSON", "Mid")

	keys := x.Finalize().Keys()
	want := []string{"alpha", "mid", "zeta"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestConcurrentIncrements(t *testing.T) {
	x := New()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			doc := fmt.Sprintf("d%d.txt", w%2)
			for i := 0; i < 100; i++ {
				x.Record("jacob", doc, "PERSON", "Jacob")
			}
		}(w)
	}
	wg.Wait()

	e, _ := x.Finalize().Get("jacob")
	if e.TotalCount() != 800 {
		t.Fatalf("total = %d, want 800", e.TotalCount())
	}
}
