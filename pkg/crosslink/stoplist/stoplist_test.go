package stoplist

import "testing"

func TestDefaultCoversFunctionWords(t *testing.T) {
	m := Default()
	for _, w := range []string{"the", "The", "THE", "of", "and", "his"} {
		if !m.IsStop(w) {
			t.Fatalf("expected %q to be a stopword", w)
		}
	}
	for _, w := range []string{"jacob", "diego", "whale"} {
		if m.IsStop(w) {
			t.Fatalf("did not expect %q to be a stopword", w)
		}
	}
}

func TestAddRemove(t *testing.T) {
	m := NewManager(nil)
	m.Add("Ishmael")
	if !m.IsStop("ishmael") {
		t.Fatal("Add did not register")
	}
	m.Remove("ISHMAEL")
	if m.IsStop("ishmael") {
		t.Fatal("Remove did not take")
	}
}

func TestNewManagerNormalizes(t *testing.T) {
	m := NewManager([]string{" The ", "", "OF"})
	if !m.IsStop("the") || !m.IsStop("of") {
		t.Fatal("seed words not normalized")
	}
	if len(m.All()) != 2 {
		t.Fatalf("All = %v", m.All())
	}
}
