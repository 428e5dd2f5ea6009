package xutil

import "testing"

func TestSortedByCountDescending(t *testing.T) {
	m := map[string]uint32{"a": 1, "b": 5, "c": 3}
	got := SortedByCount(m, nil)

	want := []string{"b", "c", "a"}
	for i, w := range want {
		if got[i].Key != w {
			t.Errorf("index %d: got key %q, want %q", i, got[i].Key, w)
		}
	}
}

func TestSortedByCountTiebreak(t *testing.T) {
	m := map[string]uint32{"z": 2, "a": 2}
	got := SortedByCount(m, func(a, b string) bool { return a < b })

	if got[0].Key != "a" || got[1].Key != "z" {
		t.Errorf("expected tiebreak to order a before z, got %+v", got)
	}
}
