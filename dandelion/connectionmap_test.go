// Copyright (c) 2025 The oxen-core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dandelion

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestConnectionMapZeroStems(t *testing.T) {
	m := New[int, string]([]string{"a", "b", "c"}, 0)
	if m.Size() != 0 {
		t.Fatalf("Size(): got %d, want 0", m.Size())
	}
	if _, ok := m.GetStem(1); ok {
		t.Error("GetStem on a zero-stem map should return ok=false")
	}
	if m.Update([]string{"a", "b"}) {
		t.Error("Update on a zero-stem map should never report change")
	}
}

func TestConnectionMapEmptyAvailable(t *testing.T) {
	m := New[int, string](nil, 3)
	if m.Size() != 0 {
		t.Fatalf("Size(): got %d, want 0", m.Size())
	}
	if _, ok := m.GetStem(1); ok {
		t.Error("GetStem with no live slots should return ok=false")
	}
}

func TestConnectionMapConstructionCaps(t *testing.T) {
	peers := []string{"p0", "p1"}
	m := New[int, string](peers, 3)
	if got := m.Size(); got != 2 {
		t.Fatalf("Size(): got %d, want 2", got)
	}
	if got := m.Peers(); len(got) != 2 || got[0] != "p0" || got[1] != "p1" {
		t.Fatalf("Peers(): got %v, want [p0 p1]", got)
	}
}

// TestConnectionMapBalancedFanIn mirrors the construction used throughout
// the dandelionpp_map suite: N=3 slots drawn from 6 candidate peers, with 9
// distinct sources requesting a stem. Fan-in across the three live slots
// should end up perfectly balanced at 3 sources each.
func TestConnectionMapBalancedFanIn(t *testing.T) {
	peers := []string{"p0", "p1", "p2", "p3", "p4", "p5"}
	m := New[int, string](peers, 3)

	counts := map[string]int{}
	for source := 0; source < 9; source++ {
		peer, ok := m.GetStem(source)
		if !ok {
			t.Fatalf("GetStem(%d): expected a stem assignment", source)
		}
		counts[peer]++
	}

	if len(counts) != 3 {
		t.Fatalf("expected exactly 3 distinct stem peers in use, got %d: %v", len(counts), counts)
	}
	for peer, n := range counts {
		if n != 3 {
			t.Errorf("peer %s: got %d sources, want 3", peer, n)
		}
	}

	// Re-requesting a stem for an already-bound source must return the
	// same peer every time (stability).
	for source := 0; source < 9; source++ {
		peer, ok := m.GetStem(source)
		if !ok || counts[peer] == 0 {
			t.Errorf("GetStem(%d) on rebind: got (%v,%v)", source, peer, ok)
		}
	}
}

// TestConnectionMapDroppedConnection mirrors the dropped_connection case:
// losing one of the six candidate peers that currently occupies a live slot
// reassigns that slot to one of the previously-unused peers, and every
// source bound to slots that did not change keeps its original peer.
func TestConnectionMapDroppedConnection(t *testing.T) {
	peers := []string{"p0", "p1", "p2", "p3", "p4", "p5"}
	m := New[int, string](peers, 3)

	before := map[int]string{}
	for source := 0; source < 9; source++ {
		peer, _ := m.GetStem(source)
		before[source] = peer
	}

	// Drop p1, which occupies slot 1.
	remaining := []string{"p0", "p2", "p3", "p4", "p5"}
	if changed := m.Update(remaining); !changed {
		t.Fatal("Update: expected a change after dropping a live peer")
	}
	if m.Size() != 3 {
		t.Fatalf("Size() after drop+refill: got %d, want 3", m.Size())
	}

	for source, peer := range before {
		if peer != "p1" {
			got, ok := m.GetStem(source)
			if !ok || got != peer {
				t.Errorf("source %d: got (%v,%v), want (%v,true)", source, got, ok, peer)
			}
		}
	}

	// Sources previously bound to the dropped peer's slot now resolve to
	// whichever unused peer refilled it, but still deterministically to
	// the same new peer on every call.
	var remapped string
	for source, peer := range before {
		if peer == "p1" {
			got, ok := m.GetStem(source)
			if !ok {
				t.Fatalf("source %d: expected remapped stem, got ok=false", source)
			}
			if remapped == "" {
				remapped = got
			} else if got != remapped {
				t.Errorf("source %d: got %v, want consistent remap %v", source, got, remapped)
			}
		}
	}
	if remapped == "p1" {
		t.Error("dropped peer must not still be assigned")
	}
}

// TestConnectionMapDroppedAllConnections mirrors the
// dropped_all_connections case: losing every peer leaves every bound
// source unresolved until a fresh, disjoint peer set of 30 arrives, at
// which point each source keeps its original slot index and only 3 of the
// 30 peers end up live.
func TestConnectionMapDroppedAllConnections(t *testing.T) {
	peers := []string{"p0", "p1", "p2", "p3", "p4", "p5"}
	m := New[int, string](peers, 3)

	slotOf := map[int]string{}
	for source := 0; source < 9; source++ {
		peer, _ := m.GetStem(source)
		slotOf[source] = peer
	}

	if !m.Update(nil) {
		t.Fatal("Update: expected a change after dropping every peer")
	}
	if m.Size() != 0 {
		t.Fatalf("Size() after dropping all peers: got %d, want 0", m.Size())
	}
	for source := 0; source < 9; source++ {
		if _, ok := m.GetStem(source); ok {
			t.Errorf("source %d: expected ok=false with every slot a hole", source)
		}
	}

	fresh := make([]string, 30)
	for i := range fresh {
		fresh[i] = string(rune('A' + i))
	}
	if !m.Update(fresh) {
		t.Fatal("Update: expected a change after restoring peers")
	}
	if got := m.Size(); got != 3 {
		t.Fatalf("Size() after restore: got %d, want 3", got)
	}

	resolved := map[int]string{}
	for source := 0; source < 9; source++ {
		peer, ok := m.GetStem(source)
		if !ok {
			t.Fatalf("source %d: expected stem after restore", source)
		}
		resolved[source] = peer
	}

	groups := map[string][]int{}
	for source, peer := range resolved {
		groups[peer] = append(groups[peer], source)
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 distinct peers bound after restore, got %d: %v", len(groups), groups)
	}
	for peer, sources := range groups {
		if len(sources) != 3 {
			t.Errorf("peer %s: got %d sources, want 3", peer, len(sources))
		}
	}
}

func TestConnectionMapNeverSteals(t *testing.T) {
	m := New[int, string]([]string{"p0"}, 2)
	if m.Size() != 1 {
		t.Fatalf("Size(): got %d, want 1", m.Size())
	}

	source := 1
	peer, ok := m.GetStem(source)
	if !ok || peer != "p0" {
		t.Fatalf("GetStem: got (%v,%v), want (p0,true)", peer, ok)
	}

	// p1 arrives, filling the hole at slot 1. p0's existing binding must
	// not move to slot 1 even though slot 1's load (0) is lower.
	m.Update([]string{"p0", "p1"})
	got, ok := m.GetStem(source)
	if !ok || got != "p0" {
		t.Errorf("GetStem after growth: got (%v,%v), want (p0,true)", got, ok)
	}
}

func TestConnectionMapCloneIndependence(t *testing.T) {
	m := New[int, string]([]string{"p0", "p1"}, 2)
	m.GetStem(1)

	clone := m.Clone()
	clone.Update(nil)

	if m.Size() != 2 {
		t.Errorf("original Size() after cloning and mutating clone: got %d, want 2\n%s", m.Size(), spew.Sdump(m))
	}
	if clone.Size() != 0 {
		t.Errorf("clone Size() after Update(nil): got %d, want 0\n%s", clone.Size(), spew.Sdump(clone))
	}
}

func TestConnectionMapUpdateIdempotent(t *testing.T) {
	peers := []string{"p0", "p1", "p2"}
	m := New[int, string](peers, 3)
	m.GetStem(1)

	if changed := m.Update(peers); changed {
		t.Error("Update with an unchanged peer set should report no change")
	}
}
