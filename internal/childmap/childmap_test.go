// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package childmap

import "testing"

func TestHashedBasic(t *testing.T) {
	m := NewHashed[byte, int]()
	m.Set('a', 1)
	m.Set('b', 2)
	if v, ok := m.Get('a'); !ok || v != 1 {
		t.Fatalf("Get('a') = (%d,%v), want (1,true)", v, ok)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	m.Delete('a')
	if _, ok := m.Get('a'); ok {
		t.Fatal("expected 'a' deleted")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func lessByte(a, b byte) bool { return a < b }

func TestOrderedKeepsSortedOrder(t *testing.T) {
	m := NewOrdered[byte, int](lessByte)
	for _, k := range []byte{'d', 'b', 'z', 'a'} {
		m.Set(k, int(k))
	}
	var got []byte
	for k := range m.Keys() {
		got = append(got, k)
	}
	want := []byte{'a', 'b', 'd', 'z'}
	if len(got) != len(want) {
		t.Fatalf("Keys() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %c, want %c (full: %s)", i, got[i], want[i], got)
		}
	}
}

func TestOrderedGetSetDelete(t *testing.T) {
	m := NewOrdered[byte, string](lessByte)
	m.Set('m', "mid")
	m.Set('a', "first")
	m.Set('z', "last")

	if v, ok := m.Get('m'); !ok || v != "mid" {
		t.Fatalf("Get('m') = (%q,%v)", v, ok)
	}
	m.Set('m', "updated")
	if v, _ := m.Get('m'); v != "updated" {
		t.Fatalf("expected update to replace value, got %q", v)
	}
	m.Delete('a')
	if _, ok := m.Get('a'); ok {
		t.Fatal("expected 'a' deleted")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
}

func TestByteDenseMapOrderAndRank(t *testing.T) {
	m := NewByte[int]()
	for _, k := range []byte{200, 5, 100, 0, 255} {
		m.Set(k, int(k))
	}
	if m.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", m.Len())
	}

	var got []byte
	for k := range m.Keys() {
		got = append(got, k)
	}
	want := []byte{0, 5, 100, 200, 255}
	if len(got) != len(want) {
		t.Fatalf("Keys() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	for _, k := range want {
		v, ok := m.Get(k)
		if !ok || v != int(k) {
			t.Fatalf("Get(%d) = (%d,%v), want (%d,true)", k, v, ok, k)
		}
	}

	m.Delete(100)
	if _, ok := m.Get(100); ok {
		t.Fatal("expected 100 deleted")
	}
	if m.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", m.Len())
	}
}

func TestByteMissingKey(t *testing.T) {
	m := NewByte[int]()
	m.Set(10, 1)
	if _, ok := m.Get(11); ok {
		t.Fatal("expected miss for unset key")
	}
}
