package memory

import (
	"context"
	"testing"
)

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected miss on empty store, ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if string(v) != `{"a":1}` {
		t.Fatalf("wrong value: %s", string(v))
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStore_GetDoesNotAliasStoredValue(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if err := s.Set(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("set: %v", err)
	}

	v1, _, _ := s.Get(ctx, "k")
	v1[0] = 'X'

	v2, _, _ := s.Get(ctx, "k")
	if string(v2) != "abc" {
		t.Fatalf("stored value mutated through returned slice: %s", string(v2))
	}
}
