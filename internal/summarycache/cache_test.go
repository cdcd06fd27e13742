package summarycache

import "testing"

func TestGetPut(t *testing.T) {
	c, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.Put("call-1", Record{CallID: "call-1", Summary: "first"})

	rec, ok := c.Get("call-1")
	if !ok {
		t.Fatal("expected call-1 to be cached")
	}
	if rec.Summary != "first" {
		t.Errorf("summary = %q", rec.Summary)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown call id")
	}
}

func TestLatest(t *testing.T) {
	c, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := c.Latest(); ok {
		t.Error("expected no latest before any put")
	}

	c.Put("call-1", Record{CallID: "call-1", Summary: "first"})
	c.Put("call-2", Record{CallID: "call-2", Summary: "second"})

	rec, ok := c.Latest()
	if !ok {
		t.Fatal("expected a latest record")
	}
	if rec.Summary != "second" {
		t.Errorf("latest should be last writer, got %q", rec.Summary)
	}
}

func TestPut_EmptyCallIDOnlyUpdatesLatest(t *testing.T) {
	c, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.Put("", Record{Summary: "anonymous"})

	if _, ok := c.Get(""); ok {
		t.Error("empty call id must not create a per-call entry")
	}
	rec, ok := c.Latest()
	if !ok || rec.Summary != "anonymous" {
		t.Errorf("latest = %+v, ok=%v", rec, ok)
	}
}

func TestEviction_LatestSurvives(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.Put("call-1", Record{CallID: "call-1", Summary: "one"})
	c.Put("call-2", Record{CallID: "call-2", Summary: "two"})
	c.Put("call-3", Record{CallID: "call-3", Summary: "three"})

	if _, ok := c.Get("call-1"); ok {
		t.Error("expected call-1 to be evicted")
	}
	if _, ok := c.Get("call-3"); !ok {
		t.Error("expected call-3 to be cached")
	}

	rec, ok := c.Latest()
	if !ok || rec.Summary != "three" {
		t.Errorf("latest = %+v, ok=%v", rec, ok)
	}

	// Even when the latest record's own entry gets evicted, the latest
	// slot keeps serving it.
	c.Put("call-4", Record{CallID: "call-4", Summary: "four"})
	c.Put("call-5", Record{CallID: "call-5", Summary: "five"})
	c.Put("other", Record{CallID: "other", Summary: "other"})
	rec, ok = c.Latest()
	if !ok || rec.Summary != "other" {
		t.Errorf("latest = %+v, ok=%v", rec, ok)
	}
}
