package arena

import "testing"

func TestArenaPushGet(t *testing.T) {
	a := New[int](4)
	r1 := a.Push(10)
	r2 := a.Push(20)

	if got := a.Get(r1); got != 10 {
		t.Errorf("got %d, want 10", got)
	}
	if got := a.Get(r2); got != 20 {
		t.Errorf("got %d, want 20", got)
	}
	if a.Len() != 2 {
		t.Errorf("got len %d, want 2", a.Len())
	}
}

func TestArenaSet(t *testing.T) {
	a := New[string](2)
	r := a.Push("first")
	a.Set(r, "second")
	if got := a.Get(r); got != "second" {
		t.Errorf("got %q, want %q", got, "second")
	}
}

func TestArenaReset(t *testing.T) {
	a := New[int](4)
	a.Push(1)
	a.Push(2)
	a.Reset()
	if a.Len() != 0 {
		t.Errorf("got len %d after reset, want 0", a.Len())
	}
	r := a.Push(99)
	if a.Get(r) != 99 {
		t.Errorf("push after reset failed")
	}
}

func TestStringBufferAppend(t *testing.T) {
	buf := NewStringBuffer(16)
	ref := buf.Append("hello")
	if got := ref.Resolve("", buf); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestStringBufferStartAppendAndAppendRune(t *testing.T) {
	buf := NewStringBuffer(16)
	ref := buf.StartAppend()
	ref = buf.AppendRune(ref, 'a')
	ref = buf.AppendRune(ref, 'b')
	ref = buf.AppendRune(ref, 'c')

	if got := ref.Resolve("", buf); got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestStrRefBorrowedResolvesAgainstInput(t *testing.T) {
	input := "hello world"
	ref := StrRef{Kind: Borrowed, Start: 6, End: 11}
	if got := ref.Resolve(input, nil); got != "world" {
		t.Errorf("got %q, want %q", got, "world")
	}
}

func TestStringBufferReset(t *testing.T) {
	buf := NewStringBuffer(16)
	buf.Append("abc")
	buf.Reset()
	ref := buf.Append("xyz")
	if got := ref.Resolve("", buf); got != "xyz" {
		t.Errorf("got %q, want %q", got, "xyz")
	}
	if ref.Start != 0 {
		t.Errorf("expected buffer to restart at 0 after Reset, got start %d", ref.Start)
	}
}
