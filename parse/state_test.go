package parse

import "testing"

func TestState_ConsumesFrontToBack(t *testing.T) {
	s := NewState([]string{"math", "--a=2", "-b3"})

	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if s.Empty() {
		t.Error("Empty() = true for a fresh state with tokens")
	}

	tok, ok := s.Peek()
	if !ok || tok != "math" {
		t.Errorf("Peek() = %q, %v, want \"math\", true", tok, ok)
	}
	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d after Peek, want 3", got)
	}

	for _, want := range []string{"math", "--a=2", "-b3"} {
		tok, ok := s.Next()
		if !ok || tok != want {
			t.Errorf("Next() = %q, %v, want %q, true", tok, ok, want)
		}
	}

	if !s.Empty() {
		t.Error("Empty() = false after consuming every token")
	}
}

func TestState_Exhausted(t *testing.T) {
	s := NewState(nil)

	if !s.Empty() {
		t.Error("Empty() = false for a state built from no tokens")
	}
	if tok, ok := s.Peek(); ok || tok != "" {
		t.Errorf("Peek() = %q, %v on an empty state, want \"\", false", tok, ok)
	}
	if tok, ok := s.Next(); ok || tok != "" {
		t.Errorf("Next() = %q, %v on an empty state, want \"\", false", tok, ok)
	}
}
