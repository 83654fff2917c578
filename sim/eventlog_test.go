package sim

import (
	"testing"
)

func TestEventLog_Push_PreservesInsertionOrder(t *testing.T) {
	// GIVEN an empty log
	log := NewEventLog()

	// WHEN facts are appended
	log.Push(Fact{Kind: BufferIncremented, Time: 0})
	log.Push(Fact{Kind: BufferDecremented, Time: 0})
	log.Push(Fact{Kind: ServerIncremented, Time: 0})
	log.Push(Fact{Kind: ServerDecremented, Time: 10})

	// THEN Len counts them and Facts returns them in insertion order
	if log.Len() != 4 {
		t.Fatalf("Len = %d, want 4", log.Len())
	}
	want := []Fact{
		{Kind: BufferIncremented, Time: 0},
		{Kind: BufferDecremented, Time: 0},
		{Kind: ServerIncremented, Time: 0},
		{Kind: ServerDecremented, Time: 10},
	}
	for i, f := range log.Facts() {
		if f != want[i] {
			t.Errorf("Facts[%d] = %v, want %v", i, f, want[i])
		}
	}
}

func TestFact_String_RendersTimeAndKind(t *testing.T) {
	f := Fact{Kind: ServerDecremented, Time: 10}
	if got := f.String(); got != "(10, ServerDecremented)" {
		t.Errorf("String = %q, want %q", got, "(10, ServerDecremented)")
	}
}
