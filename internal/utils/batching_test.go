package utils

import "testing"

func TestBatchBuffer(t *testing.T) {
	t.Parallel()

	buf := NewBatchBuffer[int](4)
	if got := buf.GetAndClear(); got != nil {
		t.Fatalf("empty drain = %v, want nil", got)
	}

	buf.Add(1)
	buf.Add(2)
	if buf.Size() != 2 {
		t.Fatalf("size = %d, want 2", buf.Size())
	}

	batch := buf.GetAndClear()
	if len(batch) != 2 || batch[0] != 1 || batch[1] != 2 {
		t.Fatalf("batch = %v, want [1 2]", batch)
	}
	if buf.Size() != 0 {
		t.Fatalf("size after drain = %d, want 0", buf.Size())
	}
}
