package common

import (
	"bytes"
	"testing"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("hunter2")
	WipeByteArray(b)
	if !bytes.Equal(b, make([]byte, 7)) {
		t.Fatalf("expected zeroed slice, got %v", b)
	}
}

func TestWipeByteArray_EmptyAndNil(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}
