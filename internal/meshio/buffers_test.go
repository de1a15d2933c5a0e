package meshio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"

	"github.com/Faultbox/lowpoly-water/pkg/planemesh"
)

func generate(t *testing.T, sideLength float32, segmentCount int) *planemesh.Mesh {
	t.Helper()
	m, err := planemesh.Generate(sideLength, segmentCount)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return m
}

func encodeBuffers(t *testing.T, m *planemesh.Mesh) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteBuffers(&buf, m); err != nil {
		t.Fatalf("WriteBuffers failed: %v", err)
	}
	return buf.Bytes()
}

func TestWriteBuffersLayout(t *testing.T) {
	m := generate(t, 2, 2)
	data := encodeBuffers(t, m)

	want := bufferHeaderSize + 9*12 + 24*2
	if len(data) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(data))
	}
	if string(data[0:4]) != "LPWM" {
		t.Errorf("expected magic LPWM, got %q", data[0:4])
	}
	if data[4] != 0 || data[5] != 1 {
		t.Errorf("expected version bytes [0 1], got %v", data[4:6])
	}

	// First index follows the vertex block.
	first := binary.LittleEndian.Uint16(data[bufferHeaderSize+9*12:])
	if first != 1 {
		t.Errorf("expected first index 1, got %d", first)
	}
}

func TestParseBuffers(t *testing.T) {
	m := generate(t, 1024, 8)

	got, err := ParseBuffers(encodeBuffers(t, m))
	if err != nil {
		t.Fatalf("ParseBuffers failed: %v", err)
	}
	if !reflect.DeepEqual(got, m) {
		t.Error("parsed mesh differs from written mesh")
	}
}

func TestParseBuffersErrors(t *testing.T) {
	valid := encodeBuffers(t, generate(t, 2, 2))

	badMagic := append([]byte(nil), valid...)
	copy(badMagic, "LPWX")

	badVersion := append([]byte(nil), valid...)
	badVersion[5] = 9

	badCount := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(badCount[10:], 3) // segment count

	badIndex := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint16(badIndex[bufferHeaderSize+9*12:], 9)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncatedBuffer},
		{"header only", valid[:bufferHeaderSize], ErrTruncatedBuffer},
		{"missing indices", valid[:len(valid)-2], ErrTruncatedBuffer},
		{"bad magic", badMagic, ErrInvalidMagic},
		{"bad version", badVersion, ErrUnsupportedVersion},
		{"count mismatch", badCount, ErrCorruptBuffer},
		{"index out of range", badIndex, ErrCorruptBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseBuffers(tt.data)
			if m != nil {
				t.Error("expected nil mesh on error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
