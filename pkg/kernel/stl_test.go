package kernel

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// triangleRecordSize is 12 float32s plus the attribute word.
const triangleRecordSize = 12*4 + 2

func TestWriteSTL(t *testing.T) {
	var buf bytes.Buffer
	m := quad()
	if err := WriteSTL(&buf, m); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}

	wantSize := stlHeaderSize + 4 + 2*triangleRecordSize
	if buf.Len() != wantSize {
		t.Fatalf("output size = %d, want %d", buf.Len(), wantSize)
	}

	data := buf.Bytes()
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	if count != 2 {
		t.Errorf("triangle count = %d, want 2", count)
	}

	// First record: normal then first vertex.
	rec := data[stlHeaderSize+4:]
	nz := math.Float32frombits(binary.LittleEndian.Uint32(rec[8:]))
	if nz != 1 {
		t.Errorf("first normal z = %v, want 1", nz)
	}
	v0x := math.Float32frombits(binary.LittleEndian.Uint32(rec[12:]))
	if v0x != 0 {
		t.Errorf("first vertex x = %v, want 0", v0x)
	}
	// Second vertex of the first triangle is (1,0,0).
	v1x := math.Float32frombits(binary.LittleEndian.Uint32(rec[24:]))
	if v1x != 1 {
		t.Errorf("second vertex x = %v, want 1", v1x)
	}
}

func TestWriteSTLMultipleMeshes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, quad(), quad(), quad()); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}

	data := buf.Bytes()
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	if count != 6 {
		t.Errorf("triangle count = %d, want 6", count)
	}
	wantSize := stlHeaderSize + 4 + 6*triangleRecordSize
	if buf.Len() != wantSize {
		t.Errorf("output size = %d, want %d", buf.Len(), wantSize)
	}
}

func TestWriteSTLNoMeshes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}
	if buf.Len() != stlHeaderSize+4 {
		t.Errorf("output size = %d, want header plus count", buf.Len())
	}
	if binary.LittleEndian.Uint32(buf.Bytes()[stlHeaderSize:]) != 0 {
		t.Error("triangle count should be 0")
	}
}
