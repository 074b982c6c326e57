package buf

import "testing"

func TestCheckedReads(t *testing.T) {
	data := []byte{0xbd, 0x04, 0xef, 0xfe, 0x00, 0x00}

	if v, ok := U32At(data, 0); !ok || v != 0xfeef04bd {
		t.Fatalf("U32At(0) = 0x%x,%v want 0xfeef04bd,true", v, ok)
	}
	if v, ok := U16At(data, 4); !ok || v != 0 {
		t.Fatalf("U16At(4) = 0x%x,%v want 0,true", v, ok)
	}
	if _, ok := U32At(data, 3); ok {
		t.Fatalf("U32At should fail past the end")
	}
	if _, ok := U16At(data, 5); ok {
		t.Fatalf("U16At should fail on a dangling byte")
	}
	if _, ok := U16At(data, -1); ok {
		t.Fatalf("U16At should reject negative offsets")
	}
}
