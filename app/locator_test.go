package app

import (
	"errors"
	"testing"
)

const innerInfo = "d4:name4:test12:piece lengthi16384ee"

func TestFindInfoRange(t *testing.T) {
	in := []byte("d8:announce9:tracker-x4:info" + innerInfo + "e")
	r, err := FindInfoRange(in)
	if err != nil {
		t.Fatalf("FindInfoRange failed: %v", err)
	}
	if string(r.Slice(in)) != innerInfo {
		t.Errorf("info bytes = %q, want %q", r.Slice(in), innerInfo)
	}
}

// A top-level list wrapping the metadata dictionary must yield the same
// range through the scan that a plain top-level dictionary yields through
// the structured walk.
func TestFindInfoRangeListWrapped(t *testing.T) {
	dict := []byte("d4:info" + innerInfo + "e")
	wrapped := []byte("l" + string(dict) + "e")

	direct, err := DecodeBencode(dict)
	if err != nil || direct.InfoRange == nil {
		t.Fatalf("DecodeBencode(dict) = %v, %v", direct.InfoRange, err)
	}

	r, err := FindInfoRange(wrapped)
	if err != nil {
		t.Fatalf("FindInfoRange failed: %v", err)
	}
	if got, want := string(r.Slice(wrapped)), string(direct.InfoRange.Slice(dict)); got != want {
		t.Errorf("scanned info bytes = %q, want %q", got, want)
	}
}

// The scan matches the raw token wherever it appears, including inside
// unrelated string content. When the bytes after such a match parse as a
// value, that first match wins; the mis-fire risk is accepted.
func TestFindInfoRangeFalsePositiveInPayload(t *testing.T) {
	in := []byte("d1:k10:x4:infoi1ee")

	result, err := DecodeBencode(in)
	if err != nil {
		t.Fatalf("DecodeBencode failed: %v", err)
	}
	if result.InfoRange != nil {
		t.Fatalf("InfoRange = %v, want nil (token only appears inside a payload)", *result.InfoRange)
	}

	r, err := FindInfoRange(in)
	if err != nil {
		t.Fatalf("FindInfoRange failed: %v", err)
	}
	if got := string(r.Slice(in)); got != "i1e" {
		t.Errorf("scanned bytes = %q, want %q", got, "i1e")
	}
}

func TestFindInfoRangeNotFound(t *testing.T) {
	_, err := FindInfoRange([]byte("d3:foo3:bare"))
	if !errors.Is(err, ErrInfoNotFound) {
		t.Errorf("err = %v, want ErrInfoNotFound", err)
	}
}

func TestFindInfoRangeBadValue(t *testing.T) {
	// The token matches a plain string element, so the byte after it is the
	// list terminator, not a value.
	_, err := FindInfoRange([]byte("l4:infoe"))
	if !errors.Is(err, ErrInfoNotFound) {
		t.Errorf("err = %v, want ErrInfoNotFound", err)
	}
}

func TestInfoRangeFallsBack(t *testing.T) {
	// Leading garbage makes the structured decode fail outright; the scan
	// must still recover the info dictionary.
	in := []byte("??d4:info" + innerInfo + "e")
	r, err := InfoRange(in)
	if err != nil {
		t.Fatalf("InfoRange failed: %v", err)
	}
	if string(r.Slice(in)) != innerInfo {
		t.Errorf("info bytes = %q, want %q", r.Slice(in), innerInfo)
	}
}

func TestInfoRangePrefersWalk(t *testing.T) {
	in := []byte("d4:info" + innerInfo + "e")
	r, err := InfoRange(in)
	if err != nil {
		t.Fatalf("InfoRange failed: %v", err)
	}
	if string(r.Slice(in)) != innerInfo {
		t.Errorf("info bytes = %q, want %q", r.Slice(in), innerInfo)
	}
}

func TestInfoRangeNotFound(t *testing.T) {
	_, err := InfoRange([]byte("l4:spami42ee"))
	if !errors.Is(err, ErrInfoNotFound) {
		t.Errorf("err = %v, want ErrInfoNotFound", err)
	}
}
