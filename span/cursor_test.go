package span

import "testing"

// sample mixes single-byte and multi-byte runes across four lines.
const sample = "This\nis\n- メカジキ - a\ntest"

func TestAt(t *testing.T) {
	tests := []struct {
		offset int
		char   int
		line   int
		column int
	}{
		{0, 0, 1, 1},
		{4, 4, 1, 5},
		{5, 5, 2, 1},
		{7, 7, 2, 3},
		{8, 8, 3, 1},
		{10, 10, 3, 3},
		{13, 11, 3, 4},
		{22, 14, 3, 7},
		{25, 17, 3, 10},
		{26, 18, 3, 11},
		{27, 19, 4, 1},
		{31, 23, 4, 5},
	}
	for _, tt := range tests {
		got := At(sample, tt.offset)
		want := Cursor{ByteOffset: tt.offset, CharOffset: tt.char, Line: tt.line, Column: tt.column}
		if got != want {
			t.Errorf("At(%d): expected %+v, got %+v", tt.offset, want, got)
		}
	}
}

func TestAtNearMatchesAt(t *testing.T) {
	refs := []Cursor{
		At(sample, 0),
		At(sample, 5),
		At(sample, 13),
		At(sample, 26),
		At(sample, 31),
	}
	offsets := []int{0, 4, 5, 7, 8, 10, 13, 16, 22, 25, 26, 27, 31}
	for _, ref := range refs {
		for _, offset := range offsets {
			got := AtNear(sample, offset, ref)
			want := At(sample, offset)
			if got != want {
				t.Errorf("AtNear(%d) from %+v: expected %+v, got %+v", offset, ref, want, got)
			}
		}
	}
}

func TestLineStart(t *testing.T) {
	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{3, 0},
		{4, 0},
		{5, 5},
		{7, 5},
		{20, 8},
		{31, 27},
	}
	for _, tt := range tests {
		got := At(sample, tt.offset).LineStart(sample)
		if got.ByteOffset != tt.want {
			t.Errorf("LineStart from %d: expected offset %d, got %d", tt.offset, tt.want, got.ByteOffset)
		}
		if got != At(sample, tt.want) {
			t.Errorf("LineStart from %d: cursor fields diverge from At(%d)", tt.offset, tt.want)
		}
	}
}

func TestLineEnd(t *testing.T) {
	tests := []struct {
		offset int
		want   int
	}{
		{0, 4},
		{4, 4},
		{5, 7},
		{8, 26},
		{27, 31},
		{31, 31},
	}
	for _, tt := range tests {
		got := At(sample, tt.offset).LineEnd(sample)
		if got.ByteOffset != tt.want {
			t.Errorf("LineEnd from %d: expected offset %d, got %d", tt.offset, tt.want, got.ByteOffset)
		}
	}
}

func TestNextLineStart(t *testing.T) {
	next, ok := At(sample, 0).NextLineStart(sample)
	if !ok || next.ByteOffset != 5 {
		t.Fatalf("expected next line at 5, got %+v ok=%v", next, ok)
	}
	next, ok = next.NextLineStart(sample)
	if !ok || next.ByteOffset != 8 {
		t.Fatalf("expected next line at 8, got %+v ok=%v", next, ok)
	}
	if _, ok := At(sample, 28).NextLineStart(sample); ok {
		t.Error("last line should have no next line start")
	}
}

func TestFindLineStart(t *testing.T) {
	from := At(sample, 13)

	tests := []struct {
		line   int
		offset int
		ok     bool
	}{
		{1, 0, true},
		{2, 5, true},
		{3, 8, true},
		{4, 27, true},
		{0, 0, false},
		{5, 0, false},
		{-2, 0, false},
	}
	for _, tt := range tests {
		got, ok := from.FindLineStart(sample, tt.line)
		if ok != tt.ok {
			t.Errorf("FindLineStart(%d): expected ok=%v, got %v", tt.line, tt.ok, ok)
			continue
		}
		if ok && got != At(sample, tt.offset) {
			t.Errorf("FindLineStart(%d): expected %+v, got %+v", tt.line, At(sample, tt.offset), got)
		}
	}
}

func TestSlices(t *testing.T) {
	c := At(sample, 13)
	if got := c.SliceFromLineStart(sample); got != "- メ" {
		t.Errorf("SliceFromLineStart: got %q", got)
	}
	if got := c.SliceToLineEnd(sample); got != "カジキ - a" {
		t.Errorf("SliceToLineEnd: got %q", got)
	}

	a, b := At(sample, 5), At(sample, 8)
	if got := a.Slice(sample, b); got != "is\n" {
		t.Errorf("Slice forward: got %q", got)
	}
	if got := b.Slice(sample, a); got != "is\n" {
		t.Errorf("Slice must ignore argument order: got %q", got)
	}
	if got := a.Slice(sample, a); got != "" {
		t.Errorf("Slice of equal cursors: got %q", got)
	}
}

func TestEmptyText(t *testing.T) {
	c := At("", 0)
	if c != (Cursor{ByteOffset: 0, CharOffset: 0, Line: 1, Column: 1}) {
		t.Errorf("unexpected cursor for empty text: %+v", c)
	}
	if got := c.LineEnd(""); got != c {
		t.Errorf("LineEnd on empty text: %+v", got)
	}
	if _, ok := c.NextLineStart(""); ok {
		t.Error("empty text has no next line")
	}
}
