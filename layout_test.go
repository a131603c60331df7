package prompter

import "testing"

func layoutFor(t *testing.T, text string, width int) ([]Unit, []layoutRow, []int) {
	t.Helper()
	units := mustTokenize(t, text)
	cells := measureUnits(units, 4)
	rows, rowOf := layoutRows(units, cells, width)
	return units, rows, rowOf
}

func TestLayoutWrapsWholeWords(t *testing.T) {
	_, rows, rowOf := layoutFor(t, "aaa bbb ccc", 7)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].start != 0 || rows[0].end != 4 || rows[0].content != 7 || rows[0].lastOfLine {
		t.Fatalf("unexpected first row %+v", rows[0])
	}
	if rows[1].start != 4 || rows[1].end != 5 || rows[1].content != 3 || !rows[1].lastOfLine {
		t.Fatalf("unexpected second row %+v", rows[1])
	}
	want := []int{0, 0, 0, 0, 1}
	for i, r := range want {
		if rowOf[i] != r {
			t.Fatalf("unit %d: expected row %d, got %d", i, r, rowOf[i])
		}
	}
}

func TestLayoutNewlineEndsRow(t *testing.T) {
	_, rows, rowOf := layoutFor(t, "a\n\nb", 80)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rowOf[1] != 0 || rowOf[2] != 1 || rowOf[4] != 2 {
		t.Fatalf("unexpected row mapping %v", rowOf)
	}
	for i, row := range rows {
		if !row.lastOfLine {
			t.Fatalf("row %d should end its line", i)
		}
	}
}

func TestLayoutOverlongWordKeepsOwnRow(t *testing.T) {
	_, rows, _ := layoutFor(t, "a supercalifragilistic b", 6)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1].start != 2 {
		t.Fatalf("expected long word to start row 1, got %+v", rows[1])
	}
}

func TestRowPaddingAlignments(t *testing.T) {
	units, rows, _ := layoutFor(t, "aaa bbb ccc", 9)
	if left, _ := rowPadding(units, rows[1], 9, AlignLeft); left != 0 {
		t.Fatalf("left: expected 0, got %d", left)
	}
	if left, _ := rowPadding(units, rows[1], 9, AlignCenter); left != 3 {
		t.Fatalf("center: expected 3, got %d", left)
	}
	if left, _ := rowPadding(units, rows[1], 9, AlignRight); left != 6 {
		t.Fatalf("right: expected 6, got %d", left)
	}
	left, extra := rowPadding(units, rows[0], 9, AlignJustify)
	if left != 0 || extra[0] != 2 || len(extra) != 1 {
		t.Fatalf("justify: expected 2 extra after word 0, got %d %v", left, extra)
	}
	if _, extra := rowPadding(units, rows[1], 9, AlignJustify); extra != nil {
		t.Fatalf("justify: last row of a line must not stretch, got %v", extra)
	}
}

func TestMeasureUnitsWidths(t *testing.T) {
	units := mustTokenize(t, "世界\tx")
	cells := measureUnits(units, 2)
	if cells[0].text != "世界" || cells[0].width != 4 {
		t.Fatalf("unexpected wide cell %+v", cells[0])
	}
	if cells[1].text != "  " || cells[1].width != 2 || cells[1].trail != 2 {
		t.Fatalf("unexpected tab cell %+v", cells[1])
	}
}
