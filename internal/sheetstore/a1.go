package sheetstore

import (
	"fmt"
	"strconv"
	"strings"
)

// Range membangun A1 range "'<sheet>'!<colFrom><row>:<colTo><row>".
// Judul sheet selalu di-quote karena bisa mengandung spasi ("Leave Approvals").
func Range(sheet, colFrom string, rowFrom int, colTo string, rowTo int) string {
	return fmt.Sprintf("'%s'!%s%d:%s%d", sheet, colFrom, rowFrom, colTo, rowTo)
}

// Cell membangun A1 range untuk satu sel.
func Cell(sheet, col string, row int) string {
	return fmt.Sprintf("'%s'!%s%d", sheet, col, row)
}

// SheetRange membangun range kolom penuh, dipakai untuk scan dan append.
func SheetRange(sheet, colFrom, colTo string) string {
	return fmt.Sprintf("'%s'!%s:%s", sheet, colFrom, colTo)
}

// RowFromRange mengekstrak nomor baris (1-based) dari sebuah A1 range
// seperti yang dikembalikan API pada append ("'Leave Approvals'!A5:F5" -> 5).
func RowFromRange(rng string) (int, error) {
	idx := strings.LastIndex(rng, "!")
	if idx < 0 || idx == len(rng)-1 {
		return 0, fmt.Errorf("sheetstore: malformed range %q", rng)
	}
	ref := rng[idx+1:]
	if c := strings.Index(ref, ":"); c >= 0 {
		ref = ref[:c]
	}

	digits := strings.TrimLeft(ref, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if digits == "" {
		return 0, fmt.Errorf("sheetstore: range %q has no row component", rng)
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 {
		return 0, fmt.Errorf("sheetstore: range %q has invalid row component", rng)
	}
	return row, nil
}
