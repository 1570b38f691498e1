package field

import "fumen/internal/buffer"

// Blocks returns the modulus used by both the field-diff run length and
// the action position field for a field with main height top: BLOCKS =
// W·(top+1).
func Blocks(top int) int {
	return Width * (top + GarbageHeight)
}

// cellAt maps a scan index in [0, Blocks(top)) to a unified (x, y)
// coordinate, scanning top-down through the main field and finishing on
// the garbage row.
func cellAt(top, index int) (x, y int) {
	x = index % Width
	y = top - index/Width - 1
	return
}

func getDiff(prev, cur *InnerField, x, y int) int {
	return int(cur.GetAt(x, y)) - int(prev.GetAt(x, y)) + 8
}

// DiffEncode run-length encodes the per-cell difference between prev and
// cur over the fixed scan order, returning whether the field changed and
// the digit chunk to merge into the output buffer.
func DiffEncode(prev, cur *InnerField, top int) (bool, *buffer.Buffer) {
	buf := buffer.New()
	blocks := Blocks(top)

	x0, y0 := cellAt(top, 0)
	prevDiff := getDiff(prev, cur, x0, y0)
	counter := -1

	push := func(diff, count int) {
		buf.Push(diff*blocks+count, 2)
	}

	for index := 0; index < blocks; index++ {
		x, y := cellAt(top, index)
		diff := getDiff(prev, cur, x, y)
		if diff != prevDiff {
			push(prevDiff, counter)
			counter = 0
			prevDiff = diff
		} else {
			counter++
		}
	}
	push(prevDiff, counter)

	changed := !(prevDiff == 8 && counter == blocks-1)
	return changed, buf
}

// DiffDecode applies the run-length diff polled from buf to a copy of
// prev, returning whether the field changed and the materialised field.
func DiffDecode(buf *buffer.Buffer, prev *InnerField, top int) (bool, *InnerField, error) {
	blocks := Blocks(top)
	result := prev.Copy()
	changed := true

	index := 0
	for index < blocks {
		diffBlock, err := buf.Poll(2)
		if err != nil {
			return false, nil, err
		}
		diff := diffBlock / blocks
		count := diffBlock % blocks

		if diff == 8 && count == blocks-1 {
			changed = false
		}

		for n := 0; n <= count && index < blocks; n++ {
			x, y := cellAt(top, index)
			result.AddAt(x, y, diff-8)
			index++
		}
	}

	return changed, result, nil
}
