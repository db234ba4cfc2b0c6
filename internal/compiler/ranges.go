package compiler

// ByteRange is an inclusive run of byte values.
type ByteRange struct {
	Lo, Hi byte
}

// CoalesceRanges turns a non-empty byte set into the minimal ordered list
// of contiguous inclusive ranges: sorted, disjoint, and maximal, with a
// union equal to the input set.
func CoalesceRanges(set *ByteSet) []ByteRange {
	var ranges []ByteRange
	open := false
	var cur ByteRange
	for _, b := range set.Bytes() {
		if open && int(cur.Hi)+1 == int(b) {
			cur.Hi = b
			continue
		}
		if open {
			ranges = append(ranges, cur)
		}
		cur = ByteRange{Lo: b, Hi: b}
		open = true
	}
	if open {
		ranges = append(ranges, cur)
	}
	return ranges
}
