package format

// Align4 returns n aligned up to the next 4-byte boundary.
// Block values and children start on such boundaries.
//
// Example:
//
//	Align4(0) = 0
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(6) = 8
func Align4(n int) int {
	return (n + BlockAlignmentMask) & ^BlockAlignmentMask
}

// Pad4 returns how many zero bytes follow n to reach the next boundary.
func Pad4(n int) int {
	return Align4(n) - n
}
