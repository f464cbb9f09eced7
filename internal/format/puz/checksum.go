package puz

// checksum folds data into a 16-bit rolling sum: for each byte the sum is
// rotated right through its low bit (a set bit re-enters at 0x8000), then
// the byte is added with wraparound. The format uses this one primitive for
// the header, solution, shape, metadata and extension-section checksums.
func checksum(data []byte, sum uint16) uint16 {
	for _, b := range data {
		if sum&1 == 1 {
			sum = sum>>1 + 0x8000
		} else {
			sum >>= 1
		}
		sum += uint16(b)
	}
	return sum
}
