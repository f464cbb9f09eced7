package puz

import "encoding/binary"

// Header layout. Multi-byte fields are little-endian.
//
//	0x00  u16   whole-file checksum
//	0x02  12B   file magic "ACROSS&DOWN\0"
//	0x0E  u16   CIB checksum (header bytes 0x2C..0x34)
//	0x10  8B    masked checksums
//	0x18  4B    version tag
//	0x1C  u16   reserved
//	0x1E  u16   scrambled checksum (always 0; scrambling unsupported)
//	0x20  12B   reserved
//	0x2C  u8    width
//	0x2D  u8    height
//	0x2E  u16   clue count
//	0x30  u16   bitmask
//	0x32  u16   scrambled tag (always 0)
const headerSize = 0x34

var fileMagic = [12]byte{'A', 'C', 'R', 'O', 'S', 'S', '&', 'D', 'O', 'W', 'N', 0}

// checksumMask obfuscates the four masked checksums: low bytes XOR the first
// half, high bytes XOR the second.
var checksumMask = [8]byte{'I', 'C', 'H', 'E', 'A', 'T', 'E', 'D'}

// packHeader lays out the fixed 52-byte header and fills in all four
// checksums. The whole-file checksum chains CIB, solution, shape and
// metadata; the masked block holds the same four regions each checksummed
// independently from zero.
func packHeader(p *preserialized) []byte {
	hdr := make([]byte, headerSize)
	copy(hdr[0x02:], fileMagic[:])
	copy(hdr[0x18:], p.version[:])
	hdr[0x2C] = p.width
	hdr[0x2D] = p.height
	binary.LittleEndian.PutUint16(hdr[0x2E:], uint16(len(p.clues)))
	// Files in the wild carry 1 here; the published format notes do not explain it.
	binary.LittleEndian.PutUint16(hdr[0x30:], 1)

	cib := checksum(hdr[0x2C:headerSize], 0)
	binary.LittleEndian.PutUint16(hdr[0x0E:], cib)

	file := cib
	file = checksum(p.solution, file)
	file = checksum(p.shape, file)
	file = p.metaChecksum(file)
	binary.LittleEndian.PutUint16(hdr[0x00:], file)

	masked := [4]uint16{
		cib,
		checksum(p.solution, 0),
		checksum(p.shape, 0),
		p.metaChecksum(0),
	}
	for i, sum := range masked {
		hdr[0x10+i] = checksumMask[i] ^ byte(sum)
		hdr[0x14+i] = checksumMask[4+i] ^ byte(sum>>8)
	}
	return hdr
}
