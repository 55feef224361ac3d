package ctjson

// nameHash32 is a murmur3 (x86_32) finalizer-based hash, used to give
// every schema member name a deterministic 32-bit fingerprint at
// registration time (spec §4.4). No dependency in the retrieved corpus
// ships a murmur3 implementation, and the spec only requires "any stable
// 32-bit hash" with build-time collision detection — so this is a small,
// self-contained, deterministic port of the well-known public algorithm
// rather than a wrapped third-party library.
func nameHash32(name string) uint32 {
	const (
		c1 = 0xcc9e2d51
		c2 = 0x1b873593
		seed = 0
	)

	var h uint32 = seed
	n := len(name)
	nblocks := n / 4

	for i := 0; i < nblocks; i++ {
		k := uint32(name[i*4]) | uint32(name[i*4+1])<<8 | uint32(name[i*4+2])<<16 | uint32(name[i*4+3])<<24
		k *= c1
		k = (k << 15) | (k >> 17)
		k *= c2

		h ^= k
		h = (h << 13) | (h >> 19)
		h = h*5 + 0xe6546b64
	}

	var k1 uint32
	tail := name[nblocks*4:]
	switch len(tail) {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1
		k1 = (k1 << 15) | (k1 >> 17)
		k1 *= c2
		h ^= k1
	}

	h ^= uint32(n)
	// finalizer (fmix32)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
