package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Job IDs are ULIDs: 26-character Crockford Base32 strings with a
// millisecond timestamp prefix, so IDs sort by creation time. Generated
// locally to keep the dependency surface flat.

var (
	ulidMu  sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

func generateULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	// Timestamp in first 6 bytes (big-endian 48-bit).
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	// Random in remaining 10 bytes, with the sequence embedded in bytes
	// 6-7 so IDs stay unique within the same millisecond.
	rand.Read(b[6:])
	binary.BigEndian.PutUint16(b[6:8], lastSeq)

	return encodeULID(b)
}

// encodeULID packs 128 bits into 26 Crockford characters: the 48-bit
// timestamp becomes 10 characters (the leading one carries 3 bits), the
// 80 random bits become two 40-bit halves of 8 characters each.
func encodeULID(b [16]byte) string {
	var out [26]byte

	ts := uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
	for i := 9; i >= 0; i-- {
		out[i] = crockford[ts&31]
		ts >>= 5
	}

	r1 := uint64(b[6])<<32 | uint64(b[7])<<24 | uint64(b[8])<<16 |
		uint64(b[9])<<8 | uint64(b[10])
	for i := 17; i >= 10; i-- {
		out[i] = crockford[r1&31]
		r1 >>= 5
	}
	r2 := uint64(b[11])<<32 | uint64(b[12])<<24 | uint64(b[13])<<16 |
		uint64(b[14])<<8 | uint64(b[15])
	for i := 25; i >= 18; i-- {
		out[i] = crockford[r2&31]
		r2 >>= 5
	}

	return string(out[:])
}
