// Package cache persists walk results as length-prefixed binary records.
//
// A cache file is a plain concatenation of frames. Every frame is a 4-byte
// big-endian payload length followed by that many payload bytes. There is no
// header, trailer or checksum; an empty file is a cache miss.
package cache

import (
	"encoding/binary"
	"math"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
)

// PrefixSize is the width of the length prefix in bytes.
const PrefixSize = 4

// MaxPayloadSize is the largest payload a frame can carry.
const MaxPayloadSize = math.MaxUint32

// AppendFrame appends the framed payload to dst.
func AppendFrame(dst, payload []byte) ([]byte, error) {
	if uint64(len(payload)) > MaxPayloadSize {
		return dst, zerr.With(domain.ErrRecordTooLarge, "size", len(payload))
	}
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(payload)))
	return append(dst, payload...), nil
}

// NextFrame splits the first frame off data.
// It returns the payload and the remaining bytes. A prefix or payload cut short
// yields domain.ErrCacheCorrupt.
func NextFrame(data []byte) (payload, rest []byte, err error) {
	if len(data) < PrefixSize {
		return nil, data, zerr.With(domain.ErrCacheCorrupt, "reason", "truncated length prefix")
	}
	size := uint64(binary.BigEndian.Uint32(data))
	data = data[PrefixSize:]
	if size > uint64(len(data)) {
		return nil, data, zerr.With(zerr.With(domain.ErrCacheCorrupt, "reason", "truncated payload"), "want", size)
	}
	return data[:size], data[size:], nil
}
