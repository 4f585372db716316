// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wrappers implements the big-endian, length-prefixed binary framing
// used by every canonical byte form in this module (spec.md §4.1). It
// mirrors the shape of avalanchego's utils/wrappers.Packer: a single struct
// carrying a byte buffer, a cursor, and a sticky error, so a long chain of
// Pack calls can be checked once at the end instead of after every call.
package wrappers

import (
	"encoding/binary"
	"errors"
)

const (
	ByteLen  = 1
	ShortLen = 2
	IntLen   = 4
	LongLen  = 8

	// MaxSliceLen bounds length-prefixed reads so a corrupt or hostile buffer
	// can't make Unpack allocate an unbounded slice.
	MaxSliceLen = 1 << 24
)

var (
	ErrInvalidLength   = errors.New("invalid length")
	ErrTruncatedBuffer = errors.New("truncated buffer")
	ErrNegativeOffset  = errors.New("negative offset")
)

// Packer both writes to and reads from Bytes, tracking Offset and the first
// error encountered so callers can chain calls and check Err once.
type Packer struct {
	Bytes  []byte
	Offset int
	Err    error
}

func NewPacker(size int) *Packer {
	return &Packer{Bytes: make([]byte, 0, size)}
}

func NewReader(b []byte) *Packer {
	return &Packer{Bytes: b}
}

func (p *Packer) checkSpace(n int) bool {
	if p.Err != nil {
		return false
	}
	if p.Offset+n > len(p.Bytes) {
		p.Err = ErrTruncatedBuffer
		return false
	}
	return true
}

func (p *Packer) expand(n int) {
	if p.Err != nil {
		return
	}
	needed := p.Offset + n
	if needed <= len(p.Bytes) {
		return
	}
	newBytes := make([]byte, needed)
	copy(newBytes, p.Bytes)
	p.Bytes = newBytes
}

func (p *Packer) PackByte(b byte) {
	p.expand(ByteLen)
	if p.Err != nil {
		return
	}
	p.Bytes[p.Offset] = b
	p.Offset += ByteLen
}

func (p *Packer) UnpackByte() byte {
	if !p.checkSpace(ByteLen) {
		return 0
	}
	b := p.Bytes[p.Offset]
	p.Offset += ByteLen
	return b
}

func (p *Packer) PackShort(v uint16) {
	p.expand(ShortLen)
	if p.Err != nil {
		return
	}
	binary.BigEndian.PutUint16(p.Bytes[p.Offset:], v)
	p.Offset += ShortLen
}

func (p *Packer) UnpackShort() uint16 {
	if !p.checkSpace(ShortLen) {
		return 0
	}
	v := binary.BigEndian.Uint16(p.Bytes[p.Offset:])
	p.Offset += ShortLen
	return v
}

func (p *Packer) PackInt(v uint32) {
	p.expand(IntLen)
	if p.Err != nil {
		return
	}
	binary.BigEndian.PutUint32(p.Bytes[p.Offset:], v)
	p.Offset += IntLen
}

func (p *Packer) UnpackInt() uint32 {
	if !p.checkSpace(IntLen) {
		return 0
	}
	v := binary.BigEndian.Uint32(p.Bytes[p.Offset:])
	p.Offset += IntLen
	return v
}

func (p *Packer) PackLong(v uint64) {
	p.expand(LongLen)
	if p.Err != nil {
		return
	}
	binary.BigEndian.PutUint64(p.Bytes[p.Offset:], v)
	p.Offset += LongLen
}

func (p *Packer) UnpackLong() uint64 {
	if !p.checkSpace(LongLen) {
		return 0
	}
	v := binary.BigEndian.Uint64(p.Bytes[p.Offset:])
	p.Offset += LongLen
	return v
}

// PackFixedBytes writes b verbatim, with no length prefix - used for
// fixed-width fields such as a 32-byte asset ID or 20-byte address.
func (p *Packer) PackFixedBytes(b []byte) {
	p.expand(len(b))
	if p.Err != nil {
		return
	}
	copy(p.Bytes[p.Offset:], b)
	p.Offset += len(b)
}

func (p *Packer) UnpackFixedBytes(n int) []byte {
	if !p.checkSpace(n) {
		return nil
	}
	b := make([]byte, n)
	copy(b, p.Bytes[p.Offset:p.Offset+n])
	p.Offset += n
	return b
}

// PackBytes writes a u32 length prefix followed by b, per spec.md §4.1
// "Variable byte strings".
func (p *Packer) PackBytes(b []byte) {
	p.PackInt(uint32(len(b)))
	p.PackFixedBytes(b)
}

func (p *Packer) UnpackBytes() []byte {
	length := p.UnpackInt()
	if p.Err != nil {
		return nil
	}
	if length > MaxSliceLen {
		p.Err = ErrInvalidLength
		return nil
	}
	return p.UnpackFixedBytes(int(length))
}

// PackCount writes a u32 sequence count, per spec.md §4.1 "Variable
// sequences".
func (p *Packer) PackCount(count int) {
	p.PackInt(uint32(count))
}

func (p *Packer) UnpackCount() int {
	count := p.UnpackInt()
	if p.Err != nil {
		return 0
	}
	if uint64(count) > MaxSliceLen {
		p.Err = ErrInvalidLength
		return 0
	}
	return int(count)
}
