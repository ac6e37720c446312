package wordfreq

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// msgpackReader decodes the subset of MessagePack used by the wordfreq data
// files into nil, bool, int64, uint64, float64, string, []byte, []any and
// map[any]any values.
type msgpackReader struct {
	r *bufio.Reader
}

func newMsgpackReader(r io.Reader) *msgpackReader {
	return &msgpackReader{r: bufio.NewReader(r)}
}

func (d *msgpackReader) value() (any, error) {
	tag, err := d.r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("failed to read msgpack tag: %w", err)
	}
	switch {
	case tag <= 0x7f:
		return int64(tag), nil
	case tag >= 0xe0:
		return int64(int8(tag)), nil
	case tag&0xe0 == 0xa0:
		return d.str(int(tag & 0x1f))
	case tag&0xf0 == 0x90:
		return d.array(int(tag & 0x0f))
	case tag&0xf0 == 0x80:
		return d.dict(int(tag & 0x0f))
	}

	switch tag {
	case 0xc0:
		return nil, nil
	case 0xc2:
		return false, nil
	case 0xc3:
		return true, nil
	case 0xc4, 0xc5, 0xc6:
		n, err := d.length(tag - 0xc4)
		if err != nil {
			return nil, err
		}
		return d.bytes(n)
	case 0xca:
		b, err := d.bytes(4)
		if err != nil {
			return nil, err
		}
		return float64(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case 0xcb:
		b, err := d.bytes(8)
		if err != nil {
			return nil, err
		}
		return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
	case 0xcc, 0xcd, 0xce, 0xcf:
		return d.readUint(1 << (tag - 0xcc))
	case 0xd0, 0xd1, 0xd2, 0xd3:
		return d.readInt(1 << (tag - 0xd0))
	case 0xd9, 0xda, 0xdb:
		n, err := d.length(tag - 0xd9)
		if err != nil {
			return nil, err
		}
		return d.str(n)
	case 0xdc, 0xdd:
		n, err := d.length(tag - 0xdc + 1)
		if err != nil {
			return nil, err
		}
		return d.array(n)
	case 0xde, 0xdf:
		n, err := d.length(tag - 0xde + 1)
		if err != nil {
			return nil, err
		}
		return d.dict(n)
	}
	return nil, fmt.Errorf("unsupported msgpack tag 0x%02x", tag)
}

// length reads a big-endian length of 1, 2 or 4 bytes for size class 0, 1 or 2.
func (d *msgpackReader) length(class byte) (int, error) {
	v, err := d.readUint(1 << class)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func (d *msgpackReader) readUint(size int) (uint64, error) {
	b, err := d.bytes(size)
	if err != nil {
		return 0, err
	}
	switch size {
	case 1:
		return uint64(b[0]), nil
	case 2:
		return uint64(binary.BigEndian.Uint16(b)), nil
	case 4:
		return uint64(binary.BigEndian.Uint32(b)), nil
	default:
		return binary.BigEndian.Uint64(b), nil
	}
}

func (d *msgpackReader) readInt(size int) (int64, error) {
	v, err := d.readUint(size)
	if err != nil {
		return 0, err
	}
	switch size {
	case 1:
		return int64(int8(v)), nil
	case 2:
		return int64(int16(v)), nil
	case 4:
		return int64(int32(v)), nil
	default:
		return int64(v), nil
	}
}

func (d *msgpackReader) bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, fmt.Errorf("failed to read msgpack payload: %w", err)
	}
	return buf, nil
}

func (d *msgpackReader) str(n int) (string, error) {
	b, err := d.bytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *msgpackReader) array(n int) ([]any, error) {
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (d *msgpackReader) dict(n int) (map[any]any, error) {
	out := make(map[any]any, n)
	for i := 0; i < n; i++ {
		k, err := d.value()
		if err != nil {
			return nil, err
		}
		v, err := d.value()
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
