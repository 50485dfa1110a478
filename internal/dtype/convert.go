package dtype

import (
	"encoding/binary"
	"math"
)

// DecodeSlice interprets buf as n elements of type T in the given byte
// order. buf must hold at least n*Size bytes; the caller checks sizes
// before conversion. Complex elements are stored as a (real, imaginary)
// float32 pair.
func DecodeSlice[T Element](buf []byte, n int, order binary.ByteOrder) []T {
	out := make([]T, n)
	switch dst := any(out).(type) {
	case []uint8:
		copy(dst, buf[:n])
	case []int16:
		for i := range dst {
			dst[i] = int16(order.Uint16(buf[2*i:]))
		}
	case []int32:
		for i := range dst {
			dst[i] = int32(order.Uint32(buf[4*i:]))
		}
	case []float32:
		for i := range dst {
			dst[i] = math.Float32frombits(order.Uint32(buf[4*i:]))
		}
	case []float64:
		for i := range dst {
			dst[i] = math.Float64frombits(order.Uint64(buf[8*i:]))
		}
	case []complex64:
		for i := range dst {
			re := math.Float32frombits(order.Uint32(buf[8*i:]))
			im := math.Float32frombits(order.Uint32(buf[8*i+4:]))
			dst[i] = complex(re, im)
		}
	case []uint16:
		for i := range dst {
			dst[i] = order.Uint16(buf[2*i:])
		}
	case []uint32:
		for i := range dst {
			dst[i] = order.Uint32(buf[4*i:])
		}
	case []int64:
		for i := range dst {
			dst[i] = int64(order.Uint64(buf[8*i:]))
		}
	case []uint64:
		for i := range dst {
			dst[i] = order.Uint64(buf[8*i:])
		}
	}
	return out
}

// EncodeSlice renders src as raw bytes in the given byte order.
func EncodeSlice[T Element](src []T, order binary.ByteOrder) []byte {
	size := FromKind(KindOf[T]()).Size
	buf := make([]byte, len(src)*size)
	switch s := any(src).(type) {
	case []uint8:
		copy(buf, s)
	case []int16:
		for i, v := range s {
			order.PutUint16(buf[2*i:], uint16(v))
		}
	case []int32:
		for i, v := range s {
			order.PutUint32(buf[4*i:], uint32(v))
		}
	case []float32:
		for i, v := range s {
			order.PutUint32(buf[4*i:], math.Float32bits(v))
		}
	case []float64:
		for i, v := range s {
			order.PutUint64(buf[8*i:], math.Float64bits(v))
		}
	case []complex64:
		for i, v := range s {
			order.PutUint32(buf[8*i:], math.Float32bits(real(v)))
			order.PutUint32(buf[8*i+4:], math.Float32bits(imag(v)))
		}
	case []uint16:
		for i, v := range s {
			order.PutUint16(buf[2*i:], v)
		}
	case []uint32:
		for i, v := range s {
			order.PutUint32(buf[4*i:], v)
		}
	case []int64:
		for i, v := range s {
			order.PutUint64(buf[8*i:], uint64(v))
		}
	case []uint64:
		for i, v := range s {
			order.PutUint64(buf[8*i:], v)
		}
	}
	return buf
}

// NativeOrder returns the host's byte order together with its ENVI
// byte-order code (0 little, 1 big).
func NativeOrder() (binary.ByteOrder, int) {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	if probe[0] == 1 {
		return binary.NativeEndian, 0
	}
	return binary.NativeEndian, 1
}
