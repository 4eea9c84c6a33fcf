package wscodec

import "fmt"

// Marshaler is the capability callers implement to plug their own wire
// format into the codec layer. Marshal and Unmarshal must be pure; the
// resulting codec inherits their determinism.
type Marshaler[T any] interface {
	Marshal(v T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

// FromMarshaler builds a codec for T over either frame kind from a
// Marshaler. Unmarshal failures surface as *DecodeError with the raw
// payload embedded; Marshal failures panic, since encode is total and a
// value the format cannot represent is a programmer error.
func FromMarshaler[T any](name string, m Marshaler[T], kind Kind) FrameCodec[T] {
	marshal := func(v T) []byte {
		b, err := m.Marshal(v)
		if err != nil {
			panic(fmt.Sprintf("wscodec: %s: encode: %v", name, err))
		}
		return b
	}
	unmarshal := func(data []byte) (T, error) {
		v, err := m.Unmarshal(data)
		if err != nil {
			return v, &DecodeError{Codec: name, Input: string(data), Err: err}
		}
		return v, nil
	}
	if kind == KindBinary {
		return Transform(Bytes(), name,
			marshal,
			unmarshal,
		)
	}
	return Transform(Text(), name,
		func(v T) string { return string(marshal(v)) },
		func(s string) (T, error) { return unmarshal([]byte(s)) },
	)
}
