package wscodec

import (
	"fmt"

	cbor "github.com/fxamacker/cbor/v2"
)

type cborMarshaler[T any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func (m cborMarshaler[T]) Marshal(v T) ([]byte, error) { return m.enc.Marshal(v) }

func (m cborMarshaler[T]) Unmarshal(data []byte) (T, error) {
	var v T
	err := m.dec.Unmarshal(data, &v)
	return v, err
}

// CBOR converts values of T to and from binary frames holding their
// deterministic CBOR encoding (RFC 8949 core profile). Decoding a text
// frame is a mismatch; bytes that are not valid CBOR for T yield a
// *DecodeError.
func CBOR[T any]() (FrameCodec[T], error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return FrameCodec[T]{}, err
	}
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return FrameCodec[T]{}, err
	}
	name := fmt.Sprintf("cbor[%T]", *new(T))
	return FromMarshaler[T](name, cborMarshaler[T]{enc: em, dec: dm}, KindBinary), nil
}
