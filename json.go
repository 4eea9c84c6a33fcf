package wscodec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONValue converts raw JSON documents to and from text frames. Encode
// renders the compact form; Decode validates syntax and returns the
// compacted document. Malformed text yields a *DecodeError carrying the
// input, never a silent mismatch.
func JSONValue() FrameCodec[json.RawMessage] {
	const name = "json"
	return Transform(Text(), name,
		func(v json.RawMessage) string {
			var buf bytes.Buffer
			if err := json.Compact(&buf, v); err != nil {
				// Encoding a document that was never valid JSON is a
				// programmer error, same as marshaling an unsupported type.
				panic(fmt.Sprintf("wscodec: %s: encode invalid document: %v", name, err))
			}
			return buf.String()
		},
		func(s string) (json.RawMessage, error) {
			var buf bytes.Buffer
			if err := json.Compact(&buf, []byte(s)); err != nil {
				return nil, &DecodeError{Codec: name, Input: s, Err: err}
			}
			return json.RawMessage(buf.Bytes()), nil
		},
	)
}

// JSON converts values of T to and from text frames holding their JSON
// form. It is derived from JSONValue, so syntax errors surface with the
// json codec name and shape errors with T's codec name; both embed the
// offending input. Encode panics if T cannot be marshaled (an unsupported
// Go type is a programmer error, not an input error).
func JSON[T any]() FrameCodec[T] {
	name := fmt.Sprintf("json[%T]", *new(T))
	return Transform(JSONValue(), name,
		func(v T) json.RawMessage {
			b, err := json.Marshal(v)
			if err != nil {
				panic(fmt.Sprintf("wscodec: %s: encode: %v", name, err))
			}
			return b
		},
		func(raw json.RawMessage) (T, error) {
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				return v, &DecodeError{Codec: name, Input: string(raw), Err: err}
			}
			return v, nil
		},
	)
}
