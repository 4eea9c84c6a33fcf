package wscodec

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Form converts URL-encoded key/value pairs to and from text frames using
// the default UTF-8 charset. Text that is not valid form syntax yields a
// *DecodeError with the input embedded.
func Form() FrameCodec[url.Values] {
	return formCodec("form", nil)
}

// FormCharset is Form with payload characters converted through the named
// encoding (looked up by its WHATWG/IANA label, e.g. "iso-8859-1").
// Unknown labels are rejected here rather than at encode time. Runes the
// charset cannot represent are substituted on encode.
func FormCharset(charset string) (FrameCodec[url.Values], error) {
	cs, err := htmlindex.Get(charset)
	if err != nil {
		return FrameCodec[url.Values]{}, fmt.Errorf("form charset %q: %w", charset, err)
	}
	return formCodec("form("+charset+")", cs), nil
}

func formCodec(name string, cs encoding.Encoding) FrameCodec[url.Values] {
	return Transform(Text(), name,
		func(v url.Values) string { return encodeForm(v, cs) },
		func(s string) (url.Values, error) {
			v, err := decodeForm(s, cs)
			if err != nil {
				return nil, &DecodeError{Codec: name, Input: s, Err: err}
			}
			return v, nil
		},
	)
}

// encodeForm mirrors url.Values.Encode (sorted keys, value order kept) with
// an optional charset conversion applied before percent-escaping.
func encodeForm(v url.Values, cs encoding.Encoding) string {
	var conv *encoding.Encoder
	if cs != nil {
		// Fresh encoder per call: transformers carry state and codecs must
		// stay safe for concurrent use.
		conv = encoding.ReplaceUnsupported(cs.NewEncoder())
	}
	escape := func(s string) string {
		if conv != nil {
			if out, err := conv.String(s); err == nil {
				s = out
			}
		}
		return url.QueryEscape(s)
	}
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		ek := escape(k)
		for _, val := range v[k] {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(ek)
			sb.WriteByte('=')
			sb.WriteString(escape(val))
		}
	}
	return sb.String()
}

func decodeForm(s string, cs encoding.Encoding) (url.Values, error) {
	raw, err := url.ParseQuery(s)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return raw, nil
	}
	dec := cs.NewDecoder()
	out := make(url.Values, len(raw))
	for k, vals := range raw {
		dk, err := dec.String(k)
		if err != nil {
			return nil, err
		}
		for _, val := range vals {
			dv, err := dec.String(val)
			if err != nil {
				return nil, err
			}
			out[dk] = append(out[dk], dv)
		}
	}
	return out, nil
}
