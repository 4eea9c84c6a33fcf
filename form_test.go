package wscodec

import (
	"errors"
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func TestFormRoundTrip(t *testing.T) {
	c := Form()
	want := url.Values{
		"a": {"1", "2"},
		"b": {"x y"},
	}
	f := c.Encode(want)
	if f.Kind != KindText {
		t.Fatalf("encode: got kind %s", f.Kind)
	}
	if f.Text != "a=1&a=2&b=x+y" {
		t.Fatalf("encode: got %q", f.Text)
	}
	got, ok, err := c.Decode(f)
	if err != nil || !ok || !reflect.DeepEqual(got, want) {
		t.Fatalf("decode: got %v ok=%v err=%v", got, ok, err)
	}
}

func TestFormMalformedRaises(t *testing.T) {
	const input = "a=%zz"
	_, ok, err := Form().Decode(TextFrame(input))
	if ok || err == nil {
		t.Fatalf("bad escape: ok=%v err=%v, want error", ok, err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error %T is not a *DecodeError", err)
	}
	if !strings.Contains(err.Error(), input) {
		t.Fatalf("error %q does not contain offending input", err)
	}
}

func TestFormBinaryFrameIsAbsent(t *testing.T) {
	_, ok, err := Form().Decode(BinaryFrame([]byte("a=1")))
	if ok || err != nil {
		t.Fatalf("binary frame: ok=%v err=%v, want absent", ok, err)
	}
}

func TestFormCharset(t *testing.T) {
	c, err := FormCharset("iso-8859-1")
	if err != nil {
		t.Fatalf("charset: %v", err)
	}
	want := url.Values{"name": {"café"}}
	f := c.Encode(want)
	if f.Text != "name=caf%E9" {
		t.Fatalf("encode: got %q", f.Text)
	}
	got, ok, err := c.Decode(f)
	if err != nil || !ok || !reflect.DeepEqual(got, want) {
		t.Fatalf("decode: got %v ok=%v err=%v", got, ok, err)
	}
}

func TestFormCharsetUnknown(t *testing.T) {
	if _, err := FormCharset("no-such-charset"); err == nil {
		t.Fatal("unknown charset accepted")
	}
}
