package dur

import (
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Duration marshals as its canonical string. For wire formats that want
// the raw integer instead, declare the field as Nanos.

func (d Duration) MarshalText() ([]byte, error) {
	return d.Append(nil), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := ParseBytes(b)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

var _ msgpack.CustomEncoder = (*Duration)(nil)

func (d Duration) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(d.String())
}

var _ msgpack.CustomDecoder = (*Duration)(nil)

func (d *Duration) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	switch {
	case code == msgpcode.Nil:
		*d = 0
		return dec.DecodeNil()
	case msgpcode.IsString(code) || msgpcode.IsBin(code):
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		*d, err = Parse(s)
		return err
	default:
		n, err := dec.DecodeInt64()
		*d = Duration(n)
		return err
	}
}

// Nanos is a Duration that marshals as its plain signed nanosecond
// count. Selecting it per field is the explicit opt-in to the raw
// encoding; nothing is inferred from the payload.
type Nanos Duration

func (v Nanos) Dur() Duration {
	return Duration(v)
}

func (v Nanos) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(v), 10), nil
}

func (v *Nanos) UnmarshalJSON(b []byte) error {
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("raw nanosecond duration: %w", err)
	}
	*v = Nanos(n)
	return nil
}

var _ msgpack.CustomEncoder = (*Nanos)(nil)

func (v Nanos) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeInt64(int64(v))
}

var _ msgpack.CustomDecoder = (*Nanos)(nil)

func (v *Nanos) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeInt64()
	*v = Nanos(n)
	return err
}
