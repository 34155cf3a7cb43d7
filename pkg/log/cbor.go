package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// A trace file is a bare concatenation of CBOR records, one Event each.
// Records are shallow integer-keyed maps, so decoding caps nesting and
// container sizes and a corrupt length header fails instead of allocating.
const (
	maxRecordDepth = 4
	maxRecordPairs = 32
	maxRecordItems = 16
)

var (
	recordEnc cbor.EncMode
	recordDec cbor.DecMode
)

func init() {
	enc, err := cbor.EncOptions{
		Sort:        cbor.SortCoreDeterministic,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace record encoder: %v", err))
	}

	dec, err := cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxNestedLevels:  maxRecordDepth,
		MaxMapPairs:      maxRecordPairs,
		MaxArrayElements: maxRecordItems,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("trace record decoder: %v", err))
	}

	recordEnc, recordDec = enc, dec
}

// EncodeEvent returns the trace record for event.
func EncodeEvent(event Event) ([]byte, error) {
	return recordEnc.Marshal(event)
}

// DecodeEvent parses exactly one trace record.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := recordDec.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("decode trace record: %w", err)
	}
	return event, nil
}

// NewEncoder returns a stream encoder appending records to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return recordEnc.NewEncoder(w)
}

// NewDecoder returns a stream decoder reading successive records from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return recordDec.NewDecoder(r)
}
