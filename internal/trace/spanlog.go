package trace

import (
	"io"

	"github.com/tinylib/msgp/msgp"
)

// SpanRecord is one per-stage diagnostic record of spec.md §6: `{stage,
// start, end, value, source}`.
type SpanRecord struct {
	Stage  string
	Start  int
	End    int
	Value  string
	Source string
}

// SpanTracer appends SpanRecords to an underlying writer as a MessagePack
// stream, one map per record, with no intervening framing: readers decode
// records back-to-back until EOF. Nothing in the pipeline or the commands
// writes to a SpanTracer; the TRACE_SPANS toggle does not enable it.
//
// SpanTracer hand-encodes each record with msgp's low-level Writer rather
// than a generated Marshaler, since this module has no msgp codegen step;
// the wire format is identical to what `msgp -io` would produce for a
// struct with these five fields in this order.
type SpanTracer struct {
	w *msgp.Writer
}

// NewSpanTracer wraps w for appending.
func NewSpanTracer(w io.Writer) *SpanTracer {
	return &SpanTracer{w: msgp.NewWriter(w)}
}

// Write appends one record and flushes the underlying msgp.Writer so a
// crash mid-run loses at most the record in flight.
func (t *SpanTracer) Write(r SpanRecord) error {
	if err := t.w.WriteMapHeader(5); err != nil {
		return err
	}
	fields := []struct {
		key string
		val interface{}
	}{
		{"stage", r.Stage},
		{"start", r.Start},
		{"end", r.End},
		{"value", r.Value},
		{"source", r.Source},
	}
	for _, f := range fields {
		if err := t.w.WriteString(f.key); err != nil {
			return err
		}
		switch v := f.val.(type) {
		case string:
			if err := t.w.WriteString(v); err != nil {
				return err
			}
		case int:
			if err := t.w.WriteInt(v); err != nil {
				return err
			}
		}
	}
	return t.w.Flush()
}

// SpanReader decodes a stream written by SpanTracer.
type SpanReader struct {
	r *msgp.Reader
}

// NewSpanReader wraps r for sequential reads.
func NewSpanReader(r io.Reader) *SpanReader {
	return &SpanReader{r: msgp.NewReader(r)}
}

// Next decodes the next record, returning io.EOF when the stream is
// exhausted.
func (s *SpanReader) Next() (SpanRecord, error) {
	var rec SpanRecord
	n, err := s.r.ReadMapHeader()
	if err != nil {
		return rec, err
	}
	for i := uint32(0); i < n; i++ {
		key, err := s.r.ReadString()
		if err != nil {
			return rec, err
		}
		switch key {
		case "stage":
			rec.Stage, err = s.r.ReadString()
		case "start":
			rec.Start, err = s.r.ReadInt()
		case "end":
			rec.End, err = s.r.ReadInt()
		case "value":
			rec.Value, err = s.r.ReadString()
		case "source":
			rec.Source, err = s.r.ReadString()
		default:
			err = s.r.Skip()
		}
		if err != nil {
			return rec, err
		}
	}
	return rec, nil
}
