package docs

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	brief := "Display information about jobs in queue."
	in := []*CommandDoc{
		{
			Name:     "condor_q",
			Brief:    &brief,
			Synopsis: []string{"[-debug]", "-all"},
			URL:      "https://research.cs.wisc.edu/htcondor/manual/current/condor_q.html",
		},
		New("condor_hold", "https://research.cs.wisc.edu/htcondor/manual/current/condor_hold.html"),
	}

	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d records, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].Name != in[i].Name || out[i].URL != in[i].URL {
			t.Fatalf("record %d: name/url mismatch: %+v vs %+v", i, out[i], in[i])
		}
		if (out[i].Brief == nil) != (in[i].Brief == nil) {
			t.Fatalf("record %d: brief presence mismatch", i)
		}
		if in[i].Brief != nil && *out[i].Brief != *in[i].Brief {
			t.Fatalf("record %d: brief mismatch %q vs %q", i, *out[i].Brief, *in[i].Brief)
		}
		if !reflect.DeepEqual(out[i].Synopsis, in[i].Synopsis) {
			t.Fatalf("record %d: synopsis mismatch %v vs %v", i, out[i].Synopsis, in[i].Synopsis)
		}
		if out[i].Description != nil || out[i].Options != nil {
			t.Fatalf("record %d: reserved fields must stay null", i)
		}
	}
}

func TestEncode_ExactKeysAndNulls(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []*CommandDoc{New("condor_rm", "https://example.org/condor_rm.html")}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected one object, got %d", len(raw))
	}
	for _, key := range []string{"name", "brief", "synopsis", "description", "options", "url"} {
		if _, ok := raw[0][key]; !ok {
			t.Fatalf("missing key %q in %s", key, buf.String())
		}
	}
	if len(raw[0]) != 6 {
		t.Fatalf("expected exactly 6 keys, got %d", len(raw[0]))
	}
	for _, key := range []string{"brief", "synopsis", "description", "options"} {
		if string(raw[0][key]) != "null" {
			t.Fatalf("expected %q to be null, got %s", key, raw[0][key])
		}
	}
	// Human-readable output: encoder writes multi-line indented JSON.
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("expected indented output, got %s", buf.String())
	}
}

func TestEncode_RejectsIncompleteRecord(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []*CommandDoc{{Name: "condor_q"}}); err == nil {
		t.Fatalf("expected error for record without url")
	}
}
