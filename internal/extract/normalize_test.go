package extract

import "testing"

func TestNormalize_CollapsesBlankLines(t *testing.T) {
	got := Normalize("condor_q\n\n\nDoes a thing.\n\nSynopsis")
	want := "condor_q\nDoes a thing.\nSynopsis"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalize_StripsLeadingAndTrailingLineWhitespace(t *testing.T) {
	got := Normalize("Synopsis\n   condor_q -a  \n  Description")
	want := "Synopsis\ncondor_q -a\nDescription"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalize_NonBreakingSpaces(t *testing.T) {
	got := Normalize("head\n  indented\nbody \ntail")
	want := "head\nindented\nbody\ntail"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"a\n\n\nb\n  c  \nd",
		"\n\n   x   \n\ny\n",
		"already\nclean\ntext",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
