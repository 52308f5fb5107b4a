package extract

import (
	"regexp"
	"strings"
)

// Fields holds what the extractor could pull out of one normalized manual
// page. A nil field means the corresponding pattern did not match.
type Fields struct {
	Brief    *string
	Synopsis []string
}

// Diag receives extraction misses. A miss is expected and recoverable;
// it must never abort a run. Implementations route it to whatever
// operator-visible stream the caller uses.
type Diag interface {
	Miss(command, field string)
}

// NopDiag discards all misses.
type NopDiag struct{}

func (NopDiag) Miss(command, field string) {}

// ExtractFields applies the brief and synopsis patterns against normalized
// body text. The two extractions are independent: a missing brief does not
// prevent synopsis extraction and vice versa.
func ExtractFields(name, text string, diag Diag) Fields {
	if diag == nil {
		diag = NopDiag{}
	}
	var f Fields
	if brief, ok := extractBrief(name, text); ok {
		f.Brief = &brief
	} else {
		diag.Miss(name, "brief")
	}
	if syn, ok := extractSynopsis(name, text); ok {
		f.Synopsis = syn
	} else {
		diag.Miss(name, "synopsis")
	}
	return f
}

// extractBrief captures the text between the command-name heading and the
// next line starting with "Synopsis". The class matches the characters that
// occur in one-line command summaries; newlines inside the capture are
// flattened to spaces.
func extractBrief(name, text string) (string, bool) {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name) + `\n([\d\w.()-/ '\n]*)\nSynopsis`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.ReplaceAll(m[1], "\n", " "), true
}

// extractSynopsis captures the block between the "Synopsis" heading and the
// "Description" heading, then splits it on the literal command name. Each
// fragment is one invocation's argument list; the name itself is the
// delimiter and never part of a fragment.
func extractSynopsis(name, text string) ([]string, bool) {
	re := regexp.MustCompile(`(?is)Synopsis\n(` + regexp.QuoteMeta(name) + `.+?)[\n ]+Description`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	var out []string
	for _, frag := range strings.Split(m[1], name) {
		frag = strings.TrimSpace(strings.ReplaceAll(frag, "\n", " "))
		if frag == "" {
			continue
		}
		out = append(out, frag)
	}
	return out, true
}
