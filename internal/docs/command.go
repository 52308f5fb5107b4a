package docs

import (
	"encoding/json"
	"fmt"
	"io"
)

// CommandDoc is the scraped record for one documented command. Name and URL
// are set at discovery time and never change; the extractor fills Brief and
// Synopsis later. Description and Options are reserved and remain null in
// the output.
type CommandDoc struct {
	Name        string   `json:"name"`
	Brief       *string  `json:"brief"`
	Synopsis    []string `json:"synopsis"`
	Description *string  `json:"description"`
	Options     *string  `json:"options"`
	URL         string   `json:"url"`
}

// New builds a CommandDoc from the command index. Both fields are required;
// a record without a name or page URL is never serialized.
func New(name, url string) *CommandDoc {
	return &CommandDoc{Name: name, URL: url}
}

// Encode writes the whole scrape as one indented JSON array.
func Encode(w io.Writer, cmds []*CommandDoc) error {
	for _, c := range cmds {
		if c.Name == "" || c.URL == "" {
			return fmt.Errorf("refusing to serialize incomplete record (name=%q url=%q)", c.Name, c.URL)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cmds); err != nil {
		return fmt.Errorf("encode commands: %w", err)
	}
	return nil
}

// Decode reads back a document produced by Encode.
func Decode(r io.Reader) ([]*CommandDoc, error) {
	var cmds []*CommandDoc
	if err := json.NewDecoder(r).Decode(&cmds); err != nil {
		return nil, fmt.Errorf("decode commands: %w", err)
	}
	return cmds, nil
}
