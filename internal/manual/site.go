package manual

import (
	"fmt"

	"github.com/hyperifyio/condordocs/internal/fetch"
)

// DefaultBaseURL is the root of the online HTCondor manual.
const DefaultBaseURL = "https://research.cs.wisc.edu/htcondor/manual"

// Site addresses one manual installation. BaseURL is overridable so tests
// can point at a local server.
type Site struct {
	BaseURL string
	Client  *fetch.Client
}

func (s *Site) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return DefaultBaseURL
}

// RootURL returns the manual root for a version, with trailing slash.
func (s *Site) RootURL(version string) string {
	return fmt.Sprintf("%s/%s/", s.baseURL(), CheckVersionString(version))
}

// CommandIndexURL returns the command reference chapter for a version.
func (s *Site) CommandIndexURL(version string) string {
	return fmt.Sprintf("%s/%s/11_Command_Reference.html", s.baseURL(), CheckVersionString(version))
}
