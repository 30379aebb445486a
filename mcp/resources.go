package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/lvillar/proposal/compose"
	"github.com/lvillar/proposal/fee"
	"github.com/lvillar/proposal/pageops"
)

// RegisterResources adds the proposal resources to s. Resources use the
// proposal:// scheme; parameterized ones take a query string.
func RegisterResources(s *Server) {
	s.AddResource(Resource{
		URI:         "proposal://sections",
		Name:        "Proposal sections",
		Description: "Every optional section in reading order with its form fields and default fee.",
		MIMEType:    "application/json",
		Handler: func(_ context.Context, uri string) ([]ResourceContent, error) {
			return jsonContent(uri, compose.Catalog())
		},
	})

	s.AddResource(Resource{
		URI:         "proposal://frequencies",
		Name:        "Billing frequencies",
		Description: "The cadences frequency labels resolve to and how many times a year each is charged.",
		MIMEType:    "application/json",
		Handler:     handleFrequencies,
	})

	s.AddResource(Resource{
		URI:         "proposal://pages",
		Name:        "PDF page count",
		Description: "Page count of a PDF file. Pass the path as a query parameter: proposal://pages?path=/path/to/file.pdf",
		MIMEType:    "application/json",
		Handler:     handlePages,
	})
}

// baseURI strips the query string used by parameterized resources.
func baseURI(uri string) string {
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		return uri[:i]
	}
	return uri
}

func handleFrequencies(_ context.Context, uri string) ([]ResourceContent, error) {
	type cadence struct {
		Name      string `json:"name"`
		PerYear   int64  `json:"perYear"`
		Recurring bool   `json:"recurring"`
	}
	var out []cadence
	for _, f := range []fee.Frequency{fee.OneTime, fee.Monthly, fee.Quarterly, fee.Annual, fee.Unrecognized} {
		out = append(out, cadence{Name: f.String(), PerYear: f.PerYear(), Recurring: f.Recurring()})
	}
	return jsonContent(uri, out)
}

func handlePages(_ context.Context, uri string) ([]ResourceContent, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("parsing uri: %w", err)
	}
	path := u.Query().Get("path")
	if path == "" {
		return nil, fmt.Errorf("missing 'path' parameter in URI")
	}
	n, err := pageops.FilePageCount(path)
	if err != nil {
		return nil, err
	}
	return jsonContent(uri, map[string]any{"path": path, "pages": n})
}

func jsonContent(uri string, v any) ([]ResourceContent, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/json", Text: string(data)}}, nil
}
