// Package sink writes search results as JSON.
package sink

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
)

// Format selects the JSON framing of the result stream.
type Format string

const (
	// FormatNDJSON writes one service object per line.
	FormatNDJSON Format = "ndjson"
	// FormatArray writes a single JSON array.
	FormatArray Format = "array"
	// FormatEnvelope writes {"services":[...],"identifier":"..."}.
	FormatEnvelope Format = "envelope"
)

// ParseFormat validates a format name. The empty string selects FormatNDJSON.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case "":
		return FormatNDJSON, nil
	case FormatNDJSON, FormatArray, FormatEnvelope:
		return f, nil
	default:
		return "", zerr.With(domain.ErrUnknownFormat, "format", name)
	}
}

type envelope struct {
	Services   []domain.Service `json:"services"`
	Identifier string           `json:"identifier"`
}

// Sink encodes one result set per call.
type Sink struct {
	w          io.Writer
	format     Format
	identifier string
}

// New creates a Sink. identifier is only emitted by FormatEnvelope.
func New(w io.Writer, format Format, identifier string) *Sink {
	return &Sink{w: w, format: format, identifier: identifier}
}

// Write encodes services followed by a newline.
// An empty result is an empty stream for FormatNDJSON and "[]" for FormatArray.
func (s *Sink) Write(services []domain.Service) error {
	if services == nil {
		services = []domain.Service{}
	}

	bw := bufio.NewWriter(s.w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	var err error
	switch s.format {
	case FormatArray:
		err = enc.Encode(services)
	case FormatEnvelope:
		err = enc.Encode(envelope{Services: services, Identifier: s.identifier})
	default:
		for _, svc := range services {
			if err = enc.Encode(svc); err != nil {
				break
			}
		}
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Open returns the destination for results: the file at path, or fallback
// when path is empty. Closing the fallback is a no-op.
func Open(path string, fallback io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{fallback}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputOpenFailed.Error()), "path", path)
	}
	//nolint:gosec // Output path is chosen by the caller
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputOpenFailed.Error()), "path", path)
	}
	return f, nil
}
