package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/algotrace/pkg/errors"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// =============================================================================
// Envelope - Export Format
// =============================================================================

// Envelope is the serialization format handed to external renderers.
//
// It carries the trace together with what a renderer needs to present it
// without access to this module: the pseudocode listing that Line fields
// refer to and the raw parameters the trace was generated from. ID is a
// random identifier for the export itself; it is not part of the trace and
// is ignored by determinism comparisons.
type Envelope struct {
	ID        string            `json:"id" yaml:"id"`
	Algorithm string            `json:"algorithm" yaml:"algorithm"`
	Category  string            `json:"category,omitempty" yaml:"category,omitempty"`
	Params    map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Listing   []string          `json:"listing,omitempty" yaml:"listing,omitempty"`
	Reordered bool              `json:"reordered,omitempty" yaml:"reordered,omitempty"`
	Steps     []Step            `json:"steps" yaml:"steps"`
}

// NewEnvelope wraps t for export and assigns a fresh ID.
func NewEnvelope(t Trace, category string, params map[string]string, listing []string) Envelope {
	return Envelope{
		ID:        uuid.NewString(),
		Algorithm: t.Algorithm,
		Category:  category,
		Params:    params,
		Listing:   listing,
		Reordered: t.Reordered,
		Steps:     t.Steps,
	}
}

// Trace returns the trace carried by the envelope.
func (e Envelope) Trace() Trace {
	return Trace{Algorithm: e.Algorithm, Steps: e.Steps, Reordered: e.Reordered}
}

// =============================================================================
// Envelope Serialization API
// =============================================================================

// Marshal serializes e in the given format (json or yaml).
func Marshal(e Envelope, format string) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(e, "", "  ")
	case FormatYAML:
		return yaml.Marshal(e)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported export format %q", format)
	}
}

// Unmarshal deserializes an envelope and validates its steps against its
// listing.
func Unmarshal(data []byte, format string) (Envelope, error) {
	var e Envelope
	var err error
	switch format {
	case FormatJSON, "":
		err = json.Unmarshal(data, &e)
	case FormatYAML:
		err = yaml.Unmarshal(data, &e)
	default:
		return Envelope{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported export format %q", format)
	}
	if err != nil {
		return Envelope{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal envelope")
	}

	listingLen := len(e.Listing)
	if listingLen == 0 {
		listingLen = -1
	}
	if err := Validate(e.Steps, listingLen); err != nil {
		return Envelope{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid envelope")
	}
	return e, nil
}

// FormatFromPath infers the export format from a file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// WriteFile writes e to path in the format implied by its extension.
func WriteFile(e Envelope, path string) error {
	data, err := Marshal(e, FormatFromPath(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads an envelope from path.
func ReadFile(path string) (Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Envelope{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data, FormatFromPath(path))
}
