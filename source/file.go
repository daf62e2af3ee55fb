package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/santa/types"
)

// File implements a roster source backed by a YAML file.
//
// The file is read on every LoadRoster call, so edits are picked up by the
// next group built from the source.
//
// Example file:
//
//	participants: [Sheldon, Amy, Leonard, Penny, Rajesh]
//	mutualExclusions:
//	  - {a: Sheldon, b: Amy}
//	  - {a: Sheldon, b: Leonard}
//	directedExclusions:
//	  - {from: Leonard, to: Penny}
type File struct {
	path string
}

var _ types.RosterSource = (*File)(nil)

// NewFile creates a roster source reading the YAML file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the roster file path.
func (f *File) Path() string {
	return f.path
}

// LoadRoster reads and decodes the roster file.
//
// Parameters:
//   - ctx: Context checked before the file is read
//
// Returns:
//   - types.Roster: Decoded roster
//   - error: Context error, or an error wrapping ErrInvalidRoster
func (f *File) LoadRoster(ctx context.Context) (types.Roster, error) {
	if err := ctx.Err(); err != nil {
		return types.Roster{}, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return types.Roster{}, fmt.Errorf("%w: %w", types.ErrInvalidRoster, err)
	}

	roster, err := Parse(bytes.NewReader(data))
	if err != nil {
		return types.Roster{}, fmt.Errorf("%s: %w", f.path, err)
	}

	return roster, nil
}

// Parse decodes a YAML roster.
//
// Decoding is strict: unknown fields are rejected so that a typo such as
// "mutualExclusion" does not silently drop every exclusion.
//
// Parameters:
//   - r: YAML input
//
// Returns:
//   - types.Roster: Decoded roster
//   - error: Error wrapping ErrInvalidRoster for empty or malformed input
func Parse(r io.Reader) (types.Roster, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var roster types.Roster
	if err := dec.Decode(&roster); err != nil {
		if errors.Is(err, io.EOF) {
			return types.Roster{}, fmt.Errorf("%w: empty document", types.ErrInvalidRoster)
		}

		return types.Roster{}, fmt.Errorf("%w: %w", types.ErrInvalidRoster, err)
	}

	return roster, nil
}
