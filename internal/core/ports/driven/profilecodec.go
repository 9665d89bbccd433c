package driven

import "github.com/custodia-labs/pizza-cli/internal/core/domain"

// ProfileCodec reads and writes profile files.
// The file format is chosen by the implementation, typically by extension.
type ProfileCodec interface {
	// Read loads a profile from path. Fields absent from the file keep
	// their value from base.
	Read(path string, base domain.Profile) (*domain.Profile, error)

	// Write stores a profile at path, replacing any existing file.
	Write(path string, profile *domain.Profile) error
}
