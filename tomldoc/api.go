package tomldoc

import "os"

// Loads parses a TOML document held entirely in memory.
func Loads(text []byte) (*File, error) {
	return Parse(text)
}

// Load reads and parses a TOML document from disk.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Dumps serializes f to a string, for callers that would rather not deal
// in []byte.
func Dumps(f *File) string {
	return string(f.Dump())
}

// Dump writes f's serialized form to path, creating it if necessary and
// truncating any existing content.
func Dump(f *File, path string) error {
	return os.WriteFile(path, f.Dump(), 0o644)
}
