package quiz

import (
	"image"
)

// CarEntry is one logo image and the brand name expected for it.
type CarEntry struct {
	Image image.Image
	Name  string
	// Path is the catalog-relative file path the entry was loaded from.
	Path string
}

// SkippedFile records a file that matched an image extension but could not be
// read or decoded, or whose name yields no brand name.
type SkippedFile struct {
	Difficulty Difficulty
	Path       string
	Err        error
}

// Catalog maps each difficulty to its ordered entries.
// It is immutable once built.
type Catalog struct {
	entries map[Difficulty][]CarEntry
	skipped []SkippedFile
}

// NewCatalog builds a catalog from in-memory entries. Unknown difficulty keys
// are ignored.
func NewCatalog(entries map[Difficulty][]CarEntry) *Catalog {
	c := &Catalog{entries: make(map[Difficulty][]CarEntry, len(entries))}
	for d, list := range entries {
		if !d.Valid() {
			continue
		}
		c.entries[d] = append([]CarEntry(nil), list...)
	}
	return c
}

// Entries returns a copy of the entries for d. The result is empty, never an
// error, when the difficulty has no content.
func (c *Catalog) Entries(d Difficulty) []CarEntry {
	if c == nil {
		return nil
	}
	list := c.entries[d]
	if len(list) == 0 {
		return nil
	}
	return append([]CarEntry(nil), list...)
}

// Names returns the expected answers for d in play order.
func (c *Catalog) Names(d Difficulty) []string {
	entries := c.Entries(d)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries for d.
func (c *Catalog) Len(d Difficulty) int {
	if c == nil {
		return 0
	}
	return len(c.entries[d])
}

// Skipped lists files that were ignored while loading.
func (c *Catalog) Skipped() []SkippedFile {
	if c == nil {
		return nil
	}
	return append([]SkippedFile(nil), c.skipped...)
}
