package quiz

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"math/rand/v2"
	"path"
	"slices"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Order controls the play order of a difficulty's entries.
type Order string

const (
	// OrderSorted sorts entries by name, then by path.
	OrderSorted Order = "sorted"
	// OrderShuffled shuffles entries with LoadOptions.Seed.
	OrderShuffled Order = "shuffled"
	// OrderFilesystem keeps the directory listing order. fs.ReadDir lists
	// entries by file name.
	OrderFilesystem Order = "filesystem"
)

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	switch o {
	case OrderSorted, OrderShuffled, OrderFilesystem:
		return true
	}
	return false
}

// LoadOptions configures LoadCatalog.
type LoadOptions struct {
	// Extensions lists accepted file extensions, including the dot.
	// Matching is case-insensitive. Defaults to ".png".
	Extensions []string
	Order      Order
	Seed       uint64
}

// DefaultLoadOptions returns the options used when nothing is configured.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Extensions: []string{".png"},
		Order:      OrderSorted,
	}
}

// EntryName derives the expected answer from a file name: the extension is
// stripped and the rest lower-cased.
func EntryName(fileName string) string {
	base := path.Base(fileName)
	return strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
}

// LoadCatalog scans one folder per difficulty tag in fsys and decodes every
// image file it finds. A missing or empty folder yields no entries for that
// difficulty. Files that cannot be decoded are skipped and reported through
// Catalog.Skipped.
func LoadCatalog(fsys fs.FS, opts LoadOptions, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("catalog")
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultLoadOptions().Extensions
	}
	if !opts.Order.Valid() {
		opts.Order = OrderSorted
	}

	c := &Catalog{entries: make(map[Difficulty][]CarEntry)}
	for _, d := range Difficulties() {
		entries, skipped := loadDifficulty(fsys, d, opts, log)
		orderEntries(entries, opts)
		if len(entries) > 0 {
			c.entries[d] = entries
		}
		c.skipped = append(c.skipped, skipped...)

		log.Info("loaded images for difficulty level",
			zap.String("difficulty", string(d)),
			zap.Int("count", len(entries)),
			zap.Strings("names", c.Names(d)),
		)
	}
	return c
}

func loadDifficulty(fsys fs.FS, d Difficulty, opts LoadOptions, log *zap.Logger) ([]CarEntry, []SkippedFile) {
	dir := string(d)
	dirEntries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		log.Debug("difficulty folder unavailable", zap.String("dir", dir), zap.Error(err))
		return nil, nil
	}

	var entries []CarEntry
	var skipped []SkippedFile
	for _, de := range dirEntries {
		p := path.Join(dir, de.Name())
		if !hasExtension(de.Name(), opts.Extensions) || !isRegularFile(fsys, p, de) {
			continue
		}
		name := EntryName(de.Name())
		if name == "" {
			log.Warn("skipping image without a name", zap.String("path", p))
			skipped = append(skipped, SkippedFile{Difficulty: d, Path: p, Err: ErrEmptyEntryName})
			continue
		}
		img, err := decodeImage(fsys, p)
		if err != nil {
			log.Warn("skipping unreadable image", zap.String("path", p), zap.Error(err))
			skipped = append(skipped, SkippedFile{Difficulty: d, Path: p, Err: err})
			continue
		}
		entries = append(entries, CarEntry{Image: img, Name: name, Path: p})
	}
	return entries, skipped
}

// isRegularFile reports whether de is a regular file. Symlinks are followed.
func isRegularFile(fsys fs.FS, p string, de fs.DirEntry) bool {
	if de.Type()&fs.ModeSymlink == 0 {
		return de.Type().IsRegular()
	}
	info, err := fs.Stat(fsys, p)
	return err == nil && info.Mode().IsRegular()
}

func decodeImage(fsys fs.FS, p string) (image.Image, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}
	return img, nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func orderEntries(entries []CarEntry, opts LoadOptions) {
	switch opts.Order {
	case OrderSorted:
		slices.SortStableFunc(entries, func(a, b CarEntry) int {
			if c := strings.Compare(a.Name, b.Name); c != 0 {
				return c
			}
			return strings.Compare(a.Path, b.Path)
		})
	case OrderShuffled:
		r := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
		r.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
	}
}
