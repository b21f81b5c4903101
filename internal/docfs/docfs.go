// Package docfs serves a documentation tree from the local filesystem:
// directory listings restricted to Markdown content, and file reads with
// encoding normalization. All paths are relative to a fixed root and may
// not escape it.
package docfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Sentinel conditions surfaced to the view layer. Callers classify with
// errors.Is.
var (
	ErrNotFound    = errors.New("path not found")
	ErrOutsideRoot = errors.New("path escapes documentation root")
	ErrNotMarkdown = errors.New("not a markdown file")
)

// EntryType distinguishes folders from files in a listing.
type EntryType string

const (
	TypeFolder EntryType = "folder"
	TypeFile   EntryType = "file"
)

// Entry is one node of a directory listing. Path is slash-separated and
// relative to the root; it doubles as the entry's stable identity.
type Entry struct {
	ID        string
	Name      string
	Type      EntryType
	Path      string
	UpdatedAt time.Time
	Size      int64
	Children  []Entry
}

// Document is the raw content of one Markdown file, normalized to UTF-8.
type Document struct {
	Text    string
	ModTime time.Time
	Size    int64
}

// Root serves listings and reads under a single directory.
type Root struct {
	dir string
}

// New creates a Root rooted at dir. dir must exist and be a directory.
func New(dir string) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &Root{dir: abs}, nil
}

// Dir returns the absolute root directory.
func (r *Root) Dir() string { return r.dir }

// List returns the tree of Markdown entries under rel, folders before files
// and each group sorted case-insensitively by name. Hidden entries,
// non-Markdown files and folders holding no Markdown anywhere beneath them
// are excluded.
func (r *Root) List(rel string) ([]Entry, error) {
	abs, err := r.resolve(rel)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a file", ErrNotFound, rel)
	}

	return r.listDir(abs)
}

func (r *Root) listDir(abs string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	var folders, files []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		full := filepath.Join(abs, name)
		relPath, err := filepath.Rel(r.dir, full)
		if err != nil {
			continue
		}
		slashPath := filepath.ToSlash(relPath)

		info, err := de.Info()
		if err != nil {
			continue
		}

		if de.IsDir() {
			children, err := r.listDir(full)
			if err != nil {
				return nil, err
			}
			// Folders with no markdown anywhere beneath them would render
			// as dead leaves in the sidebar.
			if len(children) == 0 {
				continue
			}
			folders = append(folders, Entry{
				ID:        slashPath,
				Name:      name,
				Type:      TypeFolder,
				Path:      slashPath,
				UpdatedAt: info.ModTime(),
				Children:  children,
			})
			continue
		}

		if !IsMarkdown(name) {
			continue
		}
		files = append(files, Entry{
			ID:        slashPath,
			Name:      name,
			Type:      TypeFile,
			Path:      slashPath,
			UpdatedAt: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sortEntries(folders)
	sortEntries(files)
	return append(folders, files...), nil
}

// Read returns the content of the Markdown file at rel.
func (r *Root) Read(rel string) (Document, error) {
	if !IsMarkdown(rel) {
		return Document{}, fmt.Errorf("%w: %s", ErrNotMarkdown, rel)
	}

	abs, err := r.resolve(rel)
	if err != nil {
		return Document{}, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		return Document{}, err
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("%w: %s is a directory", ErrNotFound, rel)
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Text:    normalizeText(raw),
		ModTime: info.ModTime(),
		Size:    info.Size(),
	}, nil
}

// Abs maps a relative entry path to its absolute location, applying the
// same traversal guard as List and Read.
func (r *Root) Abs(rel string) (string, error) {
	return r.resolve(rel)
}

// resolve maps rel onto the filesystem and rejects any path that would
// land outside the root.
func (r *Root) resolve(rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, rel)
	}

	abs := filepath.Clean(filepath.Join(r.dir, cleaned))
	if abs != r.dir && !strings.HasPrefix(abs, r.dir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, rel)
	}
	return abs, nil
}

// IsMarkdown reports whether name carries a Markdown extension.
func IsMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if a == b {
			return entries[i].Name < entries[j].Name
		}
		return a < b
	})
}
