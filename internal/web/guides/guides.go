// Package guides serves the markdown guide articles shown under /guides.
//
// Articles ship embedded in the binary. An optional directory override
// replaces the embedded set and is watched for edits so copy changes go live
// without a restart.
package guides

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed content/*.md
var embeddedContent embed.FS

const dateLayout = "2006-01-02"

// Guide is one rendered article.
type Guide struct {
	Slug        string
	Title       string
	Description string
	Date        time.Time
	HTML        string
}

// Library holds the current guide set and renders markdown to HTML.
type Library struct {
	md goldmark.Markdown

	mu      sync.RWMutex
	bySlug  map[string]Guide
	ordered []Guide
}

// NewLibrary loads the embedded guide set.
func NewLibrary() (*Library, error) {
	library := &Library{md: goldmark.New()}
	loaded, err := library.loadFromFS(embeddedContent, "content")
	if err != nil {
		return nil, fmt.Errorf("load embedded guides: %w", err)
	}
	library.replace(loaded)
	return library, nil
}

// LoadDir replaces the guide set with the markdown files in dir.
func (l *Library) LoadDir(dir string) error {
	if l == nil {
		return fmt.Errorf("guide library is not configured")
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return fmt.Errorf("guides directory is required")
	}
	loaded, err := l.loadFromFS(os.DirFS(dir), ".")
	if err != nil {
		return fmt.Errorf("load guides from %s: %w", dir, err)
	}
	l.replace(loaded)
	return nil
}

// All returns the guides sorted newest first.
func (l *Library) All() []Guide {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Guide, len(l.ordered))
	copy(out, l.ordered)
	return out
}

// BySlug returns one guide by slug.
func (l *Library) BySlug(slug string) (Guide, bool) {
	if l == nil {
		return Guide{}, false
	}
	slug = strings.TrimSpace(slug)
	l.mu.RLock()
	defer l.mu.RUnlock()
	guide, ok := l.bySlug[slug]
	return guide, ok
}

func (l *Library) replace(guides []Guide) {
	bySlug := make(map[string]Guide, len(guides))
	for _, guide := range guides {
		bySlug[guide.Slug] = guide
	}
	sort.SliceStable(guides, func(i, j int) bool {
		return guides[i].Date.After(guides[j].Date)
	})

	l.mu.Lock()
	l.bySlug = bySlug
	l.ordered = guides
	l.mu.Unlock()
}

// loadFromFS parses every markdown file under root. A file that fails to
// parse is skipped with an error only when nothing at all loads.
func (l *Library) loadFromFS(fsys fs.FS, root string) ([]Guide, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read guides dir: %w", err)
	}

	var guides []Guide
	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(root, entry.Name()))
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("read guide %s: %w", entry.Name(), err)
			}
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		guide, err := l.parseGuide(slug, raw)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		guides = append(guides, guide)
	}

	if len(guides) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, fmt.Errorf("no guides found")
	}
	return guides, nil
}

type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
}

func (l *Library) parseGuide(slug string, raw []byte) (Guide, error) {
	header, body, err := splitFrontMatter(raw)
	if err != nil {
		return Guide{}, fmt.Errorf("guide %s: %w", slug, err)
	}

	var meta frontMatter
	if err := yaml.Unmarshal(header, &meta); err != nil {
		return Guide{}, fmt.Errorf("guide %s front matter: %w", slug, err)
	}
	meta.Title = strings.TrimSpace(meta.Title)
	if meta.Title == "" {
		return Guide{}, fmt.Errorf("guide %s: title is required", slug)
	}

	guide := Guide{
		Slug:        slug,
		Title:       meta.Title,
		Description: strings.TrimSpace(meta.Description),
	}
	if dateValue := strings.TrimSpace(meta.Date); dateValue != "" {
		date, err := time.Parse(dateLayout, dateValue)
		if err != nil {
			return Guide{}, fmt.Errorf("guide %s date: %w", slug, err)
		}
		guide.Date = date
	}

	var rendered bytes.Buffer
	if err := l.md.Convert(body, &rendered); err != nil {
		return Guide{}, fmt.Errorf("render guide %s: %w", slug, err)
	}
	guide.HTML = rendered.String()
	return guide, nil
}

// splitFrontMatter separates the leading `---` block from the markdown body.
func splitFrontMatter(raw []byte) (header []byte, body []byte, err error) {
	content := string(raw)
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return nil, nil, fmt.Errorf("missing front matter")
	}
	rest := content[strings.Index(content, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated front matter")
	}
	header = []byte(rest[:end])
	body = []byte(rest[end+len("\n---"):])
	if i := strings.Index(string(body), "\n"); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return header, body, nil
}
