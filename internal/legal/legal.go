// Package legal loads the privacy policy and terms of service documents
// and renders them for the terminal.
package legal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when neither the .mdx nor the .md file exists.
var ErrNotFound = errors.New("legal document not found")

// Kind identifies a legal document.
type Kind int

const (
	Privacy Kind = iota
	Terms
)

// Kinds lists every document kind in display order.
var Kinds = []Kind{Privacy, Terms}

// Title is the human-readable document name.
func (k Kind) Title() string {
	switch k {
	case Privacy:
		return "Privacy Policy"
	case Terms:
		return "Terms of Service"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Slug is the base file name of the document.
func (k Kind) Slug() string {
	switch k {
	case Privacy:
		return "privacy-policy"
	case Terms:
		return "terms-of-service"
	default:
		return ""
	}
}

// ParseKind maps a command-line name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "privacy", "privacy-policy":
		return Privacy, nil
	case "terms", "tos", "terms-of-service":
		return Terms, nil
	default:
		return 0, fmt.Errorf("unknown legal document %q: want privacy or terms", s)
	}
}

// Document is a loaded legal document. Body is plain markdown.
type Document struct {
	Kind Kind
	Path string
	Body string
}

// Load reads <dir>/<slug>.mdx, falling back to <slug>.md.
func Load(dir string, kind Kind) (*Document, error) {
	for _, ext := range []string{".mdx", ".md"} {
		path := filepath.Join(dir, kind.Slug()+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		body := string(data)
		if ext == ".mdx" {
			body = StripMDX(body)
		}
		return &Document{Kind: kind, Path: path, Body: body}, nil
	}
	return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, kind.Title(), dir)
}

// LoadAll loads every document kind concurrently.
func LoadAll(ctx context.Context, dir string) (map[Kind]*Document, error) {
	docs := make([]*Document, len(Kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range Kinds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := Load(dir, kind)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Kind]*Document, len(docs))
	for _, d := range docs {
		out[d.Kind] = d
	}
	return out, nil
}

// StripMDX drops top-level ESM import/export lines so an MDX file can be
// rendered as markdown. Fenced code blocks are left untouched.
func StripMDX(src string) string {
	var b strings.Builder
	inFence := false

	sc := bufio.NewScanner(strings.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
		}
		if !inFence && (strings.HasPrefix(line, "import ") || strings.HasPrefix(line, "export ")) {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimLeft(b.String(), "\n")
}
