package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidContent is wrapped by every parse or validation failure.
var ErrInvalidContent = errors.New("invalid content")

// Format is the encoding of a content file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FormatFor picks the format from a file extension. Unknown extensions are
// treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads, decodes and validates a content file.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	c, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates content in the given format.
func Parse(data []byte, format Format) (*Content, error) {
	var c Content
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidContent, format)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks field constraints and reports every violation at once.
func Validate(c *Content) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(msgs, "; "))
}
