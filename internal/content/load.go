// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported content format")

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Load reads an invitation from path. The format follows the extension:
// .toml, .yaml/.yml or .json (comments allowed). Missing sections are
// taken from Default and the result is validated.
func Load(path string) (*Invitation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	inv := &Invitation{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, inv); err != nil {
			return nil, fmt.Errorf("failed to decode TOML content: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, inv); err != nil {
			return nil, fmt.Errorf("failed to decode YAML content: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), inv); err != nil {
			return nil, fmt.Errorf("failed to decode JSON content: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	inv.fillDefaults()
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return inv, nil
}

// LoadOrDefault returns Default when path is empty and Load otherwise.
func LoadOrDefault(path string) (*Invitation, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// ValidationError describes one problem in an invitation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate requires a title and well-formed HH:MM event times.
func (inv *Invitation) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(inv.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "must not be empty"})
	}
	if inv.Highlight != "" && !strings.Contains(inv.Title, inv.Highlight) {
		errs = append(errs, ValidationError{Field: "highlight", Message: "must be part of the title"})
	}
	for i, ev := range inv.Timeline {
		field := fmt.Sprintf("timeline[%d]", i)
		if !timePattern.MatchString(ev.Time) {
			errs = append(errs, ValidationError{Field: field + ".time", Message: fmt.Sprintf("%q is not HH:MM", ev.Time)})
		}
		if strings.TrimSpace(ev.Title) == "" {
			errs = append(errs, ValidationError{Field: field + ".title", Message: "must not be empty"})
		}
	}
	for i, item := range inv.FAQ {
		if strings.TrimSpace(item.Question) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("faq[%d].question", i), Message: "must not be empty"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
