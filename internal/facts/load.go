package facts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Event groups the fact bundles of several stack frames of one captured event.
type Event struct {
	EventID string
	Frames  []Bundle
}

type eventFile struct {
	EventID string       `json:"eventId" toml:"event_id"`
	Frames  []bundleFile `json:"frames" toml:"frames"`
}

// Load reads a single fact bundle from a .json or .toml file.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facts file: %w", err)
	}

	var raw bundleFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.Decode(string(data), &raw)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if err := checkRequiredTOML(path, meta); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse JSON: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported facts file extension %q (expected .json or .toml)", path, ext)
	}

	bundle, err := raw.toBundle()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &bundle, nil
}

// LoadEvent reads a multi-frame event export. A JSON file without a "frames"
// array (or a TOML file without [[frames]]) is treated as a single-frame event.
func LoadEvent(path string) (*Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facts file: %w", err)
	}

	var raw eventFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: failed to parse JSON: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported facts file extension %q (expected .json or .toml)", path, ext)
	}

	if len(raw.Frames) == 0 {
		bundle, err := Load(path)
		if err != nil {
			return nil, err
		}
		return &Event{EventID: raw.EventID, Frames: []Bundle{*bundle}}, nil
	}

	ev := &Event{EventID: raw.EventID, Frames: make([]Bundle, 0, len(raw.Frames))}
	for i, frame := range raw.Frames {
		bundle, err := frame.toBundle()
		if err != nil {
			return nil, fmt.Errorf("%s: frame %d: %w", path, i, err)
		}
		ev.Frames = append(ev.Frames, bundle)
	}
	return ev, nil
}

// checkRequiredTOML rejects TOML bundles that silently omit the enum fields:
// for booleans a zero value is meaningful, for the enums it is not.
func checkRequiredTOML(path string, meta toml.MetaData) error {
	required := [][]string{
		{"sdk_debug_id_support"},
		{"source_file_release_name_fetching_result"},
		{"source_map_release_name_fetching_result"},
	}
	for _, key := range required {
		if !meta.IsDefined(key...) {
			return fmt.Errorf("%s: missing %s", path, strings.Join(key, "."))
		}
	}
	return nil
}
