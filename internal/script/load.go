package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// Format identifies a script file encoding
type Format string

const (
	FormatYAML       Format = "yaml"
	FormatProperties Format = "properties"
)

// ErrUnsupportedFormat is returned for files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported script format")

// propertiesStepKey is the key layout of steps in .properties files
const propertiesStepKey = "step.%d.%s"

// FormatForPath picks the format from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".properties", ".props":
		return FormatProperties, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads and validates a script file
func Load(path string) (*Script, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	sc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes and validates a script
func Parse(data []byte, format Format) (*Script, error) {
	var (
		sc  *Script
		err error
	)
	switch format {
	case FormatYAML:
		sc, err = parseYAML(data)
	case FormatProperties:
		sc, err = parseProperties(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

type yamlScript struct {
	Name  string     `yaml:"name"`
	Steps []yamlStep `yaml:"steps"`
}

type yamlStep struct {
	At       string  `yaml:"at"`
	Action   string  `yaml:"action"`
	Value    float64 `yaml:"value"`
	Duration string  `yaml:"duration"`
}

func parseYAML(data []byte) (*Script, error) {
	var raw yamlScript
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	sc := &Script{Name: raw.Name, Steps: make([]Step, 0, len(raw.Steps))}
	for i, rs := range raw.Steps {
		step, err := buildStep(rs.At, rs.Action, rs.Value, rs.Duration)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc, nil
}

// parseProperties reads steps from contiguous step.N.* keys starting at 0.
func parseProperties(data []byte) (*Script, error) {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("invalid properties: %w", err)
	}

	sc := &Script{Name: p.GetString("name", "")}
	for i := 0; ; i++ {
		action, ok := p.Get(fmt.Sprintf(propertiesStepKey, i, "action"))
		if !ok {
			break
		}
		at := p.GetString(fmt.Sprintf(propertiesStepKey, i, "at"), "")
		duration := p.GetString(fmt.Sprintf(propertiesStepKey, i, "duration"), "")

		var value float64
		if text, ok := p.Get(fmt.Sprintf(propertiesStepKey, i, "value")); ok {
			value, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil {
				return nil, fmt.Errorf("step %d: invalid value %q: %w", i, text, err)
			}
		}

		step, err := buildStep(at, action, value, duration)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		sc.Steps = append(sc.Steps, step)
	}
	return sc, nil
}

func buildStep(at, action string, value float64, duration string) (Step, error) {
	a, err := ParseAction(action)
	if err != nil {
		return Step{}, err
	}
	offset, err := parseDuration(at)
	if err != nil {
		return Step{}, fmt.Errorf("invalid offset: %w", err)
	}
	length, err := parseDuration(duration)
	if err != nil {
		return Step{}, fmt.Errorf("invalid duration: %w", err)
	}
	return Step{At: offset, Action: a, Value: value, Duration: length}, nil
}

// parseDuration accepts Go durations ("1.5s", "200ms") or bare seconds ("1.5").
// Empty text is zero.
func parseDuration(text string) (time.Duration, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	if seconds, err := strconv.ParseFloat(text, 64); err == nil {
		return time.Duration(seconds * float64(time.Second)), nil
	}
	return time.ParseDuration(text)
}
