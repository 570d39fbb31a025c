// Package topics serves the hardcoded Business Planning & Management
// course. The content is an embedded fixture, not a persisted entity;
// it is validated against a JSON schema once at first load.
package topics

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ModuleName is the progress-record module key for this course.
const ModuleName = "business_planning"

//go:embed content.json
var contentJSON []byte

// Exercise is a single four-option practice question. CorrectAnswer is
// a 1-based index into Options.
type Exercise struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// IsCorrect reports whether the 1-based answer matches.
func (e Exercise) IsCorrect(answer int) bool {
	return answer == e.CorrectAnswer
}

// Topic is one lesson: a description, ordered key points, and exactly
// one exercise.
type Topic struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	KeyPoints   []string `json:"key_points"`
	Exercise    Exercise `json:"exercise"`
}

type fixture struct {
	Topics []Topic `json:"topics"`
}

var (
	loadOnce sync.Once
	loaded   []Topic
	loadErr  error
)

// All returns every topic ordered by ID.
func All() ([]Topic, error) {
	loadOnce.Do(func() {
		loaded, loadErr = load()
	})
	return loaded, loadErr
}

// ByID returns the topic with the given id, or nil if none exists.
func ByID(id int) (*Topic, error) {
	all, err := All()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func load() ([]Topic, error) {
	if err := validate(contentJSON); err != nil {
		return nil, fmt.Errorf("topic fixture: %w", err)
	}

	var f fixture
	if err := json.Unmarshal(contentJSON, &f); err != nil {
		return nil, fmt.Errorf("parse topic fixture: %w", err)
	}

	sort.Slice(f.Topics, func(i, j int) bool { return f.Topics[i].ID < f.Topics[j].ID })
	return f.Topics, nil
}

func validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://business-planning-topics.json"
	if err := c.AddResource(schemaURL, fixtureSchema); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
