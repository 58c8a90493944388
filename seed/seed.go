// Package seed holds the built-in portfolio data compiled into the binary.
// It is the fallback whenever a persistence backend has nothing usable,
// and the artifact the development save endpoint regenerates.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"devfolio/models"
)

//go:embed seed.json
var raw []byte

// Document is the on-disk shape of the seed artifact.
type Document struct {
	UserProfile models.UserProfile `json:"userProfile"`
	Projects    []models.Project   `json:"projects"`
}

var embedded Document

func init() {
	doc, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded seed.json is invalid: %v", err))
	}
	embedded = doc
}

// Parse decodes a seed artifact.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse seed document: %w", err)
	}
	return doc, nil
}

// Encode renders a seed artifact the way the save endpoint writes it.
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode seed document: %w", err)
	}
	return append(data, '\n'), nil
}

// Profile returns the built-in user profile.
func Profile() models.UserProfile {
	p := embedded.UserProfile
	p.Skills = append([]string(nil), p.Skills...)
	return p
}

// Projects returns a fresh copy of the built-in project list.
func Projects() []models.Project {
	out := make([]models.Project, len(embedded.Projects))
	for i, p := range embedded.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out[i] = p
	}
	return out
}
