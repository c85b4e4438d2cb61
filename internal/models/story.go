package models

import (
	"fmt"
	"strings"
	"unicode"
)

// Scene is one generated unit of a story. ImageURL stays nil when the
// image step failed and is serialized as null.
type Scene struct {
	Narrative   string  `json:"narrative"`
	Explanation string  `json:"explanation"`
	ImagePrompt string  `json:"image_prompt"`
	ImageURL    *string `json:"image_url"`
}

type Story struct {
	Subject    string  `json:"subject"`
	Topic      string  `json:"topic"`
	Grade      string  `json:"grade"`
	Curriculum string  `json:"curriculum"`
	Outline    string  `json:"outline"`
	Scenes     []Scene `json:"scenes"`
}

// StoryRequest is what a caller asks for. SpecificArea narrows the topic.
type StoryRequest struct {
	Curriculum   string
	Subject      string
	Topic        string
	SpecificArea string
	Grade        string
}

// FullTopic is the topic handed to the seeder and the generator.
func (r StoryRequest) FullTopic() string {
	if r.SpecificArea == "" {
		return r.Topic
	}
	return fmt.Sprintf("%s - %s", r.Topic, r.SpecificArea)
}

// Key identifies a generated story for caching.
func (r StoryRequest) Key() string {
	parts := []string{r.Curriculum, r.Subject, r.Topic}
	if r.SpecificArea != "" {
		parts = append(parts, r.SpecificArea)
	}
	parts = append(parts, r.Grade)
	return strings.Join(parts, "_")
}

// FileName is the download name of the story json. Path separators, spaces
// and characters that are unsafe in file names become underscores.
func (r StoryRequest) FileName() string {
	return strings.Map(fileNameRune, r.Key()) + "_story.json"
}

func fileNameRune(c rune) rune {
	if unicode.IsSpace(c) || unicode.IsControl(c) || strings.ContainsRune(`/\:*?"<>|`, c) {
		return '_'
	}
	return c
}
