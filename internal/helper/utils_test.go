package helper

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"story-rag/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "stories", "nested")
	req := models.StoryRequest{Curriculum: "IB", Subject: "Physics", Topic: "Gravity", Grade: "grade_6"}
	story := &models.Story{Subject: "Physics", Topic: "Gravity", Grade: "grade_6", Curriculum: "IB", Scenes: []models.Scene{{Narrative: "n"}}}

	path, err := WriteJSON(dir, req.FileName(), story)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "IB_Physics_Gravity_grade_6_story.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got models.Story
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *story, got)
}

func TestWriteJSON_TopicWithSlash(t *testing.T) {
	dir := t.TempDir()
	req := models.StoryRequest{Curriculum: "IB", Subject: "Physics", Topic: "Forces/Motion", Grade: "grade_6"}

	path, err := WriteJSON(dir, req.FileName(), &models.Story{Topic: req.Topic})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "IB_Physics_Forces_Motion_grade_6_story.json"), path)
	assert.FileExists(t, path)
}

func TestCreateFolder_FileInTheWay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.Error(t, CreateFolder(filepath.Join(file, "sub")))
}
