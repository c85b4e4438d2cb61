package story

import (
	"context"
	"fmt"
	"strings"
	"time"

	"story-rag/internal/grades"
	"story-rag/internal/imagegen"
	"story-rag/internal/llmservice"
	"story-rag/internal/metrics"
	"story-rag/internal/models"
	"story-rag/internal/vectorstore"

	"github.com/rs/zerolog/log"
)

const (
	defaultSearchLimit  = 3
	defaultImageSize    = "1024x1024"
	defaultImageQuality = "standard"

	previousSceneChars   = 200
	defaultPromptDescLen = 100
)

type Options struct {
	SearchLimit  int
	ImageSize    string
	ImageQuality string
}

// Generator turns a subject and topic into an illustrated multi-scene story.
type Generator struct {
	chat         llmservice.ChatClient
	images       imagegen.ImageClient
	store        vectorstore.Store
	searchLimit  int
	imageSize    string
	imageQuality string
}

func NewGenerator(chat llmservice.ChatClient, images imagegen.ImageClient, store vectorstore.Store, opts Options) *Generator {
	g := &Generator{
		chat:         chat,
		images:       images,
		store:        store,
		searchLimit:  opts.SearchLimit,
		imageSize:    opts.ImageSize,
		imageQuality: opts.ImageQuality,
	}
	if g.searchLimit <= 0 {
		g.searchLimit = defaultSearchLimit
	}
	if g.imageSize == "" {
		g.imageSize = defaultImageSize
	}
	if g.imageQuality == "" {
		g.imageQuality = defaultImageQuality
	}
	return g
}

// GenerateStoryOutline returns the model's outline text unparsed.
func (g *Generator) GenerateStoryOutline(ctx context.Context, subject, topic, grade, curriculum string) (string, error) {
	p := grades.Story(grade)
	messages := []llmservice.Message{
		{Role: llmservice.RoleSystem, Content: models.OutlineSystemPrompt},
		{Role: llmservice.RoleUser, Content: fmt.Sprintf(models.OutlinePromptTemplate,
			subject, topic, grade, curriculum,
			p.Vocabulary, p.SentenceStructure, p.NarrativeStyle, p.ExplanationDepth)},
	}

	start := time.Now()
	outline, err := g.chat.Complete(ctx, messages, models.CreativeTemperature)
	metrics.ObserveLLM(metrics.OpOutline, start)
	if err != nil {
		return "", fmt.Errorf("failed to generate story outline: %w", err)
	}
	return outline, nil
}

// GenerateScene writes one scene grounded on retrieved knowledge and on the
// narratives of the scenes before it. ImageURL is left nil.
func (g *Generator) GenerateScene(ctx context.Context, subject, topic, sceneDescription, grade string, previous []models.Scene, curriculum string) (models.Scene, error) {
	p := grades.Story(grade)

	related, err := g.store.Search(ctx, fmt.Sprintf("%s %s %s", subject, topic, sceneDescription), g.searchLimit)
	if err != nil {
		return models.Scene{}, fmt.Errorf("failed to retrieve knowledge: %w", err)
	}
	texts := make([]string, len(related))
	for i, r := range related {
		texts[i] = r.Text
	}

	messages := []llmservice.Message{
		{Role: llmservice.RoleSystem, Content: fmt.Sprintf(models.SceneSystemPrompt, grade)},
		{Role: llmservice.RoleUser, Content: fmt.Sprintf(models.ScenePromptTemplate,
			subject, topic, grade, curriculum,
			p.Vocabulary, p.SentenceStructure, p.NarrativeStyle, p.ExplanationDepth,
			sceneDescription, previousContext(previous), strings.Join(texts, "\n"), p.ImageStyle)},
	}

	start := time.Now()
	response, err := g.chat.Complete(ctx, messages, models.CreativeTemperature)
	metrics.ObserveLLM(metrics.OpScene, start)
	if err != nil {
		return models.Scene{}, fmt.Errorf("failed to generate scene: %w", err)
	}

	scene := ParseSceneResponse(response)
	if scene.ImagePrompt == "" {
		scene.ImagePrompt = DefaultImagePrompt(p.ImageStyle, subject, topic, sceneDescription)
	}
	metrics.ScenesGenerated.Inc()
	return scene, nil
}

// DefaultImagePrompt stands in when the model gave no image prompt.
func DefaultImagePrompt(imageStyle, subject, topic, sceneDescription string) string {
	return fmt.Sprintf(models.DefaultImagePromptTemplate, imageStyle, subject, topic, truncate(sceneDescription, defaultPromptDescLen))
}

// GenerateImage returns the URL of one illustration for prompt, or nil when
// the image service fails. Failures are logged, never returned.
func (g *Generator) GenerateImage(ctx context.Context, prompt string) *string {
	if strings.TrimSpace(prompt) == "" {
		log.Warn().Msg("Empty image prompt, using the blank canvas prompt")
		prompt = models.BlankCanvasPrompt
	}

	urls, err := g.images.Generate(ctx, models.TextClarityInstructions+"\n\n"+prompt, g.imageSize, g.imageQuality, 1)
	if err == nil && (len(urls) == 0 || urls[0] == "") {
		err = imagegen.ErrImageGenerationFailed
	}
	if err != nil {
		metrics.ImageFailures.Inc()
		log.Error().Err(err).Msg("Error generating image")
		return nil
	}
	return &urls[0]
}

// GenerateCompleteStory builds the outline, then each scene in order. Every
// scene sees only the scenes completed before it. A failed text completion
// fails the whole story; a failed image only leaves that scene's URL nil.
func (g *Generator) GenerateCompleteStory(ctx context.Context, subject, topic, grade, curriculum string) (*models.Story, error) {
	outline, err := g.GenerateStoryOutline(ctx, subject, topic, grade, curriculum)
	if err != nil {
		return nil, err
	}

	descriptions := SegmentScenes(outline)
	scenes := make([]models.Scene, 0, len(descriptions))
	for i, desc := range descriptions {
		log.Info().Msgf("Generating scene %d/%d...", i+1, len(descriptions))

		// cap == len: appends by the callee cannot reach scenes
		prior := scenes[:len(scenes):len(scenes)]
		scene, err := g.GenerateScene(ctx, subject, topic, desc, grade, prior, curriculum)
		if err != nil {
			return nil, fmt.Errorf("scene %d: %w", i+1, err)
		}
		log.Debug().Str("image_prompt", truncate(scene.ImagePrompt, defaultPromptDescLen)).Msgf("Image prompt for scene %d", i+1)

		scene.ImageURL = g.GenerateImage(ctx, scene.ImagePrompt)
		scenes = append(scenes, scene)
	}

	metrics.StoriesGenerated.Inc()
	return &models.Story{
		Subject:    subject,
		Topic:      topic,
		Grade:      grade,
		Curriculum: curriculum,
		Outline:    outline,
		Scenes:     scenes,
	}, nil
}

func previousContext(previous []models.Scene) string {
	if len(previous) == 0 {
		return ""
	}
	lines := make([]string, len(previous))
	for i, s := range previous {
		lines[i] = fmt.Sprintf("Scene %d: %s...", i+1, truncate(s.Narrative, previousSceneChars))
	}
	return "Previous scenes:\n" + strings.Join(lines, "\n")
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
