package models

const (
	MarkerNarrative   = "NARRATIVE:"
	MarkerExplanation = "EXPLANATION:"
	MarkerImagePrompt = "IMAGE_PROMPT:"

	DefaultGrade      = "grade_6"
	DefaultCurriculum = "General"

	// Temperatures for factual and creative completions.
	FactualTemperature  = 0.3
	CreativeTemperature = 0.7
)

// SceneMarkerPrefixes start a new scene when an outline line begins with one.
var SceneMarkerPrefixes = []string{"Scene", "Chapter", "Part"}

var (
	// KnowledgeSystemPrompt: %[1]s grade
	KnowledgeSystemPrompt = `You are a knowledgeable educator who can explain complex topics clearly to %[1]s level students.`

	// KnowledgePromptTemplate:
	// %[1]d num chunks, %[2]s subject, %[3]s topic, %[4]s grade, %[5]s curriculum,
	// %[6]s complexity, %[7]s vocabulary, %[8]s chunk length, %[9]s examples
	KnowledgePromptTemplate = `Generate %[1]d detailed knowledge chunks about %[2]s focusing on %[3]s, tailored for %[4]s level students following %[5]s curriculum.

Please follow these grade-appropriate guidelines:
- Complexity: %[6]s
- Vocabulary: %[7]s
- Length: %[8]s
- Examples: %[9]s

Each chunk should explain a specific aspect of the topic in a way that's educational, factual, and engaging for %[4]s level students.
Ensure the content aligns with %[5]s curriculum standards where applicable.

Format: Return each chunk as a separate paragraph with a clear focus.
`

	OutlineSystemPrompt = `You are a creative storyteller who creates educational and engaging stories tailored to specific grade levels.`

	// OutlinePromptTemplate:
	// %[1]s subject, %[2]s topic, %[3]s grade, %[4]s curriculum,
	// %[5]s vocabulary, %[6]s sentence structure, %[7]s narrative style, %[8]s explanation depth
	OutlinePromptTemplate = `Create a detailed story outline about %[1]s focusing on %[2]s, tailored for %[3]s level students following the %[4]s curriculum.

Please follow these grade-appropriate guidelines:
- Vocabulary: %[5]s
- Sentence structure: %[6]s
- Narrative style: %[7]s
- Explanation depth: %[8]s

The outline should include:
1. A clear introduction to the subject
2. Key scenes or chapters that will explore different aspects of the topic
3. A logical flow between scenes
4. A conclusion that summarizes the key learnings

Ensure the content aligns with %[4]s curriculum standards for %[3]s level.
Format the outline with clear scene divisions.
`

	// SceneSystemPrompt: %[1]s grade
	SceneSystemPrompt = `You are a creative storyteller who creates educational and engaging stories with vivid descriptions tailored for %[1]s level students.`

	// ScenePromptTemplate:
	// %[1]s subject, %[2]s topic, %[3]s grade, %[4]s curriculum,
	// %[5]s vocabulary, %[6]s sentence structure, %[7]s narrative style, %[8]s explanation depth,
	// %[9]s scene description, %[10]s previous scenes, %[11]s related info, %[12]s image style
	ScenePromptTemplate = `Create a detailed scene for a story about %[1]s focusing on %[2]s, tailored for %[3]s level students following the %[4]s curriculum.

Please follow these grade-appropriate guidelines:
- Vocabulary: %[5]s
- Sentence structure: %[6]s
- Narrative style: %[7]s
- Explanation depth: %[8]s

Scene description: %[9]s

%[10]s

Related background information:
%[11]s

For this scene, provide:
1. A narrative text (300-500 words) that is engaging, educational, and explains concepts clearly at a %[3]s level
2. An explanatory section that elaborates on the key concepts or facts presented in this scene, appropriate for %[3]s level students
3. An image prompt that describes what should be visualized for this scene (detailed description for image generation) with a style appropriate for %[3]s level: %[12]s

For the image prompt, follow these guidelines:
- Keep text in the image to an absolute minimum (3-5 words maximum)
- Any text should be simple labels or short titles only
- Don't request decorative or stylized text
- Be specific about what content should be visualized rather than focusing on text elements

Ensure the content aligns with %[4]s curriculum standards for %[3]s level.

Format your response as:
NARRATIVE: [narrative text]
EXPLANATION: [explanatory text]
IMAGE_PROMPT: [detailed image prompt]
`

	// DefaultImagePromptTemplate: %[1]s image style, %[2]s subject, %[3]s topic, %[4]s scene description
	DefaultImagePromptTemplate = `A %[1]s depicting %[2]s focusing on %[3]s, specifically %[4]s`

	BlankCanvasPrompt = `An educational illustration with a blank canvas, representing a missing image prompt.`

	TextClarityInstructions = `IMPORTANT INSTRUCTIONS FOR TEXT RENDERING:
- Any text in the image must be crystal clear, large, and easily readable
- Use a clear, bold font with high contrast against the background
- Avoid stylized or decorative text that might be difficult to read
- Maintain adequate spacing between letters and words
- Keep text simple and minimal - only include essential labels or titles
- Position text in uncluttered areas of the image
- Text should be perfectly horizontal (not curved, angled, or distorted)`
)
