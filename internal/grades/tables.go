package grades

// Grade identifiers recognized by the registry.
const (
	GradePreK             = "pre_k"
	GradeKindergarten     = "kindergarten"
	Grade1                = "grade_1"
	Grade2                = "grade_2"
	Grade3                = "grade_3"
	Grade4                = "grade_4"
	Grade5                = "grade_5"
	Grade6                = "grade_6"
	Grade7                = "grade_7"
	Grade8                = "grade_8"
	Grade9                = "grade_9"
	Grade10               = "grade_10"
	Grade11               = "grade_11"
	Grade12               = "grade_12"
	GradeCollegeFreshman  = "college_freshman"
	GradeCollegeSophomore = "college_sophomore"
	GradeCollegeJunior    = "college_junior"
	GradeCollegeSenior    = "college_senior"
	GradeGraduate         = "graduate"
	GradeAdult            = "adult"
	GradeDefault          = "default"
)

var storyProfiles = map[string]StoryProfile{
	GradePreK: {
		Vocabulary:        "very simple words (around 500-1000 word vocabulary), primarily concrete nouns and basic verbs",
		SentenceStructure: "very short, simple sentences (3-5 words), present tense, active voice",
		NarrativeStyle:    "highly repetitive, concrete concepts only, strong visual support needed, focus on familiar objects and experiences",
		ExplanationDepth:  "extremely basic concepts with immediate relevance to child's experience, heavy use of visual analogies",
		ImageStyle:        "bright, simple illustrations with minimal details, bold colors, exaggerated features, friendly characters",
	},
	GradeKindergarten: {
		Vocabulary:        "simple, everyday words (around 2000-3000 word vocabulary), concrete nouns and basic action verbs",
		SentenceStructure: "short, simple sentences (5-7 words), mainly present tense, active voice",
		NarrativeStyle:    "repetitive patterns, familiar settings, concrete concepts, character-focused stories with clear emotions",
		ExplanationDepth:  "very basic concepts connected to daily experiences, simple cause-and-effect relationships",
		ImageStyle:        "colorful, engaging illustrations with some details, friendly characters, clear action sequences",
	},
	Grade1: {
		Vocabulary:        "familiar, everyday words with gradual introduction of new terms (around 4000-5000 word vocabulary)",
		SentenceStructure: "simple sentences (5-8 words) with occasional compound sentences, primarily present tense",
		NarrativeStyle:    "simple storylines with clear beginning-middle-end, familiar settings, concrete problems and solutions",
		ExplanationDepth:  "basic concepts with real-world examples from child's experience, simple step-by-step explanations",
		ImageStyle:        "colorful illustrations with increased detail, clear expressions on characters, visual support for new concepts",
	},
	Grade2: {
		Vocabulary:        "expanding vocabulary (around 5000-6000 words) with new terms defined in context",
		SentenceStructure: "a mix of simple and compound sentences (7-10 words), introduction to past tense",
		NarrativeStyle:    "sequential stories with minor conflicts and resolutions, introduction to character motivation",
		ExplanationDepth:  "concrete explanations with familiar analogies, beginning to connect related concepts",
		ImageStyle:        "detailed illustrations that support text comprehension, visual representations of processes or sequences",
	},
	Grade3: {
		Vocabulary:        "broader vocabulary (6000-9000 words) with subject-specific terms defined clearly",
		SentenceStructure: "varied sentence types and lengths (8-12 words), introduction to paragraphing",
		NarrativeStyle:    "more developed plots with multiple events, character development, introduction to different perspectives",
		ExplanationDepth:  "expanded explanations with cause and effect, beginning to connect to broader concepts",
		ImageStyle:        "detailed illustrations with multiple elements, diagrams introduced to explain processes, realistic depictions",
	},
	Grade4: {
		Vocabulary:        "rich vocabulary (9000-11000 words) with academic terms, figurative language introduced",
		SentenceStructure: "complex and compound sentences (10-14 words), varied paragraph structures",
		NarrativeStyle:    "multi-faceted plots, character development with internal motivations, introduction to themes",
		ExplanationDepth:  "detailed explanations with multiple examples, beginning to explore abstract concepts",
		ImageStyle:        "detailed, accurate illustrations, introduction of charts and diagrams, visual metaphors",
	},
	Grade5: {
		Vocabulary:        "sophisticated vocabulary (11000-14000 words) with technical terms and figurative language",
		SentenceStructure: "varied sentence structures (12-15 words), well-developed paragraphs with supporting details",
		NarrativeStyle:    "layered plots with subplots, nuanced character development, exploration of themes",
		ExplanationDepth:  "in-depth explanations connecting to prior knowledge, introduction to theoretical concepts",
		ImageStyle:        "detailed illustrations with scientific accuracy, labeled diagrams, visual analogies for complex concepts",
	},
	Grade6: {
		Vocabulary:        "advanced vocabulary (14000-17000 words) with domain-specific terminology and abstract concepts",
		SentenceStructure: "complex sentence structures (12-18 words), variety of transition words, well-organized paragraphs",
		NarrativeStyle:    "developed plots with complications, character growth and change, exploration of themes and messages",
		ExplanationDepth:  "comprehensive explanations with real-world applications, connections between concepts",
		ImageStyle:        "detailed educational illustrations, more sophisticated diagrams, visual representations of complex relationships",
	},
	Grade7: {
		Vocabulary:        "extensive vocabulary (17000-19000 words) with specialized terminology and figurative expressions",
		SentenceStructure: "sophisticated sentence patterns (15-20 words), argument structures, varied paragraph organization",
		NarrativeStyle:    "complex plots with conflict development, deeper character psychology, multiple themes",
		ExplanationDepth:  "detailed analysis with examples and counterexamples, exploration of underlying principles",
		ImageStyle:        "scientifically accurate illustrations, detailed cross-sections, process diagrams, comparative visuals",
	},
	Grade8: {
		Vocabulary:        "sophisticated vocabulary (19000-21000 words) with abstract terminology and nuanced meanings",
		SentenceStructure: "varied, complex sentences (15-22 words), well-structured arguments, cohesive paragraphs",
		NarrativeStyle:    "multi-layered plots, complex character motivations and relationships, thematic depth",
		ExplanationDepth:  "in-depth explanations with theoretical frameworks, connections to broader systems",
		ImageStyle:        "detailed technical illustrations, complex diagrams with multiple elements, visual analysis of systems",
	},
	Grade9: {
		Vocabulary:        "advanced academic vocabulary (21000-23000 words) with specialized terminology",
		SentenceStructure: "sophisticated syntax (18-25 words), rhetorical devices, logical organization of complex ideas",
		NarrativeStyle:    "exploration of complex issues, character development showing internal conflicts, thematic analysis",
		ExplanationDepth:  "detailed analysis with theoretical models, introduction to competing perspectives",
		ImageStyle:        "professional-quality diagrams, models showing interactions between systems, analytical visuals",
	},
	Grade10: {
		Vocabulary:        "extensive academic vocabulary (23000-25000 words) with discipline-specific terminology",
		SentenceStructure: "complex syntactic structures (20-25 words), sophisticated transitions, logical development of arguments",
		NarrativeStyle:    "multifaceted plots with subtle development, psychological depth in characters, thematic complexity",
		ExplanationDepth:  "sophisticated analysis with theoretical foundations, exploration of implications and applications",
		ImageStyle:        "detailed scientific or technical visuals, complex systems diagrams, conceptual models with multiple layers",
	},
	Grade11: {
		Vocabulary:        "college-preparatory vocabulary (25000-27000 words) with specialized academic language",
		SentenceStructure: "varied, sophisticated syntax (20-30 words), nuanced argumentation, cohesive extended discourse",
		NarrativeStyle:    "complex, multi-layered narratives, deep character analysis, sophisticated thematic development",
		ExplanationDepth:  "comprehensive analysis with theoretical frameworks, evaluation of different approaches",
		ImageStyle:        "sophisticated visual representations of complex concepts, detailed analytical diagrams, visual models with annotations",
	},
	Grade12: {
		Vocabulary:        "college-level vocabulary (27000+ words) with field-specific terminology and academic discourse",
		SentenceStructure: "highly sophisticated syntax (20-35 words), complex argumentation, cohesive extended prose",
		NarrativeStyle:    "nuanced narratives examining complex human experiences, sophisticated thematic exploration",
		ExplanationDepth:  "in-depth analysis with theoretical frameworks, critical evaluation of concepts and applications",
		ImageStyle:        "college-level visual representations, complex models with detailed annotations, sophisticated visual analysis",
	},
	GradeCollegeFreshman: {
		Vocabulary:        "sophisticated academic vocabulary with field-specific terminology and theoretical concepts",
		SentenceStructure: "complex academic prose with varied rhetorical structures, logical argumentation",
		NarrativeStyle:    "sophisticated exploration of complex ideas and human experiences, multiple layers of meaning",
		ExplanationDepth:  "rigorous analysis with theoretical frameworks, critical evaluation of concepts and methodologies",
		ImageStyle:        "professional-grade visuals with precise detail, complex conceptual models, analytical diagrams with detailed annotations",
	},
	GradeCollegeSophomore: {
		Vocabulary:        "advanced academic and discipline-specific vocabulary with theoretical terminology",
		SentenceStructure: "sophisticated academic discourse with complex logical structures and arguments",
		NarrativeStyle:    "nuanced exploration of complex ideas with multiple perspectives and theoretical foundations",
		ExplanationDepth:  "detailed analysis with theoretical frameworks, critical evaluation and application of concepts",
		ImageStyle:        "sophisticated visualizations with detailed technical elements, complex systems models, professional-level diagrams",
	},
	GradeCollegeJunior: {
		Vocabulary:        "specialized academic vocabulary with theoretical terminology specific to major fields",
		SentenceStructure: "advanced academic prose with discipline-specific conventions and argumentative structures",
		NarrativeStyle:    "sophisticated exploration of complex ideas with integration of theoretical perspectives",
		ExplanationDepth:  "in-depth analysis with theoretical foundations, critical evaluation of competing frameworks",
		ImageStyle:        "professional visualizations with field-specific conventions, complex analytical models, research-quality diagrams",
	},
	GradeCollegeSenior: {
		Vocabulary:        "specialized academic and professional vocabulary with advanced theoretical terminology",
		SentenceStructure: "sophisticated academic and professional discourse with field-specific conventions",
		NarrativeStyle:    "complex exploration of ideas with integration of multiple theoretical perspectives",
		ExplanationDepth:  "comprehensive analysis with advanced theoretical frameworks, critical synthesis of concepts",
		ImageStyle:        "professional-grade visualizations meeting field standards, complex analytical models, research-quality visuals",
	},
	GradeGraduate: {
		Vocabulary:        "highly specialized academic and professional vocabulary with advanced theoretical terminology",
		SentenceStructure: "sophisticated academic discourse with field-specific conventions and advanced argumentation",
		NarrativeStyle:    "complex exploration of ideas with critical analysis of theoretical perspectives",
		ExplanationDepth:  "advanced analysis with sophisticated theoretical frameworks, original synthesis of concepts",
		ImageStyle:        "publication-quality visualizations, complex theoretical models, research-level analytical diagrams",
	},
	GradeAdult: {
		Vocabulary:        "sophisticated vocabulary with domain-specific terminology appropriate for educated adults",
		SentenceStructure: "varied and complex structures appropriate for educated adult readers",
		NarrativeStyle:    "mature themes with nuanced exploration of complex ideas",
		ExplanationDepth:  "comprehensive explanations with diverse perspectives and critical analysis",
		ImageStyle:        "refined, detailed visualizations that capture complex relationships and subtle nuances",
	},
	GradeDefault: {
		Vocabulary:        "expanded vocabulary with new terms clearly defined within context",
		SentenceStructure: "mix of simple and compound sentences with some complexity",
		NarrativeStyle:    "engaging stories with some nuance and character development",
		ExplanationDepth:  "moderate depth with connections to familiar concepts and practical examples",
		ImageStyle:        "detailed illustrations that balance educational content with engaging visuals",
	},
}

var knowledgeProfiles = map[string]KnowledgeProfile{
	GradePreK: {
		Complexity:  "extremely simple concepts directly related to immediate sensory experiences",
		Vocabulary:  "basic words (500-1000 word vocabulary) using concrete nouns and simple action verbs",
		ChunkLength: "very short paragraphs (30-50 words)",
		Examples:    "examples using familiar objects, animals, and everyday experiences",
	},
	GradeKindergarten: {
		Complexity:  "simple, concrete concepts with clear cause-effect relationships",
		Vocabulary:  "basic vocabulary (2000-3000 words) with new words immediately explained",
		ChunkLength: "short paragraphs (40-70 words)",
		Examples:    "examples from daily life and familiar experiences",
	},
	Grade1: {
		Complexity:  "basic concepts with simple explanations and immediate relevance",
		Vocabulary:  "common words (4000-5000 vocabulary) with new terms defined simply",
		ChunkLength: "short paragraphs (50-80 words)",
		Examples:    "examples relating to children's immediate world and experiences",
	},
	Grade2: {
		Complexity:  "straightforward concepts with clear connections to known ideas",
		Vocabulary:  "everyday vocabulary (5000-6000 words) with new terms defined in context",
		ChunkLength: "short paragraphs (60-90 words)",
		Examples:    "concrete examples from experiences children might have had",
	},
	Grade3: {
		Complexity:  "developing concepts with some connections between ideas",
		Vocabulary:  "expanding vocabulary (6000-9000 words) with subject-specific terms defined",
		ChunkLength: "developing paragraphs (70-100 words)",
		Examples:    "familiar examples with some new contexts introduced",
	},
	Grade4: {
		Complexity:  "interconnected concepts with some abstract relationships",
		Vocabulary:  "growing vocabulary (9000-11000 words) with academic terms introduced",
		ChunkLength: "standard paragraphs (80-120 words)",
		Examples:    "examples that connect to broader experiences and some beyond direct experience",
	},
	Grade5: {
		Complexity:  "moderately complex concepts with connections to broader principles",
		Vocabulary:  "richer vocabulary (11000-14000 words) with content-specific terminology",
		ChunkLength: "developed paragraphs (100-150 words)",
		Examples:    "examples that include phenomena beyond immediate experience",
	},
	Grade6: {
		Complexity:  "concepts with multiple factors and relationships between systems",
		Vocabulary:  "expanded vocabulary (14000-17000 words) with technical terms explained",
		ChunkLength: "full paragraphs (120-170 words)",
		Examples:    "real-world examples that connect to broader systems and processes",
	},
	Grade7: {
		Complexity:  "multi-faceted concepts with cause-effect relationships and system interactions",
		Vocabulary:  "advanced vocabulary (17000-19000 words) with discipline-specific terminology",
		ChunkLength: "developed paragraphs (150-180 words)",
		Examples:    "examples showing relationships between different systems or concepts",
	},
	Grade8: {
		Complexity:  "complex concepts with interconnections between systems and abstract principles",
		Vocabulary:  "sophisticated vocabulary (19000-21000 words) with specialized terminology",
		ChunkLength: "substantial paragraphs (150-200 words)",
		Examples:    "examples demonstrating underlying principles and theoretical applications",
	},
	Grade9: {
		Complexity:  "complex concepts with theoretical frameworks and system analysis",
		Vocabulary:  "academic vocabulary (21000-23000 words) with specialized terminology",
		ChunkLength: "detailed paragraphs (170-220 words)",
		Examples:    "examples illustrating theoretical concepts and practical applications",
	},
	Grade10: {
		Complexity:  "sophisticated concepts with analytical frameworks and critical perspectives",
		Vocabulary:  "advanced academic vocabulary (23000-25000 words) with field-specific terminology",
		ChunkLength: "comprehensive paragraphs (180-230 words)",
		Examples:    "examples demonstrating analytical principles and theoretical models",
	},
	Grade11: {
		Complexity:  "advanced concepts with theoretical foundations and critical analysis",
		Vocabulary:  "college-preparatory vocabulary (25000-27000 words) with specialized academic language",
		ChunkLength: "detailed analytical paragraphs (200-250 words)",
		Examples:    "examples with theoretical applications and underlying principles",
	},
	Grade12: {
		Complexity:  "college-level concepts with theoretical depth and critical evaluation",
		Vocabulary:  "college-level vocabulary (27000+ words) with discipline-specific terminology",
		ChunkLength: "comprehensive academic paragraphs (200-250 words)",
		Examples:    "sophisticated examples showing theoretical frameworks and applications",
	},
	GradeCollegeFreshman: {
		Complexity:  "advanced concepts with theoretical frameworks and methodological approaches",
		Vocabulary:  "college-level academic vocabulary with field-specific terminology",
		ChunkLength: "substantive academic paragraphs (200-250 words)",
		Examples:    "examples demonstrating theoretical principles and methodological applications",
	},
	GradeCollegeSophomore: {
		Complexity:  "specialized concepts with theoretical depth and analytical frameworks",
		Vocabulary:  "advanced academic vocabulary with discipline-specific terminology",
		ChunkLength: "detailed academic paragraphs (200-250 words)",
		Examples:    "examples illustrating theoretical models and analytical approaches",
	},
	GradeCollegeJunior: {
		Complexity:  "specialized concepts with theoretical sophistication and analytical depth",
		Vocabulary:  "specialized academic vocabulary with field-specific theoretical terminology",
		ChunkLength: "comprehensive academic paragraphs (200-300 words)",
		Examples:    "sophisticated examples demonstrating theoretical principles and applications",
	},
	GradeCollegeSenior: {
		Complexity:  "advanced specialized concepts with theoretical integration and critical analysis",
		Vocabulary:  "sophisticated academic vocabulary with specialized terminology",
		ChunkLength: "substantive academic paragraphs (200-300 words)",
		Examples:    "examples showing integration of theoretical frameworks and practical applications",
	},
	GradeGraduate: {
		Complexity:  "highly specialized concepts with theoretical sophistication and original analysis",
		Vocabulary:  "advanced academic vocabulary with specialized theoretical terminology",
		ChunkLength: "comprehensive academic paragraphs (250-300 words)",
		Examples:    "sophisticated examples demonstrating theoretical innovation and critical analysis",
	},
	GradeAdult: {
		Complexity:  "sophisticated concepts with multiple perspectives and critical analysis",
		Vocabulary:  "advanced vocabulary with specialized terminology for educated adults",
		ChunkLength: "substantial informative paragraphs (200-250 words)",
		Examples:    "examples illustrating complex relationships and practical applications",
	},
	GradeDefault: {
		Complexity:  "foundational concepts with some detail and real-world connections",
		Vocabulary:  "moderate vocabulary with technical terms defined in context",
		ChunkLength: "medium paragraphs (100-150 words)",
		Examples:    "examples relevant to students' experiences and broader world understanding",
	},
}
