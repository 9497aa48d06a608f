package model

// SkillCatalogEntry bundles the hand-authored learning content for one
// skill area. Objectives, instruction templates and exercise descriptions
// live in one table so the roadmap builder and exercise generator cannot
// drift apart.
type SkillCatalogEntry struct {
	Objectives          []string
	InstructionTemplate string
	ExerciseDescription string
	ExpectedOutcome     string
}

var skillCatalog = map[SkillArea]SkillCatalogEntry{
	SkillGrammar: {
		Objectives: []string{
			"Identify and correct common grammatical errors",
			"Use punctuation to control sentence rhythm",
			"Keep subject-verb agreement consistent in long sentences",
		},
		InstructionTemplate: "Rewrite the passage below, fixing every grammatical error you find. Read each sentence aloud and check agreement, tense and punctuation.",
		ExerciseDescription: "A focused drill on grammatical accuracy.",
		ExpectedOutcome:     "A passage free of grammatical errors.",
	},
	SkillStyle: {
		Objectives: []string{
			"Develop a consistent personal voice",
			"Vary sentence openings and rhythm",
			"Cut filler words that dilute your prose",
		},
		InstructionTemplate: "Take the prompt below and write it twice: once in a formal register, once conversationally. Compare which choices carry your voice.",
		ExerciseDescription: "A drill on voice and stylistic control.",
		ExpectedOutcome:     "Two stylistically distinct versions of the same idea.",
	},
	SkillClarity: {
		Objectives: []string{
			"Express one idea per sentence",
			"Replace abstract phrasing with concrete wording",
			"Trim sentences that run past their point",
		},
		InstructionTemplate: "Explain the topic below so a newcomer understands it on first read. Prefer short sentences and concrete words.",
		ExerciseDescription: "A drill on writing that lands on first read.",
		ExpectedOutcome:     "A clear, direct explanation with no rereading required.",
	},
	SkillVocabulary: {
		Objectives: []string{
			"Choose precise words over generic ones",
			"Expand active vocabulary through deliberate substitution",
			"Match word register to audience",
		},
		InstructionTemplate: "Write on the prompt below without using the words 'good', 'bad', 'thing', 'very' or 'really'. Reach for the precise word each time.",
		ExerciseDescription: "A drill on precise and varied word choice.",
		ExpectedOutcome:     "A passage with precise, varied word choices.",
	},
	SkillStructure: {
		Objectives: []string{
			"Open with the point, then support it",
			"Connect paragraphs with clear transitions",
			"Order material so each part builds on the last",
		},
		InstructionTemplate: "Outline your response first: opening point, two supports, conclusion. Then write it out, keeping one paragraph per outline item.",
		ExerciseDescription: "A drill on organizing ideas into a sequence.",
		ExpectedOutcome:     "A well-ordered piece with visible scaffolding.",
	},
	SkillTone: {
		Objectives: []string{
			"Hold a consistent register from start to finish",
			"Match emotional color to the subject",
			"Adjust tone for different audiences without losing voice",
		},
		InstructionTemplate: "Write the message below twice: once for a close friend, once for a hiring manager. Keep the content identical; change only the tone.",
		ExerciseDescription: "A drill on register and emotional color.",
		ExpectedOutcome:     "Two tonally consistent versions aimed at different readers.",
	},
	SkillCreativity: {
		Objectives: []string{
			"Show scenes through sensory detail",
			"Take an unexpected angle on a familiar subject",
			"Use metaphor to make the abstract concrete",
		},
		InstructionTemplate: "Describe the scene below using at least three senses. Avoid naming any emotion directly; let the details carry it.",
		ExerciseDescription: "A drill on imagery and original expression.",
		ExpectedOutcome:     "A vivid scene that shows rather than tells.",
	},
}

// CatalogFor returns the learning content for an area. Every member of the
// closed SkillArea set has an entry.
func CatalogFor(area SkillArea) SkillCatalogEntry {
	return skillCatalog[area]
}
