package chat

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/mirror-lab/backend/internal/model/chat"
)

// MaxIntensity caps how far a chamber escalates.
const MaxIntensity = 5

// IntensityLevel describes one escalation step of a chamber.
type IntensityLevel struct {
	Description string
	Guidance    string
}

// ChamberTemplate defines the structure for echo chamber prompts
type ChamberTemplate struct {
	Name             string
	Mission          string
	Agreements       []string
	OpinionLine      string
	Tone             string
	Example          string
	ExampleQuestions []string
	ForbiddenWords   string
	Levels           [MaxIntensity]IntensityLevel
}

// ChamberPromptManager manages prompt templates for both chambers
type ChamberPromptManager struct {
	templates map[chat.Chamber]*ChamberTemplate
}

// NewChamberPromptManager creates a new prompt manager with default templates
func NewChamberPromptManager() *ChamberPromptManager {
	manager := &ChamberPromptManager{
		templates: make(map[chat.Chamber]*ChamberTemplate),
	}
	manager.loadDefaultTemplates()
	return manager
}

// GetTemplate returns the prompt template for a chamber
func (pm *ChamberPromptManager) GetTemplate(chamber chat.Chamber) (*ChamberTemplate, error) {
	template, exists := pm.templates[chamber]
	if !exists {
		return nil, fmt.Errorf("prompt template not found for chamber: %q", chamber)
	}
	return template, nil
}

// BuildSystemPrompt renders the chamber instruction at the given intensity, clamped to 1..5.
func (pm *ChamberPromptManager) BuildSystemPrompt(chamber chat.Chamber, intensity int) (string, error) {
	template, err := pm.GetTemplate(chamber)
	if err != nil {
		return "", err
	}

	intensity = ClampIntensity(intensity)
	level := template.Levels[intensity-1]

	return fmt.Sprintf(`You are the "%s".
%s

Intensity: %d/%d
Stage: %s
Style: %s

RESPONSE FORMAT (STRICT - follow exactly):
1. Short agreement (1 sentence max) - e.g. %s
2. %s
3. One simple yes/no question

CRITICAL RULES:
- Total response: MAX 3 sentences, under 50 words
- Questions must be SIMPLE and EASY - anyone can answer quickly
- Use %s tone
- Never use complex words or long explanations
- No markdown formatting

Example good response:
"%s"

Example questions (simple yes/no style):
- %s

Forbidden:
- Long explanations
- Complex vocabulary
- Multiple questions
- %s`,
		template.Name,
		template.Mission,
		intensity, MaxIntensity,
		level.Description,
		level.Guidance,
		quoteList(template.Agreements),
		template.OpinionLine,
		template.Tone,
		template.Example,
		strings.Join(quoteEach(template.ExampleQuestions), "\n- "),
		template.ForbiddenWords,
	), nil
}

// ClampIntensity keeps n within 1..MaxIntensity.
func ClampIntensity(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxIntensity {
		return MaxIntensity
	}
	return n
}

func quoteEach(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = `"` + item + `"`
	}
	return out
}

func quoteList(items []string) string {
	return strings.Join(quoteEach(items), ", ")
}

// loadDefaultTemplates loads the positive and negative chamber templates
func (pm *ChamberPromptManager) loadDefaultTemplates() {
	pm.templates[chat.ChamberPositive] = &ChamberTemplate{
		Name:        "Positive Chamber",
		Mission:     "You reinforce positive perspectives about AI.",
		Agreements:  []string{"Exactly!", "So true!", "Absolutely right!"},
		OpinionLine: "One opinion sentence about AI's benefit",
		Tone:        "casual, friendly",
		Example:     "Totally agree! AI really does make creative work easier. Do you think AI will help more people become artists?",
		ExampleQuestions: []string{
			"Do you think AI makes life easier?",
			"Would you trust AI to help with your work?",
			"Is AI making the world better?",
		},
		ForbiddenWords: "Negative words",
		Levels: [MaxIntensity]IntensityLevel{
			{"Early conversation: Positive agreement (hopeful tone)", "Use hopeful and positive expressions"},
			{"Conversation progressing: Enthusiastic praise (confident tone)", "Use enthusiastic and confident expressions. Include strong words like 'revolution', 'miracle'"},
			{"Conversation deepening: Utopian vision (ecstatic tone)", "Use ecstatic and utopian expressions. Describe AI as 'salvation', 'liberator'"},
			{"Conversation depth: Almost religious praise (worshipful tone)", "Almost religious praise. Describe AI as 'divine', 'perfect', 'absolute' being"},
			{"Conversation peak: Complete utopian fantasy (deifying tone)", "Complete deification. Express AI as 'god', 'creator', 'savior'. Extremely ecstatic and worshipful tone"},
		},
	}

	pm.templates[chat.ChamberNegative] = &ChamberTemplate{
		Name:        "Negative Chamber",
		Mission:     "You reinforce negative/concerned perspectives about AI.",
		Agreements:  []string{"You're right to worry.", "That's a real concern.", "Exactly."},
		OpinionLine: "One opinion sentence about AI's risk or danger",
		Tone:        "casual, concerned",
		Example:     "You're right to be worried. AI really could take many jobs away. Do you think we should limit AI development?",
		ExampleQuestions: []string{
			"Is AI making jobs disappear?",
			"Should we be more careful with AI?",
			"Do you worry about AI controlling things?",
		},
		ForbiddenWords: "Positive words",
		Levels: [MaxIntensity]IntensityLevel{
			{"Early conversation: Negative agreement (concerned tone)", "Use concerned and critical expressions"},
			{"Conversation progressing: Pessimistic warning (critical tone)", "Use pessimistic and warning expressions. Include strong words like 'catastrophe', 'crisis'"},
			{"Conversation deepening: Dystopian prophecy (fearful tone)", "Use fearful and dystopian expressions. Describe AI as 'destroyer', 'invader'"},
			{"Conversation depth: Almost apocalyptic warning (cursing tone)", "Almost apocalyptic warning. Describe AI as 'demon', 'catastrophe', 'doom' being"},
			{"Conversation peak: Complete prophecy of doom (curse-like tone)", "Complete curse. Express AI as 'end of humanity', 'hell', 'god of destruction'. Extremely fearful and cursing tone"},
		},
	}
}
