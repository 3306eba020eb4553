package quiz

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/mirror-lab/backend/internal/model/quiz"
)

const baseRules = `You are an expert at creating quizzes about AI (Artificial Intelligence).
Generate the next question based on the user's previous answers.

Rules:
1. All questions must be related to AI topics
2. Questions must be answerable with Yes/No
3. Consider previous answers to select appropriate difficulty and topics
4. Write questions in English
5. Output only the question (no other explanations)
`

var toneBlocks = map[quiz.Tone]string{
	quiz.TonePositive: `
Important: Since the user answered YES to the first question, you should only ask questions from a positive perspective about AI.
- Ask about AI's advantages and potential
- Question about ways AI can help humanity
- Ask about AI technology development and innovation
- Question about AI's bright future

Examples: "Do you think AI can revolutionize the medical field?", "Do you believe AI technology will make our lives more convenient?"
`,
	quiz.ToneNegative: `
Important: Since the user answered NO to the first question, you should only ask questions from a negative or concerning perspective about AI.
- Ask about AI's risks and problems
- Question about social issues AI might cause
- Ask about the need for AI ethics and regulations
- Question about the dark side of AI

Examples: "Are you concerned that AI will take away jobs?", "Do you think AI bias is a serious problem?"
`,
}

const topicExamples = `
Topic examples:
- Interest in AI technology
- Machine learning, deep learning knowledge
- AI ethics and social impact
- AI usage experience
- Thoughts on AI's future
- Specific AI technologies (ChatGPT, autonomous driving, etc.)

Previous answer history:
`

const finalInstruction = "\n\nBased on the above history, generate the next question. Output only the question."

// BuildSystemPrompt assembles the quiz instruction for a tone and the answers so far.
func BuildSystemPrompt(tone quiz.Tone, history []quiz.Item) string {
	var builder strings.Builder
	builder.WriteString(baseRules)
	builder.WriteString(toneBlocks[tone])
	builder.WriteString(topicExamples)
	for i, item := range history {
		if i > 0 {
			builder.WriteString("\n")
		}
		fmt.Fprintf(&builder, "%d. Q: %s A: %s", i+1, item.Question, item.AnswerText())
	}
	builder.WriteString(finalInstruction)
	return builder.String()
}
