package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutorly/internal/heuristics"
)

func buildExplainMessage(p Prompts, text string, related []string, level heuristics.Level) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s: %s\n", p.QuestionLabel, text))
	b.WriteString(fmt.Sprintf("%s: %s\n", p.RelatedLabel, strings.Join(related, ", ")))
	b.WriteString(fmt.Sprintf("%s: %s\n", p.LevelLabel, level))
	b.WriteString(p.ExplainInstruction)

	return b.String()
}

func buildGradeMessage(p Prompts, ex Exercise, userAnswer string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s: %s\n", p.ExerciseLabel, ex.Prompt))
	b.WriteString(fmt.Sprintf("%s: %s\n", p.ExpectedLabel, ex.Answer))
	b.WriteString(fmt.Sprintf("%s: %s\n", p.StudentAnswerLabel, userAnswer))
	b.WriteString(p.GradeInstruction)

	return b.String()
}

// normalizeAnswer trims surrounding whitespace and lower-cases.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
