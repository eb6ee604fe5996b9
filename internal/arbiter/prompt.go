package arbiter

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/halvden/grimoire/internal/retrieval"
)

const judgeSystemPrompt = `You are grading a flashcard recall attempt inside a study game. The player answered in free text. Judge how well the answer demonstrates recall of the card's content.

Instructions:
- "perfect": fully correct, precise, shows complete command of the card.
- "correct": right in substance with minor gaps or imprecision.
- "partial": on the right track but incomplete or partly wrong.
- "wrong": incorrect, off-topic, or empty.
- Grade recall of the card's content only. Ignore spelling, grammar, and style.
- Provide a confidence score (0.0-1.0).
- Keep feedback to one or two encouraging sentences.`

// modeTasks describes what the player was asked to do, per mode.
var modeTasks = map[retrieval.Mode]string{
	retrieval.Teach:    "explain the card's content in their own words, as if teaching it to someone else",
	retrieval.Connect:  "relate the card's content to something else they know",
	retrieval.Generate: "produce their own example or application of the card's content, given only the cue",
}

var judgeUserTemplate = template.Must(template.New("judge").Parse(`Card front: {{.Front}}
Card back: {{.Back}}

The player was asked to {{.Task}}.

Player's answer:
{{.Answer}}`))

func buildJudgeMessage(req JudgeRequest) (string, error) {
	task, ok := modeTasks[req.Mode]
	if !ok {
		return "", fmt.Errorf("no judging task for mode %s", req.Mode)
	}

	var buf bytes.Buffer
	err := judgeUserTemplate.Execute(&buf, struct {
		Front, Back, Task, Answer string
	}{req.Front, req.Back, task, req.Answer})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
