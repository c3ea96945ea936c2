// Package pipeline runs an ordered set of generation tasks sequentially,
// checkpointing each output so an interrupted run resumes where it stopped.
package pipeline

import (
	"fmt"
	"strings"
)

// FinalArtifactName is the concatenated output of a fully successful pass.
const FinalArtifactName = "FINAL_ALL_STEPS_RAW.md"

// FinalSeparator joins step outputs in the final artifact.
const FinalSeparator = "\n\n---\n\n"

// TaskSpec is one step of the pipeline. Specs are immutable and exist only
// in memory; the persisted unit is the step's output checkpoint.
type TaskSpec struct {
	Ordinal        int    `yaml:"ordinal"` // 1-based position
	Title          string `yaml:"title"`
	Prompt         string `yaml:"prompt"`
	ExpectedOutput string `yaml:"expected_output"`
	MaxWords       int    `yaml:"max_words"` // 0 = no word cap appended
}

// CheckpointName returns the artifact name holding this task's output.
func (t TaskSpec) CheckpointName() string {
	return fmt.Sprintf("task_%02d.md", t.Ordinal)
}

// ErrorArtifactName returns the artifact name recording this task's failure.
func (t TaskSpec) ErrorArtifactName() string {
	return fmt.Sprintf("ERROR_task_%02d.txt", t.Ordinal)
}

// FullPrompt returns the prompt with the expected-output description and the
// task's output constraints appended as literal instructions. Constraint
// compliance is the model's responsibility; the runner never validates it.
func (t TaskSpec) FullPrompt() string {
	if t.MaxWords <= 0 && t.ExpectedOutput == "" {
		return t.Prompt
	}
	var b strings.Builder
	b.WriteString(t.Prompt)
	if t.ExpectedOutput != "" {
		b.WriteString("\n\nExpected output: ")
		b.WriteString(t.ExpectedOutput)
	}
	if t.MaxWords <= 0 {
		return b.String()
	}
	b.WriteString("\n\nOutput constraints:\n")
	fmt.Fprintf(&b, "- Max %d words\n", t.MaxWords)
	b.WriteString("- Use headings + bullets\n")
	b.WriteString("- No repetition\n")
	b.WriteString("- Do not restate instructions\n")
	b.WriteString("- Be decisive\n")
	return b.String()
}

// ValidateTasks checks that specs form a contiguous 1..N sequence with
// non-empty prompts.
func ValidateTasks(specs []TaskSpec) error {
	if len(specs) == 0 {
		return fmt.Errorf("no tasks defined")
	}
	for i, spec := range specs {
		if spec.Ordinal != i+1 {
			return fmt.Errorf("task %d: ordinal %d out of sequence", i+1, spec.Ordinal)
		}
		if strings.TrimSpace(spec.Prompt) == "" {
			return fmt.Errorf("task %d: empty prompt", spec.Ordinal)
		}
	}
	return nil
}
