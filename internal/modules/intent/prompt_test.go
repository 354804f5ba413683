// README: Classification prompt tests.
package intent

import (
	"strings"
	"testing"
)

func TestBuildClassificationPromptDeterministic(t *testing.T) {
	first := BuildClassificationPrompt("{catalog}", "hello", "{schema}")
	for i := 0; i < 3; i++ {
		if got := BuildClassificationPrompt("{catalog}", "hello", "{schema}"); got != first {
			t.Fatal("prompt construction is not deterministic")
		}
	}
}

// TestBuildClassificationPromptOrdering pins the block order the oracle is
// sensitive to: catalog before message, schema after message.
func TestBuildClassificationPromptOrdering(t *testing.T) {
	prompt := BuildClassificationPrompt("CATALOG_MARKER", "MESSAGE_MARKER", "SCHEMA_MARKER")

	catalogIdx := strings.Index(prompt, "CATALOG_MARKER")
	messageIdx := strings.Index(prompt, "MESSAGE_MARKER")
	schemaIdx := strings.Index(prompt, "SCHEMA_MARKER")
	if catalogIdx < 0 || messageIdx < 0 || schemaIdx < 0 {
		t.Fatalf("prompt missing an input block:\n%s", prompt)
	}
	if !(catalogIdx < messageIdx && messageIdx < schemaIdx) {
		t.Fatalf("unexpected block order: catalog=%d message=%d schema=%d", catalogIdx, messageIdx, schemaIdx)
	}
}

// TestBuildClassificationPromptInstructsCompleteSlots verifies the prompt
// carries the every-slot-even-when-unresolved instruction.
func TestBuildClassificationPromptInstructsCompleteSlots(t *testing.T) {
	prompt := BuildClassificationPrompt("{}", "hi", "{}")
	if !strings.Contains(prompt, "must appear in the response, even when unresolved") {
		t.Fatal("prompt lost the slot-completeness instruction")
	}
	if !strings.Contains(prompt, "set it to null") {
		t.Fatal("prompt lost the null-for-unresolved instruction")
	}
}
