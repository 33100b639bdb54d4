package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteraction_AnswerContent(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{
			name:   "message object yields its content",
			answer: `{"role": "assistant", "content": "Yes."}`,
			want:   "Yes.",
		},
		{
			name:   "bare string yields itself",
			answer: `"No answer"`,
			want:   "No answer",
		},
		{
			name:   "object without content yields empty",
			answer: `{"role": "assistant"}`,
			want:   "",
		},
		{
			name:   "unparseable answer yields empty",
			answer: `not json`,
			want:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := &Interaction{Answer: json.RawMessage(tc.answer)}
			assert.Equal(t, tc.want, it.AnswerContent())
		})
	}
}
