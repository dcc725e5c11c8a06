package httpx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRequest struct {
	Title    string `json:"title" validate:"required,notblank,max=10"`
	AuthorID int64  `json:"author_id" validate:"required,gt=0"`
}

func TestValidateStruct_ValidInput(t *testing.T) {
	assert.Nil(t, ValidateStruct(testRequest{Title: "Helena", AuthorID: 1}))
}

func TestValidateStruct_Messages(t *testing.T) {
	tests := []struct {
		name  string
		input testRequest
		field string
		want  string
	}{
		{"missing title", testRequest{AuthorID: 1}, "title", "required"},
		{"blank title", testRequest{Title: "  ", AuthorID: 1}, "title", "blank"},
		{"long title", testRequest{Title: strings.Repeat("x", 11), AuthorID: 1}, "title", "at most 10"},
		{"negative author", testRequest{Title: "x", AuthorID: -1}, "author_id", "greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateStruct(tt.input)
			if assert.Len(t, details, 1) {
				assert.Equal(t, tt.field, details[0].Field)
				assert.Contains(t, details[0].Message, tt.want)
			}
		})
	}
}

func TestValidateStruct_Pointer(t *testing.T) {
	details := ValidateStruct(&testRequest{})
	assert.Len(t, details, 2)
}
