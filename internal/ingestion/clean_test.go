package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDescription_NormalizesWhitespace(t *testing.T) {
	in := "Senior   Engineer\r\n\r\n\r\n\r\nRequirements:\t5 years  "

	got := CleanDescription(in)

	assert.Equal(t, "Senior Engineer\n\nRequirements: 5 years", got)
}

func TestCleanDescription_FoldsFullWidthPunctuation(t *testing.T) {
	got := CleanDescription("月薪：２０,０００")

	assert.Equal(t, "月薪:20,000", got)
}

func TestCleanDescription_Empty(t *testing.T) {
	assert.Empty(t, CleanDescription(""))
}
