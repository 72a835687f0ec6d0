package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wingkam/jobradar/internal/patterns"
)

func TestTechStack_MatchesCanonicalKeywords(t *testing.T) {
	text := "We use python, TYPESCRIPT and react on kubernetes."

	stack := TechStack(patterns.Generic(), text)

	assert.Contains(t, stack, "Python")
	assert.Contains(t, stack, "TypeScript")
	assert.Contains(t, stack, "React")
	assert.Contains(t, stack, "Kubernetes")
}

func TestTechStack_PreservesKeywordListOrder(t *testing.T) {
	// Mentioned in reverse of registry order; output must follow the registry.
	text := "Kubernetes experience and Python scripting."

	stack := TechStack(patterns.Generic(), text)

	assert.Equal(t, []string{"Python", "Kubernetes"}, stack)
}

func TestTechStack_Deduplicates(t *testing.T) {
	text := "Redis, redis, and more Redis."

	stack := TechStack(patterns.Generic(), text)

	assert.Equal(t, []string{"Redis"}, stack)
}

func TestTechStack_EmptyText(t *testing.T) {
	assert.Nil(t, TechStack(patterns.Generic(), ""))
}

func TestTechStack_HongKongOverlayAddsFinanceVocabulary(t *testing.T) {
	text := "Maintain Murex and COBOL batch jobs feeding SWIFT messages."

	generic := TechStack(patterns.Generic(), text)
	regional := TechStack(patterns.HongKong(), text)

	assert.NotContains(t, generic, "Murex")
	assert.Contains(t, regional, "Murex")
	assert.Contains(t, regional, "COBOL")
	assert.Contains(t, regional, "SWIFT")
}
