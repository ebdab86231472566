package ai_test

import (
	"testing"

	"github.com/d9705996/kysai/internal/ai"
	"github.com/stretchr/testify/assert"
)

func TestBuildEightDPrompt_Turkish(t *testing.T) {
	p := ai.BuildEightDPrompt("Civata kırılması", "Automotive", "tr")

	assert.Contains(t, p, ai.TurkishInstruction)
	assert.Contains(t, p, "CEVAP DİLİ SADECE VE SADECE TÜRKÇE OLMALIDIR.")
	assert.Contains(t, p, `"Civata kırılması"`)
	assert.Contains(t, p, "in the Automotive industry")
}

func TestBuildEightDPrompt_English(t *testing.T) {
	p := ai.BuildEightDPrompt("Bolt fracture", "Aerospace", "en")

	assert.NotContains(t, p, "CRITICAL: OUTPUT LANGUAGE MUST BE TURKISH")
	assert.Contains(t, p, `"Bolt fracture"`)
	assert.Contains(t, p, "in the Aerospace industry")
	assert.Contains(t, p, `"d4_fishbone": { "Man": []`)
}

func TestBuildEightDPrompt_OtherLanguageHasNoBlock(t *testing.T) {
	assert.NotContains(t, ai.BuildEightDPrompt("x", "Automotive", "TR"), ai.TurkishInstruction)
}

func TestHSEPrompt(t *testing.T) {
	assert.Contains(t, ai.HSEPrompt, "RETURN ONLY VALID JSON. Do not use Markdown formatted code blocks.")
	assert.Contains(t, ai.HSEPrompt, "CEVAP DİLİ TÜRKÇE OLMALIDIR.")
}
