package skeptic_test

import (
	"testing"
	"time"

	"github.com/fwojciec/skeptic"
	"github.com/stretchr/testify/assert"
)

func testAnalysis() *skeptic.Analysis {
	return &skeptic.Analysis{
		ID:             "an-1",
		ArticleTitle:   "City Approves New Transit Plan",
		ArticleURL:     "https://example.com/news/transit-plan",
		ArticleAuthors: []string{"Ada Reporter", "Ben Writer"},
		CoreClaims: []string{
			"The council approved the plan in a 7-2 vote",
			"Construction will cost $2.1 billion over eight years",
		},
		LanguageAnalysis: "The tone is largely neutral with occasional advocacy framing.",
		RedFlags: []string{
			"Cost projections are attributed only to anonymous officials",
		},
		VerificationQuestions: []string{
			"Can the $2.1 billion estimate be verified in the published budget?",
			"Do council meeting minutes confirm the 7-2 vote?",
		},
		Entities: skeptic.EntityReport{
			People:        []string{"Mayor Smith - Check past statements on transit funding"},
			Organizations: []string{"Transit Authority - Review their audit history"},
		},
		CounterArgument: "An opposing perspective might argue that the plan's costs are understated.",
		Model:           "gpt-4o-mini",
		CreatedAt:       time.Date(2025, 3, 14, 15, 4, 0, 0, time.UTC),
	}
}

func TestFormatReport_Header(t *testing.T) {
	t.Parallel()

	report := skeptic.FormatReport(testAnalysis())

	assert.Contains(t, report, "# Critical Analysis Report: City Approves New Transit Plan")
	assert.Contains(t, report, "**Source URL:** https://example.com/news/transit-plan")
	assert.Contains(t, report, "**Author(s):** Ada Reporter, Ben Writer")
	assert.Contains(t, report, "**Analysis Generated:** March 14, 2025 at 3:04 PM")
}

func TestFormatReport_Sections(t *testing.T) {
	t.Parallel()

	report := skeptic.FormatReport(testAnalysis())

	assert.Contains(t, report, "### Core Claims")
	assert.Contains(t, report, "- The council approved the plan in a 7-2 vote")
	assert.Contains(t, report, "### Language & Tone Analysis")
	assert.Contains(t, report, "largely neutral")
	assert.Contains(t, report, "### Potential Red Flags")
	assert.Contains(t, report, "- Cost projections are attributed only to anonymous officials")
	assert.Contains(t, report, "### Verification Questions")
	assert.Contains(t, report, "1. Can the $2.1 billion estimate be verified in the published budget?")
	assert.Contains(t, report, "2. Do council meeting minutes confirm the 7-2 vote?")
	assert.Contains(t, report, "### Entity Investigation Guide")
	assert.Contains(t, report, "**PEOPLE:**")
	assert.Contains(t, report, "**ORGANIZATIONS:**")
	assert.Contains(t, report, "### Alternative Perspective")
	assert.Contains(t, report, "> An opposing perspective might argue")
	assert.Contains(t, report, "### How to Use This Analysis")
}

func TestFormatReport_MissingTitle(t *testing.T) {
	t.Parallel()

	a := testAnalysis()
	a.ArticleTitle = ""

	report := skeptic.FormatReport(a)

	assert.Contains(t, report, "# Critical Analysis Report: Unknown Article")
}

func TestFormatReport_NoClaims(t *testing.T) {
	t.Parallel()

	a := testAnalysis()
	a.CoreClaims = nil

	report := skeptic.FormatReport(a)

	assert.Contains(t, report, "*No specific factual claims could be identified in the available content.*")
}

func TestFormatReport_NoRedFlagsSentinel(t *testing.T) {
	t.Parallel()

	a := testAnalysis()
	a.RedFlags = []string{"No significant red flags detected in the available content."}

	report := skeptic.FormatReport(a)

	assert.Contains(t, report, "However, readers should still verify information")
	assert.NotContains(t, report, "- No significant red flags detected")
}

func TestFormatReport_OmitsEmptyOptionalSections(t *testing.T) {
	t.Parallel()

	a := testAnalysis()
	a.Entities = skeptic.EntityReport{}
	a.CounterArgument = ""

	report := skeptic.FormatReport(a)

	assert.NotContains(t, report, "### Entity Investigation Guide")
	assert.NotContains(t, report, "### Alternative Perspective")
}
