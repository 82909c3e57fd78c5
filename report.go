package skeptic

import (
	"fmt"
	"strings"
)

// noRedFlagsSentinel is what the report prints when the analysis found
// nothing to flag.
const noRedFlagsSentinel = "no significant red flags detected"

// FormatReport renders an analysis as a Markdown report.
func FormatReport(a *Analysis) string {
	sections := []string{
		formatHeader(a),
		formatCoreClaims(a.CoreClaims),
		formatLanguageAnalysis(a.LanguageAnalysis),
		formatRedFlags(a.RedFlags),
		formatVerificationQuestions(a.VerificationQuestions),
		formatEntities(a.Entities),
		formatCounterArgument(a.CounterArgument),
		formatFooter(),
	}

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	return strings.Join(nonEmpty, "\n\n") + "\n"
}

func formatHeader(a *Analysis) string {
	title := a.ArticleTitle
	if title == "" {
		title = "Unknown Article"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Critical Analysis Report: %s\n", title)

	if a.ArticleURL != "" {
		fmt.Fprintf(&b, "**Source URL:** %s\n", a.ArticleURL)
	}
	if len(a.ArticleAuthors) > 0 {
		fmt.Fprintf(&b, "**Author(s):** %s\n", strings.Join(a.ArticleAuthors, ", "))
	}
	if !a.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "**Analysis Generated:** %s\n", a.CreatedAt.Format("January 2, 2006 at 3:04 PM"))
	}

	b.WriteString("---\n")
	b.WriteString("*This report provides a critical analysis to help readers evaluate the ")
	b.WriteString("article's claims, sources, and potential biases. It does not determine ")
	b.WriteString("truth or falsehood, but rather highlights areas that warrant further ")
	b.WriteString("investigation.*")

	return b.String()
}

func formatCoreClaims(claims []string) string {
	if len(claims) == 0 {
		return "### Core Claims\n\n*No specific factual claims could be identified in the available content.*"
	}

	var b strings.Builder
	b.WriteString("### Core Claims\n\n")
	b.WriteString("*The following are the main factual assertions made in this article:*\n\n")
	for _, claim := range claims {
		fmt.Fprintf(&b, "- %s\n", claim)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatLanguageAnalysis(analysis string) string {
	if analysis == "" {
		return "### Language & Tone Analysis\n\n*Unable to perform language analysis on the available content.*"
	}

	return "### Language & Tone Analysis\n\n" + analysis
}

func formatRedFlags(flags []string) string {
	var b strings.Builder
	b.WriteString("### Potential Red Flags\n\n")

	if len(flags) == 0 || (len(flags) == 1 && strings.Contains(strings.ToLower(flags[0]), noRedFlagsSentinel)) {
		b.WriteString("*No significant red flags detected in the available content. However, ")
		b.WriteString("readers should still verify information through independent sources.*")
		return b.String()
	}

	b.WriteString("*The following potential issues were identified that may indicate bias or require additional verification:*\n\n")
	for _, flag := range flags {
		fmt.Fprintf(&b, "- %s\n", flag)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatVerificationQuestions(questions []string) string {
	if len(questions) == 0 {
		return "### Verification Questions\n\n*Unable to generate specific verification questions for this content.*"
	}

	var b strings.Builder
	b.WriteString("### Verification Questions\n\n")
	b.WriteString("*Consider investigating these specific questions to verify the article's content:*\n\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatEntities(entities EntityReport) string {
	if entities.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("### Entity Investigation Guide\n\n")
	b.WriteString("*Key entities mentioned in the article and suggested investigation points:*\n")

	writeGroup := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n**%s:**\n", label)
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}

	writeGroup("PEOPLE", entities.People)
	writeGroup("ORGANIZATIONS", entities.Organizations)
	writeGroup("LOCATIONS", entities.Locations)

	return strings.TrimRight(b.String(), "\n")
}

func formatCounterArgument(counter string) string {
	if counter == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("### Alternative Perspective\n\n")
	b.WriteString("*To highlight potential biases, consider this opposing viewpoint:*\n\n")
	fmt.Fprintf(&b, "> %s", counter)

	return b.String()
}

func formatFooter() string {
	var b strings.Builder
	b.WriteString("---\n\n")
	b.WriteString("### How to Use This Analysis\n\n")
	b.WriteString("This critical analysis is designed to enhance your media literacy, not replace your judgment. Use it to:\n\n")
	b.WriteString("- **Question assumptions** - Look beyond surface-level claims\n")
	b.WriteString("- **Seek additional sources** - Cross-reference with other reputable outlets\n")
	b.WriteString("- **Investigate entities** - Research the background of people and organizations mentioned\n")
	b.WriteString("- **Consider context** - Look for information that might be missing\n")
	b.WriteString("- **Think critically** - Form your own conclusions based on evidence\n\n")
	b.WriteString("*Remember: The goal is not to dismiss information, but to evaluate it more thoughtfully.*")

	return b.String()
}
