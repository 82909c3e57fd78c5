package analyze

import (
	"fmt"
	"strings"

	"github.com/fwojciec/skeptic"
)

// systemPrompt frames every completion request.
const systemPrompt = "You are an expert in critical thinking, journalism ethics, and media analysis. " +
	"Provide precise, insightful analysis that helps users think critically about information."

// Per-prompt excerpt budgets. Longer prompts get less article text so the
// total request stays within a predictable size.
const (
	claimsExcerptLimit    = 3000
	languageExcerptLimit  = 3000
	redFlagsExcerptLimit  = 3000
	questionsExcerptLimit = 3000
	entitiesExcerptLimit  = 2000
	counterExcerptLimit   = 2500
)

// excerpt truncates the article body for prompt embedding, cutting at a
// word boundary.
func excerpt(body string, limit int) string {
	return skeptic.TruncateAtWord(body, limit)
}

// titleOrUnknown returns the article title for prompt embedding.
func titleOrUnknown(a *skeptic.Article) string {
	if a.Title == "" {
		return "Unknown"
	}
	return a.Title
}

// BuildClaimsPrompt asks for the article's main factual claims.
func BuildClaimsPrompt(a *skeptic.Article) string {
	return fmt.Sprintf(`You are an expert fact-checker and critical thinking analyst. Your task is to identify the core factual claims in a news article.

ARTICLE TITLE: %s
ARTICLE CONTENT: %s

Instructions:
1. Identify 3-5 of the most important FACTUAL CLAIMS (not opinions) made in this article
2. Focus on claims that are:
   - Specific and verifiable
   - Central to the article's main narrative
   - Presented as facts rather than speculation
3. Present each claim as a clear, concise bullet point
4. Avoid including obvious background information or widely accepted facts

Format your response as a simple list of claims, one per line, starting with "- "

Your analysis:`, titleOrUnknown(a), excerpt(a.Body, claimsExcerptLimit))
}

// BuildLanguagePrompt asks for a tone and rhetoric assessment.
func BuildLanguagePrompt(a *skeptic.Article) string {
	return fmt.Sprintf(`You are a linguistics expert specializing in media analysis and bias detection. Analyze the language and tone of this news article.

ARTICLE TITLE: %s
ARTICLE CONTENT: %s

Provide a detailed analysis (2-3 sentences) that addresses:

1. TONE CLASSIFICATION: Is the tone neutral/objective, persuasive/advocacy, sensationalist, academic, or opinion-based?
2. LANGUAGE PATTERNS: Note specific linguistic choices such as emotional or charged language, certainty vs. hedging, and use of superlatives.
3. RHETORICAL TECHNIQUES: Identify persuasive techniques like appeal to emotion, authority, or fear, loaded questions, or selective framing.
4. OBJECTIVITY ASSESSMENT: Rate how the language suggests the author's stance.

Write a cohesive paragraph that synthesizes these observations into an overall assessment of the article's linguistic approach.`,
		titleOrUnknown(a), excerpt(a.Body, languageExcerptLimit))
}

// BuildRedFlagsPrompt asks for signs of bias or poor reporting.
func BuildRedFlagsPrompt(a *skeptic.Article) string {
	return fmt.Sprintf(`You are an experienced journalism ethics expert and media literacy educator. Analyze this article for potential red flags that indicate bias, poor reporting, or misleading information.

ARTICLE TITLE: %s
ARTICLE CONTENT: %s

Look for these specific red flags and ONLY list ones you can actually identify in the text:

SOURCE ISSUES: over-reliance on anonymous sources, one-sided sourcing, missing attribution, undisclosed conflicts of interest.
LOGICAL ISSUES: correlation presented as causation, anecdotal evidence treated as representative, cherry-picked data, unsupported generalizations.
LANGUAGE ISSUES: loaded or emotionally manipulative language, false dichotomies, opinion presented as fact.
TRANSPARENCY ISSUES: vague timeframes or locations, missing links to source documents, unclear survey methodology.

Format as bullet points starting with "- " and be specific about what you observed.
If you cannot identify clear red flags, state "No significant red flags detected in the available content."`,
		titleOrUnknown(a), excerpt(a.Body, redFlagsExcerptLimit))
}

// BuildQuestionsPrompt asks for actionable verification questions.
func BuildQuestionsPrompt(a *skeptic.Article) string {
	return fmt.Sprintf(`You are a professional fact-checker and investigative journalist. Create specific, actionable questions that readers should ask to independently verify this article's content.

ARTICLE TITLE: %s
ARTICLE CONTENT: %s
AUTHOR(S): %s

Create 3-4 sharp, specific verification questions that are:

1. ACTIONABLE: Questions readers can actually investigate
2. TARGETED: Focus on the most important or questionable claims
3. SPECIFIC: Not generic questions that apply to any article
4. STRATEGIC: Address potential weak points in the reporting

Avoid generic questions like "Is this source reliable?"

Format as numbered questions (1., 2., 3., 4.)`,
		titleOrUnknown(a), excerpt(a.Body, questionsExcerptLimit), authorsOrUnknown(a))
}

// BuildEntitiesPrompt asks for key entities and investigation points.
func BuildEntitiesPrompt(a *skeptic.Article) string {
	return fmt.Sprintf(`You are an investigative researcher. Identify the key entities (people, organizations, locations) mentioned in this article and suggest what readers should investigate about them.

ARTICLE CONTENT: %s

For each significant entity mentioned, provide investigation suggestions. Focus on entities that are central to the main claims, sources of information or quotes, organizations funding studies, or government agencies mentioned.

Format as:
PEOPLE:
- Name - Investigation suggestion

ORGANIZATIONS:
- Name - Investigation suggestion

LOCATIONS (if relevant):
- Location - Investigation suggestion

Be selective - only include entities worth investigating, not every person or place mentioned.`,
		excerpt(a.Body, entitiesExcerptLimit))
}

// BuildCounterPrompt asks for the opposing reading of the article.
func BuildCounterPrompt(a *skeptic.Article) string {
	return fmt.Sprintf(`You are playing devil's advocate. Read this article and then briefly summarize how someone with an opposing viewpoint might interpret or challenge the same information.

ARTICLE TITLE: %s
ARTICLE CONTENT: %s

Consider:
1. What alternative explanations might exist for the events described?
2. What context or information might be missing that could change the narrative?
3. What assumptions does the article make that could be questioned?
4. How might stakeholders with different interests interpret these same facts?

Write a brief paragraph (3-4 sentences) presenting this alternative perspective. Be fair and thoughtful.

Start with: "An opposing perspective might argue that..."`,
		titleOrUnknown(a), excerpt(a.Body, counterExcerptLimit))
}

func authorsOrUnknown(a *skeptic.Article) string {
	if len(a.Authors) == 0 {
		return "Unknown"
	}
	return strings.Join(a.Authors, ", ")
}
