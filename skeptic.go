// Package skeptic provides a CLI tool for critical analysis of news
// articles. It fetches an article by URL, extracts the main content using
// a two-tier extraction pipeline, asks an LLM to analyze the article for
// claims, bias, and red flags, and writes the result as a Markdown report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., readability/, goquery/, openai/).
package skeptic
