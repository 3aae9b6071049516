// Package clauscan provides an LLM-driven contract risk analysis pipeline.
// It extracts text from uploaded contract documents (PDF, DOCX, TXT, HTML)
// through an ordered list of fallback backends, drives a staged analysis
// through a hosted language model (contract type, governing law, clause
// extraction, per-clause risk assessment, recommendations), and optionally
// augments the risk stage with jurisdiction research from a web search API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, fitz/, sqlite/).
package clauscan
