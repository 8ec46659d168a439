package models

import "time"

// Content section types. The type decides how section_content is
// interpreted: plain text is displayed verbatim, json must be parsed
// into a list before use.
const (
	SectionTypeText = "text"
	SectionTypeJSON = "json"
	SectionTypeHTML = "html"
)

// ContentSection is a keyed, typed blob of editable display content.
// SectionKey uniquely identifies a row; the content is opaque here and
// interpreted by the content service according to SectionType.
type ContentSection struct {
	ID             int       `json:"id"`
	SectionKey     string    `json:"section_key"`
	SectionContent string    `json:"section_content"`
	SectionType    string    `json:"section_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ResolvedSection is what the public content endpoint returns: the stored
// content, or the registered fallback when no row exists for the key.
type ResolvedSection struct {
	SectionKey  string   `json:"section_key"`
	SectionType string   `json:"section_type"`
	Text        string   `json:"text,omitempty"`
	Items       []string `json:"items,omitempty"`
}
