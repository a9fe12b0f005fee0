package api

import "time"

// Kind identifies the template used to render an element.
type Kind string

const (
	KindHeader       Kind = "header"
	KindText         Kind = "text"
	KindBanner       Kind = "banner"
	KindQuote        Kind = "quote"
	KindBadge        Kind = "badge"
	KindTechStack    Kind = "techstack"
	KindImage        Kind = "image"
	KindCodeBlock    Kind = "codeblock"
	KindTable        Kind = "table"
	KindList         Kind = "list"
	KindDivider      Kind = "divider"
	KindInstallation Kind = "installation"
	KindSocials      Kind = "socials"
	KindStats        Kind = "stats"
	KindSpacer       Kind = "spacer"
)

// Element is one block of a README document. Kind selects the template;
// only the fields that kind uses are populated, the rest stay zero.
type Element struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	// header, text, quote
	Text  string `json:"text,omitempty"`
	Level int    `json:"level,omitempty"` // header depth, clamped to 1..6

	// banner
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`

	// badge
	Label   string `json:"label,omitempty"`
	Message string `json:"message,omitempty"`
	Color   string `json:"color,omitempty"`

	// techstack, list, installation
	Items   []string `json:"items,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`

	// image, stats
	URL   string `json:"url,omitempty"`
	Alt   string `json:"alt,omitempty"`
	Width int    `json:"width,omitempty"`

	// codeblock, installation
	Language string `json:"language,omitempty"`
	Code     string `json:"code,omitempty"`

	// table
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`

	// divider
	Style string `json:"style,omitempty"`

	// socials
	Links []Link `json:"links,omitempty"`

	// stats
	Username string `json:"username,omitempty"`
}

// Link is a labelled URL used by socials elements.
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Document is an ordered list of elements plus library metadata.
type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Elements  []Element `json:"elements"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDocument creates a Document with timestamps set.
func NewDocument(id, name string, elements []Element, now time.Time) Document {
	return Document{
		ID:        id,
		Name:      name,
		Elements:  append([]Element(nil), elements...),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// Touch updates UpdatedAt (call before persisting an update).
func (d *Document) Touch(now time.Time) { d.UpdatedAt = now.UTC() }
