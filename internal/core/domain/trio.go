package domain

// AliasEntry is a named shortcut standing in for a fixed pair of
// (domain, style) document references.
type AliasEntry struct {
	// Domain is the reference to the vocabulary/schema document.
	Domain string

	// Style is the reference to the layout program document.
	Style string
}

// AliasTable maps alias names to their reference pairs.
// It is owned by host configuration; the resolution pipeline reads it
// but never mutates it.
type AliasTable map[string]AliasEntry

// Resolve looks up an alias by name.
func (t AliasTable) Resolve(name string) (AliasEntry, bool) {
	entry, ok := t[name]
	return entry, ok
}

// Metadata holds the annotation references extracted from diagram source.
// Fields are empty when the corresponding annotation was absent.
// Produced fresh per parse and discarded once a Trio is assembled.
type Metadata struct {
	// Domain is the reference to the domain document, if annotated.
	Domain string

	// Style is the reference to the style document, if annotated.
	Style string

	// Variation is the layout seed value, if annotated.
	Variation string

	// AliasName is the last alias name seen, whether or not it resolved.
	AliasName string
}

// Trio is the terminal artifact of trio resolution: the bundle the
// external Penrose compiler consumes. Domain and Style hold the fetched
// document bodies, not references. A failed fetch leaves the field as
// an empty string; the failure was already reported through the
// Diagnostics sink, never silently omitted.
type Trio struct {
	// Substance is the original diagram source, byte-identical to
	// the text the annotations were parsed from.
	Substance string

	// Domain is the fetched body of the domain document.
	Domain string

	// Style is the fetched body of the style document.
	Style string

	// Variation is the seed forwarded to the layout optimizer.
	Variation string
}
