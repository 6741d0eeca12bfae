package driving

import "github.com/adityakanu/penrose-vault/internal/core/domain"

// BlockService discovers diagram blocks inside notes.
type BlockService interface {
	// Discover returns the fenced penrose blocks in a note, in
	// document order.
	Discover(noteURI, text string) []domain.DiagramBlock
}
