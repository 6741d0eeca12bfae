package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driving"
)

// Ensure BlockDiscovery implements the interface.
var _ driving.BlockService = (*BlockDiscovery)(nil)

// fenceLanguage is the code fence tag that marks a diagram block.
const fenceLanguage = "penrose"

// BlockDiscovery finds fenced penrose blocks inside markdown notes.
type BlockDiscovery struct{}

// NewBlockDiscovery creates a new block discovery service.
func NewBlockDiscovery() *BlockDiscovery {
	return &BlockDiscovery{}
}

// Discover returns the penrose blocks in a note, in document order.
// The block substance excludes the fence lines but is otherwise
// preserved byte-for-byte. An unterminated fence extends to the end of
// the note.
func (d *BlockDiscovery) Discover(noteURI, text string) []domain.DiagramBlock {
	lines := strings.Split(text, "\n")

	var blocks []domain.DiagramBlock
	var body []string
	inBlock := false
	startLine := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !inBlock {
			if isOpeningFence(trimmed) {
				inBlock = true
				startLine = i + 1
				body = body[:0]
			}
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			blocks = append(blocks, domain.DiagramBlock{
				ID:        uuid.New().String(),
				NoteURI:   noteURI,
				Substance: strings.Join(body, "\n"),
				StartLine: startLine,
				EndLine:   i + 1,
			})
			inBlock = false
			continue
		}

		body = append(body, line)
	}

	// Unterminated fence: the block runs to EOF.
	if inBlock {
		blocks = append(blocks, domain.DiagramBlock{
			ID:        uuid.New().String(),
			NoteURI:   noteURI,
			Substance: strings.Join(body, "\n"),
			StartLine: startLine,
			EndLine:   len(lines),
		})
	}

	return blocks
}

// isOpeningFence reports whether a trimmed line opens a penrose block.
func isOpeningFence(line string) bool {
	if !strings.HasPrefix(line, "```") {
		return false
	}
	tag := strings.TrimSpace(strings.TrimPrefix(line, "```"))
	return tag == fenceLanguage
}
