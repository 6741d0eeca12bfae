package services

import (
	"regexp"
	"strings"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
	"github.com/adityakanu/penrose-vault/internal/logger"
)

// Annotation line patterns. The `--` comment prefix and the tag keyword
// are fixed; tags are case-sensitive and immediately followed by a colon.
// Captured values are trimmed of surrounding whitespace.
var (
	aliasPattern     = regexp.MustCompile(`^\s*--\s*alias:(.*)$`)
	domainPattern    = regexp.MustCompile(`^\s*--\s*domain:(.*)$`)
	stylePattern     = regexp.MustCompile(`^\s*--\s*style:(.*)$`)
	variationPattern = regexp.MustCompile(`^\s*--\s*variation:(.*)$`)
)

// ParseAnnotations scans diagram source line-by-line for annotation tags
// and returns the accumulated metadata.
//
// Precedence is purely positional: every matching line overwrites its
// accumulator, so the last line in document order that sets a field wins
// regardless of tag kind. An alias line sets both the domain and style
// accumulators from the table entry; a later explicit `-- domain:` or
// `-- style:` line overrides just that one field, and an alias line
// after an explicit tag overrides it right back. That asymmetric
// override is the intended contract, not an accident of iteration.
//
// An alias name absent from the table leaves the accumulators untouched.
// There is no error path here; missing or malformed references surface
// at fetch time.
func ParseAnnotations(text string, aliases domain.AliasTable) domain.Metadata {
	var meta domain.Metadata

	for _, line := range strings.Split(text, "\n") {
		if m := aliasPattern.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(m[1])
			meta.AliasName = name
			entry, ok := aliases.Resolve(name)
			if !ok {
				// Unknown alias is a silent no-op at this layer.
				logger.Debug("alias %q not found in alias table", name)
				continue
			}
			meta.Domain = entry.Domain
			meta.Style = entry.Style
			continue
		}
		if m := domainPattern.FindStringSubmatch(line); m != nil {
			meta.Domain = strings.TrimSpace(m[1])
			continue
		}
		if m := stylePattern.FindStringSubmatch(line); m != nil {
			meta.Style = strings.TrimSpace(m[1])
			continue
		}
		if m := variationPattern.FindStringSubmatch(line); m != nil {
			meta.Variation = strings.TrimSpace(m[1])
		}
	}

	return meta
}
