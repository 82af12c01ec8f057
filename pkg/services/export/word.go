package export

import (
	"fmt"
	"io"
)

// Word processors accept HTML wrapped in an Office envelope. The byte order
// mark up front keeps the two working scripts intact.
const (
	wordEnvelopeHead = "<html xmlns:o='urn:schemas-microsoft-com:office:office' " +
		"xmlns:w='urn:schemas-microsoft-com:office:word' " +
		"xmlns='http://www.w3.org/TR/REC-html40'>" +
		"<head><meta charset='utf-8'><title>Export HTML To Doc</title>" +
		"<style>table { border-collapse: collapse; width: 100%; } " +
		"td { border: 1px solid black; padding: 4px; font-family: Arial; font-size: 10pt; } " +
		"tr { page-break-inside: avoid; break-inside: avoid; }</style></head><body>"
	wordEnvelopeTail = "</body></html>"
)

// PackageWord wraps rendered document markup in a word-processor envelope.
func PackageWord(w io.Writer, bodyHTML string) error {
	for _, part := range []string{"\uFEFF", wordEnvelopeHead, bodyHTML, wordEnvelopeTail} {
		if _, err := io.WriteString(w, part); err != nil {
			return fmt.Errorf("failed to write word envelope: %w", err)
		}
	}
	return nil
}
