package woordenlijst

import (
	"strings"
)

const (
	// MaxUploadBytes is the inclusive upper bound on payload size.
	MaxUploadBytes = 1 << 20

	// TextExtension is the accepted file name extension.
	TextExtension = ".txt"

	// TextMediaType is the accepted declared media type.
	TextMediaType = "text/plain"
)

// ValidateUpload checks a candidate payload against the upload policy.
// A payload passes when its declared media type indicates plain text or
// its declared name carries the .txt extension, and its length does not
// exceed MaxUploadBytes. The first failing rule wins.
//
// The content itself is never inspected: mis-declared or mis-encoded
// text is accepted as long as the declaration passes.
func ValidateUpload(byteLength int64, declaredMediaType, declaredName string) error {
	if !isPlainText(declaredMediaType) && !strings.HasSuffix(declaredName, TextExtension) {
		return &ValidationError{Reason: ReasonUnsupportedType}
	}

	if byteLength > MaxUploadBytes {
		return &ValidationError{Reason: ReasonTooLarge}
	}

	return nil
}

// isPlainText reports whether the declared media type is text/plain,
// ignoring parameters such as charset.
func isPlainText(mediaType string) bool {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	return mediaType == TextMediaType || strings.HasPrefix(mediaType, TextMediaType+";")
}
