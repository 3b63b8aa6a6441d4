package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stored files are named "{unix_timestamp}_{uuid}_{original_name}". The
// timestamp drives cleanup and the uuid avoids collisions between uploads
// landing in the same second.

var ErrBadStoredName = errors.New("filename does not follow the timestamp_id_name convention")

// NewFileID returns a fresh "{unix_timestamp}_{uuid}" prefix
func NewFileID() string {
	return fmt.Sprintf("%d_%s", time.Now().Unix(), uuid.New().String())
}

// StoredName builds the on-disk name for an uploaded file
func StoredName(fileID, originalName string) string {
	return fileID + "_" + SanitizeFilename(originalName)
}

// OutputName derives the PDF name sharing the input's prefix
func OutputName(fileID, originalName string) string {
	base := SanitizeFilename(originalName)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return fileID + "_" + base + ".pdf"
}

// ParseTimestamp extracts the creation time embedded in a stored name
func ParseTimestamp(storedName string) (time.Time, error) {
	parts := strings.SplitN(storedName, "_", 2)
	if len(parts) < 2 {
		return time.Time{}, ErrBadStoredName
	}
	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, ErrBadStoredName
	}
	return time.Unix(ts, 0), nil
}

// DownloadName strips the "{timestamp}_{uuid}_" prefix to recover the
// client-facing filename
func DownloadName(storedName string) (string, error) {
	parts := strings.SplitN(storedName, "_", 3)
	if len(parts) < 3 || parts[2] == "" {
		return "", ErrBadStoredName
	}
	if _, err := strconv.ParseInt(parts[0], 10, 64); err != nil {
		return "", ErrBadStoredName
	}
	return parts[2], nil
}

// SanitizeFilename strips path separators and control characters from a
// client-supplied filename so it is safe to join into a storage path
func SanitizeFilename(name string) string {
	// Keep only the final path element of whatever the client sent
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20 || r == 0x7f:
			// drop control characters
		case r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" || out == "." || out == ".." {
		return "upload"
	}
	return out
}

// HasWordExtension reports whether the filename ends in .doc or .docx
func HasWordExtension(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".docx") || strings.HasSuffix(lower, ".doc")
}
