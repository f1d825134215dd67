package utils

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var mentionPattern = regexp.MustCompile(`@(\w+)`)

// ExtractMentions returns the distinct @usernames in text, in order of first
// appearance.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

var stickerExts = []string{".gif", ".webp", ".png", ".jpg", ".jpeg"}

// IsSticker reports whether a comment body is a bare GIF or sticker link.
func IsSticker(text string) bool {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "http://") && !strings.HasPrefix(t, "https://") {
		return false
	}
	if strings.ContainsAny(t, " \n\t") {
		return false
	}
	lower := strings.ToLower(t)
	if strings.Contains(lower, "giphy.com") || strings.Contains(lower, "tenor.com") {
		return true
	}
	if i := strings.IndexAny(lower, "?#"); i >= 0 {
		lower = lower[:i]
	}
	for _, ext := range stickerExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// UploadName builds the stored name of an uploaded file:
// <epoch-millis>-<random-int><original-extension>.
func UploadName(originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.Intn(1_000_000_000), ext)
}

func Contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// AddUnique appends id unless already present.
func AddUnique(ids []string, id string) []string {
	if Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

// Remove drops every occurrence of id.
func Remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
