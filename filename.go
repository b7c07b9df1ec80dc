// filename.go - DOS 8.3 file name synthesis and wildcard matching
//
// Ported in semantics from original_source/libpseudos/src/dos_file_system.rs
// (real_to_dos_name, split_filename, filename_matches_spec); see DESIGN.md.
package pseudodos

import (
	"strconv"
	"strings"
)

const (
	dosTitleMaxLen = 8
	dosExtMaxLen   = 3
)

// DosFileName is an uppercase ASCII 8.3 name: title (<=8 bytes) and
// extension (<=3 bytes, may be empty).
type DosFileName struct {
	Title string
	Ext   string
}

// String renders the DosFileName the way it appears on the wire: title,
// then a dot and the extension if one is present.
func (d DosFileName) String() string {
	if d.Ext == "" {
		return d.Title
	}
	return d.Title + "." + d.Ext
}

// ParseDosFileName splits a raw (possibly lower/mixed case) 8.3 name string
// into its upper-cased title/ext parts, for matching a DOS-side spec (e.g.
// a find-first search pattern) against synthesized names.
func ParseDosFileName(name string) DosFileName {
	title, ext := splitFilename(toDosASCII(name))
	return DosFileName{Title: title, Ext: ext}
}

// toDosASCII transcodes an arbitrary host name to upper-cased ASCII,
// replacing any character outside the single-byte range with '_'.
func toDosASCII(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < 256 {
			b.WriteByte(byte(toUpperASCII(byte(r))))
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func toUpperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// splitFilename splits on the last '.'; if the portion after it is <=3
// bytes keep it whole, else keep only its first 3 bytes; with no dot,
// there is no extension.
func splitFilename(name string) (title, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return name, ""
	}
	after := name[dot+1:]
	if len(after) <= dosExtMaxLen {
		return name[:dot], after
	}
	return name[:dot], after[:dosExtMaxLen]
}

// RealToDosName synthesizes a deterministic 8.3 name for hostName. When
// extraIndex is non-nil, a "~N" disambiguation suffix is appended,
// left-truncating the title so the combined length is exactly 8.
func RealToDosName(hostName string, extraIndex *int) DosFileName {
	ascii := toDosASCII(hostName)
	title, ext := splitFilename(ascii)

	if len(title) > dosTitleMaxLen {
		title = title[:dosTitleMaxLen]
	}
	if len(ext) > dosExtMaxLen {
		ext = ext[:dosExtMaxLen]
	}

	var suffix string
	if extraIndex != nil {
		suffix = "~" + strconv.Itoa(*extraIndex)
	}
	combinedLen := len(title) + len(suffix)
	if combinedLen > dosTitleMaxLen {
		title = title[:len(title)-(combinedLen-dosTitleMaxLen)]
	}
	title += suffix

	return DosFileName{Title: title, Ext: ext}
}

// FilenameMatchesSpec implements the DOS find-first/find-next wildcard
// matcher: title and extension are matched independently against the
// spec's title and (optional) extension. A spec with no extension
// matches any extension. See matchField for the per-field rules.
func FilenameMatchesSpec(name DosFileName, searchSpec string) bool {
	specTitle, specExt, specHasExt := splitSearchSpec(searchSpec)

	if !matchField(name.Title, specTitle) {
		return false
	}
	if !specHasExt {
		return true
	}
	return matchField(name.Ext, specExt)
}

// splitSearchSpec reuses splitFilename so the extension portion of a
// search spec is truncated to 3 bytes the same way a real file name's
// extension is (e.g. "*.HTML" searches for ext "HTM", not "HTML") -
// otherwise a file with the real truncated extension would silently
// fail to match.
func splitSearchSpec(spec string) (title, ext string, hasExt bool) {
	if strings.LastIndexByte(spec, '.') < 0 {
		return spec, "", false
	}
	title, ext = splitFilename(spec)
	return title, ext, true
}

// matchField walks text left-to-right consuming spec bytes: '?' consumes
// any single text byte; a literal spec byte must equal the text byte; '*'
// only advances the spec cursor once the byte *after* it equals the
// current text byte (a one-character lookahead, not general backtracking -
// ported from the original's match_against_spec, see DESIGN.md).
// The match succeeds only once every text byte is consumed and the spec is
// fully consumed (a trailing '*' is allowed).
func matchField(text, spec string) bool {
	specPos := 0
	justProcessedStar := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if specPos >= len(spec) {
			return false
		}
		specChar := spec[specPos]
		switch {
		case specChar == '*':
			if specPos+1 < len(spec) && spec[specPos+1] == c {
				specPos++
			}
			justProcessedStar = true
		case specChar == '?':
			specPos++
		case specChar == c:
			specPos++
		default:
			return false
		}
	}
	if justProcessedStar {
		specPos++
	}
	if specPos == len(spec)-1 && spec[specPos] == '*' {
		specPos++
	}
	return specPos == len(spec)
}
