package pseudodos

import "testing"

func TestRealToDosNameBasic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"readme.txt", "README.TXT"},
		{"noext", "NOEXT"},
	}
	for _, c := range cases {
		got := RealToDosName(c.in, nil)
		if got.String() != c.want {
			t.Errorf("RealToDosName(%q, nil) = %q, want %q", c.in, got.String(), c.want)
		}
	}
}

func TestRealToDosNameWithSuffixTruncatesToEightBytes(t *testing.T) {
	idx := 1
	got := RealToDosName("verylongname.txt", &idx)
	if got.String() != "VERYLO~1.TXT" {
		t.Errorf("RealToDosName(verylongname.txt, 1) = %q, want VERYLO~1.TXT", got.String())
	}
	if len(got.Title) != dosTitleMaxLen {
		t.Errorf("Title %q length = %d, want %d", got.Title, len(got.Title), dosTitleMaxLen)
	}
}

func TestSplitFilenameDotHandling(t *testing.T) {
	cases := []struct {
		name      string
		wantTitle string
		wantExt   string
	}{
		{"readme.txt", "readme", "txt"},
		{"noext", "noext", ""},
		{"archive.tar.gz", "archive.tar", "gz"},
		{"weirdext.longerthanthree", "weirdext", "lon"},
		{"dotfile.", "dotfile", ""},
	}
	for _, c := range cases {
		title, ext := splitFilename(c.name)
		if title != c.wantTitle || ext != c.wantExt {
			t.Errorf("splitFilename(%q) = (%q, %q), want (%q, %q)", c.name, title, ext, c.wantTitle, c.wantExt)
		}
	}
}

// TestNameCollisionScenarioS1 pins the name-collision disambiguation
// sequence when two host files synthesize to the same 8.3 title.
func TestNameCollisionScenarioS1(t *testing.T) {
	cache := &DirListingCache{
		realToDos: make(map[string]DosFileName),
		dosToReal: make(map[DosFileName]string),
	}

	got1 := cache.GetDosName("foot.text")
	if got1.String() != "FOOT.TEX" {
		t.Errorf("get_dos_name(foot.text) = %q, want FOOT.TEX", got1.String())
	}

	got2 := cache.GetDosName("foot.text2")
	if got2.String() != "FOOT~1.TEX" {
		t.Errorf("get_dos_name(foot.text2) = %q, want FOOT~1.TEX", got2.String())
	}
}

// TestLongNameTruncationScenarioS2 pins the long-name truncation and
// suffix-disambiguation sequence for host names longer than 8 bytes.
func TestLongNameTruncationScenarioS2(t *testing.T) {
	cache := &DirListingCache{
		realToDos: make(map[string]DosFileName),
		dosToReal: make(map[DosFileName]string),
	}

	got1 := cache.GetDosName("filewithlongname.txt")
	if got1.String() != "FILEWITH.TXT" {
		t.Errorf("first = %q, want FILEWITH.TXT", got1.String())
	}

	got2 := cache.GetDosName("filewithlongername.txt")
	if got2.String() != "FILEWI~1.TXT" {
		t.Errorf("second = %q, want FILEWI~1.TXT", got2.String())
	}

	got3 := cache.GetDosName("filewithlongerername.txt")
	if got3.String() != "FILEWI~2.TXT" {
		t.Errorf("third = %q, want FILEWI~2.TXT", got3.String())
	}
}

// TestFilenameMatchesSpecStarMatchesAnyTitle pins the invariant that
// "*.*" matches every name with a non-empty title.
func TestFilenameMatchesSpecStarMatchesAnyTitle(t *testing.T) {
	names := []DosFileName{
		{Title: "A", Ext: "TXT"},
		{Title: "HELLO", Ext: ""},
		{Title: "X", Ext: "Y"},
	}
	for _, n := range names {
		if !FilenameMatchesSpec(n, "*.*") {
			t.Errorf("FilenameMatchesSpec(%v, \"*.*\") = false, want true", n)
		}
	}
}

func TestFilenameMatchesSpecWildcards(t *testing.T) {
	cases := []struct {
		name DosFileName
		spec string
		want bool
	}{
		{DosFileName{"A", "TXT"}, "*.TXT", true},
		{DosFileName{"B", "TXT"}, "*.TXT", true},
		{DosFileName{"C", "BAT"}, "*.TXT", false},
		{DosFileName{"README", "TXT"}, "RE?D*.TXT", true}, // '?' consumes one byte, trailing '*' absorbs the rest
		{DosFileName{"READX", ""}, "RE?D?", true},
		{DosFileName{"FOO", "BAR"}, "FOO", true}, // no ext in spec: any ext matches
		{DosFileName{"PAGE", "HTM"}, "*.HTML", true}, // search ext truncates to 3 bytes, same as a real file name
	}
	for _, c := range cases {
		got := FilenameMatchesSpec(c.name, c.spec)
		if got != c.want {
			t.Errorf("FilenameMatchesSpec(%v, %q) = %v, want %v", c.name, c.spec, got, c.want)
		}
	}
}

func TestParseDosFileNameUppercasesAndReplacesNonASCII(t *testing.T) {
	got := ParseDosFileName("wX文档.txt")
	if got.Ext != "TXT" {
		t.Errorf("Ext = %q, want TXT", got.Ext)
	}
	if got.Title != "WX__" {
		t.Errorf("Title = %q, want WX__ (lowercase upper-cased, multi-byte runes replaced with '_')", got.Title)
	}
}
