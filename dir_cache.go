// dir_cache.go - host-directory <-> DOS 8.3 name bijection
//
// DirListingCache keeps both mapping directions for one host directory in
// sync (the two maps are inverses of each other) and additively rebuilds
// itself on every listing operation, ported from
// original_source/libpseudos/src/dos_file_system.rs's DirListingCache.
package pseudodos

import (
	"os"
)

// DirListingCache maps host file names to synthesized DosFileNames and back,
// for a single host directory.
type DirListingCache struct {
	dirPath      string
	realToDos    map[string]DosFileName
	dosToReal    map[DosFileName]string
}

// NewDirListingCache creates a cache over dirPath and performs an initial
// listing so pre-existing files get stable names immediately.
func NewDirListingCache(dirPath string) *DirListingCache {
	c := &DirListingCache{
		dirPath:   dirPath,
		realToDos: make(map[string]DosFileName),
		dosToReal: make(map[DosFileName]string),
	}
	c.listDir(nil)
	return c
}

// GetDosName returns the cached DOS name for a host file name, synthesizing
// and registering a new, collision-free one if this is the first time it's
// seen.
func (c *DirListingCache) GetDosName(hostName string) DosFileName {
	if existing, ok := c.realToDos[hostName]; ok {
		return existing
	}

	dosName := RealToDosName(hostName, nil)
	nameIndex := 1
	for {
		if _, collides := c.dosToReal[dosName]; !collides {
			break
		}
		idx := nameIndex
		dosName = RealToDosName(hostName, &idx)
		nameIndex++
	}

	c.dosToReal[dosName] = hostName
	c.realToDos[hostName] = dosName
	return dosName
}

// GetRealName resolves a DosFileName back to a host file name, refreshing
// the listing first so recently-created-on-disk files are picked up. If the
// name is unmapped (e.g. a file about to be created), the DOS name itself
// is used as the host name.
func (c *DirListingCache) GetRealName(dosName DosFileName) string {
	c.listDir(nil)
	if existing, ok := c.dosToReal[dosName]; ok {
		return existing
	}

	realName := dosName.String()
	c.dosToReal[dosName] = realName
	c.realToDos[realName] = dosName
	return realName
}

// listDir enumerates the host directory, registering any unseen entries,
// and invokes onFound (if non-nil) for every entry's DOS name - used by
// find-first to build its match queue in one pass.
func (c *DirListingCache) listDir(onFound func(DosFileName)) {
	entries, err := os.ReadDir(c.dirPath)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		dosName := c.GetDosName(name)
		if onFound != nil {
			onFound(dosName)
		}
	}
}
