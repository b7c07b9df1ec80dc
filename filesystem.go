// filesystem.go - DOS file-system operations over a host directory
//
// Ported in semantics from original_source/.../dos_file_system.rs's
// StandardDosFileSystem. Handles are 1-based slot indices into a
// never-compacted arena.
package pseudodos

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileAccessMode selects how DosFileSystem.Open opens a host file.
type FileAccessMode int

const (
	AccessReadOnly FileAccessMode = iota
	AccessWriteOnly
	AccessReadWrite
)

// SeekOrigin selects the reference point for DosFileSystem.Seek.
type SeekOrigin int

const (
	SeekStart SeekOrigin = iota
	SeekCurrent
	SeekEnd
)

// dtaFilenameOffset and dtaReservedStart are the DTA layout constants:
// offsets 0x15..0x1E are zeroed, the ASCIIZ 8.3 name starts at 0x1E.
const (
	dtaReservedStart  = 0x15
	dtaFilenameOffset = 0x1E
)

// DosFileSystem translates DOS file-system calls onto a host directory.
type DosFileSystem struct {
	rootPath   string
	handles    []*os.File
	dirListing *DirListingCache
	findQueue  []DosFileName // empty between a NoMoreFiles result and the next find-first
}

// NewDosFileSystem opens a file-system view rooted at rootPath.
func NewDosFileSystem(rootPath string) *DosFileSystem {
	return &DosFileSystem{
		rootPath:   rootPath,
		dirListing: NewDirListingCache(rootPath),
	}
}

// realPath resolves a DOS-visible filename to a host path within rootPath.
func (fsys *DosFileSystem) realPath(dosFilename string) string {
	realName := fsys.dirListing.GetRealName(ParseDosFileName(dosFilename))
	return filepath.Join(fsys.rootPath, realName)
}

// allocateSlot returns the index of the first empty handle slot, growing
// the table if every slot is occupied. Slots are never compacted, so a
// handle (slot+1) remains stable for the life of the open file.
func (fsys *DosFileSystem) allocateSlot() int {
	for i, f := range fsys.handles {
		if f == nil {
			return i
		}
	}
	fsys.handles = append(fsys.handles, nil)
	return len(fsys.handles) - 1
}

func (fsys *DosFileSystem) fileAt(handle uint16) (*os.File, DosErrorCode, bool) {
	if handle == 0 {
		return nil, ErrInvalidFileHandle, false
	}
	idx := int(handle) - 1
	if idx < 0 || idx >= len(fsys.handles) || fsys.handles[idx] == nil {
		return nil, ErrInvalidFileHandle, false
	}
	return fsys.handles[idx], 0, true
}

// Create creates (or truncates) a host file and installs it in a handle
// slot; attrs is accepted but not interpreted (no attribute semantics
// are implemented in this MVP).
func (fsys *DosFileSystem) Create(dosFilename string, attrs uint16) (uint16, error) {
	_ = attrs
	path := fsys.realPath(dosFilename)
	slot := fsys.allocateSlot()

	f, err := os.Create(path)
	if err != nil {
		return 0, DosError{hostErrorToDosCode(err)}
	}
	fsys.handles[slot] = f
	return uint16(slot + 1), nil
}

// Open opens a host file in the given access mode; the write-only and
// read-write modes create the file if it does not exist.
func (fsys *DosFileSystem) Open(dosFilename string, mode FileAccessMode) (uint16, error) {
	path := fsys.realPath(dosFilename)
	slot := fsys.allocateSlot()

	var flag int
	switch mode {
	case AccessReadOnly:
		flag = os.O_RDONLY
	case AccessWriteOnly:
		flag = os.O_WRONLY | os.O_CREATE
	case AccessReadWrite:
		flag = os.O_RDWR | os.O_CREATE
	default:
		return 0, DosError{ErrInvalidFileAccessMode}
	}

	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return 0, DosError{hostErrorToDosCode(err)}
	}
	fsys.handles[slot] = f
	return uint16(slot + 1), nil
}

// Close releases a handle slot for reuse.
func (fsys *DosFileSystem) Close(handle uint16) error {
	f, code, ok := fsys.fileAt(handle)
	if !ok {
		return DosError{code}
	}
	idx := int(handle) - 1
	fsys.handles[idx] = nil
	// TODO: this error is returned raw rather than routed through
	// hostErrorToDosCode, so a close failure falls through AsDosError's
	// default to ErrPathNotFound instead of a more specific code.
	return f.Close()
}

// Read reads up to len(buf) bytes, returning the actual count read.
func (fsys *DosFileSystem) Read(handle uint16, buf []byte) (uint16, error) {
	f, code, ok := fsys.fileAt(handle)
	if !ok {
		return 0, DosError{code}
	}
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return 0, DosError{hostErrorToDosCode(err)}
	}
	return uint16(n), nil
}

// Write is a stub: it returns InvalidData rather than aborting the
// guest VM, since no in-scope DOS program in this layer performs writes.
func (fsys *DosFileSystem) Write(handle uint16, data []byte) (uint16, error) {
	if _, code, ok := fsys.fileAt(handle); !ok {
		return 0, DosError{code}
	}
	return 0, DosError{ErrInvalidData}
}

// Seek repositions handle per origin and returns the new absolute position.
func (fsys *DosFileSystem) Seek(handle uint16, offset int32, origin SeekOrigin) (uint32, error) {
	f, code, ok := fsys.fileAt(handle)
	if !ok {
		return 0, DosError{code}
	}

	var whence int
	switch origin {
	case SeekStart:
		whence = io.SeekStart
	case SeekCurrent:
		whence = io.SeekCurrent
	case SeekEnd:
		whence = io.SeekEnd
	default:
		return 0, DosError{ErrInvalidData}
	}

	pos, err := f.Seek(int64(offset), whence)
	if err != nil {
		return 0, DosError{hostErrorToDosCode(err)}
	}
	return uint32(pos), nil
}

// FindFirstFile builds the match queue for searchSpec from the cached
// directory listing, then immediately serves the first match via
// FindNextFile.
func (fsys *DosFileSystem) FindFirstFile(buf []byte, attrs uint16, searchSpec string) error {
	_ = attrs
	var queue []DosFileName
	fsys.dirListing.listDir(func(name DosFileName) {
		if FilenameMatchesSpec(name, searchSpec) {
			queue = append(queue, name)
		}
	})
	fsys.findQueue = queue
	return fsys.FindNextFile(buf)
}

// FindNextFile pops the front of the match queue and writes its 8.3 name
// into the 128-byte DTA buffer at offset 0x1E, zeroing the reserved region
// first. Returns NoMoreFiles once the queue is exhausted or absent.
func (fsys *DosFileSystem) FindNextFile(buf []byte) error {
	if len(fsys.findQueue) == 0 {
		return DosError{ErrNoMoreFiles}
	}
	next := fsys.findQueue[0]
	fsys.findQueue = fsys.findQueue[1:]

	for i := dtaReservedStart; i <= dtaFilenameOffset; i++ {
		buf[i] = 0
	}
	name := next.String()
	copy(buf[dtaFilenameOffset:], name)
	buf[dtaFilenameOffset+len(name)] = 0
	return nil
}

// hostErrorToDosCode maps a host I/O error to the DOS error taxonomy;
// unrecognized categories are treated as PathNotFound and logged.
func hostErrorToDosCode(err error) DosErrorCode {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrAccessDenied
	case errors.Is(err, fs.ErrExist):
		return ErrFileAlreadyExists
	default:
		logWarn("unexpected host file error", "error", err)
		return ErrPathNotFound
	}
}
