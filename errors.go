// errors.go - DOS error code taxonomy
//
// These are the numeric codes returned to the guest in AX with CF=1 by
// INT 21h file operations. They are distinct from Go's own error type:
// DosError implements error so host code can log/wrap it, but the
// dispatcher (int21_dos.go) unwraps it back to the bare numeric code
// before it reaches the guest.
package pseudodos

// DosErrorCode is a guest-visible DOS error number.
type DosErrorCode uint16

const (
	ErrFileNotFound         DosErrorCode = 0x02
	ErrPathNotFound         DosErrorCode = 0x03
	ErrNoFileHandlesLeft    DosErrorCode = 0x04
	ErrAccessDenied         DosErrorCode = 0x05
	ErrInvalidFileHandle    DosErrorCode = 0x06
	ErrInsufficientMemory   DosErrorCode = 0x08
	ErrInvalidFileAccessMode DosErrorCode = 0x0C
	ErrInvalidData          DosErrorCode = 0x0D
	ErrNoMoreFiles          DosErrorCode = 0x12
	ErrFileAlreadyExists    DosErrorCode = 0x50
)

var dosErrorNames = map[DosErrorCode]string{
	ErrFileNotFound:          "file not found",
	ErrPathNotFound:          "path not found",
	ErrNoFileHandlesLeft:     "no file handles left",
	ErrAccessDenied:          "access denied",
	ErrInvalidFileHandle:     "invalid file handle",
	ErrInsufficientMemory:    "insufficient memory",
	ErrInvalidFileAccessMode: "invalid file access mode",
	ErrInvalidData:           "invalid data",
	ErrNoMoreFiles:           "no more files",
	ErrFileAlreadyExists:     "file already exists",
}

// DosError wraps a DosErrorCode as a Go error for host-side logging.
type DosError struct {
	Code DosErrorCode
}

func (e DosError) Error() string {
	if name, ok := dosErrorNames[e.Code]; ok {
		return name
	}
	return "unknown DOS error"
}

// AsDosError extracts a DosErrorCode from err, mapping any error that is
// not a DosError to PathNotFound. It does not log; hostErrorToDosCode logs
// the host errors it cannot classify.
func AsDosError(err error) DosErrorCode {
	var de DosError
	if e, ok := err.(DosError); ok {
		de = e
		return de.Code
	}
	return ErrPathNotFound
}

// FatalError signals a condition that is unrecoverable for the guest VM
// (an unknown interrupt subcode or unknown I/O port): the dispatcher
// cannot safely continue, and surfaces this to the host driver as an
// abort with diagnostics rather than a guest-visible error code.
type FatalError struct {
	Reason string
}

func (e FatalError) Error() string { return "pseudodos: fatal: " + e.Reason }
