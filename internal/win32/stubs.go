//go:build !windows

package win32

// HANDLE is a generic kernel object handle. Zero is the failure value.
type HANDLE uintptr

// HDC is a GDI device context. Zero is the failure value.
type HDC uintptr

// SecurityAttributes mirrors SECURITY_ATTRIBUTES. It is accepted and ignored.
type SecurityAttributes struct {
	Length             uint32
	SecurityDescriptor uintptr
	InheritHandle      bool
}

func notImplemented(name string) {
	slogger().Warn("win32: " + name + " not implemented")
}

// CreateSemaphore is not implemented and always returns 0.
func CreateSemaphore(attrs *SecurityAttributes, initialCount, maximumCount int32, name string) HANDLE {
	notImplemented("CreateSemaphoreA")
	return 0
}

// ReleaseSemaphore is not implemented and always returns false.
func ReleaseSemaphore(semaphore HANDLE, releaseCount int32, previousCount *int32) bool {
	notImplemented("ReleaseSemaphore")
	return false
}

// SetEvent is not implemented and always returns false.
func SetEvent(event HANDLE) bool {
	notImplemented("SetEvent")
	return false
}

// DuplicateHandle is not implemented and always returns false. The target
// handle is left untouched.
func DuplicateHandle(sourceProcess, source, targetProcess HANDLE, target *HANDLE,
	desiredAccess uint32, inheritHandle bool, options uint32) bool {
	notImplemented("DuplicateHandle")
	return false
}

// CloseHandle is not implemented and always returns false.
func CloseHandle(object HANDLE) bool {
	notImplemented("CloseHandle")
	return false
}

// GetCurrentProcess is not implemented and always returns 0.
func GetCurrentProcess() HANDLE {
	notImplemented("GetCurrentProcess")
	return 0
}

// GetCurrentProcessId is not implemented and always returns 0.
func GetCurrentProcessId() uint32 {
	notImplemented("GetCurrentProcessId")
	return 0
}

// ProcessIdToSessionId is not implemented. It stores 0 in *sessionID when
// sessionID is non-nil and returns false.
func ProcessIdToSessionId(pid uint32, sessionID *uint32) bool {
	notImplemented("ProcessIdToSessionId")
	if sessionID != nil {
		*sessionID = 0
	}
	return false
}

// CreateCompatibleDC is not implemented and always returns 0.
func CreateCompatibleDC(hdc HDC) HDC {
	notImplemented("CreateCompatibleDC")
	return 0
}

// DeleteDC is not implemented and always returns false.
func DeleteDC(hdc HDC) bool {
	notImplemented("DeleteDC")
	return false
}
