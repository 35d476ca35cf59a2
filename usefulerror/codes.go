package usefulerror

// Error codes shared across sigtoggle. Human friendly names, not posix errno.
// Reuse before adding new ones.
const (
	ErrCodeInvalidArgument  = "InvalidArgument"
	ErrCodePermissionDenied = "PermissionDenied"
	ErrCodeNotFound         = "NotFound"
	ErrCodeCanceled         = "Canceled"
	ErrCodeUnexpectedEOF    = "UnexpectedEOF"
	ErrCodeUnknown          = "Unknown"
	ErrCodeLifecycle        = "Lifecycle"

	// Toggle taxonomy.
	ErrCodeInvalidChord    = "InvalidChord"
	ErrCodeProcessNotFound = "ProcessNotFound"
	ErrCodeHookSkip        = "HookSkip"
	ErrCodeListenerFailure = "ListenerFailure"
)
