package constant

// runtime.GOOS values the platform-specific code branches on.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	Windows = "windows"
	Android = "android"
)
