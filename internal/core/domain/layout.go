package domain

const (
	// AppName is the name of the binary and of its cache directory.
	AppName = "seek"

	// CacheFilePrefix prefixes fingerprinted cache file names.
	CacheFilePrefix = "services-"

	// CacheFileExt is the extension of cache files.
	CacheFileExt = ".bin"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
