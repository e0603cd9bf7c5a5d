package kerrors

// Result codes carried by typed shell errors, following the kernel errno
// numbering where one exists.
const (
	ENOENT  int64 = 2  // No such file or directory
	EEXIST  int64 = 17 // File exists
	ENOTDIR int64 = 20 // Not a directory
	EISDIR  int64 = 21 // Is a directory
	EINVAL  int64 = 22 // Invalid argument

	ENOCMD int64 = 127 // Command not found (shell convention)
)
