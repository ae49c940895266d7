package vec

const (
	// HeaderSize is the fixed header size in bytes at the start of every
	// sample archive.
	HeaderSize = 12

	// Extension is the file name suffix that marks a sample archive.
	Extension = ".vec"
)
