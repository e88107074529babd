package vault

// Provider is the interface for vault file-tree access. All paths are
// vault-relative and slash-separated; "" addresses the root folder.
type Provider interface {
	// Children returns the immediate child nodes of a folder. Order is
	// whatever the underlying file system yields; callers sort.
	Children(folder string) ([]Node, error)
	// Stat resolves a path to a node, or an error if it does not exist.
	Stat(path string) (Node, error)
	// Read returns the raw bytes of the document at path.
	Read(path string) ([]byte, error)
	// Write atomically replaces the full content of the document at path.
	Write(path string, content []byte) error
}
