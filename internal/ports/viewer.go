package ports

// DocumentViewer shows an exported document with the system's default handler
type DocumentViewer interface {
	Open(path string) error
}
