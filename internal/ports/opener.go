package ports

// FileOpener opens a document with the operating system's default handler
type FileOpener interface {
	OpenFile(path string) error
}
