package ports

// Renderer converts a markdown document to HTML
type Renderer interface {
	Render(source []byte) ([]byte, error)
}
