package ports

// Reloader notifies the site renderer that the navigation shape changed.
// Trigger must not block and must not report failures to the caller.
type Reloader interface {
	Trigger()
}
