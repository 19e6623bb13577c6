package service

// Options adds a layer around an HTTP service. Options are applied in the
// order they are passed to NewHTTPService, each wrapping the previous one.
type Options interface {
	AddOption(h HTTP) HTTP
}
