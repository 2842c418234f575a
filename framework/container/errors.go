package container

import "fmt"

// BindingNotFoundError is returned by Make when no factory (or instance) has
// been registered for an abstract. Absence of a binding is a programming
// error and must surface immediately — the container never substitutes a
// nil or default value.
//
//	_, err := c.Make("mailer")
//	var notFound *container.BindingNotFoundError
//	if errors.As(err, &notFound) {
//	    log.Fatalf("missing binding: %s", notFound.Abstract)
//	}
type BindingNotFoundError struct {
	// Abstract is the identifier that had no binding.
	Abstract string
}

func (e *BindingNotFoundError) Error() string {
	return fmt.Sprintf("container: no binding registered for [%s]", e.Abstract)
}

// ResolutionError is returned by Resolve when a binding resolves to a value
// of the wrong concrete type.
type ResolutionError struct {
	// Abstract is the identifier that was resolved.
	Abstract string
	// Want is a description of the requested type, Got of the actual one.
	Want string
	Got  string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("container: [%s] resolved to %s, want %s", e.Abstract, e.Got, e.Want)
}
