package evaluation

import "fmt"

// EmptyInputError indicates the interview document has no questions to
// evaluate. This is a precondition failure for the whole batch, not a
// per-item one.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "interview document contains no questions"
}

// DocumentNotFoundError indicates the interview document does not exist.
type DocumentNotFoundError struct {
	DocID string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("interview document not found: %s", e.DocID)
}

// PermissionDeniedError indicates the caller does not own the document.
type PermissionDeniedError struct {
	DocID string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("caller does not own interview document: %s", e.DocID)
}
