package constancias

import "errors"

var (
	ErrDuplicateFolio = errors.New("Folio already exists")
	ErrNotFound       = errors.New("Constancia not found")
)
