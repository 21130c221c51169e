package apperror

import "errors"

var (
	ErrInvalidColumn        = errors.New("invalid column index")
	ErrColumnFull           = errors.New("column is already full")
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrNoLegalMoves         = errors.New("no legal moves")
	ErrUnknownAgent         = errors.New("unknown agent kind")
)
