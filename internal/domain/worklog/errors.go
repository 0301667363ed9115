package worklog

import "errors"

var (
	ErrWorkLogNotFound              = errors.New("worklog not found")
	ErrTimeSegmentNotFound          = errors.New("time segment not found")
	ErrTimeSegmentAlreadyDeleted    = errors.New("time segment already deleted")
	ErrInvalidRemittanceStatusParam = errors.New("remittance status filter must be REMITTED or UNREMITTED")
)
