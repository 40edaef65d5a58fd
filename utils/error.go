package utils

import (
	"fmt"
)

type ServiceError struct {
	Code uint32
	Msg  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError: code=%d, msg=%s", e.Code, e.Msg)
}

var (
	// business error code: [500000, 600000)
	ErrOpenCsv               = &ServiceError{500001, "open csv error"}
	ErrReadCsv               = &ServiceError{500002, "read csv error"}
	ErrWrongDataType         = &ServiceError{500003, "wrong data type"}
	ErrEmptyPointer          = &ServiceError{500004, "pointer is nil"}
	ErrParameter             = &ServiceError{500005, "invalid parameter"}
	ErrColumnNotExist        = &ServiceError{500006, "column not exist"}
	ErrNoDecisionAttribute   = &ServiceError{500007, "no active decision attribute"}
	ErrUncomparableDecision  = &ServiceError{500008, "decisions are not totally ordered"}
	ErrInvalidThreshold      = &ServiceError{500009, "invalid consistency threshold"}
	ErrAttributeAlreadyUsed  = &ServiceError{500010, "attribute already used in rule conditions"}
	ErrConditionOutOfRange   = &ServiceError{500011, "condition index out of range"}
	ErrFoldNumber            = &ServiceError{500012, "invalid fold number"}
	ErrFilterExpression      = &ServiceError{500013, "invalid rule filter expression"}
	ErrUnknownUnionType      = &ServiceError{500014, "unknown union type"}
	ErrClassificationFailure = &ServiceError{500015, "no rule covers the object and no default decision"}
)
