package domain

import "errors"

var (
	ErrTargetNotFound      = errors.New("sales target not found")
	ErrInvalidTargetWindow = errors.New("target end date before start date")
	ErrSalesmanRequired    = errors.New("salesman reference is required")
	ErrNegativeTargetValue = errors.New("target value must be >= 0")
	ErrCancelTarget        = errors.New("failed to cancel target")
)
