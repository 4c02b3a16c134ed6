package constant

import "errors"

// Structured error codes for dashboard responses
var (
	ErrInternalServer          = errors.New("DSH-0001")
	ErrCustomizationLoadFailed = errors.New("DSH-0002")
	ErrUnknownTab              = errors.New("DSH-0003")
	ErrInvalidCustomization    = errors.New("DSH-0004")
	ErrUnknownFeature          = errors.New("DSH-0005")
	ErrFeatureDisabled         = errors.New("DSH-0006")
	ErrUnknownChart            = errors.New("DSH-0007")
	ErrUnknownDataList         = errors.New("DSH-0008")
	ErrUnsupportedFormat       = errors.New("DSH-0009")
	ErrDuplicateComponent      = errors.New("DSH-0010")
	ErrUnknownSection          = errors.New("DSH-0011")
)
