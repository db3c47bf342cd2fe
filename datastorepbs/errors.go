package datastorepbs

import "fmt"

// InvalidConversionError is returned when a message cannot be converted to
// the target schema.
type InvalidConversionError struct {
	msg string
}

func (e *InvalidConversionError) Error() string {
	return e.msg
}

func invalidConversionf(format string, args ...interface{}) error {
	return &InvalidConversionError{msg: fmt.Sprintf(format, args...)}
}

// checkConversion returns an InvalidConversionError unless the condition
// holds.
func checkConversion(condition bool, format string, args ...interface{}) error {
	if !condition {
		return invalidConversionf(format, args...)
	}
	return nil
}
