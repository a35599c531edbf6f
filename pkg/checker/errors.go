package checker

import "fmt"

// CheckError describes a single syntax violation on a configuration line.
// The message text is what ends up in the report, so it is written for the
// user rather than for error wrapping.
type CheckError struct {
	Keyword string
	Value   string
	Message string
}

func (e *CheckError) Error() string {
	return e.Message
}

func errUnknownKeyword(keyword string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("Unknown keyword '%s'", keyword),
	}
}

func errWrongMode(keyword, mode string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("Keyword '%s' not allowed in %s mode", keyword, mode),
	}
}

func errArgumentCount(keyword string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("Invalid number of arguments for keyword '%s'", keyword),
	}
}

func errNoArguments(keyword string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("Keyword '%s' takes no arguments", keyword),
	}
}

func errOptionalArgument(keyword string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("Invalid optional argument for keyword '%s'", keyword),
	}
}

func errUnprintable(keyword string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("Invalid characters in value for keyword '%s'", keyword),
	}
}

func errStringFormat(keyword string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("Invalid string format for keyword '%s'", keyword),
	}
}

func errMissingNetworkPart(keyword string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("Missing IP network address part for keyword '%s'", keyword),
	}
}

func errInvalidNetwork(keyword string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("Invalid IP network address for keyword '%s'", keyword),
	}
}

func errInvalidInt(keyword, value string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Value:   value,
		Message: fmt.Sprintf("Invalid integer value '%s' for keyword '%s'", value, keyword),
	}
}

func errInvalidASCII(keyword, value string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Value:   value,
		Message: fmt.Sprintf("Invalid ascii value '%s' for keyword '%s'", value, keyword),
	}
}

func errNoEnumValues(keyword string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Message: fmt.Sprintf("No enumeration values defined for keyword '%s'", keyword),
	}
}

func errInvalidEnum(keyword, value string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Value:   value,
		Message: fmt.Sprintf("Invalid enumeration value '%s' for keyword '%s'", value, keyword),
	}
}

func errInvalidIP(keyword, value string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Value:   value,
		Message: fmt.Sprintf("Invalid IP address '%s' for keyword '%s'", value, keyword),
	}
}

func errInvalidBool(keyword, value string) *CheckError {
	return &CheckError{
		Keyword: keyword,
		Value:   value,
		Message: fmt.Sprintf("Invalid boolean value '%s' for keyword '%s'", value, keyword),
	}
}
