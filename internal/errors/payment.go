package errors

var (
	ErrIntentNotFound = &DomainError{
		Code:    "INTENT_NOT_FOUND",
		Message: "Transaction not found in system",
	}
	ErrIntentExists = &DomainError{
		Code:    "INTENT_EXISTS",
		Message: "transaction note already confirmed",
	}
	ErrUnknownPlan = &DomainError{
		Code:    "UNKNOWN_PLAN",
		Message: "unknown plan tier",
	}
	ErrLicenseNotFound = &DomainError{
		Code:    "LICENSE_NOT_FOUND",
		Message: "license key not found or not active",
	}
)
