package errors

// User-friendly error messages
const (
	MsgPropertyNotFound    = "Property not found. It may have been removed from the catalog."
	MsgUpstreamUnavailable = "We're unable to retrieve listings right now. Please try again in a few minutes."
	MsgRateLimited         = "You're browsing too quickly! Please wait a moment and try again."
	MsgInvalidParameters   = "The provided parameters are invalid. Please check your input and try again."
	MsgInternalError       = "Something went wrong on our end. Please try again later."
)
