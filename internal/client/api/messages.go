package api

import "errors"

// GenericErrorMessage is shown whenever no better message can be derived:
// transport failures, empty error bodies, undecodable payloads.
const GenericErrorMessage = "Une erreur est survenue"

// knownMessages maps server error strings to their localized replacements.
// Anything not listed here passes through verbatim.
var knownMessages = map[string]string{
	"Email already exists": "Cette adresse email est deja utilisee",
}

// DisplayMessage derives the user-facing text for a failed request:
// known-message lookup, then the verbatim server message, then the generic
// fallback. Errors that never reached the server (nil response, cancellation)
// always yield the fallback.
func DisplayMessage(err error) string {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return GenericErrorMessage
	}
	if reqErr.Message == "" {
		return GenericErrorMessage
	}
	if localized, ok := knownMessages[reqErr.Message]; ok {
		return localized
	}
	return reqErr.Message
}
