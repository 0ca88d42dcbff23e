// Package wikipedia is the HTTP side of the scraper: it fetches the list
// page, per-animal article pages and infobox images.
//
// Failures are returned as classified *errors.Error values so callers can
// tell a timeout (ErrorTypeTimeout) from any other transport problem
// (ErrorTypeNetwork, ErrorTypeHTTPStatus, ErrorTypeNotFound). Requests are
// never retried.
package wikipedia
