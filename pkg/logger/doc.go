// Package logger provides the structured logging interface shared by every
// component of the scraper.
//
// It wraps zerolog with a small interface so components receive a Logger in
// their constructor instead of reaching for a package global. The instance
// is built once in the command entry point:
//
//	log, err := logger.New(&cfg.Logging)
//	if err != nil {
//	    return err
//	}
//	s := scraper.New(cfg, client, log)
//
// Output goes to a human readable console writer on stdout and, when
// logging.file is set, to that file too. Writes are serialized so lines from
// concurrent download workers never interleave.
//
// Tests use NewTestLogger to capture and assert on messages, or
// NewNopLogger to discard them.
package logger
