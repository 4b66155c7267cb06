package overlay

import "github.com/sirupsen/logrus"

// log is the package-level logger. This is a library, not a service: only
// Debug-level calls are ever made, at the seams a caller debugging a bad
// overlay result would want visibility into (after noding, after
// labelling, after ring building). Nothing here logs at Info or above.
var log = logrus.New()

// SetLogger overrides the package logger, e.g. so a caller can route these
// Debug-level traces into its own structured logging pipeline.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		return
	}
	log = l
}
