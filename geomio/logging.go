// Package geomio adapts github.com/ctessum/geom geometry values to the
// overlay engine's collaborator interfaces (Geometry, PointLocator,
// GeometryFactory), so the engine can run against a real geometry library
// instead of a test double.
package geomio

import "github.com/sirupsen/logrus"

var log = logrus.New()

// SetLogger overrides the package logger.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		return
	}
	log = l
}
