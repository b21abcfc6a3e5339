package geom

import "github.com/sirupsen/logrus"

// log is the package-scoped logger for geom. Nearly everything here is pure
// and side-effect free; the logger exists for the rare degenerate-input
// path (an offset that collapses to a degenerate polyline) that is worth a
// debug trace alongside the error it returns.
var log = logrus.WithField("module", "geom")
