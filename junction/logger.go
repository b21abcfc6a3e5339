package junction

import "github.com/sirupsen/logrus"

// log is the package-scoped logger, following the module-tagged entry
// pattern used throughout the corpus's simulation packages (one
// logrus.Entry per package, tagged with "module").
var log = logrus.WithField("module", "junction")
