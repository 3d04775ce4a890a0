package schnorr

import (
	"github.com/sirupsen/logrus"
)

// Logger receives protocol tracing. Replace it, or lower its level, to silence
// or redirect output.
var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
}
