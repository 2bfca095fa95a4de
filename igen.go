// igen-go is a general-purpose utility library: small, independent helper packages for
// strings (strutil), slices (slutil), objects and maps (objutil), optionals and results (opt),
// hashing structures (hash), json and unicode encoding (encoding/json, encoding/codec), and
// calendar arithmetic (caltime).
//
// Every helper is a pure, synchronous function over its inputs, there is no shared mutable
// state between calls and all returned values are freshly allocated, so the packages are safe
// to use from concurrent goroutines.
package igen

import (
	"github.com/igen-org/igen-go/util/utillog"
	"github.com/sirupsen/logrus"
)

// Get pre-configured TextFormatter for logrus.
func PreConfiguredFormatter() *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp: true,
	}
}

// SetupLog configures logrus with the pre-configured formatter and rewires the leaf util
// packages' log funcs onto it.
func SetupLog() {
	logrus.SetFormatter(PreConfiguredFormatter())
	utillog.DebugLog = func(pat string, args ...any) {
		logrus.Debugf(pat, args...)
	}
	utillog.ErrorLog = func(pat string, args ...any) {
		logrus.Errorf(pat, args...)
	}
}
