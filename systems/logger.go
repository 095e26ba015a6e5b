package systems

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the logger used by every system. A nil logger
// silences logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
