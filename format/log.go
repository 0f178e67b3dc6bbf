package format

import "github.com/tliron/commonlog"

func log() commonlog.Logger {
	return commonlog.GetLogger("huekit.format")
}
