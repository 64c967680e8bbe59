package pathtime

import "github.com/sirupsen/logrus"

// log 时空障碍图模块的日志记录器
var log = logrus.WithField("module", "pathtime")
