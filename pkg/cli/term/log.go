package term

import "src.clint.sh/pkg/logutil"

var logger = logutil.GetLogger("[cli/term] ")
