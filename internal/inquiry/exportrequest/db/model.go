package exportrequestdb

import "errors"

var ErrExportRequestNotFound = errors.New("export request not found")
