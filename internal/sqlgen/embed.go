package sqlgen

import (
	_ "embed"
)

// The default maintenance template is embedded at compile time, so the
// generator can run without a checked-out template file. An explicitly
// configured template path always takes precedence; the embedded text is
// used only when no path is set.

//go:embed templates/configure_timeseries_maintenance.sql
var defaultTemplate string
