package application

import "jsonlscope/internal/domain"

// Report is re-exported for adapters that render a completed analysis
type Report = domain.Report
