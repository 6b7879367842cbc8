package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/junkyard"
)

// Ensure LoggingParser implements junkyard.InventoryParser.
var _ junkyard.InventoryParser = (*LoggingParser)(nil)

// LoggingParser wraps an InventoryParser with debug logging.
type LoggingParser struct {
	next   junkyard.InventoryParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next junkyard.InventoryParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the record count.
func (p *LoggingParser) Parse(text string, sourceURL string) (records []*junkyard.InventoryRecord) {
	defer func(begin time.Time) {
		p.logger.Debug("parse",
			"url", sourceURL,
			"bytes", len(text),
			"count", len(records),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Parse(text, sourceURL)
}
