// Package logger provides slog attribute helpers shared by the settings and
// localization resolvers.
//
// Helpers follow the empty-Attr pattern: nil or zero-value inputs produce an
// empty attribute that slog discards, allowing unconditional calls such as
//
//	log.Warn("market settings source failed",
//		logger.Component("settings"),
//		logger.Market(market),
//		logger.Error(err))
package logger
