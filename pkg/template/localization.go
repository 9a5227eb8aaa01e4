/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package template

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocalizationContext formats user-facing validation messages for a target
// language. The host supplies one per validation call; message templates fall
// back to their literal format string when no translation is registered.
type LocalizationContext struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocalizationContext creates a LocalizationContext for the given language.
func NewLocalizationContext(tag language.Tag) *LocalizationContext {
	return &LocalizationContext{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

// DefaultLocalizationContext returns a LocalizationContext for American English.
func DefaultLocalizationContext() *LocalizationContext {
	return NewLocalizationContext(language.AmericanEnglish)
}

// Tag returns the language tag this context formats for.
func (l *LocalizationContext) Tag() language.Tag {
	return l.tag
}

// Localize formats a message template with the given arguments.
func (l *LocalizationContext) Localize(format string, args ...any) string {
	return l.printer.Sprintf(format, args...)
}
