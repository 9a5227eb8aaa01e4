/*
Copyright © 2025 Provisio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how different a supported size may be from the
// requested one before a suggestion stops being useful.
const maxSuggestDistance = 5

// NearestSupportedSize returns the supported VM size closest to size by edit
// distance, or the empty string when nothing is close enough to suggest.
// The membership check itself stays exact match; suggestions only feed
// operator-facing hints.
func NearestSupportedSize(size string, supported []string) string {
	if size == "" {
		return ""
	}

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, candidate := range supported {
		if d := levenshtein.ComputeDistance(size, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
