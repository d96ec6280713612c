// Copyright 2026 Şahin Bingöl
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package windows

import "unicode/utf8"

// Column sizing for the dataset grids. Cell text is mostly short names and
// digit runs, so widths come from a per-rune estimate with a floor and a cap.
const (
	columnRuneWidth = 9
	columnPadding   = 28
	minColumnWidth  = 90
	maxColumnWidth  = 360
)

// columnWidth estimates the display width of one table column from its
// header and the longest cell it holds.
func columnWidth(header string, cells []string) float32 {
	longest := utf8.RuneCountInString(header)
	for _, cell := range cells {
		if n := utf8.RuneCountInString(cell); n > longest {
			longest = n
		}
	}
	width := float32(longest*columnRuneWidth + columnPadding)
	if width < minColumnWidth {
		return minColumnWidth
	}
	if width > maxColumnWidth {
		return maxColumnWidth
	}
	return width
}
