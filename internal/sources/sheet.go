package sources

import "strings"

// Sheet-name keywords in priority order, used to pick the roster sheet out
// of a multi-sheet workbook export. Matched case-insensitively as
// substrings.
var (
	sourceSheetKeywords = []string{"data", "student", "extract", "form", "opt", "sheet1"}
	targetSheetKeywords = []string{"template", "data", "student", "form", "comparison", "traversa", "opt", "sheet1"}
)

// extractedDataSheet is the sheet name the form extractor writes; when
// present it always wins on the source side.
const extractedDataSheet = "Extracted Data"

// SelectSheet picks the most likely roster sheet from a workbook's sheet
// names. Keywords are tried in priority order and the first sheet whose
// name contains the keyword wins. When nothing matches, the first sheet is
// used; an empty sheet list yields an empty name.
func SelectSheet(names []string, side Side) string {
	if len(names) == 0 {
		return ""
	}

	if side == SideSource {
		for _, name := range names {
			if name == extractedDataSheet {
				return name
			}
		}
	}

	keywords := targetSheetKeywords
	if side == SideSource {
		keywords = sourceSheetKeywords
	}

	for _, keyword := range keywords {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), keyword) {
				return name
			}
		}
	}

	return names[0]
}
