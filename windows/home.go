package windows

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const homeMarkdown = `# Online Appendix: Demographic Data Harmonization in Türkiye

This application presents the **Supplementary Materials** for the study titled **"Aligning Historical Data: Harmonization of the Historical Under-5 Mortality Data in Türkiye"**.

Use the navigation tree on the left to browse the datasets.

## About the Study

### Objective

This study reconstructs Türkiye's historical demographic trends by harmonizing fragmented archival records into a coherent longitudinal dataset. It addresses a critical gap in historical demography: the inconsistency between **mortality records** (often limited to administrative centers) and **census data** (covering the total population).

### Key Methodological Contributions

1. **Digitization & Standardization:** Fragmented historical mortality records from 1931 to 2008 were digitized and reclassified into a standardized **22-age category system**.
2. **Addressing the "Coverage Mismatch":** Historical mortality statistics were predominantly **urban-centric (Province and District Centers - PDC)**, while censuses covered the entire population.
3. **Ratio-Based PDC Reconstruction:** To resolve this, the study introduces a novel **"Ratio-Based PDC Reconstruction Method"**. This approach isolates the true urban risk pools from census data and harmonizes them with mortality registries.

### Data Availability

The datasets provided here serve as the empirical foundation for this reconstruction. Each appendix view renders the underlying table and offers a downloadable copy.
`

// newHomeView renders the study summary that greets the user on startup.
func newHomeView() fyne.CanvasObject {
	rich := widget.NewRichTextFromMarkdown(homeMarkdown)
	rich.Wrapping = fyne.TextWrapWord
	return container.NewScroll(rich)
}
