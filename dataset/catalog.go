package dataset

// Appendix describes one published dataset: which workbook it comes from,
// how its header is shaped, and which interactions its view offers.
type Appendix struct {
	// Title names the appendix in navigation and tabs.
	Title string

	// File is the workbook file name inside the data folder.
	File string

	// Shape states how the workbook's header rows are read.
	Shape HeaderShape

	// Intro is the short markdown description shown above the table.
	Intro string

	// ExportStem is the fixed, format-independent base name of exports.
	ExportStem string

	// ExportIndex preserves the row index on export, as the hierarchical
	// appendix is published with it.
	ExportIndex bool

	// Filterable views offer the category (province) row filter.
	Filterable bool

	// Chartable views offer the time-series chart.
	Chartable bool
}

// Appendices lists the published datasets in presentation order.
func Appendices() []Appendix {
	return []Appendix{
		{
			Title: "Appendix E: Harmonized Mortality Data",
			File:  "all_deaths-by_age_province.xlsx",
			Shape: FlatHeader,
			Intro: "This dataset contains the fully harmonized mortality statistics, standardized into comparable age groups.\n\n" +
				"* **Coverage:** National Level (1950–2008) & Provincial Level (1931–2008)",
			ExportStem: "harmonized_mortality_appendix_e",
		},
		{
			Title: "Appendix F: Derivation Process & Thresholds",
			File:  "derivation_threshold.xlsx",
			Shape: TwoRowHeader,
			Intro: "This section details the **step-by-step derivation logic** used to align census populations with mortality records. " +
				"The table includes the **metadata** (Thresholds), **Step 1** (Population Denominator Reconstruction), " +
				"**Step 2** (Zero-Age Numerator Reconstruction), and **Step 3** (Final Estimation).",
			ExportStem:  "derivation_thresholds_appendix_f",
			ExportIndex: true,
			Filterable:  true,
		},
		{
			Title:      "Appendix G: Supplementary Tables & Graphs",
			File:       "final_zero_age_estimates.xlsx",
			Shape:      FlatHeader,
			Intro:      "This section presents the final **zero-age population estimates** derived using the Ratio-Based PDC Reconstruction Method.",
			ExportStem: "zero_age_estimates_appendix_g",
			Chartable:  true,
		},
	}
}
