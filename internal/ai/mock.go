package ai

import "github.com/d9705996/kysai/internal/model"

// MockHSEImagePath is the image path reported by mock HSE analyses. No file
// is written for it.
const MockHSEImagePath = "/static/uploads/mock_hse.jpg"

// MockEightD returns the fixed hydrogen embrittlement 8D document with the
// caller's problem as problem_description and d2_problem.
func MockEightD(problem string) model.ReportData {
	return model.ReportData{
		ProblemDescription: problem,
		D1Team:             []string{"Project Lead: Ahmet Y.", "Quality: Mehmet K.", "Production: Ali R."},
		D2Problem:          problem,
		D3InterimActions: []string{
			"Quarantine all bolts plated in batch #2023-WK45 (Suspect Lot).",
			"Initiate 100% Wedge Tensile Testing per ISO 898-1 / ASTM F606.",
			"Halt shipments to customer line 4 immediately.",
		},
		D4RootCauses: []string{"Hydrogen Embrittlement due to post-plating process failure"},
		D4OccurrenceCauses: []string{
			"Why 1: Hydrogen diffusion into steel matrix -> Why 2: Baking delay > 4 hours -> Root: Furnace log shows 6h delay; Furnace temperature uniformity poor (+/- 15°C deviation).",
		},
		D4EscapeCauses: []string{
			"Why 1: Embrittlement test passed -> Why 2: Sample size too small -> Root: Sampling plan (ASTM F519) not followed; only 3 pcs tested instead of required statistical sample.",
		},
		D4Fishbone: map[string][]string{
			"Man":         {"Operator loaded furnace late (Shift change)"},
			"Machine":     {"Baking furnace temp controller drift"},
			"Material":    {"10.9 Grade Steel (High Susceptibility to HE)"},
			"Method":      {"Delay between plating and baking > 4h"},
			"Measurement": {"Tensile test sample size too low"},
			"Environment": {"High humidity in plating line"},
		},
		D5ChosenPCA:      []string{"Install automated timer lockout on plating line.", "Upgrade furnace controller."},
		D6ImplementedPCA: []string{"Timer lockout installed and verified.", "Furnace calibration completed."},
		D7Prevention:     []string{"Update FMEA to include baking delay risk.", "Revise Control Plan for sampling."},
		D8Recognition:    []string{"Team congratulated for rapid containment.", "Standard work updated."},
	}
}

// MockHSE returns the fixed HSE findings.
func MockHSE() (nonConformities, correctiveActions []string) {
	nonConformities = []string{
		"Worker not wearing safety helmet (hard hat).",
		"Trip hazard: Cable across the walkway.",
		"Blocked emergency exit sign.",
	}
	correctiveActions = []string{
		"Enforce PPE policy immediately.",
		"Secure cables with cable covers or tape.",
		"Clear obstruction from emergency exit.",
	}
	return nonConformities, correctiveActions
}
