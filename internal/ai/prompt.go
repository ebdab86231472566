package ai

import "fmt"

// TurkishInstruction is inserted into the 8D prompt when the caller asks for
// Turkish output. JSON keys stay in English.
const TurkishInstruction = `**CRITICAL: OUTPUT LANGUAGE MUST BE TURKISH**
CEVAP DİLİ SADECE VE SADECE TÜRKÇE OLMALIDIR.
- Provide ALL findings, analysis, root causes, and actions in TURKISH.
- Do NOT return any English text for values.
- JSON Keys must remain in English (e.g., "d1_team"), but ALL VALUES must be Turkish.
- Example: "d3_interim_actions": ["Üretim durduruldu.", "Parçalar ayrıldı."]`

const eightDTemplate = `Act as a **Senior Quality Engineer and IATF 16949 Lead Auditor** in the %s industry.

%s

**Goal**: Generate a technical 8D Problem Solving Report (D1-D8).

**Problem Description**:
"%s"

**ENGINEERING CONTEXT RULES (STRICT)**:
1. **Material Specificity**: If **10.9 Bolts** or **Plating** is mentioned, you MUST check for **Hydrogen Embrittlement**.
2. **Actionable D3**: Interim actions must be physical (e.g., "Wedge Test", "Sort", "Quarantine").
3. **Dual Root Cause**: Analyze both **Occurrence** (Process) and **Escape** (Detection).

**OUTPUT FORMAT (JSON ONLY)**:
{
    "d1_team": ["Role: Name", "Role: Name"],
    "d2_problem": "Refined problem statement...",
    "d3_interim_actions": ["Action 1", "Action 2"],
    "d4_occurrence_causes": ["Why 1...", "Root Cause: ..."],
    "d4_escape_causes": ["Why 1...", "Root Cause: ..."],
    "d4_root_causes": ["Summary of Root Cause"],
    "d4_fishbone": { "Man": [], "Machine": [], "Material": [], "Method": [], "Measurement": [], "Environment": [] },
    "d5_chosen_pca": ["Permanent Corrective Action 1", "PCA 2"],
    "d6_implemented_pca": ["Implemented Action 1", "Implemented Action 2"],
    "d7_prevention": ["Systemic prevention action 1", "Prevention 2"],
    "d8_recognition": ["Team recognition statement"]
}
`

// HSEPrompt is sent with every HSE photograph. It has no language parameter;
// the Turkish preference is part of the text.
const HSEPrompt = `You are an expert HSE (Health, Safety, Environment) Auditor for ISO 45001.
Analyze this image for safety hazards, non-compliance, and risks.

**OUTPUT LANGUAGE RULE**:
If the request specifies Turkish or if you are unsure, provide details in **TURKISH** (Türkçe).
"CEVAP DİLİ TÜRKÇE OLMALIDIR. Tüm bulguları, aksiyonları ve analizleri sadece Türkçe olarak yaz."

RETURN ONLY VALID JSON. Do not use Markdown formatted code blocks.
Format:
{
    "non_conformities": [
        "Specific hazard seen in image...",
        "Another issue..."
    ],
    "corrective_actions": [
        "Action to fix hazard 1...",
        "Action to fix hazard 2..."
    ]
}
`

// BuildEightDPrompt renders the 8D prompt. Only language "tr" adds the
// Turkish instruction block.
func BuildEightDPrompt(problem, industry, language string) string {
	lang := ""
	if language == "tr" {
		lang = TurkishInstruction
	}
	return fmt.Sprintf(eightDTemplate, industry, lang, problem)
}
