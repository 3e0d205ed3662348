package docproc

import (
	"strings"
	"testing"

	"github.com/ppiankov/claimsort/internal/model"
)

func docWithText(text string) model.Document {
	return model.Document{ID: "doc", Processed: true, ExtractedText: text, Confidence: 0.95}
}

func TestExtractInformation_IncidentFields(t *testing.T) {
	docs := []model.Document{docWithText(
		"Incident report: On March 15, 2024 a collision occurred at Main St and Oak Ave involving two vehicles traveling northbound at moderate speed during light rain conditions.",
	)}

	info := ExtractInformation(docs)

	if info.IncidentDate != "March 15, 2024" {
		t.Errorf("IncidentDate = %q", info.IncidentDate)
	}
	if info.Location != "Main St and Oak Ave" {
		t.Errorf("Location = %q", info.Location)
	}
	if info.Description == "" {
		t.Error("expected non-empty description")
	}
}

func TestExtractInformation_DescriptionTruncation(t *testing.T) {
	words := make([]string, 30)
	for i := range words {
		words[i] = "word"
	}
	long := "incident " + strings.Join(words, " ")

	info := ExtractInformation([]model.Document{docWithText(long)})

	if !strings.HasSuffix(info.Description, "...") {
		t.Errorf("expected truncated description, got %q", info.Description)
	}
	if got := len(strings.Fields(strings.TrimSuffix(info.Description, "..."))); got != 20 {
		t.Errorf("expected 20 words, got %d", got)
	}

	short := "incident at the crossing"
	info = ExtractInformation([]model.Document{docWithText(short)})
	if info.Description != short {
		t.Errorf("short description altered: %q", info.Description)
	}
}

func TestExtractInformation_MedicalFields(t *testing.T) {
	docs := []model.Document{docWithText(
		"Medical evaluation on June 2, 2024: patient presents with whiplash following rear-end collision.",
	)}

	info := ExtractInformation(docs)

	if info.MedicalInfo == nil {
		t.Fatal("expected medical info")
	}
	if info.MedicalInfo.Diagnosis != "whiplash" {
		t.Errorf("Diagnosis = %q", info.MedicalInfo.Diagnosis)
	}
	if info.MedicalInfo.Provider != "City Medical Center" {
		t.Errorf("Provider = %q", info.MedicalInfo.Provider)
	}
	if info.MedicalInfo.TreatmentDate != "June 2, 2024" {
		t.Errorf("TreatmentDate = %q", info.MedicalInfo.TreatmentDate)
	}
}

func TestExtractInformation_MedicalFallbacks(t *testing.T) {
	info := ExtractInformation([]model.Document{docWithText("diagnosis pending further tests")})

	if info.MedicalInfo == nil {
		t.Fatal("expected medical info")
	}
	if info.MedicalInfo.Diagnosis != "condition under review" {
		t.Errorf("Diagnosis = %q", info.MedicalInfo.Diagnosis)
	}
}

func TestExtractInformation_VehicleFields(t *testing.T) {
	docs := []model.Document{docWithText(
		"Vehicle inspection: 2019 Honda Accord, VIN 1HGCV1F34KA123456, rear bumper damage.",
	)}

	info := ExtractInformation(docs)

	if info.VehicleInfo == nil {
		t.Fatal("expected vehicle info")
	}
	if info.VehicleInfo.Make != "Honda" || info.VehicleInfo.Model != "Accord" {
		t.Errorf("make/model = %q/%q", info.VehicleInfo.Make, info.VehicleInfo.Model)
	}
	if info.VehicleInfo.Year != 2019 {
		t.Errorf("Year = %d", info.VehicleInfo.Year)
	}
	if info.VehicleInfo.VIN != "1HGCV1F34KA123456" {
		t.Errorf("VIN = %q", info.VehicleInfo.VIN)
	}
}

func TestExtractInformation_LastWriteWins(t *testing.T) {
	docs := []model.Document{
		docWithText("Incident at Main St and Oak Ave on January 5, 2024."),
		docWithText("Amended incident report: the accident took place on Highway 101 on January 7, 2024."),
	}

	info := ExtractInformation(docs)

	if info.Location != "Highway 101" {
		t.Errorf("expected later document to win, got location %q", info.Location)
	}
	if info.IncidentDate != "January 7, 2024" {
		t.Errorf("expected later date, got %q", info.IncidentDate)
	}
}

func TestExtractInformation_SkipsEmptyText(t *testing.T) {
	docs := []model.Document{
		docWithText("Incident at Main St and Oak Ave on January 5, 2024."),
		{ID: "failed", Processed: false, ExtractedText: ""},
	}

	info := ExtractInformation(docs)
	if info.Location != "Main St and Oak Ave" {
		t.Errorf("unprocessed document clobbered location: %q", info.Location)
	}
}

func TestExtractInformation_NoTriggers(t *testing.T) {
	info := ExtractInformation([]model.Document{docWithText("routine correspondence about billing")})

	if info.FieldCount() != 0 {
		t.Errorf("expected no populated fields, got %d", info.FieldCount())
	}
	if info.MedicalInfo != nil || info.VehicleInfo != nil {
		t.Error("expected nil medical and vehicle info")
	}
}

func TestExtractInformation_CaseInsensitiveTriggers(t *testing.T) {
	info := ExtractInformation([]model.Document{docWithText("ACCIDENT on Highway 101")})

	if info.Location != "Highway 101" {
		t.Errorf("uppercase trigger missed, location %q", info.Location)
	}
}
